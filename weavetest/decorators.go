package weavetest

import "github.com/iov-one/tokenswap"

// calls counts invocations of a mock, failed ones included.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int   { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int        { return c.check + c.deliver }

// Decorator passes every call to the next handler unless CheckErr or
// DeliverErr is set, in which case that error is returned and the next
// handler is not called.
type Decorator struct {
	calls
	CheckErr   error
	DeliverErr error
}

var _ weave.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate wraps h with the decorators. The first decorator is the
// outermost one.
func Decorate(h weave.Handler, ds ...weave.Decorator) weave.Handler {
	for i := len(ds) - 1; i >= 0; i-- {
		h = decorated{next: h, d: ds[i]}
	}
	return h
}

type decorated struct {
	next weave.Handler
	d    weave.Decorator
}

func (h decorated) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return h.d.Check(ctx, db, tx, h.next)
}

func (h decorated) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return h.d.Deliver(ctx, db, tx, h.next)
}
