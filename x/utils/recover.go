package utils

import (
	"runtime/debug"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ weave.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Checker) (_ *weave.CheckResult, err error) {
	defer recoverPanic(ctx, &err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Deliverer) (_ *weave.DeliverResult, err error) {
	defer recoverPanic(ctx, &err)
	return next.Deliver(ctx, store, tx)
}

// recoverPanic must be deferred directly for recover to work.
func recoverPanic(ctx weave.Context, err *error) {
	if p := recover(); p != nil {
		*err = errors.Wrapf(errors.ErrPanic, "%v", p)
		weave.GetLogger(ctx).Error("panic recovered", "panic", p, "stack", string(debug.Stack()))
	}
}
