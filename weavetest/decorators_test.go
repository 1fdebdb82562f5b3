package weavetest

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestDecorateOrder(t *testing.T) {
	outer := &Decorator{}
	inner := &Decorator{DeliverErr: errors.ErrNotFound}
	h := &Handler{DeliverResult: weave.DeliverResult{Data: []byte("ok")}}
	stack := Decorate(h, outer, inner)

	_, err := stack.Check(nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.CheckCallCount())

	// The failing inner decorator returns before the handler is called.
	res, err := stack.Deliver(nil, nil, nil)
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.Nil(t, res)
	assert.Equal(t, 1, outer.DeliverCallCount())
	assert.Equal(t, 1, inner.DeliverCallCount())
	assert.Equal(t, 0, h.DeliverCallCount())

	inner.DeliverErr = nil
	res, err = stack.Deliver(nil, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, []byte("ok"), res.Data)
	assert.Equal(t, 3, outer.CallCount())
	assert.Equal(t, 2, h.CallCount())
}
