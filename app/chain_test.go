package app

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestChain(t *testing.T) {
	first := &weavetest.Decorator{}
	second := &weavetest.Decorator{}
	var missing *weavetest.Decorator
	h := &weavetest.Handler{}

	stack := ChainDecorators(first, nil, missing).Chain(second).WithHandler(h)
	ctx := context.Background()
	db := store.MemStore()

	_, err := stack.Check(ctx, db, &weavetest.Tx{})
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, db, &weavetest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, 2, first.CallCount())
	assert.Equal(t, 2, second.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// A failing decorator stops the chain.
	second.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, db, &weavetest.Tx{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 1, h.DeliverCallCount())
	assert.Equal(t, 2, first.DeliverCallCount())
}

func TestCutoffNil(t *testing.T) {
	var missing *weavetest.Decorator
	d := &weavetest.Decorator{}
	got := cutoffNil([]weave.Decorator{nil, d, missing, nil, d})
	assert.Equal(t, 2, len(got))
}
