package utils

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

type panicHandler struct{}

func (panicHandler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(weave.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	panic("deliver panic")
}

func TestRecovery(t *testing.T) {
	h := weavetest.Decorate(panicHandler{}, NewRecovery())
	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{}

	// panics are caught and turned into errors
	_, err := h.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestRecoveryPassThrough(t *testing.T) {
	inner := &weavetest.Handler{
		CheckResult:   weave.CheckResult{Log: "checked"},
		DeliverErr:    errors.ErrState,
	}
	h := weavetest.Decorate(inner, NewRecovery())
	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{}

	res, err := h.Check(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, "checked", res.Log)
	_, err = h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrState, err)
	assert.Equal(t, 2, inner.CallCount())
}
