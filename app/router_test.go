package app

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestRouter(t *testing.T) {
	var (
		ctx = context.Background()
		db  = store.MemStore()
		rt  = NewRouter()
	)

	good := &weavetest.Handler{}
	bad := &weavetest.Handler{CheckErr: errors.ErrState, DeliverErr: errors.ErrState}
	rt.Handle(&weavetest.Msg{RoutePath: "test/good"}, good)
	rt.Handle(&weavetest.Msg{RoutePath: "test/bad"}, bad)

	// make sure invalid registrations panic
	assert.Panics(t, func() { rt.Handle(&weavetest.Msg{RoutePath: "test/good"}, good) })
	assert.Panics(t, func() { rt.Handle(&weavetest.Msg{RoutePath: "l:7"}, good) })
	assert.Panics(t, func() { rt.Handle(&weavetest.Msg{RoutePath: "nomodule"}, good) })

	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/good"}}
	_, err := rt.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = rt.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 2, good.CallCount())

	_, err = rt.Deliver(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/bad"}})
	assert.IsErr(t, errors.ErrState, err)

	_, err = rt.Check(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/missing"}})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = rt.Deliver(ctx, db, &weavetest.Tx{Err: errors.ErrInput})
	assert.IsErr(t, errors.ErrInput, err)

	assert.Equal(t, 1, bad.CallCount())
}
