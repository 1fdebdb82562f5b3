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

// writeHandler writes a key/value pair to the store and then returns the
// configured error.
type writeHandler struct {
	key, value []byte
	err        error
}

func (h writeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &weave.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &weave.DeliverResult{}, nil
}

func TestSavepoint(t *testing.T) {
	// always written before calling the decorator
	ok, ov := []byte("demo"), []byte("data")
	// written by the handler
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		Savepoint   Savepoint
		HandlerErr  error
		Check       bool
		WantErr     *errors.Error
		WantWritten [][]byte
		WantMissing [][]byte
	}{
		"savepoint not active, handler fails": {
			Savepoint:   NewSavepoint(),
			HandlerErr:  errors.ErrHuman,
			Check:       true,
			WantErr:     errors.ErrHuman,
			WantWritten: [][]byte{ok, nk},
		},
		"savepoint on check, handler fails": {
			Savepoint:   NewSavepoint().OnCheck(),
			HandlerErr:  errors.ErrHuman,
			Check:       true,
			WantErr:     errors.ErrHuman,
			WantWritten: [][]byte{ok},
			WantMissing: [][]byte{nk},
		},
		"savepoint on deliver, handler fails": {
			Savepoint:   NewSavepoint().OnDeliver(),
			HandlerErr:  errors.ErrHuman,
			WantErr:     errors.ErrHuman,
			WantWritten: [][]byte{ok},
			WantMissing: [][]byte{nk},
		},
		"savepoint on check does not affect deliver": {
			Savepoint:   NewSavepoint().OnCheck(),
			HandlerErr:  errors.ErrHuman,
			WantErr:     errors.ErrHuman,
			WantWritten: [][]byte{ok, nk},
		},
		"both savepoints, check fails": {
			Savepoint:   NewSavepoint().OnDeliver().OnCheck(),
			HandlerErr:  errors.ErrHuman,
			Check:       true,
			WantErr:     errors.ErrHuman,
			WantWritten: [][]byte{ok},
			WantMissing: [][]byte{nk},
		},
		"savepoint on deliver, handler succeeds": {
			Savepoint:   NewSavepoint().OnDeliver(),
			WantWritten: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			assert.Nil(t, kv.Set(ok, ov))

			h := weavetest.Decorate(writeHandler{key: nk, value: nv, err: tc.HandlerErr}, tc.Savepoint)
			ctx := context.Background()
			tx := &weavetest.Tx{}
			var err error
			if tc.Check {
				_, err = h.Check(ctx, kv, tx)
			} else {
				_, err = h.Deliver(ctx, kv, tx)
			}
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}

			for _, k := range tc.WantWritten {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.WantMissing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}

func TestInSavepoint(t *testing.T) {
	kv := store.MemStore()

	err := InSavepoint(kv, func(db weave.KVStore) error {
		if err := db.Set([]byte("a"), []byte("1")); err != nil {
			return err
		}
		return errors.ErrState
	})
	assert.IsErr(t, errors.ErrState, err)
	has, err := kv.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	err = InSavepoint(kv, func(db weave.KVStore) error {
		return db.Set([]byte("b"), []byte("2"))
	})
	assert.Nil(t, err)
	got, err := kv.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), got)
}
