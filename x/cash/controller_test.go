package cash

import (
	"math"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestCoinMint(t *testing.T) {
	db := store.MemStore()
	control := NewController()
	addr := weavetest.NewCondition().Address()

	assert.Nil(t, control.CoinMint(db, addr, 500))
	assert.Nil(t, control.CoinMint(db, addr, 250))

	got, err := control.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(750), got)

	assert.IsErr(t, errors.ErrOverflow, control.CoinMint(db, addr, math.MaxUint64))
	assert.IsErr(t, errors.ErrAmount, control.CoinMint(db, addr, 0))
	assert.IsErr(t, errors.ErrInput, control.CoinMint(db, []byte("short"), 1))

	// Failed operations do not modify the balance.
	got, err = control.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(750), got)
}

func TestMoveCoins(t *testing.T) {
	var (
		alice = weavetest.NewCondition().Address()
		bob   = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Amount       uint64
		InitAlice    uint64
		InitBob      uint64
		Src, Dest    []byte
		WantErr      *errors.Error
		WantAlice    uint64
		WantBob      uint64
		WantNoWallet bool
	}{
		"partial move": {
			Amount:    300,
			InitAlice: 1000,
			Src:       alice,
			Dest:      bob,
			WantAlice: 700,
			WantBob:   300,
		},
		"move everything removes the wallet": {
			Amount:       1000,
			InitAlice:    1000,
			InitBob:      1,
			Src:          alice,
			Dest:         bob,
			WantAlice:    0,
			WantBob:      1001,
			WantNoWallet: true,
		},
		"insufficient funds": {
			Amount:    1001,
			InitAlice: 1000,
			Src:       alice,
			Dest:      bob,
			WantErr:   errors.ErrInsufficientAmount,
			WantAlice: 1000,
		},
		"sender without a wallet": {
			Amount:  1,
			InitBob: 5,
			Src:     alice,
			Dest:    bob,
			WantErr: errors.ErrInsufficientAmount,
			WantBob: 5,
		},
		"zero amount": {
			Amount:    0,
			InitAlice: 10,
			Src:       alice,
			Dest:      bob,
			WantErr:   errors.ErrAmount,
			WantAlice: 10,
		},
		"recipient overflow": {
			Amount:    10,
			InitAlice: 10,
			InitBob:   math.MaxUint64 - 5,
			Src:       alice,
			Dest:      bob,
			WantErr:   errors.ErrOverflow,
			WantAlice: 10,
			WantBob:   math.MaxUint64 - 5,
		},
		"move to self": {
			Amount:    10,
			InitAlice: 10,
			Src:       alice,
			Dest:      alice,
			WantAlice: 10,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := NewController()
			if tc.InitAlice > 0 {
				assert.Nil(t, control.CoinMint(db, alice, tc.InitAlice))
			}
			if tc.InitBob > 0 {
				assert.Nil(t, control.CoinMint(db, bob, tc.InitBob))
			}

			// Each case runs in a cache so that a failure can be
			// discarded, just like the application does.
			cache := db.CacheWrap()
			err := control.MoveCoins(cache, tc.Src, tc.Dest, tc.Amount)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Nil(t, cache.Write())
			} else {
				cache.Discard()
			}

			gotAlice, err := control.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantAlice, gotAlice)
			gotBob, err := control.Balance(db, bob)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantBob, gotBob)

			if tc.WantNoWallet {
				assert.IsErr(t, errors.ErrNotFound, NewBucket().Has(db, alice))
			}
		})
	}
}
