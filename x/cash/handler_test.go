package cash

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestSend(t *testing.T) {
	var (
		perm  = weavetest.NewCondition()
		perm2 = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Signers        []weave.Condition
		InitBalance    uint64
		Conf           *Configuration
		Msg            weave.Msg
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		WantDest       uint64
	}{
		"empty message": {
			Msg:            &SendMsg{Metadata: &weave.Metadata{Schema: 1}},
			WantCheckErr:   errors.ErrAmount,
			WantDeliverErr: errors.ErrAmount,
		},
		"missing addresses": {
			Msg:            &SendMsg{Metadata: &weave.Metadata{Schema: 1}, Amount: 10},
			WantCheckErr:   errors.ErrInput,
			WantDeliverErr: errors.ErrInput,
		},
		"missing source signature": {
			Msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Amount:      10,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"sender has no wallet": {
			Signers: []weave.Condition{perm},
			Msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Amount:      10,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
			// Check does not look at the funds.
			WantDeliverErr: errors.ErrInsufficientAmount,
		},
		"sender too poor": {
			Signers:     []weave.Condition{perm},
			InitBalance: 9,
			Msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Amount:      10,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
			WantDeliverErr: errors.ErrInsufficientAmount,
		},
		"amount below the configured minimum": {
			Signers:     []weave.Condition{perm},
			InitBalance: 100,
			Conf:        &Configuration{Metadata: &weave.Metadata{Schema: 1}, MinimalSend: 50},
			Msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Amount:      10,
				Source:      perm.Address(),
				Destination: perm2.Address(),
			},
			WantCheckErr:   errors.ErrAmount,
			WantDeliverErr: errors.ErrAmount,
		},
		"sender got cash": {
			Signers:     []weave.Condition{perm},
			InitBalance: 100,
			Msg: &SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Amount:      10,
				Source:      perm.Address(),
				Destination: perm2.Address(),
				Memo:        "coffee",
			},
			WantDest: 10,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			auth := &weavetest.Auth{Signers: tc.Signers}
			control := NewController()
			h := NewSendHandler(auth, control)

			db := store.MemStore()
			if tc.InitBalance > 0 {
				assert.Nil(t, control.CoinMint(db, perm.Address(), tc.InitBalance))
			}
			if tc.Conf != nil {
				assert.Nil(t, gconf.Save(db, BucketName, tc.Conf))
			}

			tx := &weavetest.Tx{Msg: tc.Msg}
			ctx := context.Background()

			cache := db.CacheWrap()
			if _, err := h.Check(ctx, cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := h.Deliver(ctx, db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			got, err := control.Balance(db, perm2.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.WantDest, got)
		})
	}
}

func TestConfigurationUpdate(t *testing.T) {
	owner := weavetest.NewCondition()
	db := store.MemStore()
	conf := &Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner.Address(),
		Ticker:   "IOV",
	}
	assert.Nil(t, gconf.Save(db, BucketName, conf))

	h := NewConfigHandler(&weavetest.Auth{Signer: owner})
	msg := &UpdateConfigurationMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Patch:    &Configuration{MinimalSend: 7},
	}
	_, err := h.Deliver(context.Background(), db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)

	got, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, "IOV", got.Ticker)
	assert.Equal(t, uint64(7), got.MinimalSend)

	// Only the owner can update.
	h = NewConfigHandler(&weavetest.Auth{Signer: weavetest.NewCondition()})
	_, err = h.Deliver(context.Background(), db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	bad := &UpdateConfigurationMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Patch:    &Configuration{Ticker: "lowercase"},
	}
	assert.IsErr(t, errors.ErrCurrency, bad.Validate())
}
