package token

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/app"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestHandlers(t *testing.T) {
	f := newFixture(t, 0)
	rt := app.NewRouter()
	RegisterRoutes(rt, f.auth, f.ctrl)
	ctx := context.Background()

	deliver := func(signers []weave.Condition, msg weave.Msg) (*weave.DeliverResult, error) {
		f.auth.Signers = signers
		tx := &weavetest.Tx{Msg: msg}
		if _, err := rt.Check(ctx, f.db.CacheWrap(), tx); err != nil {
			return nil, err
		}
		return rt.Deliver(ctx, f.db, tx)
	}

	// Anyone can create a mint.
	res, err := deliver(nil, &CreateMintMsg{
		Metadata:      &weave.Metadata{Schema: 1},
		Name:          "Token B",
		Decimals:      6,
		MintAuthority: f.issuer.Address(),
	})
	assert.Nil(t, err)
	mintB := weave.Address(res.Data)
	mint, err := f.ctrl.GetMint(f.db, mintB)
	assert.Nil(t, err)
	assert.Equal(t, uint32(6), mint.Decimals)

	// Account creation requires the payer signature.
	createAcc := &CreateAccountMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Mint:     mintB,
		Owner:    f.bob.Address(),
		Payer:    f.bob.Address(),
	}
	_, err = deliver(nil, createAcc)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	res, err = deliver([]weave.Condition{f.bob}, createAcc)
	assert.Nil(t, err)
	bobB := weave.Address(res.Data)
	want, _, err := AssociatedAccountAddress(f.bob.Address(), mintB)
	assert.Nil(t, err)
	assert.Equal(t, want, bobB)

	// Only the mint authority can mint.
	mintTo := &MintToMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Mint:        mintB,
		Destination: bobB,
		Amount:      70,
	}
	_, err = deliver([]weave.Condition{f.bob}, mintTo)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = deliver([]weave.Condition{f.issuer}, mintTo)
	assert.Nil(t, err)
	assert.Equal(t, uint64(70), f.balance(t, bobB))

	// Transfer between the associated accounts of mint A.
	_, err = deliver([]weave.Condition{f.alice}, &TransferMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Mint:        f.mint,
		Source:      f.aliceAcc,
		Destination: f.bobAcc,
		Amount:      120,
		Authority:   f.alice.Address(),
	})
	assert.Nil(t, err)
	assert.Equal(t, uint64(380), f.balance(t, f.aliceAcc))
	assert.Equal(t, uint64(120), f.balance(t, f.bobAcc))

	// Close fails while the account holds tokens.
	closeMsg := &CloseAccountMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Account:     bobB,
		Destination: f.bob.Address(),
		Authority:   f.bob.Address(),
	}
	_, err = deliver([]weave.Condition{f.bob}, closeMsg)
	assert.IsErr(t, errors.ErrState, err)

	// Messages are validated before anything else.
	_, err = deliver([]weave.Condition{f.bob}, &TransferMsg{Metadata: &weave.Metadata{Schema: 1}})
	assert.IsErr(t, errors.ErrInput, err)
	_, err = deliver(nil, &CreateMintMsg{
		Metadata:      &weave.Metadata{Schema: 1},
		Decimals:      20,
		MintAuthority: f.issuer.Address(),
	})
	assert.IsErr(t, errors.ErrMsg, err)
}

func TestConfigurationUpdate(t *testing.T) {
	f := newFixture(t, 0)
	owner := weavetest.NewCondition()
	f.auth.Signers = []weave.Condition{owner}

	// Without an initialization admin the configuration can only come
	// from the genesis.
	h := NewConfigHandler(f.auth)
	msg := &UpdateConfigurationMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Patch:    &Configuration{Owner: owner.Address(), AccountDeposit: 3},
	}
	_, err := h.Deliver(context.Background(), f.db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	conf, err := LoadConfiguration(f.db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), conf.AccountDeposit)
}
