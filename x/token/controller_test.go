package token

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
	"github.com/iov-one/tokenswap/x/cash"
)

// fixture holds a store with one mint and two funded accounts.
type fixture struct {
	db       store.CacheableKVStore
	auth     *weavetest.Auth
	cash     cash.BaseController
	ctrl     BaseController
	issuer   weave.Condition
	alice    weave.Condition
	bob      weave.Condition
	mint     weave.Address
	aliceAcc weave.Address
	bobAcc   weave.Address
}

func newFixture(t testing.TB, deposit uint64) *fixture {
	t.Helper()
	f := &fixture{
		db:     store.MemStore(),
		auth:   &weavetest.Auth{},
		cash:   cash.NewController(),
		issuer: weavetest.NewCondition(),
		alice:  weavetest.NewCondition(),
		bob:    weavetest.NewCondition(),
	}
	f.ctrl = NewController(f.auth, f.cash)
	if deposit > 0 {
		conf := &Configuration{Metadata: &weave.Metadata{Schema: 1}, AccountDeposit: deposit}
		assert.Nil(t, gconf.Save(f.db, confPkg, conf))
	}
	assert.Nil(t, f.cash.CoinMint(f.db, f.alice.Address(), 1000))
	assert.Nil(t, f.cash.CoinMint(f.db, f.bob.Address(), 1000))

	mint, err := f.ctrl.CreateMint(f.db, "Token A", 2, f.issuer.Address())
	assert.Nil(t, err)
	f.mint = mint

	f.aliceAcc = f.createAccount(t, f.alice)
	f.bobAcc = f.createAccount(t, f.bob)

	f.auth.Signers = []weave.Condition{f.issuer}
	assert.Nil(t, f.ctrl.MintTo(context.Background(), f.db, f.mint, f.aliceAcc, f.issuer.Address(), 500))
	f.auth.Signers = nil
	return f
}

func (f *fixture) createAccount(t testing.TB, owner weave.Condition) weave.Address {
	t.Helper()
	addr, _, err := AssociatedAccountAddress(owner.Address(), f.mint)
	assert.Nil(t, err)
	f.auth.Signers = []weave.Condition{owner}
	_, err = f.ctrl.CreateAccount(context.Background(), f.db, addr, f.mint, owner.Address(), owner.Address())
	assert.Nil(t, err)
	f.auth.Signers = nil
	return addr
}

func (f *fixture) balance(t testing.TB, addr weave.Address) uint64 {
	t.Helper()
	a, err := f.ctrl.GetAccount(f.db, addr)
	assert.Nil(t, err)
	return a.Amount
}

func TestCreateAccount(t *testing.T) {
	f := newFixture(t, 10)

	// Deposit was paid by both owners.
	got, err := f.cash.Balance(f.db, f.alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, uint64(990), got)
	got, err = f.cash.Balance(f.db, f.aliceAcc)
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), got)

	acc, err := f.ctrl.GetAccount(f.db, f.aliceAcc)
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), acc.Deposit)
	assert.Equal(t, f.alice.Address(), acc.Owner)

	ctx := context.Background()

	// Accounts cannot be created twice.
	f.auth.Signers = []weave.Condition{f.alice}
	_, err = f.ctrl.CreateAccount(ctx, f.db, f.aliceAcc, f.mint, f.alice.Address(), f.alice.Address())
	assert.IsErr(t, errors.ErrDuplicate, err)

	// Payer must sign.
	f.auth.Signers = nil
	other := weavetest.NewCondition().Address()
	_, err = f.ctrl.CreateAccount(ctx, f.db, other, f.mint, f.alice.Address(), f.alice.Address())
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// Mint must exist.
	f.auth.Signers = []weave.Condition{f.alice}
	_, err = f.ctrl.CreateAccount(ctx, f.db, other, weavetest.NewCondition().Address(), f.alice.Address(), f.alice.Address())
	assert.IsErr(t, errors.ErrNotFound, err)

	// Payer must afford the deposit.
	poor := weavetest.NewCondition()
	f.auth.Signers = []weave.Condition{poor}
	_, err = f.ctrl.CreateAccount(ctx, f.db, other, f.mint, poor.Address(), poor.Address())
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
}

func TestTransfer(t *testing.T) {
	cases := map[string]struct {
		Signers   func(f *fixture) []weave.Condition
		Amount    uint64
		Mint      func(f *fixture) weave.Address
		Src, Dest func(f *fixture) weave.Address
		Authority func(f *fixture) weave.Address
		WantErr   *errors.Error
		WantAlice uint64
		WantBob   uint64
	}{
		"owner transfers": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice} },
			Amount:    200,
			WantAlice: 300,
			WantBob:   200,
		},
		"transfer everything": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice} },
			Amount:    500,
			WantAlice: 0,
			WantBob:   500,
		},
		"insufficient funds": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice} },
			Amount:    501,
			WantErr:   errors.ErrInsufficientAmount,
			WantAlice: 500,
		},
		"authority not signed": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.bob} },
			Amount:    1,
			WantErr:   errors.ErrUnauthorized,
			WantAlice: 500,
		},
		"authority is not the owner": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice, f.bob} },
			Authority: func(f *fixture) weave.Address { return f.bob.Address() },
			Amount:    1,
			WantErr:   errors.ErrUnauthorized,
			WantAlice: 500,
		},
		"mint mismatch": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice} },
			Mint:      func(f *fixture) weave.Address { return weavetest.NewCondition().Address() },
			Amount:    1,
			WantErr:   errors.ErrCurrency,
			WantAlice: 500,
		},
		"missing destination": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice} },
			Dest:      func(f *fixture) weave.Address { return weavetest.NewCondition().Address() },
			Amount:    1,
			WantErr:   errors.ErrNotFound,
			WantAlice: 500,
		},
		"zero amount": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice} },
			Amount:    0,
			WantErr:   errors.ErrAmount,
			WantAlice: 500,
		},
		"transfer to self": {
			Signers:   func(f *fixture) []weave.Condition { return []weave.Condition{f.alice} },
			Dest:      func(f *fixture) weave.Address { return f.aliceAcc },
			Amount:    100,
			WantAlice: 500,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, 0)
			mint, src, dest, authority := f.mint, f.aliceAcc, f.bobAcc, f.alice.Address()
			if tc.Mint != nil {
				mint = tc.Mint(f)
			}
			if tc.Src != nil {
				src = tc.Src(f)
			}
			if tc.Dest != nil {
				dest = tc.Dest(f)
			}
			if tc.Authority != nil {
				authority = tc.Authority(f)
			}
			f.auth.Signers = tc.Signers(f)

			cache := f.db.CacheWrap()
			err := f.ctrl.Transfer(context.Background(), cache, tc.Amount, mint, src, dest, authority)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Nil(t, cache.Write())
			} else {
				cache.Discard()
			}

			assert.Equal(t, tc.WantAlice, f.balance(t, f.aliceAcc))
			assert.Equal(t, tc.WantBob, f.balance(t, f.bobAcc))
		})
	}
}

func TestMintTo(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	// Only the mint authority can create supply.
	f.auth.Signers = []weave.Condition{f.alice}
	err := f.ctrl.MintTo(ctx, f.db, f.mint, f.bobAcc, f.alice.Address(), 5)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	err = f.ctrl.MintTo(ctx, f.db, f.mint, f.bobAcc, f.issuer.Address(), 5)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	f.auth.Signers = []weave.Condition{f.issuer}
	assert.Nil(t, f.ctrl.MintTo(ctx, f.db, f.mint, f.bobAcc, f.issuer.Address(), 5))
	assert.Equal(t, uint64(5), f.balance(t, f.bobAcc))

	mint, err := f.ctrl.GetMint(f.db, f.mint)
	assert.Nil(t, err)
	assert.Equal(t, uint64(505), mint.Supply)

	err = f.ctrl.MintTo(ctx, f.db, f.mint, f.bobAcc, f.issuer.Address(), ^uint64(0))
	assert.IsErr(t, errors.ErrOverflow, err)

	// Destination must be of the same mint.
	other, err := f.ctrl.CreateMint(f.db, "Token B", 6, f.issuer.Address())
	assert.Nil(t, err)
	err = f.ctrl.MintTo(ctx, f.db, other, f.bobAcc, f.issuer.Address(), 5)
	assert.IsErr(t, errors.ErrCurrency, err)
}

func TestCloseAccount(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	// Only the owner can close.
	f.auth.Signers = []weave.Condition{f.alice}
	err := f.ctrl.CloseAccount(ctx, f.db, f.bobAcc, f.alice.Address(), f.alice.Address())
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// Account must be empty.
	err = f.ctrl.CloseAccount(ctx, f.db, f.aliceAcc, f.alice.Address(), f.alice.Address())
	assert.IsErr(t, errors.ErrState, err)

	f.auth.Signers = []weave.Condition{f.bob}
	assert.Nil(t, f.ctrl.CloseAccount(ctx, f.db, f.bobAcc, f.alice.Address(), f.bob.Address()))

	// The deposit was moved to the destination.
	got, err := f.cash.Balance(f.db, f.alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), got)
	got, err = f.cash.Balance(f.db, f.bobAcc)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), got)

	_, err = f.ctrl.GetAccount(f.db, f.bobAcc)
	assert.IsErr(t, errors.ErrNotFound, err)

	// Closing twice fails.
	err = f.ctrl.CloseAccount(ctx, f.db, f.bobAcc, f.alice.Address(), f.bob.Address())
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestCloseAccountReturnsAllCoins(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	// Coins sent to the account address on top of the deposit.
	assert.Nil(t, f.cash.MoveCoins(f.db, f.alice.Address(), f.bobAcc, 3))

	f.auth.Signers = []weave.Condition{f.bob}
	assert.Nil(t, f.ctrl.CloseAccount(ctx, f.db, f.bobAcc, f.bob.Address(), f.bob.Address()))

	got, err := f.cash.Balance(f.db, f.bobAcc)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), got)
	got, err = f.cash.Balance(f.db, f.bob.Address())
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000+3), got)
}
