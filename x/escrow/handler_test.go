package escrow

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/derived"
	"github.com/iov-one/tokenswap/x/token"
)

const (
	accountDeposit = 7
	recordDeposit  = 11
	nativeFunds    = 1000
)

// swapFixture prepares two mints, an initializer (alice) holding 100 whole
// units of token A and a taker (bob) holding 50 whole units of token B.
type swapFixture struct {
	db         store.CacheableKVStore
	auth       *weavetest.Auth
	bank       cash.BaseController
	tokens     token.BaseController
	initialize *InitializeHandler
	finalize   *FinalizeHandler

	issuer weave.Condition
	alice  weave.Condition
	bob    weave.Condition
	mintA  weave.Address
	mintB  weave.Address
	// associated accounts
	aliceA, aliceB weave.Address
	bobA, bobB     weave.Address
}

func newSwapFixture(t testing.TB) *swapFixture {
	t.Helper()
	f := &swapFixture{
		db:     store.MemStore(),
		auth:   &weavetest.Auth{},
		bank:   cash.NewController(),
		issuer: weavetest.NewCondition(),
		alice:  weavetest.NewCondition(),
		bob:    weavetest.NewCondition(),
	}
	auth := x.ChainAuth(f.auth, derived.Authenticate{})
	f.tokens = token.NewController(auth, f.bank)
	bucket := NewBucket()
	f.initialize = &InitializeHandler{auth: auth, bucket: bucket, tokens: f.tokens, bank: f.bank}
	f.finalize = &FinalizeHandler{auth: auth, bucket: bucket, tokens: f.tokens, bank: f.bank}

	assert.Nil(t, gconf.Save(f.db, "token", &token.Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		AccountDeposit: accountDeposit,
	}))
	assert.Nil(t, gconf.Save(f.db, confPkg, &Configuration{
		Metadata:      &weave.Metadata{Schema: 1},
		RecordDeposit: recordDeposit,
	}))
	assert.Nil(t, f.bank.CoinMint(f.db, f.alice.Address(), nativeFunds))
	assert.Nil(t, f.bank.CoinMint(f.db, f.bob.Address(), nativeFunds))

	var err error
	f.mintA, err = f.tokens.CreateMint(f.db, "Token A", 2, f.issuer.Address())
	assert.Nil(t, err)
	f.mintB, err = f.tokens.CreateMint(f.db, "Token B", 6, f.issuer.Address())
	assert.Nil(t, err)

	f.aliceA = f.createAccount(t, f.alice, f.mintA)
	f.aliceB = f.createAccount(t, f.alice, f.mintB)
	f.bobA = f.createAccount(t, f.bob, f.mintA)
	f.bobB = f.createAccount(t, f.bob, f.mintB)

	f.mintTo(t, f.mintA, f.aliceA, 10000)
	f.mintTo(t, f.mintB, f.bobB, 50000000)
	return f
}

func (f *swapFixture) createAccount(t testing.TB, owner weave.Condition, mint weave.Address) weave.Address {
	t.Helper()
	addr, _, err := token.AssociatedAccountAddress(owner.Address(), mint)
	assert.Nil(t, err)
	f.auth.Signers = []weave.Condition{owner}
	_, err = f.tokens.CreateAccount(context.Background(), f.db, addr, mint, owner.Address(), owner.Address())
	assert.Nil(t, err)
	f.auth.Signers = nil
	return addr
}

func (f *swapFixture) mintTo(t testing.TB, mint, dest weave.Address, amount uint64) {
	t.Helper()
	f.auth.Signers = []weave.Condition{f.issuer}
	assert.Nil(t, f.tokens.MintTo(context.Background(), f.db, mint, dest, f.issuer.Address(), amount))
	f.auth.Signers = nil
}

func (f *swapFixture) balance(t testing.TB, addr weave.Address) uint64 {
	t.Helper()
	a, err := f.tokens.GetAccount(f.db, addr)
	assert.Nil(t, err)
	return a.Amount
}

func (f *swapFixture) coins(t testing.TB, addr weave.Address) uint64 {
	t.Helper()
	n, err := f.bank.Balance(f.db, addr)
	assert.Nil(t, err)
	return n
}

func (f *swapFixture) initializeMsg(id string) *InitializeMsg {
	return &InitializeMsg{
		Metadata:          &weave.Metadata{Schema: 1},
		ID:                id,
		AmountTokenA:      100,
		AmountTokenB:      50,
		Initializer:       f.alice.Address(),
		InitializerTokenA: f.aliceA,
		TokenA:            f.mintA,
		TokenB:            f.mintB,
	}
}

func (f *swapFixture) finalizeMsg(t testing.TB, id string) *FinalizeMsg {
	t.Helper()
	recordAddr, _, err := RecordAddress(f.alice.Address(), id)
	assert.Nil(t, err)
	custodyAddr, _, err := CustodyAddress(recordAddr)
	assert.Nil(t, err)
	return &FinalizeMsg{
		Metadata:          &weave.Metadata{Schema: 1},
		EscrowAddress:     recordAddr,
		CustodyAddress:    custodyAddr,
		Initializer:       f.alice.Address(),
		InitializerTokenB: f.aliceB,
		Taker:             f.bob.Address(),
		TakerTokenB:       f.bobB,
		TakerTokenA:       f.bobA,
	}
}

// deliver runs check and deliver the way the application does.
func deliver(f *swapFixture, h weave.Handler, signer weave.Condition, msg weave.Msg) (*weave.DeliverResult, error) {
	f.auth.Signers = []weave.Condition{signer}
	defer func() { f.auth.Signers = nil }()

	ctx := context.Background()
	tx := &weavetest.Tx{Msg: msg}
	if _, err := h.Check(ctx, f.db.CacheWrap(), tx); err != nil {
		return nil, err
	}
	return h.Deliver(ctx, f.db, tx)
}

func TestSwap(t *testing.T) {
	f := newSwapFixture(t)

	res, err := deliver(f, f.initialize, f.alice, f.initializeMsg("swap-1"))
	assert.Nil(t, err)
	recordAddr := weave.Address(res.Data)
	want, _, err := RecordAddress(f.alice.Address(), "swap-1")
	assert.Nil(t, err)
	assert.Equal(t, want, recordAddr)

	var record EscrowRecord
	assert.Nil(t, NewBucket().One(f.db, recordAddr, &record))
	assert.Equal(t, uint64(10000), record.AmountTokenA)
	assert.Equal(t, uint64(50000000), record.AmountTokenB)
	assert.Equal(t, "swap-1", record.ID)

	custodyAddr, bump, err := CustodyAddress(recordAddr)
	assert.Nil(t, err)
	assert.Equal(t, uint32(bump), record.DerivationBumpCustody)
	custody, err := f.tokens.GetAccount(f.db, custodyAddr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(10000), custody.Amount)
	assert.Equal(t, custodyAddr, custody.Owner)
	assert.Equal(t, uint64(0), f.balance(t, f.aliceA))

	// Alice paid for her two accounts, the custody account and the record.
	assert.Equal(t, uint64(nativeFunds-3*accountDeposit-recordDeposit), f.coins(t, f.alice.Address()))

	// The record can be found by its initializer.
	var records []EscrowRecord
	keys, err := NewBucket().ByIndex(f.db, "initializer", f.alice.Address(), &records)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(keys))
	assert.Equal(t, recordAddr, weave.Address(keys[0]))

	res, err = deliver(f, f.finalize, f.bob, f.finalizeMsg(t, "swap-1"))
	assert.Nil(t, err)
	assert.Equal(t, recordAddr, weave.Address(res.Data))

	assert.Equal(t, uint64(50000000), f.balance(t, f.aliceB))
	assert.Equal(t, uint64(10000), f.balance(t, f.bobA))
	assert.Equal(t, uint64(0), f.balance(t, f.bobB))
	assert.Equal(t, uint64(0), f.balance(t, f.aliceA))

	_, err = f.tokens.GetAccount(f.db, custodyAddr)
	assert.IsErr(t, errors.ErrNotFound, err)
	err = NewBucket().One(f.db, recordAddr, &record)
	assert.IsErr(t, errors.ErrNotFound, err)

	// Both deposits were returned.
	assert.Equal(t, uint64(nativeFunds-2*accountDeposit), f.coins(t, f.alice.Address()))
	assert.Equal(t, uint64(0), f.coins(t, recordAddr))
	assert.Equal(t, uint64(0), f.coins(t, custodyAddr))

	// The same id can be used again once the escrow is closed.
	f.mintTo(t, f.mintA, f.aliceA, 10000)
	_, err = deliver(f, f.initialize, f.alice, f.initializeMsg("swap-1"))
	assert.Nil(t, err)
}

func TestDoubleFinalize(t *testing.T) {
	f := newSwapFixture(t)
	_, err := deliver(f, f.initialize, f.alice, f.initializeMsg("swap-1"))
	assert.Nil(t, err)

	// Carol prepares to take the same escrow.
	carol := weavetest.NewCondition()
	assert.Nil(t, f.bank.CoinMint(f.db, carol.Address(), nativeFunds))
	carolA := f.createAccount(t, carol, f.mintA)
	carolB := f.createAccount(t, carol, f.mintB)
	f.mintTo(t, f.mintB, carolB, 50000000)

	_, err = deliver(f, f.finalize, f.bob, f.finalizeMsg(t, "swap-1"))
	assert.Nil(t, err)

	msg := f.finalizeMsg(t, "swap-1")
	msg.Taker = carol.Address()
	msg.TakerTokenA = carolA
	msg.TakerTokenB = carolB
	_, err = deliver(f, f.finalize, carol, msg)
	assert.IsErr(t, errors.ErrNotFound, err)

	// A replay by the first taker fails the same way.
	_, err = deliver(f, f.finalize, f.bob, f.finalizeMsg(t, "swap-1"))
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Equal(t, uint64(0), f.balance(t, carolA))
	assert.Equal(t, uint64(50000000), f.balance(t, carolB))
	assert.Equal(t, uint64(10000), f.balance(t, f.bobA))
	assert.Equal(t, uint64(50000000), f.balance(t, f.aliceB))
}

func TestFinalizeIsAtomic(t *testing.T) {
	f := newSwapFixture(t)
	_, err := deliver(f, f.initialize, f.alice, f.initializeMsg("swap-1"))
	assert.Nil(t, err)

	// Bob gives away one unit of token B and cannot pay anymore.
	f.auth.Signers = []weave.Condition{f.bob}
	assert.Nil(t, f.tokens.Transfer(context.Background(), f.db, 1, f.mintB, f.bobB, f.aliceB, f.bob.Address()))
	f.auth.Signers = nil

	msg := f.finalizeMsg(t, "swap-1")
	_, err = deliver(f, f.finalize, f.bob, msg)
	assert.IsErr(t, errors.ErrInsufficientAmount, err)

	assert.Equal(t, uint64(49999999), f.balance(t, f.bobB))
	assert.Equal(t, uint64(1), f.balance(t, f.aliceB))
	assert.Equal(t, uint64(0), f.balance(t, f.bobA))
	assert.Equal(t, uint64(10000), f.balance(t, msg.CustodyAddress))
	var record EscrowRecord
	assert.Nil(t, NewBucket().One(f.db, msg.EscrowAddress, &record))
	assert.Equal(t, uint64(recordDeposit), f.coins(t, msg.EscrowAddress))
}

func TestCustodyRequiresDerivedAuthority(t *testing.T) {
	f := newSwapFixture(t)
	_, err := deliver(f, f.initialize, f.alice, f.initializeMsg("swap-1"))
	assert.Nil(t, err)
	msg := f.finalizeMsg(t, "swap-1")
	ctx := context.Background()

	// Neither the initializer nor the taker can move custody funds.
	f.auth.Signers = []weave.Condition{f.alice, f.bob}
	err = f.tokens.Transfer(ctx, f.db, 10000, f.mintA, msg.CustodyAddress, f.bobA, msg.CustodyAddress)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	err = f.tokens.Transfer(ctx, f.db, 10000, f.mintA, msg.CustodyAddress, f.aliceA, f.alice.Address())
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// A derived authority for another record does not match either.
	other, _, err := RecordAddress(f.alice.Address(), "swap-2")
	assert.Nil(t, err)
	_, bump, err := CustodyAddress(other)
	assert.Nil(t, err)
	_, err = derived.WithAuthority(ctx, msg.CustodyAddress, ProgramName, bump, other)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	assert.Equal(t, uint64(10000), f.balance(t, msg.CustodyAddress))
}

func TestInitializeErrors(t *testing.T) {
	cases := map[string]struct {
		Setup   func(t testing.TB, f *swapFixture)
		Mutate  func(f *swapFixture, msg *InitializeMsg)
		Signer  func(f *swapFixture) weave.Condition
		WantErr *errors.Error
		// native coins left to alice, two account deposits paid by default
		WantCoins uint64
	}{
		"initializer did not sign": {
			Signer:  func(f *swapFixture) weave.Condition { return f.bob },
			WantErr: errors.ErrUnauthorized,
		},
		"empty id": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.ID = "" },
			WantErr: errors.ErrEmpty,
		},
		"id too long": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.ID = strings.Repeat("x", MaxIDLength+1) },
			WantErr: errors.ErrInput,
		},
		"zero amount of token b": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.AmountTokenB = 0 },
			WantErr: errors.ErrAmount,
		},
		"same token on both sides": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.TokenB = f.mintA },
			WantErr: errors.ErrMsg,
		},
		"unknown mint": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.TokenB = weavetest.NewCondition().Address() },
			WantErr: errors.ErrNotFound,
		},
		"scaled amount overflows": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.AmountTokenB = math.MaxUint64 },
			WantErr: errors.ErrOverflow,
		},
		"source account of another mint": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.InitializerTokenA = f.aliceB },
			WantErr: errors.ErrCurrency,
		},
		"source account of another owner": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.InitializerTokenA = f.bobA },
			WantErr: errors.ErrUnauthorized,
		},
		"insufficient token a": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.AmountTokenA = 101 },
			WantErr: errors.ErrInsufficientAmount,
		},
		"escrow address does not match": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.EscrowAddress = weavetest.NewCondition().Address() },
			WantErr: errors.ErrInput,
		},
		"custody address does not match": {
			Mutate:  func(f *swapFixture, msg *InitializeMsg) { msg.CustodyAddress = weavetest.NewCondition().Address() },
			WantErr: errors.ErrInput,
		},
		"native coins cover the custody deposit only": {
			Setup: func(t testing.TB, f *swapFixture) {
				spare := uint64(nativeFunds - 3*accountDeposit)
				assert.Nil(t, f.bank.MoveCoins(f.db, f.alice.Address(), f.bob.Address(), spare))
			},
			WantErr:   errors.ErrInsufficientAmount,
			WantCoins: accountDeposit,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newSwapFixture(t)
			if tc.Setup != nil {
				tc.Setup(t, f)
			}
			wantCoins := tc.WantCoins
			if wantCoins == 0 {
				wantCoins = nativeFunds - 2*accountDeposit
			}
			msg := f.initializeMsg("swap-1")
			if tc.Mutate != nil {
				tc.Mutate(f, msg)
			}
			signer := f.alice
			if tc.Signer != nil {
				signer = tc.Signer(f)
			}
			_, err := deliver(f, f.initialize, signer, msg)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}

			// Nothing was written.
			recordAddr, _, err := RecordAddress(f.alice.Address(), msg.ID)
			if err == nil {
				assert.IsErr(t, errors.ErrNotFound, NewBucket().Has(f.db, recordAddr))
			}
			assert.Equal(t, uint64(10000), f.balance(t, f.aliceA))
			assert.Equal(t, wantCoins, f.coins(t, f.alice.Address()))
			if err == nil {
				custodyAddr, _, err := CustodyAddress(recordAddr)
				assert.Nil(t, err)
				_, err = f.tokens.GetAccount(f.db, custodyAddr)
				assert.IsErr(t, errors.ErrNotFound, err)
				assert.Equal(t, uint64(0), f.coins(t, custodyAddr))
			}
		})
	}
}

func TestInitializeDuplicate(t *testing.T) {
	f := newSwapFixture(t)
	msg := f.initializeMsg("swap-1")
	msg.AmountTokenA = 40
	_, err := deliver(f, f.initialize, f.alice, msg)
	assert.Nil(t, err)

	_, err = deliver(f, f.initialize, f.alice, msg)
	assert.IsErr(t, errors.ErrDuplicate, err)
	assert.Equal(t, uint64(6000), f.balance(t, f.aliceA))

	// Another id is another escrow.
	_, err = deliver(f, f.initialize, f.alice, f.initializeMsg("swap-2"))
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
	msg = f.initializeMsg("swap-2")
	msg.AmountTokenA = 60
	_, err = deliver(f, f.initialize, f.alice, msg)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), f.balance(t, f.aliceA))
}

func TestFinalizeErrors(t *testing.T) {
	cases := map[string]struct {
		Mutate  func(f *swapFixture, msg *FinalizeMsg)
		Signer  func(f *swapFixture) weave.Condition
		WantErr *errors.Error
	}{
		"taker did not sign": {
			Signer:  func(f *swapFixture) weave.Condition { return f.alice },
			WantErr: errors.ErrUnauthorized,
		},
		"unknown escrow": {
			Mutate:  func(f *swapFixture, msg *FinalizeMsg) { msg.EscrowAddress = weavetest.NewCondition().Address() },
			WantErr: errors.ErrNotFound,
		},
		"custody address mismatch": {
			Mutate:  func(f *swapFixture, msg *FinalizeMsg) { msg.CustodyAddress = weavetest.NewCondition().Address() },
			WantErr: errors.ErrUnauthorized,
		},
		"initializer mismatch": {
			Mutate:  func(f *swapFixture, msg *FinalizeMsg) { msg.Initializer = f.bob.Address() },
			WantErr: errors.ErrInput,
		},
		"taker token a account of another mint": {
			Mutate:  func(f *swapFixture, msg *FinalizeMsg) { msg.TakerTokenA = f.bobB },
			WantErr: errors.ErrCurrency,
		},
		"taker token a account of another owner": {
			Mutate:  func(f *swapFixture, msg *FinalizeMsg) { msg.TakerTokenA = f.aliceA },
			WantErr: errors.ErrUnauthorized,
		},
		"initializer token b account of another owner": {
			Mutate:  func(f *swapFixture, msg *FinalizeMsg) { msg.InitializerTokenB = f.bobB },
			WantErr: errors.ErrUnauthorized,
		},
		"taker token b account of another mint": {
			Mutate:  func(f *swapFixture, msg *FinalizeMsg) { msg.TakerTokenB = f.bobA },
			WantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newSwapFixture(t)
			_, err := deliver(f, f.initialize, f.alice, f.initializeMsg("swap-1"))
			assert.Nil(t, err)

			msg := f.finalizeMsg(t, "swap-1")
			custody := msg.CustodyAddress
			if tc.Mutate != nil {
				tc.Mutate(f, msg)
			}
			signer := f.bob
			if tc.Signer != nil {
				signer = tc.Signer(f)
			}
			_, err = deliver(f, f.finalize, signer, msg)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}

			assert.Equal(t, uint64(10000), f.balance(t, custody))
			assert.Equal(t, uint64(50000000), f.balance(t, f.bobB))
			assert.Equal(t, uint64(0), f.balance(t, f.aliceB))
		})
	}
}
