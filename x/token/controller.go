package token

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/cash"
)

// Controller is the asset management functionality other extensions can
// build on. Every operation that moves funds requires the authority to be
// authenticated in the given context.
type Controller interface {
	// GetMint returns the mint stored under the address or ErrNotFound.
	GetMint(db weave.ReadOnlyKVStore, addr weave.Address) (*Mint, error)

	// GetAccount returns the account stored under the address or
	// ErrNotFound.
	GetAccount(db weave.ReadOnlyKVStore, addr weave.Address) (*Account, error)

	// CreateMint registers a new mint and returns its address.
	CreateMint(db weave.KVStore, name string, decimals uint32, authority weave.Address) (weave.Address, error)

	// CreateAccount creates an empty account of the mint at the given
	// address. The configured account deposit is moved from the payer to
	// the account address.
	CreateAccount(ctx weave.Context, db weave.KVStore, addr, mint, owner, payer weave.Address) (*Account, error)

	// MintTo creates new supply in the destination account.
	MintTo(ctx weave.Context, db weave.KVStore, mint, dest, authority weave.Address, amount uint64) error

	// Transfer moves the amount of the mint from the source to the
	// destination account. The authority must own the source account.
	Transfer(ctx weave.Context, db weave.KVStore, amount uint64, mint, src, dest, authority weave.Address) error

	// CloseAccount removes an empty account and moves all native coins held
	// at its address, deposit included, to the destination. The authority
	// must own the account.
	CloseAccount(ctx weave.Context, db weave.KVStore, account, dest, authority weave.Address) error
}

// BaseController is the Controller implementation backed by the mint and
// account buckets.
type BaseController struct {
	auth     x.Authenticator
	cash     cash.Controller
	mints    orm.ModelBucket
	accounts orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that checks authorities with auth and
// keeps account deposits using the cash controller.
func NewController(auth x.Authenticator, cashCtrl cash.Controller) BaseController {
	return BaseController{
		auth:     auth,
		cash:     cashCtrl,
		mints:    NewMintBucket(),
		accounts: NewAccountBucket(),
	}
}

func (c BaseController) GetMint(db weave.ReadOnlyKVStore, addr weave.Address) (*Mint, error) {
	var m Mint
	if err := c.mints.One(db, addr, &m); err != nil {
		return nil, errors.Wrapf(err, "mint %s", addr)
	}
	return &m, nil
}

func (c BaseController) GetAccount(db weave.ReadOnlyKVStore, addr weave.Address) (*Account, error) {
	var a Account
	if err := c.accounts.One(db, addr, &a); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &a, nil
}

func (c BaseController) CreateMint(db weave.KVStore, name string, decimals uint32, authority weave.Address) (weave.Address, error) {
	id, err := mintSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "mint sequence")
	}
	addr := MintCondition(id).Address()
	mint := Mint{
		Metadata:      &weave.Metadata{Schema: 1},
		Name:          name,
		Decimals:      decimals,
		MintAuthority: authority,
	}
	if _, err := c.mints.Put(db, addr, &mint); err != nil {
		return nil, errors.Wrap(err, "save mint")
	}
	return addr, nil
}

func (c BaseController) CreateAccount(ctx weave.Context, db weave.KVStore, addr, mint, owner, payer weave.Address) (*Account, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "account address")
	}
	if !c.auth.HasAddress(ctx, payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature required")
	}
	if _, err := c.GetMint(db, mint); err != nil {
		return nil, err
	}
	switch err := c.accounts.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "account %s", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	if conf.AccountDeposit > 0 {
		if err := c.cash.MoveCoins(db, payer, addr, conf.AccountDeposit); err != nil {
			return nil, errors.Wrap(err, "account deposit")
		}
	}

	account := Account{
		Metadata: &weave.Metadata{Schema: 1},
		Mint:     mint,
		Owner:    owner,
		Deposit:  conf.AccountDeposit,
	}
	if _, err := c.accounts.Put(db, addr, &account); err != nil {
		return nil, errors.Wrap(err, "save account")
	}
	return &account, nil
}

func (c BaseController) MintTo(ctx weave.Context, db weave.KVStore, mintAddr, dest, authority weave.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	mint, err := c.GetMint(db, mintAddr)
	if err != nil {
		return err
	}
	if !mint.MintAuthority.Equals(authority) || !c.auth.HasAddress(ctx, authority) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authority signature required")
	}
	account, err := c.GetAccount(db, dest)
	if err != nil {
		return err
	}
	if !account.Mint.Equals(mintAddr) {
		return errors.Wrapf(errors.ErrCurrency, "account %s is not of mint %s", dest, mintAddr)
	}
	// Supply is the sum of all account balances, so it overflows first.
	if mint.Supply+amount < mint.Supply {
		return errors.Wrap(errors.ErrOverflow, "mint supply")
	}
	mint.Supply += amount
	account.Amount += amount

	if _, err := c.mints.Put(db, mintAddr, mint); err != nil {
		return errors.Wrap(err, "save mint")
	}
	if _, err := c.accounts.Put(db, dest, account); err != nil {
		return errors.Wrap(err, "save account")
	}
	return nil
}

func (c BaseController) Transfer(ctx weave.Context, db weave.KVStore, amount uint64, mint, src, dest, authority weave.Address) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	from, err := c.GetAccount(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	to, err := c.GetAccount(db, dest)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !from.Mint.Equals(mint) {
		return errors.Wrapf(errors.ErrCurrency, "source account is not of mint %s", mint)
	}
	if !to.Mint.Equals(mint) {
		return errors.Wrapf(errors.ErrCurrency, "destination account is not of mint %s", mint)
	}
	if !from.Owner.Equals(authority) {
		return errors.Wrap(errors.ErrUnauthorized, "authority does not own the source account")
	}
	if !c.auth.HasAddress(ctx, authority) {
		return errors.Wrap(errors.ErrUnauthorized, "authority not authenticated")
	}
	if from.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %d, %d required", src, from.Amount, amount)
	}
	if src.Equals(dest) {
		return nil
	}
	if to.Amount+amount < to.Amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}
	from.Amount -= amount
	to.Amount += amount

	if _, err := c.accounts.Put(db, src, from); err != nil {
		return errors.Wrap(err, "save source")
	}
	if _, err := c.accounts.Put(db, dest, to); err != nil {
		return errors.Wrap(err, "save destination")
	}
	return nil
}

func (c BaseController) CloseAccount(ctx weave.Context, db weave.KVStore, addr, dest, authority weave.Address) error {
	account, err := c.GetAccount(db, addr)
	if err != nil {
		return err
	}
	if !account.Owner.Equals(authority) || !c.auth.HasAddress(ctx, authority) {
		return errors.Wrap(errors.ErrUnauthorized, "account owner signature required")
	}
	if account.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "account holds %d", account.Amount)
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	// The deposit and any coins sent to the account address later leave
	// together, nothing stays behind a deleted account.
	coins, err := c.cash.Balance(db, addr)
	if err != nil {
		return errors.Wrap(err, "account coins")
	}
	if coins > 0 {
		if err := c.cash.MoveCoins(db, addr, dest, coins); err != nil {
			return errors.Wrap(err, "return coins")
		}
	}
	if err := c.accounts.Delete(db, addr); err != nil {
		return errors.Wrap(err, "delete account")
	}
	return nil
}
