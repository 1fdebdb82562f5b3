package cash

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

// Controller is the functionality needed by cash.Handler and other
// extensions that keep native coin deposits.
type Controller interface {
	// Balance returns the amount held by the address. An address without a
	// wallet holds zero coins.
	Balance(db weave.ReadOnlyKVStore, addr weave.Address) (uint64, error)

	// MoveCoins moves the given amount from src to dest. It fails if src
	// does not hold enough coins.
	MoveCoins(db weave.KVStore, src, dest weave.Address, amount uint64) error

	// CoinMint adds the given amount of newly created coins to dest.
	CoinMint(db weave.KVStore, dest weave.Address, amount uint64) error
}

// BaseController is a simple implementation of the Controller interface.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on the wallets bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

func (c BaseController) Balance(db weave.ReadOnlyKVStore, addr weave.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "address")
	}
	w, err := loadWallet(db, c.bucket, addr)
	if err != nil {
		return 0, err
	}
	return w.Amount, nil
}

func (c BaseController) MoveCoins(db weave.KVStore, src, dest weave.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := loadWallet(db, c.bucket, src)
	if err != nil {
		return err
	}
	if sender.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %d, %d required", src, sender.Amount, amount)
	}
	if src.Equals(dest) {
		return nil
	}
	sender.Amount -= amount
	if err := storeWallet(db, c.bucket, src, sender); err != nil {
		return err
	}

	recipient, err := loadWallet(db, c.bucket, dest)
	if err != nil {
		return err
	}
	if recipient.Amount+amount < recipient.Amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	recipient.Amount += amount
	return storeWallet(db, c.bucket, dest, recipient)
}

func (c BaseController) CoinMint(db weave.KVStore, dest weave.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := loadWallet(db, c.bucket, dest)
	if err != nil {
		return err
	}
	if w.Amount+amount < w.Amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.Amount += amount
	return storeWallet(db, c.bucket, dest, w)
}
