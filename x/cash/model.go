package cash

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

// BucketName is where we store the wallets
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// Validate requires a metadata header. Any balance is valid.
func (w *Wallet) Validate() error {
	if err := w.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

// NewBucket returns a bucket of wallets keyed by their address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}

// loadWallet returns the wallet stored under the address or an empty wallet
// if the address holds no coins.
func loadWallet(db weave.ReadOnlyKVStore, b orm.ModelBucket, addr weave.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{Metadata: &weave.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "load wallet")
	}
}

// storeWallet saves the wallet, deleting it once it holds no coins.
func storeWallet(db weave.KVStore, b orm.ModelBucket, addr weave.Address, w *Wallet) error {
	if w.Amount == 0 {
		err := b.Delete(db, addr)
		if err != nil && !errors.ErrNotFound.Is(err) {
			return errors.Wrap(err, "delete wallet")
		}
		return nil
	}
	if _, err := b.Put(db, addr, w); err != nil {
		return errors.Wrap(err, "save wallet")
	}
	return nil
}
