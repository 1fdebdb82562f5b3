package token

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
)

const optKey = "token"

// Genesis is the "token" section of the genesis file.
type Genesis struct {
	Mints []struct {
		Address       weave.Address `json:"address"`
		Name          string        `json:"name"`
		Decimals      uint32        `json:"decimals"`
		MintAuthority weave.Address `json:"mint_authority"`
	} `json:"mints"`
	Accounts []struct {
		Address weave.Address `json:"address"`
		Mint    weave.Address `json:"mint"`
		Owner   weave.Address `json:"owner"`
		Amount  uint64        `json:"amount"`
	} `json:"accounts"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = Initializer{}

// FromGenesis stores the mints and accounts declared in the genesis file.
// Account address may be omitted, the associated account address is used
// then. Mint supply is the sum of its account balances.
func (Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}

	mints := NewMintBucket()
	for i, m := range gen.Mints {
		if err := m.Address.Validate(); err != nil {
			return errors.Wrapf(err, "mint %d address", i)
		}
		mint := Mint{
			Metadata:      &weave.Metadata{Schema: 1},
			Name:          m.Name,
			Decimals:      m.Decimals,
			MintAuthority: m.MintAuthority,
		}
		if _, err := mints.Put(db, m.Address, &mint); err != nil {
			return errors.Wrapf(err, "mint %d", i)
		}
	}

	accounts := NewAccountBucket()
	for i, a := range gen.Accounts {
		var mint Mint
		if err := mints.One(db, a.Mint, &mint); err != nil {
			return errors.Wrapf(err, "account %d mint", i)
		}
		addr := a.Address
		if len(addr) == 0 {
			var err error
			if addr, _, err = AssociatedAccountAddress(a.Owner, a.Mint); err != nil {
				return errors.Wrapf(err, "account %d address", i)
			}
		}
		if err := accounts.Has(db, addr); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "account %d", i)
		}
		if mint.Supply+a.Amount < mint.Supply {
			return errors.Wrapf(errors.ErrOverflow, "account %d", i)
		}
		mint.Supply += a.Amount
		account := Account{
			Metadata: &weave.Metadata{Schema: 1},
			Mint:     a.Mint,
			Owner:    a.Owner,
			Amount:   a.Amount,
		}
		if _, err := accounts.Put(db, addr, &account); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if _, err := mints.Put(db, a.Mint, &mint); err != nil {
			return errors.Wrapf(err, "account %d mint", i)
		}
	}

	var conf Configuration
	switch err := gconf.InitConfig(db, opts, confPkg, &conf); {
	case err == nil, errors.ErrNotFound.Is(err):
		// Configuration is optional.
	default:
		return errors.Wrap(err, "init config")
	}
	return nil
}
