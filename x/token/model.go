package token

import (
	"regexp"

	"github.com/holiman/uint256"
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

const (
	// ProgramName is used to derive associated account addresses.
	ProgramName = "token"

	// MaxDecimals keeps one whole unit, 10^decimals, within uint64.
	MaxDecimals = 19
)

var isMintName = regexp.MustCompile(`^[A-Za-z0-9 \-_:]{3,32}$`).MatchString

var _ orm.Model = (*Mint)(nil)

func (m *Mint) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Name != "" && !isMintName(m.Name) {
		return errors.Wrapf(errors.ErrInput, "invalid mint name %q", m.Name)
	}
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrInput, "decimals must not be greater than %d", MaxDecimals)
	}
	if err := m.MintAuthority.Validate(); err != nil {
		return errors.Wrap(err, "mint authority")
	}
	return nil
}

var _ orm.Model = (*Account)(nil)

func (a *Account) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := a.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// NewMintBucket returns a bucket of mints keyed by the mint address.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket("mint", &Mint{})
}

// NewAccountBucket returns a bucket of token accounts keyed by the account
// address and indexed by their owner.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket("account", &Account{},
		orm.WithIndex("owner", ownerIndexer, false),
	)
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	a, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "can only take index of Account, got %T", obj.Value())
	}
	return a.Owner, nil
}

// mintSeq assigns addresses to newly created mints.
var mintSeq = orm.NewSequence("mint", "address")

// MintCondition returns the condition whose address identifies the mint
// created with the given sequence value.
func MintCondition(id []byte) weave.Condition {
	return weave.NewCondition(ProgramName, "mint", id)
}

// AssociatedAccountAddress returns the address of the canonical account
// of the owner for the given mint, together with its bump.
func AssociatedAccountAddress(owner, mint weave.Address) (weave.Address, uint8, error) {
	return weave.FindDerivedAddress(ProgramName, owner, mint)
}

// ScaleAmount converts an amount of whole units into the smallest units of
// a mint with the given decimals. It fails with ErrOverflow if the result
// does not fit into uint64.
func ScaleAmount(amount uint64, decimals uint32) (uint64, error) {
	if decimals > MaxDecimals {
		return 0, errors.Wrapf(errors.ErrInput, "decimals must not be greater than %d", MaxDecimals)
	}
	unit := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(decimals)))
	res, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(amount), unit)
	if overflow || !res.IsUint64() {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * 10^%d", amount, decimals)
	}
	return res.Uint64(), nil
}
