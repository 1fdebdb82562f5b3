package escrow

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

const (
	// ProgramName is used to derive record and custody addresses.
	ProgramName = "escrow"

	// MaxIDLength is the longest escrow id, in bytes.
	MaxIDLength = 150

	// BucketName is where escrow records are stored.
	BucketName = "escrow"
)

var _ orm.Model = (*EscrowRecord)(nil)

// Validate ensures the record is well formed.
func (r *EscrowRecord) Validate() error {
	if err := r.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := r.Initializer.Validate(); err != nil {
		return errors.Wrap(err, "initializer")
	}
	if err := r.TokenA.Validate(); err != nil {
		return errors.Wrap(err, "token a")
	}
	if err := r.TokenB.Validate(); err != nil {
		return errors.Wrap(err, "token b")
	}
	if r.TokenA.Equals(r.TokenB) {
		return errors.Wrap(errors.ErrCurrency, "token a and token b must differ")
	}
	if r.AmountTokenA == 0 || r.AmountTokenB == 0 {
		return errors.Wrap(errors.ErrAmount, "amounts must be positive")
	}
	if err := validateID(r.ID); err != nil {
		return err
	}
	if r.DerivationBumpRecord > 255 || r.DerivationBumpCustody > 255 {
		return errors.Wrap(errors.ErrInput, "bump out of range")
	}
	return nil
}

func validateID(id string) error {
	switch n := len(id); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "id")
	case n > MaxIDLength:
		return errors.Wrapf(errors.ErrInput, "id must not be longer than %d bytes", MaxIDLength)
	}
	return nil
}

// NewBucket returns a bucket of escrow records keyed by the record address
// and indexed by the initializer.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &EscrowRecord{},
		orm.WithIndex("initializer", initializerIndexer, false),
	)
}

func initializerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	r, ok := obj.Value().(*EscrowRecord)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "can only take index of EscrowRecord, got %T", obj.Value())
	}
	return r.Initializer, nil
}

// RecordAddress finds the address of the escrow record opened by the
// initializer under the given id.
func RecordAddress(initializer weave.Address, id string) (weave.Address, uint8, error) {
	return weave.FindDerivedAddress(ProgramName, initializer, []byte(id))
}

// CustodyAddress finds the address of the custody account of an escrow
// record.
func CustodyAddress(record weave.Address) (weave.Address, uint8, error) {
	return weave.FindDerivedAddress(ProgramName, record)
}

// verifyAddresses checks that the record and custody addresses are the ones
// derived from the record content using the stored bumps.
func verifyAddresses(r *EscrowRecord, recordAddr, custodyAddr weave.Address) error {
	if err := weave.VerifyDerivedAddress(recordAddr, ProgramName, uint8(r.DerivationBumpRecord), r.Initializer, []byte(r.ID)); err != nil {
		return errors.Wrap(err, "record address")
	}
	if err := weave.VerifyDerivedAddress(custodyAddr, ProgramName, uint8(r.DerivationBumpCustody), recordAddr); err != nil {
		return errors.Wrap(err, "custody address")
	}
	return nil
}
