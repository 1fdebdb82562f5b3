package weave

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/iov-one/tokenswap/errors"
)

const (
	// MaxSeeds is the maximum number of seeds a derived address can be
	// computed from. The bump counts as one of them.
	MaxSeeds = 16

	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 256

	derivedAddressMarker = "DerivedAddress"
)

// FindDerivedAddress searches for the derived address of the given program
// and seeds. Bumps are tried from 255 down to 0 and the first address that
// is not a valid ed25519 point is returned together with its bump. Such an
// address cannot have a private key, so only the program can authorize
// its use.
//
// The search must only happen when the address is first created. Store the
// bump and use CreateDerivedAddress afterwards.
func FindDerivedAddress(program string, seeds ...[]byte) (Address, uint8, error) {
	if err := validateSeeds(program, seeds); err != nil {
		return nil, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		addr := hashDerived(program, uint8(bump), seeds)
		if !IsOnCurve(addr) {
			return addr, uint8(bump), nil
		}
	}
	return nil, 0, errors.Wrap(errors.ErrState, "no viable bump")
}

// CreateDerivedAddress computes the derived address for the given program,
// bump and seeds. It fails if the result is a valid ed25519 point.
func CreateDerivedAddress(program string, bump uint8, seeds ...[]byte) (Address, error) {
	if err := validateSeeds(program, seeds); err != nil {
		return nil, err
	}
	addr := hashDerived(program, bump, seeds)
	if IsOnCurve(addr) {
		return nil, errors.Wrap(errors.ErrInput, "derived address is on the curve")
	}
	return addr, nil
}

// VerifyDerivedAddress re-derives the address from the given bump and seeds
// and ensures it is equal to want.
func VerifyDerivedAddress(want Address, program string, bump uint8, seeds ...[]byte) error {
	got, err := CreateDerivedAddress(program, bump, seeds...)
	if err != nil {
		return err
	}
	if !got.Equals(want) {
		return errors.Wrapf(errors.ErrUnauthorized, "derived address mismatch: %s != %s", got, want)
	}
	return nil
}

// IsOnCurve returns true if the given bytes are the canonical encoding of a
// point on the ed25519 curve.
func IsOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

func validateSeeds(program string, seeds [][]byte) error {
	if program == "" {
		return errors.Wrap(errors.ErrEmpty, "program")
	}
	if len(seeds) >= MaxSeeds {
		return errors.Wrapf(errors.ErrInput, "too many seeds: %d", len(seeds))
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return errors.Wrapf(errors.ErrInput, "seed %d too long: %d", i, len(s))
		}
	}
	return nil
}

func hashDerived(program string, bump uint8, seeds [][]byte) Address {
	h := sha256.New()
	for _, s := range seeds {
		_, _ = h.Write(s)
	}
	_, _ = h.Write([]byte{bump})
	_, _ = h.Write([]byte(program))
	_, _ = h.Write([]byte(derivedAddressMarker))
	return h.Sum(nil)
}
