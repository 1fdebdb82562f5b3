package token

import (
	"math"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestScaleAmount(t *testing.T) {
	cases := map[string]struct {
		Amount   uint64
		Decimals uint32
		Want     uint64
		WantErr  *errors.Error
	}{
		"no decimals": {
			Amount:   42,
			Decimals: 0,
			Want:     42,
		},
		"two decimals": {
			Amount:   100,
			Decimals: 2,
			Want:     10000,
		},
		"six decimals": {
			Amount:   50,
			Decimals: 6,
			Want:     50000000,
		},
		"largest unit": {
			Amount:   1,
			Decimals: MaxDecimals,
			Want:     10000000000000000000,
		},
		"overflow": {
			Amount:   2,
			Decimals: MaxDecimals,
			WantErr:  errors.ErrOverflow,
		},
		"max value without decimals": {
			Amount:   math.MaxUint64,
			Decimals: 0,
			Want:     math.MaxUint64,
		},
		"max value overflows with decimals": {
			Amount:   math.MaxUint64,
			Decimals: 1,
			WantErr:  errors.ErrOverflow,
		},
		"too many decimals": {
			Amount:   1,
			Decimals: MaxDecimals + 1,
			WantErr:  errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ScaleAmount(tc.Amount, tc.Decimals)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestModelValidation(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Model   interface{ Validate() error }
		WantErr *errors.Error
	}{
		"valid mint": {
			Model: &Mint{Metadata: &weave.Metadata{Schema: 1}, Name: "Token A", Decimals: 2, MintAuthority: addr},
		},
		"mint without metadata": {
			Model:   &Mint{Decimals: 2, MintAuthority: addr},
			WantErr: errors.ErrMetadata,
		},
		"mint with invalid name": {
			Model:   &Mint{Metadata: &weave.Metadata{Schema: 1}, Name: "?!", MintAuthority: addr},
			WantErr: errors.ErrInput,
		},
		"mint with too many decimals": {
			Model:   &Mint{Metadata: &weave.Metadata{Schema: 1}, Decimals: 20, MintAuthority: addr},
			WantErr: errors.ErrInput,
		},
		"mint without authority": {
			Model:   &Mint{Metadata: &weave.Metadata{Schema: 1}},
			WantErr: errors.ErrInput,
		},
		"valid account": {
			Model: &Account{Metadata: &weave.Metadata{Schema: 1}, Mint: addr, Owner: addr, Amount: 1},
		},
		"account without owner": {
			Model:   &Account{Metadata: &weave.Metadata{Schema: 1}, Mint: addr},
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Model.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestAssociatedAccountAddress(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	mintA := MintCondition(weavetest.SequenceID(1)).Address()
	mintB := MintCondition(weavetest.SequenceID(2)).Address()

	a, bump, err := AssociatedAccountAddress(owner, mintA)
	assert.Nil(t, err)
	assert.Equal(t, false, weave.IsOnCurve(a))

	again, err := weave.CreateDerivedAddress(ProgramName, bump, owner, mintA)
	assert.Nil(t, err)
	assert.Equal(t, a, again)

	b, _, err := AssociatedAccountAddress(owner, mintB)
	assert.Nil(t, err)
	if a.Equals(b) {
		t.Fatal("different mints must not share an account address")
	}
}
