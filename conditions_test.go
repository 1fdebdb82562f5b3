package weave_test

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest/assert"
	"github.com/mr-tron/base58"
)

func TestAddressPrinting(t *testing.T) {
	b := sha256.Sum256([]byte("ABCD123456LHB"))
	addr := weave.Address(b[:])

	assert.Equal(t, base58.Encode(b[:]), addr.String())
	assert.Equal(t, "(nil)", weave.Address(nil).String())

	cond := weave.NewCondition("12a", "32b", []byte("ABCD123456LHB"))
	if cond.String() == fmt.Sprintf("%X", []byte(cond)) {
		t.Fatal("condition printed as raw hex")
	}
}

func TestConditionAddress(t *testing.T) {
	key := sha256.Sum256([]byte("public key"))

	cases := map[string]struct {
		cond weave.Condition
		want weave.Address
	}{
		"key condition keeps the key": {
			cond: weave.KeyCondition(key[:]),
			want: weave.Address(key[:]),
		},
		"derived condition keeps the address": {
			cond: weave.DerivedCondition("escrow", key[:]),
			want: weave.Address(key[:]),
		},
		"other conditions are hashed": {
			cond: weave.NewCondition("multi", "usage", key[:]),
			want: weave.NewAddress(weave.NewCondition("multi", "usage", key[:])),
		},
		"short key data is hashed": {
			cond: weave.KeyCondition([]byte("short")),
			want: weave.NewAddress(weave.KeyCondition([]byte("short"))),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := tc.cond.Address()
			assert.Equal(t, tc.want, got)
			assert.Nil(t, got.Validate())
		})
	}
}

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    weave.Condition
		wantExt string
		wantTyp string
		wantErr *errors.Error
	}{
		"valid": {
			cond:    weave.NewCondition("sigs", "ed25519", []byte{1, 2, 3}),
			wantExt: "sigs",
			wantTyp: "ed25519",
		},
		"data with a newline": {
			cond:    weave.NewCondition("derive", "escrow", []byte("a\nb")),
			wantExt: "derive",
			wantTyp: "escrow",
		},
		"extension too short": {
			cond:    weave.NewCondition("a", "ed25519", []byte{1}),
			wantErr: errors.ErrInput,
		},
		"no data": {
			cond:    weave.Condition("sigs/ed25519/"),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, _, err := tc.cond.Parse()
			assert.IsErr(t, tc.wantErr, err)
			assert.IsErr(t, tc.wantErr, tc.cond.Validate())
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantExt, ext)
				assert.Equal(t, tc.wantTyp, typ)
			}
		})
	}
}

func TestAddressUnmarshalJSON(t *testing.T) {
	raw := sha256.Sum256([]byte("address"))
	addr := weave.Address(raw[:])
	cond := weave.NewCondition("foo", "bar", []byte("conditiondata"))

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr weave.Address
	}{
		"default decoding": {
			json:     `"` + base58.Encode(raw[:]) + `"`,
			wantAddr: addr,
		},
		"hex decoding": {
			json:     fmt.Sprintf(`"hex:%x"`, raw[:]),
			wantAddr: addr,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: cond.Address(),
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"invalid base58": {
			json:    `"0OIl"`,
			wantErr: errors.ErrInput,
		},
		"wrong length": {
			json:    `"hex:0011"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a weave.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantAddr, a)
			}
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	raw := sha256.Sum256([]byte("round trip"))
	addr := weave.Address(raw[:])

	b, err := json.Marshal(addr)
	assert.Nil(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(b))

	var got weave.Address
	assert.Nil(t, json.Unmarshal(b, &got))
	assert.Equal(t, addr, got)
}

func TestConditionJSON(t *testing.T) {
	cond := weave.NewCondition("sigs", "ed25519", []byte{0xde, 0xad})

	b, err := json.Marshal(cond)
	assert.Nil(t, err)
	assert.Equal(t, `"sigs/ed25519/DEAD"`, string(b))

	var got weave.Condition
	assert.Nil(t, json.Unmarshal(b, &got))
	assert.Equal(t, cond, got)
}
