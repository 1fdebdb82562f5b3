package derived

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestWithAuthority(t *testing.T) {
	seed := []byte("some seed")
	addr, bump, err := weave.FindDerivedAddress("escrow", seed)
	assert.Nil(t, err)

	ctx := context.Background()
	auth := Authenticate{}
	assert.Equal(t, false, auth.HasAddress(ctx, addr))

	authCtx, err := WithAuthority(ctx, addr, "escrow", bump, seed)
	assert.Nil(t, err)
	assert.Equal(t, true, auth.HasAddress(authCtx, addr))
	assert.Equal(t, 1, len(auth.GetConditions(authCtx)))

	// The parent context is never modified.
	assert.Equal(t, false, auth.HasAddress(ctx, addr))

	// Authorities accumulate.
	other, otherBump, err := weave.FindDerivedAddress("token", seed)
	assert.Nil(t, err)
	both, err := WithAuthority(authCtx, nil, "token", otherBump, seed)
	assert.Nil(t, err)
	assert.Equal(t, true, auth.HasAddress(both, addr))
	assert.Equal(t, true, auth.HasAddress(both, other))
	assert.Equal(t, false, auth.HasAddress(authCtx, other))
}

func TestWithAuthorityMismatch(t *testing.T) {
	seed := []byte("some seed")
	addr, bump, err := weave.FindDerivedAddress("escrow", seed)
	assert.Nil(t, err)

	cases := map[string]struct {
		Want    weave.Address
		Program string
		Seeds   [][]byte
	}{
		"different seed": {
			Want:    addr,
			Program: "escrow",
			Seeds:   [][]byte{[]byte("other seed")},
		},
		"different program": {
			Want:    addr,
			Program: "token",
			Seeds:   [][]byte{seed},
		},
		"key backed address": {
			Want:    weave.NewAddress([]byte("not derived")),
			Program: "escrow",
			Seeds:   [][]byte{seed},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx, err := WithAuthority(context.Background(), tc.Want, tc.Program, bump, tc.Seeds...)
			// A different derivation may land on the curve for this
			// bump, which is rejected as invalid input instead.
			if !errors.ErrUnauthorized.Is(err) && !errors.ErrInput.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Nil(t, ctx)
		})
	}
}
