/*
Package derived lets a program act on behalf of the addresses derived from
its own seeds.

A derived address has no private key. Before moving funds held by such an
address, the program re-creates the address from the stored bump and the
seeds and places the resulting condition in the context. The authority
lives only as long as that context does and is never cached.
*/
package derived

import (
	"context"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
)

type contextKey int // local to the derived module

const (
	contextKeyAuthorities contextKey = iota
)

// WithAuthority re-derives the address of the given program from bump and
// seeds and returns a context in which that address is authenticated.
// Authorities added earlier on the same context are kept.
//
// If want is not empty, the derived address must be equal to it, otherwise
// ErrUnauthorized is returned.
func WithAuthority(ctx weave.Context, want weave.Address, program string, bump uint8, seeds ...[]byte) (weave.Context, error) {
	addr, err := weave.CreateDerivedAddress(program, bump, seeds...)
	if err != nil {
		return nil, errors.Wrap(err, "derive address")
	}
	if len(want) != 0 && !want.Equals(addr) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "derived address mismatch: %s != %s", addr, want)
	}

	prev := Authenticate{}.GetConditions(ctx)
	conds := make([]weave.Condition, 0, len(prev)+1)
	conds = append(conds, prev...)
	conds = append(conds, weave.DerivedCondition(program, addr))
	return context.WithValue(ctx, contextKeyAuthorities, conds), nil
}

// Authenticate gets permissions set by WithAuthority.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns all derived authorities of the current context.
func (Authenticate) GetConditions(ctx weave.Context) []weave.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyAuthorities).([]weave.Condition)
	return val
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
