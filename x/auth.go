package x

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// Authenticator tells which conditions authorized the transaction being
// processed. Handlers get it through their constructor, so a transaction
// signature and the authority of a derived account are checked the same
// way.
type Authenticator interface {
	// GetConditions returns every condition fulfilled by the transaction.
	GetConditions(weave.Context) []weave.Condition
	// HasAddress reports whether any fulfilled condition has this address.
	HasAddress(weave.Context, weave.Address) bool
}

// MultiAuth accepts whatever any of its members accepts.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

// ChainAuth combines authenticators. Conditions are reported in the order
// of the authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth(impls)
}

func (m MultiAuth) GetConditions(ctx weave.Context) []weave.Condition {
	var res []weave.Condition
	for _, impl := range m {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

func (m MultiAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, impl := range m {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// RequireAddress returns ErrUnauthorized unless addr authorized the
// transaction. Role names the party in the error, for example "taker".
func RequireAddress(ctx weave.Context, auth Authenticator, addr weave.Address, role string) error {
	if len(addr) == 0 {
		return errors.Wrapf(errors.ErrUnauthorized, "%s address missing", role)
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s signature required", role)
	}
	return nil
}

// GetAddresses returns the addresses of all conditions fulfilled by the
// transaction.
func GetAddresses(ctx weave.Context, auth Authenticator) []weave.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]weave.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first fulfilled condition or nil.
func MainSigner(ctx weave.Context, auth Authenticator) weave.Condition {
	conds := auth.GetConditions(ctx)
	if len(conds) == 0 {
		return nil
	}
	return conds[0]
}
