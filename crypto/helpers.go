package crypto

import (
	"github.com/iov-one/tokenswap"
)

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() weave.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// Address is a convenience method returning the address of the key condition.
func (p *PublicKey) Address() weave.Address {
	cond := p.Condition()
	if cond == nil {
		return nil
	}
	return cond.Address()
}
