package weavetest

import "encoding/binary"

// SequenceID returns the key the orm assigns to the n-th value of a
// sequence, for example the address seed of the n-th mint.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
