package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestSequence(t *testing.T) {
	cases := map[string]struct {
		bucket     string
		name       string
		init       int64
		increments int64
	}{
		"fresh sequence":      {"cnt", "id", 0, 22},
		"another name":        {"cnt", "other", 0, 11},
		"existing sequence":   {"cnt", "id", 22, 18},
		"many increments":     {"foo", "id", 0, 300},
		"continues from init": {"foo", "id", 7, 1},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			s := NewSequence(tc.bucket, tc.name)

			for i := int64(0); i < tc.init; i++ {
				_, err := s.NextInt(db)
				assert.Nil(t, err)
			}
			_, orig, err := s.Latest(db)
			assert.Nil(t, err)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				assert.Nil(t, err)
			}
			assert.Equal(t, tc.init+tc.increments, val)

			// the raw value must sort after the original one
			_, last, err := s.Latest(db)
			assert.Nil(t, err)
			if bytes.Compare(last, orig) != 1 {
				t.Fatalf("want %X to sort after %X", last, orig)
			}
		})
	}
}

func TestSequenceNextVal(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("cnt", "id")

	first, err := s.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(1), first)

	second, err := s.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(2), second)

	n, err := DecodeSequence(second)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDecodeSequence(t *testing.T) {
	n, err := DecodeSequence(nil)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), n)

	_, err = DecodeSequence([]byte{1, 2, 3})
	assert.IsErr(t, errors.ErrState, err)
}
