package app

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// RegisterStoreQuery registers raw access to the whole store under "/".
// Keys are full database keys, including the bucket prefix.
func RegisterStoreQuery(qr weave.QueryRouter) {
	qr.Register("/", storeQuery{})
}

type storeQuery struct{}

func (storeQuery) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	switch mod {
	case weave.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []weave.Model{weave.Pair(data, value)}, nil
	case weave.PrefixQueryMod:
		it, err := db.Iterator(data, prefixEnd(data))
		if err != nil {
			return nil, errors.Wrap(err, "cannot create iterator")
		}
		defer it.Release()

		var res []weave.Model
		for {
			key, value, err := it.Next()
			switch {
			case errors.ErrIteratorDone.Is(err):
				return res, nil
			case err != nil:
				return nil, err
			}
			res = append(res, weave.Pair(key, value))
		}
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

// prefixEnd returns the smallest key that is greater than all keys
// starting with the prefix, or nil if no such key exists.
func prefixEnd(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
