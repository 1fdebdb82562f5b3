package orm

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// queryPrefix returns all key value pairs stored under keys starting with
// the given prefix.
func queryPrefix(db weave.ReadOnlyKVStore, prefix []byte) ([]weave.Model, error) {
	it, err := db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	return consumeIterator(it)
}

// consumeIterator will read all remaining data into an
// array and release the iterator
func consumeIterator(it weave.Iterator) ([]weave.Model, error) {
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
}

// prefixEnd returns the smallest key that is greater than all keys
// starting with the prefix, or nil if no such key exists.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
