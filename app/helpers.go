package app

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Querier is implemented by StoreApp.
type Querier interface {
	Query(abci.RequestQuery) abci.ResponseQuery
}

// QueryStore exposes the query interface of an application as a
// ReadOnlyKVStore. The application must have the raw store query
// registered, see RegisterStoreQuery.
//
// This can be wrapped with a bucket to reuse key/index/parse logic.
type QueryStore struct {
	app Querier
}

var _ weave.ReadOnlyKVStore = (*QueryStore)(nil)

// NewQueryStore returns a store reading the committed state of app.
func NewQueryStore(app Querier) *QueryStore {
	return &QueryStore{app: app}
}

// Get will query for exactly one value over the query interface.
func (q *QueryStore) Get(key []byte) ([]byte, error) {
	models, err := q.query("/", key)
	if err != nil {
		return nil, err
	}
	switch len(models) {
	case 0:
		return nil, nil
	case 1:
		return models[0].Value, nil
	default:
		return nil, errors.Wrapf(errors.ErrState, "%d values for a single key", len(models))
	}
}

// Has returns true if the given key in in the application store
func (q *QueryStore) Has(key []byte) (bool, error) {
	v, err := q.Get(key)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

// Iterator attempts to do a range iteration over the store.
// Only prefix queries are supported, so start and end must describe
// a prefix range or both be nil.
func (q *QueryStore) Iterator(start, end []byte) (weave.Iterator, error) {
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrInput, "iterator only implemented for entire range")
	}
	models, err := q.query("/?prefix", nil)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(models), nil
}

// ReverseIterator is not supported.
func (q *QueryStore) ReverseIterator(start, end []byte) (weave.Iterator, error) {
	return nil, errors.Wrap(errors.ErrHuman, "reverse iterator not implemented")
}

func (q *QueryStore) query(path string, data []byte) ([]weave.Model, error) {
	res := q.app.Query(abci.RequestQuery{Path: path, Data: data})
	if res.Code != 0 {
		return nil, errors.Wrapf(errors.ErrState, "query %q failed with code %d: %s", path, res.Code, res.Log)
	}
	return toModels(res.Key, res.Value)
}

func toModels(keys, values []byte) ([]weave.Model, error) {
	var k, v ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(errors.ErrState, "cannot unmarshal keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(errors.ErrState, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}

// sliceIterator wraps an Iterator over a slice of models
type sliceIterator struct {
	data []weave.Model
	idx  int
}

var _ weave.Iterator = (*sliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []weave.Model) weave.Iterator {
	return &sliceIterator{
		data: data,
	}
}

func (s *sliceIterator) Next() (key, value []byte, err error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.data = nil
}
