package orm

import (
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	key, err := b.Put(db, []byte("c1"), &Counter{Count: 1})
	assert.Nil(t, err)
	assert.Equal(t, []byte("c1"), key)

	var c1 Counter
	assert.Nil(t, b.One(db, []byte("c1"), &c1))
	assert.Equal(t, int64(1), c1.Count)
	assert.Nil(t, b.Has(db, []byte("c1")))

	assert.Nil(t, b.Delete(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("unknown")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("c1"), &c1))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, nil))
}

func TestModelBucketPutSequence(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	k1, err := b.Put(db, nil, &Counter{Count: 5})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(1), k1)

	k2, err := b.Put(db, nil, &Counter{Count: 6})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(2), k2)

	// a custom sequence keeps its own state
	seq := NewSequence("custom", "ids")
	c := NewModelBucket("cnts", &Counter{}, WithIDSequence(seq))
	k3, err := c.Put(db, nil, &Counter{Count: 7})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(1), k3)
}

func TestModelBucketPutWrongModelType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	_, err := b.Put(db, []byte("x"), &MultiRef{Refs: [][]byte{[]byte("a")}})
	assert.IsErr(t, errors.ErrType, err)

	_, err = b.Put(db, []byte("x"), &Counter{Count: -4})
	assert.IsErr(t, errors.ErrModel, err)
}

func TestModelBucketOneWrongModelType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	_, err := b.Put(db, []byte("x"), &Counter{Count: 4})
	assert.Nil(t, err)

	var ref MultiRef
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("x"), &ref))
}

func TestModelBucketByIndex(t *testing.T) {
	cases := map[string]struct {
		IndexName string
		QueryKey  []byte
		DestFn    func() ModelSlicePtr
		WantErr   *errors.Error
		WantKeys  [][]byte
		WantRes   interface{}
	}{
		"find none": {
			IndexName: "value",
			QueryKey:  EncodeSequence(1234),
			DestFn:    func() ModelSlicePtr { return &[]Counter{} },
			WantRes:   &[]Counter{},
		},
		"find one": {
			IndexName: "value",
			QueryKey:  EncodeSequence(1111),
			DestFn:    func() ModelSlicePtr { return &[]Counter{} },
			WantKeys:  [][]byte{EncodeSequence(1)},
			WantRes:   &[]Counter{{Count: 1111}},
		},
		"find two as pointers": {
			IndexName: "value",
			QueryKey:  EncodeSequence(4444),
			DestFn:    func() ModelSlicePtr { return &[]*Counter{} },
			WantKeys:  [][]byte{EncodeSequence(3), EncodeSequence(4)},
			WantRes:   &[]*Counter{{Count: 4444}, {Count: 4444}},
		},
		"non existing index name": {
			IndexName: "xyz",
			DestFn:    func() ModelSlicePtr { return &[]Counter{} },
			WantErr:   ErrInvalidIndex,
		},
		"destination is not a pointer": {
			IndexName: "value",
			QueryKey:  EncodeSequence(1111),
			DestFn:    func() ModelSlicePtr { return []Counter{} },
			WantErr:   errors.ErrType,
		},
		"destination of a wrong type": {
			IndexName: "value",
			QueryKey:  EncodeSequence(1111),
			DestFn:    func() ModelSlicePtr { return &[]MultiRef{} },
			WantErr:   errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			b := NewModelBucket("cnts", &Counter{}, WithIndex("value", countIndex, false))

			for _, c := range []int64{1111, 2222, 4444, 4444} {
				_, err := b.Put(db, nil, &Counter{Count: c})
				assert.Nil(t, err)
			}

			dest := tc.DestFn()
			keys, err := b.ByIndex(db, tc.IndexName, tc.QueryKey, dest)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
			if len(tc.WantKeys) == 0 {
				assert.Equal(t, 0, len(keys))
			} else {
				assert.Equal(t, tc.WantKeys, keys)
			}
			assert.Equal(t, tc.WantRes, dest)
		})
	}
}
