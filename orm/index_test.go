package orm

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestCounterSingleKeyIndex(t *testing.T) {
	refKey := func(k []byte) []byte { return append([]byte("cnt:"), k...) }
	multi := NewIndex("likes", countIndex, false, refKey)
	uniq := NewIndex("magic", countIndex, true, refKey)

	k1 := []byte("abc")
	k2 := []byte("def")
	k3 := []byte("xyz")

	o1 := NewSimpleObj(k1, NewCounter(5))
	o1a := NewSimpleObj(k1, NewCounter(7))
	o2 := NewSimpleObj(k2, NewCounter(7))
	o2a := NewSimpleObj(k2, NewCounter(9))
	o3 := NewSimpleObj(k3, NewCounter(9))
	o3a := NewSimpleObj(k3, NewCounter(5))

	e5 := EncodeSequence(5)
	e7 := EncodeSequence(7)
	e9 := EncodeSequence(9)

	type update struct {
		prev, next Object
		wantErr    *errors.Error
	}

	cases := map[string]struct {
		idx     Index
		updates []update
		want    map[string][][]byte
	}{
		"both nil is an error": {
			idx:     uniq,
			updates: []update{{nil, nil, errors.ErrHuman}},
		},
		"unique insert": {
			idx:     uniq,
			updates: []update{{nil, o1, nil}},
			want:    map[string][][]byte{string(e5): {k1}, string(e7): nil},
		},
		"unique duplicate": {
			idx:     uniq,
			updates: []update{{nil, o1a, nil}, {nil, o2, errors.ErrDuplicate}},
			want:    map[string][][]byte{string(e7): {k1}},
		},
		"unique move": {
			idx:     uniq,
			updates: []update{{nil, o1, nil}, {o1, o1a, nil}},
			want:    map[string][][]byte{string(e5): nil, string(e7): {k1}},
		},
		"primary key change is an error": {
			idx:     uniq,
			updates: []update{{nil, o1, nil}, {o1, o2, errors.ErrImmutable}},
		},
		"unique delete": {
			idx:     uniq,
			updates: []update{{nil, o3, nil}, {o3, nil, nil}},
			want:    map[string][][]byte{string(e9): nil},
		},
		"delete of missing entry": {
			idx:     uniq,
			updates: []update{{o3, nil, errors.ErrNotFound}},
		},
		"multi index collects keys": {
			idx:     multi,
			updates: []update{{nil, o1a, nil}, {nil, o2, nil}},
			want:    map[string][][]byte{string(e7): {k1, k2}},
		},
		"multi index keeps refs sorted": {
			idx:     multi,
			updates: []update{{nil, o3, nil}, {nil, o2a, nil}, {o3, o3a, nil}},
			want:    map[string][][]byte{string(e5): {k3}, string(e9): {k2}},
		},
		"multi index removal": {
			idx:     multi,
			updates: []update{{nil, o1a, nil}, {nil, o2, nil}, {o1a, nil, nil}},
			want:    map[string][][]byte{string(e7): {k2}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			for i, u := range tc.updates {
				err := tc.idx.Update(db, u.prev, u.next)
				if u.wantErr == nil {
					if err != nil {
						t.Fatalf("update %d: %+v", i, err)
					}
					continue
				}
				assert.IsErr(t, u.wantErr, err)
			}
			for index, want := range tc.want {
				got, err := tc.idx.Keys(db, []byte(index))
				assert.Nil(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestIndexQuery(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnt", NewSimpleObj(nil, new(Counter))).
		WithIndex("value", countIndex, false)

	for i, c := range []int64{5, 7, 7, 260} {
		obj := NewSimpleObj([]byte{byte('a' + i)}, NewCounter(c))
		assert.Nil(t, b.Save(db, obj))
	}

	qr := weave.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters/value")
	if h == nil {
		t.Fatal("index query handler not registered")
	}

	res, err := h.Query(db, weave.KeyQueryMod, EncodeSequence(7))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))
	assert.Equal(t, b.DBKey([]byte("b")), res[0].Key)
	assert.Equal(t, b.DBKey([]byte("c")), res[1].Key)

	// all values below 256 share the first seven bytes
	res, err = h.Query(db, weave.PrefixQueryMod, make([]byte, 7))
	assert.Nil(t, err)
	assert.Equal(t, 3, len(res))

	res, err = h.Query(db, weave.KeyQueryMod, EncodeSequence(1))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	_, err = h.Query(db, "unknown", nil)
	assert.IsErr(t, errors.ErrInput, err)
}
