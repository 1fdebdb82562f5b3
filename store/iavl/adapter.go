package iavl

import (
	"sync"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const cacheSize = 10000

// CommitStore keeps the application state in an iavl tree. Writes are
// collected in the working tree and persisted by Commit, which saves all
// nodes of the new version together with its root in a single database
// batch.
type CommitStore struct {
	db dbm.DB

	mu        sync.RWMutex
	tree      *iavl.MutableTree
	committed *iavl.ImmutableTree
	last      store.CommitID
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore opens a goleveldb database named name in the dir
// directory and loads its latest version. An empty dir keeps the state in
// memory only.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	var db dbm.DB
	if dir == "" {
		db = dbm.NewMemDB()
	} else {
		ldb, err := dbm.NewGoLevelDBWithOpts(name, dir, &opt.Options{
			BlockCacheCapacity: 16 * opt.MiB,
		})
		if err != nil {
			return nil, errors.Wrapf(errors.ErrDatabase, "open %s in %q: %s", name, dir, err)
		}
		db = ldb
	}
	s := &CommitStore{
		db:   db,
		tree: iavl.NewMutableTree(db, cacheSize),
	}
	if err := s.LoadLatestVersion(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// MemCommitStore returns an in memory instance. Useful for tests.
func MemCommitStore() *CommitStore {
	s, err := NewCommitStore("", "")
	if err != nil {
		// memory database cannot fail to load
		panic(err)
	}
	return s
}

// Close releases the underlying database.
func (s *CommitStore) Close() {
	s.db.Close()
}

// Get returns the value at last committed state.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, val := s.committed.Get(key)
	return val, nil
}

// Has returns true if the key exists in the last committed state.
func (s *CommitStore) Has(key []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed.Has(key), nil
}

// Iterator over the last committed state in ascending order.
func (s *CommitStore) Iterator(start, end []byte) (store.Iterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.committed, start, end, true), nil
}

// ReverseIterator over the last committed state in descending order.
func (s *CommitStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return collect(s.committed, start, end, false), nil
}

// CacheWrap returns a savepoint on top of the working tree. Writing it
// changes the working tree only, nothing is persisted before Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// Adapter exposes the working tree as a key value store.
func (s *CommitStore) Adapter() store.CacheableKVStore {
	return &workingTree{s: s}
}

// Commit saves the working tree as the next version.
func (s *CommitStore) Commit() (id store.CommitID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// the database wrapper panics when the batch cannot be written
	defer errors.Recover(&err)

	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		s.tree.Rollback()
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	committed, err := s.tree.GetImmutable(version)
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	s.committed = committed
	s.last = store.CommitID{Version: version, Hash: hash}
	return s.last, nil
}

// LoadLatestVersion loads the latest persisted version. A version is only
// visible once its root was written, so a crash during Commit leaves the
// previous version as the latest one.
func (s *CommitStore) LoadLatestVersion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	version, err := s.tree.Load()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if version == 0 {
		s.committed = iavl.NewImmutableTree(s.db, cacheSize)
		s.last = store.CommitID{}
		return nil
	}
	committed, err := s.tree.GetImmutable(version)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	s.committed = committed
	s.last = store.CommitID{Version: version, Hash: committed.Hash()}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, nil
}

// workingTree reads and writes the uncommitted tree.
type workingTree struct {
	s *CommitStore
}

var _ store.CacheableKVStore = (*workingTree)(nil)

func (w *workingTree) Get(key []byte) ([]byte, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()
	_, val := w.s.tree.Get(key)
	return val, nil
}

func (w *workingTree) Has(key []byte) (bool, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()
	return w.s.tree.Has(key), nil
}

func (w *workingTree) Set(key, value []byte) error {
	if value == nil {
		return errors.Wrap(errors.ErrInput, "nil value")
	}
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.tree.Set(key, value)
	return nil
}

func (w *workingTree) Delete(key []byte) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.tree.Remove(key)
	return nil
}

func (w *workingTree) Iterator(start, end []byte) (store.Iterator, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()
	return collect(w.s.tree.ImmutableTree, start, end, true), nil
}

func (w *workingTree) ReverseIterator(start, end []byte) (store.Iterator, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()
	return collect(w.s.tree.ImmutableTree, start, end, false), nil
}

// NewBatch applies the operations to the working tree on Write. The tree
// lives in memory until Commit, so a partially applied batch never reaches
// the disk.
func (w *workingTree) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(w)
}

// CacheWrap wraps the working tree with a btree cache.
func (w *workingTree) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(w, w.NewBatch(), nil)
}

// collect copies the range into memory. The tree must not change while
// an iterator is in use, so the result is detached from it.
func collect(t *iavl.ImmutableTree, start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	t.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res)
}
