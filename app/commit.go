package app

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// CommitStore owns the committed state and the two savepoints built on top
// of it: deliver collects the effects of the current block, check is a
// scratch space for CheckTx that is thrown away on every commit.
//
// CommitStore is not safe for concurrent use. StoreApp serializes all
// access.
type CommitStore struct {
	committed weave.CommitKVStore
	deliver   weave.KVCacheWrap
	check     weave.KVCacheWrap
}

// NewCommitStore loads the latest version of the store and opens fresh
// deliver and check savepoints. It panics if the state cannot be loaded.
func NewCommitStore(store weave.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the height and hash of the last commit.
func (cs *CommitStore) CommitInfo() (weave.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit moves the block effects into the committed store and persists
// them as the next version. The committed store saves a version in a single
// write, so after a crash the state on disk is either the previous or the
// new version.
func (cs *CommitStore) Commit() (weave.CommitID, error) {
	cs.check.Discard()
	if err := cs.deliver.Write(); err != nil {
		cs.reset()
		return weave.CommitID{}, errors.Wrap(err, "flush block")
	}
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

// CheckStore returns a store implementation that must be used during the
// checking phase.
func (cs *CommitStore) CheckStore() weave.CacheableKVStore {
	return cs.check
}

// DeliverStore returns a store implementation that must be used during the
// delivery phase.
func (cs *CommitStore) DeliverStore() weave.CacheableKVStore {
	return cs.deliver
}

// chainIDKey lives outside of every bucket prefix.
const chainIDKey = "_wv:chainID"

// mustLoadChainID returns the stored chain id or an empty string before
// genesis. It panics on a database failure.
func mustLoadChainID(kv weave.ReadOnlyKVStore) string {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(v)
}

// saveChainID stores the chain id once. A second call fails, so the id of
// a running chain cannot be changed.
func saveChainID(kv weave.KVStore, chainID string) error {
	if !weave.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	switch exists, err := kv.Has(k); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
