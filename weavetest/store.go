package weavetest

import (
	"testing"

	"github.com/iov-one/tokenswap/store/iavl"
)

// CommitKVStore returns the production state store backed by goleveldb in a
// temporary directory. Use it instead of a memory store when a test must
// cover versioning and persistence. The database is closed on cleanup.
func CommitKVStore(t testing.TB) *iavl.CommitStore {
	t.Helper()
	db, err := iavl.NewCommitStore(t.TempDir(), "state")
	if err != nil {
		t.Fatalf("cannot open the state database: %s", err)
	}
	t.Cleanup(db.Close)
	return db
}
