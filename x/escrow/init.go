package escrow

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
)

// Initializer loads the escrow configuration from the genesis file. Escrows
// cannot be declared in the genesis, they must be opened by their
// initializer.
type Initializer struct{}

var _ weave.Initializer = Initializer{}

// FromGenesis stores the escrow configuration if present.
func (Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(db, opts, confPkg, &conf); {
	case err == nil, errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, "init config")
	}
}
