/*
Package app links together all the various components
to construct the swapd app.
*/
package app

import (
	"context"
	"path/filepath"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/app"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store/iavl"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/derived"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/sigs"
	"github.com/iov-one/tokenswap/x/token"
	"github.com/iov-one/tokenswap/x/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// Authenticator returns the authentication used by all handlers. Signers
// come from the transaction signatures, escrow custody authority is granted
// by the escrow program for the duration of a finalize.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, derived.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, metrics and recovery. Metrics are not collected when reg is nil.
func Chain(reg prometheus.Registerer) app.Decorators {
	var metrics *utils.Metrics
	if reg != nil {
		metrics = utils.NewMetrics(reg)
	}
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		metrics,
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce even if the message
		// fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to all message handlers of the
// application.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	bank := cash.NewController()
	tokens := token.NewController(authFn, bank)
	cash.RegisterRoutes(r, authFn, bank)
	token.RegisterRoutes(r, authFn, tokens)
	escrow.RegisterRoutes(r, authFn, tokens, bank)
	sigs.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a query router, allowing access to "/wallets",
// "/mints", "/accounts", "/escrows", "/auth" and the raw store under "/".
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		token.RegisterQuery,
		escrow.RegisterQuery,
		sigs.RegisterQuery,
		app.RegisterStoreQuery,
	)
	return r
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() weave.Initializer {
	return weave.ChainInitializers(
		cash.Initializer{},
		token.Initializer{},
		escrow.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(reg prometheus.Registerer) weave.Handler {
	authFn := Authenticator()
	return Chain(reg).WithHandler(Router(authFn))
}

// Application constructs the ledger host with the given arguments. If you
// are not sure what to use for the Handler, just use Stack().
func Application(name string, h weave.Handler, tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	return NewApplication(name, h, tx, kv, debug), nil
}

// NewApplication constructs the ledger host on top of an already opened
// store.
func NewApplication(name string, h weave.Handler, tx weave.TxDecoder, kv weave.CommitKVStore, debug bool) app.BaseApp {
	storeApp := app.NewStoreApp(name, kv, QueryRouter(), context.Background()).
		WithInit(Initializers()).
		WithDebug(debug)
	return app.NewBaseApp(storeApp, tx, h)
}

// CommitKVStore returns an initialized KVStore that persists the data to
// the given directory. An empty path returns an in memory store, just for
// testing.
func CommitKVStore(dbPath string) (*iavl.CommitStore, error) {
	if dbPath == "" {
		return iavl.MemCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database path %q: %s", dbPath, err)
	}
	db, err := iavl.NewCommitStore(path, "swapd")
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	return db, nil
}
