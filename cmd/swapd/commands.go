package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/app"
	swapd "github.com/iov-one/tokenswap/cmd/swapd/app"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/prometheus/client_golang/prometheus"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// InitCmd writes the default configuration and a development genesis into
// the home directory. The owner address can be given as the only argument,
// otherwise a new key is generated and stored next to the configuration.
func InitCmd(logger log.Logger, home string, args []string) error {
	genPath := filepath.Join(home, genesisFile)
	if _, err := os.Stat(genPath); err == nil {
		return errors.Wrapf(errors.ErrDuplicate, "%s already exists", genPath)
	}

	var owner weave.Address
	if len(args) > 0 {
		addr, err := weave.ParseAddress(args[0])
		if err != nil {
			return errors.Wrap(err, "owner address")
		}
		owner = addr
	} else {
		key := crypto.GenPrivKeyEd25519()
		if err := os.MkdirAll(home, 0o755); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		keyPath := filepath.Join(home, keyFile)
		if err := crypto.SavePrivateKey(key, keyPath, false); err != nil {
			return errors.Wrap(err, "save key")
		}
		owner = key.PublicKey().Address()
		logger.Info("Owner key generated", "path", keyPath, "address", owner)
	}

	conf := DefaultConfig()
	switch existing, err := LoadConfig(home); {
	case err == nil:
		conf = *existing
	case errors.ErrNotFound.Is(err):
		if err := conf.Save(home); err != nil {
			return errors.Wrap(err, "save config")
		}
	default:
		return err
	}

	state, err := swapd.GenInitOptions(owner)
	if err != nil {
		return err
	}
	gen := app.Genesis{ChainID: conf.ChainID, AppState: state}
	if err := gen.Save(genPath); err != nil {
		return errors.Wrap(err, "save genesis")
	}
	logger.Info("Genesis written", "path", genPath, "chain_id", conf.ChainID)
	return nil
}

// node is the application opened from a home directory.
type node struct {
	conf     *Config
	app      app.BaseApp
	registry *prometheus.Registry
	close    func()
}

func openNode(logger log.Logger, home string) (*node, error) {
	conf, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}
	kv, err := swapd.CommitKVStore(conf.DBPath(home))
	if err != nil {
		return nil, err
	}
	registry := prometheus.NewRegistry()
	base := swapd.NewApplication("swapd", swapd.Stack(registry), swapd.TxDecoder, kv, conf.Debug)
	base.WithLogger(logger)

	return &node{conf: conf, app: base, registry: registry, close: kv.Close}, nil
}

// ApplyCmd executes one block made of hex encoded transactions, one per
// line, read from the given file or from the standard input when the
// file is "-". The chain is initialized from the genesis file first if
// needed.
func ApplyCmd(logger log.Logger, home string, args []string) error {
	if len(args) != 1 {
		return errors.Wrap(errors.ErrInput, "usage: apply <file|->")
	}
	n, err := openNode(logger, home)
	if err != nil {
		return err
	}
	defer n.close()

	if n.app.GetChainID() == "" {
		gen, err := app.LoadGenesis(filepath.Join(home, genesisFile))
		if err != nil {
			return errors.Wrap(err, "genesis")
		}
		if gen.ChainID != n.conf.ChainID {
			return errors.Wrapf(errors.ErrInput, "genesis chain id %q does not match configured %q", gen.ChainID, n.conf.ChainID)
		}
		if err := n.initChain(gen); err != nil {
			return err
		}
	}

	txs, err := readTxs(args[0])
	if err != nil {
		return err
	}
	height, hash, err := n.applyBlock(txs, func(i int, res abci.ResponseDeliverTx) {
		fmt.Printf("tx %d: code=%d log=%q data=%X\n", i, res.Code, res.Log, res.Data)
	})
	if err != nil {
		return err
	}
	fmt.Printf("height=%d hash=%X\n", height, hash)

	if n.conf.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(n.conf.MetricsFile, n.registry); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
	}
	return nil
}

// initChain runs the genesis. The application reports a failed genesis
// by panicking, so the panic is turned back into an error.
func (n *node) initChain(gen *app.Genesis) (err error) {
	defer errors.Recover(&err)
	n.app.InitChain(abci.RequestInitChain{
		Time:          time.Now().UTC(),
		ChainId:       gen.ChainID,
		AppStateBytes: gen.AppState,
	})
	return nil
}

// applyBlock delivers all transactions in a new block on top of the last
// committed one and commits it.
func (n *node) applyBlock(txs [][]byte, report func(int, abci.ResponseDeliverTx)) (height int64, hash []byte, err error) {
	defer errors.Recover(&err)

	info := n.app.Info(abci.RequestInfo{})
	height = info.LastBlockHeight + 1
	n.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: n.conf.ChainID,
			Height:  height,
			Time:    time.Now().UTC(),
		},
	})
	for i, tx := range txs {
		report(i, n.app.DeliverTx(tx))
	}
	n.app.EndBlock(abci.RequestEndBlock{Height: height})
	commit := n.app.Commit()
	return height, commit.Data, nil
}

func readTxs(source string) ([][]byte, error) {
	var r io.Reader = os.Stdin
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		defer f.Close()
		r = f
	}
	var txs [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		raw, err := hex.DecodeString(text)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "line %d: %s", line, err)
		}
		txs = append(txs, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return txs, nil
}

// QueryCmd prints the results of a query against the committed state.
// The optional data argument is an address ("hex:" and "cond:" prefixes
// are accepted) or, for the raw store query, a hex encoded key.
func QueryCmd(logger log.Logger, home string, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.Wrap(errors.ErrInput, "usage: query <path> [data]")
	}
	n, err := openNode(logger, home)
	if err != nil {
		return err
	}
	defer n.close()

	var data []byte
	if len(args) == 2 {
		data, err = queryData(args[0], args[1])
		if err != nil {
			return err
		}
	}
	res := n.app.Query(abci.RequestQuery{Path: args[0], Data: data})
	if res.Code != 0 {
		return errors.Wrapf(errors.ErrInput, "query failed with code %d: %s", res.Code, res.Log)
	}
	var keys, values app.ResultSet
	if err := keys.Unmarshal(res.Key); err != nil {
		return errors.Wrap(errors.ErrState, err.Error())
	}
	if err := values.Unmarshal(res.Value); err != nil {
		return errors.Wrap(errors.ErrState, err.Error())
	}
	models, err := app.JoinResults(&keys, &values)
	if err != nil {
		return err
	}
	fmt.Printf("height=%d results=%d\n", res.Height, len(models))
	for _, m := range models {
		fmt.Printf("%X %X\n", m.Key, m.Value)
	}
	return nil
}

func queryData(path, arg string) ([]byte, error) {
	if strings.HasPrefix(path, "/?") || path == "/" {
		raw, err := hex.DecodeString(arg)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "key: %s", err)
		}
		return raw, nil
	}
	addr, err := weave.ParseAddress(arg)
	if err != nil {
		return nil, errors.Wrap(err, "address")
	}
	return addr, nil
}
