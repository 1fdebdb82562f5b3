package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	configFile  = "config.toml"
	genesisFile = "genesis.json"
	keyFile     = "owner.key"
)

// Config is the node configuration, read from config.toml in the home
// directory.
type Config struct {
	ChainID  string `toml:"chain_id"`
	LogLevel string `toml:"log_level"`
	// DBDir is relative to the home directory unless absolute.
	DBDir string `toml:"db_dir"`
	// MetricsFile is where transaction metrics are written in the text
	// exposition format after every applied block. Empty disables it.
	MetricsFile string `toml:"metrics_file"`
	Debug       bool   `toml:"debug"`
}

// DefaultConfig returns the configuration of a development node.
func DefaultConfig() Config {
	return Config{
		ChainID:  "tokenswap-dev",
		LogLevel: "info",
		DBDir:    "data",
	}
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if !weave.IsValidChainID(c.ChainID) {
		return errors.Wrapf(errors.ErrInput, "invalid chain id %q", c.ChainID)
	}
	if _, err := log.AllowLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	if c.DBDir == "" {
		return errors.Wrap(errors.ErrEmpty, "db dir")
	}
	return nil
}

// DBPath returns the database location for the given home directory.
func (c *Config) DBPath(home string) string {
	if filepath.IsAbs(c.DBDir) {
		return c.DBDir
	}
	return filepath.Join(home, c.DBDir)
}

// LoadConfig reads the configuration of the given home directory. Unknown
// keys are rejected.
func LoadConfig(home string) (*Config, error) {
	conf := DefaultConfig()
	path := filepath.Join(home, configFile)
	meta, err := toml.DecodeFile(path, &conf)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "no %s, run init first", path)
		}
		return nil, errors.Wrapf(errors.ErrInput, "decode %s: %s", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrapf(errors.ErrInput, "unknown configuration keys: %s", strings.Join(keys, ", "))
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return &conf, nil
}

// Save writes the configuration into the given home directory.
func (c *Config) Save(home string) error {
	if err := os.MkdirAll(home, 0o755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	f, err := os.OpenFile(filepath.Join(home, configFile), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// newLogger returns the process logger filtered by the given level.
func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "swapd")
	return log.NewFilter(logger, opt), nil
}
