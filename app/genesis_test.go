package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestGenesisFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genesis.json")

	gen := Genesis{
		ChainID:  "test-chain",
		AppState: json.RawMessage(`{"cash":[]}`),
	}
	assert.Nil(t, gen.Save(path))

	loaded, err := LoadGenesis(path)
	assert.Nil(t, err)
	assert.Equal(t, "test-chain", loaded.ChainID)

	var state map[string]json.RawMessage
	assert.Nil(t, json.Unmarshal(loaded.AppState, &state))
	if _, ok := state["cash"]; !ok {
		t.Fatalf("cash section lost: %s", loaded.AppState)
	}

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.IsErr(t, errors.ErrInput, err)

	assert.Nil(t, os.WriteFile(path, []byte(`{"chain_id": "x"}`), 0o600))
	_, err = LoadGenesis(path)
	assert.IsErr(t, errors.ErrInput, err)
}
