package app

import (
	"encoding/json"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// DevFunds is the native coin balance given to the owner of a development
// chain.
const DevFunds = 123456789

// GenInitOptions produces the application state of a development chain. The
// owner is funded with native coins and becomes the owner of all
// configurations, so that it can update them later.
func GenInitOptions(owner weave.Address) (json.RawMessage, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	type owned struct {
		Metadata *weave.Metadata `json:"metadata"`
		Owner    weave.Address   `json:"owner"`
	}
	meta := &weave.Metadata{Schema: 1}
	state := map[string]interface{}{
		"cash": []interface{}{
			map[string]interface{}{
				"address": owner,
				"amount":  DevFunds,
			},
		},
		"token": map[string]interface{}{
			"mints":    []interface{}{},
			"accounts": []interface{}{},
		},
		"conf": map[string]interface{}{
			"cash":   owned{Metadata: meta, Owner: owner},
			"token":  owned{Metadata: meta, Owner: owner},
			"escrow": owned{Metadata: meta, Owner: owner},
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}
