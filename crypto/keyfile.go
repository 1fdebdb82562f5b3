package crypto

import (
	"encoding/hex"
	"os"

	"github.com/iov-one/tokenswap/errors"
)

// KeyPerm is the file permissions for saved private keys
const KeyPerm = 0600

// EncodePrivateKey returns the private key as a hex string that can be
// saved and later loaded.
func EncodePrivateKey(key *PrivateKey) (string, error) {
	data, err := key.Marshal()
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return hex.EncodeToString(data), nil
}

// DecodePrivateKey reads a hex string created by EncodePrivateKey and
// returns the original private key.
func DecodePrivateKey(hexKey string) (*PrivateKey, error) {
	data, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "hex: %s", err)
	}
	var key PrivateKey
	if err := key.Unmarshal(data); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "key: %s", err)
	}
	if len(key.GetEd25519()) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "key")
	}
	return &key, nil
}

// LoadPrivateKey loads a private key from a file written by
// SavePrivateKey.
func LoadPrivateKey(filename string) (*PrivateKey, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "key file %s", filename)
		}
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return DecodePrivateKey(string(raw))
}

// SavePrivateKey encodes the private key in hex and writes it to the named
// file. It refuses to overwrite an existing file unless force is set.
func SavePrivateKey(key *PrivateKey, filename string, force bool) error {
	if !force {
		if _, err := os.Stat(filename); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "refusing to overwrite %s", filename)
		}
	}
	hexKey, err := EncodePrivateKey(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(hexKey), KeyPerm); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}
