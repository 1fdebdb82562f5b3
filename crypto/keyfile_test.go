package crypto

import (
	"path/filepath"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/weavetest/assert"
)

func TestEncodeDecode(t *testing.T) {
	private := GenPrivKeyEd25519()
	private2 := GenPrivKeyEd25519()

	enc, err := EncodePrivateKey(private)
	assert.Nil(t, err)
	enc2, err := EncodePrivateKey(private2)
	assert.Nil(t, err)
	if enc == enc2 {
		t.Fatal("different keys must not share an encoding")
	}

	dec, err := DecodePrivateKey(enc)
	assert.Nil(t, err)
	assert.Equal(t, private, dec)

	_, err = DecodePrivateKey("abc")
	assert.IsErr(t, errors.ErrInput, err)
	_, err = DecodePrivateKey("")
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "foo.key")
	filename2 := filepath.Join(dir, "bar.key")

	private := GenPrivKeyEd25519()
	private2 := GenPrivKeyEd25519()

	_, err := LoadPrivateKey(filename)
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Nil(t, SavePrivateKey(private, filename, false))
	loaded, err := LoadPrivateKey(filename)
	assert.Nil(t, err)
	assert.Equal(t, private, loaded)

	// Existing keys are not overwritten by accident.
	assert.IsErr(t, errors.ErrDuplicate, SavePrivateKey(private2, filename, false))
	assert.Nil(t, SavePrivateKey(private2, filename2, false))

	loaded, err = LoadPrivateKey(filename)
	assert.Nil(t, err)
	assert.Equal(t, private, loaded)
	loaded2, err := LoadPrivateKey(filename2)
	assert.Nil(t, err)
	assert.Equal(t, private2, loaded2)

	assert.Nil(t, SavePrivateKey(private2, filename, true))
	loaded, err = LoadPrivateKey(filename)
	assert.Nil(t, err)
	assert.Equal(t, private2, loaded)
}
