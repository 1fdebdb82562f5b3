package cash

import (
	"regexp"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
	"github.com/iov-one/tokenswap/x"
)

var isTicker = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

func (c *Configuration) Validate() error {
	if c.Metadata != nil {
		if err := c.Metadata.Validate(); err != nil {
			return errors.Wrap(err, "metadata")
		}
	}
	// owner field is optional... possible to make it immutable
	if len(c.Owner) != 0 {
		if err := c.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner address")
		}
	}
	if c.Ticker != "" && !isTicker(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.Ticker)
	}
	return nil
}

// loadConf returns the stored configuration. When none was stored, a
// configuration without restrictions is returned.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, BucketName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{Metadata: &weave.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}

// NewConfigHandler returns a handler processing configuration patches
// signed by the configuration owner.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(BucketName, &conf, auth)
}
