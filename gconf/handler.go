package gconf

import (
	"reflect"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
)

// OwnedConfig is a configuration with an owner. Only the owner can change
// it.
type OwnedConfig interface {
	Configuration
	GetOwner() weave.Address
}

// UpdateConfigurationHandler applies the Patch field of an update message to
// the stored configuration of a package. Zero fields of the patch keep the
// stored value.
type UpdateConfigurationHandler struct {
	pkg    string
	config reflect.Type
	auth   x.Authenticator
}

var _ weave.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a handler for the configuration of
// pkg. The type of config is the type of the stored configuration and of the
// Patch field of the handled message. A configuration that was never stored
// has no owner and cannot be changed.
func NewUpdateConfigurationHandler(pkg string, config OwnedConfig, auth x.Authenticator) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:    pkg,
		config: reflect.TypeOf(config).Elem(),
		auth:   auth,
	}
}

func (h UpdateConfigurationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	conf, err := h.apply(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("configuration updated", "package", h.pkg, "owner", conf.GetOwner())
	return &weave.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) apply(ctx weave.Context, db weave.KVStore, tx weave.Tx) (OwnedConfig, error) {
	// A fresh value for each call, nothing leaks between transactions.
	conf := reflect.New(h.config).Interface().(OwnedConfig)
	switch err := Load(db, h.pkg, conf); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s configuration has no owner", h.pkg)
	case err != nil:
		return nil, err
	}
	if err := x.RequireAddress(ctx, h.auth, conf.GetOwner(), "configuration owner"); err != nil {
		return nil, err
	}

	patch, err := patchOf(tx, h.config)
	if err != nil {
		return nil, err
	}
	merge(reflect.ValueOf(conf).Elem(), reflect.ValueOf(patch).Elem())
	if err := Save(db, h.pkg, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// patchOf returns the Patch field of the message carried by tx. The field
// must be a non nil pointer to a value of type want.
func patchOf(tx weave.Tx, want reflect.Type) (interface{}, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "%T is not a configuration update", msg)
	}
	field := v.Elem().FieldByName("Patch")
	switch {
	case !field.IsValid():
		return nil, errors.Wrapf(errors.ErrInput, "%T has no Patch field", msg)
	case field.Type() != reflect.PointerTo(want):
		return nil, errors.Wrapf(errors.ErrMsg, "patch of %T does not match the stored configuration", msg)
	case field.IsNil():
		return nil, errors.Wrap(errors.ErrState, "patch is required")
	}
	return field.Interface(), nil
}

// merge copies every non zero field of patch into conf.
func merge(conf, patch reflect.Value) {
	for i := 0; i < patch.NumField(); i++ {
		f := patch.Field(i)
		if !conf.Field(i).CanSet() || f.IsZero() {
			continue
		}
		conf.Field(i).Set(f)
	}
}
