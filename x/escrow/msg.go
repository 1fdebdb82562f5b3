package escrow

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

const (
	pathInitializeMsg          = "escrow/initialize"
	pathFinalizeMsg            = "escrow/finalize"
	pathUpdateConfigurationMsg = "escrow/update_configuration"
)

var _ weave.Msg = (*InitializeMsg)(nil)

func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

func (m *InitializeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateID(m.ID); err != nil {
		return err
	}
	if m.AmountTokenA == 0 {
		return errors.Wrap(errors.ErrAmount, "amount of token a must be positive")
	}
	if m.AmountTokenB == 0 {
		return errors.Wrap(errors.ErrAmount, "amount of token b must be positive")
	}
	if err := m.Initializer.Validate(); err != nil {
		return errors.Wrap(err, "initializer")
	}
	if err := m.InitializerTokenA.Validate(); err != nil {
		return errors.Wrap(err, "initializer token a account")
	}
	if err := m.TokenA.Validate(); err != nil {
		return errors.Wrap(err, "token a")
	}
	if err := m.TokenB.Validate(); err != nil {
		return errors.Wrap(err, "token b")
	}
	if m.TokenA.Equals(m.TokenB) {
		return errors.Wrap(errors.ErrMsg, "token a and token b must differ")
	}
	if len(m.EscrowAddress) != 0 {
		if err := m.EscrowAddress.Validate(); err != nil {
			return errors.Wrap(err, "escrow address")
		}
	}
	if len(m.CustodyAddress) != 0 {
		if err := m.CustodyAddress.Validate(); err != nil {
			return errors.Wrap(err, "custody address")
		}
	}
	return nil
}

var _ weave.Msg = (*FinalizeMsg)(nil)

func (FinalizeMsg) Path() string {
	return pathFinalizeMsg
}

func (m *FinalizeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.EscrowAddress.Validate(); err != nil {
		return errors.Wrap(err, "escrow address")
	}
	if err := m.CustodyAddress.Validate(); err != nil {
		return errors.Wrap(err, "custody address")
	}
	if err := m.Initializer.Validate(); err != nil {
		return errors.Wrap(err, "initializer")
	}
	if err := m.InitializerTokenB.Validate(); err != nil {
		return errors.Wrap(err, "initializer token b account")
	}
	if err := m.Taker.Validate(); err != nil {
		return errors.Wrap(err, "taker")
	}
	if err := m.TakerTokenB.Validate(); err != nil {
		return errors.Wrap(err, "taker token b account")
	}
	if err := m.TakerTokenA.Validate(); err != nil {
		return errors.Wrap(err, "taker token a account")
	}
	return nil
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return m.Patch.Validate()
}
