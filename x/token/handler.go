package token

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
)

// RegisterQuery registers mints under "/mints" and accounts under
// "/accounts" with the "/accounts/owner" index.
func RegisterQuery(qr weave.QueryRouter) {
	NewMintBucket().Register("mints", qr)
	NewAccountBucket().Register("accounts", qr)
}

// RegisterRoutes registers handlers for all token messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&CreateMintMsg{}, &CreateMintHandler{ctrl: ctrl})
	r.Handle(&CreateAccountMsg{}, &CreateAccountHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintToMsg{}, &MintToHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, &TransferHandler{ctrl: ctrl})
	r.Handle(&CloseAccountMsg{}, &CloseAccountHandler{ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// CreateMintHandler registers new mints. Anyone can create a mint.
type CreateMintHandler struct {
	ctrl Controller
}

var _ weave.Handler = (*CreateMintHandler)(nil)

func (h *CreateMintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg CreateMintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{}, nil
}

func (h *CreateMintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg CreateMintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	addr, err := h.ctrl.CreateMint(db, msg.Name, msg.Decimals, msg.MintAuthority)
	if err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("mint created", "mint", addr, "decimals", msg.Decimals)
	return &weave.DeliverResult{Data: addr}, nil
}

// CreateAccountHandler creates the associated account of an owner.
type CreateAccountHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = (*CreateAccountHandler)(nil)

func (h *CreateAccountHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *CreateAccountHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	addr, _, err := AssociatedAccountAddress(msg.Owner, msg.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "account address")
	}
	if _, err := h.ctrl.CreateAccount(ctx, db, addr, msg.Mint, msg.Owner, msg.Payer); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: addr}, nil
}

func (h *CreateAccountHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateAccountMsg, error) {
	var msg CreateAccountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Payer, "payer"); err != nil {
		return nil, err
	}
	if _, err := h.ctrl.GetMint(db, msg.Mint); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MintToHandler creates new supply. It must be signed by the mint authority.
type MintToHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = (*MintToHandler)(nil)

func (h *MintToHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *MintToHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, mint, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MintTo(ctx, db, msg.Mint, msg.Destination, mint.MintAuthority, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *MintToHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*MintToMsg, *Mint, error) {
	var msg MintToMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	mint, err := h.ctrl.GetMint(db, msg.Mint)
	if err != nil {
		return nil, nil, err
	}
	if err := x.RequireAddress(ctx, h.auth, mint.MintAuthority, "mint authority"); err != nil {
		return nil, nil, err
	}
	return &msg, mint, nil
}

// TransferHandler moves tokens between accounts of the same mint.
type TransferHandler struct {
	ctrl Controller
}

var _ weave.Handler = (*TransferHandler)(nil)

func (h *TransferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{}, nil
}

func (h *TransferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Transfer(ctx, db, msg.Amount, msg.Mint, msg.Source, msg.Destination, msg.Authority); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

// CloseAccountHandler removes empty accounts.
type CloseAccountHandler struct {
	ctrl Controller
}

var _ weave.Handler = (*CloseAccountHandler)(nil)

func (h *CloseAccountHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg CloseAccountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{}, nil
}

func (h *CloseAccountHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg CloseAccountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.CloseAccount(ctx, db, msg.Account, msg.Destination, msg.Authority); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}
