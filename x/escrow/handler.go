package escrow

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/cash"
	"github.com/iov-one/tokenswap/x/derived"
	"github.com/iov-one/tokenswap/x/token"
	"github.com/iov-one/tokenswap/x/utils"
)

// RegisterRoutes will instantiate and register all handlers in this package.
//
// The token controller must accept authorities granted by derived.WithAuthority,
// otherwise custody funds can never be released.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, tokens token.Controller, bank cash.Controller) {
	bucket := NewBucket()
	r.Handle(&InitializeMsg{}, &InitializeHandler{auth: auth, bucket: bucket, tokens: tokens, bank: bank})
	r.Handle(&FinalizeMsg{}, &FinalizeHandler{auth: auth, bucket: bucket, tokens: tokens, bank: bank})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register this bucket as "/escrows", together with the
// "/escrows/initializer" index.
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// InitializeHandler opens an escrow and moves token A into custody.
type InitializeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	tokens token.Controller
	bank   cash.Controller
}

var _ weave.Handler = (*InitializeHandler)(nil)

// Check verifies the message is well formed and that the escrow can be
// opened.
func (h *InitializeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

// Deliver creates the record and the custody account and deposits token A.
// Either all of it happens or nothing does.
func (h *InitializeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	p, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg, record := p.msg, p.record

	err = utils.InSavepoint(db, func(db weave.KVStore) error {
		if _, err := h.bucket.Put(db, p.recordAddr, record); err != nil {
			return errors.Wrap(err, "save record")
		}
		if _, err := h.tokens.CreateAccount(ctx, db, p.custodyAddr, record.TokenA, p.custodyAddr, record.Initializer); err != nil {
			return errors.Wrap(err, "create custody account")
		}
		if err := h.tokens.Transfer(ctx, db, record.AmountTokenA, record.TokenA, msg.InitializerTokenA, p.custodyAddr, record.Initializer); err != nil {
			return errors.Wrap(err, "deposit token a")
		}
		conf, err := LoadConfiguration(db)
		if err != nil {
			return err
		}
		if conf.RecordDeposit > 0 {
			if err := h.bank.MoveCoins(db, record.Initializer, p.recordAddr, conf.RecordDeposit); err != nil {
				return errors.Wrap(err, "record deposit")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	weave.GetLogger(ctx).Info("escrow initialized",
		"escrow", p.recordAddr,
		"custody", p.custodyAddr,
		"initializer", record.Initializer,
		"amount_token_a", record.AmountTokenA,
		"amount_token_b", record.AmountTokenB,
	)
	return &weave.DeliverResult{Data: p.recordAddr}, nil
}

// initialization is the outcome of validating an InitializeMsg.
type initialization struct {
	msg         *InitializeMsg
	record      *EscrowRecord
	recordAddr  weave.Address
	custodyAddr weave.Address
}

func (h *InitializeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*initialization, error) {
	var msg InitializeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Initializer, "initializer"); err != nil {
		return nil, err
	}

	recordAddr, recordBump, err := RecordAddress(msg.Initializer, msg.ID)
	if err != nil {
		return nil, errors.Wrap(err, "derive record address")
	}
	if len(msg.EscrowAddress) != 0 && !msg.EscrowAddress.Equals(recordAddr) {
		return nil, errors.Wrapf(errors.ErrInput, "escrow address must be %s", recordAddr)
	}
	custodyAddr, custodyBump, err := CustodyAddress(recordAddr)
	if err != nil {
		return nil, errors.Wrap(err, "derive custody address")
	}
	if len(msg.CustodyAddress) != 0 && !msg.CustodyAddress.Equals(custodyAddr) {
		return nil, errors.Wrapf(errors.ErrInput, "custody address must be %s", custodyAddr)
	}

	switch err := h.bucket.Has(db, recordAddr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "escrow %q of %s", msg.ID, msg.Initializer)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	mintA, err := h.tokens.GetMint(db, msg.TokenA)
	if err != nil {
		return nil, errors.Wrap(err, "token a")
	}
	mintB, err := h.tokens.GetMint(db, msg.TokenB)
	if err != nil {
		return nil, errors.Wrap(err, "token b")
	}
	amountA, err := token.ScaleAmount(msg.AmountTokenA, mintA.Decimals)
	if err != nil {
		return nil, errors.Wrap(err, "amount of token a")
	}
	amountB, err := token.ScaleAmount(msg.AmountTokenB, mintB.Decimals)
	if err != nil {
		return nil, errors.Wrap(err, "amount of token b")
	}

	src, err := h.tokens.GetAccount(db, msg.InitializerTokenA)
	if err != nil {
		return nil, errors.Wrap(err, "initializer token a account")
	}
	if !src.Mint.Equals(msg.TokenA) {
		return nil, errors.Wrapf(errors.ErrCurrency, "initializer account is not of mint %s", msg.TokenA)
	}

	record := &EscrowRecord{
		Metadata:              &weave.Metadata{Schema: 1},
		Initializer:           msg.Initializer,
		TokenA:                msg.TokenA,
		TokenB:                msg.TokenB,
		AmountTokenA:          amountA,
		AmountTokenB:          amountB,
		ID:                    msg.ID,
		DerivationBumpRecord:  uint32(recordBump),
		DerivationBumpCustody: uint32(custodyBump),
	}
	if err := record.Validate(); err != nil {
		return nil, errors.Wrap(err, "record")
	}
	return &initialization{
		msg:         &msg,
		record:      record,
		recordAddr:  recordAddr,
		custodyAddr: custodyAddr,
	}, nil
}

// FinalizeHandler completes an escrow on behalf of the taker.
type FinalizeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	tokens token.Controller
	bank   cash.Controller
}

var _ weave.Handler = (*FinalizeHandler)(nil)

// Check verifies the escrow is open and all accounts are consistent with
// its terms.
func (h *FinalizeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

// Deliver pays token B from the taker to the initializer, releases the whole
// custody balance to the taker and closes the custody account. The record is
// deleted last. Both storage deposits are returned to the initializer.
// Either all steps succeed or none does.
func (h *FinalizeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	var released uint64
	err = utils.InSavepoint(db, func(db weave.KVStore) error {
		if err := h.tokens.Transfer(ctx, db, record.AmountTokenB, record.TokenB, msg.TakerTokenB, msg.InitializerTokenB, msg.Taker); err != nil {
			return errors.Wrap(err, "pay token b")
		}

		custodyCtx, err := derived.WithAuthority(ctx, msg.CustodyAddress, ProgramName, uint8(record.DerivationBumpCustody), msg.EscrowAddress)
		if err != nil {
			return errors.Wrap(err, "custody authority")
		}
		custody, err := h.tokens.GetAccount(db, msg.CustodyAddress)
		if err != nil {
			return errors.Wrap(err, "custody account")
		}
		released = custody.Amount
		if released > 0 {
			if err := h.tokens.Transfer(custodyCtx, db, released, record.TokenA, msg.CustodyAddress, msg.TakerTokenA, msg.CustodyAddress); err != nil {
				return errors.Wrap(err, "release token a")
			}
		}
		if err := h.tokens.CloseAccount(custodyCtx, db, msg.CustodyAddress, record.Initializer, msg.CustodyAddress); err != nil {
			return errors.Wrap(err, "close custody account")
		}

		if err := h.bucket.Delete(db, msg.EscrowAddress); err != nil {
			return errors.Wrap(err, "delete record")
		}
		deposit, err := h.bank.Balance(db, msg.EscrowAddress)
		if err != nil {
			return errors.Wrap(err, "record deposit")
		}
		if deposit > 0 {
			if err := h.bank.MoveCoins(db, msg.EscrowAddress, record.Initializer, deposit); err != nil {
				return errors.Wrap(err, "refund record deposit")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	weave.GetLogger(ctx).Info("escrow finalized",
		"escrow", msg.EscrowAddress,
		"taker", msg.Taker,
		"amount_token_a", released,
		"amount_token_b", record.AmountTokenB,
	)
	return &weave.DeliverResult{Data: msg.EscrowAddress}, nil
}

func (h *FinalizeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*FinalizeMsg, *EscrowRecord, error) {
	var msg FinalizeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Taker, "taker"); err != nil {
		return nil, nil, err
	}

	var record EscrowRecord
	if err := h.bucket.One(db, msg.EscrowAddress, &record); err != nil {
		return nil, nil, errors.Wrapf(err, "escrow %s", msg.EscrowAddress)
	}
	if !record.Initializer.Equals(msg.Initializer) {
		return nil, nil, errors.Wrap(errors.ErrInput, "initializer does not match the escrow")
	}
	if err := verifyAddresses(&record, msg.EscrowAddress, msg.CustodyAddress); err != nil {
		return nil, nil, err
	}
	if _, err := h.tokens.GetAccount(db, msg.CustodyAddress); err != nil {
		return nil, nil, errors.Wrap(err, "custody account")
	}

	checks := []struct {
		name  string
		addr  weave.Address
		mint  weave.Address
		owner weave.Address
	}{
		{"initializer token b account", msg.InitializerTokenB, record.TokenB, record.Initializer},
		{"taker token b account", msg.TakerTokenB, record.TokenB, msg.Taker},
		{"taker token a account", msg.TakerTokenA, record.TokenA, msg.Taker},
	}
	for _, c := range checks {
		acc, err := h.tokens.GetAccount(db, c.addr)
		if err != nil {
			return nil, nil, errors.Wrap(err, c.name)
		}
		if !acc.Mint.Equals(c.mint) {
			return nil, nil, errors.Wrapf(errors.ErrCurrency, "%s is not of mint %s", c.name, c.mint)
		}
		if !acc.Owner.Equals(c.owner) {
			return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not owned by %s", c.name, c.owner)
		}
	}
	return &msg, &record, nil
}
