package app

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	return weave.ExtractMsgFromSum(
		tx.CashSendMsg,
		tx.CashUpdateConfigurationMsg,
		tx.TokenCreateMintMsg,
		tx.TokenCreateAccountMsg,
		tx.TokenMintToMsg,
		tx.TokenTransferMsg,
		tx.TokenCloseAccountMsg,
		tx.TokenUpdateConfigurationMsg,
		tx.EscrowInitializeMsg,
		tx.EscrowFinalizeMsg,
		tx.EscrowUpdateConfigurationMsg,
		tx.SigsBumpSequenceMsg,
	)
}

// GetSignBytes returns the bytes to sign. Signatures are not part of
// the signed data.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return unsigned.Marshal()
}

