// Package normalize turns decoded node transactions into per-address value records.
package normalize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

// Normalizer converts raw transactions into merged input and output records.
type Normalizer struct {
	units   Units
	decoder ScriptDecoder
	txs     TxFetcher
}

// NewNormalizer wires a normalizer with its unit conversion, script decoder and transaction source.
func NewNormalizer(units Units, decoder ScriptDecoder, txs TxFetcher) (*Normalizer, error) {
	if decoder == nil {
		return nil, errors.New("script decoder is required")
	}
	if txs == nil {
		return nil, errors.New("transaction fetcher is required")
	}
	return &Normalizer{units: units, decoder: decoder, txs: txs}, nil
}

// Normalize builds the transaction document for raw. Block height and
// position are left for the caller to fill in.
func (n *Normalizer) Normalize(ctx context.Context, raw *btcjson.TxRawResult) (model.Transaction, error) {
	if raw == nil {
		return model.Transaction{}, errors.New("normalize: nil transaction")
	}
	outputs, burned, err := n.NormalizeOutputs(raw.Txid, raw.Vout)
	if err != nil {
		return model.Transaction{}, err
	}
	var issued int64
	for _, out := range outputs {
		issued += out.Amount
	}
	inputs, err := n.NormalizeInputs(ctx, raw, issued)
	if err != nil {
		return model.Transaction{}, err
	}
	size, err := safe.Uint32(raw.Size)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s size: %w", raw.Txid, err)
	}

	tx := model.Transaction{
		TxID:      raw.Txid,
		BlockHash: raw.BlockHash,
		Timestamp: time.Unix(raw.Time, 0).UTC(),
		Size:      size,
		Burned:    burned,
		Inputs:    inputs,
		Outputs:   outputs,
	}
	tx.Total = tx.OutputAmount()
	tx.Fee, err = Fee(tx)
	if err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// Fee returns inputs minus outputs. A negative result is ErrNegativeFee.
func Fee(tx model.Transaction) (int64, error) {
	in, out := tx.InputAmount(), tx.OutputAmount()
	fee := in - out
	if fee < 0 {
		return 0, fmt.Errorf("tx %s inputs %d outputs %d: %w", tx.TxID, in, out, ErrNegativeFee)
	}
	return fee, nil
}

// MinerAddress returns the address rewarded by a coinbase transaction: the
// output at index if it resolves, otherwise the first output that does.
// It returns an empty string when no output has an address.
func (n *Normalizer) MinerAddress(coinbase *btcjson.TxRawResult, index int) string {
	if coinbase == nil || len(coinbase.Vin) == 0 || !coinbase.Vin[0].IsCoinBase() {
		return ""
	}
	if index >= 0 && index < len(coinbase.Vout) {
		if address, ok := n.ownedAddress(coinbase.Vout[index]); ok {
			return address
		}
	}
	for _, vout := range coinbase.Vout {
		if address, ok := n.ownedAddress(vout); ok {
			return address
		}
	}
	return ""
}

func (n *Normalizer) ownedAddress(vout btcjson.Vout) (string, bool) {
	if Classify(vout.ScriptPubKey) != ScriptStandard {
		return "", false
	}
	address, err := n.decoder.Address(vout.ScriptPubKey)
	if err != nil {
		return "", false
	}
	return address, true
}
