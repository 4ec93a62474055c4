package normalize

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

type inputSet struct {
	records []model.AggregatedInput
	index   map[string]int
}

func (s *inputSet) add(address string, amount int64) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[address]; ok {
		s.records[i].Amount += amount
		s.records[i].NumInputs++
		return
	}
	s.index[address] = len(s.records)
	s.records = append(s.records, model.AggregatedInput{Address: address, Amount: amount, NumInputs: 1})
}

// NormalizeInputs resolves every input to the address and value it spends and
// merges them per address. A coinbase input is attributed to the coinbase
// pseudo-address and is worth issued, the value of the transaction's indexed
// outputs, so a coinbase never pays a fee.
func (n *Normalizer) NormalizeInputs(ctx context.Context, tx *btcjson.TxRawResult, issued int64) ([]model.AggregatedInput, error) {
	var set inputSet
	for i, vin := range tx.Vin {
		if vin.IsCoinBase() {
			set.add(model.CoinbaseAddress, issued)
			continue
		}

		address, amount, err := n.spentOutput(ctx, vin)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d: %w", tx.Txid, i, err)
		}
		set.add(address, amount)
	}
	return set.records, nil
}

func (n *Normalizer) spentOutput(ctx context.Context, vin btcjson.Vin) (string, int64, error) {
	prev, err := n.txs.Fetch(ctx, vin.Txid)
	if err != nil {
		return "", 0, fmt.Errorf("fetch previous transaction: %w", err)
	}

	var spent *btcjson.Vout
	for i := range prev.Vout {
		if prev.Vout[i].N == vin.Vout {
			spent = &prev.Vout[i]
			break
		}
	}
	if spent == nil {
		return "", 0, fmt.Errorf("%w: %s:%d", ErrMissingPrevOutput, vin.Txid, vin.Vout)
	}

	amount, err := n.units.ToSmallest(spent.Value)
	if err != nil {
		return "", 0, fmt.Errorf("previous output %s:%d value: %w", vin.Txid, vin.Vout, err)
	}
	address, err := n.decoder.Address(spent.ScriptPubKey)
	if err != nil {
		return "", 0, fmt.Errorf("previous output %s:%d address: %w", vin.Txid, vin.Vout, err)
	}
	return address, amount, nil
}
