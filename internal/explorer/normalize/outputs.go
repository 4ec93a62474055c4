package normalize

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// outputSet merges output records per address, keeping first-seen order.
type outputSet struct {
	records []model.AggregatedOutput
	index   map[string]int
}

func (s *outputSet) add(address string, amount int64) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[address]; ok {
		s.records[i].Amount += amount
		return
	}
	s.index[address] = len(s.records)
	s.records = append(s.records, model.AggregatedOutput{Address: address, Amount: amount})
}

// NormalizeOutputs merges value-bearing outputs per address and totals the burned value.
// Nonstandard outputs are skipped; null-data outputs count as burned and only
// positive ones produce an OP_RETURN record.
func (n *Normalizer) NormalizeOutputs(txid string, vouts []btcjson.Vout) ([]model.AggregatedOutput, int64, error) {
	var set outputSet
	var burned int64
	for _, vout := range vouts {
		class := Classify(vout.ScriptPubKey)
		if class == ScriptNonStandard {
			continue
		}
		amount, err := n.units.ToSmallest(vout.Value)
		if err != nil {
			return nil, 0, fmt.Errorf("tx %s output %d value: %w", txid, vout.N, err)
		}
		if class == ScriptNullData {
			burned += amount
			if amount > 0 {
				set.add(model.OPReturnAddress, amount)
			}
			continue
		}
		address, err := n.decoder.Address(vout.ScriptPubKey)
		if err != nil {
			return nil, 0, fmt.Errorf("tx %s output %d address: %w", txid, vout.N, err)
		}
		set.add(address, amount)
	}
	return set.records, burned, nil
}
