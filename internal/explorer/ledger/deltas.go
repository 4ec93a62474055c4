package ledger

import "github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"

type deltaSet struct {
	deltas []model.AddressDelta
	index  map[string]int
}

func (s *deltaSet) get(tx model.Transaction, address string) *model.AddressDelta {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	i, ok := s.index[address]
	if !ok {
		i = len(s.deltas)
		s.index[address] = i
		s.deltas = append(s.deltas, model.AddressDelta{
			Address:     address,
			TxID:        tx.TxID,
			BlockHeight: tx.BlockHeight,
		})
	}
	return &s.deltas[i]
}

// Deltas returns one merged delta per address touched by tx, in first-seen
// order. Inputs add to sent and take from balance. Outputs paying back to an
// input address undo part of that sent value; other outputs add to received.
// OP_RETURN records and the coinbase input are left out.
func Deltas(tx model.Transaction) []model.AddressDelta {
	var set deltaSet
	spenders := make(map[string]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if in.Address == model.CoinbaseAddress {
			continue
		}
		spenders[in.Address] = struct{}{}
		d := set.get(tx, in.Address)
		d.Sent += in.Amount
		d.Balance -= in.Amount
	}
	for _, out := range tx.Outputs {
		if out.Address == model.OPReturnAddress {
			continue
		}
		d := set.get(tx, out.Address)
		if _, self := spenders[out.Address]; self {
			d.Sent -= out.Amount
		} else {
			d.Received += out.Amount
		}
		d.Balance += out.Amount
	}
	return set.deltas
}

// CoinbaseDelta returns the issuance counted against the coinbase
// pseudo-address, if tx is a coinbase transaction.
func CoinbaseDelta(tx model.Transaction) (model.AddressDelta, bool) {
	if !tx.IsCoinbase() {
		return model.AddressDelta{}, false
	}
	var issued int64
	for _, in := range tx.Inputs {
		if in.Address == model.CoinbaseAddress {
			issued += in.Amount
		}
	}
	return model.AddressDelta{
		Address:     model.CoinbaseAddress,
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		Sent:        issued,
	}, true
}
