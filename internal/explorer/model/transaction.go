package model

import "time"

// TxStatus tracks how far a transaction got into the address ledger.
type TxStatus string

var (
	// TxPending marks a transaction whose address deltas may be partially applied.
	TxPending TxStatus = "pending"
	// TxApplied marks a transaction whose address deltas are all applied.
	TxApplied TxStatus = "applied"
)

// AggregatedInput is the merged value spent by one address in a transaction.
type AggregatedInput struct {
	Address   string
	Amount    int64
	NumInputs uint32
}

// AggregatedOutput is the merged value received by one address in a transaction.
type AggregatedOutput struct {
	Address string
	Amount  int64
}

// Transaction is a normalized transaction with merged inputs and outputs.
type Transaction struct {
	TxID        string
	BlockHash   string
	BlockHeight uint64
	Position    uint32
	Timestamp   time.Time
	Size        uint32
	Fee         int64
	Total       int64
	Burned      int64
	Inputs      []AggregatedInput
	Outputs     []AggregatedOutput
	Status      TxStatus
}

// InputAmount sums the merged input records.
func (t Transaction) InputAmount() int64 {
	var sum int64
	for _, in := range t.Inputs {
		sum += in.Amount
	}
	return sum
}

// OutputAmount sums the merged output records.
func (t Transaction) OutputAmount() int64 {
	var sum int64
	for _, out := range t.Outputs {
		sum += out.Amount
	}
	return sum
}

// IsCoinbase reports whether the transaction issues new coins.
func (t Transaction) IsCoinbase() bool {
	for _, in := range t.Inputs {
		if in.Address == CoinbaseAddress {
			return true
		}
	}
	return false
}
