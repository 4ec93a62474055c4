package model

// Address holds the running totals of one address.
type Address struct {
	Address  string
	Sent     int64
	Received int64
	Balance  int64
}

// IsZero reports whether all counters are back to zero.
func (a Address) IsZero() bool {
	return a.Sent == 0 && a.Received == 0 && a.Balance == 0
}

// AddressDelta is the net change one transaction applies to one address.
type AddressDelta struct {
	Address     string
	TxID        string
	BlockHeight uint64
	Sent        int64
	Received    int64
	Balance     int64
}

// Negate returns the delta that undoes d.
func (d AddressDelta) Negate() AddressDelta {
	d.Sent = -d.Sent
	d.Received = -d.Received
	d.Balance = -d.Balance
	return d
}

// AddressTx is the ledger entry of an (address, txid) pair.
type AddressTx struct {
	Address     string
	TxID        string
	BlockHeight uint64
	Amount      int64
}
