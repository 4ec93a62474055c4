package model

import "time"

// ChainStats is the per-coin indexing summary.
type ChainStats struct {
	Coin        Coin
	Count       int64
	Last        uint64
	Supply      int64
	Burned      int64
	Connections int64
	UpdatedAt   time.Time
}

// RichListKind selects the counter a rich list is ranked by.
type RichListKind string

var (
	RichListReceived RichListKind = "received"
	RichListBalance  RichListKind = "balance"
)

// RichList is a ranked snapshot of the top addresses.
type RichList struct {
	Coin      Coin
	Kind      RichListKind
	Addresses []Address
	UpdatedAt time.Time
}
