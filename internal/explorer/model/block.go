// Package model defines the documents maintained by the chain indexer.
package model

import "time"

const localeTimestampLayout = "1/2/2006, 3:04:05 PM"

// Block is the per-height summary written once the height is fully indexed.
type Block struct {
	Height          uint64
	Hash            string
	MinedBy         string
	Difficulty      float64
	Size            uint32
	Timestamp       time.Time
	LocaleTimestamp string
	TxCount         uint32
	Fees            int64
	Burned          int64
}

// LocaleTimestamp renders t the way the explorer pages display block times (en-US, UTC).
func LocaleTimestamp(t time.Time) string {
	return t.UTC().Format(localeTimestampLayout)
}
