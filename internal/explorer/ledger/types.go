package ledger

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the part of the ledger store the updater writes to.
	Store interface {
		SaveTransaction(ctx context.Context, tx model.Transaction) error
		DeleteTransaction(ctx context.Context, txid string) error
		// ApplyAddressDelta adds delta to the address totals and merges it into
		// the (address, txid) ledger entry. It returns the new totals.
		ApplyAddressDelta(ctx context.Context, delta model.AddressDelta) (model.Address, error)
		// IncrementAddress adds delta to the address totals only.
		IncrementAddress(ctx context.Context, delta model.AddressDelta) (model.Address, error)
		AddressTxsByTxID(ctx context.Context, txid string) ([]model.AddressTx, error)
		DeleteAddressTxs(ctx context.Context, txid string) error
		DeleteAddress(ctx context.Context, address string) error
	}
)
