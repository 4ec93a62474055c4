// Package ledger keeps address totals and per-address ledger entries in step
// with indexed transactions.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.uber.org/zap"
)

// ErrEntryMismatch reports a ledger entry that matches neither the applied
// nor the reversed state of its transaction.
var ErrEntryMismatch = errors.New("ledger entry does not match transaction")

// Updater applies and reverses transactions against the ledger store.
type Updater struct {
	store  Store
	logger *zap.Logger
}

// NewUpdater builds an Updater writing to store.
func NewUpdater(store Store, logger *zap.Logger) (*Updater, error) {
	if store == nil {
		return nil, errors.New("ledger store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Updater{store: store, logger: logger}, nil
}

// Apply stores tx and adds its address deltas. The transaction is saved as
// pending first and marked applied once every delta is written, so an
// interrupted Apply can be undone with Reverse.
func (u *Updater) Apply(ctx context.Context, tx model.Transaction) error {
	tx.Status = model.TxPending
	if err := u.store.SaveTransaction(ctx, tx); err != nil {
		return fmt.Errorf("save pending tx %s: %w", tx.TxID, err)
	}
	for _, delta := range Deltas(tx) {
		if _, err := u.store.ApplyAddressDelta(ctx, delta); err != nil {
			return fmt.Errorf("apply delta %s tx %s: %w", delta.Address, tx.TxID, err)
		}
	}
	if delta, ok := CoinbaseDelta(tx); ok {
		if _, err := u.store.IncrementAddress(ctx, delta); err != nil {
			return fmt.Errorf("apply coinbase tx %s: %w", tx.TxID, err)
		}
	}
	tx.Status = model.TxApplied
	if err := u.store.SaveTransaction(ctx, tx); err != nil {
		return fmt.Errorf("save applied tx %s: %w", tx.TxID, err)
	}
	return nil
}

// Reverse undoes tx and removes it with its ledger entries. Only addresses
// whose ledger entry still holds the transaction's delta are touched, which
// makes Reverse safe to repeat and able to finish an interrupted Apply.
// Addresses left with all counters at zero are deleted.
func (u *Updater) Reverse(ctx context.Context, tx model.Transaction) error {
	if tx.Status == model.TxApplied {
		pending := tx
		pending.Status = model.TxPending
		if err := u.store.SaveTransaction(ctx, pending); err != nil {
			return fmt.Errorf("save pending tx %s: %w", tx.TxID, err)
		}
		if delta, ok := CoinbaseDelta(tx); ok {
			if _, err := u.store.IncrementAddress(ctx, delta.Negate()); err != nil {
				return fmt.Errorf("reverse coinbase tx %s: %w", tx.TxID, err)
			}
		}
	} else {
		u.logger.Info("recovering pending transaction",
			zap.String("txid", tx.TxID),
			zap.Uint64("height", tx.BlockHeight),
		)
	}

	entries, err := u.store.AddressTxsByTxID(ctx, tx.TxID)
	if err != nil {
		return fmt.Errorf("ledger entries tx %s: %w", tx.TxID, err)
	}
	applied := make(map[string]int64, len(entries))
	for _, entry := range entries {
		applied[entry.Address] = entry.Amount
	}

	for _, delta := range Deltas(tx) {
		amount, ok := applied[delta.Address]
		if !ok {
			continue
		}
		if amount != delta.Balance {
			if amount == 0 {
				continue
			}
			return fmt.Errorf("address %s tx %s entry %d delta %d: %w",
				delta.Address, tx.TxID, amount, delta.Balance, ErrEntryMismatch)
		}
		totals, err := u.store.ApplyAddressDelta(ctx, delta.Negate())
		if err != nil {
			return fmt.Errorf("reverse delta %s tx %s: %w", delta.Address, tx.TxID, err)
		}
		if totals.IsZero() {
			if err := u.store.DeleteAddress(ctx, delta.Address); err != nil {
				return fmt.Errorf("delete address %s: %w", delta.Address, err)
			}
		}
	}

	if err := u.store.DeleteAddressTxs(ctx, tx.TxID); err != nil {
		return fmt.Errorf("delete ledger entries tx %s: %w", tx.TxID, err)
	}
	if err := u.store.DeleteTransaction(ctx, tx.TxID); err != nil {
		return fmt.Errorf("delete tx %s: %w", tx.TxID, err)
	}
	return nil
}
