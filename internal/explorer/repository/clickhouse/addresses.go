package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// ApplyAddressDelta writes the ledger entry row for delta; the materialized
// view adds the same values to the address totals. It returns the new totals.
func (r *Repository) ApplyAddressDelta(ctx context.Context, delta model.AddressDelta) (address model.Address, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("apply_address_delta", r.coin, r.network, err, start)
	}()

	const query = `
INSERT INTO explorer_address_txs (
	coin,
	network,
	address,
	txid,
	block_height,
	sent,
	received,
	amount
) VALUES`

	if delta.TxID == "" {
		return model.Address{}, fmt.Errorf("apply delta %s: empty txid", delta.Address)
	}
	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.Address{}, fmt.Errorf("prepare ledger entry batch: %w", err)
	}
	if err = batch.Append(
		string(r.coin),
		string(r.network),
		delta.Address,
		delta.TxID,
		delta.BlockHeight,
		delta.Sent,
		delta.Received,
		delta.Balance,
	); err != nil {
		_ = batch.Abort()
		return model.Address{}, fmt.Errorf("append ledger entry: %w", err)
	}
	if err = batch.Send(); err != nil {
		return model.Address{}, fmt.Errorf("insert ledger entry: %w", err)
	}

	address, _, err = r.addressTotals(ctx, delta.Address)
	return address, err
}

// IncrementAddress adds delta to the address totals without a ledger entry.
func (r *Repository) IncrementAddress(ctx context.Context, delta model.AddressDelta) (address model.Address, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("increment_address", r.coin, r.network, err, start)
	}()

	const query = `
INSERT INTO explorer_addresses (
	coin,
	network,
	address,
	sent,
	received,
	balance
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.Address{}, fmt.Errorf("prepare address batch: %w", err)
	}
	if err = batch.Append(
		string(r.coin),
		string(r.network),
		delta.Address,
		delta.Sent,
		delta.Received,
		delta.Balance,
	); err != nil {
		_ = batch.Abort()
		return model.Address{}, fmt.Errorf("append address: %w", err)
	}
	if err = batch.Send(); err != nil {
		return model.Address{}, fmt.Errorf("insert address: %w", err)
	}

	address, _, err = r.addressTotals(ctx, delta.Address)
	return address, err
}

// Address returns the totals of one address.
func (r *Repository) Address(ctx context.Context, address string) (totals model.Address, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address", r.coin, r.network, err, start)
	}()
	return r.addressTotals(ctx, address)
}

func (r *Repository) addressTotals(ctx context.Context, address string) (totals model.Address, ok bool, err error) {
	const query = `
SELECT
	toInt64(sum(sent)),
	toInt64(sum(received)),
	toInt64(sum(balance)),
	count()
FROM explorer_addresses
WHERE coin = ? AND network = ? AND address = ?`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, address)
	if err != nil {
		return model.Address{}, false, fmt.Errorf("query address %s: %w", address, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return model.Address{}, false, fmt.Errorf("address %s totals not found", address)
	}
	var count uint64
	if err = rows.Scan(&totals.Sent, &totals.Received, &totals.Balance, &count); err != nil {
		return model.Address{}, false, fmt.Errorf("scan address %s: %w", address, err)
	}
	if err = rows.Err(); err != nil {
		return model.Address{}, false, fmt.Errorf("iterate address %s: %w", address, err)
	}
	totals.Address = address
	return totals, count > 0, nil
}

// DeleteAddress removes the address totals.
func (r *Repository) DeleteAddress(ctx context.Context, address string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_address", r.coin, r.network, err, start)
	}()

	const query = `DELETE FROM explorer_addresses WHERE coin = ? AND network = ? AND address = ?`
	if err = r.conn.Exec(ctx, query, r.coin, r.network, address); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

// BalanceSupply sums positive balances, leaving out the coinbase pseudo-address.
func (r *Repository) BalanceSupply(ctx context.Context) (supply int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("balance_supply", r.coin, r.network, err, start)
	}()

	const query = `
SELECT toInt64(sum(address_balance))
FROM (
	SELECT address, sum(balance) AS address_balance
	FROM explorer_addresses
	WHERE coin = ? AND network = ? AND address != '` + model.CoinbaseAddress + `'
	GROUP BY address
	HAVING address_balance > 0
)`

	return r.queryInt64(ctx, query, "balance supply")
}

// TopAddresses ranks addresses by the counter kind selects.
func (r *Repository) TopAddresses(ctx context.Context, kind model.RichListKind, limit int) (addresses []model.Address, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("top_addresses", r.coin, r.network, err, start)
	}()

	column, err := rankColumn(kind)
	if err != nil {
		return nil, err
	}
	query := `
SELECT
	address,
	toInt64(sum(sent)) AS total_sent,
	toInt64(sum(received)) AS total_received,
	toInt64(sum(balance)) AS total_balance
FROM explorer_addresses
WHERE coin = ? AND network = ? AND address != ?
GROUP BY address
ORDER BY ` + column + ` DESC, address
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, model.CoinbaseAddress, limit)
	if err != nil {
		return nil, fmt.Errorf("query top addresses: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var a model.Address
		if err = rows.Scan(&a.Address, &a.Sent, &a.Received, &a.Balance); err != nil {
			return nil, fmt.Errorf("scan top address: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top addresses: %w", err)
	}
	return addresses, nil
}

func rankColumn(kind model.RichListKind) (string, error) {
	switch kind {
	case model.RichListReceived:
		return "total_received", nil
	case model.RichListBalance:
		return "total_balance", nil
	default:
		return "", fmt.Errorf("unknown rich list kind %q", kind)
	}
}
