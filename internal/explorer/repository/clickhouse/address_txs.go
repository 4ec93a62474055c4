package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// AddressTxsByTxID returns the merged ledger entries of a transaction.
func (r *Repository) AddressTxsByTxID(ctx context.Context, txid string) (entries []model.AddressTx, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_txs_by_txid", r.coin, r.network, err, start)
	}()

	const query = `
SELECT
	address,
	any(block_height),
	toInt64(sum(amount))
FROM explorer_address_txs
WHERE coin = ? AND network = ? AND txid = ?
GROUP BY address
ORDER BY address`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, txid)
	if err != nil {
		return nil, fmt.Errorf("query ledger entries: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		entry := model.AddressTx{TxID: txid}
		if err = rows.Scan(&entry.Address, &entry.BlockHeight, &entry.Amount); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}

// DeleteAddressTxs removes every ledger entry of a transaction. Address
// totals are not touched.
func (r *Repository) DeleteAddressTxs(ctx context.Context, txid string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_address_txs", r.coin, r.network, err, start)
	}()

	const query = `DELETE FROM explorer_address_txs WHERE coin = ? AND network = ? AND txid = ?`
	if err = r.conn.Exec(ctx, query, r.coin, r.network, txid); err != nil {
		return fmt.Errorf("delete ledger entries: %w", err)
	}
	return nil
}
