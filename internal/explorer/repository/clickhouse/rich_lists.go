package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// SaveRichList replaces the rich list of kind.
func (r *Repository) SaveRichList(ctx context.Context, kind model.RichListKind, addresses []model.Address) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_rich_list", r.coin, r.network, err, start)
	}()

	if _, err = rankColumn(kind); err != nil {
		return err
	}

	const deleteQuery = `DELETE FROM explorer_rich_lists WHERE coin = ? AND network = ? AND kind = ?`
	if err = r.conn.Exec(ctx, deleteQuery, r.coin, r.network, string(kind)); err != nil {
		return fmt.Errorf("delete rich list: %w", err)
	}
	if len(addresses) == 0 {
		return nil
	}

	const query = `
INSERT INTO explorer_rich_lists (
	coin,
	network,
	kind,
	position,
	address,
	sent,
	received,
	balance,
	updated_at,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare rich list batch: %w", err)
	}
	now := r.now().UTC()
	version := uint64(now.UnixNano())
	for i, a := range addresses {
		if err = batch.Append(
			string(r.coin),
			string(r.network),
			string(kind),
			uint32(i),
			a.Address,
			a.Sent,
			a.Received,
			a.Balance,
			now,
			version,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append rich list entry: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert rich list: %w", err)
	}
	return nil
}

// RichList returns the stored rich list of kind.
func (r *Repository) RichList(ctx context.Context, kind model.RichListKind) (list model.RichList, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("rich_list", r.coin, r.network, err, start)
	}()

	const query = `
SELECT address, sent, received, balance, updated_at
FROM explorer_rich_lists FINAL
WHERE coin = ? AND network = ? AND kind = ?
ORDER BY position`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, string(kind))
	if err != nil {
		return model.RichList{}, false, fmt.Errorf("query rich list: %w", err)
	}
	defer closeRows(rows, &err)

	list = model.RichList{Coin: r.coin, Kind: kind}
	for rows.Next() {
		var a model.Address
		if err = rows.Scan(&a.Address, &a.Sent, &a.Received, &a.Balance, &list.UpdatedAt); err != nil {
			return model.RichList{}, false, fmt.Errorf("scan rich list entry: %w", err)
		}
		list.Addresses = append(list.Addresses, a)
	}
	if err = rows.Err(); err != nil {
		return model.RichList{}, false, fmt.Errorf("iterate rich list: %w", err)
	}
	return list, len(list.Addresses) > 0, nil
}
