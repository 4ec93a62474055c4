package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// ChainStats returns the latest indexing summary.
func (r *Repository) ChainStats(ctx context.Context) (stats model.ChainStats, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("chain_stats", r.coin, r.network, err, start)
	}()

	const query = `
SELECT count, last, supply, burned, connections, updated_at
FROM explorer_chain_stats FINAL
WHERE coin = ? AND network = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network)
	if err != nil {
		return model.ChainStats{}, false, fmt.Errorf("query chain stats: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.ChainStats{}, false, fmt.Errorf("iterate chain stats: %w", err)
		}
		return model.ChainStats{}, false, nil
	}
	if err = rows.Scan(
		&stats.Count,
		&stats.Last,
		&stats.Supply,
		&stats.Burned,
		&stats.Connections,
		&stats.UpdatedAt,
	); err != nil {
		return model.ChainStats{}, false, fmt.Errorf("scan chain stats: %w", err)
	}
	stats.Coin = r.coin
	return stats, true, nil
}

// SaveChainStats replaces the indexing summary.
func (r *Repository) SaveChainStats(ctx context.Context, stats model.ChainStats) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_chain_stats", r.coin, r.network, err, start)
	}()

	const query = `
INSERT INTO explorer_chain_stats (
	coin,
	network,
	count,
	last,
	supply,
	burned,
	connections,
	updated_at,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare chain stats batch: %w", err)
	}
	if err = batch.Append(
		string(r.coin),
		string(r.network),
		stats.Count,
		stats.Last,
		stats.Supply,
		stats.Burned,
		stats.Connections,
		stats.UpdatedAt,
		r.version(),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append chain stats: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert chain stats: %w", err)
	}
	return nil
}
