package clickhouse

import (
	"context"
	"fmt"
	"time"
)

var coinTables = []string{
	"explorer_blocks",
	"explorer_transactions",
	"explorer_address_txs",
	"explorer_addresses",
	"explorer_chain_stats",
	"explorer_rich_lists",
}

// Reset deletes every row of the coin and network from all explorer tables.
func (r *Repository) Reset(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reset", r.coin, r.network, err, start)
	}()

	for _, table := range coinTables {
		query := fmt.Sprintf("DELETE FROM %s WHERE coin = ? AND network = ?", table)
		if err = r.conn.Exec(ctx, query, r.coin, r.network); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
