package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

const blockColumns = `height,
	hash,
	mined_by,
	difficulty,
	size,
	timestamp,
	locale_timestamp,
	tx_count,
	fees,
	burned`

// Block returns the block stored at height.
func (r *Repository) Block(ctx context.Context, height uint64) (block model.Block, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block", r.coin, r.network, err, start)
	}()

	const query = `
SELECT ` + blockColumns + `
FROM explorer_blocks FINAL
WHERE coin = ? AND network = ? AND height = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.coin, r.network, height)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("query block: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Block{}, false, fmt.Errorf("iterate block: %w", err)
		}
		return model.Block{}, false, nil
	}
	if err = rows.Scan(
		&block.Height,
		&block.Hash,
		&block.MinedBy,
		&block.Difficulty,
		&block.Size,
		&block.Timestamp,
		&block.LocaleTimestamp,
		&block.TxCount,
		&block.Fees,
		&block.Burned,
	); err != nil {
		return model.Block{}, false, fmt.Errorf("scan block: %w", err)
	}
	return block, true, nil
}

// SaveBlock inserts the block, replacing any earlier version at its height.
func (r *Repository) SaveBlock(ctx context.Context, block model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_block", r.coin, r.network, err, start)
	}()

	const query = `
INSERT INTO explorer_blocks (
	coin,
	network,
	` + blockColumns + `,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}
	if err = batch.Append(
		string(r.coin),
		string(r.network),
		block.Height,
		block.Hash,
		block.MinedBy,
		block.Difficulty,
		block.Size,
		block.Timestamp,
		block.LocaleTimestamp,
		block.TxCount,
		block.Fees,
		block.Burned,
		r.version(),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append block: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

// DeleteBlock removes the block at height.
func (r *Repository) DeleteBlock(ctx context.Context, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_block", r.coin, r.network, err, start)
	}()

	const query = `DELETE FROM explorer_blocks WHERE coin = ? AND network = ? AND height = ?`
	if err = r.conn.Exec(ctx, query, r.coin, r.network, height); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

// BurnedSupply sums the burned value over all blocks.
func (r *Repository) BurnedSupply(ctx context.Context) (burned int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("burned_supply", r.coin, r.network, err, start)
	}()

	const query = `
SELECT toInt64(sum(burned))
FROM explorer_blocks FINAL
WHERE coin = ? AND network = ?`

	return r.queryInt64(ctx, query, "burned supply")
}

func (r *Repository) queryInt64(ctx context.Context, query, what string) (value int64, err error) {
	rows, err := r.conn.Query(ctx, query, r.coin, r.network)
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", what, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return 0, fmt.Errorf("%s not found", what)
	}
	if err = rows.Scan(&value); err != nil {
		return 0, fmt.Errorf("scan %s: %w", what, err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate %s: %w", what, err)
	}
	return value, nil
}
