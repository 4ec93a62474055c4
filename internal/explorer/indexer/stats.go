package indexer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.uber.org/zap"
)

// EnsureStats returns the stored chain stats, creating them with last = 0
// when the coin has none yet.
func (i *Indexer) EnsureStats(ctx context.Context) (model.ChainStats, error) {
	stats, ok, err := i.store.ChainStats(ctx)
	if err != nil {
		return model.ChainStats{}, fmt.Errorf("load chain stats: %w", err)
	}
	if ok {
		return stats, nil
	}
	stats = i.initialStats()
	if err := i.store.SaveChainStats(ctx, stats); err != nil {
		return model.ChainStats{}, fmt.Errorf("create chain stats: %w", err)
	}
	return stats, nil
}

func (i *Indexer) initialStats() model.ChainStats {
	return model.ChainStats{Coin: i.cfg.Coin, UpdatedAt: i.now().UTC()}
}

// UpdateStats refreshes block count, supply, burned total and peer count.
// The last indexed height is left as is.
func (i *Indexer) UpdateStats(ctx context.Context) error {
	stats, err := i.EnsureStats(ctx)
	if err != nil {
		return err
	}
	count, err := i.node.GetBlockCount(ctx)
	if err != nil {
		return fmt.Errorf("block count: %w", err)
	}
	supply, err := i.store.BalanceSupply(ctx)
	if err != nil {
		return fmt.Errorf("balance supply: %w", err)
	}
	burned, err := i.store.BurnedSupply(ctx)
	if err != nil {
		return fmt.Errorf("burned supply: %w", err)
	}
	connections, err := i.node.GetConnectionCount(ctx)
	if err != nil {
		return fmt.Errorf("connection count: %w", err)
	}

	stats.Count = count
	stats.Supply = supply
	stats.Burned = burned
	stats.Connections = connections
	stats.UpdatedAt = i.now().UTC()
	if err := i.store.SaveChainStats(ctx, stats); err != nil {
		return fmt.Errorf("save chain stats: %w", err)
	}
	i.logger.Info("chain stats updated",
		zap.Int64("count", count),
		zap.Uint64("last", stats.Last),
		zap.Int64("supply", supply),
		zap.Int64("burned", burned),
	)
	return nil
}

// UpdateRichList stores the top addresses ranked by kind.
func (i *Indexer) UpdateRichList(ctx context.Context, kind model.RichListKind) error {
	top, err := i.store.TopAddresses(ctx, kind, i.cfg.RichListSize)
	if err != nil {
		return fmt.Errorf("top addresses by %s: %w", kind, err)
	}
	if err := i.store.SaveRichList(ctx, kind, top); err != nil {
		return fmt.Errorf("save rich list %s: %w", kind, err)
	}
	i.logger.Debug("rich list updated", zap.String("kind", string(kind)), zap.Int("addresses", len(top)))
	return nil
}

// Reset drops all indexed data of the coin and starts the stats over.
func (i *Indexer) Reset(ctx context.Context) error {
	i.logger.Warn("resetting index")
	if err := i.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	if err := i.store.SaveChainStats(ctx, i.initialStats()); err != nil {
		return fmt.Errorf("create chain stats: %w", err)
	}
	i.metrics.SetLastHeight(0)
	return nil
}
