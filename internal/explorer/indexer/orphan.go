package indexer

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/node"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
	"go.uber.org/zap"
)

// IsBlockOrphaned walks down from height and returns the highest height whose
// block is still on the node's main chain. Heights above the node tip start
// the walk at the tip. The stored hash is checked when there is one, so a
// block replaced at the same height is caught. Height 0 is always good.
func (i *Indexer) IsBlockOrphaned(ctx context.Context, height uint64) (uint64, error) {
	count, err := i.node.GetBlockCount(ctx)
	if err != nil {
		return 0, heightError("block count", height, err)
	}
	if tip, err := safe.Uint64(count); err == nil && height > tip {
		height = tip
	}

	for height > 0 {
		hash, err := i.blockHash(ctx, height)
		if err != nil {
			return 0, heightError("orphan check", height, err)
		}
		info, err := i.node.GetBlockVerbose(ctx, hash)
		switch {
		case err == nil && info.Confirmations > 0:
			return height, nil
		case err != nil && !node.IsNotFound(err):
			return 0, heightError("orphan check", height, err)
		}
		i.logger.Info("orphaned block detected", zap.Uint64("height", height), zap.Stringer("hash", hash))
		height--
	}
	return 0, nil
}

func (i *Indexer) blockHash(ctx context.Context, height uint64) (*chainhash.Hash, error) {
	block, ok, err := i.store.Block(ctx, height)
	if err != nil {
		return nil, err
	}
	if ok && block.Hash != "" {
		hash, err := chainhash.NewHashFromStr(block.Hash)
		if err != nil {
			return nil, fmt.Errorf("stored hash %q: %w", block.Hash, err)
		}
		return hash, nil
	}
	h, err := safe.Int64(height)
	if err != nil {
		return nil, err
	}
	return i.node.GetBlockHash(ctx, h)
}
