// Package indexer walks the node's chain height by height and keeps the
// ledger store consistent with it, rewinding heights the node orphaned.
package indexer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
	"go.uber.org/zap"
)

// Indexer ingests and rewinds blocks for one coin.
type Indexer struct {
	cfg        Config
	store      Store
	node       Node
	txs        TxFetcher
	normalizer Normalizer
	ledger     Ledger
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewIndexer validates cfg and wires the indexer's collaborators.
func NewIndexer(
	cfg Config,
	store Store,
	node Node,
	txs TxFetcher,
	normalizer Normalizer,
	ledger Ledger,
	metrics Metrics,
	logger *zap.Logger,
) (*Indexer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	switch {
	case store == nil:
		return nil, errors.New("store is required")
	case node == nil:
		return nil, errors.New("node client is required")
	case txs == nil:
		return nil, errors.New("transaction fetcher is required")
	case normalizer == nil:
		return nil, errors.New("normalizer is required")
	case ledger == nil:
		return nil, errors.New("ledger is required")
	case metrics == nil:
		return nil, errors.New("indexer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Indexer{
		cfg:        cfg,
		store:      store,
		node:       node,
		txs:        txs,
		normalizer: normalizer,
		ledger:     ledger,
		metrics:    metrics,
		logger: logger.Named("indexer").With(
			zap.String("coin", string(cfg.Coin)),
			zap.String("network", string(cfg.Network)),
		),
		now: time.Now,
	}, nil
}

// UpdateTxDB ingests heights start through end in ascending order. The context
// is checked between heights only: once a height's transactions are fetched,
// its writes run to completion.
func (i *Indexer) UpdateTxDB(ctx context.Context, start, end uint64) error {
	if start > end {
		return nil
	}
	i.logger.Info("indexing heights", zap.Uint64("start", start), zap.Uint64("end", end))
	for h := start; ; h++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := i.indexHeight(ctx, h); err != nil {
			return err
		}
		if h == end {
			break
		}
	}
	i.logger.Info("heights indexed", zap.Uint64("start", start), zap.Uint64("end", end))
	return nil
}

func (i *Indexer) indexHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	txCount := 0
	defer func() {
		i.metrics.ObserveHeight(err, txCount, started)
	}()

	if _, ok, err := i.store.Block(ctx, height); err != nil {
		return heightError("load block", height, err)
	} else if ok {
		i.logger.Debug("height already indexed, skipping", zap.Uint64("height", height))
		return i.setLast(context.WithoutCancel(ctx), height)
	}

	if err := i.reverseHeight(ctx, height); err != nil {
		return err
	}

	h, err := safe.Int64(height)
	if err != nil {
		return heightError("block hash", height, err)
	}
	hash, err := i.node.GetBlockHash(ctx, h)
	if err != nil {
		return heightError("block hash", height, err)
	}
	info, err := i.node.GetBlockVerbose(ctx, hash)
	if err != nil {
		return heightError("block", height, err)
	}
	txCount = len(info.Tx)

	summary, err := i.CreateTxs(ctx, info)
	if err != nil {
		return err
	}

	block, err := newBlock(height, info, summary)
	if err != nil {
		return heightError("block", height, err)
	}
	wctx := context.WithoutCancel(ctx)
	if err := i.store.SaveBlock(wctx, block); err != nil {
		return heightError("save block", height, err)
	}
	if err := i.setLast(wctx, height); err != nil {
		return err
	}
	i.logger.Debug("height indexed",
		zap.Uint64("height", height),
		zap.Int("txs", txCount),
		zap.Int64("fees", summary.Fees),
	)
	return nil
}

// reverseHeight undoes whatever is stored at height, last transaction first.
// A fully indexed height is rewound the same way a half-written one is recovered.
func (i *Indexer) reverseHeight(ctx context.Context, height uint64) error {
	txs, err := i.store.TransactionsByHeight(ctx, height)
	if err != nil {
		return heightError("load transactions", height, err)
	}
	if len(txs) == 0 {
		return nil
	}
	i.logger.Info("reversing stored transactions", zap.Uint64("height", height), zap.Int("txs", len(txs)))
	wctx := context.WithoutCancel(ctx)
	for k := len(txs) - 1; k >= 0; k-- {
		if err := i.ledger.Reverse(wctx, txs[k]); err != nil {
			return txError("reverse", height, txs[k].TxID, err)
		}
	}
	return nil
}

func (i *Indexer) setLast(ctx context.Context, height uint64) error {
	stats, err := i.EnsureStats(ctx)
	if err != nil {
		return heightError("load stats", height, err)
	}
	stats.Last = height
	stats.UpdatedAt = i.now().UTC()
	if err := i.store.SaveChainStats(ctx, stats); err != nil {
		return heightError("save stats", height, err)
	}
	i.metrics.SetLastHeight(height)
	return nil
}
