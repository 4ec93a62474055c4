package indexer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/workerpool"
)

// BlockSummary is what ingesting a block's transactions adds up to.
type BlockSummary struct {
	Fees   int64
	Burned int64
	Miner  string
}

// CreateTxs fetches and normalizes the transactions of block in parallel,
// then applies them to the ledger one by one in block order. All
// transactions are fetched before any is normalized so spends of outputs
// created earlier in the same block are served from the fetcher's cache.
func (i *Indexer) CreateTxs(ctx context.Context, block *btcjson.GetBlockVerboseResult) (BlockSummary, error) {
	height, err := safe.Uint64(block.Height)
	if err != nil {
		return BlockSummary{}, heightError("block height", 0, err)
	}

	raws, err := workerpool.Map(ctx, i.cfg.Workers, block.Tx, i.txs.Fetch)
	if err != nil {
		return BlockSummary{}, heightError("fetch transactions", height, err)
	}
	txs, err := workerpool.Map(ctx, i.cfg.Workers, raws, i.normalizer.Normalize)
	if err != nil {
		return BlockSummary{}, heightError("normalize", height, err)
	}

	blockTime := time.Unix(block.Time, 0).UTC()
	var summary BlockSummary
	wctx := context.WithoutCancel(ctx)
	for pos := range txs {
		tx := txs[pos]
		tx.BlockHash = block.Hash
		tx.BlockHeight = height
		tx.Position = uint32(pos)
		tx.Timestamp = blockTime
		if err := i.ledger.Apply(wctx, tx); err != nil {
			return BlockSummary{}, txError("apply", height, tx.TxID, err)
		}
		summary.Fees += tx.Fee
		summary.Burned += tx.Burned
	}
	summary.Burned += i.cfg.feeBurn(summary.Fees)
	if len(raws) > 0 {
		summary.Miner = i.normalizer.MinerAddress(raws[0], i.cfg.MinerOutputIndex)
	}
	return summary, nil
}

func newBlock(height uint64, info *btcjson.GetBlockVerboseResult, summary BlockSummary) (model.Block, error) {
	size, err := safe.Uint32(info.Size)
	if err != nil {
		return model.Block{}, err
	}
	txCount, err := safe.Uint32(len(info.Tx))
	if err != nil {
		return model.Block{}, err
	}
	ts := time.Unix(info.Time, 0).UTC()
	return model.Block{
		Height:          height,
		Hash:            info.Hash,
		MinedBy:         summary.Miner,
		Difficulty:      info.Difficulty,
		Size:            size,
		Timestamp:       ts,
		LocaleTimestamp: model.LocaleTimestamp(ts),
		TxCount:         txCount,
		Fees:            summary.Fees,
		Burned:          summary.Burned,
	}, nil
}
