package indexer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		Block(ctx context.Context, height uint64) (model.Block, bool, error)
		SaveBlock(ctx context.Context, block model.Block) error
		DeleteBlock(ctx context.Context, height uint64) error
		TransactionsByHeight(ctx context.Context, height uint64) ([]model.Transaction, error)
		ChainStats(ctx context.Context) (model.ChainStats, bool, error)
		SaveChainStats(ctx context.Context, stats model.ChainStats) error
		BalanceSupply(ctx context.Context) (int64, error)
		BurnedSupply(ctx context.Context) (int64, error)
		TopAddresses(ctx context.Context, kind model.RichListKind, limit int) ([]model.Address, error)
		SaveRichList(ctx context.Context, kind model.RichListKind, addresses []model.Address) error
		Reset(ctx context.Context) error
	}
	Node interface {
		GetBlockCount(ctx context.Context) (int64, error)
		GetBlockHash(ctx context.Context, height int64) (*chainhash.Hash, error)
		GetBlockVerbose(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetConnectionCount(ctx context.Context) (int64, error)
	}
	TxFetcher interface {
		Fetch(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
	}
	Normalizer interface {
		Normalize(ctx context.Context, raw *btcjson.TxRawResult) (model.Transaction, error)
		MinerAddress(coinbase *btcjson.TxRawResult, index int) string
	}
	Ledger interface {
		Apply(ctx context.Context, tx model.Transaction) error
		Reverse(ctx context.Context, tx model.Transaction) error
	}
	Metrics interface {
		ObserveHeight(err error, txs int, started time.Time)
		ObserveRewind(err error, heights int)
		SetLastHeight(height uint64)
	}
)
