package syncer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Indexer interface {
		EnsureStats(ctx context.Context) (model.ChainStats, error)
		IsBlockOrphaned(ctx context.Context, height uint64) (uint64, error)
		RewindDB(ctx context.Context, from, to uint64) error
		UpdateTxDB(ctx context.Context, start, end uint64) error
		UpdateStats(ctx context.Context) error
		UpdateRichList(ctx context.Context, kind model.RichListKind) error
		Reset(ctx context.Context) error
	}
	Node interface {
		GetBlockCount(ctx context.Context) (int64, error)
		GetRawMempool(ctx context.Context) ([]*chainhash.Hash, error)
	}
	Locker interface {
		TryLock() error
		Unlock() error
	}
	Metrics interface {
		ObserveRun(mode string, err error, started time.Time)
		SetMempoolSize(n int)
	}
)
