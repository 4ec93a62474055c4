package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/indexer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/ledger"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/repository/memory"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/repository/mongo"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/metrics"
)

type store interface {
	indexer.Store
	ledger.Store
}

func openStore(ctx context.Context, cfg config) (store, func(), error) {
	switch cfg.Store {
	case "clickhouse":
		if cfg.ClickhouseDSN == "" {
			return nil, nil, errors.New("clickhouse dsn is required")
		}
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Coin, cfg.Network, metrics.NewRepository("clickhouse"))
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	case "mongo":
		repo, err := mongo.NewRepository(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.Coin, cfg.Network, metrics.NewRepository("mongo"))
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = repo.Close(closeCtx)
		}, nil
	case "memory":
		return memory.NewRepository(cfg.Coin, cfg.Network), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
