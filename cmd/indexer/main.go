// Command indexer keeps the explorer ledger in step with a coin node.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/indexer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/ledger"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/node"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/normalize"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/syncer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/lock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "load env file: %v\n", err)
		os.Exit(1)
	}

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, logger)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, syncer.ErrAlreadyRunning):
		logger.Info("another indexing run holds the lock, exiting", zap.String("lock", cfg.LockFile))
	default:
		logger.Fatal("explorer indexer failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	mode, err := syncer.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("coin", string(cfg.Coin)), zap.String("network", string(cfg.Network)))

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer closeStore()

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	nodeClient, err := node.NewClient(rpc, metrics.NewNode(cfg.Coin, cfg.Network), cfg.RPCRate)
	if err != nil {
		return err
	}
	txs, err := normalize.NewPrevTxCache(nodeClient, cfg.PrevTxCacheSize, cfg.PrevTxCacheTTL)
	if err != nil {
		return err
	}
	units, err := normalize.NewUnits(cfg.Decimals)
	if err != nil {
		return err
	}
	decoder, err := normalize.NewScriptDecoder(cfg.Network)
	if err != nil {
		return err
	}
	normalizer, err := normalize.NewNormalizer(units, decoder, txs)
	if err != nil {
		return err
	}
	updater, err := ledger.NewUpdater(store, logger.Named("ledger"))
	if err != nil {
		return err
	}
	idx, err := indexer.NewIndexer(
		cfg.indexerConfig(),
		store,
		nodeClient,
		txs,
		normalizer,
		updater,
		metrics.NewIndexer(cfg.Coin, cfg.Network),
		logger,
	)
	if err != nil {
		return err
	}

	var locker syncer.Locker
	if !cfg.NoLock {
		fileLock, err := lock.New(cfg.LockFile)
		if err != nil {
			return err
		}
		locker = fileLock
	}
	driver, err := syncer.NewSyncer(cfg.syncerConfig(), idx, nodeClient, locker, metrics.NewSyncer(cfg.Coin, cfg.Network), logger)
	if err != nil {
		return err
	}

	if mode != syncer.ModeFollow {
		logger.Info("starting sync run", zap.String("mode", string(mode)))
		return driver.Run(ctx, mode)
	}

	blocks, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return fmt.Errorf("start block signal: %w", err)
	}
	logger.Info("following chain",
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.Bool("zmq", blocks != nil),
	)
	return driver.Follow(ctx, blocks)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
