// Package syncer drives indexing runs: one-shot update, full reindex, rich
// list rebuild and the long-running follow loop.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/lock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
	"go.uber.org/zap"
)

// ErrAlreadyRunning means another indexing run holds the lock.
var ErrAlreadyRunning = errors.New("indexer already running")

const (
	defaultPollInterval = 30 * time.Second
	defaultMaxBackoff   = 5 * time.Minute
)

// Config holds the driver settings.
type Config struct {
	// StartHeight is the first height indexed on a fresh or reset index.
	StartHeight  uint64
	PollInterval time.Duration
	MaxBackoff   time.Duration
}

// Syncer runs the indexer in the requested mode.
type Syncer struct {
	cfg     Config
	indexer Indexer
	node    Node
	locker  Locker
	metrics Metrics
	logger  *zap.Logger
	wait    func(context.Context, time.Duration, <-chan struct{}) error
}

// NewSyncer builds a Syncer. A nil locker runs without the lock file.
func NewSyncer(cfg Config, indexer Indexer, node Node, locker Locker, metrics Metrics, logger *zap.Logger) (*Syncer, error) {
	if indexer == nil {
		return nil, errors.New("indexer is required")
	}
	if node == nil {
		return nil, errors.New("node client is required")
	}
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.StartHeight == 0 {
		cfg.StartHeight = 1
	}
	return &Syncer{
		cfg:     cfg,
		indexer: indexer,
		node:    node,
		locker:  locker,
		metrics: metrics,
		logger:  logger.Named("syncer"),
		wait:    clock.WaitForSignal,
	}, nil
}

// Run executes one pass of mode under the lock. ModeFollow is handled by Follow.
func (s *Syncer) Run(ctx context.Context, mode Mode) error {
	if mode == ModeFollow {
		return errors.New("follow mode runs through Follow")
	}
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()
	return s.run(ctx, mode)
}

func (s *Syncer) acquire() (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}
	if err := s.locker.TryLock(); err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return func() {
		if err := s.locker.Unlock(); err != nil {
			s.logger.Warn("release lock failed", zap.Error(err))
		}
	}, nil
}

func (s *Syncer) run(ctx context.Context, mode Mode) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRun(string(mode), err, started)
	}()

	switch mode {
	case ModeUpdate:
		return s.update(ctx)
	case ModeReindex:
		return s.reindex(ctx)
	case ModeReindexRich:
		return s.richLists(ctx)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

func (s *Syncer) tip(ctx context.Context) (uint64, error) {
	count, err := s.node.GetBlockCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("block count: %w", err)
	}
	return safe.Uint64(count)
}

func (s *Syncer) update(ctx context.Context) error {
	stats, err := s.indexer.EnsureStats(ctx)
	if err != nil {
		return err
	}
	tip, err := s.tip(ctx)
	if err != nil {
		return err
	}

	last := stats.Last
	if last > 0 {
		good, err := s.indexer.IsBlockOrphaned(ctx, last)
		if err != nil {
			return err
		}
		if good < last {
			s.logger.Info("rewinding orphaned heights", zap.Uint64("from", last), zap.Uint64("good", good))
			if err := s.indexer.RewindDB(ctx, last, good+1); err != nil {
				return err
			}
			last = good
		}
	}

	start := max(last+1, s.cfg.StartHeight)
	if start > tip {
		s.logger.Info("index is up to date", zap.Uint64("last", last), zap.Uint64("tip", tip))
		return s.indexer.UpdateStats(ctx)
	}
	if err := s.indexer.UpdateTxDB(ctx, start, tip); err != nil {
		return err
	}
	if err := s.richLists(ctx); err != nil {
		return err
	}
	return s.indexer.UpdateStats(ctx)
}

func (s *Syncer) reindex(ctx context.Context) error {
	if err := s.indexer.Reset(ctx); err != nil {
		return err
	}
	tip, err := s.tip(ctx)
	if err != nil {
		return err
	}
	if s.cfg.StartHeight <= tip {
		if err := s.indexer.UpdateTxDB(ctx, s.cfg.StartHeight, tip); err != nil {
			return err
		}
	}
	if err := s.richLists(ctx); err != nil {
		return err
	}
	return s.indexer.UpdateStats(ctx)
}

func (s *Syncer) richLists(ctx context.Context) error {
	for _, kind := range []model.RichListKind{model.RichListReceived, model.RichListBalance} {
		if err := s.indexer.UpdateRichList(ctx, kind); err != nil {
			return err
		}
	}
	return nil
}
