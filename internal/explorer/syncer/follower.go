package syncer

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Follow holds the lock and runs update passes until ctx is done. A pass
// starts on every value from signal or after the poll interval. Failed
// passes are retried with exponential backoff.
func (s *Syncer) Follow(ctx context.Context, signal <-chan struct{}) error {
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = s.cfg.MaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx, ModeUpdate); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := b.NextBackOff()
			s.logger.Warn("update failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if err := s.wait(ctx, delay, nil); err != nil {
				return err
			}
			continue
		}
		b.Reset()
		s.recordMempool(ctx)

		if err := s.wait(ctx, s.cfg.PollInterval, signal); err != nil {
			return err
		}
	}
}

func (s *Syncer) recordMempool(ctx context.Context) {
	txids, err := s.node.GetRawMempool(ctx)
	if err != nil {
		s.logger.Debug("mempool unavailable", zap.Error(err))
		return
	}
	s.metrics.SetMempoolSize(len(txids))
}
