package indexer

import (
	"context"

	"go.uber.org/zap"
)

// RewindDB removes heights from down to to, highest first. Each height's
// transactions are reversed last to first, then its block is deleted and
// the last indexed height moves below it.
func (i *Indexer) RewindDB(ctx context.Context, from, to uint64) (err error) {
	if from < to {
		return nil
	}
	heights := 0
	defer func() {
		i.metrics.ObserveRewind(err, heights)
	}()

	i.logger.Info("rewinding heights", zap.Uint64("from", from), zap.Uint64("to", to))
	for h := from; ; h-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := i.rewindHeight(ctx, h); err != nil {
			return err
		}
		heights++
		if h == to {
			break
		}
	}
	i.logger.Info("rewind complete", zap.Uint64("from", from), zap.Uint64("to", to), zap.Int("heights", heights))
	return nil
}

func (i *Indexer) rewindHeight(ctx context.Context, height uint64) error {
	if err := i.reverseHeight(ctx, height); err != nil {
		return err
	}
	wctx := context.WithoutCancel(ctx)
	if err := i.store.DeleteBlock(wctx, height); err != nil {
		return heightError("delete block", height, err)
	}
	if height == 0 {
		return nil
	}
	return i.setLast(wctx, height-1)
}
