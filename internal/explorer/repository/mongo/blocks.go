package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Block returns the block stored at height.
func (r *Repository) Block(ctx context.Context, height uint64) (block model.Block, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.observe("block", err, start)
	}()

	var doc blockDocument
	err = r.blocks.FindOne(ctx, r.scope(bson.E{Key: "height", Value: height})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Block{}, false, nil
	}
	if err != nil {
		return model.Block{}, false, fmt.Errorf("find block %d: %w", height, err)
	}
	return doc.model(), true, nil
}

// SaveBlock inserts or replaces the block at its height.
func (r *Repository) SaveBlock(ctx context.Context, block model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.observe("save_block", err, start)
	}()

	filter := r.scope(bson.E{Key: "height", Value: block.Height})
	if _, err = r.blocks.ReplaceOne(ctx, filter, r.newBlockDocument(block), options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("save block %d: %w", block.Height, err)
	}
	return nil
}

// DeleteBlock removes the block at height.
func (r *Repository) DeleteBlock(ctx context.Context, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.observe("delete_block", err, start)
	}()

	if _, err = r.blocks.DeleteOne(ctx, r.scope(bson.E{Key: "height", Value: height})); err != nil {
		return fmt.Errorf("delete block %d: %w", height, err)
	}
	return nil
}

// BurnedSupply sums the burned value over all blocks.
func (r *Repository) BurnedSupply(ctx context.Context) (burned int64, err error) {
	start := time.Now()
	defer func() {
		r.observe("burned_supply", err, start)
	}()

	return r.sum(ctx, r.blocks, r.scope(), "$burned")
}

func (r *Repository) sum(ctx context.Context, coll *mongo.Collection, match bson.D, field string) (total int64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: field}}},
		}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate %s: %w", coll.Name(), err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var result struct {
		Total int64 `bson:"total"`
	}
	if !cursor.Next(ctx) {
		return 0, cursor.Err()
	}
	if err = cursor.Decode(&result); err != nil {
		return 0, fmt.Errorf("decode %s sum: %w", coll.Name(), err)
	}
	return result.Total, nil
}
