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

// SaveTransaction inserts or replaces tx.
func (r *Repository) SaveTransaction(ctx context.Context, tx model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.observe("save_transaction", err, start)
	}()

	filter := r.scope(bson.E{Key: "txid", Value: tx.TxID})
	if _, err = r.txes.ReplaceOne(ctx, filter, r.newTxDocument(tx), options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("save tx %s: %w", tx.TxID, err)
	}
	return nil
}

// Transaction returns the stored transaction.
func (r *Repository) Transaction(ctx context.Context, txid string) (tx model.Transaction, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.observe("transaction", err, start)
	}()

	var doc txDocument
	err = r.txes.FindOne(ctx, r.scope(bson.E{Key: "txid", Value: txid})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Transaction{}, false, nil
	}
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("find tx %s: %w", txid, err)
	}
	return doc.model(), true, nil
}

// DeleteTransaction removes the transaction.
func (r *Repository) DeleteTransaction(ctx context.Context, txid string) (err error) {
	start := time.Now()
	defer func() {
		r.observe("delete_transaction", err, start)
	}()

	if _, err = r.txes.DeleteOne(ctx, r.scope(bson.E{Key: "txid", Value: txid})); err != nil {
		return fmt.Errorf("delete tx %s: %w", txid, err)
	}
	return nil
}

// TransactionsByHeight returns the transactions of a height in block order.
func (r *Repository) TransactionsByHeight(ctx context.Context, height uint64) (txs []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.observe("transactions_by_height", err, start)
	}()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.txes.Find(ctx, r.scope(bson.E{Key: "blockindex", Value: height}), opts)
	if err != nil {
		return nil, fmt.Errorf("find txs at %d: %w", height, err)
	}
	var docs []txDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode txs at %d: %w", height, err)
	}
	for _, doc := range docs {
		txs = append(txs, doc.model())
	}
	return txs, nil
}
