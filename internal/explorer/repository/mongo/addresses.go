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

// ApplyAddressDelta merges delta into the (address, txid) ledger entry and
// then into the address totals, returning the new totals.
func (r *Repository) ApplyAddressDelta(ctx context.Context, delta model.AddressDelta) (address model.Address, err error) {
	start := time.Now()
	defer func() {
		r.observe("apply_address_delta", err, start)
	}()

	if delta.TxID == "" {
		return model.Address{}, fmt.Errorf("apply delta %s: empty txid", delta.Address)
	}
	filter := r.scope(
		bson.E{Key: "txid", Value: delta.TxID},
		bson.E{Key: "a_id", Value: delta.Address},
	)
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "amount", Value: delta.Balance}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "blockindex", Value: delta.BlockHeight}}},
	}
	if _, err = r.addressTxs.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return model.Address{}, fmt.Errorf("update ledger entry %s tx %s: %w", delta.Address, delta.TxID, err)
	}
	return r.incrementTotals(ctx, delta)
}

// IncrementAddress adds delta to the address totals without a ledger entry.
func (r *Repository) IncrementAddress(ctx context.Context, delta model.AddressDelta) (address model.Address, err error) {
	start := time.Now()
	defer func() {
		r.observe("increment_address", err, start)
	}()
	return r.incrementTotals(ctx, delta)
}

func (r *Repository) incrementTotals(ctx context.Context, delta model.AddressDelta) (model.Address, error) {
	update := bson.D{{Key: "$inc", Value: bson.D{
		{Key: "sent", Value: delta.Sent},
		{Key: "received", Value: delta.Received},
		{Key: "balance", Value: delta.Balance},
	}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc addressDocument
	err := r.addresses.FindOneAndUpdate(ctx, r.scope(bson.E{Key: "a_id", Value: delta.Address}), update, opts).Decode(&doc)
	if err != nil {
		return model.Address{}, fmt.Errorf("update address %s: %w", delta.Address, err)
	}
	return doc.model(), nil
}

// Address returns the totals of one address.
func (r *Repository) Address(ctx context.Context, address string) (totals model.Address, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.observe("address", err, start)
	}()

	var doc addressDocument
	err = r.addresses.FindOne(ctx, r.scope(bson.E{Key: "a_id", Value: address})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Address{}, false, nil
	}
	if err != nil {
		return model.Address{}, false, fmt.Errorf("find address %s: %w", address, err)
	}
	return doc.model(), true, nil
}

// DeleteAddress removes the address totals.
func (r *Repository) DeleteAddress(ctx context.Context, address string) (err error) {
	start := time.Now()
	defer func() {
		r.observe("delete_address", err, start)
	}()

	if _, err = r.addresses.DeleteOne(ctx, r.scope(bson.E{Key: "a_id", Value: address})); err != nil {
		return fmt.Errorf("delete address %s: %w", address, err)
	}
	return nil
}

// AddressTxsByTxID returns the ledger entries of a transaction.
func (r *Repository) AddressTxsByTxID(ctx context.Context, txid string) (entries []model.AddressTx, err error) {
	start := time.Now()
	defer func() {
		r.observe("address_txs_by_txid", err, start)
	}()

	opts := options.Find().SetSort(bson.D{{Key: "a_id", Value: 1}})
	cursor, err := r.addressTxs.Find(ctx, r.scope(bson.E{Key: "txid", Value: txid}), opts)
	if err != nil {
		return nil, fmt.Errorf("find ledger entries tx %s: %w", txid, err)
	}
	var docs []addressTxDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode ledger entries tx %s: %w", txid, err)
	}
	for _, doc := range docs {
		entries = append(entries, model.AddressTx{
			Address:     doc.Address,
			TxID:        doc.TxID,
			BlockHeight: doc.Height,
			Amount:      doc.Amount,
		})
	}
	return entries, nil
}

// DeleteAddressTxs removes every ledger entry of a transaction.
func (r *Repository) DeleteAddressTxs(ctx context.Context, txid string) (err error) {
	start := time.Now()
	defer func() {
		r.observe("delete_address_txs", err, start)
	}()

	if _, err = r.addressTxs.DeleteMany(ctx, r.scope(bson.E{Key: "txid", Value: txid})); err != nil {
		return fmt.Errorf("delete ledger entries tx %s: %w", txid, err)
	}
	return nil
}

// BalanceSupply sums positive balances, leaving out the coinbase pseudo-address.
func (r *Repository) BalanceSupply(ctx context.Context) (supply int64, err error) {
	start := time.Now()
	defer func() {
		r.observe("balance_supply", err, start)
	}()

	match := r.scope(
		bson.E{Key: "a_id", Value: bson.D{{Key: "$ne", Value: model.CoinbaseAddress}}},
		bson.E{Key: "balance", Value: bson.D{{Key: "$gt", Value: 0}}},
	)
	return r.sum(ctx, r.addresses, match, "$balance")
}

// TopAddresses ranks addresses by the counter kind selects.
func (r *Repository) TopAddresses(ctx context.Context, kind model.RichListKind, limit int) (addresses []model.Address, err error) {
	start := time.Now()
	defer func() {
		r.observe("top_addresses", err, start)
	}()

	var field string
	switch kind {
	case model.RichListReceived:
		field = "received"
	case model.RichListBalance:
		field = "balance"
	default:
		return nil, fmt.Errorf("unknown rich list kind %q", kind)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: -1}, {Key: "a_id", Value: 1}}).
		SetLimit(int64(limit))
	filter := r.scope(bson.E{Key: "a_id", Value: bson.D{{Key: "$ne", Value: model.CoinbaseAddress}}})
	cursor, err := r.addresses.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find top addresses: %w", err)
	}
	var docs []addressDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode top addresses: %w", err)
	}
	for _, doc := range docs {
		addresses = append(addresses, doc.model())
	}
	return addresses, nil
}
