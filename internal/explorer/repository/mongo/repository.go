// Package mongo stores the explorer ledger in MongoDB, one document per block,
// transaction, address, ledger entry, stats record and rich list.
//
// Address totals and ledger entries are updated with $inc upserts, so a delta
// touches two documents; the pending/applied transaction status is what lets
// an interrupted height be rolled back.
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
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	blocksCollection     = "blocks"
	txesCollection       = "txes"
	addressesCollection  = "addresses"
	addressTxsCollection = "addresstxes"
	statsCollection      = "coinstats"
	richListsCollection  = "richlists"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
}

// Repository is the MongoDB ledger store of one coin and network.
type Repository struct {
	client     *mongo.Client
	blocks     *mongo.Collection
	txes       *mongo.Collection
	addresses  *mongo.Collection
	addressTxs *mongo.Collection
	stats      *mongo.Collection
	richLists  *mongo.Collection
	metrics    Metrics
	coin       model.Coin
	network    model.Network
	now        func() time.Time
}

// NewRepository connects to uri, pings the primary and makes sure the
// collection indexes exist.
func NewRepository(ctx context.Context, uri, database string, coin model.Coin, network model.Network, metrics Metrics) (*Repository, error) {
	if uri == "" {
		return nil, errors.New("mongodb uri is required")
	}
	if database == "" {
		return nil, errors.New("mongodb database is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	r := &Repository{
		client:     client,
		blocks:     db.Collection(blocksCollection),
		txes:       db.Collection(txesCollection),
		addresses:  db.Collection(addressesCollection),
		addressTxs: db.Collection(addressTxsCollection),
		stats:      db.Collection(statsCollection),
		richLists:  db.Collection(richListsCollection),
		metrics:    metrics,
		coin:       coin,
		network:    network,
		now:        time.Now,
	}
	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return r, nil
}

// Close disconnects the client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		r.blocks: {
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "height", Value: 1}}, Options: unique},
		},
		r.txes: {
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "txid", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "blockindex", Value: 1}, {Key: "position", Value: 1}}},
		},
		r.addresses: {
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "a_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "balance", Value: -1}}},
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "received", Value: -1}}},
		},
		r.addressTxs: {
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "txid", Value: 1}, {Key: "a_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "a_id", Value: 1}, {Key: "blockindex", Value: -1}}},
		},
		r.stats: {
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}}, Options: unique},
		},
		r.richLists: {
			{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "network", Value: 1}, {Key: "kind", Value: 1}}, Options: unique},
		},
	}
	for coll, models := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll.Name(), err)
		}
	}
	return nil
}

func (r *Repository) scope(extra ...bson.E) bson.D {
	filter := bson.D{{Key: "coin", Value: string(r.coin)}, {Key: "network", Value: string(r.network)}}
	return append(filter, extra...)
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	r.metrics.Observe(operation, r.coin, r.network, err, started)
}
