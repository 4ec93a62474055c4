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

// ChainStats returns the indexing summary.
func (r *Repository) ChainStats(ctx context.Context) (stats model.ChainStats, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.observe("chain_stats", err, start)
	}()

	var doc statsDocument
	err = r.stats.FindOne(ctx, r.scope()).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.ChainStats{}, false, nil
	}
	if err != nil {
		return model.ChainStats{}, false, fmt.Errorf("find chain stats: %w", err)
	}
	return model.ChainStats{
		Coin:        r.coin,
		Count:       doc.Count,
		Last:        doc.Last,
		Supply:      doc.Supply,
		Burned:      doc.Burned,
		Connections: doc.Connections,
		UpdatedAt:   doc.UpdatedAt,
	}, true, nil
}

// SaveChainStats replaces the indexing summary.
func (r *Repository) SaveChainStats(ctx context.Context, stats model.ChainStats) (err error) {
	start := time.Now()
	defer func() {
		r.observe("save_chain_stats", err, start)
	}()

	doc := statsDocument{
		Coin:        string(r.coin),
		Network:     string(r.network),
		Count:       stats.Count,
		Last:        stats.Last,
		Supply:      stats.Supply,
		Burned:      stats.Burned,
		Connections: stats.Connections,
		UpdatedAt:   stats.UpdatedAt,
	}
	if _, err = r.stats.ReplaceOne(ctx, r.scope(), doc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("save chain stats: %w", err)
	}
	return nil
}

// SaveRichList replaces the rich list of kind.
func (r *Repository) SaveRichList(ctx context.Context, kind model.RichListKind, addresses []model.Address) (err error) {
	start := time.Now()
	defer func() {
		r.observe("save_rich_list", err, start)
	}()

	if kind != model.RichListReceived && kind != model.RichListBalance {
		return fmt.Errorf("unknown rich list kind %q", kind)
	}
	doc := richListDocument{
		Coin:      string(r.coin),
		Network:   string(r.network),
		Kind:      string(kind),
		Addresses: make([]addressDocument, 0, len(addresses)),
		UpdatedAt: r.now().UTC(),
	}
	for _, a := range addresses {
		doc.Addresses = append(doc.Addresses, newAddressDocument(a))
	}
	filter := r.scope(bson.E{Key: "kind", Value: string(kind)})
	if _, err = r.richLists.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("save %s rich list: %w", kind, err)
	}
	return nil
}

// RichList returns the stored rich list of kind.
func (r *Repository) RichList(ctx context.Context, kind model.RichListKind) (list model.RichList, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.observe("rich_list", err, start)
	}()

	var doc richListDocument
	err = r.richLists.FindOne(ctx, r.scope(bson.E{Key: "kind", Value: string(kind)})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.RichList{}, false, nil
	}
	if err != nil {
		return model.RichList{}, false, fmt.Errorf("find %s rich list: %w", kind, err)
	}
	list = model.RichList{Coin: r.coin, Kind: kind, UpdatedAt: doc.UpdatedAt}
	for _, a := range doc.Addresses {
		list.Addresses = append(list.Addresses, a.model())
	}
	return list, len(list.Addresses) > 0, nil
}

// Reset deletes every document of the coin and network.
func (r *Repository) Reset(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.observe("reset", err, start)
	}()

	for _, coll := range []*mongo.Collection{r.blocks, r.txes, r.addressTxs, r.addresses, r.stats, r.richLists} {
		if _, err = coll.DeleteMany(ctx, r.scope()); err != nil {
			return fmt.Errorf("reset %s: %w", coll.Name(), err)
		}
	}
	return nil
}
