package normalize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/jellydator/ttlcache/v3"
)

// PrevTxCache fetches transactions from the node and keeps recent ones so
// spends of fresh outputs do not hit the node twice.
type PrevTxCache struct {
	client NodeClient
	cache  *ttlcache.Cache[string, *btcjson.TxRawResult]
}

// NewPrevTxCache builds a cache holding at most capacity transactions for ttl.
func NewPrevTxCache(client NodeClient, capacity uint64, ttl time.Duration) (*PrevTxCache, error) {
	if client == nil {
		return nil, errors.New("node client is required")
	}
	opts := []ttlcache.Option[string, *btcjson.TxRawResult]{
		ttlcache.WithTTL[string, *btcjson.TxRawResult](ttl),
		ttlcache.WithDisableTouchOnHit[string, *btcjson.TxRawResult](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, *btcjson.TxRawResult](capacity))
	}
	return &PrevTxCache{
		client: client,
		cache:  ttlcache.New[string, *btcjson.TxRawResult](opts...),
	}, nil
}

// Fetch returns the transaction from cache or from the node.
func (c *PrevTxCache) Fetch(ctx context.Context, txid string) (*btcjson.TxRawResult, error) {
	if item := c.cache.Get(txid); item != nil {
		return item.Value(), nil
	}
	tx, err := c.client.GetRawTransactionVerbose(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("get raw transaction %s: %w", txid, err)
	}
	if tx == nil {
		return nil, fmt.Errorf("get raw transaction %s: empty result", txid)
	}
	c.cache.Set(txid, tx, ttlcache.DefaultTTL)
	return tx, nil
}
