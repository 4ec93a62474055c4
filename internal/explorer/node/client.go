// Package node wraps the coin node JSON-RPC interface.
package node

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

// Client wraps btcd rpcclient with metrics instrumentation and request throttling.
type Client struct {
	client     RPCClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
	throttled  bool
}

// NewClient constructs an instrumented RPC client. A non-positive
// requestsPerSecond disables throttling.
func NewClient(client RPCClient, rpcMetrics RPCMetrics, requestsPerSecond int) (*Client, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	limiter := ratelimit.NewUnlimited()
	if requestsPerSecond > 0 {
		limiter = ratelimit.New(requestsPerSecond)
	}
	return &Client{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
		throttled:  requestsPerSecond > 0,
	}, nil
}

func (c *Client) begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.throttled {
		return nil
	}
	requested := time.Now()
	c.rpcMetrics.ObserveThrottle(c.limiter.Take().Sub(requested))
	return nil
}

// GetBlockCount returns the height of the node's best chain.
func (c *Client) GetBlockCount(ctx context.Context) (count int64, err error) {
	if err = c.begin(ctx); err != nil {
		return 0, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return c.client.GetBlockCount()
}

// GetBlockHash returns the main-chain block hash at a height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (hash *chainhash.Hash, err error) {
	if err = c.begin(ctx); err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return c.client.GetBlockHash(height)
}

// GetBlockVerbose returns block info with transaction ids and confirmations.
func (c *Client) GetBlockVerbose(ctx context.Context, hash *chainhash.Hash) (res *btcjson.GetBlockVerboseResult, err error) {
	if err = c.begin(ctx); err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_verbose", err, started)
	}()
	return c.client.GetBlockVerbose(hash)
}

// GetRawTransactionVerbose returns the decoded transaction for txid.
func (c *Client) GetRawTransactionVerbose(ctx context.Context, txid string) (res *btcjson.TxRawResult, err error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}
	if err = c.begin(ctx); err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()
	return c.client.GetRawTransactionVerbose(hash)
}

// GetRawMempool returns the txids currently in the node mempool.
func (c *Client) GetRawMempool(ctx context.Context) (txids []*chainhash.Hash, err error) {
	if err = c.begin(ctx); err != nil {
		return nil, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_raw_mempool", err, started)
	}()
	return c.client.GetRawMempool()
}

// GetConnectionCount returns the number of peers connected to the node.
func (c *Client) GetConnectionCount(ctx context.Context) (count int64, err error) {
	if err = c.begin(ctx); err != nil {
		return 0, err
	}
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_connection_count", err, started)
	}()
	return c.client.GetConnectionCount()
}

// IsNotFound reports whether err is the node's "block or transaction not found" RPC error.
func IsNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCBlockNotFound
}
