package indexer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/ledger"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/normalize"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/repository/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeChain is a node with a mutable main chain.
type fakeChain struct {
	hashes map[int64]chainhash.Hash
	blocks map[chainhash.Hash]*btcjson.GetBlockVerboseResult
	txs    map[string]*btcjson.TxRawResult
	tip    int64
	nonce  int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		hashes: make(map[int64]chainhash.Hash),
		blocks: make(map[chainhash.Hash]*btcjson.GetBlockVerboseResult),
		txs:    make(map[string]*btcjson.TxRawResult),
	}
}

// mine puts a block at height on the main chain, replacing any block there.
func (c *fakeChain) mine(height int64, txs ...*btcjson.TxRawResult) chainhash.Hash {
	c.nonce++
	hash := chainhash.DoubleHashH([]byte(fmt.Sprintf("block-%d-%d", height, c.nonce)))
	if old, ok := c.hashes[height]; ok {
		c.blocks[old].Confirmations = -1
	}
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.Txid)
		c.txs[tx.Txid] = tx
	}
	c.hashes[height] = hash
	c.blocks[hash] = &btcjson.GetBlockVerboseResult{
		Hash:       hash.String(),
		Height:     height,
		Time:       1_600_000_000 + height*60,
		Difficulty: 1.5,
		Size:       int32(250 * len(txs)),
		Tx:         ids,
	}
	if height > c.tip {
		c.tip = height
	}
	return hash
}

func (c *fakeChain) GetBlockCount(context.Context) (int64, error) {
	return c.tip, nil
}

func (c *fakeChain) GetBlockHash(_ context.Context, height int64) (*chainhash.Hash, error) {
	hash, ok := c.hashes[height]
	if !ok {
		return nil, &btcjson.RPCError{Code: btcjson.ErrRPCOutOfRange, Message: "Block height out of range"}
	}
	return &hash, nil
}

func (c *fakeChain) GetBlockVerbose(_ context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error) {
	block, ok := c.blocks[*hash]
	if !ok {
		return nil, &btcjson.RPCError{Code: btcjson.ErrRPCBlockNotFound, Message: "Block not found"}
	}
	res := *block
	if res.Confirmations != -1 {
		res.Confirmations = c.tip - res.Height + 1
	}
	return &res, nil
}

func (c *fakeChain) GetConnectionCount(context.Context) (int64, error) {
	return 8, nil
}

func (c *fakeChain) Fetch(_ context.Context, txid string) (*btcjson.TxRawResult, error) {
	tx, ok := c.txs[txid]
	if !ok {
		return nil, fmt.Errorf("no such transaction %s", txid)
	}
	return tx, nil
}

func payTo(n uint32, value float64, address string) btcjson.Vout {
	return btcjson.Vout{
		Value:        value,
		N:            n,
		ScriptPubKey: btcjson.ScriptPubKeyResult{Type: "pubkeyhash", Addresses: []string{address}},
	}
}

func coinbase(txid string, miner string, reward float64) *btcjson.TxRawResult {
	return &btcjson.TxRawResult{
		Txid: txid,
		Vin:  []btcjson.Vin{{Coinbase: "0401"}},
		Vout: []btcjson.Vout{
			{N: 0, ScriptPubKey: btcjson.ScriptPubKeyResult{Type: "nulldata", Asm: "OP_RETURN"}},
			payTo(1, reward, miner),
		},
	}
}

type harness struct {
	chain   *fakeChain
	store   *memory.Repository
	indexer *Indexer
}

func newHarness(t *testing.T, ctrl *gomock.Controller) *harness {
	t.Helper()
	chain := newFakeChain()
	store := memory.NewRepository(model.XPI, model.Mainnet)

	units, err := normalize.NewUnits(6)
	require.NoError(t, err)
	decoder, err := normalize.NewScriptDecoder(model.Mainnet)
	require.NoError(t, err)
	normalizer, err := normalize.NewNormalizer(units, decoder, chain)
	require.NoError(t, err)
	updater, err := ledger.NewUpdater(store, zap.NewNop())
	require.NoError(t, err)

	metrics := NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveHeight(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().ObserveRewind(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().SetLastHeight(gomock.Any()).AnyTimes()

	idx, err := NewIndexer(DefaultConfig(model.XPI, model.Mainnet), store, chain, chain, normalizer, updater, metrics, zap.NewNop())
	require.NoError(t, err)
	idx.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return &harness{chain: chain, store: store, indexer: idx}
}

func (h *harness) address(t *testing.T, address string) (model.Address, bool) {
	t.Helper()
	a, ok, err := h.store.Address(context.Background(), address)
	require.NoError(t, err)
	return a, ok
}

func (h *harness) last(t *testing.T) uint64 {
	t.Helper()
	stats, ok, err := h.store.ChainStats(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	return stats.Last
}
