// Package memory keeps the ledger store in process memory. It backs dry runs
// and tests and resets on restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// Repository is an in-memory ledger store for one coin and network.
type Repository struct {
	coin    model.Coin
	network model.Network
	now     func() time.Time

	mu        sync.RWMutex
	blocks    map[uint64]model.Block
	txs       map[string]model.Transaction
	addresses map[string]model.Address
	entries   map[string]map[string]model.AddressTx
	stats     *model.ChainStats
	richLists map[model.RichListKind]model.RichList
}

// NewRepository returns an empty store.
func NewRepository(coin model.Coin, network model.Network) *Repository {
	r := &Repository{coin: coin, network: network, now: time.Now}
	r.clear()
	return r
}

func (r *Repository) clear() {
	r.blocks = make(map[uint64]model.Block)
	r.txs = make(map[string]model.Transaction)
	r.addresses = make(map[string]model.Address)
	r.entries = make(map[string]map[string]model.AddressTx)
	r.stats = nil
	r.richLists = make(map[model.RichListKind]model.RichList)
}

// Block returns the block stored at height.
func (r *Repository) Block(_ context.Context, height uint64) (model.Block, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blocks[height]
	return b, ok, nil
}

// SaveBlock inserts or replaces the block at its height.
func (r *Repository) SaveBlock(_ context.Context, block model.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks[block.Height] = block
	return nil
}

// DeleteBlock removes the block at height.
func (r *Repository) DeleteBlock(_ context.Context, height uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blocks, height)
	return nil
}

// BurnedSupply sums the burned value of all stored blocks.
func (r *Repository) BurnedSupply(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for _, b := range r.blocks {
		sum += b.Burned
	}
	return sum, nil
}

// SaveTransaction inserts or replaces tx by txid.
func (r *Repository) SaveTransaction(_ context.Context, tx model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.Inputs = append([]model.AggregatedInput(nil), tx.Inputs...)
	tx.Outputs = append([]model.AggregatedOutput(nil), tx.Outputs...)
	r.txs[tx.TxID] = tx
	return nil
}

// Transaction returns the stored transaction.
func (r *Repository) Transaction(_ context.Context, txid string) (model.Transaction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.txs[txid]
	return tx, ok, nil
}

// DeleteTransaction removes the transaction.
func (r *Repository) DeleteTransaction(_ context.Context, txid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.txs, txid)
	return nil
}

// TransactionsByHeight returns the transactions of a height ordered by block position.
func (r *Repository) TransactionsByHeight(_ context.Context, height uint64) ([]model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var txs []model.Transaction
	for _, tx := range r.txs {
		if tx.BlockHeight == height {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Position < txs[j].Position })
	return txs, nil
}

// ApplyAddressDelta adds delta to the address and to its ledger entry for delta.TxID.
func (r *Repository) ApplyAddressDelta(_ context.Context, delta model.AddressDelta) (model.Address, error) {
	if delta.TxID == "" {
		return model.Address{}, fmt.Errorf("apply delta %s: empty txid", delta.Address)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byAddress, ok := r.entries[delta.TxID]
	if !ok {
		byAddress = make(map[string]model.AddressTx)
		r.entries[delta.TxID] = byAddress
	}
	entry, ok := byAddress[delta.Address]
	if !ok {
		entry = model.AddressTx{Address: delta.Address, TxID: delta.TxID, BlockHeight: delta.BlockHeight}
	}
	entry.Amount += delta.Balance
	byAddress[delta.Address] = entry
	return r.increment(delta), nil
}

// IncrementAddress adds delta to the address totals without a ledger entry.
func (r *Repository) IncrementAddress(_ context.Context, delta model.AddressDelta) (model.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.increment(delta), nil
}

func (r *Repository) increment(delta model.AddressDelta) model.Address {
	a := r.addresses[delta.Address]
	a.Address = delta.Address
	a.Sent += delta.Sent
	a.Received += delta.Received
	a.Balance += delta.Balance
	r.addresses[delta.Address] = a
	return a
}

// Address returns the totals of one address.
func (r *Repository) Address(_ context.Context, address string) (model.Address, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.addresses[address]
	return a, ok, nil
}

// DeleteAddress removes the address totals.
func (r *Repository) DeleteAddress(_ context.Context, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.addresses, address)
	return nil
}

// AddressTxsByTxID returns the ledger entries of a transaction ordered by address.
func (r *Repository) AddressTxsByTxID(_ context.Context, txid string) ([]model.AddressTx, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]model.AddressTx, 0, len(r.entries[txid]))
	for _, e := range r.entries[txid] {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Address < entries[j].Address })
	return entries, nil
}

// DeleteAddressTxs removes every ledger entry of a transaction.
func (r *Repository) DeleteAddressTxs(_ context.Context, txid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, txid)
	return nil
}

// BalanceSupply sums the positive balances, leaving out the coinbase pseudo-address.
func (r *Repository) BalanceSupply(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for _, a := range r.addresses {
		if a.Address != model.CoinbaseAddress && a.Balance > 0 {
			sum += a.Balance
		}
	}
	return sum, nil
}

// TopAddresses ranks addresses by the counter kind selects.
func (r *Repository) TopAddresses(_ context.Context, kind model.RichListKind, limit int) ([]model.Address, error) {
	counter, err := richListCounter(kind)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	addresses := make([]model.Address, 0, len(r.addresses))
	for _, a := range r.addresses {
		if a.Address == model.CoinbaseAddress {
			continue
		}
		addresses = append(addresses, a)
	}
	sort.Slice(addresses, func(i, j int) bool {
		ci, cj := counter(addresses[i]), counter(addresses[j])
		if ci != cj {
			return ci > cj
		}
		return addresses[i].Address < addresses[j].Address
	})
	if limit >= 0 && len(addresses) > limit {
		addresses = addresses[:limit]
	}
	return addresses, nil
}

func richListCounter(kind model.RichListKind) (func(model.Address) int64, error) {
	switch kind {
	case model.RichListReceived:
		return func(a model.Address) int64 { return a.Received }, nil
	case model.RichListBalance:
		return func(a model.Address) int64 { return a.Balance }, nil
	default:
		return nil, fmt.Errorf("unknown rich list kind %q", kind)
	}
}

// SaveRichList replaces the rich list of kind.
func (r *Repository) SaveRichList(_ context.Context, kind model.RichListKind, addresses []model.Address) error {
	if _, err := richListCounter(kind); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.richLists[kind] = model.RichList{
		Coin:      r.coin,
		Kind:      kind,
		Addresses: append([]model.Address(nil), addresses...),
		UpdatedAt: r.now().UTC(),
	}
	return nil
}

// RichList returns the stored rich list of kind.
func (r *Repository) RichList(_ context.Context, kind model.RichListKind) (model.RichList, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.richLists[kind]
	return list, ok, nil
}

// ChainStats returns the stored indexing summary.
func (r *Repository) ChainStats(_ context.Context) (model.ChainStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stats == nil {
		return model.ChainStats{}, false, nil
	}
	return *r.stats, true, nil
}

// SaveChainStats replaces the indexing summary.
func (r *Repository) SaveChainStats(_ context.Context, stats model.ChainStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = &stats
	return nil
}

// Reset drops everything stored for the coin.
func (r *Repository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear()
	return nil
}
