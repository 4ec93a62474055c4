package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

const transactionColumns = `txid,
	block_hash,
	block_height,
	position,
	timestamp,
	size,
	fee,
	total,
	burned,
	input_addresses,
	input_amounts,
	input_counts,
	output_addresses,
	output_amounts,
	status`

// SaveTransaction inserts tx; a later save of the same txid replaces it.
func (r *Repository) SaveTransaction(ctx context.Context, tx model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_transaction", r.coin, r.network, err, start)
	}()

	const query = `
INSERT INTO explorer_transactions (
	coin,
	network,
	` + transactionColumns + `,
	version
) VALUES`

	inAddresses, inAmounts, inCounts := splitInputs(tx.Inputs)
	outAddresses, outAmounts := splitOutputs(tx.Outputs)

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction batch: %w", err)
	}
	if err = batch.Append(
		string(r.coin),
		string(r.network),
		tx.TxID,
		tx.BlockHash,
		tx.BlockHeight,
		tx.Position,
		tx.Timestamp,
		tx.Size,
		tx.Fee,
		tx.Total,
		tx.Burned,
		inAddresses,
		inAmounts,
		inCounts,
		outAddresses,
		outAmounts,
		string(tx.Status),
		r.version(),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append transaction: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes the transaction.
func (r *Repository) DeleteTransaction(ctx context.Context, txid string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_transaction", r.coin, r.network, err, start)
	}()

	const query = `DELETE FROM explorer_transactions WHERE coin = ? AND network = ? AND txid = ?`
	if err = r.conn.Exec(ctx, query, r.coin, r.network, txid); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// TransactionsByHeight returns the transactions stored at height in block order.
func (r *Repository) TransactionsByHeight(ctx context.Context, height uint64) (txs []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_height", r.coin, r.network, err, start)
	}()

	const query = `
SELECT ` + transactionColumns + `
FROM explorer_transactions FINAL
WHERE coin = ? AND network = ? AND block_height = ?
ORDER BY position`

	return r.queryTransactions(ctx, query, height)
}

// Transaction returns one stored transaction.
func (r *Repository) Transaction(ctx context.Context, txid string) (tx model.Transaction, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction", r.coin, r.network, err, start)
	}()

	const query = `
SELECT ` + transactionColumns + `
FROM explorer_transactions FINAL
WHERE coin = ? AND network = ? AND txid = ?
LIMIT 1`

	txs, err := r.queryTransactions(ctx, query, txid)
	if err != nil || len(txs) == 0 {
		return model.Transaction{}, false, err
	}
	return txs[0], true, nil
}

func (r *Repository) queryTransactions(ctx context.Context, query string, arg any) (txs []model.Transaction, err error) {
	rows, err := r.conn.Query(ctx, query, r.coin, r.network, arg)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			tx           model.Transaction
			status       string
			inAddresses  []string
			inAmounts    []int64
			inCounts     []uint32
			outAddresses []string
			outAmounts   []int64
		)
		if err = rows.Scan(
			&tx.TxID,
			&tx.BlockHash,
			&tx.BlockHeight,
			&tx.Position,
			&tx.Timestamp,
			&tx.Size,
			&tx.Fee,
			&tx.Total,
			&tx.Burned,
			&inAddresses,
			&inAmounts,
			&inCounts,
			&outAddresses,
			&outAmounts,
			&status,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if tx.Inputs, err = joinInputs(inAddresses, inAmounts, inCounts); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}
		if tx.Outputs, err = joinOutputs(outAddresses, outAmounts); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}
		tx.Status = model.TxStatus(status)
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func splitInputs(inputs []model.AggregatedInput) ([]string, []int64, []uint32) {
	addresses := make([]string, len(inputs))
	amounts := make([]int64, len(inputs))
	counts := make([]uint32, len(inputs))
	for i, in := range inputs {
		addresses[i] = in.Address
		amounts[i] = in.Amount
		counts[i] = in.NumInputs
	}
	return addresses, amounts, counts
}

func splitOutputs(outputs []model.AggregatedOutput) ([]string, []int64) {
	addresses := make([]string, len(outputs))
	amounts := make([]int64, len(outputs))
	for i, out := range outputs {
		addresses[i] = out.Address
		amounts[i] = out.Amount
	}
	return addresses, amounts
}

func joinInputs(addresses []string, amounts []int64, counts []uint32) ([]model.AggregatedInput, error) {
	if len(addresses) != len(amounts) || len(addresses) != len(counts) {
		return nil, fmt.Errorf("input columns differ in length: %d/%d/%d", len(addresses), len(amounts), len(counts))
	}
	if len(addresses) == 0 {
		return nil, nil
	}
	inputs := make([]model.AggregatedInput, len(addresses))
	for i := range addresses {
		inputs[i] = model.AggregatedInput{Address: addresses[i], Amount: amounts[i], NumInputs: counts[i]}
	}
	return inputs, nil
}

func joinOutputs(addresses []string, amounts []int64) ([]model.AggregatedOutput, error) {
	if len(addresses) != len(amounts) {
		return nil, fmt.Errorf("output columns differ in length: %d/%d", len(addresses), len(amounts))
	}
	if len(addresses) == 0 {
		return nil, nil
	}
	outputs := make([]model.AggregatedOutput, len(addresses))
	for i := range addresses {
		outputs[i] = model.AggregatedOutput{Address: addresses[i], Amount: amounts[i]}
	}
	return outputs, nil
}
