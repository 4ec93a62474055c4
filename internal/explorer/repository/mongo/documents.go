package mongo

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

type blockDocument struct {
	Coin            string    `bson:"coin"`
	Network         string    `bson:"network"`
	Height          uint64    `bson:"height"`
	Hash            string    `bson:"blockhash"`
	MinedBy         string    `bson:"minedby"`
	Difficulty      float64   `bson:"difficulty"`
	Size            uint32    `bson:"size"`
	Timestamp       time.Time `bson:"timestamp"`
	LocaleTimestamp string    `bson:"localeTimestamp"`
	TxCount         uint32    `bson:"txCount"`
	Fees            int64     `bson:"fees"`
	Burned          int64     `bson:"burned"`
}

type inputDocument struct {
	Address   string `bson:"addresses"`
	Amount    int64  `bson:"amount"`
	NumInputs uint32 `bson:"num_inputs"`
}

type outputDocument struct {
	Address string `bson:"addresses"`
	Amount  int64  `bson:"amount"`
}

type txDocument struct {
	Coin      string           `bson:"coin"`
	Network   string           `bson:"network"`
	TxID      string           `bson:"txid"`
	BlockHash string           `bson:"blockhash"`
	Height    uint64           `bson:"blockindex"`
	Position  uint32           `bson:"position"`
	Timestamp time.Time        `bson:"timestamp"`
	Size      uint32           `bson:"size"`
	Fee       int64            `bson:"fee"`
	Total     int64            `bson:"total"`
	Burned    int64            `bson:"burned"`
	Vin       []inputDocument  `bson:"vin"`
	Vout      []outputDocument `bson:"vout"`
	Status    string           `bson:"status"`
}

type addressDocument struct {
	Address  string `bson:"a_id"`
	Sent     int64  `bson:"sent"`
	Received int64  `bson:"received"`
	Balance  int64  `bson:"balance"`
}

type addressTxDocument struct {
	Address string `bson:"a_id"`
	TxID    string `bson:"txid"`
	Height  uint64 `bson:"blockindex"`
	Amount  int64  `bson:"amount"`
}

type statsDocument struct {
	Coin        string    `bson:"coin"`
	Network     string    `bson:"network"`
	Count       int64     `bson:"count"`
	Last        uint64    `bson:"last"`
	Supply      int64     `bson:"supply"`
	Burned      int64     `bson:"burned"`
	Connections int64     `bson:"connections"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type richListDocument struct {
	Coin      string            `bson:"coin"`
	Network   string            `bson:"network"`
	Kind      string            `bson:"kind"`
	Addresses []addressDocument `bson:"addresses"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

func (r *Repository) newBlockDocument(b model.Block) blockDocument {
	return blockDocument{
		Coin:            string(r.coin),
		Network:         string(r.network),
		Height:          b.Height,
		Hash:            b.Hash,
		MinedBy:         b.MinedBy,
		Difficulty:      b.Difficulty,
		Size:            b.Size,
		Timestamp:       b.Timestamp,
		LocaleTimestamp: b.LocaleTimestamp,
		TxCount:         b.TxCount,
		Fees:            b.Fees,
		Burned:          b.Burned,
	}
}

func (d blockDocument) model() model.Block {
	return model.Block{
		Height:          d.Height,
		Hash:            d.Hash,
		MinedBy:         d.MinedBy,
		Difficulty:      d.Difficulty,
		Size:            d.Size,
		Timestamp:       d.Timestamp,
		LocaleTimestamp: d.LocaleTimestamp,
		TxCount:         d.TxCount,
		Fees:            d.Fees,
		Burned:          d.Burned,
	}
}

func (r *Repository) newTxDocument(tx model.Transaction) txDocument {
	doc := txDocument{
		Coin:      string(r.coin),
		Network:   string(r.network),
		TxID:      tx.TxID,
		BlockHash: tx.BlockHash,
		Height:    tx.BlockHeight,
		Position:  tx.Position,
		Timestamp: tx.Timestamp,
		Size:      tx.Size,
		Fee:       tx.Fee,
		Total:     tx.Total,
		Burned:    tx.Burned,
		Vin:       make([]inputDocument, 0, len(tx.Inputs)),
		Vout:      make([]outputDocument, 0, len(tx.Outputs)),
		Status:    string(tx.Status),
	}
	for _, in := range tx.Inputs {
		doc.Vin = append(doc.Vin, inputDocument{Address: in.Address, Amount: in.Amount, NumInputs: in.NumInputs})
	}
	for _, out := range tx.Outputs {
		doc.Vout = append(doc.Vout, outputDocument{Address: out.Address, Amount: out.Amount})
	}
	return doc
}

func (d txDocument) model() model.Transaction {
	tx := model.Transaction{
		TxID:        d.TxID,
		BlockHash:   d.BlockHash,
		BlockHeight: d.Height,
		Position:    d.Position,
		Timestamp:   d.Timestamp,
		Size:        d.Size,
		Fee:         d.Fee,
		Total:       d.Total,
		Burned:      d.Burned,
		Status:      model.TxStatus(d.Status),
	}
	for _, in := range d.Vin {
		tx.Inputs = append(tx.Inputs, model.AggregatedInput{Address: in.Address, Amount: in.Amount, NumInputs: in.NumInputs})
	}
	for _, out := range d.Vout {
		tx.Outputs = append(tx.Outputs, model.AggregatedOutput{Address: out.Address, Amount: out.Amount})
	}
	return tx
}

func (d addressDocument) model() model.Address {
	return model.Address{Address: d.Address, Sent: d.Sent, Received: d.Received, Balance: d.Balance}
}

func newAddressDocument(a model.Address) addressDocument {
	return addressDocument{Address: a.Address, Sent: a.Sent, Received: a.Received, Balance: a.Balance}
}
