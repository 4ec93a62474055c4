package normalize

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TxFetcher returns decoded transactions by txid.
	TxFetcher interface {
		Fetch(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
	}
	// NodeClient is the node call the previous transaction cache falls back to.
	NodeClient interface {
		GetRawTransactionVerbose(ctx context.Context, txid string) (*btcjson.TxRawResult, error)
	}
	// ScriptDecoder resolves the owning address of an output script.
	ScriptDecoder interface {
		Address(script btcjson.ScriptPubKeyResult) (string, error)
	}
)
