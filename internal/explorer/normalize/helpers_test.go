package normalize

import (
	"testing"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/stretchr/testify/require"
)

func payTo(n uint32, value float64, address string) btcjson.Vout {
	return btcjson.Vout{
		Value: value,
		N:     n,
		ScriptPubKey: btcjson.ScriptPubKeyResult{
			Type:      "pubkeyhash",
			Addresses: []string{address},
		},
	}
}

func nullData(n uint32, value float64) btcjson.Vout {
	return btcjson.Vout{
		Value:        value,
		N:            n,
		ScriptPubKey: btcjson.ScriptPubKeyResult{Type: "nulldata", Asm: "OP_RETURN 6c6f747573"},
	}
}

func nonStandard(n uint32, value float64) btcjson.Vout {
	return btcjson.Vout{
		Value:        value,
		N:            n,
		ScriptPubKey: btcjson.ScriptPubKeyResult{Type: "nonstandard", Hex: "51"},
	}
}

func spend(txid string, vout uint32) btcjson.Vin {
	return btcjson.Vin{Txid: txid, Vout: vout}
}

func coinbaseVin() btcjson.Vin {
	return btcjson.Vin{Coinbase: "03a0860100"}
}

// six decimal places: 1 unit == 0.000001
func newTestNormalizer(t *testing.T, txs TxFetcher) *Normalizer {
	t.Helper()
	units, err := NewUnits(6)
	require.NoError(t, err)
	decoder, err := NewScriptDecoder(model.Mainnet)
	require.NoError(t, err)
	n, err := NewNormalizer(units, decoder, txs)
	require.NoError(t, err)
	return n
}
