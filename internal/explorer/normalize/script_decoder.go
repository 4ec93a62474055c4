package normalize

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// ScriptClass is the indexing treatment of an output script.
type ScriptClass int

const (
	// ScriptStandard outputs are owned by an address.
	ScriptStandard ScriptClass = iota
	// ScriptNonStandard outputs are skipped entirely.
	ScriptNonStandard
	// ScriptNullData outputs burn their value.
	ScriptNullData
)

const opReturn = 0x6a

// Classify maps the node's script type onto the indexing treatment. Without a
// type, the script itself decides: OP_RETURN scripts are null data, and
// scripts that cannot pay to an address are nonstandard.
func Classify(script btcjson.ScriptPubKeyResult) ScriptClass {
	switch strings.ToLower(script.Type) {
	case "nonstandard":
		return ScriptNonStandard
	case "nulldata":
		return ScriptNullData
	case "":
		return classifyUntyped(script)
	}
	return ScriptStandard
}

func classifyUntyped(script btcjson.ScriptPubKeyResult) ScriptClass {
	if strings.HasPrefix(script.Asm, "OP_RETURN") || strings.HasPrefix(script.Hex, fmt.Sprintf("%02x", opReturn)) {
		return ScriptNullData
	}
	if script.Address != "" || (len(script.Addresses) > 0 && script.Addresses[0] != "") {
		return ScriptStandard
	}
	raw, err := hex.DecodeString(script.Hex)
	if err != nil || len(raw) == 0 {
		return ScriptNonStandard
	}
	switch txscript.GetScriptClass(raw) {
	case txscript.NullDataTy:
		return ScriptNullData
	case txscript.NonStandardTy, txscript.WitnessUnknownTy:
		return ScriptNonStandard
	}
	return ScriptStandard
}

// scriptDecoder extracts human-readable addresses from ScriptPubKey results.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for extracting addresses using params of the provided network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

// Address returns the first address the script pays to. Multisig scripts
// resolve to their first key's address.
func (d *scriptDecoder) Address(script btcjson.ScriptPubKeyResult) (string, error) {
	if len(script.Addresses) > 0 && script.Addresses[0] != "" {
		return script.Addresses[0], nil
	}
	if script.Address != "" {
		return script.Address, nil
	}
	if script.Hex == "" {
		return "", ErrUnresolvableAddress
	}

	scriptBytes, err := hex.DecodeString(script.Hex)
	if err != nil {
		return "", fmt.Errorf("decode script hex: %w", err)
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, d.params)
	if err != nil {
		return "", fmt.Errorf("extract script addresses: %w", err)
	}
	if len(addrs) == 0 {
		return "", ErrUnresolvableAddress
	}
	return addrs[0].EncodeAddress(), nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
