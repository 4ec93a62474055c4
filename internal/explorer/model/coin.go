package model

type Coin string
type Network string

var (
	XPI Coin = "XPI"
	BTC Coin = "BTC"
	LTC Coin = "LTC"
	RVN Coin = "RVN"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)

const (
	// CoinbaseAddress is the pseudo-address credited with issuance on coinbase inputs.
	CoinbaseAddress = "coinbase"
	// OPReturnAddress marks burned outputs carrying a positive value.
	OPReturnAddress = "OP_RETURN"
)
