package indexer

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

const (
	defaultWorkers          = 4
	defaultFeeBurnPercent   = 50
	defaultMinerOutputIndex = 1
	defaultRichListSize     = 100
)

// Config holds the per-coin indexing settings.
type Config struct {
	Coin    model.Coin
	Network model.Network
	// Workers bounds parallel transaction fetch and normalization inside one block.
	Workers int
	// FeeBurnPercent of every block's fees is counted as burned.
	FeeBurnPercent int64
	// MinerOutputIndex is the coinbase output paying the block reward.
	MinerOutputIndex int
	RichListSize     int
}

// DefaultConfig returns the settings the explorer ships with.
func DefaultConfig(coin model.Coin, network model.Network) Config {
	return Config{
		Coin:             coin,
		Network:          network,
		Workers:          defaultWorkers,
		FeeBurnPercent:   defaultFeeBurnPercent,
		MinerOutputIndex: defaultMinerOutputIndex,
		RichListSize:     defaultRichListSize,
	}
}

func (c Config) validate() error {
	if c.Coin == "" {
		return errors.New("coin is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.FeeBurnPercent < 0 || c.FeeBurnPercent > 100 {
		return fmt.Errorf("fee burn percent out of range: %d", c.FeeBurnPercent)
	}
	if c.MinerOutputIndex < 0 {
		return fmt.Errorf("miner output index must not be negative, got %d", c.MinerOutputIndex)
	}
	if c.RichListSize < 0 {
		return fmt.Errorf("rich list size must not be negative, got %d", c.RichListSize)
	}
	return nil
}

// feeBurn returns pct percent of fees, rounded half up.
func (c Config) feeBurn(fees int64) int64 {
	return (fees*c.FeeBurnPercent + 50) / 100
}
