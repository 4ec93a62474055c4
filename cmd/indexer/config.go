package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/indexer"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/syncer"
	"github.com/joho/godotenv"
)

const envFileVar = "EXPLORER_ENV_FILE"

type config struct {
	Mode    string        `long:"mode" env:"EXPLORER_MODE" description:"update, reindex, reindex-rich or follow" default:"update"`
	Coin    model.Coin    `long:"coin" env:"EXPLORER_COIN" description:"coin name" required:"true"`
	Network model.Network `long:"network" env:"EXPLORER_NETWORK" description:"network name" required:"true"`

	Store         string `long:"store" env:"EXPLORER_STORE" description:"ledger store backend: clickhouse, mongo or memory" default:"clickhouse"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"EXPLORER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	MongoURI      string `long:"mongo-uri" env:"EXPLORER_MONGO_URI" description:"MongoDB connection URI"`
	MongoDatabase string `long:"mongo-database" env:"EXPLORER_MONGO_DATABASE" description:"MongoDB database" default:"explorerdb"`

	RPCURL      string `long:"rpc-url" env:"EXPLORER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string `long:"rpc-user" env:"EXPLORER_RPC_USER" description:"node RPC username"`
	RPCPassword string `long:"rpc-password" env:"EXPLORER_RPC_PASSWORD" description:"node RPC password"`
	RPCRate     int    `long:"rpc-rate" env:"EXPLORER_RPC_RATE" description:"max node RPC requests per second, 0 for unlimited" default:"0"`
	ZMQAddr     string `long:"zmq-addr" env:"EXPLORER_ZMQ_ADDR" description:"node ZMQ endpoint publishing hashblock (follow mode)"`

	Decimals         int32  `long:"decimals" env:"EXPLORER_DECIMALS" description:"decimal places of the coin unit" default:"6"`
	Workers          int    `long:"workers" env:"EXPLORER_WORKERS" description:"parallel transaction normalization per block" default:"4"`
	FeeBurnPercent   int64  `long:"fee-burn-percent" env:"EXPLORER_FEE_BURN_PERCENT" description:"percent of block fees counted as burned" default:"50"`
	MinerOutputIndex int    `long:"miner-output-index" env:"EXPLORER_MINER_OUTPUT_INDEX" description:"coinbase output paying the miner" default:"1"`
	RichListSize     int    `long:"rich-list-size" env:"EXPLORER_RICH_LIST_SIZE" description:"addresses kept per rich list" default:"100"`
	StartHeight      uint64 `long:"start-height" env:"EXPLORER_START_HEIGHT" description:"first height indexed on an empty index" default:"1"`

	PrevTxCacheSize uint64        `long:"prev-tx-cache-size" env:"EXPLORER_PREV_TX_CACHE_SIZE" description:"raw transactions kept for input resolution" default:"50000"`
	PrevTxCacheTTL  time.Duration `long:"prev-tx-cache-ttl" env:"EXPLORER_PREV_TX_CACHE_TTL" description:"lifetime of cached raw transactions" default:"10m"`

	LockFile     string        `long:"lock-file" env:"EXPLORER_LOCK_FILE" description:"lock file guarding indexing runs" default:"tmp/index.pid"`
	NoLock       bool          `long:"no-lock" env:"EXPLORER_NO_LOCK" description:"run without the lock file"`
	PollInterval time.Duration `long:"poll-interval" env:"EXPLORER_POLL_INTERVAL" description:"follow mode interval between update passes" default:"30s"`
	MaxBackoff   time.Duration `long:"max-backoff" env:"EXPLORER_MAX_BACKOFF" description:"follow mode upper bound of the retry delay" default:"5m"`

	MetricsAddr string `long:"metrics-addr" env:"EXPLORER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogJSON     bool   `long:"log-json" env:"EXPLORER_LOG_JSON" description:"log in JSON with the production encoder"`
}

func (c config) indexerConfig() indexer.Config {
	cfg := indexer.DefaultConfig(c.Coin, c.Network)
	cfg.Workers = c.Workers
	cfg.FeeBurnPercent = c.FeeBurnPercent
	cfg.MinerOutputIndex = c.MinerOutputIndex
	cfg.RichListSize = c.RichListSize
	return cfg
}

func (c config) syncerConfig() syncer.Config {
	return syncer.Config{
		StartHeight:  c.StartHeight,
		PollInterval: c.PollInterval,
		MaxBackoff:   c.MaxBackoff,
	}
}

// loadEnvFile exports the variables of the env file named by EXPLORER_ENV_FILE,
// or ./.env, without overriding the process environment. A missing file is
// not an error.
func loadEnvFile() error {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
