// Package config loads the node's static configuration. The mempool
// itself never touches this package directly (spec section 1 treats
// "configuration/CLI loading" as an out-of-scope external collaborator)
// — callers load a Config here and translate the relevant sections into
// a mempool.Config value at wiring time.
package config

import (
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var log = logger.WithField("process", "config")

// BroadcastsConfig mirrors the `broadcasts.*` section of spec section 6.
type BroadcastsConfig struct {
	BroadcastInterval time.Duration `mapstructure:"broadcastInterval"`
	ReleaseLimit      int           `mapstructure:"releaseLimit"`
}

// TransactionsConfig mirrors the `transactions.*` section of spec
// section 6.
type TransactionsConfig struct {
	MaxTxsPerQueue int `mapstructure:"maxTxsPerQueue"`
}

// ConstantsConfig mirrors the `constants.*` section of spec section 6.
type ConstantsConfig struct {
	MaxTxsPerBlock                int `mapstructure:"maxTxsPerBlock"`
	MaxSharedTxs                  int `mapstructure:"maxSharedTxs"`
	UnconfirmedTransactionTimeOut int `mapstructure:"unconfirmedTransactionTimeOut"`
}

// Config is the subset of node configuration the mempool's wiring code
// cares about, loaded the way the teacher's own `config.Get()` values
// are: a process-wide value populated once at startup and read
// thereafter.
type Config struct {
	Broadcasts   BroadcastsConfig   `mapstructure:"broadcasts"`
	Transactions TransactionsConfig `mapstructure:"transactions"`
	Constants    ConstantsConfig    `mapstructure:"constants"`
}

var (
	once sync.Once
	cfg  *Config
)

// defaults matches the reference node's stock values; callers running a
// test harness or a different network profile call Load with their own
// path instead.
func defaults() *Config {
	return &Config{
		Broadcasts: BroadcastsConfig{
			BroadcastInterval: 5 * time.Second,
			ReleaseLimit:      100,
		},
		Transactions: TransactionsConfig{
			MaxTxsPerQueue: 20000,
		},
		Constants: ConstantsConfig{
			MaxTxsPerBlock:                25,
			MaxSharedTxs:                  100,
			UnconfirmedTransactionTimeOut: 10800,
		},
	}
}

// Load reads configuration from path (TOML/YAML/JSON, auto-detected by
// viper's extension sniffing) and merges it over the stock defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	c := defaults()
	if err := v.ReadInConfig(); err != nil {
		log.WithError(err).Warn("no config file found, using defaults")
		return c, nil
	}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the process-wide configuration, loading stock defaults on
// first use if Set was never called. Mirrors the teacher's
// `config.Get()` singleton accessor pattern.
func Get() *Config {
	once.Do(func() {
		if cfg == nil {
			cfg = defaults()
		}
	})
	return cfg
}

// Set installs c as the process-wide configuration; used by node
// startup after a successful Load.
func Set(c *Config) {
	cfg = c
}
