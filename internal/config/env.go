package config

import (
	"wallet-registry/internal/apperr"
	"wallet-registry/internal/model"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// RPC endpoints default to public mainnet nodes; point them at private
// nodes for anything beyond casual use.
type Config struct {
	EthRPCURL     string `envconfig:"ETH_RPC_URL" default:"https://cloudflare-eth.com"`
	SolRPCURL     string `envconfig:"SOL_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	EthWalletFile string `envconfig:"ETH_WALLET_FILE" default:"eth_wallets.json"`
	SolWalletFile string `envconfig:"SOL_WALLET_FILE" default:"sol_wallets.json"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return apperr.Wrap(apperr.CodeConfiguration, "config.Init", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// RPCURL returns the configured RPC endpoint for a chain.
func RPCURL(chain model.Chain) string {
	if chain == model.ChainSol {
		return Get().SolRPCURL
	}
	return Get().EthRPCURL
}

// WalletFile returns the wallet file path for a chain.
func WalletFile(chain model.Chain) string {
	if chain == model.ChainSol {
		return Get().SolWalletFile
	}
	return Get().EthWalletFile
}
