package config

import (
	"time"

	"github.com/spf13/viper"
)

type Etherscan struct {
	// API key attached to every request
	ApiKey string

	// Base url of the Etherscan v2 API
	Url string

	// Minimum time between consecutive requests.
	// Free tier allows 5 req/s, 250ms keeps us safely below.
	RequestDelay time.Duration

	// Max time for a single request
	RequestTimeout time.Duration
}

func setEtherscanDefaults() {
	viper.SetDefault("Etherscan.ApiKey", "")
	viper.SetDefault("Etherscan.Url", "https://api.etherscan.io/v2/api")
	viper.SetDefault("Etherscan.RequestDelay", "250ms")
	viper.SetDefault("Etherscan.RequestTimeout", "30s")
}
