package cmd

import (
	"errors"
)

// Flags override whatever config and environment provided.
// Every setup problem found here aborts before fetching begins.

func applyApiKey(apiKey string) (err error) {
	if apiKey != "" {
		conf.Etherscan.ApiKey = apiKey
	}
	if conf.Etherscan.ApiKey == "" {
		return errors.New("etherscan api key must be provided via --api-key or the ETHERSCAN_API_KEY environment variable")
	}
	return
}

func applyDatabaseUrl(databaseUrl string) {
	if databaseUrl != "" {
		conf.Database.Url = databaseUrl
	}
}

func applyBatchSize(batchSize int) {
	if batchSize > 0 {
		conf.Importer.BatchSize = batchSize
	}
}
