package cmd

import (
	"github.com/curated-contracts/registry/src/registry"
	"github.com/curated-contracts/registry/src/utils/etherscan"
	"github.com/curated-contracts/registry/src/utils/logger"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchInput, "input", "i", "curated-addresses.txt", "input file with curated addresses")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "contracts.csv", "output CSV file")
	fetchCmd.Flags().StringVarP(&fetchApiKey, "api-key", "k", "", "Etherscan API key (or set ETHERSCAN_API_KEY)")
}

var (
	fetchInput  string
	fetchOutput string
	fetchApiKey string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch contracts from Etherscan and save them to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = applyApiKey(fetchApiKey)
		if err != nil {
			return
		}

		pipeline := registry.NewPipeline(conf).
			WithSource(registry.NewSource()).
			WithFetcher(etherscan.NewClient(conf))

		addresses, err := pipeline.ReadAddresses(fetchInput)
		if err != nil {
			return
		}

		summary, err := pipeline.FetchToFile(applicationCtx, addresses, fetchOutput)
		if err != nil {
			return
		}

		logger.NewSublogger("fetch-cmd").
			WithField("succeeded", summary.Succeeded).
			WithField("failed", summary.Failed).
			WithField("output", fetchOutput).
			Info("Saved contracts to CSV")
		return
	},
}
