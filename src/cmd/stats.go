package cmd

import (
	"fmt"

	"github.com/curated-contracts/registry/src/registry"
	"github.com/curated-contracts/registry/src/utils/model"
	"github.com/curated-contracts/registry/src/utils/tabular"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "contracts.csv", "input CSV file")
}

var statsInput string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about a contracts CSV file",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		contracts, err := tabular.ReadContracts(statsInput)
		if err != nil {
			return
		}

		stats := registry.CollectStats(contracts)

		fmt.Printf("Contract statistics for %s:\n", statsInput)
		fmt.Printf("  Total contracts: %d\n", stats.Total)
		fmt.Printf("  With symbols:    %d\n", stats.WithSymbol)
		fmt.Printf("  Proxies:         %d\n", stats.Proxies)
		fmt.Printf("  With protocol:   %d\n", stats.WithProtocol)

		if len(stats.ByProtocol) > 0 {
			fmt.Println("\nBy protocol:")
			for _, entry := range stats.ByProtocol {
				fmt.Printf("  %s: %d\n", entry.Protocol, entry.Count)
			}
		}

		fmt.Println("\nBy chain:")
		for _, entry := range stats.ByChain {
			fmt.Printf("  %s (%d): %d\n", model.ChainName(entry.ChainID), entry.ChainID, entry.Count)
		}
		return
	},
}
