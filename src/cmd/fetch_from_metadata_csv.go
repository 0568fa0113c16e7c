package cmd

import (
	"github.com/curated-contracts/registry/src/registry"
	"github.com/curated-contracts/registry/src/utils/etherscan"
	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(fetchFromMetadataCsvCmd)

	fetchFromMetadataCsvCmd.Flags().StringVarP(&fetchMetadataInput, "input", "i", "contracts-metadata.csv", "input metadata CSV file")
	fetchFromMetadataCsvCmd.Flags().StringVarP(&fetchMetadataApiKey, "api-key", "k", "", "Etherscan API key (or set ETHERSCAN_API_KEY)")
	fetchFromMetadataCsvCmd.Flags().StringVarP(&fetchMetadataDatabaseUrl, "database-url", "d", "", "database url (or set DATABASE_URL)")
	fetchFromMetadataCsvCmd.Flags().IntVarP(&fetchMetadataBatchSize, "batch-size", "b", 0, "records per database flush (default 50)")
}

var (
	fetchMetadataInput       string
	fetchMetadataApiKey      string
	fetchMetadataDatabaseUrl string
	fetchMetadataBatchSize   int
)

var fetchFromMetadataCsvCmd = &cobra.Command{
	Use:   "fetch-from-metadata-csv",
	Short: "Refetch source and ABI from Etherscan for addresses listed in a metadata CSV",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = applyApiKey(fetchMetadataApiKey)
		if err != nil {
			return
		}
		applyDatabaseUrl(fetchMetadataDatabaseUrl)
		applyBatchSize(fetchMetadataBatchSize)

		db, err := model.NewConnection(applicationCtx, conf, "fetch-from-metadata-csv")
		if err != nil {
			return
		}
		sqlDb, err := db.DB()
		if err != nil {
			return
		}
		defer sqlDb.Close()

		importer := registry.NewImporter(conf).
			WithStore(registry.NewStore(db))

		pipeline := registry.NewPipeline(conf).
			WithFetcher(etherscan.NewClient(conf))

		addresses, err := pipeline.ReadMetadataAddresses(fetchMetadataInput)
		if err != nil {
			return
		}

		summary := pipeline.FetchToStore(applicationCtx, addresses, importer)

		logger.NewSublogger("fetch-from-metadata-csv-cmd").
			WithField("imported", summary.Imported).
			WithField("failed", summary.Failed).
			Info("Imported contracts to database")
		return
	},
}
