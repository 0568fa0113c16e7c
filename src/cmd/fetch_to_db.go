package cmd

import (
	"github.com/curated-contracts/registry/src/registry"
	"github.com/curated-contracts/registry/src/utils/etherscan"
	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(fetchToDbCmd)

	fetchToDbCmd.Flags().StringVarP(&fetchToDbInput, "input", "i", "curated-addresses.txt", "input file with curated addresses")
	fetchToDbCmd.Flags().StringVarP(&fetchToDbApiKey, "api-key", "k", "", "Etherscan API key (or set ETHERSCAN_API_KEY)")
	fetchToDbCmd.Flags().StringVarP(&fetchToDbDatabaseUrl, "database-url", "d", "", "database url (or set DATABASE_URL)")
	fetchToDbCmd.Flags().IntVarP(&fetchToDbBatchSize, "batch-size", "b", 0, "records per database flush (default 50)")
}

var (
	fetchToDbInput       string
	fetchToDbApiKey      string
	fetchToDbDatabaseUrl string
	fetchToDbBatchSize   int
)

var fetchToDbCmd = &cobra.Command{
	Use:   "fetch-to-db",
	Short: "Fetch contracts from Etherscan and import them directly to the database",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = applyApiKey(fetchToDbApiKey)
		if err != nil {
			return
		}
		applyDatabaseUrl(fetchToDbDatabaseUrl)
		applyBatchSize(fetchToDbBatchSize)

		db, err := model.NewConnection(applicationCtx, conf, "fetch-to-db")
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
			WithSource(registry.NewSource()).
			WithFetcher(etherscan.NewClient(conf))

		addresses, err := pipeline.ReadAddresses(fetchToDbInput)
		if err != nil {
			return
		}

		summary := pipeline.FetchToStore(applicationCtx, addresses, importer)

		logger.NewSublogger("fetch-to-db-cmd").
			WithField("imported", summary.Imported).
			WithField("failed", summary.Failed).
			Info("Imported contracts to database")
		return
	},
}
