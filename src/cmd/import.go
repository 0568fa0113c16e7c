package cmd

import (
	"github.com/curated-contracts/registry/src/registry"
	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"
	"github.com/curated-contracts/registry/src/utils/tabular"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importInput, "input", "i", "contracts.csv", "input CSV file")
	importCmd.Flags().StringVarP(&importDatabaseUrl, "database-url", "d", "", "database url (or set DATABASE_URL)")
}

var (
	importInput       string
	importDatabaseUrl string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import contracts from a CSV file to the database",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		applyDatabaseUrl(importDatabaseUrl)

		log := logger.NewSublogger("import-cmd")

		contracts, err := tabular.ReadContracts(importInput)
		if err != nil {
			return
		}
		log.WithField("count", len(contracts)).WithField("path", importInput).Info("Loaded contracts from CSV")

		db, err := model.NewConnection(applicationCtx, conf, "import")
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

		imported := importer.ImportBatch(applicationCtx, contracts)

		log.WithField("imported", imported).
			WithField("failed", len(contracts)-imported).
			Info("Imported contracts to database")
		return
	},
}
