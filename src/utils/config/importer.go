package config

import (
	"github.com/spf13/viper"
)

type Importer struct {
	// How many records are flushed to the database in one batch
	BatchSize int
}

func setImporterDefaults() {
	viper.SetDefault("Importer.BatchSize", "50")
}
