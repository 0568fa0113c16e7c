package registry

import (
	"context"
	"time"

	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upserter saves one contract record, insert-or-update keyed by (chain_id, address)
type Upserter interface {
	Upsert(ctx context.Context, contract *model.Contract) error
}

// Columns overwritten when the record already exists.
// created_at is deliberately absent, it survives re-imports.
var upsertColumns = []string{
	"source_code",
	"abi",
	"name",
	"symbol",
	"is_proxy",
	"implementation_address",
	"protocol",
	"contract_type",
	"version",
	"updated_at",
}

// Store persists contract records in the database.
// Every record is an independent unit of durability, there is no
// transaction spanning a batch.
type Store struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewStore(db *gorm.DB) (self *Store) {
	self = new(Store)
	self.db = db
	self.log = logger.NewSublogger("store")
	return
}

func (self *Store) Upsert(ctx context.Context, contract *model.Contract) (err error) {
	now := time.Now().Unix()
	contract.CreatedAt = now
	contract.UpdatedAt = now

	err = self.db.WithContext(ctx).
		Table(model.TableContract).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chain_id"}, {Name: "address"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(contract).
		Error
	if err != nil {
		self.log.WithError(err).
			WithField("address", contract.Address).
			WithField("chain_id", contract.ChainID).
			Error("Failed to upsert contract")
		return
	}

	return
}
