package registry

import (
	"context"

	"github.com/curated-contracts/registry/src/utils/config"
	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// Importer accumulates fetched records and flushes them to the store
// in fixed-size batches. A failed record is logged and skipped, it
// never aborts the batch or the run.
type Importer struct {
	log   *logrus.Entry
	store Upserter

	queue     deque.Deque[*model.Contract]
	batchSize int
	imported  int
}

func NewImporter(config *config.Config) (self *Importer) {
	self = new(Importer)
	self.log = logger.NewSublogger("importer")
	self.batchSize = config.Importer.BatchSize
	return
}

func (self *Importer) WithStore(store Upserter) *Importer {
	self.store = store
	return self
}

func (self *Importer) WithBatchSize(batchSize int) *Importer {
	self.batchSize = batchSize
	return self
}

// Add queues a record and flushes once the batch size is reached.
// Returns how many records the triggered flush imported, if any.
func (self *Importer) Add(ctx context.Context, contract *model.Contract) (imported int) {
	self.queue.PushBack(contract)

	if self.queue.Len() >= self.batchSize {
		imported = self.flush(ctx)
	}
	return
}

// Flush drains whatever is left in the queue. Called once at end of run.
func (self *Importer) Flush(ctx context.Context) (imported int) {
	if self.queue.Len() == 0 {
		return
	}
	return self.flush(ctx)
}

// Imported is the total number of records stored so far in this run
func (self *Importer) Imported() int {
	return self.imported
}

func (self *Importer) flush(ctx context.Context) (imported int) {
	size := self.queue.Len()
	batch := make([]*model.Contract, 0, size)
	for i := 0; i < size; i++ {
		batch = append(batch, self.queue.PopFront())
	}

	imported = self.ImportBatch(ctx, batch)
	self.log.WithField("len", size).WithField("imported", imported).Info("Imported batch of contracts")
	return
}

// ImportBatch upserts every record of the batch, one by one.
// Returns the number of records that made it into the store.
func (self *Importer) ImportBatch(ctx context.Context, contracts []*model.Contract) (imported int) {
	for _, contract := range contracts {
		err := self.store.Upsert(ctx, contract)
		if err != nil {
			self.log.WithError(err).
				WithField("address", contract.Address).
				Error("Failed to import contract")
			continue
		}

		self.log.WithField("name", contract.Name).
			WithField("address", contract.Address).
			Debug("Imported contract")
		imported++
	}

	self.imported += imported
	return
}
