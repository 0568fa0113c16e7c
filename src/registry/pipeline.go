package registry

import (
	"context"
	"fmt"

	"github.com/curated-contracts/registry/src/utils/config"
	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"
	"github.com/curated-contracts/registry/src/utils/tabular"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

// State of a pipeline run. Transitions are monotonic, a run never
// returns to an earlier state.
type State string

const (
	StateIdle             State = "idle"
	StateReadingAddresses State = "reading_addresses"
	StateFetching         State = "fetching"
	StateSinking          State = "sinking"
	StateBatching         State = "batching"
	StateDone             State = "done"
)

// Fetcher downloads the metadata record for one curated address
type Fetcher interface {
	Fetch(ctx context.Context, address string, chainID int, protocol *string) (*model.Contract, error)
}

// Summary is the accumulated outcome of one run.
// Plain values threaded through the loop, no shared counters.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
	Imported  int
}

// Pipeline drives one sequential run: read addresses, fetch each one,
// classify, hand the records to a sink. A failed address never
// terminates the run.
type Pipeline struct {
	config  *config.Config
	log     *logrus.Entry
	source  *Source
	fetcher Fetcher
	state   State
}

func NewPipeline(config *config.Config) (self *Pipeline) {
	self = new(Pipeline)
	self.config = config
	self.state = StateIdle
	self.log = logger.NewSublogger("pipeline").WithField("run", xid.New().String())
	return
}

func (self *Pipeline) WithSource(source *Source) *Pipeline {
	self.source = source
	return self
}

func (self *Pipeline) WithFetcher(fetcher Fetcher) *Pipeline {
	self.fetcher = fetcher
	return self
}

func (self *Pipeline) State() State {
	return self.state
}

// ReadAddresses loads the curated address list file
func (self *Pipeline) ReadAddresses(path string) (addresses []model.CuratedAddress, err error) {
	self.setState(StateReadingAddresses)

	addresses, err = self.source.Load(path)
	if err != nil {
		return
	}

	self.log.WithField("count", len(addresses)).WithField("path", path).Info("Loaded curated addresses")
	return
}

// ReadMetadataAddresses loads curated addresses from a metadata CSV export
func (self *Pipeline) ReadMetadataAddresses(path string) (addresses []model.CuratedAddress, err error) {
	self.setState(StateReadingAddresses)

	addresses, err = tabular.ReadMetadataAddresses(path)
	if err != nil {
		return
	}

	self.log.WithField("count", len(addresses)).WithField("path", path).Info("Loaded addresses from metadata CSV")
	return
}

// FetchToFile fetches every address, buffers the records in memory and
// writes them to the CSV sink once at the end.
func (self *Pipeline) FetchToFile(ctx context.Context, addresses []model.CuratedAddress, output string) (summary Summary, err error) {
	contracts := make([]*model.Contract, 0, len(addresses))
	summary = self.fetchLoop(ctx, addresses, func(contract *model.Contract) {
		contracts = append(contracts, contract)
	})

	self.setState(StateSinking)
	err = tabular.WriteContracts(contracts, output)
	if err != nil {
		return
	}

	self.finish(summary)
	return
}

// FetchToStore fetches every address and accumulates the records in the
// importer, which flushes full batches along the way. The remainder is
// drained once the input is exhausted.
func (self *Pipeline) FetchToStore(ctx context.Context, addresses []model.CuratedAddress, importer *Importer) (summary Summary) {
	summary = self.fetchLoop(ctx, addresses, func(contract *model.Contract) {
		importer.Add(ctx, contract)
	})

	self.setState(StateBatching)
	importer.Flush(ctx)
	summary.Imported = importer.Imported()

	self.finish(summary)
	return
}

func (self *Pipeline) fetchLoop(ctx context.Context, addresses []model.CuratedAddress, onContract func(*model.Contract)) (summary Summary) {
	self.setState(StateFetching)

	for i, address := range addresses {
		summary.Attempted++

		log := self.log.
			WithField("progress", fmt.Sprintf("%d/%d", i+1, len(addresses))).
			WithField("address", address.Address)
		log.Info("Fetching contract")

		contract, err := self.fetcher.Fetch(ctx, address.Address, address.ChainID, address.Protocol)
		if err != nil {
			summary.Failed++
			log.WithError(err).Error("Failed to fetch contract")
			continue
		}

		summary.Succeeded++
		log.WithField("name", contract.Name).Info("Fetched contract")
		onContract(contract)
	}

	return
}

func (self *Pipeline) finish(summary Summary) {
	self.setState(StateDone)
	self.log.
		WithField("attempted", summary.Attempted).
		WithField("succeeded", summary.Succeeded).
		WithField("failed", summary.Failed).
		WithField("imported", summary.Imported).
		Info("Run finished")
}

func (self *Pipeline) setState(state State) {
	if state == self.state {
		return
	}
	self.log.WithField("from", self.state).WithField("to", state).Debug("Pipeline state changed")
	self.state = state
}
