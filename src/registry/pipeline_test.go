package registry

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/curated-contracts/registry/src/utils/config"
	"github.com/curated-contracts/registry/src/utils/etherscan"
	"github.com/curated-contracts/registry/src/utils/model"
	"github.com/curated-contracts/registry/src/utils/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

type PipelineTestSuite struct {
	suite.Suite
	config *config.Config
}

func (s *PipelineTestSuite) SetupSuite() {
	s.config = config.Default()
}

type fakeFetcher struct {
	notFound map[string]bool
	fetched  []string
}

func (self *fakeFetcher) Fetch(ctx context.Context, address string, chainID int, protocol *string) (*model.Contract, error) {
	self.fetched = append(self.fetched, address)

	if self.notFound[address] {
		return nil, fmt.Errorf("%w %s", etherscan.ErrNotFound, address)
	}

	return &model.Contract{
		Address:  strings.ToLower(address),
		Chain:    model.ChainName(chainID),
		ChainID:  chainID,
		Name:     "Test",
		Protocol: protocol,
	}, nil
}

func curatedFixture(count int) (addresses []model.CuratedAddress) {
	for i := 0; i < count; i++ {
		addresses = append(addresses, model.CuratedAddress{
			Address: fmt.Sprintf("0xAddr%d", i+1),
			ChainID: 1,
		})
	}
	return
}

func (s *PipelineTestSuite) TestFetchToStoreSurvivesFailedAddress() {
	fetcher := &fakeFetcher{notFound: map[string]bool{"0xAddr3": true}}
	store := &fakeStore{}
	importer := NewImporter(s.config).WithStore(store)

	pipeline := NewPipeline(s.config).WithFetcher(fetcher)
	summary := pipeline.FetchToStore(context.Background(), curatedFixture(5), importer)

	// The failure of address #3 never terminates the run
	assert.Len(s.T(), fetcher.fetched, 5)
	assert.Equal(s.T(), 5, summary.Attempted)
	assert.Equal(s.T(), 4, summary.Succeeded)
	assert.Equal(s.T(), 1, summary.Failed)
	assert.Equal(s.T(), 4, summary.Imported)
	assert.Len(s.T(), store.upserts, 4)
	assert.Equal(s.T(), StateDone, pipeline.State())
}

func (s *PipelineTestSuite) TestFetchToStoreFlushesInterleavedBatches() {
	fetcher := &fakeFetcher{}
	store := &fakeStore{}
	importer := NewImporter(s.config).WithStore(store).WithBatchSize(2)

	pipeline := NewPipeline(s.config).WithFetcher(fetcher)
	summary := pipeline.FetchToStore(context.Background(), curatedFixture(5), importer)

	assert.Equal(s.T(), 5, summary.Imported)
	assert.Len(s.T(), store.upserts, 5)
}

func (s *PipelineTestSuite) TestFetchToFile() {
	fetcher := &fakeFetcher{notFound: map[string]bool{"0xAddr2": true}}
	output := s.T().TempDir() + "/contracts.csv"

	pipeline := NewPipeline(s.config).WithFetcher(fetcher)
	summary, err := pipeline.FetchToFile(context.Background(), curatedFixture(3), output)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 3, summary.Attempted)
	assert.Equal(s.T(), 2, summary.Succeeded)
	assert.Equal(s.T(), 1, summary.Failed)
	assert.Equal(s.T(), StateDone, pipeline.State())

	contracts, err := tabular.ReadContracts(output)
	require.NoError(s.T(), err)
	require.Len(s.T(), contracts, 2)
	assert.Equal(s.T(), "0xaddr1", contracts[0].Address)
	assert.Equal(s.T(), "0xaddr3", contracts[1].Address)
}

func (s *PipelineTestSuite) TestReadAddressesUnreadableFileFails() {
	pipeline := NewPipeline(s.config).WithSource(NewSource())

	_, err := pipeline.ReadAddresses(s.T().TempDir() + "/missing.txt")
	assert.Error(s.T(), err)
	assert.Equal(s.T(), StateReadingAddresses, pipeline.State())
}

func (s *PipelineTestSuite) TestStatesNeverGoBackwards() {
	fetcher := &fakeFetcher{}
	store := &fakeStore{}
	importer := NewImporter(s.config).WithStore(store)

	pipeline := NewPipeline(s.config).WithFetcher(fetcher)
	assert.Equal(s.T(), StateIdle, pipeline.State())

	pipeline.FetchToStore(context.Background(), nil, importer)
	assert.Equal(s.T(), StateDone, pipeline.State())
}
