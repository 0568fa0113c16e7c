package registry

import (
	"strings"

	"github.com/curated-contracts/registry/src/utils/model"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Stats summarizes a contracts dataset
type Stats struct {
	Total        int
	WithSymbol   int
	Proxies      int
	WithProtocol int
	ByProtocol   []ProtocolCount
	ByChain      []ChainCount
}

type ProtocolCount struct {
	Protocol string
	Count    int
}

type ChainCount struct {
	ChainID int
	Count   int
}

// CollectStats computes dataset statistics. Groups are sorted by
// descending count, ties broken by key for a deterministic order.
func CollectStats(contracts []*model.Contract) (stats Stats) {
	protocols := make(map[string]int)
	chains := make(map[int]int)

	for _, contract := range contracts {
		stats.Total++
		if contract.Symbol != nil {
			stats.WithSymbol++
		}
		if contract.IsProxy {
			stats.Proxies++
		}
		if contract.Protocol != nil {
			stats.WithProtocol++
			protocols[*contract.Protocol]++
		}
		chains[contract.ChainID]++
	}

	for _, protocol := range maps.Keys(protocols) {
		stats.ByProtocol = append(stats.ByProtocol, ProtocolCount{Protocol: protocol, Count: protocols[protocol]})
	}
	slices.SortFunc(stats.ByProtocol, func(a, b ProtocolCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Protocol, b.Protocol)
	})

	for _, chainID := range maps.Keys(chains) {
		stats.ByChain = append(stats.ByChain, ChainCount{ChainID: chainID, Count: chains[chainID]})
	}
	slices.SortFunc(stats.ByChain, func(a, b ChainCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return a.ChainID - b.ChainID
	})

	return
}
