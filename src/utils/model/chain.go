package model

import (
	"fmt"
)

var chainNames = map[int]string{
	1:     "ethereum",
	10:    "optimism",
	137:   "polygon",
	8453:  "base",
	42161: "arbitrum",
}

// ChainName maps a chain id to its display name.
// Unknown ids get a deterministic fallback label, never an error.
func ChainName(chainID int) string {
	name, ok := chainNames[chainID]
	if !ok {
		return fmt.Sprintf("chain_%d", chainID)
	}
	return name
}
