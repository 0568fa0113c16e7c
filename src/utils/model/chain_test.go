package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainName(t *testing.T) {
	assert.Equal(t, "ethereum", ChainName(1))
	assert.Equal(t, "optimism", ChainName(10))
	assert.Equal(t, "polygon", ChainName(137))
	assert.Equal(t, "base", ChainName(8453))
	assert.Equal(t, "arbitrum", ChainName(42161))
}

func TestChainNameFallback(t *testing.T) {
	assert.Equal(t, "chain_999999", ChainName(999999))
	assert.Equal(t, "chain_0", ChainName(0))
}
