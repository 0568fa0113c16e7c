package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectContractType(t *testing.T) {
	for name, expected := range map[string]string{
		"TransparentUpgradeableProxy": ContractTypeProxy,
		"UniswapV2Router02":           ContractTypeRouter,
		"UniswapV2Factory":            ContractTypeFactory,
		"UniswapV3Pool":               ContractTypePool,
		"yVault":                      ContractTypeVault,
		"WrappedTokenGateway":         ContractTypeToken,
		"uniswapv2factory":            ContractTypeFactory,
	} {
		contractType, ok := DetectContractType(name)
		require.True(t, ok, "name %q should classify", name)
		assert.Equal(t, expected, contractType, "name %q", name)
	}
}

func TestDetectContractTypePriority(t *testing.T) {
	// Contains both "pool" and "factory", "factory" is checked first
	contractType, ok := DetectContractType("PoolFactory")
	require.True(t, ok)
	assert.Equal(t, ContractTypeFactory, contractType)

	// "proxy" wins over everything else
	contractType, ok = DetectContractType("TokenPoolProxy")
	require.True(t, ok)
	assert.Equal(t, ContractTypeProxy, contractType)
}

func TestDetectContractTypeNoMatch(t *testing.T) {
	_, ok := DetectContractType("Multicall3")
	assert.False(t, ok)

	_, ok = DetectContractType("")
	assert.False(t, ok)
}
