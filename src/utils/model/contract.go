package model

import (
	"strings"
)

const (
	TableContract = "contracts"

	ContractTypeProxy   = "Proxy"
	ContractTypeRouter  = "Router"
	ContractTypeFactory = "Factory"
	ContractTypePool    = "Pool"
	ContractTypeVault   = "Vault"
	ContractTypeToken   = "Token"
)

// Checked in order, first match wins
var contractTypeKeywords = []struct {
	keyword      string
	contractType string
}{
	{"proxy", ContractTypeProxy},
	{"router", ContractTypeRouter},
	{"factory", ContractTypeFactory},
	{"pool", ContractTypePool},
	{"vault", ContractTypeVault},
	{"token", ContractTypeToken},
}

// Contract is one fetched and classified on-chain contract.
// Optional columns are pointers so that NULL survives both the database
// and the CSV codec.
type Contract struct {
	Address               string
	Chain                 string
	ChainID               int
	Name                  string
	Symbol                *string
	SourceCode            string
	Abi                   string
	IsProxy               bool
	ImplementationAddress *string
	Protocol              *string
	ContractType          *string
	Version               *string
	CreatedAt             int64
	UpdatedAt             int64
}

// DetectContractType infers the contract category from its name
func DetectContractType(name string) (contractType string, ok bool) {
	nameLower := strings.ToLower(name)
	for _, entry := range contractTypeKeywords {
		if strings.Contains(nameLower, entry.keyword) {
			return entry.contractType, true
		}
	}
	return
}
