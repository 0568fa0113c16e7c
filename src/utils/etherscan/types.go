package etherscan

// Status value the API uses to report success
const StatusSuccess = "1"

// Response is the envelope every getsourcecode call comes back in.
// When status != "1" the result carries an error string instead of an
// array, which surfaces as a decode error.
type Response struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Result  []SourceCode `json:"result"`
}

// SourceCode is one entry of the getsourcecode result array.
// Field names follow the API's PascalCase convention.
type SourceCode struct {
	SourceCode           string `json:"SourceCode"`
	Abi                  string `json:"ABI"`
	ContractName         string `json:"ContractName"`
	CompilerVersion      string `json:"CompilerVersion"`
	OptimizationUsed     string `json:"OptimizationUsed"`
	Runs                 string `json:"Runs"`
	ConstructorArguments string `json:"ConstructorArguments"`
	EVMVersion           string `json:"EVMVersion"`
	Library              string `json:"Library"`
	LicenseType          string `json:"LicenseType"`
	Proxy                string `json:"Proxy"`
	Implementation       string `json:"Implementation"`
	SwarmSource          string `json:"SwarmSource"`
}

// Implementation address the API reports for contracts that are not proxies
const implementationPlaceholder = "0x"
