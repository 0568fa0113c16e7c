package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/curated-contracts/registry/src/utils/model"
)

// Column order matches the record's field order. Readers rely on it.
var header = []string{
	"address",
	"chain",
	"chain_id",
	"name",
	"symbol",
	"source_code",
	"abi",
	"is_proxy",
	"implementation_address",
	"protocol",
	"contract_type",
	"version",
}

// Metadata CSV column positions, as produced by the exporter
const (
	metadataColumnAddress  = 0
	metadataColumnChainID  = 2
	metadataColumnProtocol = 7
)

// WriteContracts creates (or truncates) the file and writes the header
// followed by one row per contract.
func WriteContracts(contracts []*model.Contract, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	err = writer.Write(header)
	if err != nil {
		return
	}

	for _, contract := range contracts {
		err = writer.Write(record(contract))
		if err != nil {
			return
		}
	}

	writer.Flush()
	return writer.Error()
}

// AppendContract adds a single row, writing the header only when the
// file is created by this call.
func AppendContract(contract *model.Contract, path string) (err error) {
	_, err = os.Stat(path)
	fileExists := err == nil

	/* #nosec */
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if !fileExists {
		err = writer.Write(header)
		if err != nil {
			return
		}
	}

	err = writer.Write(record(contract))
	if err != nil {
		return
	}

	writer.Flush()
	return writer.Error()
}

// ReadContracts parses a file previously written by WriteContracts.
// Empty optional cells come back as unset.
func ReadContracts(path string) (contracts []*model.Contract, err error) {
	/* #nosec */
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip the header
	_, err = reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return
	}

	for {
		var row []string
		row, err = reader.Read()
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			return
		}

		var contract *model.Contract
		contract, err = parseRecord(row)
		if err != nil {
			return
		}
		contracts = append(contracts, contract)
	}
}

// ReadMetadataAddresses extracts curated addresses from a metadata CSV.
// Rows without a 0x address are skipped, an unparseable chain id falls
// back to mainnet.
func ReadMetadataAddresses(path string) (addresses []model.CuratedAddress, err error) {
	/* #nosec */
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip the header
	_, err = reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return
	}

	for {
		var row []string
		row, err = reader.Read()
		if err == io.EOF {
			err = nil
			return
		}
		if err != nil {
			return
		}

		address := column(row, metadataColumnAddress)
		if !strings.HasPrefix(address, "0x") {
			continue
		}

		chainID, parseErr := strconv.Atoi(column(row, metadataColumnChainID))
		if parseErr != nil {
			chainID = 1
		}

		addresses = append(addresses, model.CuratedAddress{
			Address:  address,
			ChainID:  chainID,
			Protocol: optional(column(row, metadataColumnProtocol)),
		})
	}
}

func record(contract *model.Contract) []string {
	return []string{
		contract.Address,
		contract.Chain,
		strconv.Itoa(contract.ChainID),
		contract.Name,
		deref(contract.Symbol),
		contract.SourceCode,
		contract.Abi,
		strconv.FormatBool(contract.IsProxy),
		deref(contract.ImplementationAddress),
		deref(contract.Protocol),
		deref(contract.ContractType),
		deref(contract.Version),
	}
}

func parseRecord(row []string) (contract *model.Contract, err error) {
	if len(row) != len(header) {
		err = fmt.Errorf("expected %d columns, got %d", len(header), len(row))
		return
	}

	chainID, err := strconv.Atoi(row[2])
	if err != nil {
		err = fmt.Errorf("invalid chain_id %q: %w", row[2], err)
		return
	}

	isProxy, err := strconv.ParseBool(row[7])
	if err != nil {
		err = fmt.Errorf("invalid is_proxy %q: %w", row[7], err)
		return
	}

	contract = &model.Contract{
		Address:               row[0],
		Chain:                 row[1],
		ChainID:               chainID,
		Name:                  row[3],
		Symbol:                optional(row[4]),
		SourceCode:            row[5],
		Abi:                   row[6],
		IsProxy:               isProxy,
		ImplementationAddress: optional(row[8]),
		Protocol:              optional(row[9]),
		ContractType:          optional(row[10]),
		Version:               optional(row[11]),
	}
	return
}

func column(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
