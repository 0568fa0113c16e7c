package registry

import (
	"os"
	"strconv"
	"strings"

	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"

	"github.com/sirupsen/logrus"
)

// Source parses the curated address list.
// Malformed lines are filtered, not reported, callers only ever see
// valid entries. Dropped lines are still visible at debug level.
type Source struct {
	log *logrus.Entry
}

func NewSource() (self *Source) {
	self = new(Source)
	self.log = logger.NewSublogger("address-source")
	return
}

// Load reads and parses a curated address list file
func (self *Source) Load(path string) (addresses []model.CuratedAddress, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}
	return self.Parse(string(content)), nil
}

// Parse splits multi-line text into curated addresses
func (self *Source) Parse(content string) (addresses []model.CuratedAddress) {
	for _, line := range strings.Split(content, "\n") {
		address, ok := self.ParseLine(line)
		if !ok {
			continue
		}
		addresses = append(addresses, address)
	}
	return
}

// ParseLine parses one line of the list: address,chain_id[,protocol]
// with everything after '#' ignored. Returns ok=false for lines that
// carry no valid entry.
func (self *Source) ParseLine(line string) (address model.CuratedAddress, ok bool) {
	entry, _, _ := strings.Cut(line, "#")
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return
	}

	parts := strings.Split(entry, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < 2 {
		self.log.WithField("line", line).Debug("Dropped line, expected at least address and chain id")
		return
	}

	chainID, err := strconv.Atoi(parts[1])
	if err != nil {
		self.log.WithField("line", line).Debug("Dropped line, chain id is not a number")
		return
	}

	address.Address = parts[0]
	address.ChainID = chainID
	if len(parts) >= 3 {
		address.Protocol = &parts[2]
	}

	ok = true
	return
}
