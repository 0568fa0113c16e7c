package etherscan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/curated-contracts/registry/src/utils/build_info"
	"github.com/curated-contracts/registry/src/utils/config"
	"github.com/curated-contracts/registry/src/utils/logger"
	"github.com/curated-contracts/registry/src/utils/model"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client fetches verified contract metadata through the Etherscan v2 API.
// All requests go through one rate limiter, so the minimum delay between
// calls holds no matter how the client is used.
type Client struct {
	config  *config.Config
	log     *logrus.Entry
	client  *resty.Client
	limiter *rate.Limiter
}

func NewClient(config *config.Config) (self *Client) {
	self = new(Client)
	self.config = config
	self.log = logger.NewSublogger("etherscan-client")

	self.limiter = rate.NewLimiter(rate.Every(config.Etherscan.RequestDelay), 1)

	// Drain the initial burst token, the delay is paid on the very first call too
	self.limiter.Allow()

	self.client = resty.New().
		SetTimeout(self.config.Etherscan.RequestTimeout).
		SetHeader("User-Agent", "curated-contracts/registry/"+build_info.Version).
		OnBeforeRequest(self.onRateLimit)

	return
}

func (self *Client) onRateLimit(c *resty.Client, req *resty.Request) (err error) {
	// Blocks till the request is possible or ctx gets canceled
	err = self.limiter.Wait(req.Context())
	if err != nil {
		self.log.WithError(err).Error("Rate limiting failed")
	}
	return
}

// Fetch downloads the metadata of one contract and normalizes it into a record.
// One attempt per call, retrying is up to the caller's policy.
func (self *Client) Fetch(ctx context.Context, address string, chainID int, protocol *string) (contract *model.Contract, err error) {
	resp, err := self.client.R().
		SetContext(ctx).
		SetResult(Response{}).
		ForceContentType("application/json").
		SetQueryParams(map[string]string{
			"chainid": strconv.Itoa(chainID),
			"module":  "contract",
			"action":  "getsourcecode",
			"address": address,
			"apikey":  self.config.Etherscan.ApiKey,
		}).
		Get(self.config.Etherscan.Url)
	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			// A response arrived but its body didn't parse
			return nil, &DecodeError{Err: err}
		}
		return nil, &TransportError{Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &TransportError{Err: fmt.Errorf("unexpected status: %s", resp.Status())}
	}

	data, ok := resp.Result().(*Response)
	if !ok {
		return nil, &DecodeError{Err: errors.New("unexpected response shape")}
	}

	if data.Status != StatusSuccess {
		return nil, &APIError{Message: data.Message}
	}

	if len(data.Result) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNotFound, address)
	}

	return self.normalize(&data.Result[0], address, chainID, protocol), nil
}

// normalize derives the canonical record from the raw API entry.
// Symbol and Version stay unset, they are populated by a separate
// enrichment path.
func (self *Client) normalize(source *SourceCode, address string, chainID int, protocol *string) (contract *model.Contract) {
	isProxy := source.Implementation != "" && source.Implementation != implementationPlaceholder

	var implementationAddress *string
	if isProxy {
		implementationAddress = &source.Implementation
	}

	contract = &model.Contract{
		Address:               strings.ToLower(address),
		Chain:                 model.ChainName(chainID),
		ChainID:               chainID,
		Name:                  source.ContractName,
		SourceCode:            source.SourceCode,
		Abi:                   source.Abi,
		IsProxy:               isProxy,
		ImplementationAddress: implementationAddress,
		Protocol:              protocol,
	}

	if contractType, ok := model.DetectContractType(source.ContractName); ok {
		contract.ContractType = &contractType
	}

	return
}
