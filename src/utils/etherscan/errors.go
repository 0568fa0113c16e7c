package etherscan

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the API reports success with an empty result array
var ErrNotFound = errors.New("no contract found at address")

// APIError is an API-level failure, status != "1". Carries the message from the response.
type APIError struct {
	Message string
}

func (self *APIError) Error() string {
	return fmt.Sprintf("etherscan api error: %s", self.Message)
}

// TransportError is a network-level failure, the request never produced a response
type TransportError struct {
	Err error
}

func (self *TransportError) Error() string {
	return fmt.Sprintf("failed to send request to etherscan: %v", self.Err)
}

func (self *TransportError) Unwrap() error {
	return self.Err
}

// DecodeError is a malformed response, a body arrived but could not be parsed
type DecodeError struct {
	Err error
}

func (self *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse etherscan response: %v", self.Err)
}

func (self *DecodeError) Unwrap() error {
	return self.Err
}
