package model

// CuratedAddress is one entry from the curated address list.
// It only lives long enough to drive a single fetch.
type CuratedAddress struct {
	Address  string
	ChainID  int
	Protocol *string
}
