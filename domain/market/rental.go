package market

import (
	"math/big"

	"github.com/mysterymart/goapi/domain"
)

// Rental mirrors the contract's rental struct for one token. Active flips
// true to false exactly once per rental period, and only on-chain.
type Rental struct {
	// raw data from contract
	TokenId   domain.TokenId `json:"tokenId"`
	RentPrice *big.Int       `json:"rentPrice"`
	Deposit   *big.Int       `json:"deposit"`
	Renter    domain.Address `json:"renter"`
	Owner     domain.Address `json:"owner"`
	StartTime int64          `json:"startTime"`
	Duration  int64          `json:"duration"`
	Active    bool           `json:"active"`
	TokenURI  string         `json:"tokenUri"`

	Metadata *domain.Metadata `json:"metadata,omitempty"`
}
