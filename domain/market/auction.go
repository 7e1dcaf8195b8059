package market

import (
	"math/big"

	"github.com/mysterymart/goapi/domain"
)

// Auction mirrors the contract's auction struct for one token.
// HighestBidder equal to the zero address means no bid has been placed yet.
type Auction struct {
	// raw data from contract
	TokenId       domain.TokenId `json:"tokenId"`
	MinPrice      *big.Int       `json:"minPrice"`
	HighestBid    *big.Int       `json:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder"`
	StartTime     int64          `json:"startTime"`
	EndTime       int64          `json:"endTime"`
	Creator       domain.Address `json:"auctionCreator"`
	Active        bool           `json:"active"`
	TokenURI      string         `json:"tokenUri"`

	Metadata *domain.Metadata `json:"metadata,omitempty"`
}

// HasBid reports whether any bid has been accepted so far.
func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty()
}
