package market

import (
	"math/big"

	"github.com/mysterymart/goapi/domain"
)

// Listing is a view over the contract's current sale state for one token.
// It has no lifecycle of its own; every read replaces the previous value.
type Listing struct {
	// raw data from contract
	TokenId  domain.TokenId `json:"tokenId"`
	Price    *big.Int       `json:"price"`
	Seller   domain.Address `json:"seller"`
	IsListed bool           `json:"isListed"`
	TokenURI string         `json:"tokenUri"`

	// decorative, filled in lazily by the metadata resolver
	Metadata *domain.Metadata `json:"metadata,omitempty"`
}
