package market

import (
	"math/big"

	"github.com/mysterymart/goapi/domain"
)

// BlindBox mirrors the contract's mystery box state. NftCount only moves via
// add (up) or buy (down); Price is immutable after creation.
type BlindBox struct {
	Id       domain.BoxId   `json:"id"`
	Price    *big.Int       `json:"price"`
	Creator  domain.Address `json:"creator"`
	Active   bool           `json:"active"`
	NftCount int            `json:"nftCount"`
}
