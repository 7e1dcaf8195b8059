package market

import (
	"time"

	"github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/domain"
)

// Usecase coordinates user intents against the contract: it validates
// locally, converts amounts to base units, submits through the write port,
// and re-reads the affected collection so derived state reconverges with the
// chain. Local validation failures return domain.ErrValidation or
// domain.ErrInvalidAmount before anything touches the network; on-chain
// rejections surface as domain.ErrTransactionFailed and are never retried.
type Usecase interface {
	List(c ctx.Ctx, tokenId domain.TokenId, priceDecimal string) error
	Unlist(c ctx.Ctx, tokenId domain.TokenId) error
	Purchase(c ctx.Ctx, tokenId domain.TokenId) error

	CreateAuction(c ctx.Ctx, tokenId domain.TokenId, minPriceDecimal string, endTime time.Time) error
	PlaceBid(c ctx.Ctx, tokenId domain.TokenId, amountDecimal string) error
	EndAuction(c ctx.Ctx, tokenId domain.TokenId) error

	CreateRental(c ctx.Ctx, tokenId domain.TokenId, rentPriceDecimal, depositDecimal string, durationDays int64) error
	Rent(c ctx.Ctx, tokenId domain.TokenId) error
	EndRental(c ctx.Ctx, tokenId domain.TokenId) error

	CreateBlindBox(c ctx.Ctx, priceDecimal string) (domain.BoxId, error)
	AddNftToBlindBox(c ctx.Ctx, boxId domain.BoxId, tokenId domain.TokenId) error
	BuyBlindBox(c ctx.Ctx, boxId domain.BoxId) error

	ActiveListings(c ctx.Ctx) ([]*Listing, error)
	ActiveAuctions(c ctx.Ctx) ([]*Auction, error)
	ActiveRentals(c ctx.Ctx) ([]*Rental, error)
	BlindBoxes(c ctx.Ctx, active bool) ([]*BlindBox, error)
	NftItem(c ctx.Ctx, tokenId domain.TokenId) (*Listing, error)
}
