package market

import (
	"math/big"

	"github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/domain"
)

// ReadPort is the contract's read surface. Implementations perform eth_call
// style reads only; every returned record is a cache of on-chain state,
// invalidated by the next successful read.
type ReadPort interface {
	ActiveListings(ctx.Ctx) ([]*Listing, error)
	AuctionsByStatus(c ctx.Ctx, active bool) ([]*Auction, error)
	RentalsByStatus(c ctx.Ctx, active bool) ([]*Rental, error)
	BlindBoxesByStatus(c ctx.Ctx, active bool) ([]*BlindBox, error)
	NftItem(c ctx.Ctx, tokenId domain.TokenId) (*Listing, error)
	AuctionOf(c ctx.Ctx, tokenId domain.TokenId) (*Auction, error)
	BlindBoxOf(c ctx.Ctx, boxId domain.BoxId) (*BlindBox, error)
	CalculateListingFee(c ctx.Ctx, price *big.Int) (*big.Int, error)
	BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error)
	TokenOfOwnerByIndex(c ctx.Ctx, owner domain.Address, index *big.Int) (domain.TokenId, error)
	TokenURI(c ctx.Ctx, tokenId domain.TokenId) (string, error)
}

// WritePort is the contract's state-changing surface. A submitted transaction
// cannot be cancelled client-side; the only cancellation lever is not calling
// these methods. Implementations must not retry on their own.
type WritePort interface {
	PlaceNftOnSale(c ctx.Ctx, tokenId domain.TokenId, price, listingFee *big.Int) (domain.TxHash, error)
	UnlistNft(c ctx.Ctx, tokenId domain.TokenId) (domain.TxHash, error)
	PurchaseNft(c ctx.Ctx, tokenId domain.TokenId, payment *big.Int) (domain.TxHash, error)
	CreateAuction(c ctx.Ctx, tokenId domain.TokenId, minPrice *big.Int, durationSeconds int64) (domain.TxHash, error)
	Bid(c ctx.Ctx, tokenId domain.TokenId, amount *big.Int) (domain.TxHash, error)
	EndAuction(c ctx.Ctx, tokenId domain.TokenId) (domain.TxHash, error)
	CreateRental(c ctx.Ctx, tokenId domain.TokenId, rentPrice, deposit *big.Int, durationSeconds int64) (domain.TxHash, error)
	RentNft(c ctx.Ctx, tokenId domain.TokenId, payment *big.Int) (domain.TxHash, error)
	EndRental(c ctx.Ctx, tokenId domain.TokenId) (domain.TxHash, error)
	CreateBlindBox(c ctx.Ctx, boxId domain.BoxId, price *big.Int) (domain.TxHash, error)
	AddNftToBlindBox(c ctx.Ctx, boxId domain.BoxId, tokenId domain.TokenId) (domain.TxHash, error)
	BuyMysteryBox(c ctx.Ctx, boxId domain.BoxId, payment *big.Int) (domain.TxHash, error)
	BatchMintItems(c ctx.Ctx, owner domain.Address, tokenURIs []string, royaltyPercentages []*big.Int, prices []*big.Int) (domain.TxHash, error)
}
