package reader

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/mysterymart/goapi/base/abi"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/market"
)

// This package is the only place raw contract tuples turn into domain
// records. Mapping is pure: no chain access, no logging, no mutation of the
// input.

func toAddress(a common.Address) domain.Address {
	return domain.Address(a.Hex()).ToLower()
}

func toInt64(v *big.Int) int64 {
	if v == nil {
		return 0
	}
	return v.Int64()
}

// hasTokenId reports whether the entry carries a usable token id. The
// contract pads status queries with empty slots whose token id is zero.
func hasTokenId(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}

func ToListing(raw *baseabi.RawNftItem) *market.Listing {
	return &market.Listing{
		TokenId:  domain.TokenId(raw.TokenId.String()),
		Price:    raw.Price,
		Seller:   toAddress(raw.Seller),
		IsListed: raw.IsListed,
		TokenURI: raw.TokenUri,
	}
}

func ToListings(raws []baseabi.RawNftItem) []*market.Listing {
	listings := make([]*market.Listing, 0, len(raws))
	for i := range raws {
		if !hasTokenId(raws[i].TokenId) {
			continue
		}
		listings = append(listings, ToListing(&raws[i]))
	}
	return listings
}

func ToAuction(raw *baseabi.RawAuction) *market.Auction {
	return &market.Auction{
		TokenId:       domain.TokenId(raw.TokenId.String()),
		MinPrice:      raw.MinPrice,
		HighestBid:    raw.HighestBid,
		HighestBidder: toAddress(raw.HighestBidder),
		StartTime:     toInt64(raw.StartTime),
		EndTime:       toInt64(raw.EndTime),
		Creator:       toAddress(raw.AuctionCreator),
		Active:        raw.Active,
		TokenURI:      raw.TokenUri,
	}
}

func ToAuctions(raws []baseabi.RawAuction) []*market.Auction {
	auctions := make([]*market.Auction, 0, len(raws))
	for i := range raws {
		if !hasTokenId(raws[i].TokenId) {
			continue
		}
		auctions = append(auctions, ToAuction(&raws[i]))
	}
	return auctions
}

func ToRental(raw *baseabi.RawRental) *market.Rental {
	return &market.Rental{
		TokenId:   domain.TokenId(raw.TokenId.String()),
		RentPrice: raw.RentPrice,
		Deposit:   raw.Deposit,
		Renter:    toAddress(raw.Renter),
		Owner:     toAddress(raw.Owner),
		StartTime: toInt64(raw.StartTime),
		Duration:  toInt64(raw.Duration),
		Active:    raw.Active,
		TokenURI:  raw.TokenUri,
	}
}

func ToRentals(raws []baseabi.RawRental) []*market.Rental {
	rentals := make([]*market.Rental, 0, len(raws))
	for i := range raws {
		if !hasTokenId(raws[i].TokenId) {
			continue
		}
		rentals = append(rentals, ToRental(&raws[i]))
	}
	return rentals
}

// ToBlindBoxes zips the contract's column arrays into records. Duplicate ids
// collapse to the latest entry, keeping the position of the first occurrence.
func ToBlindBoxes(raw *baseabi.RawBlindBoxes) []*market.BlindBox {
	n := len(raw.Ids)
	if len(raw.Prices) < n {
		n = len(raw.Prices)
	}
	if len(raw.Creators) < n {
		n = len(raw.Creators)
	}
	if len(raw.Actives) < n {
		n = len(raw.Actives)
	}
	if len(raw.NftCounts) < n {
		n = len(raw.NftCounts)
	}

	boxes := make([]*market.BlindBox, 0, n)
	seen := make(map[domain.BoxId]*market.BlindBox, n)
	for i := 0; i < n; i++ {
		if raw.Ids[i] == nil {
			continue
		}
		box := &market.BlindBox{
			Id:       domain.BoxIdFromBigInt(raw.Ids[i]),
			Price:    raw.Prices[i],
			Creator:  toAddress(raw.Creators[i]),
			Active:   raw.Actives[i],
			NftCount: int(toInt64(raw.NftCounts[i])),
		}
		if prev, ok := seen[box.Id]; ok {
			*prev = *box
			continue
		}
		seen[box.Id] = box
		boxes = append(boxes, box)
	}
	return boxes
}
