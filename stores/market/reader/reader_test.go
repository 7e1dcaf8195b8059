package reader

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	baseabi "github.com/mysterymart/goapi/base/abi"
	"github.com/mysterymart/goapi/domain"
)

var (
	seller  = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	creator = common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
)

func TestToListings(t *testing.T) {
	req := require.New(t)

	raws := []baseabi.RawNftItem{
		{TokenId: big.NewInt(3), Price: big.NewInt(100), Seller: seller, IsListed: true, TokenUri: "ipfs://a"},
		{TokenId: big.NewInt(0)},
		{TokenId: big.NewInt(1), Price: big.NewInt(200), Seller: seller, IsListed: true, TokenUri: "ipfs://b"},
	}

	listings := ToListings(raws)
	req.Len(listings, 2)
	req.Equal(domain.TokenId("3"), listings[0].TokenId)
	req.Equal(domain.TokenId("1"), listings[1].TokenId)
	req.Equal(big.NewInt(100), listings[0].Price)
	req.True(listings[0].IsListed)
}

func TestToAuction_emptyBidder(t *testing.T) {
	req := require.New(t)

	a := ToAuction(&baseabi.RawAuction{
		TokenId:        big.NewInt(7),
		MinPrice:       big.NewInt(1000),
		HighestBid:     big.NewInt(0),
		HighestBidder:  common.Address{},
		StartTime:      big.NewInt(1700000000),
		EndTime:        big.NewInt(1700003600),
		AuctionCreator: creator,
		Active:         true,
	})
	req.True(a.HighestBidder.IsEmpty())
	req.False(a.HasBid())
	req.Equal(int64(1700003600), a.EndTime)
}

func TestToRentals_dropsEmptySlots(t *testing.T) {
	req := require.New(t)

	raws := []baseabi.RawRental{
		{TokenId: big.NewInt(5), RentPrice: big.NewInt(10), Deposit: big.NewInt(50), Owner: seller, Active: true},
		{TokenId: nil},
		{TokenId: big.NewInt(0)},
		{TokenId: big.NewInt(2), RentPrice: big.NewInt(20), Deposit: big.NewInt(40), Owner: seller, Active: true},
	}

	rentals := ToRentals(raws)
	req.Len(rentals, 2)
	req.Equal(domain.TokenId("5"), rentals[0].TokenId)
	req.Equal(domain.TokenId("2"), rentals[1].TokenId)
}

func TestToBlindBoxes(t *testing.T) {
	req := require.New(t)

	id1, _ := new(big.Int).SetString("1a2b3c4d5e6f7081", 16)
	id2, _ := new(big.Int).SetString("ffee00112233aabb", 16)

	raw := &baseabi.RawBlindBoxes{
		Ids:       []*big.Int{id1, id2, id1},
		Prices:    []*big.Int{big.NewInt(100), big.NewInt(200), big.NewInt(300)},
		Creators:  []common.Address{creator, creator, seller},
		Actives:   []bool{true, true, false},
		NftCounts: []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
	}

	boxes := ToBlindBoxes(raw)
	req.Len(boxes, 2)
	// duplicate id keeps first position but carries the latest values
	req.Equal(domain.BoxId("1a2b3c4d5e6f7081"), boxes[0].Id)
	req.Equal(big.NewInt(300), boxes[0].Price)
	req.False(boxes[0].Active)
	req.Equal(3, boxes[0].NftCount)
	req.Equal(domain.BoxId("ffee00112233aabb"), boxes[1].Id)
}

func TestToBlindBoxes_raggedColumns(t *testing.T) {
	req := require.New(t)

	raw := &baseabi.RawBlindBoxes{
		Ids:       []*big.Int{big.NewInt(1), big.NewInt(2)},
		Prices:    []*big.Int{big.NewInt(100)},
		Creators:  []common.Address{creator},
		Actives:   []bool{true},
		NftCounts: []*big.Int{big.NewInt(1)},
	}

	boxes := ToBlindBoxes(raw)
	req.Len(boxes, 1)
}
