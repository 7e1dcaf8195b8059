package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CollectibleABI is the marketplace surface of the collectible contract:
// sale, auction, rental and mystery box reads plus their payable writes.
var CollectibleABI abi.ABI

var collectibleABI = `[
{"type":"function","name":"getAllListedNfts","constant":true,"stateMutability":"view","inputs":[],"outputs":[{"type":"tuple[]","name":"","components":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"},{"type":"address","name":"seller"},{"type":"bool","name":"isListed"},{"type":"string","name":"tokenUri"}]}]},
{"type":"function","name":"getNftItem","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"tuple","name":"","components":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"},{"type":"address","name":"seller"},{"type":"bool","name":"isListed"},{"type":"string","name":"tokenUri"}]}]},
{"type":"function","name":"getAuctionsByStatus","constant":true,"stateMutability":"view","inputs":[{"type":"bool","name":"active"}],"outputs":[{"type":"tuple[]","name":"","components":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"minPrice"},{"type":"uint256","name":"highestBid"},{"type":"address","name":"highestBidder"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"endTime"},{"type":"address","name":"auctionCreator"},{"type":"bool","name":"active"},{"type":"string","name":"tokenUri"}]}]},
{"type":"function","name":"auctions","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"tuple","name":"","components":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"minPrice"},{"type":"uint256","name":"highestBid"},{"type":"address","name":"highestBidder"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"endTime"},{"type":"address","name":"auctionCreator"},{"type":"bool","name":"active"},{"type":"string","name":"tokenUri"}]}]},
{"type":"function","name":"getRentalDataByStatus","constant":true,"stateMutability":"view","inputs":[{"type":"bool","name":"active"}],"outputs":[{"type":"tuple[]","name":"","components":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"rentPrice"},{"type":"uint256","name":"deposit"},{"type":"address","name":"renter"},{"type":"address","name":"owner"},{"type":"uint256","name":"startTime"},{"type":"uint256","name":"duration"},{"type":"bool","name":"active"},{"type":"string","name":"tokenUri"},{"type":"bool","name":"status"}]}]},
{"type":"function","name":"getBlindBoxesByStatus","constant":true,"stateMutability":"view","inputs":[{"type":"bool","name":"active"}],"outputs":[{"type":"uint256[]","name":"ids"},{"type":"uint256[]","name":"prices"},{"type":"address[]","name":"creators"},{"type":"bool[]","name":"actives"},{"type":"uint256[]","name":"nftCounts"}]},
{"type":"function","name":"getBlindBox","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"boxId"}],"outputs":[{"type":"uint256","name":"price"},{"type":"address","name":"creator"},{"type":"bool","name":"active"},{"type":"uint256","name":"nftCount"}]},
{"type":"function","name":"calculateListingFee","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"price"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"tokenOfOwnerByIndex","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"tokenURI","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]},
{"type":"function","name":"placeNftOnSale","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[]},
{"type":"function","name":"unlistNft","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"purchaseNft","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"createAuction","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"minPrice"},{"type":"uint256","name":"duration"}],"outputs":[]},
{"type":"function","name":"bid","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"endAuction","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"createRental","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"rentPrice"},{"type":"uint256","name":"deposit"},{"type":"uint256","name":"duration"}],"outputs":[]},
{"type":"function","name":"rentNFT","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"endRental","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"createBlindBox","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"boxId"},{"type":"uint256","name":"price"}],"outputs":[]},
{"type":"function","name":"addNFTToBlindBox","stateMutability":"payable","inputs":[{"type":"uint256","name":"boxId"},{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"buyMysteryBox","stateMutability":"payable","inputs":[{"type":"uint256","name":"boxId"}],"outputs":[]},
{"type":"function","name":"batchMintItems","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"string[]","name":"tokenURIs"},{"type":"uint256[]","name":"royaltyPercentages"},{"type":"uint256[]","name":"prices"}],"outputs":[]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(collectibleABI))
	if err != nil {
		panic("Failed to parse collectible abi")
	}
	CollectibleABI = _abi
}

// RawNftItem is the wire shape of one listed token.
type RawNftItem struct {
	TokenId  *big.Int
	Price    *big.Int
	Seller   common.Address
	IsListed bool
	TokenUri string
}

// RawAuction is the wire shape of one auction entry.
type RawAuction struct {
	TokenId        *big.Int
	MinPrice       *big.Int
	HighestBid     *big.Int
	HighestBidder  common.Address
	StartTime      *big.Int
	EndTime        *big.Int
	AuctionCreator common.Address
	Active         bool
	TokenUri       string
}

// RawRental is the wire shape of one rental entry.
type RawRental struct {
	TokenId   *big.Int
	RentPrice *big.Int
	Deposit   *big.Int
	Renter    common.Address
	Owner     common.Address
	StartTime *big.Int
	Duration  *big.Int
	Active    bool
	TokenUri  string
	Status    bool
}

// RawBlindBoxes is the column-oriented wire shape of a mystery box batch.
// The upstream indexer can emit the same id more than once.
type RawBlindBoxes struct {
	Ids       []*big.Int
	Prices    []*big.Int
	Creators  []common.Address
	Actives   []bool
	NftCounts []*big.Int
}
