package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/mysterymart/goapi/base/abi"
	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/service/chain"
)

// CollectibleContract is a typed wrapper over the marketplace contract. Read
// methods return the raw wire shapes untouched; decoding into domain records
// is the reader layer's job.
type CollectibleContract interface {
	GetAllListedNfts(c bCtx.Ctx) ([]baseabi.RawNftItem, error)
	GetNftItem(c bCtx.Ctx, tokenId *big.Int) (*baseabi.RawNftItem, error)
	GetAuctionsByStatus(c bCtx.Ctx, active bool) ([]baseabi.RawAuction, error)
	GetAuction(c bCtx.Ctx, tokenId *big.Int) (*baseabi.RawAuction, error)
	GetRentalsByStatus(c bCtx.Ctx, active bool) ([]baseabi.RawRental, error)
	GetBlindBoxesByStatus(c bCtx.Ctx, active bool) (*baseabi.RawBlindBoxes, error)
	GetBlindBox(c bCtx.Ctx, boxId *big.Int) (*baseabi.RawBlindBoxes, error)
	CalculateListingFee(c bCtx.Ctx, price *big.Int) (*big.Int, error)
	BalanceOf(c bCtx.Ctx, owner common.Address) (*big.Int, error)
	TokenOfOwnerByIndex(c bCtx.Ctx, owner common.Address, index *big.Int) (*big.Int, error)
	TokenURI(c bCtx.Ctx, tokenId *big.Int) (string, error)

	PlaceNftOnSale(c bCtx.Ctx, tokenId, price, listingFee *big.Int) (domain.TxHash, error)
	UnlistNft(c bCtx.Ctx, tokenId *big.Int) (domain.TxHash, error)
	PurchaseNft(c bCtx.Ctx, tokenId, payment *big.Int) (domain.TxHash, error)
	CreateAuction(c bCtx.Ctx, tokenId, minPrice, duration *big.Int) (domain.TxHash, error)
	Bid(c bCtx.Ctx, tokenId, amount *big.Int) (domain.TxHash, error)
	EndAuction(c bCtx.Ctx, tokenId *big.Int) (domain.TxHash, error)
	CreateRental(c bCtx.Ctx, tokenId, rentPrice, deposit, duration *big.Int) (domain.TxHash, error)
	RentNft(c bCtx.Ctx, tokenId, payment *big.Int) (domain.TxHash, error)
	EndRental(c bCtx.Ctx, tokenId *big.Int) (domain.TxHash, error)
	CreateBlindBox(c bCtx.Ctx, boxId, price *big.Int) (domain.TxHash, error)
	AddNftToBlindBox(c bCtx.Ctx, boxId, tokenId *big.Int) (domain.TxHash, error)
	BuyMysteryBox(c bCtx.Ctx, boxId, payment *big.Int) (domain.TxHash, error)
	BatchMintItems(c bCtx.Ctx, to common.Address, tokenURIs []string, royaltyPercentages, prices []*big.Int) (domain.TxHash, error)
}

type collectible struct {
	chainService chain.Client
	abi          ethabi.ABI
	addr         common.Address
}

func NewCollectible(chainService chain.Client, addr common.Address) CollectibleContract {
	return &collectible{
		abi:          baseabi.CollectibleABI,
		chainService: chainService,
		addr:         addr,
	}
}

func (e *collectible) GetAllListedNfts(c bCtx.Ctx) ([]baseabi.RawNftItem, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "getAllListedNfts")
	if err != nil {
		return nil, err
	}
	out := *ethabi.ConvertType(unpacked[0], new([]baseabi.RawNftItem)).(*[]baseabi.RawNftItem)
	return out, nil
}

func (e *collectible) GetNftItem(c bCtx.Ctx, tokenId *big.Int) (*baseabi.RawNftItem, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "getNftItem", tokenId)
	if err != nil {
		return nil, err
	}
	out := *ethabi.ConvertType(unpacked[0], new(baseabi.RawNftItem)).(*baseabi.RawNftItem)
	return &out, nil
}

func (e *collectible) GetAuctionsByStatus(c bCtx.Ctx, active bool) ([]baseabi.RawAuction, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "getAuctionsByStatus", active)
	if err != nil {
		return nil, err
	}
	out := *ethabi.ConvertType(unpacked[0], new([]baseabi.RawAuction)).(*[]baseabi.RawAuction)
	return out, nil
}

func (e *collectible) GetAuction(c bCtx.Ctx, tokenId *big.Int) (*baseabi.RawAuction, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "auctions", tokenId)
	if err != nil {
		return nil, err
	}
	out := *ethabi.ConvertType(unpacked[0], new(baseabi.RawAuction)).(*baseabi.RawAuction)
	return &out, nil
}

func (e *collectible) GetRentalsByStatus(c bCtx.Ctx, active bool) ([]baseabi.RawRental, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "getRentalDataByStatus", active)
	if err != nil {
		return nil, err
	}
	out := *ethabi.ConvertType(unpacked[0], new([]baseabi.RawRental)).(*[]baseabi.RawRental)
	return out, nil
}

func (e *collectible) GetBlindBoxesByStatus(c bCtx.Ctx, active bool) (*baseabi.RawBlindBoxes, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "getBlindBoxesByStatus", active)
	if err != nil {
		return nil, err
	}
	return &baseabi.RawBlindBoxes{
		Ids:       *ethabi.ConvertType(unpacked[0], new([]*big.Int)).(*[]*big.Int),
		Prices:    *ethabi.ConvertType(unpacked[1], new([]*big.Int)).(*[]*big.Int),
		Creators:  *ethabi.ConvertType(unpacked[2], new([]common.Address)).(*[]common.Address),
		Actives:   *ethabi.ConvertType(unpacked[3], new([]bool)).(*[]bool),
		NftCounts: *ethabi.ConvertType(unpacked[4], new([]*big.Int)).(*[]*big.Int),
	}, nil
}

func (e *collectible) GetBlindBox(c bCtx.Ctx, boxId *big.Int) (*baseabi.RawBlindBoxes, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "getBlindBox", boxId)
	if err != nil {
		return nil, err
	}
	// single box comes back as one-element columns to keep one wire shape
	return &baseabi.RawBlindBoxes{
		Ids:       []*big.Int{boxId},
		Prices:    []*big.Int{unpacked[0].(*big.Int)},
		Creators:  []common.Address{unpacked[1].(common.Address)},
		Actives:   []bool{unpacked[2].(bool)},
		NftCounts: []*big.Int{unpacked[3].(*big.Int)},
	}, nil
}

func (e *collectible) CalculateListingFee(c bCtx.Ctx, price *big.Int) (*big.Int, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "calculateListingFee", price)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *collectible) BalanceOf(c bCtx.Ctx, owner common.Address) (*big.Int, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *collectible) TokenOfOwnerByIndex(c bCtx.Ctx, owner common.Address, index *big.Int) (*big.Int, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "tokenOfOwnerByIndex", owner, index)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *collectible) TokenURI(c bCtx.Ctx, tokenId *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(c, e.addr, e.abi, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *collectible) PlaceNftOnSale(c bCtx.Ctx, tokenId, price, listingFee *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, listingFee, e.abi, "placeNftOnSale", tokenId, price)
}

func (e *collectible) UnlistNft(c bCtx.Ctx, tokenId *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, nil, e.abi, "unlistNft", tokenId)
}

func (e *collectible) PurchaseNft(c bCtx.Ctx, tokenId, payment *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, payment, e.abi, "purchaseNft", tokenId)
}

func (e *collectible) CreateAuction(c bCtx.Ctx, tokenId, minPrice, duration *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, nil, e.abi, "createAuction", tokenId, minPrice, duration)
}

func (e *collectible) Bid(c bCtx.Ctx, tokenId, amount *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, amount, e.abi, "bid", tokenId)
}

func (e *collectible) EndAuction(c bCtx.Ctx, tokenId *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, nil, e.abi, "endAuction", tokenId)
}

func (e *collectible) CreateRental(c bCtx.Ctx, tokenId, rentPrice, deposit, duration *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, nil, e.abi, "createRental", tokenId, rentPrice, deposit, duration)
}

func (e *collectible) RentNft(c bCtx.Ctx, tokenId, payment *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, payment, e.abi, "rentNFT", tokenId)
}

func (e *collectible) EndRental(c bCtx.Ctx, tokenId *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, nil, e.abi, "endRental", tokenId)
}

func (e *collectible) CreateBlindBox(c bCtx.Ctx, boxId, price *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, nil, e.abi, "createBlindBox", boxId, price)
}

func (e *collectible) AddNftToBlindBox(c bCtx.Ctx, boxId, tokenId *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, big.NewInt(0), e.abi, "addNFTToBlindBox", boxId, tokenId)
}

func (e *collectible) BuyMysteryBox(c bCtx.Ctx, boxId, payment *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, payment, e.abi, "buyMysteryBox", boxId)
}

func (e *collectible) BatchMintItems(c bCtx.Ctx, to common.Address, tokenURIs []string, royaltyPercentages, prices []*big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(c, e.addr, nil, e.abi, "batchMintItems", to, tokenURIs, royaltyPercentages, prices)
}
