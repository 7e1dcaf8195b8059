package repository

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/log"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/market"
	"github.com/mysterymart/goapi/service/chain"
	"github.com/mysterymart/goapi/service/chain/contract"
	"github.com/mysterymart/goapi/stores/market/reader"
)

type repo struct {
	contract contract.CollectibleContract
}

// NewReadRepo backs market.ReadPort with eth_call reads against the
// collectible contract.
func NewReadRepo(c contract.CollectibleContract) market.ReadPort {
	return &repo{contract: c}
}

// NewWriteRepo backs market.WritePort with signed transactions against the
// collectible contract.
func NewWriteRepo(c contract.CollectibleContract) market.WritePort {
	return &repo{contract: c}
}

// readErr folds any chain failure into ErrReadUnavailable. Callers treat it
// as "no data yet", not as a user-facing failure.
func readErr(c bCtx.Ctx, method string, err error) error {
	c.WithFields(log.Fields{
		"method": method,
		"err":    err,
	}).Error("contract read failed")
	return xerrors.Errorf("%s: %w", method, domain.ErrReadUnavailable)
}

// writeErr maps a revert, either from gas estimation or from the mined
// receipt, onto ErrTransactionFailed. Anything else passes through.
func writeErr(c bCtx.Ctx, method string, err error) error {
	c.WithFields(log.Fields{
		"method": method,
		"err":    err,
	}).Error("contract write failed")
	if errors.Is(err, chain.ErrReverted) || strings.Contains(err.Error(), "execution reverted") {
		return xerrors.Errorf("%s: %w", method, domain.ErrTransactionFailed)
	}
	return err
}

func (r *repo) ActiveListings(c bCtx.Ctx) ([]*market.Listing, error) {
	raws, err := r.contract.GetAllListedNfts(c)
	if err != nil {
		return nil, readErr(c, "getAllListedNfts", err)
	}
	return reader.ToListings(raws), nil
}

func (r *repo) AuctionsByStatus(c bCtx.Ctx, active bool) ([]*market.Auction, error) {
	raws, err := r.contract.GetAuctionsByStatus(c, active)
	if err != nil {
		return nil, readErr(c, "getAuctionsByStatus", err)
	}
	return reader.ToAuctions(raws), nil
}

func (r *repo) RentalsByStatus(c bCtx.Ctx, active bool) ([]*market.Rental, error) {
	raws, err := r.contract.GetRentalsByStatus(c, active)
	if err != nil {
		return nil, readErr(c, "getRentalDataByStatus", err)
	}
	return reader.ToRentals(raws), nil
}

func (r *repo) BlindBoxesByStatus(c bCtx.Ctx, active bool) ([]*market.BlindBox, error) {
	raw, err := r.contract.GetBlindBoxesByStatus(c, active)
	if err != nil {
		return nil, readErr(c, "getBlindBoxesByStatus", err)
	}
	return reader.ToBlindBoxes(raw), nil
}

func (r *repo) NftItem(c bCtx.Ctx, tokenId domain.TokenId) (*market.Listing, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, domain.ErrValidation
	}
	raw, err := r.contract.GetNftItem(c, id)
	if err != nil {
		return nil, readErr(c, "getNftItem", err)
	}
	if raw.TokenId == nil || raw.TokenId.Sign() == 0 {
		return nil, domain.ErrNotFound
	}
	return reader.ToListing(raw), nil
}

func (r *repo) AuctionOf(c bCtx.Ctx, tokenId domain.TokenId) (*market.Auction, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, domain.ErrValidation
	}
	raw, err := r.contract.GetAuction(c, id)
	if err != nil {
		return nil, readErr(c, "auctions", err)
	}
	if raw.TokenId == nil || raw.TokenId.Sign() == 0 {
		return nil, domain.ErrNotFound
	}
	return reader.ToAuction(raw), nil
}

func (r *repo) BlindBoxOf(c bCtx.Ctx, boxId domain.BoxId) (*market.BlindBox, error) {
	id, err := boxId.ToBigInt()
	if err != nil {
		return nil, domain.ErrValidation
	}
	raw, err := r.contract.GetBlindBox(c, id)
	if err != nil {
		return nil, readErr(c, "getBlindBox", err)
	}
	boxes := reader.ToBlindBoxes(raw)
	if len(boxes) == 0 || boxes[0].Creator.IsEmpty() {
		return nil, domain.ErrNotFound
	}
	return boxes[0], nil
}

func (r *repo) CalculateListingFee(c bCtx.Ctx, price *big.Int) (*big.Int, error) {
	fee, err := r.contract.CalculateListingFee(c, price)
	if err != nil {
		return nil, readErr(c, "calculateListingFee", err)
	}
	return fee, nil
}

func (r *repo) BalanceOf(c bCtx.Ctx, owner domain.Address) (*big.Int, error) {
	balance, err := r.contract.BalanceOf(c, common.HexToAddress(string(owner)))
	if err != nil {
		return nil, readErr(c, "balanceOf", err)
	}
	return balance, nil
}

func (r *repo) TokenOfOwnerByIndex(c bCtx.Ctx, owner domain.Address, index *big.Int) (domain.TokenId, error) {
	id, err := r.contract.TokenOfOwnerByIndex(c, common.HexToAddress(string(owner)), index)
	if err != nil {
		return "", readErr(c, "tokenOfOwnerByIndex", err)
	}
	return domain.TokenId(id.String()), nil
}

func (r *repo) TokenURI(c bCtx.Ctx, tokenId domain.TokenId) (string, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	uri, err := r.contract.TokenURI(c, id)
	if err != nil {
		return "", readErr(c, "tokenURI", err)
	}
	return uri, nil
}

func (r *repo) PlaceNftOnSale(c bCtx.Ctx, tokenId domain.TokenId, price, listingFee *big.Int) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.PlaceNftOnSale(c, id, price, listingFee)
	if err != nil {
		return hash, writeErr(c, "placeNftOnSale", err)
	}
	return hash, nil
}

func (r *repo) UnlistNft(c bCtx.Ctx, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.UnlistNft(c, id)
	if err != nil {
		return hash, writeErr(c, "unlistNft", err)
	}
	return hash, nil
}

func (r *repo) PurchaseNft(c bCtx.Ctx, tokenId domain.TokenId, payment *big.Int) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.PurchaseNft(c, id, payment)
	if err != nil {
		return hash, writeErr(c, "purchaseNft", err)
	}
	return hash, nil
}

func (r *repo) CreateAuction(c bCtx.Ctx, tokenId domain.TokenId, minPrice *big.Int, durationSeconds int64) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.CreateAuction(c, id, minPrice, big.NewInt(durationSeconds))
	if err != nil {
		return hash, writeErr(c, "createAuction", err)
	}
	return hash, nil
}

func (r *repo) Bid(c bCtx.Ctx, tokenId domain.TokenId, amount *big.Int) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.Bid(c, id, amount)
	if err != nil {
		return hash, writeErr(c, "bid", err)
	}
	return hash, nil
}

func (r *repo) EndAuction(c bCtx.Ctx, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.EndAuction(c, id)
	if err != nil {
		return hash, writeErr(c, "endAuction", err)
	}
	return hash, nil
}

func (r *repo) CreateRental(c bCtx.Ctx, tokenId domain.TokenId, rentPrice, deposit *big.Int, durationSeconds int64) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.CreateRental(c, id, rentPrice, deposit, big.NewInt(durationSeconds))
	if err != nil {
		return hash, writeErr(c, "createRental", err)
	}
	return hash, nil
}

func (r *repo) RentNft(c bCtx.Ctx, tokenId domain.TokenId, payment *big.Int) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.RentNft(c, id, payment)
	if err != nil {
		return hash, writeErr(c, "rentNFT", err)
	}
	return hash, nil
}

func (r *repo) EndRental(c bCtx.Ctx, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.EndRental(c, id)
	if err != nil {
		return hash, writeErr(c, "endRental", err)
	}
	return hash, nil
}

func (r *repo) CreateBlindBox(c bCtx.Ctx, boxId domain.BoxId, price *big.Int) (domain.TxHash, error) {
	id, err := boxId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.CreateBlindBox(c, id, price)
	if err != nil {
		return hash, writeErr(c, "createBlindBox", err)
	}
	return hash, nil
}

func (r *repo) AddNftToBlindBox(c bCtx.Ctx, boxId domain.BoxId, tokenId domain.TokenId) (domain.TxHash, error) {
	bid, err := boxId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	tid, err := tokenId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.AddNftToBlindBox(c, bid, tid)
	if err != nil {
		return hash, writeErr(c, "addNFTToBlindBox", err)
	}
	return hash, nil
}

func (r *repo) BuyMysteryBox(c bCtx.Ctx, boxId domain.BoxId, payment *big.Int) (domain.TxHash, error) {
	id, err := boxId.ToBigInt()
	if err != nil {
		return "", domain.ErrValidation
	}
	hash, err := r.contract.BuyMysteryBox(c, id, payment)
	if err != nil {
		return hash, writeErr(c, "buyMysteryBox", err)
	}
	return hash, nil
}

func (r *repo) BatchMintItems(c bCtx.Ctx, owner domain.Address, tokenURIs []string, royaltyPercentages, prices []*big.Int) (domain.TxHash, error) {
	hash, err := r.contract.BatchMintItems(c, common.HexToAddress(string(owner)), tokenURIs, royaltyPercentages, prices)
	if err != nil {
		return hash, writeErr(c, "batchMintItems", err)
	}
	return hash, nil
}
