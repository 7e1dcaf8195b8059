package usecase

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/log"
	"github.com/mysterymart/goapi/base/metrics"
	"github.com/mysterymart/goapi/base/wei"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/market"
)

const secondsPerDay = 86400

type CoordinatorCfg struct {
	ReadPort  market.ReadPort
	WritePort market.WritePort
	Metadata  domain.MetadataUseCase
}

// coordinator turns user intents into contract transactions. It validates
// locally before anything touches the network, pays exactly what a fresh
// read reports, and never retries a submitted transaction.
type coordinator struct {
	read     market.ReadPort
	write    market.WritePort
	metadata domain.MetadataUseCase
	metrics  metrics.Service
}

func NewCoordinator(cfg *CoordinatorCfg) market.Usecase {
	return &coordinator{
		read:     cfg.ReadPort,
		write:    cfg.WritePort,
		metadata: cfg.Metadata,
		metrics:  metrics.New("market.usecase"),
	}
}

// refreshListings re-reads the sale collection after a submission so cached
// state reconverges with the chain. The result is discarded; only the read
// itself matters. Runs on success and on failure alike.
func (u *coordinator) refreshListings(c bCtx.Ctx) {
	if _, err := u.read.ActiveListings(c); err != nil {
		c.WithField("err", err).Warn("refresh of listings failed")
	}
}

func (u *coordinator) refreshAuctions(c bCtx.Ctx) {
	if _, err := u.read.AuctionsByStatus(c, true); err != nil {
		c.WithField("err", err).Warn("refresh of auctions failed")
	}
}

func (u *coordinator) refreshRentals(c bCtx.Ctx) {
	if _, err := u.read.RentalsByStatus(c, true); err != nil {
		c.WithField("err", err).Warn("refresh of rentals failed")
	}
}

func (u *coordinator) refreshBlindBoxes(c bCtx.Ctx) {
	if _, err := u.read.BlindBoxesByStatus(c, true); err != nil {
		c.WithField("err", err).Warn("refresh of blind boxes failed")
	}
}

func (u *coordinator) List(c bCtx.Ctx, tokenId domain.TokenId, priceDecimal string) error {
	defer u.metrics.BumpTime("time", "op", "list").End()

	price, err := wei.ToPositiveBaseUnits(priceDecimal)
	if err != nil {
		return err
	}
	fee, err := u.read.CalculateListingFee(c, price)
	if err != nil {
		c.WithField("err", err).Error("read.CalculateListingFee failed")
		return err
	}
	defer u.refreshListings(c)
	if _, err := u.write.PlaceNftOnSale(c, tokenId, price, fee); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.PlaceNftOnSale failed")
		return err
	}
	return nil
}

func (u *coordinator) Unlist(c bCtx.Ctx, tokenId domain.TokenId) error {
	defer u.metrics.BumpTime("time", "op", "unlist").End()

	defer u.refreshListings(c)
	if _, err := u.write.UnlistNft(c, tokenId); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.UnlistNft failed")
		return err
	}
	return nil
}

func (u *coordinator) Purchase(c bCtx.Ctx, tokenId domain.TokenId) error {
	defer u.metrics.BumpTime("time", "op", "purchase").End()

	// fresh read; payment is exactly the price the chain reports now
	listing, err := u.read.NftItem(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("read.NftItem failed")
		return err
	}
	if !listing.IsListed {
		return domain.ErrValidation
	}
	defer u.refreshListings(c)
	if _, err := u.write.PurchaseNft(c, tokenId, listing.Price); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.PurchaseNft failed")
		return err
	}
	return nil
}

func (u *coordinator) CreateAuction(c bCtx.Ctx, tokenId domain.TokenId, minPriceDecimal string, endTime time.Time) error {
	defer u.metrics.BumpTime("time", "op", "createAuction").End()

	minPrice, err := wei.ToPositiveBaseUnits(minPriceDecimal)
	if err != nil {
		return err
	}
	// duration is recomputed at submission, not at intent time
	duration := int64(time.Until(endTime).Seconds())
	if duration <= 0 {
		return domain.ErrValidation
	}
	defer u.refreshAuctions(c)
	if _, err := u.write.CreateAuction(c, tokenId, minPrice, duration); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.CreateAuction failed")
		return err
	}
	return nil
}

func (u *coordinator) PlaceBid(c bCtx.Ctx, tokenId domain.TokenId, amountDecimal string) error {
	defer u.metrics.BumpTime("time", "op", "placeBid").End()

	amount, err := wei.ToPositiveBaseUnits(amountDecimal)
	if err != nil {
		return err
	}
	auction, err := u.read.AuctionOf(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("read.AuctionOf failed")
		return err
	}
	if !auction.Active {
		return domain.ErrValidation
	}
	// a losing bid is rejected here, before any gas is burned
	if auction.HasBid() {
		if amount.Cmp(auction.HighestBid) <= 0 {
			return domain.ErrValidation
		}
	} else if amount.Cmp(auction.MinPrice) < 0 {
		return domain.ErrValidation
	}
	defer u.refreshAuctions(c)
	if _, err := u.write.Bid(c, tokenId, amount); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.Bid failed")
		return err
	}
	return nil
}

func (u *coordinator) EndAuction(c bCtx.Ctx, tokenId domain.TokenId) error {
	defer u.metrics.BumpTime("time", "op", "endAuction").End()

	defer u.refreshAuctions(c)
	if _, err := u.write.EndAuction(c, tokenId); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.EndAuction failed")
		return err
	}
	return nil
}

func (u *coordinator) CreateRental(c bCtx.Ctx, tokenId domain.TokenId, rentPriceDecimal, depositDecimal string, durationDays int64) error {
	defer u.metrics.BumpTime("time", "op", "createRental").End()

	rentPrice, err := wei.ToPositiveBaseUnits(rentPriceDecimal)
	if err != nil {
		return err
	}
	deposit, err := wei.ToPositiveBaseUnits(depositDecimal)
	if err != nil {
		return err
	}
	if durationDays <= 0 {
		return domain.ErrValidation
	}
	defer u.refreshRentals(c)
	if _, err := u.write.CreateRental(c, tokenId, rentPrice, deposit, durationDays*secondsPerDay); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.CreateRental failed")
		return err
	}
	return nil
}

func (u *coordinator) Rent(c bCtx.Ctx, tokenId domain.TokenId) error {
	defer u.metrics.BumpTime("time", "op", "rent").End()

	rentals, err := u.read.RentalsByStatus(c, true)
	if err != nil {
		c.WithField("err", err).Error("read.RentalsByStatus failed")
		return err
	}
	var rental *market.Rental
	for _, r := range rentals {
		if r.TokenId == tokenId {
			rental = r
			break
		}
	}
	if rental == nil {
		return domain.ErrNotFound
	}
	payment := new(big.Int).Add(rental.RentPrice, rental.Deposit)
	defer u.refreshRentals(c)
	if _, err := u.write.RentNft(c, tokenId, payment); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.RentNft failed")
		return err
	}
	return nil
}

func (u *coordinator) EndRental(c bCtx.Ctx, tokenId domain.TokenId) error {
	defer u.metrics.BumpTime("time", "op", "endRental").End()

	defer u.refreshRentals(c)
	if _, err := u.write.EndRental(c, tokenId); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.EndRental failed")
		return err
	}
	return nil
}

// newBoxId derives a 64-bit box id from the current time and a random uuid.
// Uniqueness is arbitrated by the contract, not here.
func newBoxId() domain.BoxId {
	seed := fmt.Sprintf("%d%s", time.Now().UnixNano(), uuid.NewString())
	digest := crypto.Keccak256([]byte(seed))
	return domain.BoxId(fmt.Sprintf("%x", digest)[:16])
}

func (u *coordinator) CreateBlindBox(c bCtx.Ctx, priceDecimal string) (domain.BoxId, error) {
	defer u.metrics.BumpTime("time", "op", "createBlindBox").End()

	price, err := wei.ToPositiveBaseUnits(priceDecimal)
	if err != nil {
		return "", err
	}
	boxId := newBoxId()
	defer u.refreshBlindBoxes(c)
	if _, err := u.write.CreateBlindBox(c, boxId, price); err != nil {
		c.WithFields(log.Fields{
			"boxId": boxId,
			"err":   err,
		}).Error("write.CreateBlindBox failed")
		return "", err
	}
	return boxId, nil
}

func (u *coordinator) AddNftToBlindBox(c bCtx.Ctx, boxId domain.BoxId, tokenId domain.TokenId) error {
	defer u.metrics.BumpTime("time", "op", "addNftToBlindBox").End()

	if _, err := boxId.ToBigInt(); err != nil {
		return domain.ErrValidation
	}
	if _, err := tokenId.ToBigInt(); err != nil {
		return domain.ErrValidation
	}
	defer u.refreshBlindBoxes(c)
	if _, err := u.write.AddNftToBlindBox(c, boxId, tokenId); err != nil {
		c.WithFields(log.Fields{
			"boxId":   boxId,
			"tokenId": tokenId,
			"err":     err,
		}).Error("write.AddNftToBlindBox failed")
		return err
	}
	return nil
}

func (u *coordinator) BuyBlindBox(c bCtx.Ctx, boxId domain.BoxId) error {
	defer u.metrics.BumpTime("time", "op", "buyBlindBox").End()

	box, err := u.read.BlindBoxOf(c, boxId)
	if err != nil {
		c.WithFields(log.Fields{
			"boxId": boxId,
			"err":   err,
		}).Error("read.BlindBoxOf failed")
		return err
	}
	// an empty or closed box is rejected locally, no gas burned
	if !box.Active || box.NftCount == 0 {
		return domain.ErrValidation
	}
	defer u.refreshBlindBoxes(c)
	if _, err := u.write.BuyMysteryBox(c, boxId, box.Price); err != nil {
		c.WithFields(log.Fields{
			"boxId": boxId,
			"err":   err,
		}).Error("write.BuyMysteryBox failed")
		return err
	}
	return nil
}

func (u *coordinator) ActiveListings(c bCtx.Ctx) ([]*market.Listing, error) {
	listings, err := u.read.ActiveListings(c)
	if err != nil {
		return nil, err
	}
	uris := make([]string, len(listings))
	for i, l := range listings {
		uris[i] = l.TokenURI
	}
	for i, m := range u.metadata.ResolveAll(c, uris) {
		listings[i].Metadata = m
	}
	return listings, nil
}

func (u *coordinator) ActiveAuctions(c bCtx.Ctx) ([]*market.Auction, error) {
	auctions, err := u.read.AuctionsByStatus(c, true)
	if err != nil {
		return nil, err
	}
	uris := make([]string, len(auctions))
	for i, a := range auctions {
		uris[i] = a.TokenURI
	}
	for i, m := range u.metadata.ResolveAll(c, uris) {
		auctions[i].Metadata = m
	}
	return auctions, nil
}

func (u *coordinator) ActiveRentals(c bCtx.Ctx) ([]*market.Rental, error) {
	rentals, err := u.read.RentalsByStatus(c, true)
	if err != nil {
		return nil, err
	}
	uris := make([]string, len(rentals))
	for i, r := range rentals {
		uris[i] = r.TokenURI
	}
	for i, m := range u.metadata.ResolveAll(c, uris) {
		rentals[i].Metadata = m
	}
	return rentals, nil
}

func (u *coordinator) BlindBoxes(c bCtx.Ctx, active bool) ([]*market.BlindBox, error) {
	return u.read.BlindBoxesByStatus(c, active)
}

func (u *coordinator) NftItem(c bCtx.Ctx, tokenId domain.TokenId) (*market.Listing, error) {
	listing, err := u.read.NftItem(c, tokenId)
	if err != nil {
		return nil, err
	}
	if metadata, err := u.metadata.Resolve(c, listing.TokenURI); err == nil {
		listing.Metadata = metadata
	}
	return listing, nil
}
