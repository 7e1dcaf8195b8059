package usecase

import (
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/domain"
	domainMocks "github.com/mysterymart/goapi/domain/mocks"
	"github.com/mysterymart/goapi/domain/market"
	"github.com/mysterymart/goapi/domain/market/mocks"
)

type coordinatorTestSuite struct {
	suite.Suite

	read     *mocks.ReadPort
	write    *mocks.WritePort
	metadata *domainMocks.MetadataUseCase
	uc       market.Usecase
}

func Test(t *testing.T) {
	suite.Run(t, new(coordinatorTestSuite))
}

func (s *coordinatorTestSuite) SetupTest() {
	s.read = &mocks.ReadPort{}
	s.write = &mocks.WritePort{}
	s.metadata = &domainMocks.MetadataUseCase{}
	s.uc = NewCoordinator(&CoordinatorCfg{
		ReadPort:  s.read,
		WritePort: s.write,
		Metadata:  s.metadata,
	})
}

func (s *coordinatorTestSuite) TestListInvalidPrice() {
	ctx := bCtx.Background()
	for _, price := range []string{"", "0", "-1", "abc", "0.0000000000000000001"} {
		err := s.uc.List(ctx, "1", price)
		s.ErrorIs(err, domain.ErrInvalidAmount)
	}
	s.read.AssertNotCalled(s.T(), "CalculateListingFee", mock.Anything, mock.Anything)
	s.write.AssertNotCalled(s.T(), "PlaceNftOnSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *coordinatorTestSuite) TestListPaysListingFee() {
	ctx := bCtx.Background()
	price, _ := new(big.Int).SetString("1000000000000000000", 10)
	fee := big.NewInt(25)

	s.read.On("CalculateListingFee", mock.Anything, price).Return(fee, nil)
	s.write.On("PlaceNftOnSale", mock.Anything, domain.TokenId("1"), price, fee).Return(domain.TxHash("0xabc"), nil)
	s.read.On("ActiveListings", mock.Anything).Return(nil, nil)

	s.NoError(s.uc.List(ctx, "1", "1"))
	s.write.AssertExpectations(s.T())
	s.read.AssertCalled(s.T(), "ActiveListings", mock.Anything)
}

func (s *coordinatorTestSuite) TestPurchasePaysRecordedPrice() {
	ctx := bCtx.Background()
	price := big.NewInt(5000)

	s.read.On("NftItem", mock.Anything, domain.TokenId("3")).Return(&market.Listing{
		TokenId:  "3",
		Price:    price,
		IsListed: true,
	}, nil)
	s.write.On("PurchaseNft", mock.Anything, domain.TokenId("3"), price).Return(domain.TxHash("0xabc"), nil)
	s.read.On("ActiveListings", mock.Anything).Return(nil, nil)

	s.NoError(s.uc.Purchase(ctx, "3"))
	s.write.AssertExpectations(s.T())
}

func (s *coordinatorTestSuite) TestPurchaseUnlisted() {
	ctx := bCtx.Background()

	s.read.On("NftItem", mock.Anything, domain.TokenId("3")).Return(&market.Listing{
		TokenId:  "3",
		Price:    big.NewInt(5000),
		IsListed: false,
	}, nil)

	s.ErrorIs(s.uc.Purchase(ctx, "3"), domain.ErrValidation)
	s.write.AssertNotCalled(s.T(), "PurchaseNft", mock.Anything, mock.Anything, mock.Anything)
}

func (s *coordinatorTestSuite) TestPurchaseRevertSurfacesAndRefreshes() {
	ctx := bCtx.Background()
	price := big.NewInt(5000)

	s.read.On("NftItem", mock.Anything, domain.TokenId("3")).Return(&market.Listing{
		TokenId:  "3",
		Price:    price,
		IsListed: true,
	}, nil)
	s.write.On("PurchaseNft", mock.Anything, domain.TokenId("3"), price).
		Return(domain.TxHash(""), domain.ErrTransactionFailed)
	s.read.On("ActiveListings", mock.Anything).Return(nil, nil)

	s.ErrorIs(s.uc.Purchase(ctx, "3"), domain.ErrTransactionFailed)
	// failure still re-reads so cached state reconverges
	s.read.AssertCalled(s.T(), "ActiveListings", mock.Anything)
}

func (s *coordinatorTestSuite) TestCreateAuctionDuration() {
	ctx := bCtx.Background()
	minPrice, _ := new(big.Int).SetString("500000000000000000", 10)

	s.write.On("CreateAuction", mock.Anything, domain.TokenId("9"), minPrice, mock.MatchedBy(func(d int64) bool {
		return d > 3595 && d <= 3600
	})).Return(domain.TxHash("0xabc"), nil)
	s.read.On("AuctionsByStatus", mock.Anything, true).Return(nil, nil)

	s.NoError(s.uc.CreateAuction(ctx, "9", "0.5", time.Now().Add(time.Hour)))
	s.write.AssertExpectations(s.T())
}

func (s *coordinatorTestSuite) TestCreateAuctionEndTimeInPast() {
	ctx := bCtx.Background()
	err := s.uc.CreateAuction(ctx, "9", "0.5", time.Now().Add(-time.Minute))
	s.ErrorIs(err, domain.ErrValidation)
	s.write.AssertNotCalled(s.T(), "CreateAuction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *coordinatorTestSuite) auctionWithHighestBid(bid string) *market.Auction {
	highest, _ := new(big.Int).SetString(bid, 10)
	return &market.Auction{
		TokenId:       "9",
		MinPrice:      big.NewInt(1),
		HighestBid:    highest,
		HighestBidder: "0x8ba1f109551bd432803012645ac136ddd64dba72",
		Active:        true,
	}
}

func (s *coordinatorTestSuite) TestPlaceBidTooLow() {
	ctx := bCtx.Background()

	// highest bid 1.5, bid 1.5 -> rejected locally, no gas burned
	s.read.On("AuctionOf", mock.Anything, domain.TokenId("9")).
		Return(s.auctionWithHighestBid("1500000000000000000"), nil)

	s.ErrorIs(s.uc.PlaceBid(ctx, "9", "1.5"), domain.ErrValidation)
	s.write.AssertNotCalled(s.T(), "Bid", mock.Anything, mock.Anything, mock.Anything)
}

func (s *coordinatorTestSuite) TestPlaceBidHigherProceeds() {
	ctx := bCtx.Background()
	amount, _ := new(big.Int).SetString("1600000000000000000", 10)

	s.read.On("AuctionOf", mock.Anything, domain.TokenId("9")).
		Return(s.auctionWithHighestBid("1500000000000000000"), nil)
	s.write.On("Bid", mock.Anything, domain.TokenId("9"), amount).Return(domain.TxHash("0xabc"), nil)
	s.read.On("AuctionsByStatus", mock.Anything, true).Return(nil, nil)

	s.NoError(s.uc.PlaceBid(ctx, "9", "1.6"))
	s.write.AssertExpectations(s.T())
}

func (s *coordinatorTestSuite) TestPlaceBidBelowMinPrice() {
	ctx := bCtx.Background()

	s.read.On("AuctionOf", mock.Anything, domain.TokenId("9")).Return(&market.Auction{
		TokenId:       "9",
		MinPrice:      big.NewInt(2000),
		HighestBid:    big.NewInt(0),
		HighestBidder: domain.EmptyAddress,
		Active:        true,
	}, nil)

	s.ErrorIs(s.uc.PlaceBid(ctx, "9", "0.000000000000001"), domain.ErrValidation)
	s.write.AssertNotCalled(s.T(), "Bid", mock.Anything, mock.Anything, mock.Anything)
}

func (s *coordinatorTestSuite) TestCreateRentalDuration() {
	ctx := bCtx.Background()
	rentPrice, _ := new(big.Int).SetString("100000000000000000", 10)
	deposit, _ := new(big.Int).SetString("1000000000000000000", 10)

	s.write.On("CreateRental", mock.Anything, domain.TokenId("4"), rentPrice, deposit, int64(7*86400)).
		Return(domain.TxHash("0xabc"), nil)
	s.read.On("RentalsByStatus", mock.Anything, true).Return(nil, nil)

	s.NoError(s.uc.CreateRental(ctx, "4", "0.1", "1", 7))
	s.write.AssertExpectations(s.T())
}

func (s *coordinatorTestSuite) TestRentPaysRentPlusDeposit() {
	ctx := bCtx.Background()

	s.read.On("RentalsByStatus", mock.Anything, true).Return([]*market.Rental{
		{TokenId: "4", RentPrice: big.NewInt(100), Deposit: big.NewInt(900), Active: true},
	}, nil)
	s.write.On("RentNft", mock.Anything, domain.TokenId("4"), big.NewInt(1000)).
		Return(domain.TxHash("0xabc"), nil)

	s.NoError(s.uc.Rent(ctx, "4"))
	s.write.AssertExpectations(s.T())
}

func (s *coordinatorTestSuite) TestRentUnknownToken() {
	ctx := bCtx.Background()

	s.read.On("RentalsByStatus", mock.Anything, true).Return([]*market.Rental{}, nil)

	s.ErrorIs(s.uc.Rent(ctx, "4"), domain.ErrNotFound)
	s.write.AssertNotCalled(s.T(), "RentNft", mock.Anything, mock.Anything, mock.Anything)
}

func (s *coordinatorTestSuite) TestCreateBlindBoxId() {
	ctx := bCtx.Background()
	price, _ := new(big.Int).SetString("2000000000000000000", 10)

	s.write.On("CreateBlindBox", mock.Anything, mock.MatchedBy(func(id domain.BoxId) bool {
		return regexp.MustCompile("^[0-9a-f]{16}$").MatchString(string(id))
	}), price).Return(domain.TxHash("0xabc"), nil)
	s.read.On("BlindBoxesByStatus", mock.Anything, true).Return(nil, nil)

	boxId, err := s.uc.CreateBlindBox(ctx, "2")
	s.NoError(err)
	s.Len(string(boxId), 16)
	s.write.AssertExpectations(s.T())
}

func (s *coordinatorTestSuite) TestBuyBlindBoxEmpty() {
	ctx := bCtx.Background()

	s.read.On("BlindBoxOf", mock.Anything, domain.BoxId("1a2b3c4d5e6f7081")).Return(&market.BlindBox{
		Id:       "1a2b3c4d5e6f7081",
		Price:    big.NewInt(100),
		Active:   true,
		NftCount: 0,
	}, nil)

	s.ErrorIs(s.uc.BuyBlindBox(ctx, "1a2b3c4d5e6f7081"), domain.ErrValidation)
	s.write.AssertNotCalled(s.T(), "BuyMysteryBox", mock.Anything, mock.Anything, mock.Anything)
}

func (s *coordinatorTestSuite) TestBuyBlindBoxPaysBoxPrice() {
	ctx := bCtx.Background()
	price := big.NewInt(100)

	s.read.On("BlindBoxOf", mock.Anything, domain.BoxId("1a2b3c4d5e6f7081")).Return(&market.BlindBox{
		Id:       "1a2b3c4d5e6f7081",
		Price:    price,
		Active:   true,
		NftCount: 2,
	}, nil)
	s.write.On("BuyMysteryBox", mock.Anything, domain.BoxId("1a2b3c4d5e6f7081"), price).
		Return(domain.TxHash("0xabc"), nil)
	s.read.On("BlindBoxesByStatus", mock.Anything, true).Return(nil, nil)

	s.NoError(s.uc.BuyBlindBox(ctx, "1a2b3c4d5e6f7081"))
	s.write.AssertExpectations(s.T())
}

func (s *coordinatorTestSuite) TestActiveListingsDecorated() {
	ctx := bCtx.Background()

	s.read.On("ActiveListings", mock.Anything).Return([]*market.Listing{
		{TokenId: "1", TokenURI: "ipfs://a", IsListed: true},
		{TokenId: "2", TokenURI: "ipfs://b", IsListed: true},
	}, nil)
	s.metadata.On("ResolveAll", mock.Anything, []string{"ipfs://a", "ipfs://b"}).
		Return([]*domain.Metadata{{Name: "a"}, {Name: "b"}})

	listings, err := s.uc.ActiveListings(ctx)
	s.NoError(err)
	s.Len(listings, 2)
	s.Equal("a", listings[0].Metadata.Name)
	s.Equal("b", listings[1].Metadata.Name)
}
