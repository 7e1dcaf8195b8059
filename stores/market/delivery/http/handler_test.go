package http

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	bValidator "github.com/mysterymart/goapi/base/validator"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/market"
	"github.com/mysterymart/goapi/domain/market/mocks"
)

func newServer(uc market.Usecase) *echo.Echo {
	e := echo.New()
	e.Validator = bValidator.NewCustomValidator(goValidator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", bCtx.Background())
			return next(c)
		}
	})
	New(e, uc)
	return e
}

func TestGetListings(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	uc.On("ActiveListings", mock.Anything).Return([]*market.Listing{
		{TokenId: "1", Price: big.NewInt(100), IsListed: true},
	}, nil)
	e := newServer(uc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/market/listings", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"status":"success"`)
}

func TestListMissingPrice(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	e := newServer(uc)

	r := httptest.NewRequest("POST", "/market/nft/1/list", strings.NewReader(`{}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	req.Equal(http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestListInvalidAmount(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	uc.On("List", mock.Anything, domain.TokenId("1"), "-1").Return(domain.ErrInvalidAmount)
	e := newServer(uc)

	r := httptest.NewRequest("POST", "/market/nft/1/list", strings.NewReader(`{"price":"-1"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestPurchaseConflict(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	uc.On("Purchase", mock.Anything, domain.TokenId("3")).Return(domain.ErrTransactionFailed)
	e := newServer(uc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("POST", "/market/nft/3/purchase", nil))
	req.Equal(http.StatusConflict, rec.Code)
}

func TestGetNftItemNotFound(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	uc.On("NftItem", mock.Anything, domain.TokenId("42")).Return(nil, domain.ErrNotFound)
	e := newServer(uc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/market/nft/42", nil))
	req.Equal(http.StatusNotFound, rec.Code)
}
