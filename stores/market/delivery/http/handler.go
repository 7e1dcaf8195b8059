package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/delivery"
	"github.com/mysterymart/goapi/base/metrics"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/market"
)

var met metrics.Service

type handler struct {
	market market.Usecase
}

func New(e *echo.Echo, marketUsecase market.Usecase) {
	met = metrics.New("market")

	h := &handler{market: marketUsecase}

	g := e.Group("/market")

	g.GET("/listings", h.getListings)
	g.GET("/auctions", h.getAuctions)
	g.GET("/rentals", h.getRentals)
	g.GET("/blindboxes", h.getBlindBoxes)
	g.POST("/blindboxes", h.createBlindBox)
	g.POST("/blindboxes/:boxId/nfts", h.addNftToBlindBox)
	g.POST("/blindboxes/:boxId/purchase", h.buyBlindBox)

	n := e.Group("/market/nft/:tokenId")

	n.GET("", h.getNftItem)
	n.POST("/list", h.list)
	n.POST("/unlist", h.unlist)
	n.POST("/purchase", h.purchase)
	n.POST("/auction", h.createAuction)
	n.POST("/auction/bid", h.bid)
	n.POST("/auction/end", h.endAuction)
	n.POST("/rental", h.createRental)
	n.POST("/rental/rent", h.rent)
	n.POST("/rental/end", h.endRental)
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	listings, err := h.market.ActiveListings(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listings)
}

func (h *handler) getAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	auctions, err := h.market.ActiveAuctions(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, auctions)
}

func (h *handler) getRentals(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	rentals, err := h.market.ActiveRentals(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, rentals)
}

func (h *handler) getBlindBoxes(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Active *bool `query:"active"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	boxes, err := h.market.BlindBoxes(ctx, active)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, boxes)
}

func (h *handler) getNftItem(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	listing, err := h.market.NftItem(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listing)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Price string `json:"price" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.market.List(ctx, domain.TokenId(c.Param("tokenId")), p.Price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) unlist(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.market.Unlist(ctx, domain.TokenId(c.Param("tokenId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.market.Purchase(ctx, domain.TokenId(c.Param("tokenId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		MinPrice string    `json:"minPrice" validate:"required"`
		EndTime  time.Time `json:"endTime" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.market.CreateAuction(ctx, domain.TokenId(c.Param("tokenId")), p.MinPrice, p.EndTime); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Amount string `json:"amount" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.market.PlaceBid(ctx, domain.TokenId(c.Param("tokenId")), p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.market.EndAuction(ctx, domain.TokenId(c.Param("tokenId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createRental(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		RentPrice    string `json:"rentPrice" validate:"required"`
		Deposit      string `json:"deposit" validate:"required"`
		DurationDays int64  `json:"durationDays" validate:"required,gt=0"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.market.CreateRental(ctx, domain.TokenId(c.Param("tokenId")), p.RentPrice, p.Deposit, p.DurationDays); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) rent(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.market.Rent(ctx, domain.TokenId(c.Param("tokenId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) endRental(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.market.EndRental(ctx, domain.TokenId(c.Param("tokenId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createBlindBox(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Price string `json:"price" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	boxId, err := h.market.CreateBlindBox(ctx, p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]domain.BoxId{"boxId": boxId})
}

func (h *handler) addNftToBlindBox(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		TokenId string `json:"tokenId" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.market.AddNftToBlindBox(ctx, domain.BoxId(c.Param("boxId")), domain.TokenId(p.TokenId)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) buyBlindBox(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	if err := h.market.BuyBlindBox(ctx, domain.BoxId(c.Param("boxId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
