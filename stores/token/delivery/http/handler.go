package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/delivery"
	"github.com/mysterymart/goapi/base/validator"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/token"
)

type handler struct {
	token token.Usecase
}

func New(e *echo.Echo, tokenUsecase token.Usecase) {
	h := &handler{token: tokenUsecase}

	g := e.Group("/tokens")

	g.POST("/mint", h.batchMint)
}

func (h *handler) batchMint(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Owner string            `json:"owner" validate:"required"`
		Items []*token.MintItem `json:"items" validate:"required,min=1,dive,required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if !validator.IsValidAddress(p.Owner) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress.Error())
	}

	hash, err := h.token.BatchMint(ctx, domain.Address(p.Owner), p.Items)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]domain.TxHash{"txHash": hash})
}
