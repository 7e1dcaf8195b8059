package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/mysterymart/goapi/domain"
)

func TestMakeJsonRespStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		data       interface{}
		wantStatus int
	}{
		{name: "not found", data: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "validation", data: domain.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "invalid amount", data: domain.ErrInvalidAmount, wantStatus: http.StatusBadRequest},
		{name: "transaction failed", data: domain.ErrTransactionFailed, wantStatus: http.StatusConflict},
		{name: "wrapped transaction failed", data: xerrors.Errorf("purchaseNft: %w", domain.ErrTransactionFailed), wantStatus: http.StatusConflict},
		{name: "read unavailable", data: domain.ErrReadUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "unknown error keeps given status", data: xerrors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest("GET", "/", nil), rec)

			err := MakeJsonResp(c, http.StatusInternalServerError, tt.data)
			req.NoError(err)
			req.Equal(tt.wantStatus, rec.Code)
		})
	}
}
