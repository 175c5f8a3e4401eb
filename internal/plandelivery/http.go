// Package plandelivery manages delivery layer of proxy plans.
package plandelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
	"github.com/proxmarket/proxmarket/pkg/web"
)

// Service provides service layer interface needed by plan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package plandelivery
type Service interface {
	List(ctx context.Context) ([]domain.Plan, error)
}

// Handler facilitates plan delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns plan handler.
func NewHandler(ps Service) *Handler {
	return &Handler{service: ps}
}

type plansData struct {
	Plans []domain.Plan `json:"plans"`
}

// List handles http request to list the proxy plan catalog.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	plans, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: plansData{plans}})
}
