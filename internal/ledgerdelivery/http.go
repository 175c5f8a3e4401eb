// Package ledgerdelivery manages delivery layer of ledger operations.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/internal/middleware"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
	"github.com/proxmarket/proxmarket/pkg/tokenpkg"
	"github.com/proxmarket/proxmarket/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Buy(ctx context.Context, username, symbol, quantity, price string) (domain.TradeTxResult, error)
	Sell(ctx context.Context, username, symbol, quantity, price string) (domain.TradeTxResult, error)
	Purchase(ctx context.Context, username string, planID int32, location string, quantity, durationMonths int32) (domain.OrderTxResult, error)
	GetBalance(ctx context.Context, username string) (domain.Balance, error)
	GetHistory(ctx context.Context, username string) ([]domain.Trade, error)
	GetOrders(ctx context.Context, username string) ([]domain.Order, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

func authUsername(gctx *gin.Context) string {
	payload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	return payload.Username
}

func bindError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())
	l.Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

type createTradeRequest struct {
	Direction string `json:"direction" binding:"required,oneof=buy sell"`
	Symbol    string `json:"symbol" binding:"required,symbol"`
	Amount    string `json:"amount" binding:"required"`
	Price     string `json:"price" binding:"required"`
}

type tradeData struct {
	Trade   domain.Trade   `json:"trade"`
	Balance domain.Balance `json:"balance"`
}

// CreateTrade handles http request to buy or sell a crypto asset.
func (h *Handler) CreateTrade(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createTradeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	username := authUsername(gctx)

	var (
		result domain.TradeTxResult
		err    error
	)

	if req.Direction == domain.DirectionBuy {
		result, err = h.service.Buy(ctx, username, req.Symbol, req.Amount, req.Price)
	} else {
		result, err = h.service.Sell(ctx, username, req.Symbol, req.Amount, req.Price)
	}

	if err != nil {
		switch err {
		case domain.ErrInvalidAmount, domain.ErrInvalidPrice,
			domain.ErrInsufficientFunds, domain.ErrInsufficientHoldings:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrTxConflict:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: tradeData{result.Trade, result.Balance}})
}

// GetBalance handles http request to get the account balance snapshot.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	balance, err := h.service.GetBalance(ctx, authUsername(gctx))
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balance})
}

type tradesData struct {
	Trades []domain.Trade `json:"trades"`
}

// ListTrades handles http request to get the trade history, newest first.
func (h *Handler) ListTrades(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	trades, err := h.service.GetHistory(ctx, authUsername(gctx))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: tradesData{trades}})
}

type createOrderRequest struct {
	PlanID         int32  `json:"plan_id" binding:"required,min=1"`
	Location       string `json:"location" binding:"required,location"`
	Quantity       int32  `json:"quantity" binding:"required,gte=1,lte=100"`
	DurationMonths int32  `json:"duration_months" binding:"required,gte=1,lte=12"`
}

type orderData struct {
	Order   domain.Order   `json:"order"`
	Balance domain.Balance `json:"balance"`
}

// CreateOrder handles http request to purchase a proxy subscription.
func (h *Handler) CreateOrder(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createOrderRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	result, err := h.service.Purchase(ctx, authUsername(gctx), req.PlanID, req.Location, req.Quantity, req.DurationMonths)
	if err != nil {
		switch err {
		case domain.ErrInvalidQuantity, domain.ErrInvalidDuration, domain.ErrInsufficientFunds:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrAccountNotFound, domain.ErrPlanNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrTxConflict:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrProvisioningFailed:
			gctx.JSON(http.StatusInternalServerError, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: orderData{result.Order, result.Balance}})
}

type ordersData struct {
	Orders []domain.Order `json:"orders"`
}

// ListOrders handles http request to get the user's orders, newest first.
func (h *Handler) ListOrders(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	orders, err := h.service.GetOrders(ctx, authUsername(gctx))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: ordersData{orders}})
}
