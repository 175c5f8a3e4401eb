package ledgerdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/internal/middleware"
	"github.com/proxmarket/proxmarket/pkg/errorspkg"
	"github.com/proxmarket/proxmarket/pkg/randompkg"
	"github.com/proxmarket/proxmarket/pkg/symbolpkg"
	"github.com/proxmarket/proxmarket/pkg/tokenpkg"
	"github.com/proxmarket/proxmarket/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("symbol", ValidSymbol); err != nil {
			os.Exit(1)
		}

		if err := v.RegisterValidation("location", ValidLocation); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func newTokenMaker(t *testing.T) tokenpkg.Maker {
	t.Helper()

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker returned error: %v", err)
	}

	return tokenMaker
}

func TestCreateTrade(t *testing.T) {
	username := randompkg.Owner()
	tokenMaker := newTokenMaker(t)
	authType := middleware.AuthTypeBearer
	duration := time.Minute

	testResult := domain.TradeTxResult{
		Trade: domain.Trade{
			ID:        1,
			Username:  username,
			Direction: domain.DirectionBuy,
			Symbol:    symbolpkg.BTC,
			Quantity:  "0.5",
			Price:     "40000",
			Total:     "20000",
			CreatedAt: time.Now().Truncate(time.Second).UTC(),
		},
		Balance: domain.Balance{USD: "80000", Holdings: []domain.Holding{
			{Symbol: symbolpkg.BTC, Quantity: "0.5"},
		}},
	}

	type requestBody struct {
		Direction string `json:"direction"`
		Symbol    string `json:"symbol"`
		Amount    string `json:"amount"`
		Price     string `json:"price"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request)
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{"buy", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Buy(gomock.Any(), gomock.Eq(username), gomock.Eq(symbolpkg.BTC),
						gomock.Eq("0.5"), gomock.Eq("40000")).
					Times(1).
					Return(testResult, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*tradeData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				ignoreHidden := cmpopts.IgnoreFields(domain.Trade{}, "Username")
				if diff := cmp.Diff(testResult.Trade, got.Trade, compareCreatedAt, ignoreHidden); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "SellOK",
			requestBody: requestBody{"sell", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Sell(gomock.Any(), gomock.Eq(username), gomock.Eq(symbolpkg.BTC),
						gomock.Eq("0.5"), gomock.Eq("40000")).
					Times(1).
					Return(testResult, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData:      func(data any) {},
		},
		{
			name:        "NoAuthorization",
			requestBody: requestBody{"buy", symbolpkg.BTC, "0.5", "40000"},
			setupAuth:   func(t *testing.T, r *http.Request) {},
			buildStubs: func(service *MockService) {
				service.EXPECT().Buy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "authorization header is not provided",
		},
		{
			name:        "InvalidDirection",
			requestBody: requestBody{"hold", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Buy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().Sell(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Direction must be one of: buy sell",
		},
		{
			name:        "UnsupportedSymbol",
			requestBody: requestBody{"buy", "DOGE", "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Buy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Symbol is not a supported asset symbol",
		},
		{
			name:        "InvalidAmount",
			requestBody: requestBody{"buy", symbolpkg.BTC, "-1", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Buy(gomock.Any(), gomock.Eq(username), gomock.Eq(symbolpkg.BTC),
						gomock.Eq("-1"), gomock.Eq("40000")).
					Times(1).
					Return(domain.TradeTxResult{}, domain.ErrInvalidAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
		{
			name:        "InsufficientFunds",
			requestBody: requestBody{"buy", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Buy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TradeTxResult{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
		{
			name:        "InsufficientHoldings",
			requestBody: requestBody{"sell", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Sell(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TradeTxResult{}, domain.ErrInsufficientHoldings)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientHoldings.Error(),
		},
		{
			name:        "AccountNotFound",
			requestBody: requestBody{"buy", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Buy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TradeTxResult{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:        "TxConflict",
			requestBody: requestBody{"buy", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Buy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TradeTxResult{}, domain.ErrTxConflict)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrTxConflict.Error(),
		},
		{
			name:        "InternalError",
			requestBody: requestBody{"buy", symbolpkg.BTC, "0.5", "40000"},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Buy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TradeTxResult{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/trades", handler.CreateTrade)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/trades", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			tc.setupAuth(t, req)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &tradeData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	username := randompkg.Owner()
	tokenMaker := newTokenMaker(t)
	authType := middleware.AuthTypeBearer
	duration := time.Minute

	testBalance := domain.Balance{
		USD: "1000",
		Holdings: []domain.Holding{
			{Symbol: symbolpkg.BTC, Quantity: "0.5"},
			{Symbol: symbolpkg.ETH, Quantity: "2"},
		},
	}

	testCases := []struct {
		name           string
		setupAuth      func(t *testing.T, r *http.Request)
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					GetBalance(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(testBalance, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*domain.Balance)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(testBalance, *got); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:      "NoAuthorization",
			setupAuth: func(t *testing.T, r *http.Request) {},
			buildStubs: func(service *MockService) {
				service.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "authorization header is not provided",
		},
		{
			name: "AccountNotFound",
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					GetBalance(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.Balance{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name: "InternalError",
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					GetBalance(gomock.Any(), gomock.Eq(username)).
					Times(1).
					Return(domain.Balance{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/balance", handler.GetBalance)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, "/balance", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			tc.setupAuth(t, req)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &domain.Balance{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestListTrades(t *testing.T) {
	username := randompkg.Owner()
	tokenMaker := newTokenMaker(t)

	testTrades := []domain.Trade{
		{ID: 2, Direction: domain.DirectionSell, Symbol: symbolpkg.BTC, Quantity: "0.2", Price: "41000", Total: "8200"},
		{ID: 1, Direction: domain.DirectionBuy, Symbol: symbolpkg.BTC, Quantity: "0.5", Price: "40000", Total: "20000"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	server := gin.New()
	server.Use(middleware.AuthMiddleware(tokenMaker))
	server.GET("/trades", handler.ListTrades)

	service.EXPECT().
		GetHistory(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(testTrades, nil)

	req, err := http.NewRequest(http.MethodGet, "/trades", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	middleware.AddAuthorization(t, req, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := web.Response{Data: &tradesData{}}

	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	got := res.Data.(*tradesData)

	if diff := cmp.Diff(testTrades, got.Trades); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateOrder(t *testing.T) {
	username := randompkg.Owner()
	tokenMaker := newTokenMaker(t)
	authType := middleware.AuthTypeBearer
	duration := time.Minute

	testResult := domain.OrderTxResult{
		Order: domain.Order{
			ID:             1,
			PlanID:         2,
			PlanName:       "Pro Residential",
			PlanType:       "residential",
			Location:       "Germany",
			Quantity:       2,
			DurationMonths: 3,
			TotalPrice:     "59.94",
			Status:         domain.OrderStatusActive,
			ExpiresAt:      time.Now().AddDate(0, 0, 90).Truncate(time.Second).UTC(),
			CreatedAt:      time.Now().Truncate(time.Second).UTC(),
			Credentials: []domain.Credential{
				{Host: "195.201.0.10", Port: 8123, Username: "user_1000", Password: "pass_10000", Location: "Germany", Status: "active"},
				{Host: "195.201.0.11", Port: 8124, Username: "user_1001", Password: "pass_10001", Location: "Germany", Status: "active"},
			},
		},
		Balance: domain.Balance{USD: "940.06", Holdings: []domain.Holding{}},
	}

	type requestBody struct {
		PlanID         int32  `json:"plan_id"`
		Location       string `json:"location"`
		Quantity       int32  `json:"quantity"`
		DurationMonths int32  `json:"duration_months"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request)
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{2, "Germany", 2, 3},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purchase(gomock.Any(), gomock.Eq(username), gomock.Eq(int32(2)),
						gomock.Eq("Germany"), gomock.Eq(int32(2)), gomock.Eq(int32(3))).
					Times(1).
					Return(testResult, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*orderData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareApproxTime := cmpopts.EquateApproxTime(time.Second)
				ignoreHidden := cmpopts.IgnoreFields(domain.Order{}, "Username")
				ignoreCredHidden := cmpopts.IgnoreFields(domain.Credential{}, "ID", "OrderID", "CreatedAt")
				if diff := cmp.Diff(testResult.Order, got.Order, compareApproxTime, ignoreHidden, ignoreCredHidden); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}

				if diff := cmp.Diff(testResult.Balance, got.Balance); diff != "" {
					t.Errorf("res.Data balance mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: requestBody{2, "Germany", 2, 3},
			setupAuth:   func(t *testing.T, r *http.Request) {},
			buildStubs: func(service *MockService) {
				service.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "authorization header is not provided",
		},
		{
			name:        "UnsupportedLocation",
			requestBody: requestBody{2, "Atlantis", 2, 3},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Location is not a supported proxy location",
		},
		{
			name:        "QuantityAboveLimit",
			requestBody: requestBody{2, "Germany", 101, 3},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Quantity must be less than or equal to 100",
		},
		{
			name:        "DurationAboveLimit",
			requestBody: requestBody{2, "Germany", 2, 13},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "DurationMonths must be less than or equal to 12",
		},
		{
			name:        "PlanNotFound",
			requestBody: requestBody{999, "Germany", 2, 3},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.OrderTxResult{}, domain.ErrPlanNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrPlanNotFound.Error(),
		},
		{
			name:        "InsufficientFunds",
			requestBody: requestBody{2, "Germany", 2, 3},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.OrderTxResult{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
		{
			name:        "ProvisioningFailed",
			requestBody: requestBody{2, "Germany", 2, 3},
			setupAuth: func(t *testing.T, r *http.Request) {
				middleware.AddAuthorization(t, r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.OrderTxResult{}, domain.ErrProvisioningFailed)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      domain.ErrProvisioningFailed.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/orders", handler.CreateOrder)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			tc.setupAuth(t, req)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &orderData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestListOrders(t *testing.T) {
	username := randompkg.Owner()
	tokenMaker := newTokenMaker(t)

	testOrders := []domain.Order{
		{ID: 2, Status: domain.OrderStatusActive, Credentials: []domain.Credential{}},
		{ID: 1, Status: domain.OrderStatusExpired, Credentials: []domain.Credential{}},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	server := gin.New()
	server.Use(middleware.AuthMiddleware(tokenMaker))
	server.GET("/orders", handler.ListOrders)

	service.EXPECT().
		GetOrders(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(testOrders, nil)

	req, err := http.NewRequest(http.MethodGet, "/orders", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	middleware.AddAuthorization(t, req, tokenMaker, middleware.AuthTypeBearer, username, time.Minute)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := web.Response{Data: &ordersData{}}

	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	got := res.Data.(*ordersData)

	if diff := cmp.Diff(testOrders, got.Orders); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}
}
