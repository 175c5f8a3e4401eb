// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/internal/ledgerdelivery"
	"github.com/proxmarket/proxmarket/internal/ledgerrepo"
	"github.com/proxmarket/proxmarket/internal/ledgerservice"
	"github.com/proxmarket/proxmarket/internal/middleware"
	"github.com/proxmarket/proxmarket/internal/plandelivery"
	"github.com/proxmarket/proxmarket/internal/planrepo"
	"github.com/proxmarket/proxmarket/internal/planservice"
	"github.com/proxmarket/proxmarket/internal/proxygen"
	"github.com/proxmarket/proxmarket/internal/sessiondelivery"
	"github.com/proxmarket/proxmarket/internal/sessionrepo"
	"github.com/proxmarket/proxmarket/internal/sessionservice"
	"github.com/proxmarket/proxmarket/internal/userdelivery"
	"github.com/proxmarket/proxmarket/internal/userrepo"
	"github.com/proxmarket/proxmarket/internal/userservice"
	"github.com/proxmarket/proxmarket/pkg/configpkg"
	"github.com/proxmarket/proxmarket/pkg/metricspkg"
	"github.com/proxmarket/proxmarket/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, rdb *redis.Client, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)
	planRepo := planrepo.NewRepoCached(planrepo.NewRepoPGS(conn), rdb, config.PlanCacheTTL)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	planService := planservice.New(planRepo)
	ledgerService := ledgerservice.New(ledgerRepo, planRepo, proxygen.New())
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	planHandler := plandelivery.NewHandler(planService)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)
	engine.GET("/plans", planHandler.List)
	engine.GET("/metrics", gin.WrapH(metricspkg.Handler()))

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/balance", ledgerHandler.GetBalance)
	authRoutes.POST("/trades", ledgerHandler.CreateTrade)
	authRoutes.GET("/trades", ledgerHandler.ListTrades)
	authRoutes.POST("/orders", ledgerHandler.CreateOrder)
	authRoutes.GET("/orders", ledgerHandler.ListOrders)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("symbol", ledgerdelivery.ValidSymbol); err != nil {
			return nil, errors.New("cannot register symbol validator")
		}

		if err := v.RegisterValidation("location", ledgerdelivery.ValidLocation); err != nil {
			return nil, errors.New("cannot register location validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
