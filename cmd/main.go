// Package main provides the API to manage users, crypto trades and proxy subscriptions.
package main

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/proxmarket/proxmarket/cmd/httpserver"
	"github.com/proxmarket/proxmarket/internal/middleware"
	"github.com/proxmarket/proxmarket/pkg/configpkg"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddress})

	server, err := httpserver.New(db, rdb, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("PROXMARKET API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
