// Package integrationtest provides db helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/proxmarket/proxmarket/cmd/httpserver"
	"github.com/proxmarket/proxmarket/internal/middleware"
	"github.com/proxmarket/proxmarket/pkg/configpkg"
	"github.com/proxmarket/proxmarket/pkg/dbpkg"
)

// SetupServer returns test server that cleans up database after each integration test.
func SetupServer(t *testing.T) *httpserver.Server {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../configs") returned error: %v`, err)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	db := SetupDB(t, config.DBDriver, config.DBSource)
	rdb := SetupRedis(t, config.RedisAddress)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(db, rdb, logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(db, rdb, logger, config) returned error: %v`, err)
	}

	return server
}

// Flush flushes all db tables without dropping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables string

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public';`

	row := db.QueryRow(query)

	err := row.Scan(&tables)
	if err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables + " CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SetupRedis sets up a redis client for testing and flushes it afterwards.
func SetupRedis(t *testing.T, address string) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{Addr: address})

	t.Cleanup(func() {
		if err := rdb.FlushAll(context.Background()).Err(); err != nil {
			t.Logf("redis cleanup failed. err: %v", err)
		}

		if err := rdb.Close(); err != nil {
			t.Fatalf("redis cleanup failed. err: %v", err)
		}
	})

	return rdb
}
