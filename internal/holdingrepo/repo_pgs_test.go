package holdingrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/internal/userrepo"
	"github.com/proxmarket/proxmarket/pkg/configpkg"
	"github.com/proxmarket/proxmarket/pkg/passpkg"
	"github.com/proxmarket/proxmarket/pkg/randompkg"
	"github.com/proxmarket/proxmarket/pkg/symbolpkg"

	_ "github.com/lib/pq"
)

var (
	testHoldingRepo *RepoPGS
	testUserRepo    *userrepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testHoldingRepo = NewRepoPGS(testDB)
	testUserRepo = userrepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomUser(t *testing.T) domain.User {
	hashedPassword, err := passpkg.Hash(randompkg.String(10))
	require.NoError(t, err)

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.Owner(),
		Email:          randompkg.Email(),
	}

	user, err := testUserRepo.Create(context.Background(), arg)
	require.NoError(t, err)

	return user
}

func requireQuantityEqual(t *testing.T, want, got string) {
	t.Helper()

	wantDec, err := decimal.NewFromString(want)
	require.NoError(t, err)
	gotDec, err := decimal.NewFromString(got)
	require.NoError(t, err)

	require.True(t, wantDec.Equal(gotDec), "quantity = %v, want %v", got, want)
}

func TestGetQuantityMissingHoldingIsZero(t *testing.T) {
	user := createRandomUser(t)

	quantity, err := testHoldingRepo.GetQuantity(context.Background(), user.Username, symbolpkg.BTC)
	require.NoError(t, err)
	require.Equal(t, "0", quantity)
}

func TestAddQuantityCreatesHolding(t *testing.T) {
	user := createRandomUser(t)

	holding, err := testHoldingRepo.AddQuantity(context.Background(), "1.5", user.Username, symbolpkg.ETH)
	require.NoError(t, err)
	require.NotZero(t, holding.ID)
	require.Equal(t, user.Username, holding.Username)
	require.Equal(t, symbolpkg.ETH, holding.Symbol)
	requireQuantityEqual(t, "1.5", holding.Quantity)
	require.NotZero(t, holding.CreatedAt)
}

func TestAddQuantityAccumulates(t *testing.T) {
	user := createRandomUser(t)

	_, err := testHoldingRepo.AddQuantity(context.Background(), "1.5", user.Username, symbolpkg.BTC)
	require.NoError(t, err)

	holding, err := testHoldingRepo.AddQuantity(context.Background(), "0.25", user.Username, symbolpkg.BTC)
	require.NoError(t, err)
	requireQuantityEqual(t, "1.75", holding.Quantity)

	holding, err = testHoldingRepo.AddQuantity(context.Background(), "-1.75", user.Username, symbolpkg.BTC)
	require.NoError(t, err)
	requireQuantityEqual(t, "0", holding.Quantity)
}

func TestAddQuantityInsufficientHoldings(t *testing.T) {
	user := createRandomUser(t)

	_, err := testHoldingRepo.AddQuantity(context.Background(), "1", user.Username, symbolpkg.SOL)
	require.NoError(t, err)

	_, err = testHoldingRepo.AddQuantity(context.Background(), "-2", user.Username, symbolpkg.SOL)
	require.EqualError(t, err, domain.ErrInsufficientHoldings.Error())

	quantity, err := testHoldingRepo.GetQuantity(context.Background(), user.Username, symbolpkg.SOL)
	require.NoError(t, err)
	requireQuantityEqual(t, "1", quantity)
}

func TestAddQuantityAccountNotFound(t *testing.T) {
	_, err := testHoldingRepo.AddQuantity(context.Background(), "1", "non-existent", symbolpkg.BTC)
	require.EqualError(t, err, domain.ErrAccountNotFound.Error())
}

func TestList(t *testing.T) {
	user := createRandomUser(t)

	holdings, err := testHoldingRepo.List(context.Background(), user.Username)
	require.NoError(t, err)
	require.Empty(t, holdings)

	_, err = testHoldingRepo.AddQuantity(context.Background(), "2", user.Username, symbolpkg.ETH)
	require.NoError(t, err)
	_, err = testHoldingRepo.AddQuantity(context.Background(), "0.1", user.Username, symbolpkg.BTC)
	require.NoError(t, err)

	holdings, err = testHoldingRepo.List(context.Background(), user.Username)
	require.NoError(t, err)
	require.Len(t, holdings, 2)

	// Ordered by symbol
	require.Equal(t, symbolpkg.BTC, holdings[0].Symbol)
	require.Equal(t, symbolpkg.ETH, holdings[1].Symbol)
}
