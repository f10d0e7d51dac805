package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestStockItemsReturnsFreshCopies(t *testing.T) {
	first := StockItems()
	first[0].Quantity = 0

	second := StockItems()
	require.Len(t, second, 7)
	assert.Equal(t, 41, second[0].Quantity)
	assert.Equal(t, "prod2", second[1].ID)
}

func TestFixtureShapes(t *testing.T) {
	items := StockItems()
	for _, item := range items {
		assert.Equal(t, 5, item.CriticalStock, item.ID)
		assert.GreaterOrEqual(t, item.Quantity, 0, item.ID)
	}

	shipments := InTransitShipments()
	require.Len(t, shipments, 4)
	assert.Equal(t, domain.ShipmentStatusCustoms, shipments[1].Status)
	assert.Equal(t, "2024-09-05", shipments[1].ExpectedArrival.Format("2006-01-02"))

	assert.Len(t, MonthlySales(), 2)
	assert.Len(t, WeeklySales(), 7)
	assert.Empty(t, SalesPoints(domain.SalesGranularity("daily")))
}

func TestRepositoriesHonorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStockItemRepository().ListStockItems(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewShipmentRepository().ListInTransit(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewSalesRepository().ListSalesPoints(ctx, domain.SalesGranularityMonthly)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserRepository(t *testing.T) {
	repo, err := NewUserRepository("Donezo@2025")
	require.NoError(t, err)

	ctx := context.Background()

	user, err := repo.GetUserByEmail(ctx, "SAYAN@donezo.kz")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.RoleID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Donezo@2025")))

	user.Name = "alterado"
	again, err := repo.GetUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sayan", again.Name)

	missing, err := repo.GetUserByEmail(ctx, "ninguem@donezo.kz")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
