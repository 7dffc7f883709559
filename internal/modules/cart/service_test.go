package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jastipid/storefront/internal/apperror"
	"github.com/jastipid/storefront/internal/storage"
)

func newTestService() (Service, storage.Store) {
	store := storage.NewMemoryStore()
	return NewService(NewStoreRepository(store)), store
}

func TestAddAccumulatesQuantity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	sum, err := svc.Add(ctx, "Sabun", 15000)
	require.NoError(t, err)
	sum, err = svc.Add(ctx, "Sabun", 15000)
	require.NoError(t, err)

	require.Len(t, sum.Lines, 1)
	assert.Equal(t, int64(2), sum.Lines[0].Quantity)
	assert.Equal(t, int64(30000), sum.Total)
	assert.Equal(t, int64(2), sum.TotalQuantity)
	assert.True(t, sum.DrawerOpen)
}

func TestAddValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "  ", 100)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Add(ctx, "Sabun", -1)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestChangeQuantityRemovesAtZero(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Sabun", 15000)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Serum", 40000)
	require.NoError(t, err)

	sum, err := svc.ChangeQuantity(ctx, "Sabun", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3*15000+40000), sum.Total)

	// Dropping to zero or below deletes the line.
	sum, err = svc.ChangeQuantity(ctx, "Sabun", -5)
	require.NoError(t, err)
	require.Len(t, sum.Lines, 1)
	assert.Equal(t, "Serum", sum.Lines[0].Name)

	_, err = svc.ChangeQuantity(ctx, "Sabun", 1)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestNoSurvivingLineHasNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	names := []string{"A", "B", "C"}
	for _, n := range names {
		_, err := svc.Add(ctx, n, 1000)
		require.NoError(t, err)
	}
	_, err := svc.ChangeQuantity(ctx, "A", -1)
	require.NoError(t, err)
	_, err = svc.ChangeQuantity(ctx, "B", 3)
	require.NoError(t, err)
	_, err = svc.Remove(ctx, "C")
	require.NoError(t, err)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	var total int64
	for _, l := range sum.Lines {
		assert.Greater(t, l.Quantity, int64(0))
		total += l.UnitPrice * l.Quantity
	}
	assert.Equal(t, total, sum.Total)
}

func TestRemoveAbsentLineIsNoError(t *testing.T) {
	svc, _ := newTestService()
	sum, err := svc.Remove(context.Background(), "Ghost")
	require.NoError(t, err)
	assert.Empty(t, sum.Lines)
}

func TestEmptyCartClosesDrawer(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.False(t, sum.DrawerOpen)

	_, err = svc.Add(ctx, "Sabun", 15000)
	require.NoError(t, err)
	sum, err = svc.ChangeQuantity(ctx, "Sabun", -1)
	require.NoError(t, err)
	assert.False(t, sum.DrawerOpen)
	assert.Zero(t, sum.Total)
}

func TestCartRoundTripsThroughStore(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(NewStoreRepository(store))
	ctx := context.Background()

	_, err := svc.Add(ctx, "Sabun", 15000)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Serum", 40000)
	require.NoError(t, err)

	reloaded, err := NewService(NewStoreRepository(store)).Summary(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded.Lines, 2)
	assert.Equal(t, "Sabun", reloaded.Lines[0].Name)
	assert.Equal(t, "Serum", reloaded.Lines[1].Name)
	assert.Equal(t, int64(55000), reloaded.Total)
}

func TestClear(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "Sabun", 15000)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, sum.Lines)
	assert.False(t, sum.DrawerOpen)
}
