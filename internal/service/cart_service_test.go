package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(store *memStore, id uint, name string, price float64) {
	store.products[id] = &entity.Product{
		Id:        id,
		Name:      name,
		Price:     &price,
		Available: true,
	}
}

func TestAddItemCreatesLineWithSnapshot(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	line, err := svc.AddItem(context.Background(), 42, 101, 1)
	require.NoError(t, err)

	assert.Equal(t, "Boron 150", line.ProductName)
	assert.Equal(t, 12.50, line.ProductPrice)
	assert.Equal(t, 1.0, line.Quantity)
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	_, err := svc.AddItem(context.Background(), 42, 101, 1)
	require.NoError(t, err)
	line, err := svc.AddItem(context.Background(), 42, 101, 2)
	require.NoError(t, err)

	assert.Equal(t, 3.0, line.Quantity)
}

func TestAddItemConcurrentTapsAccumulate(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(context.Background(), 42, 101, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	summary, err := svc.Summary(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 2.0, summary.Lines[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	store := newMemStore()
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	_, err := svc.AddItem(context.Background(), 42, 999, 1)

	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	_, err := svc.AddItem(context.Background(), 42, 101, 2)
	require.NoError(t, err)

	line, err := svc.SetQuantity(context.Background(), 42, 101, 0)
	require.NoError(t, err)
	assert.Nil(t, line)

	summary, err := svc.Summary(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, summary.Count)
}

func TestSetQuantityOnMissingLineIsStale(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	_, err := svc.SetQuantity(context.Background(), 42, 101, 3)

	assert.True(t, errors.Is(err, shared.ErrStaleState))
}

func TestRemoveItemReportsAbsence(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	removed, err := svc.RemoveItem(context.Background(), 42, 101)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = svc.AddItem(context.Background(), 42, 101, 1)
	require.NoError(t, err)

	removed, err = svc.RemoveItem(context.Background(), 42, 101)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestClearReportsRemovedCount(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	seedProduct(store, 102, "Zinc Chelate", 14.00)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	_, err := svc.AddItem(context.Background(), 42, 101, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), 42, 102, 1)
	require.NoError(t, err)

	removed, err := svc.Clear(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestSummaryTotals(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	seedProduct(store, 102, "Zinc Chelate", 14.00)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	_, err := svc.AddItem(context.Background(), 42, 101, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), 42, 102, 1)
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 39.00, summary.Total, 0.001)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 101, "Boron 150", 12.50)
	svc := NewCartService(newFakeFactory(store), nopLogger{})

	_, err := svc.AddItem(context.Background(), 42, 101, 1)
	require.NoError(t, err)

	other, err := svc.Summary(context.Background(), 43)
	require.NoError(t, err)
	assert.Zero(t, other.Count)
}
