package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorbase/backend/internal/models"
)

func TestInvoiceRepository_CreateFindUpdate(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	ctx := context.Background()
	order := seedOrder(t, database, nil)
	repo := NewInvoiceRepository(database)

	invoice := &models.Invoice{
		InvoiceNumber: "INV-20250101-0001",
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		Currency:      "CAD",
		Items: []models.InvoiceItem{
			{Description: "Algebra tutoring (1h)", Quantity: 2, UnitPrice: 5000, LineTotal: 10000},
		},
		Subtotal: 10000,
		Tax:      1300,
		Total:    11300,
	}
	require.NoError(t, repo.Create(ctx, invoice))
	assert.Equal(t, models.InvoiceStatusDraft, invoice.Status)

	found, err := repo.FindByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, invoice.Items, found[0].Items)

	now := time.Now().UTC().Truncate(time.Second)
	reason := "Refund REF-1"
	invoice.Status = models.InvoiceStatusVoid
	invoice.VoidedAt = &now
	invoice.VoidReason = &reason
	require.NoError(t, repo.Update(ctx, invoice))

	reloaded, err := repo.FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusVoid, reloaded.Status)
	require.NotNil(t, reloaded.VoidReason)
	assert.Equal(t, reason, *reloaded.VoidReason)

	t.Run("missing invoice", func(t *testing.T) {
		_, err := repo.FindByID(ctx, invoice.ID+1000)
		assert.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run("duplicate number", func(t *testing.T) {
		dup := &models.Invoice{InvoiceNumber: "INV-20250101-0001", OrderID: order.ID, CustomerID: 1, Currency: "CAD"}
		assert.True(t, errors.Is(repo.Create(ctx, dup), models.ErrDuplicateNumber))
	})
}
