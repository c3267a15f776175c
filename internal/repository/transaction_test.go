package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorbase/backend/internal/models"
)

func TestTransactionRepository_Create(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	ctx := context.Background()
	order := seedOrder(t, database, nil)
	repo := NewTransactionRepository(database)

	tests := []struct {
		txn  *models.PaymentTransaction
		name string
	}{
		{
			name: "payment entry",
			txn: &models.PaymentTransaction{
				TransactionNumber: "TRN-20250101-0001",
				OrderID:           order.ID,
				CustomerID:        order.CustomerID,
				Type:              models.TransactionTypePayment,
				Amount:            10000,
				Currency:          "CAD",
				PaymentMethod:     "card",
				PaymentIntentID:   stringPtr("pi_123"),
				Status:            "succeeded",
				Metadata:          map[string]any{models.MetaTaxAmount: 1300},
			},
		},
		{
			name: "refund entry",
			txn: &models.PaymentTransaction{
				TransactionNumber: "TRN-20250101-0002",
				OrderID:           order.ID,
				CustomerID:        order.CustomerID,
				Type:              models.TransactionTypeRefund,
				Amount:            10000,
				Currency:          "CAD",
				Status:            "succeeded",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, repo.Create(ctx, tt.txn))
			assert.NotZero(t, tt.txn.ID)

			retrieved, err := repo.FindByID(ctx, tt.txn.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.txn.Type, retrieved.Type)
			assert.Equal(t, tt.txn.Amount, retrieved.Amount)
			assert.Equal(t, tt.txn.UID, retrieved.UID)
		})
	}

	entries, err := repo.FindByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
