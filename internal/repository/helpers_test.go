package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/tutorbase/backend/internal/config"
	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	if os.Getenv("TEST_DATABASE") != "1" {
		t.Skip("set TEST_DATABASE=1 to run repository integration tests")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := cfg.Logger.NewLogger("repository-test")

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	for _, table := range db.TestTables {
		_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE")
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

func seedOrder(t *testing.T, database *db.DB, metadata map[string]any) *models.Order {
	t.Helper()

	order := &models.Order{
		CustomerID: 174,
		Currency:   "CAD",
		Subtotal:   10000,
		Tax:        1300,
		Total:      11300,
		Items: []models.OrderItem{
			{Description: "Algebra tutoring (1h)", Quantity: 2, UnitPrice: 5000},
		},
		Metadata: metadata,
	}
	if err := NewOrderRepository(database).Create(context.Background(), order); err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
