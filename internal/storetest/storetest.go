// Package storetest provides a migrated, file-backed SQLite store for tests.
package storetest

import (
	migration "Food-Wastage-Management/cmd/database/migrate"
	"Food-Wastage-Management/internal/store"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLite returns a gated store backed by a fresh database file with the
// dashboard schema. A file is used instead of :memory: because every
// operation opens its own connection.
func NewSQLite(t *testing.T) (store.Ready, store.Executor) {
	t.Helper()

	provider := store.NewConnectionProvider(store.Settings{
		Driver:           store.DriverSQLite,
		Database:         filepath.Join(t.TempDir(), "food_wastage.db"),
		StatementTimeout: 10 * time.Second,
	}, zerolog.Nop())

	ready, err := store.Gate(context.Background(), provider)
	require.NoError(t, err)

	executor := store.NewExecutor(ready, zerolog.Nop())
	require.NoError(t, executor.WithConnection(context.Background(), "migrate", migration.Migrate))
	return ready, executor
}

// MustExec runs fixture statements and fails the test on the first error.
func MustExec(t *testing.T, executor store.Executor, statements ...string) {
	t.Helper()
	err := executor.WithConnection(context.Background(), "fixture", func(db *gorm.DB) error {
		for _, stmt := range statements {
			if err := db.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

// Count returns the number of rows in table.
func Count(t *testing.T, executor store.Executor, table string) int64 {
	t.Helper()
	var n int64
	err := executor.WithConnection(context.Background(), "count", func(db *gorm.DB) error {
		return db.Raw("SELECT COUNT(*) FROM " + table).Scan(&n).Error
	})
	require.NoError(t, err)
	return n
}

// SeedSample loads a small fixed dataset covering every table.
func SeedSample(t *testing.T, executor store.Executor) {
	t.Helper()
	MustExec(t, executor,
		`INSERT INTO Providers (Provider_ID, Name, Type, Contact, Address, City) VALUES
			(1, 'Green Grocer', 'Grocery Store', '555-0101', '1 Market St', 'Springfield'),
			(2, 'Hot Plate', 'Restaurant', '555-0102', '2 Main St', 'Shelbyville'),
			(3, 'Daily Bread', 'Restaurant', '555-0103', '3 Oak Ave', 'Springfield')`,
		`INSERT INTO Receivers (Receiver_ID, Name, Contact, Address, City) VALUES
			(1, 'Food Bank North', '555-0201', '10 North Rd', 'Springfield'),
			(2, 'Shelter South', '555-0202', '20 South Rd', 'Shelbyville')`,
		`INSERT INTO Food_Listings (Food_ID, Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type, Location, Food_Type, Meal_Type) VALUES
			(1, 'Bread', 10, '2025-03-17', 1, 'Grocery Store', 'Springfield', 'Vegetarian', 'Breakfast'),
			(2, 'Soup', 5, '2025-03-18', 2, 'Restaurant', 'Shelbyville', 'Vegan', 'Lunch'),
			(3, 'Rice', 0, '2025-03-19', 3, 'Restaurant', 'Springfield', 'Vegetarian', 'Dinner')`,
		`INSERT INTO Claims (Claim_ID, Food_ID, Receiver_ID, Status, Claim_Date) VALUES
			(1, 1, 1, 'Completed', '2025-03-10 09:00:00'),
			(2, 2, 2, 'Completed', '2025-03-11 10:30:00'),
			(3, 1, 2, 'Pending', '2025-03-12 12:15:00')`,
	)
}
