package seed

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/storetest"
	"Food-Wastage-Management/pkg/crud"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSeed(t *testing.T) {
	_, executor := storetest.NewSQLite(t)
	svc := crud.NewCrudService(crud.NewCrudRepository(executor), crud.DropEmptyAndZero, zerolog.Nop())

	dir := t.TempDir()
	writeFile(t, dir, "providers_data.csv", "Provider_ID,Name,Type,Address,City,Contact\n"+
		"1,Gonzales-Cochran,Supermarket,\"74347 Christopher Extensions, Andreamouth\",New Jessica,+1-600-220-0480\n"+
		"2,\"Nielsen, Johnson and Fuller\",Grocery Store,91228 Hanson Stream,East Sheriland,+1-925-283-8901\n")
	writeFile(t, dir, "receivers_data.csv", "Receiver_ID,Name,Type,City,Contact\n"+
		"1,Donald Gomez,Shelter,Port Carlburgh,(955)922-5295\n")
	writeFile(t, dir, "food_listings_data.csv", "Food_ID,Food_Name,Quantity,Expiry_Date,Provider_ID,Provider_Type,Location,Food_Type,Meal_Type\n"+
		"1,Bread,43,3/17/2025,1,Supermarket,New Jessica,Vegetarian,Breakfast\n"+
		"2,Soup,not-a-number,3/24/2025,2,Grocery Store,East Sheriland,Vegan,Dinner\n")
	writeFile(t, dir, "claims_data.csv", "Claim_ID,Food_ID,Receiver_ID,Status,Claim_Date\n"+
		"1,1,1,Pending,3/5/2025 5:26\n")

	reports, err := Seed(context.Background(), dir, svc, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.Equal(t, Report{Table: domain.Providers, Inserted: 2}, reports[0])
	assert.Equal(t, Report{Table: domain.Receivers, Inserted: 1}, reports[1])
	assert.Equal(t, Report{Table: domain.FoodListings, Inserted: 1, Skipped: 1}, reports[2])
	assert.Equal(t, Report{Table: domain.Claims, Inserted: 1}, reports[3])

	table, err := executor.RunQuery(context.Background(), "SELECT Name, City FROM Providers WHERE Provider_ID = 2")
	require.NoError(t, err)
	assert.Equal(t, []any{"Nielsen, Johnson and Fuller", "East Sheriland"}, table.Rows[0])

	table, err = executor.RunQuery(context.Background(), "SELECT Expiry_Date FROM Food_Listings WHERE Food_ID = 1")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-17", table.Rows[0][0])

	table, err = executor.RunQuery(context.Background(), "SELECT Claim_Date FROM Claims WHERE Claim_ID = 1")
	require.NoError(t, err)
	claimed, ok := table.Rows[0][0].(time.Time)
	require.True(t, ok, "%#v", table.Rows[0][0])
	assert.Equal(t, "2025-03-05 05:26:00", claimed.Format(time.DateTime))
}

func TestSeedMissingFiles(t *testing.T) {
	_, executor := storetest.NewSQLite(t)
	svc := crud.NewCrudService(crud.NewCrudRepository(executor), crud.DropEmptyAndZero, zerolog.Nop())

	reports, err := Seed(context.Background(), t.TempDir(), svc, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, reports)
}
