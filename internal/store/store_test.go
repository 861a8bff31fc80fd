package store

import (
	"errors"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTitleSnake(t *testing.T) {
	cases := map[string]string{
		"FoodID":       "Food_ID",
		"ProviderID":   "Provider_ID",
		"ExpiryDate":   "Expiry_Date",
		"FoodListing":  "Food_Listing",
		"Name":         "Name",
		"ProviderType": "Provider_Type",
		"HTTPServer":   "HTTP_Server",
	}
	for in, want := range cases {
		assert.Equal(t, want, TitleSnake(in), in)
	}
}

func TestNamer(t *testing.T) {
	n := NewNamer(DriverMySQL)
	assert.Equal(t, "Food_Listings", n.TableName("FoodListing"))
	assert.Equal(t, "Claims", n.TableName("Claim"))
	assert.Equal(t, "Claim_Date", n.ColumnName("Claims", "ClaimDate"))

	pg := NewNamer(DriverPostgres)
	assert.Equal(t, "food_listings", pg.TableName("FoodListing"))
	assert.Equal(t, "food_id", pg.ColumnName("food_listings", "FoodID"))
}

func TestParseDriver(t *testing.T) {
	for in, want := range map[string]Driver{
		"":           DriverMySQL,
		"MySQL":      DriverMySQL,
		"postgresql": DriverPostgres,
		"sqlite3":    DriverSQLite,
	} {
		got, err := ParseDriver(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseDriver("oracle")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"duplicate key", gorm.ErrDuplicatedKey, KindConstraint},
		{"mysql foreign key", &mysqldriver.MySQLError{Number: 1451, Message: "cannot delete"}, KindConstraint},
		{"mysql access denied", &mysqldriver.MySQLError{Number: 1045, Message: "denied"}, KindConnection},
		{"mysql syntax", &mysqldriver.MySQLError{Number: 1064, Message: "syntax"}, KindStatement},
		{"postgres not null", &pgconn.PgError{Code: "23502"}, KindConstraint},
		{"postgres canceled", &pgconn.PgError{Code: "57014"}, KindTimeout},
		{"postgres undefined table", &pgconn.PgError{Code: "42P01"}, KindStatement},
		{"plain error", errors.New("near \"SELEC\": syntax error"), KindStatement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classify("op", tc.err)
			assert.Equal(t, tc.want, KindOf(err))
			assert.ErrorIs(t, err, tc.err)
		})
	}
	assert.Nil(t, classify("op", nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, int64(42), normalize([]byte("42"), "BIGINT"))
	assert.Equal(t, 66.67, normalize([]byte("66.67"), "DECIMAL"))
	assert.Equal(t, 12.5, normalize("12.5", "NUMERIC"))
	assert.Equal(t, "Springfield", normalize([]byte("Springfield"), "VARCHAR"))
	assert.Equal(t, "abc", normalize([]byte("abc"), "INT"))
	assert.Equal(t, int64(7), normalize(int64(7), ""))
	assert.Nil(t, normalize(nil, "TEXT"))
}
