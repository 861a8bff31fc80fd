package store

import (
	"strings"
	"unicode"

	"gorm.io/gorm/schema"
)

// Namer maps Go identifiers to the Title_Snake names every statement in the
// dashboard uses (FoodListing -> Food_Listings, FoodID -> Food_ID). On
// PostgreSQL names are folded to lower case so unquoted SQL resolves them.
type Namer struct {
	schema.NamingStrategy
	FoldCase bool
}

func NewNamer(driver Driver) Namer {
	return Namer{FoldCase: driver == DriverPostgres}
}

func (n Namer) TableName(str string) string {
	return n.fold(TitleSnake(str) + "s")
}

func (n Namer) ColumnName(table, column string) string {
	return n.fold(TitleSnake(column))
}

func (n Namer) fold(name string) string {
	if n.FoldCase {
		return strings.ToLower(name)
	}
	return name
}

// TitleSnake inserts an underscore at every word boundary of a CamelCase name
// while keeping initialisms together: ProviderID -> Provider_ID.
func TitleSnake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
