package domain

import (
	"fmt"
	"strings"
)

var (
	MessageSuccessCreateRecord = "record created successfully"
	MessageSuccessUpdateRecord = "record updated successfully"
	MessageSuccessDeleteRecord = "record deleted successfully"
	MessageSuccessGetTable     = "table retrieved successfully"
	MessageSuccessListTables   = "tables retrieved successfully"
	MessageSuccessGetContact   = "contact details retrieved successfully"

	MessageFailedCreateRecord = "failed to create record"
	MessageFailedUpdateRecord = "failed to update record"
	MessageFailedDeleteRecord = "failed to delete record"
	MessageFailedGetTable     = "failed to retrieve table"
	MessageFailedGetContact   = "failed to retrieve contact details"
)

type TableName string

const (
	FoodListings TableName = "Food_Listings"
	Providers    TableName = "Providers"
	Receivers    TableName = "Receivers"
	Claims       TableName = "Claims"
)

// AllTables is the fixed, ordered set of tables the dashboard manages.
var AllTables = []TableName{Providers, Receivers, FoodListings, Claims}

func ParseTableName(name string) (TableName, error) {
	for _, t := range AllTables {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTable, name)
}

type ColumnKind string

const (
	KindInteger  ColumnKind = "integer"
	KindText     ColumnKind = "text"
	KindDate     ColumnKind = "date"
	KindDateTime ColumnKind = "datetime"
)

type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// NonNegative reports whether the column rejects values below zero. Every
// integer column is either an identifier or a quantity.
func (c Column) NonNegative() bool {
	return c.Kind == KindInteger
}

type TableSchema struct {
	Name       TableName `json:"name"`
	PrimaryKey string    `json:"primary_key"`
	Columns    []Column  `json:"columns"`
}

var (
	foodListingsSchema = TableSchema{
		Name:       FoodListings,
		PrimaryKey: "Food_ID",
		Columns: []Column{
			{"Food_ID", KindInteger},
			{"Food_Name", KindText},
			{"Quantity", KindInteger},
			{"Expiry_Date", KindDate},
			{"Provider_ID", KindInteger},
			{"Provider_Type", KindText},
			{"Location", KindText},
			{"Food_Type", KindText},
			{"Meal_Type", KindText},
		},
	}
	providersSchema = TableSchema{
		Name:       Providers,
		PrimaryKey: "Provider_ID",
		Columns: []Column{
			{"Provider_ID", KindInteger},
			{"Name", KindText},
			{"Type", KindText},
			{"Contact", KindText},
			{"Address", KindText},
			{"City", KindText},
		},
	}
	receiversSchema = TableSchema{
		Name:       Receivers,
		PrimaryKey: "Receiver_ID",
		Columns: []Column{
			{"Receiver_ID", KindInteger},
			{"Name", KindText},
			{"Contact", KindText},
			{"Address", KindText},
			{"City", KindText},
		},
	}
	claimsSchema = TableSchema{
		Name:       Claims,
		PrimaryKey: "Claim_ID",
		Columns: []Column{
			{"Claim_ID", KindInteger},
			{"Food_ID", KindInteger},
			{"Receiver_ID", KindInteger},
			{"Status", KindText},
			{"Claim_Date", KindDateTime},
		},
	}
)

func (t TableName) Schema() TableSchema {
	switch t {
	case FoodListings:
		return foodListingsSchema
	case Providers:
		return providersSchema
	case Receivers:
		return receiversSchema
	case Claims:
		return claimsSchema
	default:
		return TableSchema{}
	}
}

func (t TableName) PrimaryKey() string {
	return t.Schema().PrimaryKey
}

// Column resolves a caller-supplied column name, ignoring case, to the
// canonical column of the table.
func (t TableName) Column(name string) (Column, bool) {
	for _, c := range t.Schema().Columns {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c, true
		}
	}
	return Column{}, false
}

const (
	EntityProvider = "provider"
	EntityReceiver = "receiver"
)

type (
	RecordRequest struct {
		Fields map[string]any `json:"fields" validate:"required"`
	}

	MutationResult struct {
		Table             TableName `json:"table"`
		PrimaryKey        string    `json:"primary_key"`
		RecordID          int64     `json:"record_id,omitempty"`
		Columns           []string  `json:"columns,omitempty"`
		RowsAffected      int64     `json:"rows_affected"`
		DependentsDeleted int64     `json:"dependents_deleted,omitempty"`
	}

	NumericRange struct {
		Min *float64 `json:"min,omitempty"`
		Max *float64 `json:"max,omitempty"`
	}

	BrowseFilter struct {
		Text   map[string]string       `json:"text,omitempty"`
		Ranges map[string]NumericRange `json:"ranges,omitempty"`
	}

	ColumnBounds struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}

	BrowseResult struct {
		Table          TableName               `json:"table"`
		Total          int                     `json:"total"`
		Matched        int                     `json:"matched"`
		TextColumns    []string                `json:"text_columns"`
		NumericColumns []string                `json:"numeric_columns"`
		Bounds         map[string]ColumnBounds `json:"bounds"`
		Data           *Table                  `json:"data"`
	}

	ContactRequest struct {
		Entity string `json:"entity" validate:"required,oneof=provider receiver"`
		ID     int64  `json:"id" validate:"required,min=1"`
	}
)
