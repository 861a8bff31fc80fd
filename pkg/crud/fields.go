package crud

import (
	"Food-Wastage-Management/domain"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// FilterPolicy decides which submitted values count as "not provided".
type FilterPolicy int

const (
	// DropEmptyAndZero discards nil, "", false and numeric zero, so a zero
	// quantity can never be written through the form.
	DropEmptyAndZero FilterPolicy = iota
	// DropUnsetOnly discards nil and "" but keeps explicit zeroes.
	DropUnsetOnly
)

func (p FilterPolicy) keep(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	}
	if p == DropUnsetOnly {
		return true
	}
	return !isZero(v)
}

func isZero(v any) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	}
	f, err := cast.ToFloat64E(v)
	return err == nil && f == 0
}

// field is a resolved, filtered and coerced column value.
type field struct {
	column domain.Column
	value  any
}

// resolveFields maps caller keys onto the table's columns, drops values the
// policy treats as absent and converts the rest to the column's storage form.
// Fields come back in schema order.
func resolveFields(table domain.TableName, fields map[string]any, policy FilterPolicy) ([]field, error) {
	byColumn := make(map[string]any, len(fields))
	for key, value := range fields {
		column, ok := table.Column(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a column of %s", domain.ErrUnknownColumn, key, table)
		}
		if _, dup := byColumn[column.Name]; dup {
			return nil, fmt.Errorf("%w: %s given more than once", domain.ErrInvalidValue, column.Name)
		}
		byColumn[column.Name] = value
	}

	out := make([]field, 0, len(byColumn))
	for _, column := range table.Schema().Columns {
		value, ok := byColumn[column.Name]
		if !ok || !policy.keep(value) {
			continue
		}
		coerced, err := coerce(column, value)
		if err != nil {
			return nil, err
		}
		out = append(out, field{column: column, value: coerced})
	}
	return out, nil
}

var (
	dateLayouts = []string{
		time.DateOnly,
		"1/2/2006",
		time.RFC3339,
	}
	dateTimeLayouts = []string{
		time.DateTime,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"1/2/2006 15:04",
		"1/2/2006 15:04:05",
		time.DateOnly,
		"1/2/2006",
	}
)

func coerce(column domain.Column, value any) (any, error) {
	invalid := func() error {
		return fmt.Errorf("%w: %s does not accept %v", domain.ErrInvalidValue, column.Name, value)
	}

	switch column.Kind {
	case domain.KindInteger:
		n, err := toInt64(value)
		if err != nil {
			return nil, invalid()
		}
		if n < 0 && column.NonNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative, got %d", domain.ErrInvalidValue, column.Name, n)
		}
		return n, nil

	case domain.KindDate:
		t, err := parseTime(value, dateLayouts)
		if err != nil {
			return nil, invalid()
		}
		return t.Format(time.DateOnly), nil

	case domain.KindDateTime:
		t, err := parseTime(value, dateTimeLayouts)
		if err != nil {
			return nil, invalid()
		}
		return t.Format(time.DateTime), nil

	default:
		switch value.(type) {
		case string, bool, float64, float32, int, int32, int64, json.Number:
			return cast.ToStringE(value)
		default:
			return nil, invalid()
		}
	}
}

// toInt64 accepts whole numbers that fit in an int64. Floats must be integral
// and strings are read as base 10.
func toInt64(value any) (int64, error) {
	switch x := value.(type) {
	case bool, nil:
		return 0, fmt.Errorf("not a number: %v", x)
	case float32:
		return toInt64(float64(x))
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, fmt.Errorf("%v is not a whole int64", x)
		}
		return int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", x)
		}
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", x)
		}
	case json.Number:
		return strconv.ParseInt(x.String(), 10, 64)
	case string:
		return strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	}
	return cast.ToInt64E(value)
}

func parseTime(value any, layouts []string) (time.Time, error) {
	switch x := value.(type) {
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %v", value)
}
