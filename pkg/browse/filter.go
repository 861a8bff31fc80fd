package browse

import (
	"Food-Wastage-Management/domain"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

type columnProfile struct {
	text    []string
	numeric []string
	bounds  map[string]domain.ColumnBounds
}

// profileColumns splits columns into numeric ones (every non-null cell is a
// number) and text ones, and records the range of each numeric column.
func profileColumns(table *domain.Table) columnProfile {
	p := columnProfile{text: []string{}, numeric: []string{}, bounds: map[string]domain.ColumnBounds{}}
	for i, name := range table.Columns {
		var (
			seen      bool
			numeric   = true
			low, high float64
		)
		for _, row := range table.Rows {
			if row[i] == nil {
				continue
			}
			f, ok := toFloat(row[i])
			if !ok {
				numeric = false
				break
			}
			if !seen || f < low {
				low = f
			}
			if !seen || f > high {
				high = f
			}
			seen = true
		}
		if numeric && seen {
			p.numeric = append(p.numeric, name)
			p.bounds[name] = domain.ColumnBounds{Min: low, Max: high}
		} else {
			p.text = append(p.text, name)
		}
	}
	return p
}

// applyFilter keeps rows matching every text needle (case-insensitive
// substring) and every inclusive numeric range. Null cells never match.
// Text needles only apply to text columns.
func applyFilter(table *domain.Table, profile columnProfile, filter domain.BrowseFilter) (*domain.Table, error) {
	type textCond struct {
		idx    int
		needle string
	}
	type rangeCond struct {
		idx int
		r   domain.NumericRange
	}

	var texts []textCond
	for column, needle := range filter.Text {
		idx := table.ColumnIndex(column)
		if idx < 0 {
			return table, fmt.Errorf("%w: %q", domain.ErrUnknownColumn, column)
		}
		if slices.Contains(profile.numeric, table.Columns[idx]) {
			return table, fmt.Errorf("%w: %s is numeric, filter it with %s_min and %s_max",
				domain.ErrInvalidValue, table.Columns[idx], table.Columns[idx], table.Columns[idx])
		}
		if needle = strings.TrimSpace(needle); needle != "" {
			texts = append(texts, textCond{idx: idx, needle: strings.ToLower(needle)})
		}
	}
	var ranges []rangeCond
	for column, r := range filter.Ranges {
		idx := table.ColumnIndex(column)
		if idx < 0 {
			return table, fmt.Errorf("%w: %q", domain.ErrUnknownColumn, column)
		}
		if r.Min != nil || r.Max != nil {
			ranges = append(ranges, rangeCond{idx: idx, r: r})
		}
	}
	if len(texts) == 0 && len(ranges) == 0 {
		return table, nil
	}

	out := &domain.Table{Columns: table.Columns, Rows: [][]any{}}
rows:
	for _, row := range table.Rows {
		for _, c := range texts {
			if row[c.idx] == nil || !strings.Contains(strings.ToLower(formatCell(row[c.idx])), c.needle) {
				continue rows
			}
		}
		for _, c := range ranges {
			f, ok := toFloat(row[c.idx])
			if !ok || (c.r.Min != nil && f < *c.r.Min) || (c.r.Max != nil && f > *c.r.Max) {
				continue rows
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
