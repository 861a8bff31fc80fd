package domain

import (
	"strings"
)

// Table is a materialized query result. Rows are positional and share the
// order of Columns.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func EmptyTable() *Table {
	return &Table{Columns: []string{}, Rows: [][]any{}}
}

func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex finds a column by name, ignoring case, since PostgreSQL folds
// unquoted identifiers to lower case. It returns -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	for i, c := range t.Columns {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}

// Value returns the cell at row i for the named column.
func (t *Table) Value(i int, column string) (any, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 || i < 0 || i >= t.Len() {
		return nil, false
	}
	return t.Rows[i][idx], true
}

// Records converts the table to one map per row.
func (t *Table) Records() []map[string]any {
	if t == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, c := range t.Columns {
			rec[c] = row[i]
		}
		out = append(out, rec)
	}
	return out
}
