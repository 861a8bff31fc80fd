// Package chart binds declarative chart rules to query results. Rendering is
// the client's concern; a chart here only names the columns to plot.
package chart

import (
	"Food-Wastage-Management/domain"
	"fmt"
	"strings"
)

// ParseType accepts a chart type in any letter case. An empty string means none.
func ParseType(s string) (domain.ChartType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return domain.ChartNone, nil
	case "bar":
		return domain.ChartBar, nil
	case "pie":
		return domain.ChartPie, nil
	case "line":
		return domain.ChartLine, nil
	default:
		return domain.ChartNone, fmt.Errorf("%w: %q", domain.ErrInvalidChartType, s)
	}
}

// Resolve checks every column the rule names against the result and rewrites
// them to the result's spelling. Empty results never get a chart.
func Resolve(rule *domain.ChartSpec, table *domain.Table) (*domain.ChartSpec, error) {
	if rule == nil || rule.Type == domain.ChartNone || table.Empty() {
		return nil, nil
	}

	var missing []string
	bind := func(name string) string {
		if name == "" {
			return ""
		}
		idx := table.ColumnIndex(name)
		if idx < 0 {
			missing = append(missing, name)
			return name
		}
		return table.Columns[idx]
	}

	out := *rule
	out.X = bind(rule.X)
	out.Names = bind(rule.Names)
	out.Values = bind(rule.Values)
	out.Color = bind(rule.Color)
	out.Y = make([]string, 0, len(rule.Y))
	for _, y := range rule.Y {
		out.Y = append(out.Y, bind(y))
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrChartSchemaChange, strings.Join(missing, ", "))
	}
	return &out, nil
}

// FirstTwoColumns builds an ad-hoc chart that plots the first column against
// the second. It returns nil when the result cannot carry one.
func FirstTwoColumns(kind domain.ChartType, title string, table *domain.Table) *domain.ChartSpec {
	if kind == domain.ChartNone || table.Empty() || len(table.Columns) < 2 {
		return nil
	}

	first, second := table.Columns[0], table.Columns[1]
	switch kind {
	case domain.ChartBar:
		return &domain.ChartSpec{Type: kind, Title: title, X: first, Y: []string{second}, Color: first, Palette: "Pastel"}
	case domain.ChartPie:
		return &domain.ChartSpec{Type: kind, Title: title, Names: first, Values: second, Palette: "Pastel"}
	case domain.ChartLine:
		return &domain.ChartSpec{Type: kind, Title: title, X: first, Y: []string{second}, Palette: "Set2"}
	default:
		return nil
	}
}
