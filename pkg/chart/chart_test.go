package chart

import (
	"Food-Wastage-Management/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for in, want := range map[string]domain.ChartType{
		"":      domain.ChartNone,
		"None":  domain.ChartNone,
		"Bar":   domain.ChartBar,
		"pie":   domain.ChartPie,
		" LINE": domain.ChartLine,
	} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseType("scatter")
	assert.ErrorIs(t, err, domain.ErrInvalidChartType)
}

func TestResolve(t *testing.T) {
	rule := &domain.ChartSpec{
		Type:    domain.ChartBar,
		Title:   "Top Food Types",
		X:       "Food_Type",
		Y:       []string{"Count"},
		Color:   "Food_Type",
		Palette: "Pastel",
	}

	t.Run("binds columns in result spelling", func(t *testing.T) {
		table := &domain.Table{Columns: []string{"food_type", "count"}, Rows: [][]any{{"Vegan", int64(3)}}}
		got, err := Resolve(rule, table)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "food_type", got.X)
		assert.Equal(t, []string{"count"}, got.Y)
		assert.Equal(t, "Top Food Types", got.Title)
		assert.Equal(t, []string{"Count"}, rule.Y, "rule must not be modified")
	})

	t.Run("empty result has no chart", func(t *testing.T) {
		got, err := Resolve(rule, domain.EmptyTable())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("missing column", func(t *testing.T) {
		table := &domain.Table{Columns: []string{"Meal_Type", "Count"}, Rows: [][]any{{"Lunch", int64(1)}}}
		got, err := Resolve(rule, table)
		assert.ErrorIs(t, err, domain.ErrChartSchemaChange)
		assert.Nil(t, got)
	})

	t.Run("no rule", func(t *testing.T) {
		got, err := Resolve(nil, &domain.Table{Columns: []string{"a"}, Rows: [][]any{{1}}})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestFirstTwoColumns(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"City", "Providers", "Extra"},
		Rows:    [][]any{{"Springfield", int64(2), "x"}},
	}

	bar := FirstTwoColumns(domain.ChartBar, "Bar Chart", table)
	require.NotNil(t, bar)
	assert.Equal(t, "City", bar.X)
	assert.Equal(t, []string{"Providers"}, bar.Y)
	assert.Equal(t, "City", bar.Color)

	pie := FirstTwoColumns(domain.ChartPie, "Pie Chart", table)
	require.NotNil(t, pie)
	assert.Equal(t, "City", pie.Names)
	assert.Equal(t, "Providers", pie.Values)

	line := FirstTwoColumns(domain.ChartLine, "Line Chart", table)
	require.NotNil(t, line)
	assert.Equal(t, domain.ChartLine, line.Type)

	assert.Nil(t, FirstTwoColumns(domain.ChartNone, "", table))
	assert.Nil(t, FirstTwoColumns(domain.ChartBar, "", &domain.Table{Columns: []string{"City"}, Rows: [][]any{{"x"}}}))
	assert.Nil(t, FirstTwoColumns(domain.ChartBar, "", &domain.Table{Columns: []string{"a", "b"}, Rows: [][]any{}}))
}
