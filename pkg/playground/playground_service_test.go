package playground

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/store"
	"Food-Wastage-Management/internal/storetest"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (PlaygroundService, store.Executor) {
	t.Helper()
	_, executor := storetest.NewSQLite(t)
	storetest.SeedSample(t, executor)
	return NewPlaygroundService(executor, zerolog.Nop()), executor
}

func TestRunWithChart(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Run(context.Background(), domain.PlaygroundRequest{
		SQL:   "SELECT City, COUNT(*) AS Providers, 'extra' AS Ignored FROM Providers GROUP BY City ORDER BY City",
		Chart: "Bar",
	})
	require.NoError(t, err)
	_, err = uuid.Parse(result.RunID)
	assert.NoError(t, err)

	require.Equal(t, 2, result.Data.Len())
	require.NotNil(t, result.Chart)
	assert.Equal(t, domain.ChartBar, result.Chart.Type)
	assert.Equal(t, "City", result.Chart.X)
	assert.Equal(t, []string{"Providers"}, result.Chart.Y)
}

func TestRunWithoutChart(t *testing.T) {
	svc, _ := newService(t)

	t.Run("none requested", func(t *testing.T) {
		result, err := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "SELECT Name, City FROM Providers", Chart: "None"})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Data.Len())
		assert.Nil(t, result.Chart)
	})

	t.Run("single column", func(t *testing.T) {
		result, err := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "SELECT Name FROM Providers", Chart: "pie"})
		require.NoError(t, err)
		assert.Nil(t, result.Chart)
	})

	t.Run("empty result", func(t *testing.T) {
		result, err := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "SELECT Name, City FROM Providers WHERE 1 = 0", Chart: "line"})
		require.NoError(t, err)
		assert.True(t, result.Data.Empty())
		assert.Nil(t, result.Chart)
	})
}

func TestRunRejectsInput(t *testing.T) {
	svc, _ := newService(t)

	t.Run("blank sql", func(t *testing.T) {
		result, err := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "  \n\t"})
		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
		assert.True(t, domain.IsSoft(err))
		assert.NotEmpty(t, result.RunID)
		assert.True(t, result.Data.Empty())
	})

	t.Run("unknown chart", func(t *testing.T) {
		_, err := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "SELECT 1", Chart: "scatter"})
		assert.ErrorIs(t, err, domain.ErrInvalidChartType)
	})

	t.Run("malformed sql", func(t *testing.T) {
		result, err := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "SELEC * FORM x", Chart: "bar"})
		require.Error(t, err)
		assert.Equal(t, store.KindStatement, store.KindOf(err))
		assert.True(t, result.Data.Empty())
		assert.Nil(t, result.Chart)
	})
}

func TestRunPassesDestructiveStatements(t *testing.T) {
	svc, executor := newService(t)

	_, err := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "DELETE FROM Claims WHERE Status = 'Pending'"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, storetest.Count(t, executor, "Claims"))
}

func TestRunIDsAreUnique(t *testing.T) {
	svc, _ := newService(t)
	a, _ := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "SELECT 1"})
	b, _ := svc.Run(context.Background(), domain.PlaygroundRequest{SQL: "SELECT 1"})
	assert.NotEqual(t, a.RunID, b.RunID)
}
