package playground

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/store"
	"Food-Wastage-Management/pkg/chart"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type (
	// PlaygroundService runs operator-supplied SQL verbatim. Any statement,
	// including DML and DDL, is passed through: callers must be trusted.
	PlaygroundService interface {
		Run(ctx context.Context, req domain.PlaygroundRequest) (domain.PlaygroundResult, error)
	}

	playgroundService struct {
		executor store.Executor
		logger   zerolog.Logger
	}
)

func NewPlaygroundService(executor store.Executor, logger zerolog.Logger) PlaygroundService {
	return &playgroundService{
		executor: executor,
		logger:   logger.With().Str("component", "playground").Logger(),
	}
}

func (s *playgroundService) Run(ctx context.Context, req domain.PlaygroundRequest) (domain.PlaygroundResult, error) {
	result := domain.PlaygroundResult{RunID: uuid.NewString(), Data: domain.EmptyTable()}
	logger := s.logger.With().Str("run_id", result.RunID).Logger()

	kind, err := chart.ParseType(req.Chart)
	if err != nil {
		return result, err
	}

	query := strings.TrimSpace(req.SQL)
	if query == "" {
		logger.Warn().Msg("empty query")
		return result, fmt.Errorf("%w: please enter a valid SQL query", domain.ErrEmptyQuery)
	}

	logger.Info().Str("sql", query).Str("chart", string(kind)).Msg("running ad-hoc query")
	table, err := s.executor.RunQuery(ctx, query)
	result.Data = table
	if err != nil {
		return result, err
	}

	result.Chart = chart.FirstTwoColumns(kind, chartTitle(kind), table)
	logger.Debug().Int("rows", table.Len()).Int("columns", len(table.Columns)).Msg("ad-hoc query completed")
	return result, nil
}

func chartTitle(kind domain.ChartType) string {
	switch kind {
	case domain.ChartBar:
		return "Bar Chart"
	case domain.ChartPie:
		return "Pie Chart"
	case domain.ChartLine:
		return "Line Chart"
	default:
		return ""
	}
}
