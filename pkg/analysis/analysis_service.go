package analysis

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/store"
	"Food-Wastage-Management/pkg/chart"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type (
	AnalysisService interface {
		ListAnalyses() []domain.AnalysisInfo
		RunAnalysis(ctx context.Context, req domain.RunAnalysisRequest) (domain.AnalysisResult, error)
	}

	analysisService struct {
		executor   store.Executor
		expiryDays int
		now        func() time.Time
		logger     zerolog.Logger
	}
)

func NewAnalysisService(executor store.Executor, expiryDays int, logger zerolog.Logger) AnalysisService {
	return &analysisService{
		executor:   executor,
		expiryDays: expiryDays,
		now:        time.Now,
		logger:     logger.With().Str("component", "analysis").Logger(),
	}
}

func (s *analysisService) ListAnalyses() []domain.AnalysisInfo {
	return Catalog()
}

func (s *analysisService) RunAnalysis(ctx context.Context, req domain.RunAnalysisRequest) (domain.AnalysisResult, error) {
	result := domain.AnalysisResult{Name: domain.AnalysisName(req.Name), Data: domain.EmptyTable()}

	template, err := Lookup(req.Name)
	if err != nil {
		return result, err
	}

	args, err := s.bind(template, req.Param)
	if err != nil {
		s.logger.Warn().Err(err).Str("analysis", req.Name).Msg("analysis not run")
		return result, err
	}

	table, err := s.executor.RunQuery(ctx, template.SQL, args...)
	result.Data = table
	if err != nil {
		return result, err
	}

	if table.Empty() {
		s.logger.Info().Str("analysis", req.Name).Msg("analysis returned no rows")
		return result, nil
	}

	spec, err := chart.Resolve(template.Chart, table)
	if err != nil {
		s.logger.Warn().Err(err).Str("analysis", req.Name).Msg("chart skipped")
		result.ChartError = err.Error()
	}
	result.Chart = spec

	s.logger.Debug().Str("analysis", req.Name).Int("rows", table.Len()).Msg("analysis completed")
	return result, nil
}

func (s *analysisService) bind(template Template, param string) ([]any, error) {
	param = strings.TrimSpace(param)
	switch template.Param {
	case domain.ParamCity:
		if param == "" {
			return nil, fmt.Errorf("%w: %s needs a city", domain.ErrMissingParameter, template.Name)
		}
		return []any{param}, nil
	case domain.ParamDays:
		days := s.expiryDays
		if param != "" {
			n, err := strconv.Atoi(param)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: days must be a non-negative integer, got %q", domain.ErrInvalidValue, param)
			}
			days = n
		}
		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return []any{today.AddDate(0, 0, days).Format(time.DateOnly)}, nil
	default:
		return nil, nil
	}
}
