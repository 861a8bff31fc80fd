package browse

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/store"
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type (
	BrowseService interface {
		ListTables() []domain.TableSchema
		FetchTableData(ctx context.Context, table string) (*domain.Table, error)
		Browse(ctx context.Context, table string, filter domain.BrowseFilter) (domain.BrowseResult, error)
		ContactInfo(ctx context.Context, req domain.ContactRequest) (*domain.Table, error)
	}

	browseService struct {
		executor store.Executor
		logger   zerolog.Logger
	}
)

func NewBrowseService(executor store.Executor, logger zerolog.Logger) BrowseService {
	return &browseService{
		executor: executor,
		logger:   logger.With().Str("component", "browse").Logger(),
	}
}

func (s *browseService) ListTables() []domain.TableSchema {
	out := make([]domain.TableSchema, 0, len(domain.AllTables))
	for _, t := range domain.AllTables {
		out = append(out, t.Schema())
	}
	return out
}

func (s *browseService) FetchTableData(ctx context.Context, table string) (*domain.Table, error) {
	t, err := domain.ParseTableName(table)
	if err != nil {
		return domain.EmptyTable(), err
	}
	return s.executor.RunQuery(ctx, fmt.Sprintf("SELECT * FROM %s", t))
}

func (s *browseService) Browse(ctx context.Context, table string, filter domain.BrowseFilter) (domain.BrowseResult, error) {
	data, err := s.FetchTableData(ctx, table)
	result := domain.BrowseResult{
		Table:          domain.TableName(table),
		TextColumns:    []string{},
		NumericColumns: []string{},
		Bounds:         map[string]domain.ColumnBounds{},
		Data:           data,
	}
	if err != nil {
		return result, err
	}

	profile := profileColumns(data)
	result.Total = data.Len()
	result.TextColumns = profile.text
	result.NumericColumns = profile.numeric
	result.Bounds = profile.bounds

	matched, err := applyFilter(data, profile, filter)
	if err != nil {
		return result, err
	}
	result.Data = matched
	result.Matched = matched.Len()

	s.logger.Debug().Str("table", table).Int("total", result.Total).Int("matched", result.Matched).Msg("table browsed")
	return result, nil
}

func (s *browseService) ContactInfo(ctx context.Context, req domain.ContactRequest) (*domain.Table, error) {
	var (
		table domain.TableName
		label string
	)
	switch req.Entity {
	case domain.EntityProvider:
		table, label = domain.Providers, "Provider"
	case domain.EntityReceiver:
		table, label = domain.Receivers, "Receiver"
	default:
		return domain.EmptyTable(), fmt.Errorf("%w: %q", domain.ErrUnknownEntity, req.Entity)
	}

	query := fmt.Sprintf("SELECT Name, Contact, Address FROM %s WHERE %s = ?", table, table.PrimaryKey())
	data, err := s.executor.RunQuery(ctx, query, req.ID)
	if err != nil {
		return data, err
	}
	if data.Empty() {
		s.logger.Warn().Str("entity", req.Entity).Int64("id", req.ID).Msg("contact not found")
		return data, fmt.Errorf("%w: no %s found with ID %d", domain.ErrRecordNotFound, label, req.ID)
	}
	return data, nil
}
