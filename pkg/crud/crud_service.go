package crud

import (
	"Food-Wastage-Management/domain"
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type (
	CrudService interface {
		Create(ctx context.Context, table string, fields map[string]any) (domain.MutationResult, error)
		Update(ctx context.Context, table string, id int64, fields map[string]any) (domain.MutationResult, error)
		Delete(ctx context.Context, table string, id int64) (domain.MutationResult, error)
	}

	crudService struct {
		crudRepository CrudRepository
		policy         FilterPolicy
		logger         zerolog.Logger
	}
)

func NewCrudService(crudRepository CrudRepository, policy FilterPolicy, logger zerolog.Logger) CrudService {
	return &crudService{
		crudRepository: crudRepository,
		policy:         policy,
		logger:         logger.With().Str("component", "crud").Logger(),
	}
}

func (s *crudService) Create(ctx context.Context, table string, fields map[string]any) (domain.MutationResult, error) {
	t, err := domain.ParseTableName(table)
	if err != nil {
		return domain.MutationResult{}, err
	}
	result := domain.MutationResult{Table: t, PrimaryKey: t.PrimaryKey()}

	resolved, err := resolveFields(t, fields, s.policy)
	if err != nil {
		return result, err
	}
	if len(resolved) == 0 {
		s.logger.Warn().Str("table", table).Msg("create skipped: no data to insert")
		return result, fmt.Errorf("%w: no data to insert", domain.ErrEmptyInput)
	}

	columns, values := split(resolved)
	affected, err := s.crudRepository.Insert(ctx, t, columns, values)
	if err != nil {
		return result, err
	}

	result.Columns = columns
	result.RowsAffected = affected
	for _, f := range resolved {
		if f.column.Name == result.PrimaryKey {
			result.RecordID, _ = f.value.(int64)
		}
	}
	s.logger.Info().Str("table", table).Strs("columns", columns).Msg("record created")
	return result, nil
}

func (s *crudService) Update(ctx context.Context, table string, id int64, fields map[string]any) (domain.MutationResult, error) {
	t, err := domain.ParseTableName(table)
	if err != nil {
		return domain.MutationResult{}, err
	}
	result := domain.MutationResult{Table: t, PrimaryKey: t.PrimaryKey(), RecordID: id}

	resolved, err := resolveFields(t, fields, s.policy)
	if err != nil {
		return result, err
	}
	if len(resolved) == 0 {
		s.logger.Warn().Str("table", table).Int64("id", id).Msg("update skipped: no fields to update")
		return result, fmt.Errorf("%w: no fields to update", domain.ErrEmptyInput)
	}

	columns, values := split(resolved)
	affected, err := s.crudRepository.Update(ctx, t, columns, values, id)
	if err != nil {
		return result, err
	}
	result.Columns = columns
	result.RowsAffected = affected

	if affected == 0 {
		s.logger.Warn().Str("table", table).Int64("id", id).Msg("update matched no record")
		return result, fmt.Errorf("%w with %s = %d", domain.ErrRecordNotFound, t.PrimaryKey(), id)
	}
	s.logger.Info().Str("table", table).Int64("id", id).Strs("columns", columns).Msg("record updated")
	return result, nil
}

func (s *crudService) Delete(ctx context.Context, table string, id int64) (domain.MutationResult, error) {
	t, err := domain.ParseTableName(table)
	if err != nil {
		return domain.MutationResult{}, err
	}
	result := domain.MutationResult{Table: t, PrimaryKey: t.PrimaryKey(), RecordID: id}

	affected, dependents, err := s.crudRepository.Delete(ctx, t, id)
	if err != nil {
		return result, err
	}
	result.RowsAffected = affected
	result.DependentsDeleted = dependents

	if affected == 0 {
		s.logger.Warn().Str("table", table).Int64("id", id).Int64("claims_deleted", dependents).Msg("delete matched no record")
		return result, fmt.Errorf("%w with %s = %d", domain.ErrRecordNotFound, t.PrimaryKey(), id)
	}
	s.logger.Info().Str("table", table).Int64("id", id).Int64("claims_deleted", dependents).Msg("record deleted")
	return result, nil
}

func split(fields []field) ([]string, []any) {
	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, f.column.Name)
		values = append(values, f.value)
	}
	return columns, values
}
