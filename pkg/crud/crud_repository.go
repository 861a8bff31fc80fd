package crud

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/store"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type (
	CrudRepository interface {
		Insert(ctx context.Context, table domain.TableName, columns []string, values []any) (int64, error)
		Update(ctx context.Context, table domain.TableName, columns []string, values []any, id int64) (int64, error)
		// Delete removes the record and, for Food_Listings, every claim that
		// references it. It reports rows removed from the table itself and
		// from Claims separately.
		Delete(ctx context.Context, table domain.TableName, id int64) (int64, int64, error)
	}

	crudRepository struct {
		executor store.Executor
	}
)

func NewCrudRepository(executor store.Executor) CrudRepository {
	return &crudRepository{executor: executor}
}

// Column names passed here are canonical names from the table schema, never
// raw caller input, so they are safe to splice into the statement text.
func (r *crudRepository) Insert(ctx context.Context, table domain.TableName, columns []string, values []any) (int64, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)

	var affected int64
	err := r.executor.WithConnection(ctx, "insert", func(db *gorm.DB) error {
		result := db.Exec(query, values...)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *crudRepository) Update(ctx context.Context, table domain.TableName, columns []string, values []any, id int64) (int64, error) {
	assignments := make([]string, 0, len(columns))
	for _, c := range columns {
		assignments = append(assignments, c+" = ?")
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(assignments, ", "), table.PrimaryKey())
	args := append(append([]any{}, values...), id)

	var affected int64
	err := r.executor.WithConnection(ctx, "update", func(db *gorm.DB) error {
		result := db.Exec(query, args...)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *crudRepository) Delete(ctx context.Context, table domain.TableName, id int64) (int64, int64, error) {
	var affected, dependents int64
	err := r.executor.WithConnection(ctx, "delete", func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if table == domain.FoodListings {
				result := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE Food_ID = ?", domain.Claims), id)
				if result.Error != nil {
					return result.Error
				}
				dependents = result.RowsAffected
			}

			result := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, table.PrimaryKey()), id)
			if result.Error != nil {
				return result.Error
			}
			affected = result.RowsAffected
			return nil
		})
	})
	if err != nil {
		return 0, 0, err
	}
	return affected, dependents, nil
}
