package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"Food-Wastage-Management/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type (
	// Executor runs statements on a connection scoped to the single call.
	Executor interface {
		// RunQuery never returns a nil table: on failure it returns an empty
		// table together with a classified *Error.
		RunQuery(ctx context.Context, query string, args ...any) (*domain.Table, error)
		// WithConnection opens a connection, hands it to fn and always closes it.
		WithConnection(ctx context.Context, op string, fn func(db *gorm.DB) error) error
	}

	executor struct {
		provider ConnectionProvider
		logger   zerolog.Logger
	}
)

func NewExecutor(ready Ready, logger zerolog.Logger) Executor {
	return &executor{
		provider: ready.Provider(),
		logger:   logger.With().Str("component", "executor").Logger(),
	}
}

func (e *executor) WithConnection(ctx context.Context, op string, fn func(db *gorm.DB) error) (err error) {
	if e.provider == nil {
		return &Error{Kind: KindConnection, Op: op, Err: fmt.Errorf("store has not passed the startup check")}
	}
	if timeout := e.provider.StatementTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	db, err := e.provider.Open(ctx)
	if err != nil {
		e.logger.Error().Err(err).Str("op", op).Msg("could not connect to database")
		return classify(op, err)
	}
	defer e.provider.Close(db)

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: KindUnexpected, Op: op, Err: fmt.Errorf("panic: %v", r)}
			e.logger.Error().Err(err).Str("op", op).Msg("unexpected failure")
		}
	}()

	if err := fn(db.WithContext(ctx)); err != nil {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		classified := classify(op, err)
		e.logger.Error().Err(classified).Str("op", op).Str("kind", string(KindOf(classified))).Msg("statement failed")
		return classified
	}

	e.logger.Debug().Str("op", op).Dur("elapsed", time.Since(start)).Msg("statement completed")
	return nil
}

func (e *executor) RunQuery(ctx context.Context, query string, args ...any) (*domain.Table, error) {
	table := domain.EmptyTable()
	err := e.WithConnection(ctx, "query", func(db *gorm.DB) error {
		rows, err := db.Raw(query, args...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		result, err := scanTable(rows)
		if err != nil {
			return err
		}
		table = result
		return nil
	})
	if err != nil {
		return domain.EmptyTable(), err
	}
	return table, nil
}

func scanTable(rows *sql.Rows) (*domain.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	table := &domain.Table{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		for i := range values {
			values[i] = normalize(values[i], databaseType(types, i))
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func databaseType(types []*sql.ColumnType, i int) string {
	if i >= len(types) || types[i] == nil {
		return ""
	}
	return strings.ToUpper(types[i].DatabaseTypeName())
}

// normalize turns driver-specific cell values into plain Go values. MySQL's
// text protocol yields []byte for every column, PostgreSQL returns NUMERIC
// as text and DATE columns come back as midnight timestamps.
func normalize(value any, dbType string) any {
	switch v := value.(type) {
	case []byte:
		return parseNumeric(string(v), dbType)
	case string:
		return parseNumeric(v, dbType)
	case time.Time:
		if dbType == "DATE" {
			return v.Format(time.DateOnly)
		}
		return v
	default:
		return v
	}
}

func parseNumeric(s, dbType string) any {
	switch {
	case strings.Contains(dbType, "INT"):
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case strings.Contains(dbType, "DECIMAL"), strings.Contains(dbType, "NUMERIC"),
		strings.Contains(dbType, "FLOAT"), strings.Contains(dbType, "DOUBLE"),
		strings.Contains(dbType, "REAL"):
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
