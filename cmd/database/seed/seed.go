package seed

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/pkg/crud"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Files maps each table to the CSV export it is loaded from. Order matters:
// claims reference listings and receivers.
var Files = []struct {
	Table domain.TableName
	File  string
}{
	{domain.Providers, "providers_data.csv"},
	{domain.Receivers, "receivers_data.csv"},
	{domain.FoodListings, "food_listings_data.csv"},
	{domain.Claims, "claims_data.csv"},
}

type Report struct {
	Table    domain.TableName `json:"table"`
	Inserted int              `json:"inserted"`
	Skipped  int              `json:"skipped"`
}

// Seed loads every CSV present in dir through the CRUD engine, so rows get the
// same column validation and value filtering as form input. Columns the table
// does not have are ignored. A missing file is skipped.
func Seed(ctx context.Context, dir string, crudService crud.CrudService, log zerolog.Logger) ([]Report, error) {
	reports := make([]Report, 0, len(Files))
	for _, f := range Files {
		path := filepath.Join(dir, f.File)
		file, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("file", path).Msg("seed file not found, skipping")
			continue
		}
		if err != nil {
			return reports, err
		}

		report, err := seedTable(ctx, f.Table, file, crudService, log)
		file.Close()
		if err != nil {
			return reports, fmt.Errorf("seeding %s from %s: %w", f.Table, path, err)
		}
		log.Info().Str("table", string(f.Table)).Int("inserted", report.Inserted).Int("skipped", report.Skipped).Msg("table seeded")
		reports = append(reports, report)
	}
	return reports, nil
}

func seedTable(ctx context.Context, table domain.TableName, r io.Reader, crudService crud.CrudService, log zerolog.Logger) (Report, error) {
	report := Report{Table: table}
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return report, fmt.Errorf("reading header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		if column, ok := table.Column(name); ok {
			columns[i] = column.Name
		} else {
			log.Debug().Str("table", string(table)).Str("column", name).Msg("ignoring column not in table")
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return report, fmt.Errorf("line %d: %w", line, err)
		}

		fields := make(map[string]any, len(columns))
		for i, value := range record {
			if i < len(columns) && columns[i] != "" {
				fields[columns[i]] = value
			}
		}

		if _, err := crudService.Create(ctx, string(table), fields); err != nil {
			log.Warn().Err(err).Str("table", string(table)).Int("line", line).Msg("row skipped")
			report.Skipped++
			continue
		}
		report.Inserted++
	}
	return report, nil
}
