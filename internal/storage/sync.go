package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// tables lists every table in dependency order, parents first.
var tables = []string{
	"workout_logs",
	"workout_log_exercises",
	"workout_log_sets",
	"xp_ledger",
	"daily_entries",
}

// ExportTOML dumps every table into a single TOML file, one array of rows per table. Empty tables are left out.
func (s *Storage) ExportTOML(ctx context.Context, outputPath string) error {
	dump := make(map[string][]map[string]any)

	for _, table := range tables {
		rows, err := s.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", table))
		if err != nil {
			return fmt.Errorf("querying table %s: %w", table, err)
		}

		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return fmt.Errorf("getting columns for table %s: %w", table, err)
		}

		var tableData []map[string]any
		for rows.Next() {
			values := make([]any, len(cols))
			valuePtrs := make([]any, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				rows.Close()
				return fmt.Errorf("scanning row in table %s: %w", table, err)
			}

			row := make(map[string]any)
			for i, col := range cols {
				switch v := values[i].(type) {
				case nil:
					// TOML has no null; a missing key imports as NULL.
				case []byte:
					row[col] = string(v)
				default:
					row[col] = v
				}
			}
			tableData = append(tableData, row)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterating table %s: %w", table, err)
		}
		rows.Close()

		if len(tableData) > 0 {
			dump[table] = tableData
		}
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// ImportTOML rebuilds the database from a dump: every table is emptied, then refilled with the rows from filePath.
func (s *Storage) ImportTOML(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("Reading file %s: %w", filePath, err)
	}

	var dump map[string][]map[string]any
	if _, err := toml.Decode(string(data), &dump); err != nil {
		return fmt.Errorf("Decoding TOML: %w", err)
	}

	known := make(map[string]bool, len(tables))
	for _, t := range tables {
		known[t] = true
	}
	for table := range dump {
		if !known[table] {
			return fmt.Errorf("unknown table %q in dump", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first when clearing, parents first when inserting.
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", tables[i])); err != nil {
			return fmt.Errorf("Clearing table %s: %w", tables[i], err)
		}
	}

	for _, table := range tables {
		for _, row := range dump[table] {
			columns := make([]string, 0, len(row))
			for col := range row {
				columns = append(columns, col)
			}
			sort.Strings(columns)

			placeholders := make([]string, len(columns))
			values := make([]any, len(columns))
			for i, col := range columns {
				placeholders[i] = "?"
				values[i] = row[col]
			}

			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
				table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("Inserting into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Committing transaction: %w", err)
	}
	return nil
}
