// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
)

const (
	DefaultNameColumn = "TranslatedRecipeName"
	DefaultPrepColumn = "PrepTimeInMins"
	DefaultCookColumn = "CookTimeInMins"
)

// LoadOptions selects the dataset file and the columns to read.
type LoadOptions struct {
	Path       string
	NameColumn string
	PrepColumn string
	CookColumn string
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.NameColumn == "" {
		o.NameColumn = DefaultNameColumn
	}

	if o.PrepColumn == "" {
		o.PrepColumn = DefaultPrepColumn
	}

	if o.CookColumn == "" {
		o.CookColumn = DefaultCookColumn
	}

	return o
}

// Load reads the dataset through an in-memory DuckDB, which takes care of
// dialect sniffing and quoting. CSV/TSV, Parquet and JSON files are supported,
// chosen by extension. Every selected cell is returned as text, in file order,
// with NULL cells as empty strings; coercion is left to Build.
func Load(ctx context.Context, opts LoadOptions) ([]RawRecord, error) {
	opts = opts.withDefaults()

	if _, err := os.Stat(opts.Path); err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf(
		`SELECT
			CAST(%s AS VARCHAR),
			CAST(%s AS VARCHAR),
			CAST(%s AS VARCHAR)
		FROM %s`,
		quoteIdent(opts.NameColumn),
		quoteIdent(opts.PrepColumn),
		quoteIdent(opts.CookColumn),
		sourceExpr(opts.Path),
	)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", opts.Path, err)
	}
	defer rows.Close()

	var out []RawRecord

	for rows.Next() {
		var name, prep, cook sql.NullString
		if err := rows.Scan(&name, &prep, &cook); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(out)+1, err)
		}

		out = append(out, RawRecord{
			Name:     name.String,
			PrepTime: prep.String,
			CookTime: cook.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", opts.Path, err)
	}

	return out, nil
}

func sourceExpr(path string) string {
	lit := quoteLiteral(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return fmt.Sprintf("read_parquet(%s)", lit)
	case ".json", ".jsonl", ".ndjson":
		return fmt.Sprintf("read_json_auto(%s)", lit)
	default:
		return fmt.Sprintf("read_csv(%s, header = true, all_varchar = true)", lit)
	}
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
