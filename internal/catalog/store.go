package catalog

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrListingNotFound is returned when a listing has no stored rows.
var ErrListingNotFound = errors.New("listing not found")

// Listing summarizes one stored listing.
type Listing struct {
	ID   string `json:"id"`
	Rows int    `json:"rows"`
}

// ImportStats counts what an import wrote.
type ImportStats struct {
	Listings int
	Rows     int
	Skipped  int
	// SkippedLines holds the file line each skipped row starts on.
	SkippedLines []int
}

type csvSheet struct {
	grouped      map[string][]Row
	order        []string
	skippedLines []int
}

// Store keeps variant rows grouped by listing.
type Store struct {
	db *sql.DB
}

// NewStore returns a store backed by db. The schema must already be migrated.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ReplaceListing stores rows as the full content of listing id, dropping what was there.
func (s *Store) ReplaceListing(ctx context.Context, id string, rows []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace listing: %w", err)
	}

	if err := ReplaceListingTx(ctx, tx, id, rows); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace listing: %w", err)
	}
	return nil
}

// ReplaceListingTx is ReplaceListing inside a caller-owned transaction.
func ReplaceListingTx(ctx context.Context, tx *sql.Tx, id string, rows []Row) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("replace listing: empty listing id")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM variant_rows WHERE listing_id = ?`, id); err != nil {
		return fmt.Errorf("delete rows of listing %s: %w", id, err)
	}

	for i, row := range rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encode row %d of listing %s: %w", i, id, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO variant_rows (listing_id, position, columns_json)
			VALUES (?, ?, ?)
		`, id, i, string(payload)); err != nil {
			return fmt.Errorf("insert row %d of listing %s: %w", i, id, err)
		}
	}
	return nil
}

// Rows returns the rows of listing id in their imported order.
func (s *Store) Rows(ctx context.Context, id string) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT columns_json
		FROM variant_rows
		WHERE listing_id = ?
		ORDER BY position
	`, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("query rows of listing %s: %w", id, err)
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan row of listing %s: %w", id, err)
		}
		var row Row
		if err := json.Unmarshal([]byte(payload), &row); err != nil {
			return nil, fmt.Errorf("decode row of listing %s: %w", id, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows of listing %s: %w", id, err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("listing %s: %w", id, ErrListingNotFound)
	}
	return out, nil
}

// Listings returns every stored listing ordered by id.
func (s *Store) Listings(ctx context.Context) ([]Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT listing_id, COUNT(*)
		FROM variant_rows
		GROUP BY listing_id
		ORDER BY listing_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]Listing, 0)
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.ID, &l.Rows); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return listings, nil
}

// ImportCSV reads a product sheet export with a header line and replaces every listing
// it mentions. Rows are grouped by the trimmed listingColumn; rows without a listing id
// are skipped. The whole import is one transaction.
func (s *Store) ImportCSV(ctx context.Context, r io.Reader, listingColumn string) (ImportStats, error) {
	sheet, err := readCSV(r, listingColumn)
	if err != nil {
		return ImportStats{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportStats{}, fmt.Errorf("begin import: %w", err)
	}

	stats := ImportStats{Skipped: len(sheet.skippedLines), SkippedLines: sheet.skippedLines}
	for _, id := range sheet.order {
		rows := sheet.grouped[id]
		if err := ReplaceListingTx(ctx, tx, id, rows); err != nil {
			_ = tx.Rollback()
			return ImportStats{}, err
		}
		stats.Listings++
		stats.Rows += len(rows)
	}

	if err := tx.Commit(); err != nil {
		return ImportStats{}, fmt.Errorf("commit import: %w", err)
	}
	return stats, nil
}

// readCSV groups the records of r by listing. Read errors are *csv.ParseError values that
// carry the physical line, which differs from the record count once a quoted field spans
// lines.
func readCSV(r io.Reader, listingColumn string) (csvSheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return csvSheet{}, fmt.Errorf("read csv header: empty input")
	}
	if err != nil {
		return csvSheet{}, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	listingIdx := -1
	for i, h := range header {
		if h == listingColumn {
			listingIdx = i
			break
		}
	}
	if listingIdx < 0 {
		return csvSheet{}, fmt.Errorf("csv header has no %q column", listingColumn)
	}

	sheet := csvSheet{grouped: make(map[string][]Row)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return csvSheet{}, fmt.Errorf("read csv record: %w", err)
		}

		id := ""
		if listingIdx < len(record) {
			id = strings.TrimSpace(record[listingIdx])
		}
		if id == "" {
			line, _ := reader.FieldPos(0)
			sheet.skippedLines = append(sheet.skippedLines, line)
			continue
		}

		var row Row
		for i, column := range header {
			value := ""
			if i < len(record) {
				value = record[i]
			}
			row.Set(column, value)
		}

		if _, seen := sheet.grouped[id]; !seen {
			sheet.order = append(sheet.order, id)
		}
		sheet.grouped[id] = append(sheet.grouped[id], row)
	}
	return sheet, nil
}
