package quotes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/listing-pricer/internal/pricing"
)

// ErrNotFound is returned when no quote has the requested id.
var ErrNotFound = errors.New("quote not found")

// createdAtLayout sorts lexically in time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Quote is a persisted price sheet of one listing.
type Quote struct {
	ID        uuid.UUID     `json:"id"`
	ListingID string        `json:"listing_id"`
	Title     string        `json:"title"`
	CreatedAt time.Time     `json:"created_at"`
	Sheet     pricing.Sheet `json:"sheet"`
}

// Summary is the list view of a quote.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	ListingID string    `json:"listing_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Items     int       `json:"items"`
	Total     int64     `json:"total"`
}

// Store persists quotes.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore returns a store backed by db. The schema must already be migrated.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Save stores sheet as a new quote of listingID and returns its id.
func (s *Store) Save(ctx context.Context, listingID, title string, sheet pricing.Sheet) (uuid.UUID, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return uuid.Nil, fmt.Errorf("save quote: empty listing id")
	}

	payload, err := json.Marshal(sheet)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode quote sheet: %w", err)
	}

	id := uuid.New()
	createdAt := s.now().UTC().Format(createdAtLayout)
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, listing_id, title, created_at, sheet_json)
		VALUES (?, ?, ?, ?, ?)
	`, id.String(), listingID, strings.TrimSpace(title), createdAt, string(payload)); err != nil {
		return uuid.Nil, fmt.Errorf("insert quote: %w", err)
	}
	return id, nil
}

// Get loads one quote.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Quote, error) {
	var (
		q         Quote
		rawID     string
		createdAt string
		payload   string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, listing_id, title, created_at, sheet_json
		FROM quotes
		WHERE id = ?
	`, id.String()).Scan(&rawID, &q.ListingID, &q.Title, &createdAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Quote{}, fmt.Errorf("quote %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Quote{}, fmt.Errorf("query quote %s: %w", id, err)
	}

	if q.ID, err = uuid.Parse(rawID); err != nil {
		return Quote{}, fmt.Errorf("parse quote id: %w", err)
	}
	if q.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
		return Quote{}, err
	}
	if err := json.Unmarshal([]byte(payload), &q.Sheet); err != nil {
		return Quote{}, fmt.Errorf("decode quote sheet: %w", err)
	}
	return q, nil
}

// List returns quotes newest first. A non-empty query filters on title and listing id.
func (s *Store) List(ctx context.Context, query string) ([]Summary, error) {
	query = strings.TrimSpace(query)
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, listing_id, title, created_at, sheet_json
		FROM quotes
		WHERE (? = '' OR title LIKE ? OR listing_id LIKE ?)
		ORDER BY created_at DESC, rowid DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var (
			item      Summary
			rawID     string
			createdAt string
			payload   string
		)
		if err := rows.Scan(&rawID, &item.ListingID, &item.Title, &createdAt, &payload); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		if item.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("parse quote id: %w", err)
		}
		if item.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
			return nil, err
		}
		item.Items, item.Total = totalsFromJSON(payload)
		summaries = append(summaries, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return summaries, nil
}

func parseCreatedAt(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse quote created_at %q: %w", raw, err)
	}
	return t, nil
}

// totalsFromJSON reads the row count and price sum of a stored sheet; an unreadable sheet
// counts as empty.
func totalsFromJSON(payload string) (int, int64) {
	var sheet struct {
		Results []struct {
			Price int64 `json:"price"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(payload), &sheet); err != nil {
		return 0, 0
	}

	var total int64
	for _, r := range sheet.Results {
		total += r.Price
	}
	return len(sheet.Results), total
}
