package quotes

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/listing-pricer/internal/db"
	"github.com/Simplici0/listing-pricer/internal/migrations"
	"github.com/Simplici0/listing-pricer/internal/pricing"
)

func newTestStore(t *testing.T, start time.Time) *Store {
	t.Helper()

	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "quotes.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	if err := migrations.Up(ctx, database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	store := NewStore(database)
	clock := start
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return store
}

func sheetOf(prices ...int64) pricing.Sheet {
	sheet := pricing.Sheet{Weights: []string{}}
	for i, p := range prices {
		sheet.Results = append(sheet.Results, pricing.Result{
			SKU:     "SKU-" + string(rune('A'+i)),
			Class:   pricing.ClassFRPOrCarbon,
			Price:   p,
			Comment: "0 (default)",
		})
	}
	return sheet
}

func TestListOrdersNewestFirstAndReadsTotals(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	for _, q := range []struct {
		title  string
		prices []int64
	}{
		{"Primera", []int64{100}},
		{"Segunda", []int64{150, 50}},
		{"Tercera", []int64{300}},
	} {
		if _, err := store.Save(ctx, "7", q.title, sheetOf(q.prices...)); err != nil {
			t.Fatalf("save %s: %v", q.title, err)
		}
	}

	list, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(list))
	}
	if list[0].Title != "Tercera" || list[1].Title != "Segunda" || list[2].Title != "Primera" {
		t.Fatalf("quotes are not sorted newest first: %+v", list)
	}
	if list[1].Items != 2 || list[1].Total != 200 {
		t.Fatalf("unexpected totals: %+v", list[1])
	}
	if !list[0].CreatedAt.After(list[1].CreatedAt) {
		t.Fatalf("created_at not increasing: %+v", list)
	}
}

func TestListFiltersByTitleAndListing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	mustSave(t, store, "7", "Hood")
	mustSave(t, store, "12", "Spoiler")
	mustSave(t, store, "70", "Diffuser")

	byTitle, err := store.List(ctx, "Spoil")
	if err != nil {
		t.Fatalf("List title filter returned error: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "Spoiler" {
		t.Fatalf("expected 1 quote filtered by title, got %+v", byTitle)
	}

	byListing, err := store.List(ctx, "7")
	if err != nil {
		t.Fatalf("List listing filter returned error: %v", err)
	}
	if len(byListing) != 2 {
		t.Fatalf("expected 2 quotes filtered by listing, got %+v", byListing)
	}
}

func TestGetRoundTripsSheet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))

	engine := pricing.NewEngine(pricing.DefaultTables())
	cols := pricing.DefaultColumns()
	sheet := engine.PriceListing([]pricing.Row{
		rowOf(map[string]string{cols.SKU: "H-SS", cols.Material: "Single-sided Vacuumed Carbon", cols.RetailPrice: "500"}),
		rowOf(map[string]string{cols.SKU: "H-DS", cols.Material: "Double-sided Vacuumed Carbon"}),
	})

	id, err := store.Save(ctx, "7", "Hood", sheet)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != id || got.ListingID != "7" || got.Title != "Hood" {
		t.Fatalf("unexpected quote header: %+v", got)
	}
	if len(got.Sheet.Results) != 2 || got.Sheet.Results[1].Line() != "H-DS : 700 : 800" {
		t.Fatalf("unexpected sheet: %+v", got.Sheet.Results)
	}
	if got.Sheet.Inference.Rule != "single-sided basis" {
		t.Fatalf("rule=%q", got.Sheet.Inference.Rule)
	}
	if !got.CreatedAt.Equal(time.Date(2024, 5, 1, 8, 1, 0, 0, time.UTC)) {
		t.Fatalf("created_at=%v", got.CreatedAt)
	}
}

func TestGetUnknownQuote(t *testing.T) {
	store := newTestStore(t, time.Now())

	_, err := store.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveRejectsEmptyListing(t *testing.T) {
	store := newTestStore(t, time.Now())

	if _, err := store.Save(context.Background(), " ", "x", sheetOf(1)); err == nil {
		t.Fatalf("expected error for empty listing id")
	}
}

func TestFormatText(t *testing.T) {
	q := Quote{
		ID:        uuid.MustParse("8d7f3c1e-0000-4000-8000-000000000001"),
		ListingID: "7",
		Title:     "Hood",
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Sheet: pricing.Sheet{
			Results: []pricing.Result{{SKU: "H-SS", Price: 500, CompareAt: 600, Comment: "500 (direct)"}},
			Weights: []string{"5 kg"},
		},
	}

	text := FormatText(q)
	for _, want := range []string{
		"Quote : 8d7f3c1e-0000-4000-8000-000000000001\n",
		"Listing : 7\nTitle : Hood\n",
		"SKU : PRICE : COM\nH-SS : 500 : 600 # 500 (direct)\n\n",
		"===== Weight Information =====\nWeight: 5 kg\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in:\n%s", want, text)
		}
	}

	if FormatSheet(pricing.Sheet{}) != "" {
		t.Fatalf("empty sheet must render nothing")
	}
}

type rowOf map[string]string

func (r rowOf) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

func mustSave(t *testing.T, store *Store, listing, title string) {
	t.Helper()

	if _, err := store.Save(context.Background(), listing, title, sheetOf(1)); err != nil {
		t.Fatalf("save %s: %v", title, err)
	}
}
