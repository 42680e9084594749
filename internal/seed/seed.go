package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/listing-pricer/internal/catalog"
	"github.com/Simplici0/listing-pricer/internal/pricing"
)

const listingTypeMultiple = "Multiple Listing"

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

type demoListing struct {
	id   string
	rows []catalog.Row
}

// Run stores the demo listings in an idempotent way. Listings that already have rows are
// left untouched.
func Run(ctx context.Context, db *sql.DB, cols pricing.Columns) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	for _, listing := range demoListings(cols) {
		if err := ensureListing(ctx, tx, listing, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureListing(ctx context.Context, tx *sql.Tx, listing demoListing, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM variant_rows WHERE listing_id = ? LIMIT 1)`, listing.id).Scan(&exists); err != nil {
		return fmt.Errorf("check demo listing %s existence: %w", listing.id, err)
	}
	if exists {
		return nil
	}

	if err := catalog.ReplaceListingTx(ctx, tx, listing.id, listing.rows); err != nil {
		return fmt.Errorf("insert demo listing %s: %w", listing.id, err)
	}
	stats.Inserts += len(listing.rows)
	return nil
}

func demoListings(cols pricing.Columns) []demoListing {
	variant := func(listing, sku, material, texture, finish, price, weight string) catalog.Row {
		return catalog.NewRow(
			catalog.Cell{Column: cols.Listing, Value: listing},
			catalog.Cell{Column: cols.ListingType, Value: listingTypeMultiple},
			catalog.Cell{Column: cols.SKU, Value: sku},
			catalog.Cell{Column: cols.Material, Value: material},
			catalog.Cell{Column: cols.Texture, Value: texture},
			catalog.Cell{Column: cols.Finish, Value: finish},
			catalog.Cell{Column: cols.RetailPrice, Value: price},
			catalog.Cell{Column: cols.Weight, Value: weight},
		)
	}

	return []demoListing{
		{
			id: "1",
			rows: []catalog.Row{
				variant("1", "DEMO-HOOD-SS", "Single-sided Vacuumed Carbon", "", "", "500", "12 kg"),
				variant("1", "DEMO-HOOD-DS", "Double-sided Vacuumed Carbon", "", "", "", "13 kg"),
				variant("1", "DEMO-HOOD-FRP", "FRP", "", "Matte", "", "15 kg"),
			},
		},
		{
			id: "2",
			rows: []catalog.Row{
				variant("2", "DEMO-WING-DS", "Double-sided Pre-preg Carbon", "", "", "1000", "4 kg"),
				variant("2", "DEMO-WING-SS-F", "Single-sided Pre-preg Carbon", "Forged", "Matte", "", "4 kg"),
				variant("2", "DEMO-WING-ABS", "ABS", "", "", "", ""),
			},
		},
	}
}
