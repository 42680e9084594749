package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Simplici0/listing-pricer/internal/catalog"
	"github.com/Simplici0/listing-pricer/internal/migrations"
	"github.com/Simplici0/listing-pricer/internal/pricing"
	"github.com/Simplici0/listing-pricer/internal/quotes"
	"github.com/Simplici0/listing-pricer/internal/seed"
	"github.com/Simplici0/listing-pricer/internal/templates"
)

const rule = "===================="

func (a *app) runMigrate(cmd *cobra.Command, args []string) error {
	database, err := a.database(cmd.Context())
	if err != nil {
		return err
	}
	v, err := migrations.Version(cmd.Context(), database)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
	return nil
}

func (a *app) runSeed(cmd *cobra.Command, args []string) error {
	database, err := a.database(cmd.Context())
	if err != nil {
		return err
	}
	stats, err := seed.Run(cmd.Context(), database, a.tables.Columns)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seed complete: %d rows inserted\n", stats.Inserts)
	return nil
}

func (a *app) runImport(cmd *cobra.Command, args []string) error {
	column, _ := cmd.Flags().GetString("listing-column")
	if column == "" {
		column = a.tables.Columns.Listing
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	database, err := a.database(cmd.Context())
	if err != nil {
		return err
	}
	stats, err := catalog.NewStore(database).ImportCSV(cmd.Context(), f, column)
	if err != nil {
		return err
	}
	if stats.Skipped > 0 {
		a.log.Warn().Int("rows", stats.Skipped).Ints("lines", stats.SkippedLines).Str("column", column).Msg("rows without a listing id were skipped")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows into %d listings\n", stats.Rows, stats.Listings)
	return nil
}

func (a *app) runListings(cmd *cobra.Command, args []string) error {
	database, err := a.database(cmd.Context())
	if err != nil {
		return err
	}
	listings, err := catalog.NewStore(database).Listings(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, l := range listings {
		fmt.Fprintf(out, "%s : %d rows\n", l.ID, l.Rows)
	}
	return nil
}

func (a *app) runPrice(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")
	title, _ := cmd.Flags().GetString("title")
	listingID := strings.TrimSpace(args[0])
	out := cmd.OutOrStdout()

	database, err := a.database(cmd.Context())
	if err != nil {
		return err
	}

	rows, err := catalog.NewStore(database).Rows(cmd.Context(), listingID)
	if errors.Is(err, catalog.ErrListingNotFound) {
		fmt.Fprintf(out, "%s\nListing %s not found.\n%s\n", rule, listingID, rule)
		return err
	}
	if err != nil {
		return err
	}

	listingType, err := catalog.CheckListingType(rows, a.tables.Columns.ListingType)
	if err != nil {
		fmt.Fprintf(out, "%s\nUnsupported Listing Type: %s\n%s\n", rule, listingType, rule)
		return err
	}

	sheet := pricing.NewEngine(a.tables).PriceListing(catalog.PricingRows(rows))
	for _, res := range sheet.Results {
		if res.Price == 0 {
			a.log.Debug().Str("sku", res.SKU).Str("class", string(res.Class)).Msg("no price could be inferred")
		}
	}

	fmt.Fprintf(out, "%s\nListing : %s (%s)\n%s\n", rule, listingID, listingType, rule)
	fmt.Fprint(out, quotes.FormatSheet(sheet))

	if !save {
		return nil
	}
	id, err := quotes.NewStore(database).Save(cmd.Context(), listingID, title, sheet)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Quote : %s\n", id)
	return nil
}

func (a *app) runQuotes(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	database, err := a.database(cmd.Context())
	if err != nil {
		return err
	}
	list, err := quotes.NewStore(database).List(cmd.Context(), query)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, q := range list {
		fmt.Fprintf(out, "%s  %s  listing=%s  items=%d  total=%d  %s\n",
			q.CreatedAt.Format("2006-01-02 15:04"), shortID(q.ID), q.ListingID, q.Items, q.Total, q.Title)
	}
	return nil
}

func (a *app) runResolveMaterial(cmd *cobra.Command, args []string) error {
	return a.resolve(cmd, templates.KindMaterial, args[0])
}

func (a *app) runResolvePattern(cmd *cobra.Command, args []string) error {
	return a.resolve(cmd, templates.KindPattern, args[0])
}

func (a *app) resolve(cmd *cobra.Command, kind templates.Kind, code string) error {
	entry, ok := templates.DefaultResolver().Resolve(kind, code)
	if !ok {
		a.log.Warn().Str("kind", string(kind)).Str("code", code).Msg("no template found")
		entry = templates.Unknown(kind, code)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Variant : %s\n", entry.Variant)
	for _, line := range templates.DescriptionLines(entry.Description) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func (a *app) runResolveInstallation(cmd *cobra.Command, args []string) error {
	method := ""
	if len(args) == 1 {
		method = args[0]
	}
	notes, _ := cmd.Flags().GetString("notes")
	remove, _ := cmd.Flags().GetString("remove")

	fmt.Fprintf(cmd.OutOrStdout(), "Installation : %s\n", templates.InstallationMethod(method, notes, remove))
	return nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
