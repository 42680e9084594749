// Package main provides the pricer command line tool.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Simplici0/listing-pricer/internal/config"
	"github.com/Simplici0/listing-pricer/internal/db"
	"github.com/Simplici0/listing-pricer/internal/logging"
	"github.com/Simplici0/listing-pricer/internal/migrations"
	"github.com/Simplici0/listing-pricer/internal/pricing"
)

// app carries what every subcommand needs. The database is opened on first use.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	tables pricing.Tables
	db     *sql.DB
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	a := &app{cfg: cfg, log: logging.Setup(cfg.LogLevel, true)}
	for _, w := range cfg.Warnings() {
		a.log.Warn().Msg(w)
	}
	defer a.close()

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pricer",
		Short: "Price product sheet listings",
		Long: `pricer classifies listing variants by material, infers missing prices
from the quoted ones, applies add-on surcharges and computes compare-at prices.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			tables, err := a.cfg.Tables()
			if err != nil {
				return fmt.Errorf("load pricing tables: %w", err)
			}
			a.tables = tables
			return nil
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE:  a.runMigrate,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Store the demo listings",
		Args:  cobra.NoArgs,
		RunE:  a.runSeed,
	})

	importCmd := &cobra.Command{
		Use:   "import [file.csv]",
		Short: "Import a product sheet CSV export",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runImport,
	}
	importCmd.Flags().String("listing-column", "", "Column that groups rows into listings (default from tables)")
	rootCmd.AddCommand(importCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "listings",
		Short: "List stored listings",
		Args:  cobra.NoArgs,
		RunE:  a.runListings,
	})

	priceCmd := &cobra.Command{
		Use:   "price [listing]",
		Short: "Print the price sheet of a listing",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runPrice,
	}
	priceCmd.Flags().Bool("save", false, "Persist the sheet as a quote")
	priceCmd.Flags().String("title", "", "Quote title used with --save")
	rootCmd.AddCommand(priceCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "quotes [query]",
		Short: "List saved quotes, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runQuotes,
	})

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve material and pattern codes to templates",
	}
	resolveCmd.AddCommand(&cobra.Command{
		Use:   "material [code]",
		Short: "Resolve a material code",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runResolveMaterial,
	})
	resolveCmd.AddCommand(&cobra.Command{
		Use:   "pattern [code]",
		Short: "Resolve a pattern code",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runResolvePattern,
	})
	installCmd := &cobra.Command{
		Use:   "installation [method]",
		Short: "Render an installation method",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runResolveInstallation,
	}
	installCmd.Flags().String("notes", "", "Free-form installation notes")
	installCmd.Flags().String("remove", "", "Bumper removal answer from the sheet")
	resolveCmd.AddCommand(installCmd)
	rootCmd.AddCommand(resolveCmd)

	return rootCmd
}

// database opens the configured database and brings its schema up to date.
func (a *app) database(ctx context.Context) (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	database, err := db.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(ctx, database); err != nil {
		database.Close()
		return nil, err
	}
	a.db = database
	return database, nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		a.log.Warn().Err(err).Msg("close database")
	}
	a.db = nil
}
