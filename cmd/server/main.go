package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/Simplici0/listing-pricer/internal/catalog"
	"github.com/Simplici0/listing-pricer/internal/config"
	"github.com/Simplici0/listing-pricer/internal/db"
	"github.com/Simplici0/listing-pricer/internal/logging"
	"github.com/Simplici0/listing-pricer/internal/migrations"
	"github.com/Simplici0/listing-pricer/internal/pricing"
	"github.com/Simplici0/listing-pricer/internal/quotes"
	"github.com/Simplici0/listing-pricer/internal/seed"
	"github.com/Simplici0/listing-pricer/internal/templates"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	engine   *pricing.Engine
	columns  pricing.Columns
	catalog  *catalog.Store
	quotes   *quotes.Store
	resolver *templates.Resolver
	auth     *tokenAuth
	log      zerolog.Logger
}

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel, cfg.IsDev())
	for _, w := range cfg.Warnings() {
		logger.Warn().Msg(w)
	}

	tables, err := cfg.Tables()
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.TablesPath).Msg("failed to load pricing tables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(ctx, database); err != nil {
			logger.Fatal().Err(err).Msg("failed to run database migrations")
		}
		stats, err := seed.Run(ctx, database, tables.Columns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo listings")
		}
		logger.Info().Int("inserts", stats.Inserts).Msg("seed complete")
	}

	srv := &server{
		engine:   pricing.NewEngine(tables),
		columns:  tables.Columns,
		catalog:  catalog.NewStore(database),
		quotes:   quotes.NewStore(database),
		resolver: templates.DefaultResolver(),
		auth:     newTokenAuth(cfg.APIToken),
		log:      logger,
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	logger.Info().Str("addr", httpServer.Addr).Str("env", cfg.Env).Msg("listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(s.log))
	r.Use(requestIDLogger)
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Get("/listings", s.handleListings)
	r.Get("/listings/{id}/prices", s.handleListingPrices)
	r.With(s.auth.middleware).Post("/listings/{id}/quotes", s.handleCreateQuote)

	r.Get("/quotes", s.handleQuotesList)
	r.Get("/quotes/{id}", s.handleQuoteDetail)
	r.Get("/quotes/{id}/text", s.handleQuoteText)

	r.Get("/templates/materials", s.handleTemplate(templates.KindMaterial))
	r.Get("/templates/patterns", s.handleTemplate(templates.KindPattern))

	return r
}

// requestIDLogger tags the request logger with chi's request id.
func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}
