package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/Simplici0/listing-pricer/internal/catalog"
	"github.com/Simplici0/listing-pricer/internal/pricing"
	"github.com/Simplici0/listing-pricer/internal/quotes"
	"github.com/Simplici0/listing-pricer/internal/templates"
)

const maxQuoteBody = 1 << 16

type pricesResponse struct {
	ListingID   string        `json:"listing_id"`
	ListingType string        `json:"listing_type"`
	Sheet       pricing.Sheet `json:"sheet"`
	WeightInfo  string        `json:"weight_info"`
}

type createQuoteRequest struct {
	Title string `json:"title"`
}

type createQuoteResponse struct {
	ID        uuid.UUID `json:"id"`
	ListingID string    `json:"listing_id"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleListings(w http.ResponseWriter, r *http.Request) {
	listings, err := s.catalog.Listings(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("list listings")
		respondError(w, http.StatusInternalServerError, "failed to load listings")
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (s *server) handleListingPrices(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.priceListing(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	body := http.MaxBytesReader(w, r.Body, maxQuoteBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, ok := s.priceListing(w, r)
	if !ok {
		return
	}

	id, err := s.quotes.Save(r.Context(), resp.ListingID, req.Title, resp.Sheet)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("listing", resp.ListingID).Msg("save quote")
		respondError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}

	hlog.FromRequest(r).Info().Str("quote", id.String()).Str("listing", resp.ListingID).Msg("quote saved")
	respondJSON(w, http.StatusCreated, createQuoteResponse{ID: id, ListingID: resp.ListingID})
}

// priceListing loads and prices the listing named in the route. It writes the error
// response itself and reports false when it did.
func (s *server) priceListing(w http.ResponseWriter, r *http.Request) (pricesResponse, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	rows, err := s.catalog.Rows(r.Context(), id)
	if errors.Is(err, catalog.ErrListingNotFound) {
		respondError(w, http.StatusNotFound, "listing not found")
		return pricesResponse{}, false
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("listing", id).Msg("load listing rows")
		respondError(w, http.StatusInternalServerError, "failed to load listing")
		return pricesResponse{}, false
	}

	listingType, err := catalog.CheckListingType(rows, s.columns.ListingType)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "unsupported listing type: "+listingType)
		return pricesResponse{}, false
	}

	sheet := s.engine.PriceListing(catalog.PricingRows(rows))
	logDefaults(r, id, sheet)

	return pricesResponse{
		ListingID:   id,
		ListingType: listingType,
		Sheet:       sheet,
		WeightInfo:  sheet.WeightInfo(),
	}, true
}

func logDefaults(r *http.Request, listingID string, sheet pricing.Sheet) {
	for _, res := range sheet.Results {
		if res.Price == 0 {
			hlog.FromRequest(r).Debug().
				Str("listing", listingID).
				Str("sku", res.SKU).
				Str("class", string(res.Class)).
				Msg("no price could be inferred")
		}
	}
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	list, err := s.quotes.List(r.Context(), query)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("list quotes")
		respondError(w, http.StatusInternalServerError, "failed to load quotes")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *server) handleQuoteDetail(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, q)
}

func (s *server) handleQuoteText(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, quotes.FormatText(q))
}

func (s *server) loadQuote(w http.ResponseWriter, r *http.Request) (quotes.Quote, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid quote id")
		return quotes.Quote{}, false
	}

	q, err := s.quotes.Get(r.Context(), id)
	if errors.Is(err, quotes.ErrNotFound) {
		respondError(w, http.StatusNotFound, "quote not found")
		return quotes.Quote{}, false
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("quote", id.String()).Msg("load quote")
		respondError(w, http.StatusInternalServerError, "failed to load quote")
		return quotes.Quote{}, false
	}
	return q, true
}

func (s *server) handleTemplate(kind templates.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(r.URL.Query().Get("code"))
		if code == "" {
			respondError(w, http.StatusBadRequest, "code is required")
			return
		}

		entry, ok := s.resolver.Resolve(kind, code)
		if !ok {
			hlog.FromRequest(r).Warn().Str("kind", string(kind)).Str("code", code).Msg("template not found")
			respondJSON(w, http.StatusNotFound, templates.Unknown(kind, code))
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
