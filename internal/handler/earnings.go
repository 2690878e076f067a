package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/TheGeniusEditor/Sultan/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// EarningsStore defines the database methods needed by earnings handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type EarningsStore interface {
	SetDailyEarnings(ctx context.Context, arg database.SetDailyEarningsParams) (database.EarningsRecord, error)
	ListEarningsRecords(ctx context.Context) ([]database.EarningsRecord, error)
}

// EarningsHandler handles the earnings ledger endpoints.
type EarningsHandler struct {
	store EarningsStore
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(store EarningsStore) *EarningsHandler {
	return &EarningsHandler{store: store}
}

// RegisterRoutes registers earnings endpoints on the given Chi router.
func (h *EarningsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/save-earnings-record", h.Save)
	r.Get("/api/earnings-records", h.List)
}

type saveEarningsRequest struct {
	Date          string  `json:"date"`
	TotalEarnings float64 `json:"totalEarnings"`
}

type earningsRecordResponse struct {
	Date          string  `json:"date"`
	TotalEarnings float64 `json:"totalEarnings"`
}

// Save handles POST /api/save-earnings-record. Unlike checkout, this is an
// unconditional overwrite: whatever value is posted replaces the date's
// total.
func (h *EarningsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveEarningsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: decode earnings request: %v", err)
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	total, err := database.NumericFromDecimal(decimal.NewFromFloat(req.TotalEarnings))
	if err != nil {
		log.Printf("ERROR: convert earnings total: %v", err)
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if _, err := h.store.SetDailyEarnings(r.Context(), database.SetDailyEarningsParams{
		Date:          req.Date,
		TotalEarnings: total,
	}); err != nil {
		log.Printf("ERROR: save earnings record: %v", err)
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeText(w, http.StatusOK, "Record saved")
}

// List handles GET /api/earnings-records.
func (h *EarningsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListEarningsRecords(r.Context())
	if err != nil {
		log.Printf("ERROR: list earnings records: %v", err)
		writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := make([]earningsRecordResponse, len(records))
	for i, rec := range records {
		resp[i] = earningsRecordResponse{
			Date:          rec.Date,
			TotalEarnings: database.DecimalFromNumeric(rec.TotalEarnings).InexactFloat64(),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
