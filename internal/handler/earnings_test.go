package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TheGeniusEditor/Sultan/internal/database"
	"github.com/TheGeniusEditor/Sultan/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// --- Mock EarningsStore ---

type mockEarningsStore struct {
	setDailyEarningsFn    func(ctx context.Context, arg database.SetDailyEarningsParams) (database.EarningsRecord, error)
	listEarningsRecordsFn func(ctx context.Context) ([]database.EarningsRecord, error)
}

func (m *mockEarningsStore) SetDailyEarnings(ctx context.Context, arg database.SetDailyEarningsParams) (database.EarningsRecord, error) {
	if m.setDailyEarningsFn != nil {
		return m.setDailyEarningsFn(ctx, arg)
	}
	return database.EarningsRecord{Date: arg.Date, TotalEarnings: arg.TotalEarnings}, nil
}

func (m *mockEarningsStore) ListEarningsRecords(ctx context.Context) ([]database.EarningsRecord, error) {
	if m.listEarningsRecordsFn != nil {
		return m.listEarningsRecordsFn(ctx)
	}
	return []database.EarningsRecord{}, nil
}

func newEarningsServer(store handler.EarningsStore) *httptest.Server {
	r := chi.NewRouter()
	h := handler.NewEarningsHandler(store)
	h.RegisterRoutes(r)
	return httptest.NewServer(r)
}

func TestSaveEarningsRecord(t *testing.T) {
	var gotArg database.SetDailyEarningsParams
	store := &mockEarningsStore{
		setDailyEarningsFn: func(ctx context.Context, arg database.SetDailyEarningsParams) (database.EarningsRecord, error) {
			gotArg = arg
			return database.EarningsRecord{Date: arg.Date, TotalEarnings: arg.TotalEarnings}, nil
		},
	}
	server := newEarningsServer(store)
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/save-earnings-record", "application/json",
		strings.NewReader(`{"date":"2026-08-31","totalEarnings":999}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "Record saved" {
		t.Errorf("body = %q, want %q", string(b), "Record saved")
	}

	if gotArg.Date != "2026-08-31" {
		t.Errorf("date = %q, want %q", gotArg.Date, "2026-08-31")
	}
	// The save API overwrites: the posted value goes to the store verbatim.
	total := database.DecimalFromNumeric(gotArg.TotalEarnings)
	if !total.Equal(decimal.NewFromInt(999)) {
		t.Errorf("totalEarnings = %s, want 999", total)
	}
}

func TestSaveEarningsRecordMalformedBody(t *testing.T) {
	server := newEarningsServer(&mockEarningsStore{})
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/save-earnings-record", "application/json",
		strings.NewReader(`{"date":`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "Internal Server Error" {
		t.Errorf("body = %q, want %q", string(b), "Internal Server Error")
	}
}

func TestSaveEarningsRecordStoreError(t *testing.T) {
	store := &mockEarningsStore{
		setDailyEarningsFn: func(ctx context.Context, arg database.SetDailyEarningsParams) (database.EarningsRecord, error) {
			return database.EarningsRecord{}, errors.New("db down")
		},
	}
	server := newEarningsServer(store)
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/save-earnings-record", "application/json",
		strings.NewReader(`{"date":"2026-08-31","totalEarnings":100}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}

func TestListEarningsRecords(t *testing.T) {
	n1, err := database.NumericFromDecimal(decimal.RequireFromString("150.00"))
	if err != nil {
		t.Fatalf("numeric: %v", err)
	}
	n2, err := database.NumericFromDecimal(decimal.RequireFromString("999"))
	if err != nil {
		t.Fatalf("numeric: %v", err)
	}
	store := &mockEarningsStore{
		listEarningsRecordsFn: func(ctx context.Context) ([]database.EarningsRecord, error) {
			return []database.EarningsRecord{
				{Date: "2026-08-30", TotalEarnings: n1},
				{Date: "2026-08-31", TotalEarnings: n2},
			}, nil
		},
	}
	server := newEarningsServer(store)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/earnings-records")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var records []struct {
		Date          string  `json:"date"`
		TotalEarnings float64 `json:"totalEarnings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Date != "2026-08-30" || records[0].TotalEarnings != 150.00 {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].TotalEarnings != 999 {
		t.Errorf("records[1].totalEarnings = %v, want 999", records[1].TotalEarnings)
	}
}

func TestListEarningsRecordsStoreError(t *testing.T) {
	store := &mockEarningsStore{
		listEarningsRecordsFn: func(ctx context.Context) ([]database.EarningsRecord, error) {
			return nil, errors.New("db down")
		},
	}
	server := newEarningsServer(store)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/earnings-records")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}
