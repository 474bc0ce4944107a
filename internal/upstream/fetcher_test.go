package upstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadspring/attribution-go/internal/models"
)

func fastOpts() Options {
	return Options{Timeout: 500 * time.Millisecond, Retries: 2, RetryDelay: 10 * time.Millisecond}
}

func testFilters() models.Filters {
	return models.Filters{StartDate: "2025-08-01", EndDate: "2025-08-31", UTMSource: "facebook"}
}

func TestFindLeadsSendsCommandAndFilters(t *testing.T) {
	var got rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode([]models.Lead{{ID: "l1", UTMSource: "facebook"}})
	}))
	defer srv.Close()

	c := NewClient("sales", srv.URL, fastOpts(), slog.Default())
	leads := c.FindLeads(context.Background(), testFilters())

	require.Len(t, leads, 1)
	assert.Equal(t, "l1", leads[0].ID)
	assert.Equal(t, CmdFindLeads, got.Cmd)
	assert.Equal(t, "2025-08-01", got.Data.StartDate)
	assert.Equal(t, "facebook", got.Data.UTMSource)
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]models.Cost{{UTMSource: "facebook", Spend: 42, Date: "2025-08-01"}})
	}))
	defer srv.Close()

	c := NewClient("cost-importer", srv.URL, fastOpts(), slog.Default())
	costs := c.FindCosts(context.Background(), testFilters())

	require.Len(t, costs, 1)
	assert.InDelta(t, 42, costs[0].Spend, 1e-9)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchFailSoftAfterExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient("sales", srv.URL, fastOpts(), slog.Default())
	deals := c.FindDeals(context.Background(), testFilters())

	assert.NotNil(t, deals)
	assert.Empty(t, deals)
	assert.Equal(t, int32(3), calls.Load()) // first attempt + 2 retries
}

func TestFetchFailSoftOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient("sales", srv.URL, Options{
		Timeout:    20 * time.Millisecond,
		Retries:    1,
		RetryDelay: 5 * time.Millisecond,
	}, slog.Default())

	leads := c.FindLeads(context.Background(), testFilters())
	assert.Empty(t, leads)
}

func TestFetchFailSoftOnConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient("sales", srv.URL, fastOpts(), slog.Default())
	assert.Empty(t, c.FindLeads(context.Background(), testFilters()))
}

func TestFetchFailSoftOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	c := NewClient("sales", srv.URL, fastOpts(), slog.Default())
	assert.Empty(t, c.FindLeads(context.Background(), testFilters()))
}

func TestFetchNullBodyBecomesEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))
	defer srv.Close()

	c := NewClient("sales", srv.URL, fastOpts(), slog.Default())
	leads := c.FindLeads(context.Background(), testFilters())
	assert.NotNil(t, leads)
	assert.Empty(t, leads)
}
