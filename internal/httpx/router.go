package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leadspring/attribution-go/internal/attribution"
	"github.com/leadspring/attribution-go/internal/models"
	"github.com/leadspring/attribution-go/internal/obs"
	"github.com/leadspring/attribution-go/internal/utils"
)

func NewRouter(log *slog.Logger, svc *attribution.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", obs.Handler())

	mux.Get("/reports/attribution", func(w http.ResponseWriter, r *http.Request) {
		f, err := parseReportQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, svc.Report(r.Context(), f))
	})

	return mux
}

// parseReportQuery owns request validation: the aggregator behind it
// assumes a present, ordered date range and never re-checks.
func parseReportQuery(v url.Values) (models.Filters, error) {
	var f models.Filters
	start, err := time.Parse("2006-01-02", v.Get("start_date"))
	if err != nil {
		return f, errors.New("start_date required (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", v.Get("end_date"))
	if err != nil {
		return f, errors.New("end_date required (YYYY-MM-DD)")
	}
	if start.After(end) {
		return f, errors.New("start_date must not be after end_date")
	}
	f.StartDate = v.Get("start_date")
	f.EndDate = v.Get("end_date")
	f.UTMSource = v.Get("utm_source")
	f.AdID = v.Get("ad_id")
	return f, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
