package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"doc-insights-go/internal/dataset"
	"doc-insights-go/internal/insights"
	"doc-insights-go/internal/logger"
	"doc-insights-go/internal/records"
	"doc-insights-go/internal/report"
	"doc-insights-go/internal/tableview"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "doc-insights-go").Info("starting service")

	client, err := records.NewClientFromEnv()
	if err != nil {
		log.WithError(err).Warn("backend client unavailable, only /demo will serve data")
	}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// insights panel for one document
	mux.HandleFunc("/insights", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "insights")
		reqLog.Info("insights request received")

		docID := r.URL.Query().Get("document_id")
		if docID == "" {
			reqLog.Warn("missing document_id")
			http.Error(w, "missing document_id", http.StatusBadRequest)
			return
		}
		if client == nil {
			http.Error(w, "backend not configured", http.StatusServiceUnavailable)
			return
		}
		expanded := tableview.FromCategories(splitParam(r.URL.Query().Get("expanded")))

		start := time.Now()
		recs, err := client.FetchDocumentRecords(docID)
		if err != nil {
			reqLog.WithError(err).Warn("backend fetch failed")
			http.Error(w, "backend fetch failed", http.StatusBadGateway)
			return
		}
		panel := insights.BuildPanel(docID, recs, expanded)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).WithField("records", len(recs)).Info("panel built")
		writeJSON(w, reqLog, panel)
	})

	// full-snapshot xlsx export
	mux.HandleFunc("/insights/export", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "export")
		reqLog.Info("export request received")

		docID := r.URL.Query().Get("document_id")
		if docID == "" {
			http.Error(w, "missing document_id", http.StatusBadRequest)
			return
		}
		if client == nil {
			http.Error(w, "backend not configured", http.StatusServiceUnavailable)
			return
		}
		recs, err := client.FetchDocumentRecords(docID)
		if err != nil {
			reqLog.WithError(err).Warn("backend fetch failed")
			http.Error(w, "backend fetch failed", http.StatusBadGateway)
			return
		}
		panel := insights.BuildExpandedPanel(docID, recs)
		b, err := report.Export(panel)
		if err != nil {
			reqLog.WithError(err).Error("export failed")
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", docID+"-insights.xlsx"))
		w.Write(b)
	})

	// demo endpoint (build the panel from a local spreadsheet export)
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "demo")
		reqLog.Info("demo invoked")
		recs, err := dataset.Load(envOr("DATASET_PATH", "extractions_sample.xlsx"))
		if err != nil {
			reqLog.WithError(err).Error("dataset load error")
			http.Error(w, "dataset load error", 500)
			return
		}
		panel := insights.BuildExpandedPanel("demo", recs)
		writeJSON(w, reqLog, panel)
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func writeJSON(w http.ResponseWriter, log *logrus.Entry, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
