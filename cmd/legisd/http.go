package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mainelegis/services/roster"
)

type runResponse struct {
	ID          int64     `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	MemberCount int       `json:"member_count"`
}

func runToResponse(run roster.Run) runResponse {
	return runResponse{
		ID:          run.ID,
		StartedAt:   run.StartedAt,
		FinishedAt:  run.FinishedAt,
		MemberCount: run.MemberCount,
	}
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}

func registerHandlers(mux *http.ServeMux, service roster.Service, csvPath string) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /roster.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		http.ServeFile(w, r, csvPath)
	})

	mux.HandleFunc("GET /api/runs", func(w http.ResponseWriter, r *http.Request) {
		runs, err := service.Runs(r.Context())
		if err != nil {
			writeJson(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		out := make([]runResponse, 0, len(runs))
		for _, run := range runs {
			out = append(out, runToResponse(run))
		}
		writeJson(w, http.StatusOK, out)
	})

	mux.HandleFunc("GET /api/runs/latest", func(w http.ResponseWriter, r *http.Request) {
		run, err := service.LatestRun(r.Context())
		if errors.Is(err, sql.ErrNoRows) {
			writeJson(w, http.StatusNotFound, map[string]string{"error": "no runs recorded yet"})
			return
		}
		if err != nil {
			writeJson(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJson(w, http.StatusOK, runToResponse(run))
	})
}
