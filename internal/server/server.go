// Package server exposes the dayflow resource collections (habits,
// checkIns, tasks) over a small REST surface for the client to sync
// against.
package server

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"dayflow/internal/logger"
	"dayflow/internal/store"
)

// Server routes resource requests to the SQLite stores.
type Server struct {
	habits   *store.HabitStore
	checkIns *store.CheckInStore
	tasks    *store.TaskStore
}

// New wires a server over an open database.
func New(db *sql.DB) *Server {
	return &Server{
		habits:   store.NewHabitStore(db),
		checkIns: store.NewCheckInStore(db),
		tasks:    store.NewTaskStore(db),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /habits", s.listHabits)
	mux.HandleFunc("POST /habits", s.createHabit)
	mux.HandleFunc("PATCH /habits/{id}", s.updateHabit)
	mux.HandleFunc("DELETE /habits/{id}", s.deleteHabit)

	mux.HandleFunc("GET /checkIns", s.listCheckIns)
	mux.HandleFunc("POST /checkIns", s.createCheckIn)
	mux.HandleFunc("PATCH /checkIns/{id}", s.updateCheckIn)
	mux.HandleFunc("DELETE /checkIns/{id}", s.deleteCheckIn)

	mux.HandleFunc("GET /tasks", s.listTasks)
	mux.HandleFunc("POST /tasks", s.createTask)
	mux.HandleFunc("PATCH /tasks/{id}", s.updateTask)
	mux.HandleFunc("DELETE /tasks/{id}", s.deleteTask)

	return requestLog(mux)
}

// requestLog records every request with its status and duration.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
