// Package handlers implements the JSON endpoints of the dashboard server.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/workloads"
)

// Refresher requests an out-of-band workloads sync
type Refresher interface {
	Trigger() bool
}

// Deps is what the handlers share
type Deps struct {
	Fetcher   k8s.Fetcher
	Store     *workloads.Store
	Refresher Refresher
	Context   string
	Namespace string // default namespace when the request has none
	StartTime time.Time
	TimeNow   func() time.Time // for testing, defaults to time.Now
}

func (d Deps) now() time.Time {
	if d.TimeNow == nil {
		return time.Now()
	}
	return d.TimeNow()
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Debug("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
