package handlers

import (
	"errors"
	"net/http"

	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/workloads"
)

type workloadsResponse struct {
	Workloads []workloads.Summary `json:"workloads"`
}

type refreshResponse struct {
	Status string `json:"status"`
}

// Workloads returns the latest summary of every workload kind
func Workloads(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, workloadsResponse{Workloads: d.Store.Summaries()})
	}
}

// RefreshWorkloads requests an immediate workloads sync
func RefreshWorkloads(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Refresher.Trigger() {
			logging.Warn("workloads refresh already pending", "remote_ip", r.RemoteAddr)
			writeError(w, http.StatusTooManyRequests, errors.New("refresh already in progress"))
			return
		}
		logging.Info("workloads refresh triggered", "remote_ip", r.RemoteAddr)
		writeJSON(w, http.StatusAccepted, refreshResponse{Status: "accepted"})
	}
}
