package handlers

import "net/http"

type healthzResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Context       string  `json:"context,omitempty"`
}

func Healthz(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:        "ok",
			UptimeSeconds: d.now().Sub(d.StartTime).Seconds(),
			Context:       d.Context,
		})
	}
}
