package handlers

import "net/http"

// Health — GET /health. Деградация БД отражается статусом 503,
// тело отдаём в обоих случаях.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status := h.svc.Health(r.Context())

	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, status)
}
