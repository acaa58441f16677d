package handlers

import (
	"net/http"

	"github.com/pribylovaa/pokedex-service/internal/http/httperr"
)

// ListTypes — GET /types. Справочник типов из хранилища,
// при пустом хранилище — из внешнего каталога.
func (h *Handlers) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.Types(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"types": types})
}
