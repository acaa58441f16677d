package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/pokedex-service/internal/http/httperr"
	"github.com/pribylovaa/pokedex-service/internal/service"
	logctx "github.com/pribylovaa/pokedex-service/pkg/log"
)

// ListPokemons — GET /pokemons.
// Параметры: page, pageSize, search, type, sort, refresh.
// refresh=true — админ-операция: сначала проверка ключа, затем лимит.
func (h *Handlers) ListPokemons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := service.ListQuery{
		Page:     intQuery(q.Get("page")),
		PageSize: intQuery(q.Get("pageSize")),
		Search:   q.Get("search"),
		Type:     q.Get("type"),
		Sort:     q.Get("sort"),
	}

	if strings.EqualFold(q.Get("refresh"), "true") {
		if err := h.requireAdmin(r); err != nil {
			httperr.WriteError(w, r, err)
			return
		}
		if err := h.consume(r, "refresh"); err != nil {
			httperr.WriteError(w, r, err)
			return
		}
		query.Refresh = true
	}

	page, err := h.svc.ListPokemons(r.Context(), query)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// PokemonByID — GET /pokemons/{id}.
func (h *Handlers) PokemonByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.WriteError(w, r, &service.ValidationError{Reason: "id must be a positive integer"})
		return
	}

	p, err := h.svc.PokemonByID(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// SearchPokemon — GET /pokemons/search?name=.
func (h *Handlers) SearchPokemon(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.SearchPokemons(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// CreatePokemon — POST /pokemons. Только для администратора.
// Тело валидируется до обращения к хранилищу; битый JSON — 400/malformed_payload.
func (h *Handlers) CreatePokemon(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		httperr.WriteError(w, r, err)
		return
	}
	if err := h.consume(r, "create"); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httperr.WriteError(w, r, fmt.Errorf("decode payload: %w", service.ErrMalformedPayload))
		return
	}

	input, err := service.ValidatePokemonInput(payload)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	createdBy := strings.TrimSpace(r.Header.Get(CreatorHeaderName))

	p, err := h.svc.CreatePokemon(r.Context(), input, createdBy)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// DeletePokemon — DELETE /pokemons?id=. Только для администратора,
// и только для пользовательских записей (id за пределами исходного ростера).
func (h *Handlers) DeletePokemon(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.WriteError(w, r, &service.ValidationError{Reason: "id must be a positive integer"})
		return
	}

	if err := h.svc.DeletePokemon(r.Context(), id); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "pokemon deleted"})
}

// consume расходует квоту лимитера для операции; ошибки лимитера не
// блокируют запрос — бэкенд квоты может быть недоступен.
func (h *Handlers) consume(r *http.Request, bucket string) error {
	if h.limiter == nil {
		return nil
	}

	res, err := h.limiter.Consume(r.Context(), bucket, clientIP(r))
	if err != nil {
		logctx.From(r.Context()).Warn("rate_limit_backend_failed",
			slog.String("bucket", bucket),
			slog.String("err", err.Error()))
		return nil
	}
	if !res.Allowed {
		return &service.RateLimitedError{RetryAfter: res.RetryAfter}
	}

	return nil
}

func intQuery(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
