package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/pribylovaa/pokedex-service/internal/config"
	"github.com/pribylovaa/pokedex-service/internal/ratelimit"
	"github.com/pribylovaa/pokedex-service/internal/service"
)

// Заголовки админ-ключа и идентичности создателя.
const (
	AdminHeaderName   = "x-admin-key"
	CreatorHeaderName = "x-user-id"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	svc     *service.Service
	limiter ratelimit.Limiter
	cfg     config.Config
}

func New(svc *service.Service, limiter ratelimit.Limiter, cfg config.Config) *Handlers {
	return &Handlers{svc: svc, limiter: limiter, cfg: cfg}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// requireAdmin сверяет x-admin-key с настроенным секретом.
// Пустой настроенный секрет означает «админ-операции выключены»: всегда отказ.
func (h *Handlers) requireAdmin(r *http.Request) error {
	configured := strings.TrimSpace(h.cfg.Admin.APIKey)
	provided := strings.TrimSpace(r.Header.Get(AdminHeaderName))

	if configured == "" || provided == "" ||
		subtle.ConstantTimeCompare([]byte(configured), []byte(provided)) != 1 {
		return fmt.Errorf("admin key check: %w", service.ErrUnauthenticated)
	}

	return nil
}

// clientIP — сетевая идентичность вызывающего для ключа лимитера.
// Доверяем первому адресу X-Forwarded-For (сервис живёт за прокси),
// иначе берём host-часть RemoteAddr.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		if ip := strings.TrimSpace(fwd); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
