// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки внутренних деталей
//     (исключение — причины валидации, они предназначены пользователю).
package httperr

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/pribylovaa/pokedex-service/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не послать
//     "200 OK" с телом ошибки и не маскировать баг;
//   - ошибки валидации отдают причину как есть — она адресована пользователю;
//   - всё нераспознанное — 500/internal без утечки деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, envelope("internal", "internal error")
	}

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, envelope("invalid_argument", vErr.Reason)
	}

	switch {
	case errors.Is(err, service.ErrMalformedPayload):
		return http.StatusBadRequest, envelope("malformed_payload", "request body is not valid JSON")
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, envelope("invalid_argument", "invalid argument")
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, envelope("unauthenticated", "missing or invalid admin credentials")
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, envelope("permission_denied", "cannot delete original pokemon")
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, envelope("not_found", "not found")
	case errors.Is(err, service.ErrIDExhausted):
		return http.StatusConflict, envelope("id_exhausted", "could not allocate id, retry the request")
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, envelope("already_exists", "already exists")
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests, envelope("rate_limited", "too many requests")
	default:
		return http.StatusInternalServerError, envelope("internal", "internal error")
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка
// и Retry-After для отказов лимитера.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	var rlErr *service.RateLimitedError
	if errors.As(err, &rlErr) && rlErr.RetryAfter > 0 {
		seconds := int(math.Ceil(rlErr.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func envelope(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}
