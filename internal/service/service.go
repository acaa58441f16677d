// service содержит бизнес-логику pokedex-service.
package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pribylovaa/pokedex-service/internal/config"
	"github.com/pribylovaa/pokedex-service/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные аргументы.
	// HTTP: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedPayload — тело запроса не является корректным JSON.
	// Отличается от ошибки валидации: полезная нагрузка не дошла до валидатора.
	// HTTP: 400.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrUnauthenticated — отсутствует или неверен админ-ключ.
	// HTTP: 401.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrPermissionDenied — операция запрещена (удаление оригинальной записи).
	// HTTP: 403.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound — сущность отсутствует.
	// HTTP: 404.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности имени или идентификатора.
	// HTTP: 409.
	ErrAlreadyExists = errors.New("already exists")
	// ErrIDExhausted — не удалось подобрать свободный pokemon_id за отведённые попытки.
	// Вызывающему следует повторить запрос целиком.
	// HTTP: 409.
	ErrIDExhausted = errors.New("could not allocate id")
	// ErrRateLimited — превышен лимит запросов на refresh.
	// HTTP: 429.
	ErrRateLimited = errors.New("rate limited")
	// ErrUpstream — внешний каталог недоступен или ответил ошибкой.
	// HTTP: 500.
	ErrUpstream = errors.New("upstream failure")
)

// ValidationError — пользовательская ошибка валидации с человекочитаемой причиной.
// Причина безопасна для выдачи клиенту.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is сопоставляет ValidationError с сентинелом ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// RateLimitedError — отказ по лимиту с рекомендуемой паузой для Retry-After.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// Is сопоставляет RateLimitedError с сентинелом ErrRateLimited.
func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

// Service — описывает бизнес-логику pokedex-service.
type Service struct {
	storage storage.Storage
	catalog Catalog
	cfg     config.Config

	// Схлопывает конкурентные сидирования в один проход (cold-start гонка).
	seedGroup singleflight.Group
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, catalog Catalog, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		catalog: catalog,
		cfg:     cfg,
	}
}
