package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pribylovaa/pokedex-service/internal/models"
	"github.com/pribylovaa/pokedex-service/internal/storage"
	"github.com/pribylovaa/pokedex-service/pkg/log"
)

// ListQuery — параметры чтения коллекции после транспортного парсинга.
// Числа <=0 и неизвестный sort молча откатываются к дефолтам;
// недопустимый Type — единственное, что отклоняется ошибкой.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
	Type     string
	Sort     string
	// Refresh выставляется транспортом только после проверки админ-ключа и лимита.
	Refresh bool
}

// Pagination — блок пагинации ответа. Page — уже зажатая страница, не запрошенная.
type Pagination struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// PokemonPage — страница выдачи коллекции.
type PokemonPage struct {
	Records    []models.Pokemon `json:"records"`
	Pagination Pagination       `json:"pagination"`
}

// ListPokemons возвращает страницу коллекции, при необходимости сидируя стор.
//
// Порядок: нормализация параметров -> проверка словаря типов -> сидирование
// (пустой стор или авторизованный refresh) -> подсчёт под фильтром ->
// зажатие страницы -> выборка окна.
func (s *Service) ListPokemons(ctx context.Context, q ListQuery) (*PokemonPage, error) {
	const op = "service.queries.ListPokemons"

	lg := log.From(ctx)

	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = s.cfg.Limits.DefaultPageSize
	}
	if q.PageSize > s.cfg.Limits.MaxPageSize {
		q.PageSize = s.cfg.Limits.MaxPageSize
	}

	q.Search = truncateSearch(strings.TrimSpace(q.Search), s.cfg.Limits.SearchMaxLen)

	// Фильтр по типу проверяется до любого похода в стор.
	typeFilter := strings.ToLower(strings.TrimSpace(q.Type))
	if typeFilter == "all" {
		typeFilter = ""
	}
	if typeFilter != "" && !models.AllowedType(typeFilter) {
		return nil, fmt.Errorf("%s: %w", op, validationf("unknown type: %q", typeFilter))
	}

	sort := models.ParseSort(q.Sort)

	// Чтение — это и cold-start путь: пустой стор сидируется синхронно.
	unfiltered, err := s.storage.CountPokemons(ctx, storage.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	if unfiltered == 0 || q.Refresh {
		if seedErr := s.SeedPokemons(ctx, q.Refresh); seedErr != nil {
			return nil, fmt.Errorf("%s: seed: %w", op, seedErr)
		}
	}

	filter := storage.ListFilter{Search: q.Search, Type: typeFilter}

	total, err := s.storage.CountPokemons(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: count_filtered: %w", op, err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	}

	page := q.Page
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * q.PageSize

	var records []models.Pokemon
	if total > 0 {
		records, err = s.storage.ListPokemons(ctx, storage.ListOptions{
			Filter: filter,
			Sort:   sort,
			Offset: offset,
			Limit:  q.PageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: list: %w", op, err)
		}
	}
	if records == nil {
		records = []models.Pokemon{}
	}

	lg.Info("list_pokemons_ok",
		slog.String("op", op),
		slog.Int("page", page),
		slog.Int("page_size", q.PageSize),
		slog.Int64("total", total),
	)

	return &PokemonPage{
		Records: records,
		Pagination: Pagination{
			Page:        page,
			PageSize:    q.PageSize,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

// truncateSearch обрезает поисковую строку до max байт по границе руны:
// разрезанная многобайтовая руна превращает параметр ILIKE в невалидный UTF-8,
// который Postgres отклоняет.
func truncateSearch(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// PokemonByID возвращает запись по идентификатору.
// Промах в сторе — живой запрос в каталог без персиста результата.
//
// Ошибки:
//   - ErrNotFound — ни стор, ни каталог записи не знают;
//   - ErrUpstream — каталог недоступен/ответил ошибкой.
func (s *Service) PokemonByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	const op = "service.queries.PokemonByID"

	lg := log.From(ctx)

	p, err := s.storage.PokemonByID(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		lg.Error("pokemon_by_id_storage_error",
			slog.String("op", op),
			slog.Int64("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err = s.catalog.DetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCatalogNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("pokemon_by_id_upstream_error",
			slog.String("op", op),
			slog.Int64("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w: %s", op, ErrUpstream, err)
	}

	return p, nil
}

// SearchPokemons — подстрочный поиск по имени: стор, затем каталог.
// Живой результат каталога не персистится и отдаётся списком из одного элемента.
func (s *Service) SearchPokemons(ctx context.Context, name string) ([]models.Pokemon, error) {
	const op = "service.queries.SearchPokemons"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, validationf("name parameter is required"))
	}
	name = truncateSearch(name, s.cfg.Limits.SearchMaxLen)

	items, err := s.storage.SearchPokemonsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(items) > 0 {
		return items, nil
	}

	p, err := s.catalog.DetailByName(ctx, strings.ToLower(name))
	if err != nil {
		if errors.Is(err, ErrCatalogNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %s", op, ErrUpstream, err)
	}

	return []models.Pokemon{*p}, nil
}

// Types возвращает словарь типов: стор, при пустом — каталог с ленивым сохранением.
// Неудача сохранения логируется, данные каталога всё равно отдаются.
func (s *Service) Types(ctx context.Context) ([]string, error) {
	const op = "service.queries.Types"

	lg := log.From(ctx)

	names, err := s.storage.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(names) > 0 {
		return names, nil
	}

	lg.Info("types_seed_started", slog.String("op", op))

	names, err = s.catalog.TypeNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUpstream, err)
	}

	if saveErr := s.storage.SaveTypes(ctx, names); saveErr != nil {
		lg.Warn("types_seed_insert_failed",
			slog.String("op", op),
			slog.String("err", saveErr.Error()),
		)
	}

	return names, nil
}

// HealthStatus — результат проверки живости сервиса.
type HealthStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Database  string    `json:"database"`
	CheckedAt time.Time `json:"checkedAt"`
	LatencyMS int64     `json:"latencyMs"`
}

// Health проверяет доступность хранилища и сообщает задержку проверки.
func (s *Service) Health(ctx context.Context) HealthStatus {
	const op = "service.queries.Health"

	started := time.Now()
	status := HealthStatus{
		Status:   "ok",
		Service:  "pokedex-service",
		Database: "healthy",
	}

	if err := s.storage.Ping(ctx); err != nil {
		log.From(ctx).Warn("healthcheck_db_degraded",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		status.Status = "degraded"
		status.Database = "unhealthy"
	}

	status.CheckedAt = time.Now().UTC()
	status.LatencyMS = time.Since(started).Milliseconds()

	return status
}
