package service

import (
	"context"
	"errors"

	"github.com/pribylovaa/pokedex-service/internal/models"
)

// ErrCatalogNotFound — внешний каталог не знает такую запись.
// Возвращается реализациями Catalog; сервис маппит её в ErrNotFound.
var ErrCatalogNotFound = errors.New("catalog: not found")

// RosterEntry — элемент ростера внешнего каталога: имя и ссылка на детали.
type RosterEntry struct {
	Name string
	URL  string
}

// Catalog — контракт внешнего источника (PokeAPI).
// Реализация нормализует внешний формат в models.Pokemon.
type Catalog interface {
	// Roster возвращает фиксированный список оригинальных покемонов (имя + URL деталей).
	Roster(ctx context.Context) ([]RosterEntry, error)
	// Detail загружает и нормализует детали по URL из ростера.
	Detail(ctx context.Context, url string) (*models.Pokemon, error)
	// DetailByID загружает детали по числовому идентификатору.
	// Неизвестный id — ErrCatalogNotFound.
	DetailByID(ctx context.Context, id int64) (*models.Pokemon, error)
	// DetailByName загружает детали по имени.
	// Неизвестное имя — ErrCatalogNotFound.
	DetailByName(ctx context.Context, name string) (*models.Pokemon, error)
	// TypeNames возвращает список имён типов из каталога.
	TypeNames(ctx context.Context) ([]string, error)
}
