// storage определяет контракты доступа к БД для pokedex-service.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/pokedex-service/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (pokemon_id или lower(name)).
	ErrAlreadyExists = errors.New("already exists")
	// ErrUndefinedColumn — схема не содержит опциональных metadata-колонок
	// (is_custom/created_by). Сигнал для повторной вставки без метаданных.
	ErrUndefinedColumn = errors.New("undefined column")
)

// ListFilter — серверные предикаты выдачи.
type ListFilter struct {
	// Подстрочный поиск по имени без учёта регистра (ILIKE).
	Search string
	// Точное совпадение с одним из элементов массива type. Пустая строка — без фильтра.
	Type string
}

// ListOptions — параметры страничной выдачи.
type ListOptions struct {
	Filter ListFilter
	Sort   models.Sort
	Offset int
	Limit  int
}

// PokemonStorage описывает операции над сущностью models.Pokemon.
type PokemonStorage interface {
	// CountPokemons возвращает количество записей под фильтром.
	CountPokemons(ctx context.Context, filter ListFilter) (int64, error)
	// ListPokemons возвращает окно [offset, offset+limit) с фильтром и сортировкой.
	ListPokemons(ctx context.Context, opts ListOptions) ([]models.Pokemon, error)
	// PokemonByID возвращает запись по pokemon_id. Если записи нет — ErrNotFound.
	PokemonByID(ctx context.Context, id int64) (*models.Pokemon, error)
	// PokemonByName возвращает запись по имени без учёта регистра. Если записи нет — ErrNotFound.
	PokemonByName(ctx context.Context, name string) (*models.Pokemon, error)
	// SearchPokemonsByName возвращает записи с подстрочным совпадением имени.
	SearchPokemonsByName(ctx context.Context, name string) ([]models.Pokemon, error)
	// SavePokemons сохраняет пачку записей upsert-ом по pokemon_id (идемпотентное сидирование).
	SavePokemons(ctx context.Context, items []models.Pokemon) error
	// CreatePokemon вставляет одну запись. withMeta=false — без колонок is_custom/created_by
	// (фолбэк для деградировавшей схемы). Конфликт уникальности — ErrAlreadyExists,
	// отсутствие metadata-колонок — ErrUndefinedColumn.
	CreatePokemon(ctx context.Context, p *models.Pokemon, withMeta bool) error
	// DeletePokemon удаляет запись и возвращает число затронутых строк.
	DeletePokemon(ctx context.Context, id int64) (int64, error)
	// DeleteAllPokemons очищает таблицу целиком (принудительный refresh).
	DeleteAllPokemons(ctx context.Context) error
}

// TypeStorage описывает операции над словарём типов.
type TypeStorage interface {
	// ListTypes возвращает имена типов в порядке вставки.
	ListTypes(ctx context.Context) ([]string, error)
	// SaveTypes сохраняет имена типов (повторные вставки игнорируются).
	SaveTypes(ctx context.Context, names []string) error
}

// Storage задаёт контракт доступа к хранилищу для pokedex-service.
type Storage interface {
	PokemonStorage
	TypeStorage
	// Ping проверяет доступность хранилища (healthcheck).
	Ping(ctx context.Context) error
	Close()
}
