package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/pribylovaa/pokedex-service/internal/models"
	"github.com/pribylovaa/pokedex-service/internal/storage"
	"github.com/pribylovaa/pokedex-service/pkg/log"
)

// Диапазон идентификаторов пользовательских записей.
// Не пересекается с оригинальными id (<= models.OriginalMaxID).
const (
	customIDMin = 100000
	customIDMax = 999999
	// Количество попыток подобрать свободный id.
	idProbeAttempts = 7
)

// CreatePokemon создаёт пользовательскую запись из проверенного ввода.
//
// Порядок: подбор свободного id -> предпроверка уникальности имени ->
// вставка с метаданными (is_custom/created_by), при отсутствии колонок в схеме —
// одна повторная вставка без них.
//
// Ошибки:
//   - ErrIDExhausted — свободный id не найден за idProbeAttempts попыток;
//   - ErrAlreadyExists — имя занято (предпроверка) либо гонка на вставке.
func (s *Service) CreatePokemon(ctx context.Context, input *ValidatedPokemonInput, createdBy string) (*models.Pokemon, error) {
	const op = "service.mutations.CreatePokemon"

	lg := log.From(ctx)

	id, err := s.allocateID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Предпроверка имени на уровне приложения; гонку закрывает уникальный индекс.
	if _, err := s.storage.PokemonByName(ctx, input.Name); err == nil {
		return nil, fmt.Errorf("%s: name %q: %w", op, input.Name, ErrAlreadyExists)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: name_check: %w", op, err)
	}

	isCustom := true
	p := &models.Pokemon{
		PokemonID: id,
		Name:      input.Name,
		Image:     input.Image,
		HP:        input.HP,
		Attack:    input.Attack,
		Defense:   input.Defense,
		Speed:     input.Speed,
		Height:    input.Height,
		Weight:    input.Weight,
		Types:     input.Types,
		IsCustom:  &isCustom,
	}
	if createdBy != "" {
		p.CreatedBy = &createdBy
	}

	err = s.storage.CreatePokemon(ctx, p, true)
	if errors.Is(err, storage.ErrUndefinedColumn) {
		// Схема без metadata-колонок: одна повторная вставка без них.
		lg.Warn("create_pokemon_meta_fallback",
			slog.String("op", op),
			slog.Int64("id", id),
		)
		p.IsCustom = nil
		p.CreatedBy = nil
		err = s.storage.CreatePokemon(ctx, p, false)
	}
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Гонка между предпроверкой и вставкой.
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	lg.Info("create_pokemon_ok",
		slog.String("op", op),
		slog.Int64("id", id),
		slog.String("name", p.Name),
	)

	return p, nil
}

// allocateID подбирает свободный случайный id из пользовательского диапазона.
func (s *Service) allocateID(ctx context.Context) (int64, error) {
	for attempt := 0; attempt < idProbeAttempts; attempt++ {
		id := int64(customIDMin + rand.IntN(customIDMax-customIDMin+1))

		_, err := s.storage.PokemonByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return 0, err
		}
	}

	return 0, ErrIDExhausted
}

// DeletePokemon удаляет пользовательскую запись.
//
// Ошибки:
//   - ErrInvalidArgument — неположительный id;
//   - ErrNotFound — записи нет (в т.ч. нулевые затронутые строки при гонке);
//   - ErrPermissionDenied — запись оригинальная и удалению не подлежит.
func (s *Service) DeletePokemon(ctx context.Context, id int64) error {
	const op = "service.mutations.DeletePokemon"

	lg := log.From(ctx)

	if id <= 0 {
		return fmt.Errorf("%s: %w", op, validationf("id must be a positive integer"))
	}

	p, err := s.storage.PokemonByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !p.Custom() {
		return fmt.Errorf("%s: id %d: %w", op, id, ErrPermissionDenied)
	}

	affected, err := s.storage.DeletePokemon(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		// Запись исчезла между проверкой и удалением.
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	lg.Info("delete_pokemon_ok",
		slog.String("op", op),
		slog.Int64("id", id),
	)

	return nil
}
