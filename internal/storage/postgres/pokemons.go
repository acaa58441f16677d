package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/pokedex-service/internal/models"
	"github.com/pribylovaa/pokedex-service/internal/storage"
)

// Колонки is_custom/created_by могут отсутствовать в урезанной схеме:
// чтения сначала пробуют полный набор и откатываются на базовый,
// признак пользовательской записи тогда выводится из диапазона id.
const (
	basePokemonColumns = `pokemon_id, name, image, hp, attack, defense, speed, height, weight, type`
	fullPokemonColumns = basePokemonColumns + `, is_custom, created_by`
)

func selectColumns(withMeta bool) string {
	if withMeta {
		return fullPokemonColumns
	}
	return basePokemonColumns
}

// isUndefinedColumn распознаёт ошибку 42703 (undefined_column).
func isUndefinedColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedColumn
}

// buildWhere собирает WHERE-часть под фильтр выдачи.
// Возвращает SQL-фрагмент (возможно пустой) и позиционные аргументы.
func buildWhere(filter storage.ListFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("$%d = ANY(type)", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy транслирует models.Sort в ORDER BY с тай-брейком по pokemon_id.
// Колонка берётся из закрытого набора, пользовательский ввод сюда не попадает.
func orderBy(sort models.Sort) string {
	var col string
	switch sort.Field {
	case models.SortByName:
		col = "name"
	case models.SortByHP:
		col = "hp"
	case models.SortByAttack:
		col = "attack"
	case models.SortByDefense:
		col = "defense"
	case models.SortBySpeed:
		col = "speed"
	default:
		col = "pokemon_id"
	}

	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	if col == "pokemon_id" {
		return fmt.Sprintf(" ORDER BY pokemon_id %s", dir)
	}

	return fmt.Sprintf(" ORDER BY %s %s, pokemon_id ASC", col, dir)
}

// scanPokemon — общий скан строки в models.Pokemon.
func scanPokemon(row pgx.Row, withMeta bool) (*models.Pokemon, error) {
	var p models.Pokemon
	dest := []any{
		&p.PokemonID,
		&p.Name,
		&p.Image,
		&p.HP,
		&p.Attack,
		&p.Defense,
		&p.Speed,
		&p.Height,
		&p.Weight,
		&p.Types,
	}
	if withMeta {
		dest = append(dest, &p.IsCustom, &p.CreatedBy)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	return &p, nil
}

// selectOne выполняет одиночную выборку; tail — часть запроса после FROM.
func (s *Storage) selectOne(ctx context.Context, withMeta bool, tail string, args ...any) (*models.Pokemon, error) {
	row := s.db.QueryRow(ctx, `SELECT `+selectColumns(withMeta)+` FROM pokemons`+tail, args...)
	return scanPokemon(row, withMeta)
}

// selectMany выполняет многострочную выборку; tail — часть запроса после FROM.
func (s *Storage) selectMany(ctx context.Context, withMeta bool, tail string, args ...any) ([]models.Pokemon, error) {
	rows, err := s.db.Query(ctx, `SELECT `+selectColumns(withMeta)+` FROM pokemons`+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Pokemon
	for rows.Next() {
		p, scanErr := scanPokemon(rows, withMeta)
		if scanErr != nil {
			return nil, fmt.Errorf("scan row: %w", scanErr)
		}

		items = append(items, *p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows: %w", rows.Err())
	}

	return items, nil
}

// CountPokemons возвращает количество записей под фильтром.
func (s *Storage) CountPokemons(ctx context.Context, filter storage.ListFilter) (int64, error) {
	const op = "storage.postgres.CountPokemons"

	where, args := buildWhere(filter)

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM pokemons`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

// ListPokemons возвращает окно выдачи с фильтром и сортировкой.
func (s *Storage) ListPokemons(ctx context.Context, opts storage.ListOptions) ([]models.Pokemon, error) {
	const op = "storage.postgres.ListPokemons"

	where, args := buildWhere(opts.Filter)

	tail := where + orderBy(opts.Sort)
	args = append(args, opts.Limit, opts.Offset)
	tail += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	items, err := s.selectMany(ctx, true, tail, args...)
	if isUndefinedColumn(err) {
		items, err = s.selectMany(ctx, false, tail, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// PokemonByID возвращает запись по идентификатору.
// Если записи нет — storage.ErrNotFound.
func (s *Storage) PokemonByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	const op = "storage.postgres.PokemonByID"

	p, err := s.selectOne(ctx, true, ` WHERE pokemon_id = $1`, id)
	if isUndefinedColumn(err) {
		p, err = s.selectOne(ctx, false, ` WHERE pokemon_id = $1`, id)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// PokemonByName возвращает запись по имени без учёта регистра.
// Если записи нет — storage.ErrNotFound.
func (s *Storage) PokemonByName(ctx context.Context, name string) (*models.Pokemon, error) {
	const op = "storage.postgres.PokemonByName"

	p, err := s.selectOne(ctx, true, ` WHERE lower(name) = lower($1)`, name)
	if isUndefinedColumn(err) {
		p, err = s.selectOne(ctx, false, ` WHERE lower(name) = lower($1)`, name)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// SearchPokemonsByName возвращает записи с подстрочным совпадением имени (ILIKE).
func (s *Storage) SearchPokemonsByName(ctx context.Context, name string) ([]models.Pokemon, error) {
	const op = "storage.postgres.SearchPokemonsByName"

	const tail = ` WHERE name ILIKE $1 ORDER BY pokemon_id ASC`
	pattern := "%" + name + "%"

	items, err := s.selectMany(ctx, true, tail, pattern)
	if isUndefinedColumn(err) {
		items, err = s.selectMany(ctx, false, tail, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// SavePokemons сохраняет пачку записей с upsert по pokemon_id.
// Повторное сидирование с теми же данными не создаёт дубликатов.
func (s *Storage) SavePokemons(ctx context.Context, items []models.Pokemon) error {
	const op = "storage.postgres.SavePokemons"

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
		INSERT INTO pokemons (pokemon_id, name, image, hp, attack, defense, speed, height, weight, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (pokemon_id) DO UPDATE
		SET
		name = EXCLUDED.name,
		image = EXCLUDED.image,
		hp = EXCLUDED.hp,
		attack = EXCLUDED.attack,
		defense = EXCLUDED.defense,
		speed = EXCLUDED.speed,
		height = EXCLUDED.height,
		weight = EXCLUDED.weight,
		type = EXCLUDED.type
		`, item.PokemonID, item.Name, item.Image,
			item.HP, item.Attack, item.Defense, item.Speed,
			item.Height, item.Weight, item.Types)
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}
	}

	return nil
}

// CreatePokemon вставляет одну пользовательскую запись.
// withMeta=false выключает колонки is_custom/created_by — фолбэк для схемы без них.
// Нарушение уникальности — storage.ErrAlreadyExists,
// отсутствие metadata-колонки — storage.ErrUndefinedColumn.
func (s *Storage) CreatePokemon(ctx context.Context, p *models.Pokemon, withMeta bool) error {
	const op = "storage.postgres.CreatePokemon"

	var err error
	if withMeta {
		_, err = s.db.Exec(ctx, `
		INSERT INTO pokemons (pokemon_id, name, image, hp, attack, defense, speed, height, weight, type, is_custom, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, p.PokemonID, p.Name, p.Image,
			p.HP, p.Attack, p.Defense, p.Speed,
			p.Height, p.Weight, p.Types, p.IsCustom, p.CreatedBy)
	} else {
		_, err = s.db.Exec(ctx, `
		INSERT INTO pokemons (pokemon_id, name, image, hp, attack, defense, speed, height, weight, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, p.PokemonID, p.Name, p.Image,
			p.HP, p.Attack, p.Defense, p.Speed,
			p.Height, p.Weight, p.Types)
	}

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			case pgerrcode.UndefinedColumn:
				return fmt.Errorf("%s: %w", op, storage.ErrUndefinedColumn)
			}
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeletePokemon удаляет запись и возвращает число затронутых строк.
// Ноль строк трактуется вызывающим как «записи уже нет».
func (s *Storage) DeletePokemon(ctx context.Context, id int64) (int64, error) {
	const op = "storage.postgres.DeletePokemon"

	ct, err := s.db.Exec(ctx, `DELETE FROM pokemons WHERE pokemon_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return ct.RowsAffected(), nil
}

// DeleteAllPokemons очищает таблицу целиком.
// Деструктивно и нетранзакционно относительно последующего сидирования.
func (s *Storage) DeleteAllPokemons(ctx context.Context) error {
	const op = "storage.postgres.DeleteAllPokemons"

	if _, err := s.db.Exec(ctx, `DELETE FROM pokemons`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
