package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/pokedex-service/internal/models"
	"github.com/pribylovaa/pokedex-service/internal/storage"
)

// Интеграционные тесты для пакета postgres (pokemons.go, types.go):
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    SavePokemons: upsert по pokemon_id (повторное сидирование без дубликатов);
//    ListPokemons/CountPokemons: ILIKE-поиск, фильтр по элементу массива type,
//      сортировки из закрытого набора с тай-брейком по pokemon_id;
//    PokemonByID/PokemonByName: ErrNotFound и регистронезависимый поиск имени;
//    CreatePokemon: конфликт уникальности по pokemon_id и lower(name);
//    DeletePokemon: число затронутых строк;
//    ListTypes/SaveTypes: порядок вставки и идемпотентность.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_pokemons.up.sql"))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, readMigration(t, "2_init_types.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func seedFixture(t *testing.T, st *Storage) {
	t.Helper()

	img := "https://img.test/sprite.png"
	items := []models.Pokemon{
		{PokemonID: 1, Name: "bulbasaur", Image: &img, HP: 45, Attack: 49, Defense: 49, Speed: 45, Height: 7, Weight: 69, Types: []string{"grass", "poison"}},
		{PokemonID: 4, Name: "charmander", Image: &img, HP: 39, Attack: 52, Defense: 43, Speed: 65, Height: 6, Weight: 85, Types: []string{"fire"}},
		{PokemonID: 7, Name: "squirtle", Image: &img, HP: 44, Attack: 48, Defense: 65, Speed: 43, Height: 5, Weight: 90, Types: []string{"water"}},
		{PokemonID: 25, Name: "pikachu", Image: &img, HP: 35, Attack: 55, Defense: 40, Speed: 90, Height: 4, Weight: 60, Types: []string{"electric"}},
	}

	require.NoError(t, st.SavePokemons(context.Background(), items))
}

func TestIntegration_SavePokemons_UpsertIdempotent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedFixture(t, st)

	total, err := st.CountPokemons(ctx, storage.ListFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 4, total)

	// Повторное сидирование с обновлённым статом: без дубликатов, данные обновлены.
	updated := []models.Pokemon{
		{PokemonID: 25, Name: "pikachu", HP: 42, Attack: 55, Defense: 40, Speed: 90, Height: 4, Weight: 60, Types: []string{"electric"}},
	}
	require.NoError(t, st.SavePokemons(ctx, updated))

	total, err = st.CountPokemons(ctx, storage.ListFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 4, total)

	p, err := st.PokemonByID(ctx, 25)
	require.NoError(t, err)
	require.Equal(t, 42, p.HP)
}

func TestIntegration_ListPokemons_FilterAndSort(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedFixture(t, st)

	// ILIKE-поиск без учёта регистра.
	items, err := st.ListPokemons(ctx, storage.ListOptions{
		Filter: storage.ListFilter{Search: "CHAR"},
		Sort:   models.DefaultSort,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "charmander", items[0].Name)

	// Фильтр по элементу массива type.
	items, err = st.ListPokemons(ctx, storage.ListOptions{
		Filter: storage.ListFilter{Type: "poison"},
		Sort:   models.DefaultSort,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "bulbasaur", items[0].Name)

	// Сортировка по скорости по убыванию.
	items, err = st.ListPokemons(ctx, storage.ListOptions{
		Sort:  models.Sort{Field: models.SortBySpeed, Desc: true},
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "pikachu", items[0].Name)
	require.Equal(t, "charmander", items[1].Name)

	// Окно offset/limit при сортировке по id.
	items, err = st.ListPokemons(ctx, storage.ListOptions{
		Sort:   models.DefaultSort,
		Offset: 1,
		Limit:  2,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.EqualValues(t, 4, items[0].PokemonID)
	require.EqualValues(t, 7, items[1].PokemonID)
}

func TestIntegration_PokemonByID_And_ByName(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedFixture(t, st)

	p, err := st.PokemonByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "bulbasaur", p.Name)
	require.Equal(t, []string{"grass", "poison"}, p.Types)
	require.Nil(t, p.IsCustom)

	_, err = st.PokemonByID(ctx, 9999)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Имя ищется без учёта регистра.
	p, err = st.PokemonByName(ctx, "PIKACHU")
	require.NoError(t, err)
	require.EqualValues(t, 25, p.PokemonID)

	_, err = st.PokemonByName(ctx, "missingno")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_SearchPokemonsByName(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedFixture(t, st)

	items, err := st.SearchPokemonsByName(ctx, "chu")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "pikachu", items[0].Name)

	items, err = st.SearchPokemonsByName(ctx, "zzz")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestIntegration_CreatePokemon_Conflicts(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedFixture(t, st)

	isCustom := true
	createdBy := "trainer-7"
	custom := &models.Pokemon{
		PokemonID: 123456,
		Name:      "sparky",
		HP:        35,
		Types:     []string{"electric"},
		IsCustom:  &isCustom,
		CreatedBy: &createdBy,
	}

	require.NoError(t, st.CreatePokemon(ctx, custom, true))

	got, err := st.PokemonByID(ctx, 123456)
	require.NoError(t, err)
	require.NotNil(t, got.IsCustom)
	require.True(t, *got.IsCustom)
	require.NotNil(t, got.CreatedBy)
	require.Equal(t, "trainer-7", *got.CreatedBy)

	// Дубликат pokemon_id.
	dupID := &models.Pokemon{PokemonID: 123456, Name: "other", Types: []string{"fire"}}
	require.ErrorIs(t, st.CreatePokemon(ctx, dupID, true), storage.ErrAlreadyExists)

	// Дубликат имени в другом регистре (уникальный индекс по lower(name)).
	dupName := &models.Pokemon{PokemonID: 654321, Name: "SPARKY", Types: []string{"fire"}}
	require.ErrorIs(t, st.CreatePokemon(ctx, dupName, true), storage.ErrAlreadyExists)
}

func TestIntegration_DeletePokemon_RowsAffected(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	seedFixture(t, st)

	affected, err := st.DeletePokemon(ctx, 25)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = st.DeletePokemon(ctx, 25)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)

	require.NoError(t, st.DeleteAllPokemons(ctx))

	total, err := st.CountPokemons(ctx, storage.ListFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
}

// TestIntegration_DegradedSchema_WithoutMetaColumns — схема без колонок
// is_custom/created_by: чтения откатываются на базовый набор колонок,
// вставка с метаданными отдаёт ErrUndefinedColumn и проходит без них.
func TestIntegration_DegradedSchema_WithoutMetaColumns(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	_, err := st.db.Exec(ctx, `ALTER TABLE pokemons DROP COLUMN is_custom, DROP COLUMN created_by`)
	require.NoError(t, err)

	seedFixture(t, st)

	// Одиночные чтения работают, признак выводится из диапазона id.
	p, err := st.PokemonByID(ctx, 25)
	require.NoError(t, err)
	require.Equal(t, "pikachu", p.Name)
	require.Nil(t, p.IsCustom)
	require.False(t, p.Custom())

	p, err = st.PokemonByName(ctx, "PIKACHU")
	require.NoError(t, err)
	require.EqualValues(t, 25, p.PokemonID)

	_, err = st.PokemonByID(ctx, 9999)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Листинг и поиск тоже не зависят от metadata-колонок.
	items, err := st.ListPokemons(ctx, storage.ListOptions{Sort: models.DefaultSort, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 4)

	items, err = st.SearchPokemonsByName(ctx, "chu")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Вставка с метаданными сигналит об урезанной схеме, без них — проходит.
	isCustom := true
	custom := &models.Pokemon{PokemonID: 123456, Name: "sparky", Types: []string{"electric"}, IsCustom: &isCustom}
	require.ErrorIs(t, st.CreatePokemon(ctx, custom, true), storage.ErrUndefinedColumn)

	custom.IsCustom = nil
	require.NoError(t, st.CreatePokemon(ctx, custom, false))

	p, err = st.PokemonByID(ctx, 123456)
	require.NoError(t, err)
	require.True(t, p.Custom())
}

func TestIntegration_Types_SaveAndList(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	names, err := st.ListTypes(ctx)
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, st.SaveTypes(ctx, []string{"normal", "fire", "water"}))

	// Повторная вставка игнорируется, порядок вставки сохраняется.
	require.NoError(t, st.SaveTypes(ctx, []string{"fire", "grass"}))

	names, err = st.ListTypes(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"normal", "fire", "water", "grass"}, names)
}
