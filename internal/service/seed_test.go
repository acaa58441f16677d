package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/pokedex-service/internal/config"
	"github.com/pribylovaa/pokedex-service/internal/models"
	"github.com/pribylovaa/pokedex-service/internal/service"
	"github.com/pribylovaa/pokedex-service/mocks"
)

// Файл unit-тестов сидирования (seed.go).
//
// Покрываем:
//  - happy-path: ростер -> детали -> upsert пачками нужных размеров;
//  - падение деталей отдельного элемента: элемент выпадает, проход продолжается;
//  - потолок одновременных запросов деталей соблюдается;
//  - forceRefresh очищает стор до ростера;
//  - недоступный ростер -> ErrUpstream;
//  - конкурентные вызовы схлопываются в один проход.

func rosterOf(n int) []service.RosterEntry {
	entries := make([]service.RosterEntry, n)
	for i := range entries {
		entries[i] = service.RosterEntry{
			Name: "poke",
			URL:  "https://pokeapi.test/pokemon/" + string(rune('a'+i%26)),
		}
	}
	return entries
}

func TestSeedPokemons_BatchesInserts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockCat := mocks.NewMockCatalog(ctrl)

	// 60 элементов при insertBatch=50 -> две пачки: 50 и 10.
	roster := rosterOf(60)
	mockCat.EXPECT().Roster(gomock.Any()).Return(roster, nil)
	mockCat.EXPECT().
		Detail(gomock.Any(), gomock.Any()).
		Return(&models.Pokemon{PokemonID: 1}, nil).
		Times(60)

	var batches []int
	var mu sync.Mutex
	mockSt.EXPECT().
		SavePokemons(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []models.Pokemon) error {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, len(items))
			return nil
		}).
		Times(2)

	svc := newSvcForTest(t, mockSt, mockCat)

	require.NoError(t, svc.SeedPokemons(context.Background(), false))
	require.Equal(t, []int{50, 10}, batches)
}

// TestSeedPokemons_DropsFailedDetails — ошибка деталей одного элемента
// не прерывает проход: остальные элементы сохраняются.
func TestSeedPokemons_DropsFailedDetails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockCat := mocks.NewMockCatalog(ctrl)

	roster := []service.RosterEntry{
		{Name: "ok-one", URL: "u1"},
		{Name: "broken", URL: "u2"},
		{Name: "ok-two", URL: "u3"},
	}

	mockCat.EXPECT().Roster(gomock.Any()).Return(roster, nil)
	mockCat.EXPECT().Detail(gomock.Any(), "u1").Return(&models.Pokemon{PokemonID: 1}, nil)
	mockCat.EXPECT().Detail(gomock.Any(), "u2").Return(nil, errors.New("timeout"))
	mockCat.EXPECT().Detail(gomock.Any(), "u3").Return(&models.Pokemon{PokemonID: 3}, nil)

	mockSt.EXPECT().
		SavePokemons(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []models.Pokemon) error {
			require.Len(t, items, 2)
			return nil
		})

	svc := newSvcForTest(t, mockSt, mockCat)

	require.NoError(t, svc.SeedPokemons(context.Background(), false))
}

// TestSeedPokemons_RespectsConcurrencyCap — при pokeapi.concurrency=1
// запросы деталей внутри пачки не перекрываются во времени.
func TestSeedPokemons_RespectsConcurrencyCap(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockCat := mocks.NewMockCatalog(ctrl)

	mockCat.EXPECT().Roster(gomock.Any()).Return(rosterOf(10), nil)

	var inFlight, maxInFlight int32
	mockCat.EXPECT().
		Detail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*models.Pokemon, error) {
			cur := atomic.AddInt32(&inFlight, 1)
			for {
				prev := atomic.LoadInt32(&maxInFlight)
				if cur <= prev || atomic.CompareAndSwapInt32(&maxInFlight, prev, cur) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return &models.Pokemon{PokemonID: 1}, nil
		}).
		Times(10)

	mockSt.EXPECT().SavePokemons(gomock.Any(), gomock.Any()).Return(nil)

	cfg := config.Config{
		Limits: config.LimitsConfig{DefaultPageSize: 18, MaxPageSize: 100, SearchMaxLen: 60},
		PokeAPI: config.PokeAPIConfig{
			RosterLimit:     151,
			FetchBatchSize:  25,
			InsertBatchSize: 50,
			Concurrency:     1,
		},
	}
	svc := service.New(mockSt, mockCat, cfg)

	require.NoError(t, svc.SeedPokemons(context.Background(), false))
	require.EqualValues(t, 1, atomic.LoadInt32(&maxInFlight))
}

// TestSeedPokemons_ForceRefreshClearsFirst — очистка строго до ростера.
func TestSeedPokemons_ForceRefreshClearsFirst(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockCat := mocks.NewMockCatalog(ctrl)

	gomock.InOrder(
		mockSt.EXPECT().DeleteAllPokemons(gomock.Any()).Return(nil),
		mockCat.EXPECT().Roster(gomock.Any()).Return(nil, nil),
	)

	svc := newSvcForTest(t, mockSt, mockCat)

	require.NoError(t, svc.SeedPokemons(context.Background(), true))
}

func TestSeedPokemons_RosterFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockCat := mocks.NewMockCatalog(ctrl)
	mockCat.EXPECT().Roster(gomock.Any()).Return(nil, errors.New("503"))

	svc := newSvcForTest(t, mockSt, mockCat)

	err := svc.SeedPokemons(context.Background(), false)
	require.ErrorIs(t, err, service.ErrUpstream)
}

// TestSeedPokemons_Singleflight — конкурентные вызовы дают ровно один
// проход: Roster вызывается один раз, оба вызова получают его результат.
func TestSeedPokemons_Singleflight(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockCat := mocks.NewMockCatalog(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	mockCat.EXPECT().
		Roster(gomock.Any()).
		DoAndReturn(func(context.Context) ([]service.RosterEntry, error) {
			close(started)
			<-release
			return nil, nil
		}).
		Times(1)

	svc := newSvcForTest(t, mockSt, mockCat)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[0] = svc.SeedPokemons(context.Background(), false)
	}()

	// Дожидаемся входа первого вызова, чтобы второй гарантированно
	// присоединился к уже идущему проходу.
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("seed did not start")
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[1] = svc.SeedPokemons(context.Background(), false)
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)

	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
}
