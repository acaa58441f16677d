package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/pokedex-service/internal/models"
	"github.com/pribylovaa/pokedex-service/pkg/log"
)

// SeedPokemons наполняет хранилище ростером внешнего каталога.
//
// Особенности:
//   - конкурентные вызовы схлопываются в один проход (singleflight):
//     два одновременных cold-start запроса не сидируют дважды;
//   - forceRefresh предварительно очищает таблицу — деструктивно и
//     нетранзакционно, падение посередине оставит частично заполненный стор;
//   - upsert по pokemon_id делает повторное сидирование идемпотентным.
func (s *Service) SeedPokemons(ctx context.Context, forceRefresh bool) error {
	// Общий проход не должен отменяться контекстом первого из ожидающих запросов.
	seedCtx := context.WithoutCancel(ctx)

	_, err, _ := s.seedGroup.Do("seed", func() (any, error) {
		return nil, s.seedOnce(seedCtx, forceRefresh)
	})

	return err
}

// seedOnce — один проход сидирования: ростер -> детали пачками -> upsert пачками.
// Ошибки отдельных элементов и пачек вставки не прерывают проход.
func (s *Service) seedOnce(ctx context.Context, forceRefresh bool) error {
	const op = "service.seed.seedOnce"

	runID := uuid.NewString()
	lg := log.From(ctx).With(slog.String("run_id", runID))

	lg.Info("seed_started",
		slog.String("op", op),
		slog.Bool("force_refresh", forceRefresh),
	)

	if forceRefresh {
		if err := s.storage.DeleteAllPokemons(ctx); err != nil {
			return fmt.Errorf("%s: delete_all: %w", op, err)
		}
		lg.Info("seed_cleared", slog.String("op", op))
	}

	roster, err := s.catalog.Roster(ctx)
	if err != nil {
		return fmt.Errorf("%s: roster: %w", op, fmt.Errorf("%w: %s", ErrUpstream, err))
	}

	fetchBatch := s.cfg.PokeAPI.FetchBatchSize
	insertBatch := s.cfg.PokeAPI.InsertBatchSize

	var fetched []models.Pokemon
	for start := 0; start < len(roster); start += fetchBatch {
		end := start + fetchBatch
		if end > len(roster) {
			end = len(roster)
		}
		batch := roster[start:end]

		// Фан-аут внутри пачки; пачки строго последовательны,
		// а внутри пачки одновременных запросов не больше pokeapi.concurrency.
		results := make([]*models.Pokemon, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		if limit := s.cfg.PokeAPI.Concurrency; limit > 0 {
			g.SetLimit(limit)
		}
		for i, entry := range batch {
			g.Go(func() error {
				p, detErr := s.catalog.Detail(gctx, entry.URL)
				if detErr != nil {
					// Частичный ростер — норма, элемент просто выпадает.
					lg.Warn("seed_detail_failed",
						slog.String("op", op),
						slog.String("name", entry.Name),
						slog.String("err", detErr.Error()),
					)
					return nil
				}
				results[i] = p
				return nil
			})
		}
		_ = g.Wait()

		for _, p := range results {
			if p != nil {
				fetched = append(fetched, *p)
			}
		}
	}

	var inserted int
	for start := 0; start < len(fetched); start += insertBatch {
		end := start + insertBatch
		if end > len(fetched) {
			end = len(fetched)
		}
		batch := fetched[start:end]

		if saveErr := s.storage.SavePokemons(ctx, batch); saveErr != nil {
			lg.Error("seed_insert_batch_failed",
				slog.String("op", op),
				slog.Int("batch_start", start),
				slog.String("err", saveErr.Error()),
			)
			continue
		}

		inserted += len(batch)
	}

	lg.Info("seed_finished",
		slog.String("op", op),
		slog.Int("roster", len(roster)),
		slog.Int("fetched", len(fetched)),
		slog.Int("inserted", inserted),
	)

	return nil
}
