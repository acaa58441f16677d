package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ListTypes возвращает имена типов в порядке вставки.
func (s *Storage) ListTypes(ctx context.Context) ([]string, error) {
	const op = "storage.postgres.ListTypes"

	rows, err := s.db.Query(ctx, `SELECT name FROM types ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		names = append(names, name)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return names, nil
}

// SaveTypes сохраняет имена типов; дубликаты молча игнорируются.
func (s *Storage) SaveTypes(ctx context.Context, names []string) error {
	const op = "storage.postgres.SaveTypes"

	if len(names) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(`
		INSERT INTO types (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		`, name)
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
