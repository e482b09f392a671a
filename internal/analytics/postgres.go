package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the counters as a single row updated with
// atomic increments.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, strings.TrimSpace(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := initAnalyticsSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func initAnalyticsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analytics (
			id INTEGER PRIMARY KEY,
			total_visits BIGINT NOT NULL DEFAULT 0,
			male_count BIGINT NOT NULL DEFAULT 0,
			female_count BIGINT NOT NULL DEFAULT 0,
			last_updated TIMESTAMPTZ NOT NULL
		);`,
		`INSERT INTO analytics (id, last_updated) VALUES (1, now()) ON CONFLICT (id) DO NOTHING;`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init analytics schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) Track(ctx context.Context, gender Gender) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE analytics SET
			total_visits = total_visits + 1,
			male_count = male_count + CASE WHEN $1 = 'male' THEN 1 ELSE 0 END,
			female_count = female_count + CASE WHEN $1 = 'female' THEN 1 ELSE 0 END,
			last_updated = $2
		 WHERE id = 1`,
		string(gender), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("track visit: %w", err)
	}
	return nil
}

func (s *PostgresStore) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := s.pool.QueryRow(ctx,
		`SELECT total_visits, male_count, female_count, last_updated FROM analytics WHERE id = 1`,
	).Scan(&t.TotalVisits, &t.MaleCount, &t.FemaleCount, &t.LastUpdated)
	if err != nil {
		return Totals{}, fmt.Errorf("read totals: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
