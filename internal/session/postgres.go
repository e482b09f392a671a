package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists sessions in PostgreSQL. Stranger batches live
// in an append-only child table so a submission is a single INSERT and
// concurrent strangers never lose a batch; the partner slot is one
// UPDATE. Batch order is the seq column, assigned under a row lock on
// the parent session.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, strings.TrimSpace(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := initSessionSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func initSessionSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			questions JSONB NOT NULL DEFAULT '[]',
			expression TEXT NOT NULL DEFAULT '',
			appreciation_message TEXT NOT NULL DEFAULT '',
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			partner_answers JSONB NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NULL
		);`,
		`CREATE TABLE IF NOT EXISTS stranger_batches (
			session_id TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			answers JSONB NOT NULL,
			submitted_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (session_id, seq)
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init session schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) CreateSession(ctx context.Context, sess Session) error {
	questions, err := json.Marshal(questionsOrEmpty(sess.Questions))
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (
			session_id, type, questions, expression, appreciation_message, is_public, created_at, expires_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		sess.SessionID,
		string(sess.Type),
		questions,
		sess.Expression,
		sess.AppreciationMessage,
		sess.IsPublic,
		sess.CreatedAt,
		sess.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateID
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetSession(ctx context.Context, sessionID string) (Session, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT session_id, type, questions, expression, appreciation_message, is_public,
		        partner_answers, created_at, expires_at
		   FROM sessions WHERE session_id=$1`,
		sessionID,
	)

	var (
		sess            Session
		kind            string
		questionsJSON   []byte
		partnerJSON     []byte
		expiresNullable *time.Time
	)
	if err := row.Scan(
		&sess.SessionID,
		&kind,
		&questionsJSON,
		&sess.Expression,
		&sess.AppreciationMessage,
		&sess.IsPublic,
		&partnerJSON,
		&sess.CreatedAt,
		&expiresNullable,
	); err != nil {
		if err == pgx.ErrNoRows {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	sess.Type = Type(kind)
	sess.ExpiresAt = expiresNullable
	if err := json.Unmarshal(questionsJSON, &sess.Questions); err != nil {
		return Session{}, fmt.Errorf("decode questions: %w", err)
	}
	if partnerJSON != nil {
		if err := json.Unmarshal(partnerJSON, &sess.Responses.PartnerAnswers); err != nil {
			return Session{}, fmt.Errorf("decode partner answers: %w", err)
		}
	}

	batches, err := s.loadStrangerBatches(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	sess.Responses.StrangerAnswers = batches
	return sess, nil
}

func (s *PostgresStore) SetPartnerAnswers(ctx context.Context, sessionID string, answers []Answer) error {
	encoded, err := json.Marshal(answersOrEmpty(answers))
	if err != nil {
		return fmt.Errorf("encode partner answers: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE sessions SET partner_answers=$2 WHERE session_id=$1`,
		sessionID, encoded,
	)
	if err != nil {
		return fmt.Errorf("set partner answers: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AppendStrangerAnswers(ctx context.Context, sessionID string, answers []Answer) error {
	encoded, err := json.Marshal(answersOrEmpty(answers))
	if err != nil {
		return fmt.Errorf("encode stranger answers: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the parent row so concurrent appenders serialize on seq
	// assignment instead of colliding on the primary key.
	var id string
	err = tx.QueryRow(ctx, `SELECT session_id FROM sessions WHERE session_id=$1 FOR UPDATE`, sessionID).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("lock session: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO stranger_batches (session_id, seq, answers, submitted_at)
		 VALUES ($1, (SELECT COALESCE(MAX(seq), -1) + 1 FROM stranger_batches WHERE session_id=$1), $2, $3)`,
		sessionID, encoded, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append stranger batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *PostgresStore) loadStrangerBatches(ctx context.Context, sessionID string) ([][]Answer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT answers FROM stranger_batches WHERE session_id=$1 ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stranger batches: %w", err)
	}
	defer rows.Close()

	var batches [][]Answer
	for rows.Next() {
		var encoded []byte
		if err := rows.Scan(&encoded); err != nil {
			return nil, fmt.Errorf("scan stranger batch: %w", err)
		}
		var batch []Answer
		if err := json.Unmarshal(encoded, &batch); err != nil {
			return nil, fmt.Errorf("decode stranger batch: %w", err)
		}
		if batch == nil {
			batch = []Answer{}
		}
		batches = append(batches, batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stranger batch rows: %w", err)
	}
	return batches, nil
}

func questionsOrEmpty(qs []Question) []Question {
	if qs == nil {
		return []Question{}
	}
	return qs
}

func answersOrEmpty(as []Answer) []Answer {
	if as == nil {
		return []Answer{}
	}
	return as
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
