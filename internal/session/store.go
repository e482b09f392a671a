package session

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("session not found")
	ErrDuplicateID = errors.New("session id already exists")
)

// Store persists and retrieves session documents. Partner overwrite
// and stranger append are separate operations so implementations can
// make each one atomic instead of read-modify-writing the whole
// responses set.
type Store interface {
	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, sessionID string) (Session, error)
	SetPartnerAnswers(ctx context.Context, sessionID string, answers []Answer) error
	AppendStrangerAnswers(ctx context.Context, sessionID string, answers []Answer) error
	Close() error
}
