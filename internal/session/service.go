package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType         = errors.New("invalid session type")
	ErrInvalidAnswererType = errors.New("invalid answerer type")
)

// createAttempts bounds the id-collision retry loop. UUIDs make a
// collision essentially unreachable, but the store treats one as a
// hard error and we mint a fresh id rather than fail the creation.
const createAttempts = 5

// Service implements the session lifecycle: creation, retrieval, and
// answer collection.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create builds and persists a new session from req and returns it
// with its freshly assigned id. Only the session type is validated;
// question/message coherence is trusted to the caller.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Session, error) {
	if !ValidType(req.Type) {
		return Session{}, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}

	sess := Session{
		Type:                req.Type,
		Questions:           req.Questions,
		Expression:          req.Expression,
		AppreciationMessage: req.AppreciationMessage,
		IsPublic:            req.IsPublic,
		CreatedAt:           time.Now().UTC(),
		ExpiresAt:           req.ExpiresAt,
	}
	if sess.Questions == nil {
		sess.Questions = []Question{}
	}

	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		sess.SessionID = uuid.NewString()
		err = s.store.CreateSession(ctx, sess)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, ErrDuplicateID) {
			return Session{}, err
		}
	}
	return Session{}, fmt.Errorf("create session: %w", err)
}

// Get returns the full session document, responses included. Any
// holder of the id may read it; there is no access control in the
// anonymous-link model.
func (s *Service) Get(ctx context.Context, sessionID string) (Session, error) {
	return s.store.GetSession(ctx, sessionID)
}

// SubmitAnswers merges one answer batch into the session under the
// caller's declared role. Partner submissions replace the partner
// slot wholesale; stranger submissions append a new batch. Answers
// are stored as sent: no check against the session's question set,
// partial batches and blank answers included.
func (s *Service) SubmitAnswers(ctx context.Context, sessionID string, answers []Answer, answerer AnswererType) error {
	if !ValidAnswererType(answerer) {
		return fmt.Errorf("%w: %q", ErrInvalidAnswererType, answerer)
	}

	stamped := make([]Answer, len(answers))
	for i, a := range answers {
		a.AnsweredBy = answerer
		stamped[i] = a
	}

	if answerer == AnswererPartner {
		return s.store.SetPartnerAnswers(ctx, sessionID, stamped)
	}
	return s.store.AppendStrangerAnswers(ctx, sessionID, stamped)
}
