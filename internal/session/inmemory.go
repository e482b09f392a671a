package session

import (
	"context"
	"sync"
)

// InMemoryStore is a simple in-process session store for local/dev use.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*Session)}
}

func (s *InMemoryStore) CreateSession(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.SessionID]; ok {
		return ErrDuplicateID
	}
	cp := sess.Clone()
	s.sessions[sess.SessionID] = &cp
	return nil
}

func (s *InMemoryStore) GetSession(_ context.Context, sessionID string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess.Clone(), nil
}

func (s *InMemoryStore) SetPartnerAnswers(_ context.Context, sessionID string, answers []Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	cp := make([]Answer, len(answers))
	copy(cp, answers)
	sess.Responses.PartnerAnswers = cp
	return nil
}

func (s *InMemoryStore) AppendStrangerAnswers(_ context.Context, sessionID string, answers []Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	cp := make([]Answer, len(answers))
	copy(cp, answers)
	sess.Responses.StrangerAnswers = append(sess.Responses.StrangerAnswers, cp)
	return nil
}

func (s *InMemoryStore) Close() error { return nil }
