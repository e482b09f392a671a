package session

import "time"

type Type string

const (
	TypeKnowMe             Type = "know-me"
	TypeStrangerComparison Type = "stranger-comparison"
	TypeExpression         Type = "expression"
	TypeAppreciation       Type = "appreciation"
	TypeBreakup            Type = "breakup"
	TypeSafeLove           Type = "safe-love"
)

// ValidType reports whether t is one of the closed set of session kinds.
func ValidType(t Type) bool {
	switch t {
	case TypeKnowMe, TypeStrangerComparison, TypeExpression, TypeAppreciation, TypeBreakup, TypeSafeLove:
		return true
	default:
		return false
	}
}

// MessageType reports whether t carries a freeform message instead of questions.
func (t Type) MessageType() bool {
	return t == TypeExpression || t == TypeAppreciation
}

type AnswererType string

const (
	AnswererPartner  AnswererType = "partner"
	AnswererStranger AnswererType = "stranger"
)

func ValidAnswererType(a AnswererType) bool {
	return a == AnswererPartner || a == AnswererStranger
}

// Question is one entry of a session's question list.
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// Answer is one submitted answer entry. ID and Question mirror the
// originating question; AnsweredBy records the classification used at
// submission time.
type Answer struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	AnsweredBy AnswererType `json:"answeredBy"`
}

// Responses holds the mutable result set of a session. The partner
// slot is overwritten wholesale on every partner submission; stranger
// batches only grow, one entry per submission, in submission order.
type Responses struct {
	PartnerAnswers  []Answer   `json:"partnerAnswers,omitempty"`
	StrangerAnswers [][]Answer `json:"strangerAnswers,omitempty"`
}

type Session struct {
	SessionID           string     `json:"sessionId"`
	Type                Type       `json:"type"`
	Questions           []Question `json:"questions"`
	Expression          string     `json:"expression,omitempty"`
	AppreciationMessage string     `json:"appreciationMessage,omitempty"`
	IsPublic            bool       `json:"isPublic"`
	Responses           Responses  `json:"responses"`
	CreatedAt           time.Time  `json:"createdAt"`
	ExpiresAt           *time.Time `json:"expiresAt,omitempty"`
}

// CreateRequest defines the payload for creating a new session.
type CreateRequest struct {
	Type                Type       `json:"type"`
	Questions           []Question `json:"questions"`
	Expression          string     `json:"expression"`
	AppreciationMessage string     `json:"appreciationMessage"`
	IsPublic            bool       `json:"isPublic"`
	ExpiresAt           *time.Time `json:"expiresAt"`
}

func (s Session) Clone() Session {
	out := s
	if s.Questions != nil {
		out.Questions = make([]Question, len(s.Questions))
		copy(out.Questions, s.Questions)
	}
	out.Responses = s.Responses.Clone()
	return out
}

func (r Responses) Clone() Responses {
	out := r
	if r.PartnerAnswers != nil {
		out.PartnerAnswers = make([]Answer, len(r.PartnerAnswers))
		copy(out.PartnerAnswers, r.PartnerAnswers)
	}
	if r.StrangerAnswers != nil {
		out.StrangerAnswers = make([][]Answer, len(r.StrangerAnswers))
		for i, batch := range r.StrangerAnswers {
			cp := make([]Answer, len(batch))
			copy(cp, batch)
			out.StrangerAnswers[i] = cp
		}
	}
	return out
}
