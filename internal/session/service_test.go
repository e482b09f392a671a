package session

import (
	"context"
	"testing"
)

func TestCreateAssignsUniqueSessionIDs(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		sess, err := svc.Create(ctx, CreateRequest{Type: TypeKnowMe})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if sess.SessionID == "" {
			t.Fatalf("Create() returned empty session id")
		}
		if seen[sess.SessionID] {
			t.Fatalf("duplicate session id %q", sess.SessionID)
		}
		seen[sess.SessionID] = true
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := NewService(NewInMemoryStore())

	_, err := svc.Create(context.Background(), CreateRequest{Type: "soulmate-radar"})
	if err == nil {
		t.Fatalf("Create() with unknown type succeeded, want error")
	}
}

func TestNewSessionHasEmptyResponses(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Type:      TypeKnowMe,
		Questions: []Question{{ID: "q0", Question: "What is my favorite meal?"}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	sess, err := svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Responses.PartnerAnswers) != 0 {
		t.Fatalf("new session has partner answers: %+v", sess.Responses.PartnerAnswers)
	}
	if len(sess.Responses.StrangerAnswers) != 0 {
		t.Fatalf("new session has stranger batches: %+v", sess.Responses.StrangerAnswers)
	}
}

func TestGetMissingSessionReturnsNotFound(t *testing.T) {
	svc := NewService(NewInMemoryStore())

	_, err := svc.Get(context.Background(), "no-such-session")
	if err != ErrNotFound {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestPartnerResubmissionOverwrites(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Type:      TypeKnowMe,
		Questions: []Question{{ID: "q0", Question: "Coffee or tea?"}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	first := []Answer{{ID: "q0", Question: "Coffee or tea?", Answer: "Coffee"}}
	second := []Answer{{ID: "q0", Question: "Coffee or tea?", Answer: "Tea"}}

	if err := svc.SubmitAnswers(ctx, created.SessionID, first, AnswererPartner); err != nil {
		t.Fatalf("first partner submission error = %v", err)
	}
	if err := svc.SubmitAnswers(ctx, created.SessionID, second, AnswererPartner); err != nil {
		t.Fatalf("second partner submission error = %v", err)
	}

	sess, err := svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Responses.PartnerAnswers) != 1 {
		t.Fatalf("partner answers len = %d, want 1", len(sess.Responses.PartnerAnswers))
	}
	if got := sess.Responses.PartnerAnswers[0].Answer; got != "Tea" {
		t.Fatalf("partner answer = %q, want %q (last write wins)", got, "Tea")
	}
}

func TestStrangerSubmissionsAppendInOrder(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Type:      TypeStrangerComparison,
		Questions: []Question{{ID: "q0", Question: "Am I an early bird?"}},
		IsPublic:  true,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	answers := []string{"Yes", "No", "Maybe"}
	for _, a := range answers {
		batch := []Answer{{ID: "q0", Question: "Am I an early bird?", Answer: a}}
		if err := svc.SubmitAnswers(ctx, created.SessionID, batch, AnswererStranger); err != nil {
			t.Fatalf("stranger submission %q error = %v", a, err)
		}
	}

	sess, err := svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Responses.StrangerAnswers) != len(answers) {
		t.Fatalf("stranger batches = %d, want %d", len(sess.Responses.StrangerAnswers), len(answers))
	}
	for i, want := range answers {
		got := sess.Responses.StrangerAnswers[i][0].Answer
		if got != want {
			t.Fatalf("batch %d answer = %q, want %q (submission order)", i, got, want)
		}
		if by := sess.Responses.StrangerAnswers[i][0].AnsweredBy; by != AnswererStranger {
			t.Fatalf("batch %d answeredBy = %q, want %q", i, by, AnswererStranger)
		}
	}
}

func TestSubmitRejectsUnknownAnswererType(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Type: TypeKnowMe})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err = svc.SubmitAnswers(ctx, created.SessionID, nil, "frenemy")
	if err == nil {
		t.Fatalf("SubmitAnswers() with unknown role succeeded, want error")
	}

	sess, err := svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Responses.PartnerAnswers) != 0 || len(sess.Responses.StrangerAnswers) != 0 {
		t.Fatalf("rejected submission mutated responses: %+v", sess.Responses)
	}
}

func TestSubmitToMissingSessionReturnsNotFound(t *testing.T) {
	svc := NewService(NewInMemoryStore())

	err := svc.SubmitAnswers(context.Background(), "no-such-session", nil, AnswererPartner)
	if err != ErrNotFound {
		t.Fatalf("SubmitAnswers() error = %v, want ErrNotFound", err)
	}
}

func TestBreakupSessionPartnerThenStrangers(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()

	question := "Do you see a future together?"
	created, err := svc.Create(ctx, CreateRequest{
		Type:      TypeBreakup,
		Questions: []Question{{ID: "q0", Question: question}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	partner := []Answer{{ID: "q0", Question: question, Answer: "Yes"}}
	if err := svc.SubmitAnswers(ctx, created.SessionID, partner, AnswererPartner); err != nil {
		t.Fatalf("partner submission error = %v", err)
	}

	sess, err := svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Responses.PartnerAnswers) != 1 {
		t.Fatalf("partner answers len = %d, want 1", len(sess.Responses.PartnerAnswers))
	}
	got := sess.Responses.PartnerAnswers[0]
	if got.Answer != "Yes" || got.AnsweredBy != AnswererPartner {
		t.Fatalf("partner answer = %+v, want answer Yes answeredBy partner", got)
	}
	if len(sess.Responses.StrangerAnswers) != 0 {
		t.Fatalf("stranger batches = %d, want 0", len(sess.Responses.StrangerAnswers))
	}

	// Caller-declared role: the same private session also takes
	// stranger submissions, blanks preserved.
	blank := []Answer{{ID: "q0", Question: question, Answer: ""}}
	no := []Answer{{ID: "q0", Question: question, Answer: "No"}}
	if err := svc.SubmitAnswers(ctx, created.SessionID, blank, AnswererStranger); err != nil {
		t.Fatalf("blank stranger submission error = %v", err)
	}
	if err := svc.SubmitAnswers(ctx, created.SessionID, no, AnswererStranger); err != nil {
		t.Fatalf("second stranger submission error = %v", err)
	}

	sess, err = svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Responses.StrangerAnswers) != 2 {
		t.Fatalf("stranger batches = %d, want 2", len(sess.Responses.StrangerAnswers))
	}
	if a := sess.Responses.StrangerAnswers[0][0].Answer; a != "" {
		t.Fatalf("first stranger answer = %q, want empty string preserved", a)
	}
	if a := sess.Responses.StrangerAnswers[1][0].Answer; a != "No" {
		t.Fatalf("second stranger answer = %q, want %q", a, "No")
	}
	if a := sess.Responses.PartnerAnswers[0].Answer; a != "Yes" {
		t.Fatalf("partner answer changed to %q after stranger submissions", a)
	}
}

func TestAppreciationSessionKeepsMessageIntact(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	ctx := context.Background()

	message := "Thanks for everything"
	created, err := svc.Create(ctx, CreateRequest{
		Type:                TypeAppreciation,
		AppreciationMessage: message,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	sess, err := svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sess.AppreciationMessage != message {
		t.Fatalf("appreciation message = %q, want %q", sess.AppreciationMessage, message)
	}
	if len(sess.Questions) != 0 {
		t.Fatalf("questions = %+v, want empty", sess.Questions)
	}

	// Answer batches against a message session are accepted and must
	// not corrupt the message.
	batch := []Answer{{ID: "q0", Question: "?", Answer: "ok"}}
	if err := svc.SubmitAnswers(ctx, created.SessionID, batch, AnswererStranger); err != nil {
		t.Fatalf("submission against message session error = %v", err)
	}
	sess, err = svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sess.AppreciationMessage != message {
		t.Fatalf("appreciation message corrupted: %q", sess.AppreciationMessage)
	}
}
