package session

// Mode tells the results view how to lay out respondent classes.
//
// "comparison" applies only to stranger-comparison sessions that have
// both a partner set and at least one stranger batch: the two classes
// become independently selectable named views. Everything else shows
// whatever classes exist side by side ("combined"), and message-type
// sessions surface only their text ("message").
type Mode string

const (
	ModeMessage    Mode = "message"
	ModeCombined   Mode = "combined"
	ModeComparison Mode = "comparison"
)

// AnswerSetView is one respondent's answer batch with its derived
// answered-of-total count. Blank answer strings count as unanswered.
type AnswerSetView struct {
	Answers  []Answer `json:"answers"`
	Answered int      `json:"answered"`
	Total    int      `json:"total"`
}

// Projection is the view-ready read-side shape of a session.
type Projection struct {
	SessionID           string          `json:"sessionId"`
	Type                Type            `json:"type"`
	Mode                Mode            `json:"mode"`
	Questions           []Question      `json:"questions"`
	Expression          string          `json:"expression,omitempty"`
	AppreciationMessage string          `json:"appreciationMessage,omitempty"`
	Partner             *AnswerSetView  `json:"partner,omitempty"`
	Strangers           []AnswerSetView `json:"strangers"`
	StrangerCount       int             `json:"strangerCount"`
	TotalResponses      int             `json:"totalResponses"`
}

// Project computes the aggregated results view of a session. It never
// mutates its input; stranger batches keep their submission order.
func Project(s Session) Projection {
	p := Projection{
		SessionID:           s.SessionID,
		Type:                s.Type,
		Questions:           questionsOrEmpty(s.Questions),
		Expression:          s.Expression,
		AppreciationMessage: s.AppreciationMessage,
		Strangers:           []AnswerSetView{},
	}

	if s.Type.MessageType() {
		p.Mode = ModeMessage
		return p
	}

	hasPartner := len(s.Responses.PartnerAnswers) > 0
	if hasPartner {
		view := newAnswerSetView(s.Responses.PartnerAnswers)
		p.Partner = &view
	}
	for _, batch := range s.Responses.StrangerAnswers {
		p.Strangers = append(p.Strangers, newAnswerSetView(batch))
	}

	p.StrangerCount = len(p.Strangers)
	p.TotalResponses = p.StrangerCount
	if hasPartner {
		p.TotalResponses++
	}

	if s.Type == TypeStrangerComparison && hasPartner && p.StrangerCount > 0 {
		p.Mode = ModeComparison
	} else {
		p.Mode = ModeCombined
	}
	return p
}

func newAnswerSetView(answers []Answer) AnswerSetView {
	view := AnswerSetView{
		Answers: make([]Answer, len(answers)),
		Total:   len(answers),
	}
	copy(view.Answers, answers)
	for _, a := range answers {
		if a.Answer != "" {
			view.Answered++
		}
	}
	return view
}
