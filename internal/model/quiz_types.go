package model

import (
	"time"

	"factor_quiz_backend/internal/bank"
	"factor_quiz_backend/internal/scoring"
)

// QuestionView is a working-set question as presented to the respondent.
type QuestionView struct {
	Index  int             `json:"index"`
	ID     string          `json:"id"`
	Axis   scoring.AxisKey `json:"axis"`
	Family string          `json:"family"`
	Text   string          `json:"text"`
	Answer *int            `json:"answer,omitempty"`
}

type SessionQuestions struct {
	SessionID string         `json:"sessionId"`
	Locale    string         `json:"locale"`
	Questions []QuestionView `json:"questions"`
	Options   []bank.Option  `json:"options"`
	Answered  int            `json:"answered"`
	Total     int            `json:"total"`
}

type StartedSession struct {
	SessionQuestions
	Token     string    `json:"token"`
	Blend     bool      `json:"blend"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AnswerProgress struct {
	SessionID string `json:"sessionId"`
	Answered  int    `json:"answered"`
	Total     int    `json:"total"`
}

// AxisMargin is one signed axis total in fixed axis order.
type AxisMargin struct {
	Axis   scoring.AxisKey `json:"axis"`
	Family string          `json:"family"`
	Margin float64         `json:"margin"`
}

// FactorScore carries every form of one factor's score. Score is the form
// selected by the blend toggle.
type FactorScore struct {
	Factor  scoring.AxisKey `json:"factor"`
	Name    string          `json:"name"`
	Percent float64         `json:"percent"`
	Base    float64         `json:"base"`
	Blended float64         `json:"blended"`
	Score   float64         `json:"score"`
}

type QuizResult struct {
	SessionID string                 `json:"sessionId,omitempty"`
	TypeCode  string                 `json:"typeCode"`
	Strengths []scoring.AxisStrength `json:"strengths"`
	Axes      []AxisMargin           `json:"axes"`
	Factors   []FactorScore          `json:"factors"`
	Blend     bool                   `json:"blend"`
	Answered  int                    `json:"answered"`
	Total     int                    `json:"total"`
}

// NewQuizResult flattens an engine result into fixed-order rows.
func NewQuizResult(sessionID string, res scoring.Result, blend bool) *QuizResult {
	out := &QuizResult{
		SessionID: sessionID,
		TypeCode:  res.Type.Code,
		Strengths: res.Type.Strengths,
		Axes:      make([]AxisMargin, 0, len(res.Margins)),
		Factors:   make([]FactorScore, 0, len(scoring.Factors)),
		Blend:     blend,
		Answered:  res.Answered,
		Total:     res.Total,
	}
	for _, k := range scoring.AxisKeys() {
		family := ""
		if a, ok := scoring.LookupAxis(k); ok {
			family = a.Family().String()
		}
		out.Axes = append(out.Axes, AxisMargin{Axis: k, Family: family, Margin: res.Margins[k]})
	}
	active := res.Scores(blend)
	for _, f := range scoring.Factors {
		out.Factors = append(out.Factors, FactorScore{
			Factor:  f.Key,
			Name:    f.Name,
			Percent: res.Mix[f.Key],
			Base:    res.Base[f.Key],
			Blended: res.Blended[f.Key],
			Score:   active[f.Key],
		})
	}
	return out
}

type ReportExport struct {
	SessionID string `json:"sessionId"`
	TypeCode  string `json:"typeCode"`
	FileName  string `json:"fileName"`
	URL       string `json:"url"`
	Size      int    `json:"size"`
}
