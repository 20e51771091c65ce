package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"factor_quiz_backend/internal/bank"
	"factor_quiz_backend/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLayout(t *testing.T) {
	r := Report{
		Questions: []QuestionRow{
			{Index: 1, Axis: scoring.AxisEI, Question: `I say "hi" first`, Answer: "5 (Strongly agree)"},
			{Index: 2, Axis: scoring.AxisValue, Question: "Cheap, please", Answer: ""},
		},
		TypeCode: "ENTP",
		Factors: []FactorRow{
			{Name: "Value", Percent: 100, Base: 10, Blended: 10},
			{Name: "Growth", Percent: 0, Base: 0, Blended: 1.3},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))

	want := "\ufeff" +
		`"#","Axis","Question","Answer(Label)"` + "\r\n" +
		`"1","EI","I say ""hi"" first","5 (Strongly agree)"` + "\r\n" +
		`"2","VALUE","Cheap, please",""` + "\r\n" +
		"\r\n" +
		`"MBTI Type","ENTP"` + "\r\n" +
		"\r\n" +
		`"Factor","Percent(%)","Base Style Score (0-10)","MBTI-Blended Score (0-10)"` + "\r\n" +
		`"Value","100.0","10.0","10.0"` + "\r\n" +
		`"Growth","0.0","0.0","1.3"` + "\r\n"
	assert.Equal(t, want, buf.String())
}

func TestBuild(t *testing.T) {
	questions := []scoring.Question{
		{ID: "a", Text: "first", Axis: scoring.AxisSN, Weight: -1},
		{ID: "b", Text: "second", Axis: scoring.AxisDividend, Weight: 1},
		{ID: "c", Text: "third", Axis: scoring.AxisSize, Weight: 1},
	}
	answers := scoring.Answers{"a": 5, "b": 4}
	res := scoring.Evaluate(questions, answers)

	r := Build(questions, answers, res, bank.LocaleKO)
	require.Len(t, r.Questions, 3)
	assert.Equal(t, 1, r.Questions[0].Index)
	assert.Equal(t, "5 (매우 그렇다)", r.Questions[0].Answer)
	assert.Equal(t, "", r.Questions[2].Answer)
	assert.Equal(t, "ENTJ", r.TypeCode)

	require.Len(t, r.Factors, 8)
	for i, f := range scoring.Factors {
		assert.Equal(t, f.Name, r.Factors[i].Name)
	}
	assert.Equal(t, 100.0, r.Factors[6].Percent)

	out := string(Bytes(r))
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	// header + 3 questions + blank + type + blank + header + 8 factors
	assert.Len(t, lines, 16)
	assert.Equal(t, `"MBTI Type","ENTJ"`, lines[5])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, Report{TypeCode: "ESTJ"})
	assert.ErrorContains(t, err, "disk full")
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "factor-quiz-infp-20260304-050607.csv", Filename("INFP", ts))
}
