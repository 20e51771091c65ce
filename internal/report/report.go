package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"factor_quiz_backend/internal/bank"
	"factor_quiz_backend/internal/scoring"
)

const (
	ContentType = "text/csv; charset=utf-8"

	typeLabel = "MBTI Type"
	bom       = "\ufeff"
	crlf      = "\r\n"
)

var (
	questionHeader = []string{"#", "Axis", "Question", "Answer(Label)"}
	factorHeader   = []string{"Factor", "Percent(%)", "Base Style Score (0-10)", "MBTI-Blended Score (0-10)"}
)

// QuestionRow is one answered or unanswered question in presentation order.
type QuestionRow struct {
	Index    int
	Axis     scoring.AxisKey
	Question string
	Answer   string
}

type FactorRow struct {
	Name    string
	Percent float64
	Base    float64
	Blended float64
}

// Report is the tabular export of one result.
type Report struct {
	Questions []QuestionRow
	TypeCode  string
	Factors   []FactorRow
}

// Build assembles the report from an already computed result.
func Build(questions []scoring.Question, answers scoring.Answers, res scoring.Result, locale bank.Locale) Report {
	r := Report{
		Questions: make([]QuestionRow, 0, len(questions)),
		TypeCode:  res.Type.Code,
		Factors:   make([]FactorRow, 0, len(scoring.Factors)),
	}
	for i, q := range questions {
		row := QuestionRow{Index: i + 1, Axis: q.Axis, Question: q.Text}
		if v, ok := answers[q.ID]; ok {
			row.Answer = bank.AnswerLabel(locale, v)
		}
		r.Questions = append(r.Questions, row)
	}
	for _, f := range scoring.Factors {
		r.Factors = append(r.Factors, FactorRow{
			Name:    f.Name,
			Percent: res.Mix[f.Key],
			Base:    res.Base[f.Key],
			Blended: res.Blended[f.Key],
		})
	}
	return r
}

// Write renders the report into a buffer and hands it to w in a single call,
// so a failed export never leaves half a file behind.
func Write(w io.Writer, r Report) error {
	var buf bytes.Buffer
	buf.WriteString(bom)

	writeRecord(&buf, questionHeader...)
	for _, q := range r.Questions {
		writeRecord(&buf, strconv.Itoa(q.Index), string(q.Axis), q.Question, q.Answer)
	}
	buf.WriteString(crlf)
	writeRecord(&buf, typeLabel, r.TypeCode)
	buf.WriteString(crlf)
	writeRecord(&buf, factorHeader...)
	for _, f := range r.Factors {
		writeRecord(&buf, f.Name, decimal(f.Percent), decimal(f.Base), decimal(f.Blended))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Bytes is Write into memory.
func Bytes(r Report) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, r)
	return buf.Bytes()
}

// Filename names an export file after the type code and time.
func Filename(typeCode string, now time.Time) string {
	return fmt.Sprintf("factor-quiz-%s-%s.csv", strings.ToLower(typeCode), now.Format("20060102-150405"))
}

func writeRecord(buf *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString(crlf)
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
