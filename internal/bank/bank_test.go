package bank

import (
	"testing"

	"factor_quiz_backend/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	assert.Len(t, b.Dichotomy(), 32)
	assert.Len(t, b.Factor(), 32)
	assert.Equal(t, 64, b.Len())

	perAxis := map[scoring.AxisKey]int{}
	for _, e := range b.Entries() {
		perAxis[e.Axis]++
		if a, _ := scoring.LookupAxis(e.Axis); a.Family() == scoring.FamilyFactor {
			assert.Equal(t, 1, e.Weight, e.ID)
		}
	}
	for _, d := range scoring.Dichotomies {
		assert.Equal(t, 8, perAxis[d.Key], d.Key)
	}
	for _, f := range scoring.Factors {
		assert.Equal(t, 4, perAxis[f.Key], f.Key)
	}

	assert.NoError(t, scoring.ValidateQuestions(b.Questions(LocaleKO)))
}

func TestParseRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "version: 1\n"},
		{"unknown axis", `
dichotomy:
  - {id: a, axis: XY, weight: 1, text: {en: a, ko: a}}
`},
		{"bad weight", `
dichotomy:
  - {id: a, axis: EI, weight: 3, text: {en: a, ko: a}}
`},
		{"factor under dichotomy", `
dichotomy:
  - {id: a, axis: VALUE, weight: 1, text: {en: a, ko: a}}
`},
		{"missing korean", `
factor:
  - {id: a, axis: SIZE, weight: 1, text: {en: a}}
`},
		{"duplicate", `
factor:
  - {id: a, axis: SIZE, weight: 1, text: {en: a, ko: a}}
  - {id: a, axis: SIZE, weight: 1, text: {en: a, ko: a}}
`},
		{"not yaml", "::: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	b := MustLoad()

	qs, err := b.Resolve([]string{"value-02", "ei-01"}, LocaleEN)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "value-02", qs[0].ID)
	assert.Equal(t, scoring.AxisEI, qs[1].Axis)
	assert.Equal(t, "I feel energized after spending time with a large group of people.", qs[1].Text)

	_, err = b.Resolve([]string{"nope"}, LocaleEN)
	assert.ErrorIs(t, err, scoring.ErrUnknownQuestion)
}

func TestSelect(t *testing.T) {
	b := MustLoad()

	t.Run("deterministic per seed", func(t *testing.T) {
		assert.Equal(t, IDs(b.Select(40, 99)), IDs(b.Select(40, 99)))
		assert.NotEqual(t, IDs(b.Select(40, 99)), IDs(b.Select(40, 100)))
	})

	t.Run("caps and keeps proportion", func(t *testing.T) {
		picked := b.Select(40, 1)
		require.Len(t, picked, 40)
		dichotomy := 0
		seen := map[string]bool{}
		for _, e := range picked {
			assert.False(t, seen[e.ID], "duplicate %s", e.ID)
			seen[e.ID] = true
			if a, _ := scoring.LookupAxis(e.Axis); a.Family() == scoring.FamilyDichotomy {
				dichotomy++
			}
		}
		assert.Equal(t, 20, dichotomy)
	})

	t.Run("non positive limit keeps all", func(t *testing.T) {
		assert.Len(t, b.Select(0, 3), 64)
		assert.Len(t, b.Select(500, 3), 64)
	})
}

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale("")
	require.NoError(t, err)
	assert.Equal(t, LocaleEN, l)

	l, err = ParseLocale("ko")
	require.NoError(t, err)
	assert.Equal(t, LocaleKO, l)

	_, err = ParseLocale("fr")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "5 (Strongly agree)", AnswerLabel(LocaleEN, 5))
	assert.Equal(t, "3 (보통이다)", AnswerLabel(LocaleKO, 3))
	assert.Equal(t, "", AnswerLabel(LocaleEN, 0))
	assert.Len(t, Options(LocaleKO), 5)
}
