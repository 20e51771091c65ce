package bank

import "strconv"

var likertLabels = map[Locale][5]string{
	LocaleEN: {"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"},
	LocaleKO: {"전혀 그렇지 않다", "그렇지 않다", "보통이다", "그렇다", "매우 그렇다"},
}

// Label returns the Likert caption for a value in [1,5], or "" when out of range.
func Label(locale Locale, value int) string {
	labels, ok := likertLabels[locale]
	if !ok {
		labels = likertLabels[DefaultLocale]
	}
	if value < 1 || value > len(labels) {
		return ""
	}
	return labels[value-1]
}

// AnswerLabel formats a value as "5 (Strongly agree)".
func AnswerLabel(locale Locale, value int) string {
	l := Label(locale, value)
	if l == "" {
		return ""
	}
	return strconv.Itoa(value) + " (" + l + ")"
}

// Options lists the Likert scale for a locale, lowest value first.
func Options(locale Locale) []Option {
	opts := make([]Option, 0, 5)
	for v := 1; v <= 5; v++ {
		opts = append(opts, Option{Value: v, Label: Label(locale, v)})
	}
	return opts
}

type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}
