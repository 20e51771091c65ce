package bank

import (
	_ "embed"
	"errors"
	"fmt"

	"factor_quiz_backend/internal/scoring"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var catalog []byte

// Locale is one of the two presentation languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleKO Locale = "ko"

	DefaultLocale = LocaleEN
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

// ParseLocale maps "" to the default locale and rejects anything else unknown.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case "":
		return DefaultLocale, nil
	case LocaleEN, LocaleKO:
		return Locale(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
}

// Entry is one catalog statement with both locale texts.
type Entry struct {
	ID     string            `yaml:"id" json:"id"`
	Axis   scoring.AxisKey   `yaml:"axis" json:"axis"`
	Weight int               `yaml:"weight" json:"weight"`
	Text   map[Locale]string `yaml:"text" json:"text"`
}

// Question renders the entry for a locale.
func (e Entry) Question(locale Locale) scoring.Question {
	text, ok := e.Text[locale]
	if !ok {
		text = e.Text[DefaultLocale]
	}
	return scoring.Question{ID: e.ID, Text: text, Axis: e.Axis, Weight: e.Weight}
}

type document struct {
	Version   int     `yaml:"version"`
	Dichotomy []Entry `yaml:"dichotomy"`
	Factor    []Entry `yaml:"factor"`
}

// Bank is the immutable question catalog. It is safe for concurrent reads.
type Bank struct {
	dichotomy []Entry
	factor    []Entry
	byID      map[string]Entry
}

// Load parses the embedded catalog.
func Load() (*Bank, error) {
	return Parse(catalog)
}

// MustLoad is Load for package init and tests.
func MustLoad() *Bank {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// Parse builds a bank from a YAML document and validates every entry.
func Parse(data []byte) (*Bank, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	b := &Bank{
		dichotomy: doc.Dichotomy,
		factor:    doc.Factor,
		byID:      make(map[string]Entry, len(doc.Dichotomy)+len(doc.Factor)),
	}
	if err := b.index(doc.Dichotomy, scoring.FamilyDichotomy); err != nil {
		return nil, err
	}
	if err := b.index(doc.Factor, scoring.FamilyFactor); err != nil {
		return nil, err
	}
	if len(b.byID) == 0 {
		return nil, errors.New("question bank is empty")
	}
	return b, nil
}

func (b *Bank) index(entries []Entry, family scoring.Family) error {
	for _, e := range entries {
		if e.ID == "" {
			return errors.New("question bank: entry without id")
		}
		if _, dup := b.byID[e.ID]; dup {
			return fmt.Errorf("question bank: %w: %q", scoring.ErrDuplicateQuestion, e.ID)
		}
		axis, ok := scoring.LookupAxis(e.Axis)
		if !ok {
			return fmt.Errorf("question bank: %w: %q on %q", scoring.ErrUnknownAxis, e.Axis, e.ID)
		}
		if axis.Family() != family {
			return fmt.Errorf("question bank: %q is a %s question listed under %s", e.ID, axis.Family(), family)
		}
		if e.Weight != 1 && e.Weight != -1 {
			return fmt.Errorf("question bank: %w: %d on %q", scoring.ErrInvalidWeight, e.Weight, e.ID)
		}
		for _, l := range []Locale{LocaleEN, LocaleKO} {
			if e.Text[l] == "" {
				return fmt.Errorf("question bank: %q has no %s text", e.ID, l)
			}
		}
		b.byID[e.ID] = e
	}
	return nil
}

func (b *Bank) Dichotomy() []Entry { return append([]Entry(nil), b.dichotomy...) }
func (b *Bank) Factor() []Entry    { return append([]Entry(nil), b.factor...) }
func (b *Bank) Len() int           { return len(b.byID) }

// Entries returns dichotomy entries followed by factor entries.
func (b *Bank) Entries() []Entry {
	out := make([]Entry, 0, len(b.byID))
	out = append(out, b.dichotomy...)
	return append(out, b.factor...)
}

func (b *Bank) Lookup(id string) (Entry, bool) {
	e, ok := b.byID[id]
	return e, ok
}

// Questions renders the whole bank in catalog order.
func (b *Bank) Questions(locale Locale) []scoring.Question {
	entries := b.Entries()
	qs := make([]scoring.Question, len(entries))
	for i, e := range entries {
		qs[i] = e.Question(locale)
	}
	return qs
}

// Resolve renders the given ids in the given order.
func (b *Bank) Resolve(ids []string, locale Locale) ([]scoring.Question, error) {
	qs := make([]scoring.Question, 0, len(ids))
	for _, id := range ids {
		e, ok := b.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", scoring.ErrUnknownQuestion, id)
		}
		qs = append(qs, e.Question(locale))
	}
	return qs, nil
}
