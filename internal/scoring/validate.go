package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAnswer     = errors.New("answer out of range")
	ErrUnknownQuestion   = errors.New("unknown question")
	ErrUnknownAxis       = errors.New("unknown axis")
	ErrInvalidWeight     = errors.New("invalid weight")
	ErrDuplicateQuestion = errors.New("duplicate question id")
	ErrEmptyWorkingSet   = errors.New("empty working set")
)

// ValidateQuestions checks a working set before it reaches the engine.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyWorkingSet
	}
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateQuestion, q.ID)
		}
		seen[q.ID] = struct{}{}
		if _, ok := LookupAxis(q.Axis); !ok {
			return fmt.Errorf("%w: %q on question %q", ErrUnknownAxis, q.Axis, q.ID)
		}
		if q.Weight != 1 && q.Weight != -1 {
			return fmt.Errorf("%w: %d on question %q", ErrInvalidWeight, q.Weight, q.ID)
		}
	}
	return nil
}

// ValidateAnswer checks a single Likert value.
func ValidateAnswer(value int) error {
	if value < MinAnswer || value > MaxAnswer {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidAnswer, value, MinAnswer, MaxAnswer)
	}
	return nil
}

// Validate checks the working set and that every answer targets one of its
// questions with a value in [1,5].
func Validate(questions []Question, answers Answers) error {
	if err := ValidateQuestions(questions); err != nil {
		return err
	}
	ids := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		ids[q.ID] = struct{}{}
	}
	for id, v := range answers {
		if _, ok := ids[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
		}
		if err := ValidateAnswer(v); err != nil {
			return fmt.Errorf("question %q: %w", id, err)
		}
	}
	return nil
}
