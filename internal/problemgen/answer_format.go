package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mathpaper/internal/fraction"
)

// AnswerFormatValidator checks that the answer string is written the way
// answers of its question type are written: whole numbers for arithmetic,
// trimmed decimals for decimal work, canonical fractions or mixed numbers
// for the fraction family and "Q r R" for remainders.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(q *Question) *ValidationError {
	var err error
	switch {
	case q.Type.IsFractionFamily():
		err = validateFraction(q.Answer)
	case q.Type == TypeDivisionWithRemainder:
		err = validateRemainder(q.Answer)
	case q.Type.IsDecimal():
		err = validateDecimal(q.Answer)
	default:
		err = validateInteger(q.Answer)
	}
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Type:      q.Type,
			Message:   fmt.Sprintf("invalid answer %q: %s", q.Answer, err),
		}
	}
	return nil
}

// validateInteger checks that s is a non-negative integer string with no
// leading zeros.
func validateInteger(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not a valid integer")
	}
	if strconv.FormatInt(n, 10) != s {
		return fmt.Errorf("has leading zeros")
	}
	if n < 0 {
		return fmt.Errorf("is negative")
	}
	return nil
}

// validateDecimal checks that s is a non-negative decimal string with no
// trailing zeros.
func validateDecimal(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a valid decimal")
	}
	normalized := strconv.FormatFloat(f, 'f', -1, 64)
	if normalized != s {
		return fmt.Errorf("has trailing zeros or is not normalized (expected %q)", normalized)
	}
	if f < 0 {
		return fmt.Errorf("is negative")
	}
	return nil
}

// validateFraction checks that s is already in canonical form: simplified,
// and mixed when improper.
func validateFraction(s string) error {
	f, ok := fraction.Parse(s)
	if !ok {
		return fmt.Errorf("not a fraction, mixed number or whole number")
	}
	if c := fraction.Canonical(f); c != s {
		return fmt.Errorf("not in canonical form (expected %q)", c)
	}
	return nil
}

func validateRemainder(s string) error {
	m := remainderRe.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("does not match \"Q r R\"")
	}
	if fmt.Sprintf("%s r %s", m[1], m[2]) != s {
		return fmt.Errorf("not written as \"Q r R\"")
	}
	if r, _ := strconv.Atoi(m[2]); r == 0 {
		return fmt.Errorf("remainder is zero")
	}
	return nil
}
