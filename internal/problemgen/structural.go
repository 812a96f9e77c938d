package problemgen

import (
	"fmt"
	"strings"
)

// StructuralValidator checks that required fields are present, that every
// operand is visible in the question text and that BIDMAS metadata is
// attached exactly when the question is a BIDMAS question.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Type: q.Type, Message: fmt.Sprintf(format, args...)}
	}
	if !q.Type.Valid() {
		return fail("unknown question type %q", q.Type)
	}
	if strings.TrimSpace(q.Text) == "" {
		return fail("question text is empty")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fail("answer is empty")
	}
	text := strings.ReplaceAll(q.Text, ",", "")
	for _, o := range q.Operands {
		if !strings.Contains(text, o) {
			return fail("operand %q missing from text %q", o, q.Text)
		}
	}
	if q.Type == TypeBidmas && q.Bidmas == nil {
		return fail("bidmas question has no metadata")
	}
	if q.Type != TypeBidmas && q.Bidmas != nil {
		return fail("bidmas metadata on a %s question", q.Type)
	}
	return nil
}
