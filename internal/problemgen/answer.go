package problemgen

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/mathpaper/internal/fraction"
)

// remainderTolerance is how close a decimal or fractional reading of a
// division must be to dividend/divisor to count as correct.
const remainderTolerance = 1e-9

var (
	remainderRe = regexp.MustCompile(`(?i)^\s*(\d+)\s*(?:r\.?|rem\.?|remainder)\s*(\d+)\s*$`)
	divisionRe  = regexp.MustCompile(`^\s*([\d,]+)\s*÷\s*([\d,]+)`)
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
//   - Whitespace is trimmed and thousands separators are ignored
//   - Fractions: equivalent fractions and mixed numbers are accepted
//     ("2/4" matches "1/2", "7/4" matches "1 3/4")
//   - Remainders: "12 r 3", "12 rem 3", the exact decimal "12.6" and the
//     mixed number "12 3/5" all match 63 ÷ 5
//   - Numbers: "4.20" matches "4.2" and "007" matches "7"
func CheckAnswer(learnerAnswer string, q *Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}
	learner := clean(learnerAnswer)
	correct := clean(q.Answer)

	if q.Type.IsFractionFamily() {
		lf, lok := fraction.Parse(learner)
		cf, cok := fraction.Parse(correct)
		if lok && cok {
			return fraction.Equal(lf, cf)
		}
		return learner == correct
	}

	if m := remainderRe.FindStringSubmatch(correct); m != nil {
		return checkRemainder(learner, m, q)
	}

	return Normalize(learner) == Normalize(correct)
}

// checkRemainder accepts the literal quotient and remainder, or any exact
// decimal or fractional form of the division.
func checkRemainder(learner string, want []string, q *Question) bool {
	if m := remainderRe.FindStringSubmatch(learner); m != nil {
		return Normalize(m[1]) == Normalize(want[1]) && Normalize(m[2]) == Normalize(want[2])
	}
	dividend, divisor, ok := divisionOperands(q)
	if !ok {
		return false
	}
	exact := dividend / divisor
	if f, err := strconv.ParseFloat(learner, 64); err == nil {
		return math.Abs(f-exact) < remainderTolerance
	}
	if f, ok := fraction.Parse(learner); ok {
		return math.Abs(f.Float()-exact) < remainderTolerance
	}
	return false
}

// divisionOperands reads dividend and divisor from the question operands,
// falling back to the question text.
func divisionOperands(q *Question) (float64, float64, bool) {
	var a, b string
	if len(q.Operands) >= 2 {
		a, b = q.Operands[0], q.Operands[1]
	} else if m := divisionRe.FindStringSubmatch(q.Text); m != nil {
		a, b = m[1], m[2]
	} else {
		return 0, 0, false
	}
	dividend, err := strconv.ParseFloat(clean(a), 64)
	if err != nil {
		return 0, 0, false
	}
	divisor, err := strconv.ParseFloat(clean(b), 64)
	if err != nil || divisor == 0 {
		return 0, 0, false
	}
	return dividend, divisor, true
}

// Normalize returns the canonical numeric form of s, or s itself with
// separators removed when it is not a plain number.
func Normalize(s string) string {
	s = clean(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// clean strips thousands separators and collapses runs of whitespace.
func clean(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, ",", "")), " ")
}

// Mark returns markValue when learnerAnswer is correct for q and zero
// otherwise.
func Mark(learnerAnswer string, q *Question, markValue int) int {
	if CheckAnswer(learnerAnswer, q) {
		return markValue
	}
	return 0
}
