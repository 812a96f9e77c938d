package problemgen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abhisek/mathpaper/internal/fraction"
)

// MathCheckValidator independently recomputes the answer from the
// question's operands and rejects questions whose stored answer differs.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := Recompute(q)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Type:      q.Type,
			Message:   fmt.Sprintf("cannot recompute: %s", err),
		}
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Type:      q.Type,
			Message:   fmt.Sprintf("computed %q but answer is %q", computed, q.Answer),
		}
	}
	return nil
}

var errOperands = errors.New("unexpected operands")

// Recompute derives the answer of q from its operands (or, for BIDMAS,
// from its expression) without consulting q.Answer.
func Recompute(q *Question) (string, error) {
	switch {
	case q.Type == TypeBidmas:
		return recomputeBidmas(q)
	case q.Type.IsFractionFamily():
		return recomputeFraction(q)
	case q.Type.IsDecimal():
		return recomputeDecimal(q)
	}

	ns, err := intOperands(q.Operands)
	if err != nil {
		return "", err
	}
	if q.Type == TypeSquare || q.Type == TypeCube {
		if len(ns) != 1 {
			return "", errOperands
		}
		if q.Type == TypeSquare {
			return itoa(ns[0] * ns[0]), nil
		}
		return itoa(ns[0] * ns[0] * ns[0]), nil
	}
	if len(ns) != 2 {
		return "", errOperands
	}
	a, b := ns[0], ns[1]
	switch q.Type {
	case TypeAddition:
		return itoa(a + b), nil
	case TypeSubtraction, TypeSubtractionRegrouping, TypeMissingSubtrahend:
		return itoa(a - b), nil
	case TypeMissingAddend, TypeInverseAddition:
		// operands are (known addend, total)
		return itoa(b - a), nil
	case TypeShortMultiplication, TypeLongMultiplication:
		return itoa(a * b), nil
	case TypeShortDivision, TypeLongDivision, TypeDivisionKnownFacts:
		if b == 0 || a%b != 0 {
			return "", errNonInteger
		}
		return itoa(a / b), nil
	case TypeDivisionWithRemainder:
		if b == 0 {
			return "", errDivByZero
		}
		return fmt.Sprintf("%d r %d", a/b, a%b), nil
	case TypePercentageOfAmount:
		if a*b%100 != 0 {
			return "", errNonInteger
		}
		return itoa(a * b / 100), nil
	}
	return "", fmt.Errorf("no recomputation for %q", q.Type)
}

func intOperands(ops []string) ([]int64, error) {
	out := make([]int64, len(ops))
	for i, o := range ops {
		n, err := strconv.ParseInt(o, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errOperands, o)
		}
		out[i] = n
	}
	return out, nil
}

// recomputeBidmas evaluates the expression and replays the recorded steps;
// both must land on the same value.
func recomputeBidmas(q *Question) (string, error) {
	result, _, err := EvaluateExpression(q.Text)
	if err != nil {
		return "", err
	}
	if q.Bidmas != nil {
		replayed, err := Replay(q.Text, q.Bidmas.ExecutionSteps)
		if err != nil {
			return "", err
		}
		if replayed != itoa(result) {
			return "", fmt.Errorf("replayed steps give %s, expression gives %d", replayed, result)
		}
	}
	return itoa(result), nil
}

func recomputeFraction(q *Question) (string, error) {
	if len(q.Operands) != 2 {
		return "", errOperands
	}
	a, ok := fraction.Parse(q.Operands[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", errOperands, q.Operands[0])
	}
	b, ok := fraction.Parse(q.Operands[1])
	if !ok {
		return "", fmt.Errorf("%w: %q", errOperands, q.Operands[1])
	}
	switch q.Type {
	case TypeFractionAddition, TypeFractionAdditionUnlike, TypeMixedNumberAddition:
		return fraction.Canonical(fraction.Add(a, b)), nil
	case TypeFractionSubtraction, TypeFractionSubtractionUnlike, TypeMixedNumberSubtraction:
		return fraction.Canonical(fraction.Sub(a, b)), nil
	case TypeFractionMultiplication, TypeFractionByWhole:
		return fraction.Canonical(fraction.Mul(a, b)), nil
	case TypeFractionDivisionByWhole:
		if b.IsZero() {
			return "", errDivByZero
		}
		return fraction.Canonical(fraction.Div(a, b)), nil
	}
	return "", fmt.Errorf("no recomputation for %q", q.Type)
}

func recomputeDecimal(q *Question) (string, error) {
	if len(q.Operands) != 2 {
		return "", errOperands
	}
	a, err := strconv.ParseFloat(q.Operands[0], 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errOperands, q.Operands[0])
	}
	b, err := strconv.ParseFloat(q.Operands[1], 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errOperands, q.Operands[1])
	}
	places := max(decimalPlaces(q.Operands[0]), decimalPlaces(q.Operands[1]))
	switch q.Type {
	case TypeMultiplyByPowerOf10:
		return canonicalFloat(a * b), nil
	case TypeDivideByPowerOf10:
		if b == 0 {
			return "", errDivByZero
		}
		return canonicalFloat(a / b), nil
	case TypeDecimalAddition:
		return decimalAnswer(a+b, places), nil
	case TypeDecimalSubtraction:
		return decimalAnswer(a-b, places), nil
	case TypeDecimalMultiplication:
		return decimalAnswer(a*b, places), nil
	}
	return "", fmt.Errorf("no recomputation for %q", q.Type)
}
