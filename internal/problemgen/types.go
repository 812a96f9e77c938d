package problemgen

import "slices"

// Question is a generated arithmetic question ready for display and marking.
// A generator returns a complete, internally consistent Question or an error;
// never a partially valid one.
type Question struct {
	// Type identifies the generator that produced the question.
	Type QuestionType `json:"type"`

	// Text is the prompt shown to the pupil, e.g. "4,567 + 2,345 =" or
	// "345 + □ = 900". Missing-number questions embed BlankMarker.
	Text string `json:"text"`

	// Answer is the canonical correct answer: an integer ("623"), a decimal
	// ("3.75"), a simplified fraction ("3/4"), a mixed number ("1 3/4") or a
	// quotient with remainder ("12 r 3").
	Answer string `json:"answer"`

	// Operands are the raw operand strings in the order they appear in Text,
	// without thousands separators. Renderers use them instead of parsing Text.
	Operands []string `json:"operands,omitempty"`

	// Bidmas is set only for TypeBidmas questions.
	Bidmas *BidmasMetadata `json:"bidmas_metadata,omitempty"`
}

// BlankMarker marks the missing number in missing-number questions.
const BlankMarker = "□"

// QuestionType is the closed set of question kinds.
type QuestionType string

const (
	TypeAddition                  QuestionType = "addition"
	TypeSubtraction               QuestionType = "subtraction"
	TypeSubtractionRegrouping     QuestionType = "subtractionRegrouping"
	TypeShortMultiplication       QuestionType = "shortMultiplication"
	TypeLongMultiplication        QuestionType = "longMultiplication"
	TypeShortDivision             QuestionType = "shortDivision"
	TypeDivisionWithRemainder     QuestionType = "divisionWithRemainder"
	TypeLongDivision              QuestionType = "longDivision"
	TypeDivisionKnownFacts        QuestionType = "divisionKnownFacts"
	TypeMultiplyByPowerOf10       QuestionType = "multiplyByPowerOf10"
	TypeDivideByPowerOf10         QuestionType = "divideByPowerOf10"
	TypeMissingAddend             QuestionType = "missingAddend"
	TypeMissingSubtrahend         QuestionType = "missingSubtrahend"
	TypeInverseAddition           QuestionType = "inverseAddition"
	TypeSquare                    QuestionType = "square"
	TypeCube                      QuestionType = "cube"
	TypeBidmas                    QuestionType = "bidmas"
	TypeDecimalAddition           QuestionType = "decimalAddition"
	TypeDecimalSubtraction        QuestionType = "decimalSubtraction"
	TypeDecimalMultiplication     QuestionType = "decimalMultiplication"
	TypeFractionAddition          QuestionType = "fractionAddition"
	TypeFractionAdditionUnlike    QuestionType = "fractionAdditionUnlike"
	TypeFractionSubtraction       QuestionType = "fractionSubtraction"
	TypeFractionSubtractionUnlike QuestionType = "fractionSubtractionUnlike"
	TypeMixedNumberAddition       QuestionType = "mixedNumberAddition"
	TypeMixedNumberSubtraction    QuestionType = "mixedNumberSubtraction"
	TypeFractionMultiplication    QuestionType = "fractionMultiplication"
	TypeFractionByWhole           QuestionType = "fractionByWhole"
	TypeFractionDivisionByWhole   QuestionType = "fractionDivisionByWhole"
	TypePercentageOfAmount        QuestionType = "percentageOfAmount"
)

// AllTypes lists every QuestionType in a stable order.
func AllTypes() []QuestionType {
	return []QuestionType{
		TypeAddition,
		TypeSubtraction,
		TypeSubtractionRegrouping,
		TypeShortMultiplication,
		TypeLongMultiplication,
		TypeShortDivision,
		TypeDivisionWithRemainder,
		TypeLongDivision,
		TypeDivisionKnownFacts,
		TypeMultiplyByPowerOf10,
		TypeDivideByPowerOf10,
		TypeMissingAddend,
		TypeMissingSubtrahend,
		TypeInverseAddition,
		TypeSquare,
		TypeCube,
		TypeBidmas,
		TypeDecimalAddition,
		TypeDecimalSubtraction,
		TypeDecimalMultiplication,
		TypeFractionAddition,
		TypeFractionAdditionUnlike,
		TypeFractionSubtraction,
		TypeFractionSubtractionUnlike,
		TypeMixedNumberAddition,
		TypeMixedNumberSubtraction,
		TypeFractionMultiplication,
		TypeFractionByWhole,
		TypeFractionDivisionByWhole,
		TypePercentageOfAmount,
	}
}

// IsFractionFamily reports whether answers to t are marked by fraction
// equivalence.
func (t QuestionType) IsFractionFamily() bool {
	switch t {
	case TypeFractionAddition, TypeFractionAdditionUnlike,
		TypeFractionSubtraction, TypeFractionSubtractionUnlike,
		TypeMixedNumberAddition, TypeMixedNumberSubtraction,
		TypeFractionMultiplication, TypeFractionByWhole,
		TypeFractionDivisionByWhole:
		return true
	}
	return false
}

// IsDecimal reports whether answers to t may be non-whole decimals.
func (t QuestionType) IsDecimal() bool {
	switch t {
	case TypeMultiplyByPowerOf10, TypeDivideByPowerOf10,
		TypeDecimalAddition, TypeDecimalSubtraction, TypeDecimalMultiplication:
		return true
	}
	return false
}

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	return slices.Contains(AllTypes(), t)
}

// BidmasMetadata records how a BIDMAS expression was evaluated.
type BidmasMetadata struct {
	// Operations lists every operator used, in evaluation order. Indices
	// appear as "^".
	Operations []string `json:"operations"`

	// ExecutionSteps is the ordered log of every reduction applied.
	ExecutionSteps []BidmasStep `json:"execution_steps"`

	HasBrackets bool `json:"has_brackets"`
	HasIndices  bool `json:"has_indices"`
}

// BidmasStep is a single reduction of a BIDMAS expression.
type BidmasStep struct {
	// Expression is the whole expression before this step.
	Expression string `json:"expression"`

	// ActiveExpression is the exact sub-expression consumed, e.g. "4 × 5",
	// "(3 + 4)" or "6²".
	ActiveExpression string `json:"active_expression"`

	Operation string  `json:"operation"`
	Operands  []int64 `json:"operands"`
	Result    int64   `json:"result"`
}
