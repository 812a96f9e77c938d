package problemgen

import "fmt"

// digitRange returns the smallest and largest numbers with n digits.
func digitRange(n int) (int, int) {
	lo := 1
	for i := 1; i < n; i++ {
		lo *= 10
	}
	return lo, lo*10 - 1
}

func digitCount(n int) int {
	if n == 0 {
		return 1
	}
	c := 0
	for n > 0 {
		c++
		n /= 10
	}
	return c
}

func binaryText(a int, op string, b int) string {
	return fmt.Sprintf("%s %s %s =", groupInt(int64(a)), op, groupInt(int64(b)))
}

func binaryOperands(a, b int) []string {
	return []string{itoa(int64(a)), itoa(int64(b))}
}

// Addition adds two numbers with the given number of digits.
func (g *Generator) Addition(digits int) (Question, error) {
	lo, hi := digitRange(digits)
	return g.draw("addition", func() (Question, bool) {
		a, b := between(g.rng, lo, hi), between(g.rng, lo, hi)
		return Question{
			Type:     TypeAddition,
			Text:     binaryText(a, "+", b),
			Answer:   itoa(int64(a + b)),
			Operands: binaryOperands(a, b),
		}, true
	})
}

// Subtraction subtracts two numbers with the given number of digits. The
// difference is always at least 10.
func (g *Generator) Subtraction(digits int) (Question, error) {
	lo, hi := digitRange(digits)
	return g.draw("subtraction", func() (Question, bool) {
		a, b := between(g.rng, lo, hi), between(g.rng, lo, hi)
		if a-b < 10 {
			return Question{}, false
		}
		return Question{
			Type:     TypeSubtraction,
			Text:     binaryText(a, "-", b),
			Answer:   itoa(int64(a - b)),
			Operands: binaryOperands(a, b),
		}, true
	})
}

// SubtractionRegrouping subtracts from a round multiple of 1000 so that
// every column needs an exchange.
func (g *Generator) SubtractionRegrouping() (Question, error) {
	return g.draw("subtractionRegrouping", func() (Question, bool) {
		a := between(g.rng, 2, 9) * 1000
		b := between(g.rng, 101, a-10)
		if b%10 == 0 || a-b < 10 {
			return Question{}, false
		}
		return Question{
			Type:     TypeSubtractionRegrouping,
			Text:     binaryText(a, "-", b),
			Answer:   itoa(int64(a - b)),
			Operands: binaryOperands(a, b),
		}, true
	})
}

// ShortMultiplication multiplies a number with the given digit count by a
// single digit from 2 to 9.
func (g *Generator) ShortMultiplication(digits int) (Question, error) {
	lo, hi := digitRange(digits)
	return g.draw("shortMultiplication", func() (Question, bool) {
		a, b := between(g.rng, lo, hi), between(g.rng, 2, 9)
		return Question{
			Type:     TypeShortMultiplication,
			Text:     binaryText(a, "×", b),
			Answer:   itoa(int64(a * b)),
			Operands: binaryOperands(a, b),
		}, true
	})
}

// LongMultiplication multiplies a 3- or 4-digit number by a 2-digit number
// that is not a multiple of 10. The product has digits+2 digits.
func (g *Generator) LongMultiplication(digits int) (Question, error) {
	lo, hi := digitRange(digits)
	return g.draw("longMultiplication", func() (Question, bool) {
		a, b := between(g.rng, lo, hi), between(g.rng, 12, 99)
		if b%10 == 0 || digitCount(a*b) != digits+2 {
			return Question{}, false
		}
		return Question{
			Type:     TypeLongMultiplication,
			Text:     binaryText(a, "×", b),
			Answer:   itoa(int64(a * b)),
			Operands: binaryOperands(a, b),
		}, true
	})
}

// ShortDivision divides a number with the given digit count exactly by a
// single digit.
func (g *Generator) ShortDivision(digits int) (Question, error) {
	lo, hi := digitRange(digits)
	return g.draw("shortDivision", func() (Question, bool) {
		divisor := between(g.rng, 2, 9)
		quotient := between(g.rng, lo/divisor+1, hi/divisor)
		dividend := quotient * divisor
		if digitCount(dividend) != digits {
			return Question{}, false
		}
		return Question{
			Type:     TypeShortDivision,
			Text:     binaryText(dividend, "÷", divisor),
			Answer:   itoa(int64(quotient)),
			Operands: binaryOperands(dividend, divisor),
		}, true
	})
}

// DivisionWithRemainder divides a 3-digit number by a single digit leaving
// a non-zero remainder. The answer is written "Q r R".
func (g *Generator) DivisionWithRemainder() (Question, error) {
	return g.draw("divisionWithRemainder", func() (Question, bool) {
		divisor := between(g.rng, 3, 9)
		quotient := between(g.rng, 12, 199)
		remainder := between(g.rng, 1, divisor-1)
		dividend := quotient*divisor + remainder
		if digitCount(dividend) != 3 {
			return Question{}, false
		}
		return Question{
			Type:     TypeDivisionWithRemainder,
			Text:     binaryText(dividend, "÷", divisor),
			Answer:   fmt.Sprintf("%d r %d", quotient, remainder),
			Operands: binaryOperands(dividend, divisor),
		}, true
	})
}

// LongDivision divides a 3- or 4-digit number exactly by a 2-digit number.
// The quotient has digits-1 digits.
func (g *Generator) LongDivision(digits int) (Question, error) {
	lo, hi := digitRange(digits)
	qlo, qhi := digitRange(digits - 1)
	return g.draw("longDivision", func() (Question, bool) {
		divisor := between(g.rng, 12, 99)
		if divisor%10 == 0 {
			return Question{}, false
		}
		quotient := between(g.rng, max(qlo, 11), qhi)
		dividend := quotient * divisor
		if dividend < lo || dividend > hi {
			return Question{}, false
		}
		return Question{
			Type:     TypeLongDivision,
			Text:     binaryText(dividend, "÷", divisor),
			Answer:   itoa(int64(quotient)),
			Operands: binaryOperands(dividend, divisor),
		}, true
	})
}

// knownFactsRange holds the draw ranges for one known-facts tier.
type knownFactsRange struct {
	factLo, factHi         int
	multipleLo, multipleHi int
	powerLo, powerHi       int
	// scaleDivisor multiplies the divisor by 10 as well as the dividend.
	scaleDivisor bool
}

var knownFactsRanges = map[KnownFactsTier]knownFactsRange{
	KnownFactsEasy:   {factLo: 2, factHi: 5, multipleLo: 2, multipleHi: 9, powerLo: 1, powerHi: 1},
	KnownFactsMedium: {factLo: 3, factHi: 9, multipleLo: 2, multipleHi: 9, powerLo: 1, powerHi: 2},
	KnownFactsHard:   {factLo: 6, factHi: 12, multipleLo: 3, multipleHi: 12, powerLo: 2, powerHi: 3, scaleDivisor: true},
}

// DivisionKnownFacts builds dividend = fact × multiple × 10^k so that the
// problem reduces to a times-table fact scaled by a power of ten.
func (g *Generator) DivisionKnownFacts(tier KnownFactsTier) (Question, error) {
	r, ok := knownFactsRanges[tier]
	if !ok {
		return Question{}, fmt.Errorf("unknown known-facts tier %q", tier)
	}
	return g.draw("divisionKnownFacts", func() (Question, bool) {
		fact := between(g.rng, r.factLo, r.factHi)
		multiple := between(g.rng, r.multipleLo, r.multipleHi)
		scale := 1
		for k := between(g.rng, r.powerLo, r.powerHi); k > 0; k-- {
			scale *= 10
		}
		dividend := fact * multiple * scale
		divisor, quotient := fact, multiple*scale
		if r.scaleDivisor {
			divisor, quotient = fact*10, multiple*scale/10
		}
		return Question{
			Type:     TypeDivisionKnownFacts,
			Text:     binaryText(dividend, "÷", divisor),
			Answer:   itoa(int64(quotient)),
			Operands: binaryOperands(dividend, divisor),
		}, true
	})
}

// MissingAddend asks for the missing second addend: "a + □ = total".
func (g *Generator) MissingAddend() (Question, error) {
	return g.missingNumber(TypeMissingAddend, func(a, total string) string {
		return fmt.Sprintf("%s + %s = %s", a, BlankMarker, total)
	})
}

// InverseAddition asks for the missing first addend: "□ + a = total".
func (g *Generator) InverseAddition() (Question, error) {
	return g.missingNumber(TypeInverseAddition, func(a, total string) string {
		return fmt.Sprintf("%s + %s = %s", BlankMarker, a, total)
	})
}

func (g *Generator) missingNumber(t QuestionType, render func(a, total string) string) (Question, error) {
	return g.draw(string(t), func() (Question, bool) {
		a, b := between(g.rng, 100, 999), between(g.rng, 100, 999)
		total := a + b
		return Question{
			Type:     t,
			Text:     render(groupInt(int64(a)), groupInt(int64(total))),
			Answer:   itoa(int64(b)),
			Operands: binaryOperands(a, total),
		}, true
	})
}

// MissingSubtrahend asks for the number taken away: "total - □ = a".
func (g *Generator) MissingSubtrahend() (Question, error) {
	return g.draw("missingSubtrahend", func() (Question, bool) {
		total := between(g.rng, 300, 999)
		b := between(g.rng, 100, total-100)
		a := total - b
		return Question{
			Type:     TypeMissingSubtrahend,
			Text:     fmt.Sprintf("%s - %s = %s", groupInt(int64(total)), BlankMarker, groupInt(int64(a))),
			Answer:   itoa(int64(b)),
			Operands: binaryOperands(total, a),
		}, true
	})
}

// Square asks for n² with n from 2 to 15.
func (g *Generator) Square() (Question, error) {
	return g.draw("square", func() (Question, bool) {
		n := between(g.rng, 2, 15)
		return Question{
			Type:     TypeSquare,
			Text:     fmt.Sprintf("%d² =", n),
			Answer:   itoa(int64(n * n)),
			Operands: []string{itoa(int64(n))},
		}, true
	})
}

// Cube asks for n³ with n from 2 to 6.
func (g *Generator) Cube() (Question, error) {
	return g.draw("cube", func() (Question, bool) {
		n := between(g.rng, 2, 6)
		return Question{
			Type:     TypeCube,
			Text:     fmt.Sprintf("%d³ =", n),
			Answer:   itoa(int64(n * n * n)),
			Operands: []string{itoa(int64(n))},
		}, true
	})
}
