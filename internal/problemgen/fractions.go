package problemgen

import (
	"fmt"

	"github.com/abhisek/mathpaper/internal/fraction"
)

// relatedDenominators returns two distinct denominators where one is a
// multiple of the other, in random order.
func (g *Generator) relatedDenominators() (int64, int64) {
	small := int64(between(g.rng, 2, 6))
	large := small * int64(between(g.rng, 2, 4))
	if chance(g.rng, 0.5) {
		return small, large
	}
	return large, small
}

// properFraction draws n/d with 1 <= n < d.
func (g *Generator) properFraction(d int64) fraction.Fraction {
	return fraction.New(int64(between(g.rng, 1, int(d)-1)), d)
}

// mixedNumber draws a mixed number with a whole part in [1, maxWhole] and a
// non-zero proper fractional part over d.
func (g *Generator) mixedNumber(maxWhole int, d int64) fraction.Mixed {
	p := g.properFraction(d)
	return fraction.Mixed{W: int64(between(g.rng, 1, maxWhole)), N: p.N, D: d}
}

func fractionQuestion(t QuestionType, a, op, b string, result fraction.Fraction) Question {
	return Question{
		Type:     t,
		Text:     fmt.Sprintf("%s %s %s =", a, op, b),
		Answer:   fraction.Canonical(result),
		Operands: []string{a, b},
	}
}

// FractionAddition adds two proper fractions with the same denominator.
func (g *Generator) FractionAddition() (Question, error) {
	return g.draw("fractionAddition", func() (Question, bool) {
		d := int64(between(g.rng, 3, 12))
		a, b := g.properFraction(d), g.properFraction(d)
		return fractionQuestion(TypeFractionAddition, a.String(), "+", b.String(), fraction.Add(a, b)), true
	})
}

// FractionAdditionUnlike adds two proper fractions whose denominators are
// different, one a multiple of the other.
func (g *Generator) FractionAdditionUnlike() (Question, error) {
	return g.draw("fractionAdditionUnlike", func() (Question, bool) {
		da, db := g.relatedDenominators()
		a, b := g.properFraction(da), g.properFraction(db)
		return fractionQuestion(TypeFractionAdditionUnlike, a.String(), "+", b.String(), fraction.Add(a, b)), true
	})
}

// FractionSubtraction subtracts proper fractions with the same denominator.
// Equal numerators are redrawn; the larger fraction always comes first.
func (g *Generator) FractionSubtraction() (Question, error) {
	return g.draw("fractionSubtraction", func() (Question, bool) {
		d := int64(between(g.rng, 3, 12))
		a, b := g.properFraction(d), g.properFraction(d)
		return g.orderedSubtraction(TypeFractionSubtraction, a, b, a.String(), b.String())
	})
}

// FractionSubtractionUnlike subtracts proper fractions whose denominators
// differ, one a multiple of the other.
func (g *Generator) FractionSubtractionUnlike() (Question, error) {
	return g.draw("fractionSubtractionUnlike", func() (Question, bool) {
		da, db := g.relatedDenominators()
		a, b := g.properFraction(da), g.properFraction(db)
		return g.orderedSubtraction(TypeFractionSubtractionUnlike, a, b, a.String(), b.String())
	})
}

// orderedSubtraction swaps the operands so the result is positive and
// rejects draws whose difference is zero.
func (g *Generator) orderedSubtraction(t QuestionType, a, b fraction.Fraction, as, bs string) (Question, bool) {
	if fraction.Equal(a, b) {
		return Question{}, false
	}
	if fraction.Less(a, b) {
		a, b, as, bs = b, a, bs, as
	}
	return fractionQuestion(t, as, "-", bs, fraction.Sub(a, b)), true
}

// MixedNumberAddition adds two mixed numbers with related denominators.
func (g *Generator) MixedNumberAddition() (Question, error) {
	return g.draw("mixedNumberAddition", func() (Question, bool) {
		da, db := g.relatedDenominators()
		a, b := g.mixedNumber(5, da), g.mixedNumber(5, db)
		return fractionQuestion(TypeMixedNumberAddition, a.String(), "+", b.String(),
			fraction.Add(fraction.ToImproper(a), fraction.ToImproper(b))), true
	})
}

// MixedNumberSubtraction subtracts mixed numbers with related denominators.
// The larger number always comes first and zero results are redrawn.
func (g *Generator) MixedNumberSubtraction() (Question, error) {
	return g.draw("mixedNumberSubtraction", func() (Question, bool) {
		da, db := g.relatedDenominators()
		a, b := g.mixedNumber(6, da), g.mixedNumber(4, db)
		return g.orderedSubtraction(TypeMixedNumberSubtraction,
			fraction.ToImproper(a), fraction.ToImproper(b), a.String(), b.String())
	})
}

// FractionMultiplication multiplies two proper fractions.
func (g *Generator) FractionMultiplication() (Question, error) {
	return g.draw("fractionMultiplication", func() (Question, bool) {
		a := g.properFraction(int64(between(g.rng, 2, 10)))
		b := g.properFraction(int64(between(g.rng, 2, 10)))
		return fractionQuestion(TypeFractionMultiplication, a.String(), "×", b.String(), fraction.Mul(a, b)), true
	})
}

// FractionByWhole multiplies a proper fraction by a whole number from 2 to
// 12. Improper results are answered as mixed numbers.
func (g *Generator) FractionByWhole() (Question, error) {
	return g.draw("fractionByWhole", func() (Question, bool) {
		a := g.properFraction(int64(between(g.rng, 3, 12)))
		n := int64(between(g.rng, 2, 12))
		return fractionQuestion(TypeFractionByWhole, a.String(), "×", itoa(n), fraction.Mul(a, fraction.New(n, 1))), true
	})
}

// FractionDivisionByWhole divides a proper fraction by a whole number from
// 2 to 6.
func (g *Generator) FractionDivisionByWhole() (Question, error) {
	return g.draw("fractionDivisionByWhole", func() (Question, bool) {
		a := g.properFraction(int64(between(g.rng, 2, 10)))
		n := int64(between(g.rng, 2, 6))
		return fractionQuestion(TypeFractionDivisionByWhole, a.String(), "÷", itoa(n), fraction.Div(a, fraction.New(n, 1))), true
	})
}
