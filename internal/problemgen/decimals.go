package problemgen

import (
	"fmt"
	"strconv"
)

// randDecimal draws a number whose integer part lies in [lo, hi] and which
// has exactly places decimal places (the last digit is never zero).
func randDecimal(r Rand, lo, hi, places int) (float64, string) {
	scale := 1
	for i := 0; i < places; i++ {
		scale *= 10
	}
	whole := between(r, lo, hi)
	frac := between(r, 1, scale-1)
	for frac%10 == 0 {
		frac = between(r, 1, scale-1)
	}
	s := fmt.Sprintf("%d.%0*d", whole, places, frac)
	f, _ := strconv.ParseFloat(s, 64)
	return f, s
}

var powersOf10 = []int{10, 100, 1000}

// MultiplyByPowerOf10 multiplies a 1- or 2-place decimal by 10, 100 or 1000.
func (g *Generator) MultiplyByPowerOf10() (Question, error) {
	return g.draw("multiplyByPowerOf10", func() (Question, bool) {
		f, s := randDecimal(g.rng, 0, 99, between(g.rng, 1, 2))
		p := pick(g.rng, powersOf10)
		return Question{
			Type:     TypeMultiplyByPowerOf10,
			Text:     fmt.Sprintf("%s × %s =", s, groupInt(int64(p))),
			Answer:   canonicalFloat(f * float64(p)),
			Operands: []string{s, itoa(int64(p))},
		}, true
	})
}

// DivideByPowerOf10 divides a whole number or 1-place decimal by 10, 100
// or 1000.
func (g *Generator) DivideByPowerOf10() (Question, error) {
	return g.draw("divideByPowerOf10", func() (Question, bool) {
		var f float64
		var s string
		if chance(g.rng, 0.5) {
			n := between(g.rng, 11, 9999)
			if n%10 == 0 {
				return Question{}, false
			}
			f, s = float64(n), itoa(int64(n))
		} else {
			f, s = randDecimal(g.rng, 1, 999, 1)
		}
		p := pick(g.rng, powersOf10)
		return Question{
			Type:     TypeDivideByPowerOf10,
			Text:     fmt.Sprintf("%s ÷ %s =", s, groupInt(int64(p))),
			Answer:   canonicalFloat(f / float64(p)),
			Operands: []string{s, itoa(int64(p))},
		}, true
	})
}

// decimalPair draws two decimals. With samePlaces both share a place count;
// otherwise the counts differ.
func (g *Generator) decimalPair(samePlaces bool) (a, b float64, as, bs string, places int) {
	pa := between(g.rng, 1, 3)
	pb := pa
	if !samePlaces {
		for pb == pa {
			pb = between(g.rng, 1, 3)
		}
	}
	a, as = randDecimal(g.rng, 0, 99, pa)
	b, bs = randDecimal(g.rng, 0, 99, pb)
	return a, b, as, bs, max(pa, pb)
}

// DecimalAddition adds two decimals, with the same or different numbers of
// decimal places. The answer is rendered to the larger place count.
func (g *Generator) DecimalAddition(samePlaces bool) (Question, error) {
	return g.draw("decimalAddition", func() (Question, bool) {
		a, b, as, bs, places := g.decimalPair(samePlaces)
		return Question{
			Type:     TypeDecimalAddition,
			Text:     fmt.Sprintf("%s + %s =", as, bs),
			Answer:   decimalAnswer(a+b, places),
			Operands: []string{as, bs},
		}, true
	})
}

// DecimalSubtraction subtracts the smaller decimal from the larger.
func (g *Generator) DecimalSubtraction(samePlaces bool) (Question, error) {
	return g.draw("decimalSubtraction", func() (Question, bool) {
		a, b, as, bs, places := g.decimalPair(samePlaces)
		if a < b {
			a, b, as, bs = b, a, bs, as
		}
		if roundTo(a-b, places) == 0 {
			return Question{}, false
		}
		return Question{
			Type:     TypeDecimalSubtraction,
			Text:     fmt.Sprintf("%s - %s =", as, bs),
			Answer:   decimalAnswer(a-b, places),
			Operands: []string{as, bs},
		}, true
	})
}

// DecimalMultiplication multiplies a 1- or 2-place decimal by a digit.
func (g *Generator) DecimalMultiplication() (Question, error) {
	return g.draw("decimalMultiplication", func() (Question, bool) {
		places := between(g.rng, 1, 2)
		a, as := randDecimal(g.rng, 0, 99, places)
		b := between(g.rng, 2, 9)
		return Question{
			Type:     TypeDecimalMultiplication,
			Text:     fmt.Sprintf("%s × %d =", as, b),
			Answer:   decimalAnswer(a*float64(b), places),
			Operands: []string{as, itoa(int64(b))},
		}, true
	})
}
