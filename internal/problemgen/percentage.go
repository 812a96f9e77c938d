package problemgen

import "fmt"

// percentageRange pairs the percentages of a tier with the step the amount
// is drawn in, chosen so every percentage of every amount is whole.
type percentageRange struct {
	percents []int
	step     int
	maxSteps int
}

var percentageRanges = map[PercentageTier]percentageRange{
	PercentageSimple:       {percents: []int{10, 20, 25, 50, 75}, step: 20, maxSteps: 25},
	PercentageStandard:     {percents: []int{10, 20, 30, 40, 60, 70, 80, 90}, step: 10, maxSteps: 90},
	PercentageMultiplesOf5: {percents: []int{5, 15, 35, 45, 55, 65, 85, 95}, step: 20, maxSteps: 45},
	PercentageChallenging:  {percents: nonMultiplesOf5(), step: 100, maxSteps: 9},
}

func nonMultiplesOf5() []int {
	var out []int
	for p := 1; p < 100; p++ {
		if p%5 != 0 {
			out = append(out, p)
		}
	}
	return out
}

// PercentageOfAmount asks for a percentage of an amount using the
// percentages of the given tier.
func (g *Generator) PercentageOfAmount(tier PercentageTier) (Question, error) {
	r, ok := percentageRanges[tier]
	if !ok {
		return Question{}, fmt.Errorf("unknown percentage tier %q", tier)
	}
	return g.draw("percentageOfAmount", func() (Question, bool) {
		p := pick(g.rng, r.percents)
		amount := r.step * between(g.rng, 1, r.maxSteps)
		if p*amount%100 != 0 {
			return Question{}, false
		}
		return Question{
			Type:     TypePercentageOfAmount,
			Text:     fmt.Sprintf("%d%% of %s =", p, groupInt(int64(amount))),
			Answer:   itoa(int64(p * amount / 100)),
			Operands: []string{itoa(int64(p)), itoa(int64(amount))},
		}, true
	})
}

// TierOfPercent reports which tier a percentage belongs to when it is not
// one of the simple percentages.
func TierOfPercent(p int) PercentageTier {
	switch {
	case p%10 == 0:
		return PercentageStandard
	case p%5 == 0:
		return PercentageMultiplesOf5
	default:
		return PercentageChallenging
	}
}
