package problemgen

// specialized returns the generator variant named by flag. Some flags
// (decimal places, denominators, mixed numbers) are shared between an
// addition and a subtraction variant; t disambiguates them.
func specialized(t QuestionType, flag string) (generateFunc, bool) {
	if tier, ok := ParseKnownFactsFlag(flag); ok {
		return func(g *Generator) (Question, error) { return g.DivisionKnownFacts(tier) }, true
	}
	if tier, ok := ParsePercentageFlag(flag); ok {
		return func(g *Generator) (Question, error) { return g.PercentageOfAmount(tier) }, true
	}

	digits := func(fn func(*Generator, int) (Question, error), n int) generateFunc {
		return func(g *Generator) (Question, error) { return fn(g, n) }
	}
	places := func(same bool) generateFunc {
		if t == TypeDecimalSubtraction {
			return func(g *Generator) (Question, error) { return g.DecimalSubtraction(same) }
		}
		return func(g *Generator) (Question, error) { return g.DecimalAddition(same) }
	}

	switch flag {
	case FlagMultiplyBy10_100_1000:
		return (*Generator).MultiplyByPowerOf10, true
	case FlagDivideBy10_100_1000:
		return (*Generator).DivideByPowerOf10, true
	case FlagAddition3Digit:
		return digits((*Generator).Addition, 3), true
	case FlagAddition4Digit:
		return digits((*Generator).Addition, 4), true
	case FlagSubtraction3Digit:
		return digits((*Generator).Subtraction, 3), true
	case FlagSubtraction4Digit:
		return digits((*Generator).Subtraction, 4), true
	case FlagRegrouping:
		return (*Generator).SubtractionRegrouping, true
	case FlagMultiplication3By1:
		return digits((*Generator).ShortMultiplication, 3), true
	case FlagMultiplication4By1:
		return digits((*Generator).ShortMultiplication, 4), true
	case FlagMultiplication3By2:
		return digits((*Generator).LongMultiplication, 3), true
	case FlagMultiplication4By2:
		return digits((*Generator).LongMultiplication, 4), true
	case FlagDivision3By1:
		return digits((*Generator).ShortDivision, 3), true
	case FlagDivision4By1:
		return digits((*Generator).ShortDivision, 4), true
	case FlagDivision3By2:
		return digits((*Generator).LongDivision, 3), true
	case FlagDivision4By2:
		return digits((*Generator).LongDivision, 4), true
	case FlagDivisionWithRemainder:
		return (*Generator).DivisionWithRemainder, true
	case FlagMissingAddend:
		return (*Generator).MissingAddend, true
	case FlagVariantMissingSubtrahend:
		return (*Generator).MissingSubtrahend, true
	case FlagVariantInverseAddition:
		return (*Generator).InverseAddition, true
	case FlagSquare:
		return (*Generator).Square, true
	case FlagCube:
		return (*Generator).Cube, true
	case FlagBidmas:
		return (*Generator).Bidmas, true
	case FlagSameDecimalPlaces:
		return places(true), true
	case FlagDifferentDecimalPlaces:
		return places(false), true
	case FlagDecimalByWhole:
		return (*Generator).DecimalMultiplication, true
	case FlagFractionSameDenominator:
		if t == TypeFractionSubtraction {
			return (*Generator).FractionSubtraction, true
		}
		return (*Generator).FractionAddition, true
	case FlagFractionUnlikeDenominator:
		if t == TypeFractionSubtractionUnlike {
			return (*Generator).FractionSubtractionUnlike, true
		}
		return (*Generator).FractionAdditionUnlike, true
	case FlagMixedNumbers:
		if t == TypeMixedNumberSubtraction {
			return (*Generator).MixedNumberSubtraction, true
		}
		return (*Generator).MixedNumberAddition, true
	case FlagFractionByFraction:
		return (*Generator).FractionMultiplication, true
	case FlagFractionByWhole:
		return (*Generator).FractionByWhole, true
	case FlagFractionDivideByWhole:
		return (*Generator).FractionDivisionByWhole, true
	}
	return nil, false
}

// GenerateFromFlags produces a question with the generator variant named
// by the first flag that selects one. matched is false when no flag does;
// no question is generated in that case.
func (g *Generator) GenerateFromFlags(t QuestionType, flags []string) (q Question, matched bool, err error) {
	for _, f := range flags {
		fn, ok := specialized(t, f)
		if !ok {
			continue
		}
		q, err = fn(g)
		return q, true, err
	}
	return Question{}, false, nil
}
