package problemgen

import "strings"

// Constraint flags tag a paper question with the generator variant that
// produced it. They are persisted with every test question and read back by
// the practice selector, so the strings must not change.
const (
	FlagMultiplyBy10_100_1000 = "multiplyBy10_100_1000"
	FlagDivideBy10_100_1000   = "divideBy10_100_1000"

	FlagAddition3Digit    = "3digitAddition"
	FlagAddition4Digit    = "4digitAddition"
	FlagSubtraction3Digit = "3digitSubtraction"
	FlagSubtraction4Digit = "4digitSubtraction"
	FlagRegrouping        = "regrouping"

	FlagMultiplication3By1 = "3digitBy1digitMultiplication"
	FlagMultiplication4By1 = "4digitBy1digitMultiplication"
	FlagMultiplication3By2 = "3digitBy2digitMultiplication"
	FlagMultiplication4By2 = "4digitBy2digitMultiplication"

	FlagDivision3By1          = "3digitBy1digitDivision"
	FlagDivision4By1          = "4digitBy1digitDivision"
	FlagDivision3By2          = "3digitBy2digitDivision"
	FlagDivision4By2          = "4digitBy2digitDivision"
	FlagDivisionWithRemainder = "divisionWithRemainder"

	FlagMissingAddend            = "missingAddend"
	FlagMissingOrInverse         = "missingOrInverse"
	FlagVariantMissingSubtrahend = "variant:missingSubtrahend"
	FlagVariantInverseAddition   = "variant:inverseAddition"

	FlagSquare = "square"
	FlagCube   = "cube"
	FlagBidmas = "bidmas"

	FlagSameDecimalPlaces      = "sameDecimalPlaces"
	FlagDifferentDecimalPlaces = "differentDecimalPlaces"
	FlagDecimalByWhole         = "decimalByWhole"

	FlagFractionSameDenominator   = "sameDenominator"
	FlagFractionUnlikeDenominator = "unlikeDenominator"
	FlagMixedNumbers              = "mixedNumbers"
	FlagFractionByFraction        = "fractionByFraction"
	FlagFractionByWhole           = "fractionByWhole"
	FlagFractionDivideByWhole     = "fractionDivideByWhole"

	// FlagKnownFactsPrefix is followed by a KnownFactsTier.
	FlagKnownFactsPrefix = "knownFacts:"
	// FlagPercentagePrefix is followed by a PercentageTier.
	FlagPercentagePrefix = "percentage:"
)

// KnownFactsTier selects the ranges used by division-with-known-facts.
type KnownFactsTier string

const (
	KnownFactsEasy   KnownFactsTier = "easy"
	KnownFactsMedium KnownFactsTier = "medium"
	KnownFactsHard   KnownFactsTier = "hard"
)

// PercentageTier selects the percentages used by percentage-of-amount.
type PercentageTier string

const (
	// PercentageSimple uses 10, 20, 25, 50 and 75 percent.
	PercentageSimple PercentageTier = "simple"
	// PercentageStandard uses multiples of 10 percent.
	PercentageStandard PercentageTier = "standard"
	// PercentageMultiplesOf5 uses odd multiples of 5 percent.
	PercentageMultiplesOf5 PercentageTier = "multiplesOf5"
	// PercentageChallenging uses percentages that are not multiples of 5.
	PercentageChallenging PercentageTier = "challenging"
)

// KnownFactsFlag returns the constraint flag for tier.
func KnownFactsFlag(tier KnownFactsTier) string {
	return FlagKnownFactsPrefix + string(tier)
}

// PercentageFlag returns the constraint flag for tier.
func PercentageFlag(tier PercentageTier) string {
	return FlagPercentagePrefix + string(tier)
}

// ParseKnownFactsFlag extracts the tier from a "knownFacts:" flag.
func ParseKnownFactsFlag(flag string) (KnownFactsTier, bool) {
	suffix, ok := strings.CutPrefix(flag, FlagKnownFactsPrefix)
	if !ok {
		return "", false
	}
	switch tier := KnownFactsTier(suffix); tier {
	case KnownFactsEasy, KnownFactsMedium, KnownFactsHard:
		return tier, true
	}
	return "", false
}

// ParsePercentageFlag extracts the tier from a "percentage:" flag.
func ParsePercentageFlag(flag string) (PercentageTier, bool) {
	suffix, ok := strings.CutPrefix(flag, FlagPercentagePrefix)
	if !ok {
		return "", false
	}
	switch tier := PercentageTier(suffix); tier {
	case PercentageSimple, PercentageStandard, PercentageMultiplesOf5, PercentageChallenging:
		return tier, true
	}
	return "", false
}
