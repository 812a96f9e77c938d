package paper

import (
	"gopkg.in/yaml.v3"

	pg "github.com/abhisek/mathpaper/internal/problemgen"
)

// SlotCount is the number of questions on every paper.
const SlotCount = 36

// Pool names a slot family whose difficulty is dealt from a shuffled pool
// when the paper is assembled.
type Pool string

const (
	PoolNone             Pool = ""
	PoolKnownFacts       Pool = "knownFacts"
	PoolPercentage       Pool = "percentage"
	PoolMissingOrInverse Pool = "missingOrInverse"
)

// Slot is one fixed exam position.
type Slot struct {
	Number    int             `yaml:"slot" json:"slot"`
	MarkValue int             `yaml:"marks" json:"marks"`
	Type      pg.QuestionType `yaml:"type" json:"type"`
	Flags     []string        `yaml:"flags,omitempty" json:"flags,omitempty"`
	Pool      Pool            `yaml:"pool,omitempty" json:"pool,omitempty"`
}

// Pools dealt across slots without replacement. Each paper exercises every
// entry of a pool exactly once.
var (
	knownFactsPool = []pg.KnownFactsTier{pg.KnownFactsEasy, pg.KnownFactsMedium, pg.KnownFactsMedium, pg.KnownFactsHard}
	percentagePool = []pg.PercentageTier{pg.PercentageStandard, pg.PercentageMultiplesOf5, pg.PercentageChallenging}
)

func slot(n int, t pg.QuestionType, flags ...string) Slot {
	return Slot{Number: n, MarkValue: 1, Type: t, Flags: flags}
}

func twoMarks(s Slot) Slot {
	s.MarkValue = 2
	return s
}

func pooled(n int, t pg.QuestionType, p Pool) Slot {
	return Slot{Number: n, MarkValue: 1, Type: t, Pool: p}
}

var blueprint = []Slot{
	slot(1, pg.TypeMultiplyByPowerOf10, pg.FlagMultiplyBy10_100_1000),
	slot(2, pg.TypeAddition, pg.FlagAddition3Digit),
	slot(3, pg.TypeSubtraction, pg.FlagSubtraction4Digit),
	slot(4, pg.TypeShortMultiplication, pg.FlagMultiplication3By1),
	slot(5, pg.TypeDivideByPowerOf10, pg.FlagDivideBy10_100_1000),
	pooled(6, pg.TypeDivisionKnownFacts, PoolKnownFacts),
	slot(7, pg.TypeMissingAddend, pg.FlagMissingAddend),
	slot(8, pg.TypeSquare, pg.FlagSquare),
	pooled(9, pg.TypeMissingSubtrahend, PoolMissingOrInverse),
	slot(10, pg.TypeShortDivision, pg.FlagDivision3By1),
	slot(11, pg.TypeAddition, pg.FlagAddition4Digit),
	pooled(12, pg.TypeDivisionKnownFacts, PoolKnownFacts),
	slot(13, pg.TypeDecimalAddition, pg.FlagSameDecimalPlaces),
	slot(14, pg.TypeSubtractionRegrouping, pg.FlagRegrouping),
	slot(15, pg.TypeCube, pg.FlagCube),
	slot(16, pg.TypeFractionAddition, pg.FlagFractionSameDenominator),
	pooled(17, pg.TypePercentageOfAmount, PoolPercentage),
	slot(18, pg.TypeDecimalSubtraction, pg.FlagDifferentDecimalPlaces),
	slot(19, pg.TypeBidmas, pg.FlagBidmas),
	pooled(20, pg.TypeDivisionKnownFacts, PoolKnownFacts),
	slot(21, pg.TypeFractionSubtraction, pg.FlagFractionSameDenominator),
	slot(22, pg.TypeDecimalMultiplication, pg.FlagDecimalByWhole),
	slot(23, pg.TypeDivisionWithRemainder, pg.FlagDivisionWithRemainder),
	slot(24, pg.TypeFractionMultiplication, pg.FlagFractionByFraction),
	pooled(25, pg.TypePercentageOfAmount, PoolPercentage),
	slot(26, pg.TypeDecimalAddition, pg.FlagDifferentDecimalPlaces),
	slot(27, pg.TypeFractionAdditionUnlike, pg.FlagFractionUnlikeDenominator),
	pooled(28, pg.TypeDivisionKnownFacts, PoolKnownFacts),
	slot(29, pg.TypeFractionByWhole, pg.FlagFractionByWhole),
	slot(30, pg.TypeFractionDivisionByWhole, pg.FlagFractionDivideByWhole),
	twoMarks(slot(31, pg.TypeLongMultiplication, pg.FlagMultiplication3By2)),
	slot(32, pg.TypeMixedNumberAddition, pg.FlagMixedNumbers),
	twoMarks(slot(33, pg.TypeLongDivision, pg.FlagDivision3By2)),
	pooled(34, pg.TypePercentageOfAmount, PoolPercentage),
	twoMarks(slot(35, pg.TypeLongMultiplication, pg.FlagMultiplication4By2)),
	twoMarks(slot(36, pg.TypeLongDivision, pg.FlagDivision4By2)),
}

// Blueprint returns a copy of the 36-slot table in slot order.
func Blueprint() []Slot {
	out := make([]Slot, len(blueprint))
	for i, s := range blueprint {
		s.Flags = append([]string(nil), s.Flags...)
		out[i] = s
	}
	return out
}

// MaxMarks is the total available on a paper.
func MaxMarks() int {
	total := 0
	for _, s := range blueprint {
		total += s.MarkValue
	}
	return total
}

// BlueprintYAML renders the slot table as YAML.
func BlueprintYAML() ([]byte, error) {
	return yaml.Marshal(struct {
		MaxMarks int    `yaml:"max_marks"`
		Slots    []Slot `yaml:"slots"`
	}{MaxMarks(), Blueprint()})
}
