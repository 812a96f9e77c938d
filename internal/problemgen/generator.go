package problemgen

import (
	"errors"
	"fmt"
)

// ErrRetriesExhausted is returned when a generator fails to draw a valid
// question within its attempt cap.
var ErrRetriesExhausted = errors.New("retries exhausted")

// Generator produces randomized questions of every QuestionType.
// It is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rng    Rand
	config Config
}

// New creates a Generator drawing from rng.
func New(rng Rand, cfg Config) *Generator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = MaxAttempts
	}
	return &Generator{rng: rng, config: cfg}
}

// Rand returns the generator's random source.
func (g *Generator) Rand() Rand {
	return g.rng
}

// Generate produces a question of type t using the generic variant for
// that type.
func (g *Generator) Generate(t QuestionType) (Question, error) {
	fn, ok := registry[t]
	if !ok {
		return Question{}, fmt.Errorf("unknown question type %q", t)
	}
	return fn(g)
}

// draw runs a rejection-sampling loop. next returns false to request a
// fresh draw. Accepted questions go through the validator chain.
func (g *Generator) draw(name string, next func() (Question, bool)) (Question, error) {
	for i := 0; i < g.config.MaxAttempts; i++ {
		q, ok := next()
		if !ok {
			continue
		}
		for _, v := range g.config.Validators {
			if verr := v.Validate(&q); verr != nil {
				return Question{}, verr
			}
		}
		return q, nil
	}
	return Question{}, fmt.Errorf("%s: %w after %d attempts", name, ErrRetriesExhausted, g.config.MaxAttempts)
}

type generateFunc func(g *Generator) (Question, error)

// registry maps every QuestionType to its generic generator.
var registry = map[QuestionType]generateFunc{
	TypeAddition:              func(g *Generator) (Question, error) { return g.Addition(pick(g.rng, []int{3, 4})) },
	TypeSubtraction:           func(g *Generator) (Question, error) { return g.Subtraction(pick(g.rng, []int{3, 4})) },
	TypeSubtractionRegrouping: (*Generator).SubtractionRegrouping,
	TypeShortMultiplication:   func(g *Generator) (Question, error) { return g.ShortMultiplication(pick(g.rng, []int{3, 4})) },
	TypeLongMultiplication:    func(g *Generator) (Question, error) { return g.LongMultiplication(pick(g.rng, []int{3, 4})) },
	TypeShortDivision:         func(g *Generator) (Question, error) { return g.ShortDivision(pick(g.rng, []int{3, 4})) },
	TypeDivisionWithRemainder: (*Generator).DivisionWithRemainder,
	TypeLongDivision:          func(g *Generator) (Question, error) { return g.LongDivision(pick(g.rng, []int{3, 4})) },
	TypeDivisionKnownFacts: func(g *Generator) (Question, error) {
		return g.DivisionKnownFacts(pick(g.rng, []KnownFactsTier{KnownFactsEasy, KnownFactsMedium, KnownFactsHard}))
	},
	TypeMultiplyByPowerOf10:       (*Generator).MultiplyByPowerOf10,
	TypeDivideByPowerOf10:         (*Generator).DivideByPowerOf10,
	TypeMissingAddend:             (*Generator).MissingAddend,
	TypeMissingSubtrahend:         (*Generator).MissingSubtrahend,
	TypeInverseAddition:           (*Generator).InverseAddition,
	TypeSquare:                    (*Generator).Square,
	TypeCube:                      (*Generator).Cube,
	TypeBidmas:                    (*Generator).Bidmas,
	TypeDecimalAddition:           func(g *Generator) (Question, error) { return g.DecimalAddition(chance(g.rng, 0.5)) },
	TypeDecimalSubtraction:        func(g *Generator) (Question, error) { return g.DecimalSubtraction(chance(g.rng, 0.5)) },
	TypeDecimalMultiplication:     (*Generator).DecimalMultiplication,
	TypeFractionAddition:          (*Generator).FractionAddition,
	TypeFractionAdditionUnlike:    (*Generator).FractionAdditionUnlike,
	TypeFractionSubtraction:       (*Generator).FractionSubtraction,
	TypeFractionSubtractionUnlike: (*Generator).FractionSubtractionUnlike,
	TypeMixedNumberAddition:       (*Generator).MixedNumberAddition,
	TypeMixedNumberSubtraction:    (*Generator).MixedNumberSubtraction,
	TypeFractionMultiplication:    (*Generator).FractionMultiplication,
	TypeFractionByWhole:           (*Generator).FractionByWhole,
	TypeFractionDivisionByWhole:   (*Generator).FractionDivisionByWhole,
	TypePercentageOfAmount: func(g *Generator) (Question, error) {
		return g.PercentageOfAmount(pick(g.rng, []PercentageTier{
			PercentageSimple, PercentageStandard, PercentageMultiplesOf5, PercentageChallenging,
		}))
	},
}

func init() {
	for _, t := range AllTypes() {
		if registry[t] == nil {
			panic(fmt.Sprintf("problemgen: no generator registered for %q", t))
		}
	}
	if len(registry) != len(AllTypes()) {
		panic("problemgen: registry has entries missing from AllTypes")
	}
}
