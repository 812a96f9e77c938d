package paper

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	pg "github.com/abhisek/mathpaper/internal/problemgen"
)

// TestQuestion is a question placed on a paper. It is created once when the
// paper is assembled and never changed afterwards.
type TestQuestion struct {
	pg.Question

	// QuestionID is unique per generated instance.
	QuestionID string `json:"question_id"`

	// SlotNumber is the fixed exam position, 1 to 36.
	SlotNumber int `json:"slot_number"`

	// MarkValue is the number of marks a correct answer earns (1 or 2).
	MarkValue int `json:"mark_value"`

	// ConstraintFlags identify the generator variant that produced the
	// question. The practice selector uses them to generate fresh variants.
	ConstraintFlags []string `json:"constraint_flags"`
}

// Mark scores a response to q.
func (q *TestQuestion) Mark(response string) int {
	return pg.Mark(response, &q.Question, q.MarkValue)
}

// Assembler builds papers from the blueprint.
type Assembler struct {
	gen   *pg.Generator
	newID func() string
}

// NewAssembler creates an Assembler drawing questions from gen. A nil newID
// defaults to random UUIDs.
func NewAssembler(gen *pg.Generator, newID func() string) *Assembler {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Assembler{gen: gen, newID: newID}
}

// Generate assembles a full paper: exactly SlotCount questions in slot
// order, each with a fresh ID. Known-facts and percentage difficulties are
// dealt from shuffled pools so each pool entry is used exactly once.
func (a *Assembler) Generate() ([]TestQuestion, error) {
	rng := a.gen.Rand()

	knownFacts := slices.Clone(knownFactsPool)
	rng.Shuffle(len(knownFacts), func(i, j int) { knownFacts[i], knownFacts[j] = knownFacts[j], knownFacts[i] })
	percentages := slices.Clone(percentagePool)
	rng.Shuffle(len(percentages), func(i, j int) { percentages[i], percentages[j] = percentages[j], percentages[i] })

	out := make([]TestQuestion, 0, SlotCount)
	for _, s := range Blueprint() {
		flags := s.Flags
		qt := s.Type
		switch s.Pool {
		case PoolKnownFacts:
			flags = append(flags, pg.KnownFactsFlag(knownFacts[0]))
			knownFacts = knownFacts[1:]
		case PoolPercentage:
			flags = append(flags, pg.PercentageFlag(percentages[0]))
			percentages = percentages[1:]
		case PoolMissingOrInverse:
			variant := pg.FlagVariantMissingSubtrahend
			qt = pg.TypeMissingSubtrahend
			if rng.IntN(2) == 1 {
				variant = pg.FlagVariantInverseAddition
				qt = pg.TypeInverseAddition
			}
			flags = append(flags, pg.FlagMissingOrInverse, variant)
		}

		q, matched, err := a.gen.GenerateFromFlags(qt, flags)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", s.Number, err)
		}
		if !matched {
			return nil, fmt.Errorf("slot %d: no generator for flags %v", s.Number, flags)
		}
		out = append(out, TestQuestion{
			Question:        q,
			QuestionID:      a.newID(),
			SlotNumber:      s.Number,
			MarkValue:       s.MarkValue,
			ConstraintFlags: flags,
		})
	}
	return out, nil
}

// TotalMarks sums the mark values of qs.
func TotalMarks(qs []TestQuestion) int {
	total := 0
	for _, q := range qs {
		total += q.MarkValue
	}
	return total
}
