package paper

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	pg "github.com/abhisek/mathpaper/internal/problemgen"
)

func newTestAssembler(seed uint64) *Assembler {
	n := 0
	return NewAssembler(pg.New(pg.NewRand(seed), pg.DefaultConfig()), func() string {
		n++
		return fmt.Sprintf("q-%d", n)
	})
}

func TestBlueprint_Shape(t *testing.T) {
	slots := Blueprint()
	require.Len(t, slots, SlotCount)
	for i, s := range slots {
		assert.Equal(t, i+1, s.Number)
		want := 1
		if slices.Contains([]int{31, 33, 35, 36}, s.Number) {
			want = 2
		}
		assert.Equal(t, want, s.MarkValue, "slot %d", s.Number)
	}
	assert.Equal(t, 40, MaxMarks())
}

func TestGenerate_SlotOrderAndIDs(t *testing.T) {
	qs, err := newTestAssembler(1).Generate()
	require.NoError(t, err)
	require.Len(t, qs, SlotCount)

	seen := map[string]bool{}
	for i, q := range qs {
		assert.Equal(t, i+1, q.SlotNumber)
		assert.NotEmpty(t, q.ConstraintFlags, "slot %d", q.SlotNumber)
		assert.False(t, seen[q.QuestionID], "duplicate id %s", q.QuestionID)
		seen[q.QuestionID] = true
	}
	assert.Equal(t, 40, TotalMarks(qs))
}

func TestGenerate_DefaultIDsAreUUIDs(t *testing.T) {
	qs, err := NewAssembler(pg.New(pg.NewRand(2), pg.DefaultConfig()), nil).Generate()
	require.NoError(t, err)
	assert.Len(t, qs[0].QuestionID, 36)
	assert.NotEqual(t, qs[0].QuestionID, qs[1].QuestionID)
}

func TestGenerate_PoolCoverage(t *testing.T) {
	a := newTestAssembler(3)
	for i := 0; i < 1000; i++ {
		qs, err := a.Generate()
		require.NoError(t, err)

		var percentages []pg.PercentageTier
		var knownFacts []pg.KnownFactsTier
		for _, q := range qs {
			for _, f := range q.ConstraintFlags {
				if tier, ok := pg.ParsePercentageFlag(f); ok {
					percentages = append(percentages, tier)
				}
				if tier, ok := pg.ParseKnownFactsFlag(f); ok {
					knownFacts = append(knownFacts, tier)
				}
			}
		}
		slices.Sort(percentages)
		slices.Sort(knownFacts)
		require.Equal(t, []pg.PercentageTier{pg.PercentageChallenging, pg.PercentageMultiplesOf5, pg.PercentageStandard}, percentages)
		require.Equal(t, []pg.KnownFactsTier{pg.KnownFactsEasy, pg.KnownFactsHard, pg.KnownFactsMedium, pg.KnownFactsMedium}, knownFacts)
	}
}

func TestGenerate_Slot9RecordsVariant(t *testing.T) {
	a := newTestAssembler(4)
	seen := map[pg.QuestionType]bool{}
	for i := 0; i < 100; i++ {
		qs, err := a.Generate()
		require.NoError(t, err)
		q := qs[8]
		require.Equal(t, 9, q.SlotNumber)
		assert.Contains(t, q.ConstraintFlags, pg.FlagMissingOrInverse)
		switch q.Type {
		case pg.TypeMissingSubtrahend:
			assert.Contains(t, q.ConstraintFlags, pg.FlagVariantMissingSubtrahend)
		case pg.TypeInverseAddition:
			assert.Contains(t, q.ConstraintFlags, pg.FlagVariantInverseAddition)
		default:
			t.Fatalf("slot 9 has type %s", q.Type)
		}
		seen[q.Type] = true
	}
	assert.Len(t, seen, 2, "both slot 9 variants should appear")
}

func TestMark_Slot1(t *testing.T) {
	qs, err := newTestAssembler(5).Generate()
	require.NoError(t, err)
	q := qs[0]
	require.Equal(t, pg.TypeMultiplyByPowerOf10, q.Type)

	// Pin the question to a known instance.
	q.Question = pg.Question{Type: pg.TypeMultiplyByPowerOf10, Text: "4.2 × 100 =", Answer: "420", Operands: []string{"4.2", "100"}}
	assert.Equal(t, q.MarkValue, q.Mark("420"))
	assert.Equal(t, 1, q.Mark("420"))
	assert.Equal(t, 0, q.Mark("42"))
}

func TestMark_EveryGeneratedAnswerScoresFull(t *testing.T) {
	qs, err := newTestAssembler(6).Generate()
	require.NoError(t, err)
	for _, q := range qs {
		assert.Equal(t, q.MarkValue, q.Mark(q.Answer), "slot %d %q", q.SlotNumber, q.Text)
		assert.Equal(t, 0, q.Mark(""), "slot %d", q.SlotNumber)
	}
}

func TestBlueprintYAML(t *testing.T) {
	out, err := BlueprintYAML()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "max_marks: 40"))

	var doc struct {
		Slots []Slot `yaml:"slots"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.Slots, SlotCount)
	assert.Equal(t, PoolPercentage, doc.Slots[16].Pool)
}
