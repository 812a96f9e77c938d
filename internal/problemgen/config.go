package problemgen

// MaxAttempts bounds every rejection-sampling loop. The shipped ranges
// converge in a handful of draws; hitting the cap means a range is broken.
const MaxAttempts = 10000

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxAttempts overrides the retry cap for rejection sampling.
	// Zero means MaxAttempts.
	MaxAttempts int

	// BracketChance is the probability that a BIDMAS expression wraps its
	// first operation in brackets.
	BracketChance float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MathCheckValidator{},
		},
		MaxAttempts:   MaxAttempts,
		BracketChance: 0.35,
	}
}
