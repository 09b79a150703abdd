package quiz

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is a single multiple-choice question.
type Question struct {
	// Text is the question statement shown to the user.
	Text string

	// Options are the answer choices, in display order. Always exactly
	// OptionCount entries for a valid question.
	Options []string

	// Correct is the 1-based index of the right option.
	Correct int
}

// Valid reports whether the question satisfies the structural invariants:
// non-empty text, exactly four options, correct index in [1,4].
func (q Question) Valid() bool {
	if q.Text == "" {
		return false
	}
	if len(q.Options) != OptionCount {
		return false
	}
	return q.Correct >= 1 && q.Correct <= OptionCount
}
