package store

import "time"

// Math game progression constants: five correct answers advance the
// difficulty tier, up to the last tier.
const (
	MaxMathLevel    = 2
	MathLevelUpAt   = 5
	ModulePassScore = 60
)

// HistoryRecord is one completed topic quiz.
type HistoryRecord struct {
	Score     float64   `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// Profile is everything persisted about a registered user. A profile exists
// exactly when the user has completed registration by sharing a contact.
type Profile struct {
	// Phone is captured once at registration.
	Phone string `json:"phone"`

	// LessonLevel is the number of lesson modules unlocked. Passing a
	// module test raises it by one.
	LessonLevel int `json:"lesson_level"`

	// MathLevel indexes the math difficulty tier, 0..MaxMathLevel.
	MathLevel int `json:"math_level"`

	// MathScore counts correct math answers since the last level-up.
	MathScore int `json:"math_score"`

	// LearningHistory records completed topic quizzes, append-only.
	LearningHistory []HistoryRecord `json:"learning_history,omitempty"`
}

// NewProfile returns the freshly registered state.
func NewProfile(phone string) *Profile {
	return &Profile{Phone: phone}
}

// RecordMathAnswer applies one graded math answer. A wrong answer changes
// nothing. Reaching MathLevelUpAt resets the score and, below the cap,
// raises the level. Returns true when the level increased.
func (p *Profile) RecordMathAnswer(correct bool) bool {
	if !correct {
		return false
	}
	p.MathScore++
	if p.MathScore < MathLevelUpAt {
		return false
	}
	p.MathScore = 0
	if p.MathLevel >= MaxMathLevel {
		return false
	}
	p.MathLevel++
	return true
}

// RecordModuleScore applies a finished module test. Scores of
// ModulePassScore and above unlock the next lesson module.
func (p *Profile) RecordModuleScore(score float64) (passed bool) {
	if score < ModulePassScore {
		return false
	}
	p.LessonLevel++
	return true
}

// AppendHistory adds a topic-quiz result to the learning history.
func (p *Profile) AppendHistory(score float64, at time.Time) {
	p.LearningHistory = append(p.LearningHistory, HistoryRecord{
		Score:     score,
		Timestamp: at,
	})
}
