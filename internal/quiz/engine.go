package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind distinguishes the three quiz flavors.
type Kind int

const (
	// KindTopic is an LLM-generated quiz tied to a user-chosen topic.
	KindTopic Kind = iota
	// KindModule is a pre-authored test gating lesson progression.
	KindModule
	// KindMath is the procedurally generated math game. Math sessions carry
	// no question list: each problem is generated on demand and the correct
	// position travels inside the delivered choice references.
	KindMath
)

// Session is the ephemeral state of one running quiz. At most one session
// exists per user; starting a new quiz discards the previous one.
type Session struct {
	ID     string
	UserID string
	Kind   Kind

	// Theory is the generated study text (topic quizzes only).
	Theory string

	// Questions is the fixed question list (topic and module quizzes).
	Questions []Question

	// Module is the 1-based module number (module tests only).
	Module int

	// Current is the 0-based index of the question awaiting an answer.
	Current int

	// CorrectAnswers counts graded correct answers so far.
	CorrectAnswers int

	// PendingMessageID references the last delivered question message, so
	// it can be edited once the answer arrives. Zero when nothing pending.
	PendingMessageID int
}

// NewSession creates a session for the given user and kind.
func NewSession(userID string, kind Kind) *Session {
	return &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Kind:   kind,
	}
}

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.Questions) }

// Done reports whether every question has been answered.
func (s *Session) Done() bool { return s.Current >= len(s.Questions) }

// CurrentQuestion returns the question awaiting an answer, or nil once the
// session is exhausted.
func (s *Session) CurrentQuestion() *Question {
	if s.Done() {
		return nil
	}
	return &s.Questions[s.Current]
}

// SubmitOutcome is the result of grading one submitted answer.
type SubmitOutcome int

const (
	// OutcomeStale means the callback referenced a question that is no
	// longer current (double click, out-of-order delivery). Nothing changed.
	OutcomeStale SubmitOutcome = iota
	OutcomeCorrect
	OutcomeWrong
)

// Submit grades an answer for questionIndex. chosen is the 0-based picked
// option, correct the 1-based right one as encoded in the callback payload.
// A mismatch between questionIndex and the session's current question is a
// stale callback and leaves the session untouched.
func (s *Session) Submit(questionIndex, chosen, correct int) SubmitOutcome {
	if questionIndex != s.Current || s.Done() {
		return OutcomeStale
	}

	s.Current++
	if chosen+1 == correct {
		s.CorrectAnswers++
		return OutcomeCorrect
	}
	return OutcomeWrong
}

// Score returns the final percentage score. A zero-question session scores 0.
func (s *Session) Score() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return 100 * float64(s.CorrectAnswers) / float64(len(s.Questions))
}

// Summary renders the end-of-quiz report: counts, percentage to one decimal
// and a qualitative remark.
func (s *Session) Summary() string {
	score := s.Score()
	return fmt.Sprintf(
		"📊 Тест завершен!\n✅ Правильных ответов: %d/%d\n💯 Ваш результат: %.1f%%\n\n%s",
		s.CorrectAnswers, s.Total(), score, Remark(score),
	)
}

// Remark maps a percentage score to the qualitative feedback tier.
func Remark(score float64) string {
	switch {
	case score >= 70:
		return "Отличный результат! Вы хорошо усвоили материал."
	case score >= 50:
		return "Неплохо, но можно лучше. Рекомендуем повторить материал."
	default:
		return "Рекомендуем изучить материал еще раз."
	}
}
