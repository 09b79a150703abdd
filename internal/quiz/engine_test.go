package quiz

import (
	"strings"
	"testing"
)

func fiveQuestionSession() *Session {
	s := NewSession("42", KindTopic)
	for i := 0; i < 5; i++ {
		s.Questions = append(s.Questions, Question{
			Text:    "q",
			Options: []string{"a", "b", "c", "d"},
			Correct: 2,
		})
	}
	return s
}

func TestSubmitCountsCorrectAnswers(t *testing.T) {
	s := fiveQuestionSession()

	// 3 correct (chosen 1 → 1+1 == correct 2), 2 wrong.
	answers := []int{1, 0, 1, 3, 1}
	for i, chosen := range answers {
		outcome := s.Submit(i, chosen, 2)
		if outcome == OutcomeStale {
			t.Fatalf("answer %d unexpectedly stale", i)
		}
	}

	if s.CorrectAnswers != 3 {
		t.Errorf("correct = %d, want 3", s.CorrectAnswers)
	}
	if !s.Done() {
		t.Error("session should be done after 5 answers")
	}
	if s.Score() != 60.0 {
		t.Errorf("score = %v, want 60.0", s.Score())
	}

	summary := s.Summary()
	if !strings.Contains(summary, "3/5") {
		t.Errorf("summary missing 3/5: %q", summary)
	}
	if !strings.Contains(summary, "60.0%") {
		t.Errorf("summary missing 60.0%%: %q", summary)
	}
	if !strings.Contains(summary, "Рекомендуем повторить") {
		t.Errorf("summary missing mid-tier remark: %q", summary)
	}
}

func TestSubmitStaleCallbackIsNoOp(t *testing.T) {
	s := fiveQuestionSession()
	if got := s.Submit(0, 1, 2); got != OutcomeCorrect {
		t.Fatalf("first submit = %v", got)
	}

	// Replay of question 0 after it was already graded.
	if got := s.Submit(0, 1, 2); got != OutcomeStale {
		t.Errorf("replayed submit = %v, want stale", got)
	}
	// A callback for a question not yet delivered.
	if got := s.Submit(3, 1, 2); got != OutcomeStale {
		t.Errorf("future submit = %v, want stale", got)
	}

	if s.CorrectAnswers != 1 || s.Current != 1 {
		t.Errorf("state mutated by stale callbacks: correct=%d current=%d", s.CorrectAnswers, s.Current)
	}
}

func TestZeroQuestionSessionFinalizesCleanly(t *testing.T) {
	s := NewSession("1", KindTopic)
	if !s.Done() {
		t.Error("empty session should be done immediately")
	}
	if s.Score() != 0 {
		t.Errorf("score = %v, want 0", s.Score())
	}
	if s.CurrentQuestion() != nil {
		t.Error("expected nil current question")
	}
	// Must not panic or divide by zero.
	_ = s.Summary()
}

func TestRemarkTiers(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Отличный результат"},
		{70, "Отличный результат"},
		{69.9, "Неплохо"},
		{50, "Неплохо"},
		{49.9, "изучить материал еще раз"},
		{0, "изучить материал еще раз"},
	}
	for _, tt := range tests {
		if got := Remark(tt.score); !strings.Contains(got, tt.want) {
			t.Errorf("Remark(%v) = %q, want containing %q", tt.score, got, tt.want)
		}
	}
}

func TestNewSessionAssignsUniqueIDs(t *testing.T) {
	a := NewSession("1", KindMath)
	b := NewSession("1", KindMath)
	if a.ID == b.ID {
		t.Error("expected distinct session IDs")
	}
	if a.ID == "" {
		t.Error("expected non-empty session ID")
	}
}
