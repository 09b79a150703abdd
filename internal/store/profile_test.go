package store

import (
	"testing"
	"time"
)

func TestRecordMathAnswerLevelUp(t *testing.T) {
	p := &Profile{MathLevel: 0, MathScore: 4}

	leveled := p.RecordMathAnswer(true)
	if !leveled {
		t.Error("expected level-up at score 5")
	}
	if p.MathLevel != 1 {
		t.Errorf("math level = %d, want 1", p.MathLevel)
	}
	if p.MathScore != 0 {
		t.Errorf("math score = %d, want 0 after level-up", p.MathScore)
	}
}

func TestRecordMathAnswerWrongIsNoOp(t *testing.T) {
	p := &Profile{MathLevel: 1, MathScore: 4}
	if p.RecordMathAnswer(false) {
		t.Error("wrong answer must not level up")
	}
	if p.MathLevel != 1 || p.MathScore != 4 {
		t.Errorf("state changed on wrong answer: %+v", p)
	}
}

func TestRecordMathAnswerCappedAtMaxLevel(t *testing.T) {
	p := &Profile{MathLevel: MaxMathLevel, MathScore: 4}
	if p.RecordMathAnswer(true) {
		t.Error("no level-up expected at cap")
	}
	if p.MathLevel != MaxMathLevel {
		t.Errorf("math level = %d, want %d", p.MathLevel, MaxMathLevel)
	}
	if p.MathScore != 0 {
		t.Errorf("math score = %d, want reset to 0 at cap", p.MathScore)
	}
}

func TestRecordMathAnswerAccumulates(t *testing.T) {
	p := &Profile{}
	for i := 0; i < 4; i++ {
		if p.RecordMathAnswer(true) {
			t.Fatalf("unexpected level-up at score %d", p.MathScore)
		}
	}
	if p.MathScore != 4 {
		t.Errorf("math score = %d, want 4", p.MathScore)
	}
}

func TestRecordModuleScoreThreshold(t *testing.T) {
	tests := []struct {
		score      float64
		passed     bool
		wantLevel  int
	}{
		{60, true, 1},
		{59, false, 0},
		{100, true, 1},
		{0, false, 0},
	}
	for _, tt := range tests {
		p := &Profile{}
		if got := p.RecordModuleScore(tt.score); got != tt.passed {
			t.Errorf("RecordModuleScore(%v) = %v, want %v", tt.score, got, tt.passed)
		}
		if p.LessonLevel != tt.wantLevel {
			t.Errorf("score %v: lesson level = %d, want %d", tt.score, p.LessonLevel, tt.wantLevel)
		}
	}
}

func TestAppendHistoryIsAppendOnly(t *testing.T) {
	p := NewProfile("+7")
	now := time.Now()
	p.AppendHistory(40, now)
	p.AppendHistory(80, now.Add(time.Hour))

	if len(p.LearningHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(p.LearningHistory))
	}
	if p.LearningHistory[0].Score != 40 || p.LearningHistory[1].Score != 80 {
		t.Errorf("history order broken: %+v", p.LearningHistory)
	}
}
