package session

import (
	"testing"

	"github.com/abhisek/tutorbot/internal/quiz"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	if r.Get("1") != nil {
		t.Fatal("expected nil state for unknown user")
	}

	st := r.Create("1", StageMainMenu)
	if st.Stage != StageMainMenu {
		t.Errorf("stage = %v, want main-menu", st.Stage)
	}
	if r.Get("1") != st {
		t.Error("Get should return the created state")
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}

	r.Delete("1")
	if r.Get("1") != nil {
		t.Error("state survived delete")
	}
}

func TestCreateReplacesExistingState(t *testing.T) {
	r := NewRegistry()
	old := r.Create("1", StagePlayingMath)
	old.Quiz = quiz.NewSession("1", quiz.KindMath)

	st := r.Create("1", StageMainMenu)
	if st.Quiz != nil {
		t.Error("new state inherited quiz session")
	}
	if r.Get("1") != st {
		t.Error("registry still holds old state")
	}
}

func TestResetClearsQuizKeepsPhoto(t *testing.T) {
	st := &State{
		Stage:       StageTestingTopicQuiz,
		Quiz:        quiz.NewSession("1", quiz.KindTopic),
		LastPhotoID: "file-abc",
	}

	st.Reset(StageMainMenu)

	if st.Stage != StageMainMenu {
		t.Errorf("stage = %v, want main-menu", st.Stage)
	}
	if st.Quiz != nil {
		t.Error("quiz session survived reset")
	}
	if st.LastPhotoID != "file-abc" {
		t.Error("photo slot must survive reset")
	}
}

func TestStageStrings(t *testing.T) {
	if StageAwaitingTopic.String() != "awaiting-topic" {
		t.Errorf("String() = %q", StageAwaitingTopic.String())
	}
	if Stage(99).String() != "unknown" {
		t.Errorf("String() = %q", Stage(99).String())
	}
}
