package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return s
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := openTestStore(t)
	users, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty store, got %d users", len(users))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := map[string]*Profile{
		"1075906814": {
			Phone:       "+79990001122",
			LessonLevel: 2,
			MathLevel:   1,
			MathScore:   3,
		},
	}
	in["1075906814"].AppendHistory(83.3, time.Date(2024, 12, 20, 18, 30, 0, 0, time.UTC))

	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p, ok := out["1075906814"]
	if !ok {
		t.Fatal("profile missing after round trip")
	}
	if p.Phone != "+79990001122" || p.LessonLevel != 2 || p.MathLevel != 1 || p.MathScore != 3 {
		t.Errorf("profile fields lost: %+v", p)
	}
	if len(p.LearningHistory) != 1 || p.LearningHistory[0].Score != 83.3 {
		t.Errorf("history lost: %+v", p.LearningHistory)
	}
}

func TestResetLeavesEmptyLoadableStore(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save(map[string]*Profile{"1": NewProfile("+7")}); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	users, err := s.Load()
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("store not empty after reset: %d users", len(users))
	}
}

func TestUpdateRunsLoadMutateSave(t *testing.T) {
	s := openTestStore(t)

	err := s.Update(func(users map[string]*Profile) error {
		users["7"] = NewProfile("+700")
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	users, _ := s.Load()
	if users["7"] == nil || users["7"].Phone != "+700" {
		t.Errorf("update not persisted: %+v", users)
	}
}

func TestSaveDoesNotLeaveTempFile(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save(map[string]*Profile{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestLoadCorruptStoreFails(t *testing.T) {
	s := openTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatal("expected decode error")
	}
}
