// Package session holds ephemeral per-user conversation state: the current
// stage of the finite-state machine plus whatever the active flow needs to
// resume. State lives for the process lifetime only; a restart drops all
// in-flight quizzes.
package session

import "github.com/abhisek/tutorbot/internal/quiz"

// Stage is the discrete conversation state deciding which handler processes
// the user's next event.
type Stage int

const (
	StageUnregistered Stage = iota
	StageMainMenu
	StageAwaitingContact
	StageAwaitingTopic
	StageMaterialsShown
	StageTestingTopicQuiz
	StageAwaitingMathStart
	StagePlayingMath
	StageAwaitingLessonChoice
	StageAwaitingTestChoice
	StageTakingModuleTest
	StageAwaitingQuery
)

var stageNames = map[Stage]string{
	StageUnregistered:        "unregistered",
	StageMainMenu:            "main-menu",
	StageAwaitingContact:     "awaiting-contact",
	StageAwaitingTopic:       "awaiting-topic",
	StageMaterialsShown:      "materials-shown",
	StageTestingTopicQuiz:    "testing-topic-quiz",
	StageAwaitingMathStart:   "awaiting-math-start",
	StagePlayingMath:         "playing-math",
	StageAwaitingLessonChoice: "awaiting-lesson-choice",
	StageAwaitingTestChoice:  "awaiting-test-choice",
	StageTakingModuleTest:    "taking-module-test",
	StageAwaitingQuery:       "awaiting-query",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// State is one user's resumable conversation state.
type State struct {
	Stage Stage

	// Quiz is the active quiz session, nil outside quiz flows.
	Quiz *quiz.Session

	// LastPhotoID references the most recent photo the user sent, kept so
	// it can be echoed back on request. Survives stage resets.
	LastPhotoID string
}

// Reset tears down flow-scoped state and moves the user to the given stage.
// The photo slot survives.
func (st *State) Reset(stage Stage) {
	st.Stage = stage
	st.Quiz = nil
}

// Registry owns the per-user states. Event dispatch is single-threaded, so
// the plain map needs no locking under the current execution model.
type Registry struct {
	states map[string]*State
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[string]*State)}
}

// Get returns the state for userID, or nil if none exists.
func (r *Registry) Get(userID string) *State {
	return r.states[userID]
}

// Create makes a fresh state at the given stage, replacing any previous one.
func (r *Registry) Create(userID string, stage Stage) *State {
	st := &State{Stage: stage}
	r.states[userID] = st
	return st
}

// Delete removes the user's state entirely.
func (r *Registry) Delete(userID string) {
	delete(r.states, userID)
}

// Len returns the number of tracked users.
func (r *Registry) Len() int { return len(r.states) }
