package bot

import (
	"context"
	"log"
	"strings"

	"github.com/abhisek/tutorbot/internal/config"
	"github.com/abhisek/tutorbot/internal/llm"
	"github.com/abhisek/tutorbot/internal/mathgen"
	"github.com/abhisek/tutorbot/internal/session"
	"github.com/abhisek/tutorbot/internal/store"
)

const (
	msgGenericError  = "⚠️ Произошла ошибка. Попробуйте позже."
	msgProcessError  = "⚠️ Ошибка обработки запроса. Попробуйте позже."
	msgCancelled     = "Действие отменено."
	msgMainMenu      = "📋 Главное меню"
	msgUseButtons    = "Используйте кнопки меню или отправьте «Отмена»."
	msgNeedRegister  = "Для продолжения нужна регистрация. Нажмите кнопку ниже и отправьте свой контакт."
)

// Controller is the per-user conversation state machine. It owns the
// session registry and routes each inbound event to the flow handler for
// the user's current stage. Dispatch is single-threaded: Handle runs to
// completion before the next event is processed.
type Controller struct {
	cfg      config.Config
	delivery Delivery
	provider llm.Provider
	store    *store.Store
	sessions *session.Registry
	gen      *mathgen.Generator
}

// NewController wires the controller with its collaborators.
func NewController(cfg config.Config, d Delivery, p llm.Provider, st *store.Store, reg *session.Registry, gen *mathgen.Generator) *Controller {
	return &Controller{
		cfg:      cfg,
		delivery: d,
		provider: p,
		store:    st,
		sessions: reg,
		gen:      gen,
	}
}

// Handle processes one inbound event to completion.
func (c *Controller) Handle(ctx context.Context, ev Event) {
	st := c.stateFor(ev.UserID)

	switch ev.Kind {
	case EventContact:
		c.handleContact(st, ev)
		return
	case EventPhoto:
		c.handlePhoto(st, ev)
		return
	case EventCallback:
		c.handleCallback(ctx, st, ev)
		return
	}

	text := strings.TrimSpace(ev.Text)
	if strings.EqualFold(text, cancelKeyword) || text == "/cancel" {
		c.toMainMenu(st, ev.UserID, msgCancelled)
		return
	}
	if text == "/start" {
		c.handleStart(st, ev.UserID)
		return
	}

	switch st.Stage {
	case session.StageUnregistered, session.StageAwaitingContact:
		c.promptRegistration(st, ev.UserID)
	case session.StageMainMenu:
		c.handleMenu(ctx, st, ev.UserID, text)
	case session.StageAwaitingTopic:
		c.handleTopicRequest(ctx, st, ev.UserID, text)
	case session.StageAwaitingQuery:
		c.handleFreeformQuery(ctx, st, ev.UserID, text)
	default:
		// Mid-flow stages expect button presses, not free text.
		c.send(ev.UserID, msgUseButtons)
	}
}

// stateFor returns the user's conversation state, creating one on first
// contact. The initial stage depends on whether a profile already exists.
func (c *Controller) stateFor(userID string) *session.State {
	if st := c.sessions.Get(userID); st != nil {
		return st
	}

	stage := session.StageUnregistered
	if p, err := c.profile(userID); err != nil {
		log.Printf("bot: load profile for %s: %v", userID, err)
	} else if p != nil {
		stage = session.StageMainMenu
	}
	return c.sessions.Create(userID, stage)
}

// profile returns the stored profile for userID, nil if unregistered.
func (c *Controller) profile(userID string) (*store.Profile, error) {
	users, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	return users[userID], nil
}

func (c *Controller) handleStart(st *session.State, userID string) {
	p, err := c.profile(userID)
	if err != nil {
		log.Printf("bot: load profile for %s: %v", userID, err)
		c.send(userID, msgGenericError)
		return
	}
	if p == nil {
		st.Reset(session.StageUnregistered)
		c.promptRegistration(st, userID)
		return
	}
	c.toMainMenu(st, userID, "С возвращением! Вы зарегистрированы.")
}

func (c *Controller) promptRegistration(st *session.State, userID string) {
	st.Reset(session.StageAwaitingContact)
	_, err := c.delivery.SendText(userID, msgNeedRegister, &SendOptions{
		ReplyRows: contactKeyboard(),
	})
	if err != nil {
		log.Printf("bot: send registration prompt to %s: %v", userID, err)
	}
}

func (c *Controller) handleContact(st *session.State, ev Event) {
	err := c.store.Update(func(users map[string]*store.Profile) error {
		if _, ok := users[ev.UserID]; !ok {
			users[ev.UserID] = store.NewProfile(ev.Phone)
		}
		return nil
	})
	if err != nil {
		log.Printf("bot: register %s: %v", ev.UserID, err)
		c.send(ev.UserID, msgGenericError)
		return
	}
	c.toMainMenu(st, ev.UserID, "✅ Регистрация завершена!")
}

func (c *Controller) handlePhoto(st *session.State, ev Event) {
	st.LastPhotoID = ev.PhotoID
	c.send(ev.UserID, "🖼 Фото сохранено. Его можно посмотреть через меню.")
}

func (c *Controller) handleMenu(ctx context.Context, st *session.State, userID, text string) {
	switch text {
	case labelLearnTopic:
		st.Reset(session.StageAwaitingTopic)
		c.send(userID, "Какую тему хотите изучить? Напишите её название.")
	case labelMathGame:
		c.offerMathStart(st, userID)
	case labelLessons:
		c.offerLessons(st, userID)
	case labelTesting:
		c.offerModuleTests(st, userID)
	case labelAskTutor:
		st.Reset(session.StageAwaitingQuery)
		c.send(userID, "Напишите свой вопрос, я передам его ассистенту.")
	case labelFAQ:
		c.sendFAQMenu(userID)
	case labelSchedule:
		c.sendSchedule(userID)
	case labelHomework:
		c.sendHomework(userID)
	case labelMyPhoto:
		c.sendStoredPhoto(st, userID)
	case labelAdminUsers:
		c.adminListUsers(userID)
	case labelAdminReset:
		c.adminOfferReset(userID)
	default:
		c.send(userID, msgUseButtons)
	}
}

func (c *Controller) handleCallback(ctx context.Context, st *session.State, ev Event) {
	data := ev.Data
	switch {
	case data == cbQuizStart:
		c.startTopicQuiz(st, ev.UserID)
	case data == cbQuizCancel:
		c.toMainMenu(st, ev.UserID, msgCancelled)
	case data == cbMathGo:
		c.sendMathProblem(st, ev.UserID)
	case strings.HasPrefix(data, cbMathAnswer+"_"):
		c.handleMathAnswer(st, ev)
	case strings.HasPrefix(data, cbAnswer+"_"):
		c.handleQuizAnswer(st, ev)
	case strings.HasPrefix(data, cbLesson+"_"):
		c.handleLessonChoice(st, ev)
	case strings.HasPrefix(data, cbModuleTest+"_"):
		c.handleModuleTestChoice(st, ev)
	case strings.HasPrefix(data, cbFAQ+"_"):
		c.handleFAQChoice(ev)
	case data == cbResetYes:
		c.adminConfirmReset(st, ev.UserID)
	case data == cbResetNo:
		c.toMainMenu(st, ev.UserID, msgCancelled)
	default:
		log.Printf("bot: unknown callback %q from %s", data, ev.UserID)
	}
}

// toMainMenu tears down flow state and shows the menu keyboard.
func (c *Controller) toMainMenu(st *session.State, userID, text string) {
	st.Reset(session.StageMainMenu)
	_, err := c.delivery.SendText(userID, text+"\n\n"+msgMainMenu, &SendOptions{
		ReplyRows: mainMenuKeyboard(c.cfg.IsAdmin(userID)),
	})
	if err != nil {
		log.Printf("bot: send menu to %s: %v", userID, err)
	}
}

// send delivers plain text, logging delivery failures instead of
// propagating them: the dispatch loop must never die on transport errors.
func (c *Controller) send(userID, text string) {
	if _, err := c.delivery.SendText(userID, text, nil); err != nil {
		log.Printf("bot: send to %s: %v", userID, err)
	}
}
