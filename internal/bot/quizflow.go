package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/tutorbot/internal/quiz"
	"github.com/abhisek/tutorbot/internal/session"
	"github.com/abhisek/tutorbot/internal/store"
)

func (c *Controller) startTopicQuiz(st *session.State, userID string) {
	if st.Quiz == nil || st.Quiz.Kind != quiz.KindTopic {
		log.Printf("bot: quiz start without materials from %s", userID)
		return
	}
	st.Stage = session.StageTestingTopicQuiz
	st.Quiz.Current = 0
	st.Quiz.CorrectAnswers = 0
	c.deliverQuestion(st, userID)
}

// deliverQuestion sends the session's current question with one inline
// button per option, or finalizes when the list is exhausted. The callback
// payload carries (question, chosen, correct) so grading needs no lookup.
func (c *Controller) deliverQuestion(st *session.State, userID string) {
	qs := st.Quiz
	q := qs.CurrentQuestion()
	if q == nil {
		c.finalizeQuiz(st, userID)
		return
	}

	text := fmt.Sprintf("❓ Вопрос %d/%d\n\n%s", qs.Current+1, qs.Total(), q.Text)

	var rows [][]InlineButton
	for i, opt := range q.Options {
		rows = append(rows, []InlineButton{{
			Label: opt,
			Data:  fmt.Sprintf("%s_%d_%d_%d", cbAnswer, qs.Current, i, q.Correct),
		}})
	}
	rows = append(rows, []InlineButton{{Label: "🚪 Завершить", Data: cbQuizCancel}})

	msgID, err := c.delivery.SendText(userID, text, &SendOptions{InlineRows: rows})
	if err != nil {
		log.Printf("bot: send question to %s: %v", userID, err)
		c.toMainMenu(st, userID, msgGenericError)
		return
	}
	qs.PendingMessageID = msgID
}

func (c *Controller) handleQuizAnswer(st *session.State, ev Event) {
	qs := st.Quiz
	if qs == nil {
		log.Printf("bot: answer for expired session from %s", ev.UserID)
		return
	}

	questionIndex, chosen, correct, ok := parseAnswerPayload(ev.Data)
	if !ok {
		log.Printf("bot: malformed answer payload %q from %s", ev.Data, ev.UserID)
		return
	}

	asked := qs.CurrentQuestion()
	outcome := qs.Submit(questionIndex, chosen, correct)
	switch outcome {
	case quiz.OutcomeStale:
		log.Printf("bot: stale answer (question %d, current %d) from %s",
			questionIndex, qs.Current, ev.UserID)
		return
	case quiz.OutcomeCorrect:
		c.editAnswered(ev.UserID, qs.PendingMessageID, asked, "✅ Правильно!")
	case quiz.OutcomeWrong:
		right := ""
		if asked != nil {
			right = asked.Options[asked.Correct-1]
		}
		c.editAnswered(ev.UserID, qs.PendingMessageID,
			asked, "❌ Неправильно! Верный ответ: "+right)
	}

	c.deliverQuestion(st, ev.UserID)
}

// editAnswered rewrites the question message with the grading verdict so
// the spent buttons disappear.
func (c *Controller) editAnswered(userID string, messageID int, q *quiz.Question, verdict string) {
	if messageID == 0 || q == nil {
		return
	}
	if err := c.delivery.EditText(userID, messageID, q.Text+"\n\n"+verdict); err != nil {
		log.Printf("bot: edit question for %s: %v", userID, err)
	}
}

func (c *Controller) finalizeQuiz(st *session.State, userID string) {
	qs := st.Quiz
	summary := qs.Summary()

	switch qs.Kind {
	case quiz.KindTopic:
		score := qs.Score()
		err := c.store.Update(func(users map[string]*store.Profile) error {
			p, ok := users[userID]
			if !ok {
				return fmt.Errorf("no profile for %s", userID)
			}
			p.AppendHistory(score, time.Now())
			return nil
		})
		if err != nil {
			log.Printf("bot: record topic score for %s: %v", userID, err)
			c.toMainMenu(st, userID, msgGenericError)
			return
		}
	case quiz.KindModule:
		score := qs.Score()
		passed := false
		err := c.store.Update(func(users map[string]*store.Profile) error {
			p, ok := users[userID]
			if !ok {
				return fmt.Errorf("no profile for %s", userID)
			}
			passed = p.RecordModuleScore(score)
			return nil
		})
		if err != nil {
			log.Printf("bot: record module score for %s: %v", userID, err)
			c.toMainMenu(st, userID, msgGenericError)
			return
		}
		if passed {
			summary += fmt.Sprintf("\n\n🎉 Модуль %d пройден! Открыт следующий урок.", qs.Module)
		} else {
			summary += fmt.Sprintf("\n\n📖 Модуль %d не сдан. Повторите материал и попробуйте снова.", qs.Module)
		}
	}

	c.toMainMenu(st, userID, summary)
}

// parseAnswerPayload decodes ans_<question>_<chosen>_<correct>.
func parseAnswerPayload(data string) (questionIndex, chosen, correct int, ok bool) {
	parts := strings.Split(data, "_")
	if len(parts) != 4 || parts[0] != cbAnswer {
		return 0, 0, 0, false
	}
	var err error
	if questionIndex, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if chosen, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	if correct, err = strconv.Atoi(parts[3]); err != nil {
		return 0, 0, 0, false
	}
	return questionIndex, chosen, correct, true
}
