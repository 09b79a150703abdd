package bot

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/abhisek/tutorbot/internal/quiz"
	"github.com/abhisek/tutorbot/internal/session"
	"github.com/abhisek/tutorbot/internal/store"
)

func (c *Controller) offerMathStart(st *session.State, userID string) {
	p, err := c.profile(userID)
	if err != nil {
		log.Printf("bot: load profile for %s: %v", userID, err)
		c.send(userID, msgGenericError)
		return
	}
	if p == nil {
		c.promptRegistration(st, userID)
		return
	}

	st.Reset(session.StageAwaitingMathStart)
	text := fmt.Sprintf(
		"🎮 Математическая игра!\nУровень: %d · Счёт: %d/%d\nКаждые %d правильных ответов повышают уровень.",
		p.MathLevel, p.MathScore, store.MathLevelUpAt, store.MathLevelUpAt,
	)
	_, err = c.delivery.SendText(userID, text, &SendOptions{
		InlineRows: [][]InlineButton{
			{
				{Label: "▶️ Начать", Data: cbMathGo},
				{Label: "🚪 Выйти", Data: cbQuizCancel},
			},
		},
	})
	if err != nil {
		log.Printf("bot: offer math game to %s: %v", userID, err)
	}
}

// sendMathProblem generates one problem at the user's difficulty tier,
// synthesizes three distractors from fresh generator draws and delivers
// the four options with the correct position encoded in the payloads.
func (c *Controller) sendMathProblem(st *session.State, userID string) {
	p, err := c.profile(userID)
	if err != nil || p == nil {
		log.Printf("bot: load profile for %s: %v", userID, err)
		c.toMainMenu(st, userID, msgGenericError)
		return
	}

	problem, err := c.gen.Generate(p.MathLevel)
	if err != nil {
		log.Printf("bot: generate math problem for %s: %v", userID, err)
		c.toMainMenu(st, userID, msgGenericError)
		return
	}

	// mathOptions puts the correct answer first; one swap moves it to a
	// uniformly random position.
	options := c.mathOptions(problem.Answer, p.MathLevel)
	correctPos := rand.IntN(len(options))
	options[0], options[correctPos] = options[correctPos], options[0]

	qs := quiz.NewSession(userID, quiz.KindMath)
	qs.Questions = []quiz.Question{{
		Text:    problem.Statement,
		Options: options,
		Correct: correctPos + 1,
	}}
	st.Quiz = qs
	st.Stage = session.StagePlayingMath

	var row []InlineButton
	for i, opt := range options {
		row = append(row, InlineButton{
			Label: opt,
			Data:  fmt.Sprintf("%s_%d_%d", cbMathAnswer, i, correctPos),
		})
	}

	msgID, err := c.delivery.SendText(userID, "🧮 "+problem.Statement, &SendOptions{
		InlineRows: [][]InlineButton{row},
	})
	if err != nil {
		log.Printf("bot: send math problem to %s: %v", userID, err)
		c.toMainMenu(st, userID, msgGenericError)
		return
	}
	qs.PendingMessageID = msgID
}

// mathOptions returns 4 answer strings with the correct one first. The
// distractors come from fresh draws at the same tier; numeric neighbours
// fill in when the generator keeps producing duplicates.
func (c *Controller) mathOptions(correct string, tier int) []string {
	options := []string{correct}
	seen := map[string]bool{correct: true}

	for attempts := 0; len(options) < 4 && attempts < 20; attempts++ {
		p, err := c.gen.Generate(tier)
		if err != nil {
			break
		}
		if !seen[p.Answer] {
			seen[p.Answer] = true
			options = append(options, p.Answer)
		}
	}

	if n, err := strconv.Atoi(correct); err == nil {
		for delta := 1; len(options) < 4; delta++ {
			candidate := strconv.Itoa(n + delta)
			if !seen[candidate] {
				seen[candidate] = true
				options = append(options, candidate)
			}
		}
	} else {
		for i := 1; len(options) < 4; i++ {
			options = append(options, correct+strings.Repeat("0", i))
		}
	}
	return options
}

func (c *Controller) handleMathAnswer(st *session.State, ev Event) {
	if st.Stage != session.StagePlayingMath || st.Quiz == nil || st.Quiz.Kind != quiz.KindMath {
		log.Printf("bot: stale math answer from %s", ev.UserID)
		return
	}

	chosen, correctPos, ok := parseMathPayload(ev.Data)
	if !ok {
		log.Printf("bot: malformed math payload %q from %s", ev.Data, ev.UserID)
		return
	}

	answered := chosen == correctPos
	q := &st.Quiz.Questions[0]

	var verdict string
	if answered {
		verdict = "✅ Правильно!"
	} else {
		verdict = "❌ Неправильно! Верный ответ: " + q.Options[q.Correct-1]
	}
	if st.Quiz.PendingMessageID != 0 {
		err := c.delivery.EditText(ev.UserID, st.Quiz.PendingMessageID, q.Text+"\n\n"+verdict)
		if err != nil {
			log.Printf("bot: edit math problem for %s: %v", ev.UserID, err)
		}
	}

	var score, level int
	var leveledUp bool
	err := c.store.Update(func(users map[string]*store.Profile) error {
		p, ok := users[ev.UserID]
		if !ok {
			return fmt.Errorf("no profile for %s", ev.UserID)
		}
		leveledUp = p.RecordMathAnswer(answered)
		score, level = p.MathScore, p.MathLevel
		return nil
	})
	if err != nil {
		log.Printf("bot: record math answer for %s: %v", ev.UserID, err)
		c.toMainMenu(st, ev.UserID, msgGenericError)
		return
	}

	status := fmt.Sprintf("🏆 Счёт: %d/%d · Уровень: %d", score, store.MathLevelUpAt, level)
	if leveledUp {
		status = fmt.Sprintf("🎉 Новый уровень: %d!\n", level) + status
	}

	st.Stage = session.StageAwaitingMathStart
	_, err = c.delivery.SendText(ev.UserID, status, &SendOptions{
		InlineRows: [][]InlineButton{
			{
				{Label: "🎯 Ещё задача", Data: cbMathGo},
				{Label: "🚪 Закончить", Data: cbQuizCancel},
			},
		},
	})
	if err != nil {
		log.Printf("bot: offer next math problem to %s: %v", ev.UserID, err)
	}
}

// parseMathPayload decodes math_<chosen>_<correct>.
func parseMathPayload(data string) (chosen, correct int, ok bool) {
	parts := strings.Split(data, "_")
	if len(parts) != 3 || parts[0] != cbMathAnswer {
		return 0, 0, false
	}
	var err error
	if chosen, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, false
	}
	if correct, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, false
	}
	return chosen, correct, true
}
