package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/abhisek/tutorbot/internal/llm"
	"github.com/abhisek/tutorbot/internal/quiz"
	"github.com/abhisek/tutorbot/internal/session"
)

// theoryChunkLimit caps one outgoing message. Telegram rejects texts over
// 4096 characters; generated theory is split well under that.
const theoryChunkLimit = 4000

const tutorSystemPrompt = "Ты опытный школьный репетитор. Объясняй понятно, " +
	"дружелюбно и по делу, на русском языке."

// topicPrompt asks for theory and a test in the exact shape the parser
// understands: a --- separator, ;;Вопрос chunk openers, numbered options
// and a closing answer line.
func topicPrompt(topic string) string {
	return fmt.Sprintf(
		"Подготовь учебный материал по теме «%s».\n"+
			"Сначала напиши теорию: не менее 5 абзацев.\n"+
			"Затем строку из трёх дефисов: ---\n"+
			"После неё заголовок «Вопросы по теме» и 5 вопросов для самопроверки.\n"+
			"Каждый вопрос начинай со строки ;;Вопрос, затем текст вопроса, "+
			"затем ровно 4 варианта ответа, пронумерованных 1. 2. 3. 4., "+
			"и в конце строку «Ответ N», где N — номер правильного варианта.",
		topic,
	)
}

func (c *Controller) handleTopicRequest(ctx context.Context, st *session.State, userID, topic string) {
	c.send(userID, "⏳ Готовлю материалы, это может занять минуту...")

	resp, err := c.provider.Complete(llm.WithPurpose(ctx, "topic-lesson"), llm.Request{
		System:      tutorSystemPrompt,
		Prompt:      topicPrompt(topic),
		MaxTokens:   4096,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("bot: topic generation for %s: %v", userID, err)
		c.toMainMenu(st, userID, msgProcessError)
		return
	}

	theory, questions, err := quiz.Parse(resp.Text)
	if err != nil {
		log.Printf("bot: topic parse for %s: %v", userID, err)
		c.toMainMenu(st, userID, msgProcessError)
		return
	}

	qs := quiz.NewSession(userID, quiz.KindTopic)
	qs.Theory = theory
	qs.Questions = questions
	st.Quiz = qs
	st.Stage = session.StageMaterialsShown

	for _, chunk := range chunkText(theory, theoryChunkLimit) {
		c.send(userID, chunk)
	}

	_, err = c.delivery.SendText(userID, "Материал готов. Проверим знания?", &SendOptions{
		InlineRows: [][]InlineButton{
			{
				{Label: "✅ Пройти тест", Data: cbQuizStart},
				{Label: "❌ Отмена", Data: cbQuizCancel},
			},
		},
	})
	if err != nil {
		log.Printf("bot: offer quiz to %s: %v", userID, err)
	}
}

// chunkText splits s into rune-safe pieces of at most limit characters.
func chunkText(s string, limit int) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(chunks, string(runes))
}

func (c *Controller) handleFreeformQuery(ctx context.Context, st *session.State, userID, query string) {
	c.send(userID, "⏳ Секунду, думаю над ответом...")

	resp, err := c.provider.Complete(llm.WithPurpose(ctx, "freeform-query"), llm.Request{
		System:      tutorSystemPrompt,
		Prompt:      query,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("bot: freeform query for %s: %v", userID, err)
		c.toMainMenu(st, userID, msgProcessError)
		return
	}

	for _, chunk := range chunkText(resp.Text, theoryChunkLimit) {
		c.send(userID, chunk)
	}
	c.toMainMenu(st, userID, "Надеюсь, это помогло!")
}
