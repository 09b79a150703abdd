package bot

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abhisek/tutorbot/internal/quiz"
	"github.com/abhisek/tutorbot/internal/session"
	"github.com/abhisek/tutorbot/internal/store"
)

// unlockedLessons returns the prefix of the catalog the profile has
// opened: lesson i is available once lesson_level reaches i.
func (c *Controller) unlockedLessons(p *store.Profile) int {
	n := p.LessonLevel + 1
	if n > len(c.cfg.Lessons) {
		n = len(c.cfg.Lessons)
	}
	return n
}

func (c *Controller) offerLessons(st *session.State, userID string) {
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
	if len(c.cfg.Lessons) == 0 {
		c.send(userID, "Каталог уроков пока пуст.")
		return
	}

	var rows [][]InlineButton
	for i := range c.unlockedLessons(p) {
		rows = append(rows, []InlineButton{{
			Label: c.cfg.Lessons[i].Name,
			Data:  fmt.Sprintf("%s_%d", cbLesson, i),
		}})
	}

	st.Reset(session.StageAwaitingLessonChoice)
	_, err = c.delivery.SendText(userID, "📖 Выберите урок:", &SendOptions{InlineRows: rows})
	if err != nil {
		log.Printf("bot: offer lessons to %s: %v", userID, err)
	}
}

func (c *Controller) handleLessonChoice(st *session.State, ev Event) {
	if st.Stage != session.StageAwaitingLessonChoice {
		log.Printf("bot: stale lesson choice from %s", ev.UserID)
		return
	}

	index, ok := parseIndexPayload(ev.Data, cbLesson)
	if !ok || index >= len(c.cfg.Lessons) {
		log.Printf("bot: bad lesson payload %q from %s", ev.Data, ev.UserID)
		return
	}

	lesson := c.cfg.Lessons[index]
	c.send(ev.UserID, "📦 Отправляю материалы урока «"+lesson.Name+"»...")

	failed := c.sendLessonAssets(ev.UserID, lesson.Dir)
	if failed > 0 {
		c.send(ev.UserID, "⚠️ Часть материалов отправить не удалось.")
	}
	c.toMainMenu(st, ev.UserID, "Материалы урока отправлены.")
}

// sendLessonAssets relays every file in dir, picking the transport kind
// from the extension. Failures are logged and counted; remaining files
// still go out.
func (c *Controller) sendLessonAssets(userID, dir string) (failed int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("bot: read lesson dir %s: %v", dir, err)
		return 1
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		if strings.EqualFold(filepath.Ext(path), ".txt") {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("bot: read lesson text %s: %v", path, err)
				failed++
				continue
			}
			for _, chunk := range chunkText(string(data), theoryChunkLimit) {
				c.send(userID, chunk)
			}
			continue
		}

		if err := c.delivery.SendFile(userID, path, assetKind(path), ""); err != nil {
			log.Printf("bot: send lesson asset %s: %v", path, err)
			failed++
		}
	}
	return failed
}

func assetKind(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return FilePhoto
	case ".mp4", ".mov", ".avi":
		return FileVideo
	case ".mp3", ".ogg", ".wav", ".m4a":
		return FileAudio
	default:
		return FileDocument
	}
}

func (c *Controller) offerModuleTests(st *session.State, userID string) {
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

	var rows [][]InlineButton
	for i := range c.unlockedLessons(p) {
		if c.cfg.Lessons[i].TestFile == "" {
			continue
		}
		rows = append(rows, []InlineButton{{
			Label: fmt.Sprintf("Тест %d. %s", i+1, c.cfg.Lessons[i].Name),
			Data:  fmt.Sprintf("%s_%d", cbModuleTest, i),
		}})
	}
	if len(rows) == 0 {
		c.send(userID, "Доступных тестов пока нет.")
		return
	}

	st.Reset(session.StageAwaitingTestChoice)
	_, err = c.delivery.SendText(userID, "📝 Выберите тест:", &SendOptions{InlineRows: rows})
	if err != nil {
		log.Printf("bot: offer tests to %s: %v", userID, err)
	}
}

func (c *Controller) handleModuleTestChoice(st *session.State, ev Event) {
	if st.Stage != session.StageAwaitingTestChoice {
		log.Printf("bot: stale test choice from %s", ev.UserID)
		return
	}

	index, ok := parseIndexPayload(ev.Data, cbModuleTest)
	if !ok || index >= len(c.cfg.Lessons) {
		log.Printf("bot: bad test payload %q from %s", ev.Data, ev.UserID)
		return
	}

	questions, err := quiz.LoadBank(c.cfg.Lessons[index].TestFile)
	if err != nil {
		log.Printf("bot: load test bank %s: %v", c.cfg.Lessons[index].TestFile, err)
		c.toMainMenu(st, ev.UserID, msgProcessError)
		return
	}

	qs := quiz.NewSession(ev.UserID, quiz.KindModule)
	qs.Questions = questions
	qs.Module = index + 1
	st.Quiz = qs
	st.Stage = session.StageTakingModuleTest

	c.send(ev.UserID, fmt.Sprintf("📝 Тест по модулю %d. Вопросов: %d. Для сдачи нужно %d%%.",
		qs.Module, qs.Total(), store.ModulePassScore))
	c.deliverQuestion(st, ev.UserID)
}

// parseIndexPayload decodes <prefix>_<index>.
func parseIndexPayload(data, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(data, prefix+"_")
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(rest)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
