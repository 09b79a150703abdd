package bot

import (
	"fmt"
	"log"

	"github.com/abhisek/tutorbot/internal/session"
)

func (c *Controller) sendFAQMenu(userID string) {
	if len(c.cfg.FAQ) == 0 {
		c.send(userID, "Список вопросов пока пуст.")
		return
	}

	var rows [][]InlineButton
	for i, entry := range c.cfg.FAQ {
		rows = append(rows, []InlineButton{{
			Label: entry.Question,
			Data:  fmt.Sprintf("%s_%d", cbFAQ, i),
		}})
	}

	_, err := c.delivery.SendText(userID, "❓ Частые вопросы:", &SendOptions{InlineRows: rows})
	if err != nil {
		log.Printf("bot: send FAQ menu to %s: %v", userID, err)
	}
}

func (c *Controller) handleFAQChoice(ev Event) {
	index, ok := parseIndexPayload(ev.Data, cbFAQ)
	if !ok || index >= len(c.cfg.FAQ) {
		log.Printf("bot: bad FAQ payload %q from %s", ev.Data, ev.UserID)
		return
	}
	entry := c.cfg.FAQ[index]
	c.send(ev.UserID, entry.Question+"\n\n"+entry.Answer)
}

func (c *Controller) sendSchedule(userID string) {
	if c.cfg.SchedulePhoto == "" {
		c.send(userID, "Расписание пока не загружено.")
		return
	}
	if err := c.delivery.SendFile(userID, c.cfg.SchedulePhoto, FilePhoto, "📅 Расписание занятий"); err != nil {
		log.Printf("bot: send schedule to %s: %v", userID, err)
		c.send(userID, "⚠️ Не удалось отправить расписание.")
	}
}

func (c *Controller) sendHomework(userID string) {
	if c.cfg.HomeworkFile == "" {
		c.send(userID, "Домашнее задание пока не загружено.")
		return
	}
	if err := c.delivery.SendFile(userID, c.cfg.HomeworkFile, FileDocument, "📎 Домашнее задание"); err != nil {
		log.Printf("bot: send homework to %s: %v", userID, err)
		c.send(userID, "⚠️ Не удалось отправить домашнее задание.")
	}
}

func (c *Controller) sendStoredPhoto(st *session.State, userID string) {
	if st.LastPhotoID == "" {
		c.send(userID, "Вы ещё не отправляли фото.")
		return
	}
	if err := c.delivery.SendStoredPhoto(userID, st.LastPhotoID); err != nil {
		log.Printf("bot: resend photo to %s: %v", userID, err)
		c.send(userID, "⚠️ Не удалось отправить фото.")
	}
}
