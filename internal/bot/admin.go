package bot

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/abhisek/tutorbot/internal/session"
)

func (c *Controller) adminListUsers(userID string) {
	if !c.cfg.IsAdmin(userID) {
		c.send(userID, msgUseButtons)
		return
	}

	users, err := c.store.Load()
	if err != nil {
		log.Printf("bot: admin list users: %v", err)
		c.send(userID, msgGenericError)
		return
	}
	if len(users) == 0 {
		c.send(userID, "База пользователей пуста.")
		return
	}

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	fmt.Fprintf(&b, "👥 Пользователей: %d\n\n", len(users))
	for _, id := range ids {
		p := users[id]
		fmt.Fprintf(&b, "%s · %s · урок %d · математика %d (%d/5) · тем пройдено %d\n",
			id, p.Phone, p.LessonLevel, p.MathLevel, p.MathScore, len(p.LearningHistory))
	}

	for _, chunk := range chunkText(b.String(), theoryChunkLimit) {
		c.send(userID, chunk)
	}
}

// adminOfferReset asks for a confirming tap before wiping the store.
func (c *Controller) adminOfferReset(userID string) {
	if !c.cfg.IsAdmin(userID) {
		c.send(userID, msgUseButtons)
		return
	}

	_, err := c.delivery.SendText(userID,
		"⚠️ Удалить ВСЕ профили пользователей? Действие необратимо.",
		&SendOptions{
			InlineRows: [][]InlineButton{
				{
					{Label: "🗑 Да, удалить", Data: cbResetYes},
					{Label: "Отмена", Data: cbResetNo},
				},
			},
		})
	if err != nil {
		log.Printf("bot: offer reset to %s: %v", userID, err)
	}
}

func (c *Controller) adminConfirmReset(st *session.State, userID string) {
	if !c.cfg.IsAdmin(userID) {
		log.Printf("bot: reset confirmation from non-admin %s", userID)
		return
	}

	if err := c.store.Reset(); err != nil {
		log.Printf("bot: reset store: %v", err)
		c.send(userID, msgGenericError)
		return
	}
	log.Printf("bot: store reset by admin %s", userID)
	c.toMainMenu(st, userID, "🗑 База пользователей очищена.")
}
