package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram implements Delivery over the Bot API long-polling transport.
// User ids are the decimal chat ids of private conversations.
type Telegram struct {
	api *tgbotapi.BotAPI
}

// NewTelegram authorises against the Bot API with the given token.
func NewTelegram(token string) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorise bot: %w", err)
	}
	log.Printf("bot: authorised as @%s", api.Self.UserName)
	return &Telegram{api: api}, nil
}

func chatID(userID string) (int64, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad user id %q: %w", userID, err)
	}
	return id, nil
}

func (t *Telegram) SendText(userID, text string, opts *SendOptions) (int, error) {
	id, err := chatID(userID)
	if err != nil {
		return 0, err
	}

	msg := tgbotapi.NewMessage(id, text)
	if opts != nil {
		switch {
		case len(opts.InlineRows) > 0:
			msg.ReplyMarkup = inlineMarkup(opts.InlineRows)
		case len(opts.ReplyRows) > 0:
			msg.ReplyMarkup = replyMarkup(opts.ReplyRows)
		case opts.RemoveReplyKeyboard:
			msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		}
	}

	sent, err := t.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return sent.MessageID, nil
}

func inlineMarkup(rows [][]InlineButton) tgbotapi.InlineKeyboardMarkup {
	out := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		out = append(out, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(out...)
}

func replyMarkup(rows [][]ReplyButton) tgbotapi.ReplyKeyboardMarkup {
	out := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, b := range row {
			btn := tgbotapi.NewKeyboardButton(b.Label)
			btn.RequestContact = b.RequestContact
			buttons = append(buttons, btn)
		}
		out = append(out, buttons)
	}
	kb := tgbotapi.NewReplyKeyboard(out...)
	kb.ResizeKeyboard = true
	return kb
}

func (t *Telegram) EditText(userID string, messageID int, text string) error {
	id, err := chatID(userID)
	if err != nil {
		return err
	}
	edit := tgbotapi.NewEditMessageText(id, messageID, text)
	if _, err := t.api.Send(edit); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

func (t *Telegram) SendFile(userID, path string, kind FileKind, caption string) error {
	id, err := chatID(userID)
	if err != nil {
		return err
	}

	file := tgbotapi.FilePath(path)
	var c tgbotapi.Chattable
	switch kind {
	case FilePhoto:
		msg := tgbotapi.NewPhoto(id, file)
		msg.Caption = caption
		c = msg
	case FileVideo:
		msg := tgbotapi.NewVideo(id, file)
		msg.Caption = caption
		c = msg
	case FileAudio:
		msg := tgbotapi.NewAudio(id, file)
		msg.Caption = caption
		c = msg
	default:
		msg := tgbotapi.NewDocument(id, file)
		msg.Caption = caption
		c = msg
	}

	if _, err := t.api.Send(c); err != nil {
		return fmt.Errorf("send file %s: %w", path, err)
	}
	return nil
}

func (t *Telegram) SendStoredPhoto(userID, fileID string) error {
	id, err := chatID(userID)
	if err != nil {
		return err
	}
	msg := tgbotapi.NewPhoto(id, tgbotapi.FileID(fileID))
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send stored photo: %w", err)
	}
	return nil
}

// Events starts long polling and converts Bot API updates into the
// controller's event shape. Callback queries are acknowledged here so
// clients stop showing a spinner regardless of what the handler does.
func (t *Telegram) Events(ctx context.Context) <-chan Event {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.api.GetUpdatesChan(u)

	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				t.api.StopReceivingUpdates()
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				ev, ok := t.convertUpdate(update)
				if !ok {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					t.api.StopReceivingUpdates()
					return
				}
			}
		}
	}()
	return out
}

func (t *Telegram) convertUpdate(update tgbotapi.Update) (Event, bool) {
	if cb := update.CallbackQuery; cb != nil {
		if _, err := t.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			log.Printf("bot: answer callback: %v", err)
		}
		if cb.Message == nil {
			return Event{}, false
		}
		return Event{
			Kind:      EventCallback,
			UserID:    strconv.FormatInt(cb.Message.Chat.ID, 10),
			Data:      cb.Data,
			MessageID: cb.Message.MessageID,
		}, true
	}

	msg := update.Message
	if msg == nil {
		return Event{}, false
	}
	userID := strconv.FormatInt(msg.Chat.ID, 10)

	if msg.Contact != nil {
		return Event{
			Kind:   EventContact,
			UserID: userID,
			Phone:  msg.Contact.PhoneNumber,
		}, true
	}
	if len(msg.Photo) > 0 {
		// The last size is the largest rendition.
		return Event{
			Kind:    EventPhoto,
			UserID:  userID,
			PhotoID: msg.Photo[len(msg.Photo)-1].FileID,
		}, true
	}
	if msg.Text != "" {
		return Event{
			Kind:   EventText,
			UserID: userID,
			Text:   msg.Text,
		}, true
	}
	return Event{}, false
}
