// Package bot contains the conversation controller: a per-user finite-state
// machine that routes inbound chat events to the registration, lesson, quiz
// and math-game flows, plus the Telegram implementation of the transport.
package bot

import "context"

// FileKind tells the transport how to deliver a lesson asset.
type FileKind int

const (
	FileDocument FileKind = iota
	FilePhoto
	FileVideo
	FileAudio
)

// InlineButton is one callback button attached to a message.
type InlineButton struct {
	Label string
	Data  string
}

// ReplyButton is one button of the persistent reply keyboard.
// RequestContact asks the client to share the user's phone number.
type ReplyButton struct {
	Label          string
	RequestContact bool
}

// SendOptions carries the optional keyboard attachments for SendText.
type SendOptions struct {
	InlineRows [][]InlineButton
	ReplyRows  [][]ReplyButton

	// RemoveReplyKeyboard drops the persistent keyboard from the client.
	RemoveReplyKeyboard bool
}

// EventKind tags inbound events.
type EventKind int

const (
	EventText EventKind = iota
	EventContact
	EventCallback
	EventPhoto
)

// Event is one inbound interaction, tagged with the sender.
type Event struct {
	Kind   EventKind
	UserID string

	// Text is set for EventText.
	Text string

	// Phone is set for EventContact.
	Phone string

	// Data is the callback payload for EventCallback.
	Data string

	// MessageID references the message the callback was attached to.
	MessageID int

	// PhotoID is the transport's file reference for EventPhoto.
	PhotoID string
}

// Delivery abstracts the chat transport. The controller never talks to
// Telegram directly, which keeps the flows testable with a fake.
type Delivery interface {
	// SendText delivers a message and returns its message reference.
	SendText(userID, text string, opts *SendOptions) (int, error)

	// EditText replaces the text of an already delivered message.
	EditText(userID string, messageID int, text string) error

	// SendFile delivers a local file as the given kind.
	SendFile(userID, path string, kind FileKind, caption string) error

	// SendStoredPhoto re-sends a photo previously received from a user,
	// referenced by the transport's file ID.
	SendStoredPhoto(userID, fileID string) error

	// Events returns the inbound event stream. The channel closes when
	// ctx is cancelled or the transport shuts down.
	Events(ctx context.Context) <-chan Event
}
