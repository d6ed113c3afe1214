package bot

import (
	"strings"

	"github.com/johann95ko/covid19-telegram-bot/internal/telegram"
)

// Inbound is the immutable per-request context extracted from a webhook
// update. It is created once per request and threaded explicitly through
// matching and composition; nothing mutates it afterwards.
type Inbound struct {
	ChatID    int64
	FirstName string

	// Text is the message text, lowercased for matching.
	Text string
}

// ParseUpdate extracts an Inbound from a Telegram update. The second
// return is false for updates that carry no message text (stickers,
// photos, edits, member events); those are no-ops, not errors.
func ParseUpdate(u *telegram.Update) (Inbound, bool) {
	if u == nil || u.Message == nil || u.Message.Text == "" {
		return Inbound{}, false
	}

	msg := u.Message

	firstName := msg.Chat.FirstName
	if msg.From != nil && msg.From.FirstName != "" {
		firstName = msg.From.FirstName
	}
	if firstName == "" {
		firstName = "there"
	}

	return Inbound{
		ChatID:    msg.Chat.ID,
		FirstName: firstName,
		Text:      strings.ToLower(msg.Text),
	}, true
}
