package bot

import "context"

// ChatID is a Telegram chat identifier linked to a user account.
type ChatID int64

type Message struct {
	ChatID ChatID
	Text   string
}

type MessageSender interface {
	SendMessage(ctx context.Context, m Message) error
}
