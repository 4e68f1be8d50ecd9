package bot

import (
	"context"
	"sync"
)

type TestMessageSender struct {
	Sent      []Message
	SendError error
	// FailFor makes SendMessage fail only for the listed chat IDs.
	FailFor map[ChatID]error
	lock    sync.Mutex
}

func NewTestMessageSender() *TestMessageSender {
	return &TestMessageSender{FailFor: make(map[ChatID]error)}
}

func (s *TestMessageSender) SendMessage(ctx context.Context, m Message) error {
	if s.SendError != nil {
		return s.SendError
	}
	if err, ok := s.FailFor[m.ChatID]; ok {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, m)
	return nil
}
