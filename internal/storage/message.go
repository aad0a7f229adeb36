package storage

import (
	"sync"
	"time"
)

type SentMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// MessageStorage remembers the last message of one kind sent to each chat,
// so it can be edited or removed when a newer one replaces it.
type MessageStorage struct {
	mu       sync.RWMutex
	messages map[int64]SentMessage
}

func NewMessageStorage() *MessageStorage {
	return &MessageStorage{
		messages: make(map[int64]SentMessage),
	}
}

func (s *MessageStorage) Get(chatID int64) (SentMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[chatID]
	return msg, ok
}

func (s *MessageStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, chatID)
}

func (s *MessageStorage) UpsertAndGetPrev(chatID int64, messageID int) (prev SentMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = SentMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	}

	return prev, hadPrev
}
