package storage

import "sync"

// PromptStorage remembers, per chat, which free-text answer the bot is waiting for.
type PromptStorage struct {
	mu      sync.Mutex
	prompts map[int64]string
}

func NewPromptStorage() *PromptStorage {
	return &PromptStorage{
		prompts: make(map[int64]string),
	}
}

func (s *PromptStorage) Set(chatID int64, prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts[chatID] = prompt
}

// Take returns the pending prompt and forgets it.
func (s *PromptStorage) Take(chatID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[chatID]
	delete(s.prompts, chatID)
	return p, ok
}
