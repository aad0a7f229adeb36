package service

import (
	"math/rand/v2"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

type DuaService struct {
	duas    []entities.Dua
	matcher *SearchMatcher
}

func NewDuaService(matcher *SearchMatcher) *DuaService {
	return &DuaService{duas: entities.Duas, matcher: matcher}
}

func (s *DuaService) List() []entities.Dua {
	return s.duas
}

func (s *DuaService) Random() entities.Dua {
	return s.duas[rand.IntN(len(s.duas))]
}

// Search matches title, category and translation.
func (s *DuaService) Search(query string) []entities.Dua {
	var out []entities.Dua
	for _, d := range s.duas {
		if s.matcher.Match(query, d.Title, d.Category, d.Translation, d.Transliteration) {
			out = append(out, d)
		}
	}
	return out
}

func (s *DuaService) Get(id string) (entities.Dua, bool) {
	for _, d := range s.duas {
		if d.ID == id {
			return d, true
		}
	}
	return entities.Dua{}, false
}
