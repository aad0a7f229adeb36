package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/hadithapi"
)

var ErrHadithBookNotFound = errors.New("hadith book not found")

const (
	defaultHadithPageSize = 10
	maxHadithPageSize     = 50
)

// HadithPage is a slice of a collection, optionally filtered by a query.
type HadithPage struct {
	Book    entities.HadithBook `json:"book"`
	Hadiths []entities.Hadith   `json:"hadiths"`
	Total   int                 `json:"total"` // matches before paging
	Offset  int                 `json:"offset"`
}

// HadithService serves the six collections. Editions are downloaded once per
// process and kept in memory; each is a single static file.
type HadithService struct {
	provider HadithProvider
	matcher  *SearchMatcher

	mu    sync.RWMutex
	books map[string][]entities.Hadith
	group singleflight.Group
}

func NewHadithService(provider HadithProvider, matcher *SearchMatcher) *HadithService {
	return &HadithService{
		provider: provider,
		matcher:  matcher,
		books:    make(map[string][]entities.Hadith),
	}
}

func (s *HadithService) Books() []entities.HadithBook {
	return entities.HadithBooks
}

// SearchBooks filters collections by their Bengali or Arabic name or slug.
func (s *HadithService) SearchBooks(query string) []entities.HadithBook {
	var out []entities.HadithBook
	for _, b := range entities.HadithBooks {
		if s.matcher.Match(query, b.Name, b.NameArabic, b.Slug) {
			out = append(out, b)
		}
	}
	return out
}

// Page returns hadiths of a collection whose text matches query, limit at a time.
func (s *HadithService) Page(ctx context.Context, slug, query string, offset, limit int) (*HadithPage, error) {
	book, ok := entities.LookupHadithBook(slug)
	if !ok {
		return nil, ErrHadithBookNotFound
	}

	hadiths, err := s.load(ctx, slug)
	if err != nil {
		return nil, err
	}

	if query != "" {
		filtered := make([]entities.Hadith, 0)
		for _, h := range hadiths {
			if s.matcher.Match(query, h.Text, h.ArabicText) {
				filtered = append(filtered, h)
			}
		}
		hadiths = filtered
	}

	if limit <= 0 {
		limit = defaultHadithPageSize
	}
	limit = min(limit, maxHadithPageSize)
	offset = max(offset, 0)

	page := &HadithPage{Book: book, Total: len(hadiths), Offset: offset}
	if offset < len(hadiths) {
		page.Hadiths = hadiths[offset:min(offset+limit, len(hadiths))]
	}
	return page, nil
}

func (s *HadithService) load(ctx context.Context, slug string) ([]entities.Hadith, error) {
	s.mu.RLock()
	cached, ok := s.books[slug]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := s.group.Do(slug, func() (any, error) {
		s.mu.RLock()
		cached, ok := s.books[slug]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		hadiths, err := s.fetch(ctx, slug)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.books[slug] = hadiths
		s.mu.Unlock()
		return hadiths, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrProviderFailure, err)
	}
	return v.([]entities.Hadith), nil
}

// fetch downloads the Bengali and Arabic editions concurrently and pairs them by position.
func (s *HadithService) fetch(ctx context.Context, slug string) ([]entities.Hadith, error) {
	var bengali, arabic []hadithapi.Narration

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bengali, err = s.provider.Hadiths(gctx, hadithapi.Edition("ben", slug))
		return err
	})
	g.Go(func() error {
		var err error
		arabic, err = s.provider.Hadiths(gctx, hadithapi.Edition("ara", slug))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]entities.Hadith, 0, len(bengali))
	for i, n := range bengali {
		h := entities.Hadith{Number: int(n.Number), Text: n.Text}
		if i < len(arabic) {
			h.ArabicText = arabic[i].Text
		}
		out = append(out, h)
	}
	return out, nil
}
