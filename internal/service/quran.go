package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/infra/postgres/repository"
)

var ErrSurahNotFound = errors.New("surah not found")

type QuranService struct {
	provider QuranProvider
	cache    SurahCache
	reading  ReadingRepository
	matcher  *SearchMatcher
	logger   *zap.Logger
}

func NewQuranService(
	provider QuranProvider,
	cache SurahCache,
	reading ReadingRepository,
	matcher *SearchMatcher,
	logger *zap.Logger,
) *QuranService {
	return &QuranService{
		provider: provider,
		cache:    cache,
		reading:  reading,
		matcher:  matcher,
		logger:   logger,
	}
}

// Surahs returns the chapter catalogue, from the cache when possible.
func (s *QuranService) Surahs(ctx context.Context) ([]entities.Surah, error) {
	cached, found, err := s.cache.Surahs(ctx)
	if err != nil {
		s.logger.Warn("surah cache read failed", zap.Error(err))
	}
	if found && len(cached) > 0 {
		return cached, nil
	}

	surahs, err := s.provider.Surahs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrProviderFailure, err)
	}

	if err := s.cache.StoreSurahs(ctx, surahs); err != nil {
		s.logger.Warn("surah cache write failed", zap.Error(err))
	}
	return surahs, nil
}

// Search filters the catalogue by chapter number, transliterated, translated or Arabic name.
func (s *QuranService) Search(ctx context.Context, query string) ([]entities.Surah, error) {
	surahs, err := s.Surahs(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return surahs, nil
	}

	if n, err := strconv.Atoi(query); err == nil {
		for _, sr := range surahs {
			if sr.Number == n {
				return []entities.Surah{sr}, nil
			}
		}
		return nil, nil
	}

	var out []entities.Surah
	for _, sr := range surahs {
		if s.matcher.Match(query, sr.EnglishName, sr.EnglishNameTranslation, sr.Name) {
			out = append(out, sr)
		}
	}
	return out, nil
}

// Surah returns one chapter of the catalogue.
func (s *QuranService) Surah(ctx context.Context, chapter int) (entities.Surah, error) {
	surahs, err := s.Surahs(ctx)
	if err != nil {
		return entities.Surah{}, err
	}
	for _, sr := range surahs {
		if sr.Number == chapter {
			return sr, nil
		}
	}
	return entities.Surah{}, ErrSurahNotFound
}

// VersePosition resolves a verse to a playback position using only the catalogue.
// The global verse id is the verse number plus the lengths of all earlier chapters.
func (s *QuranService) VersePosition(ctx context.Context, chapter, verse int) (entities.PlaybackPosition, error) {
	if chapter < entities.FirstSurah || chapter > entities.LastSurah {
		return entities.PlaybackPosition{}, ErrSurahNotFound
	}

	surahs, err := s.Surahs(ctx)
	if err != nil {
		return entities.PlaybackPosition{}, err
	}

	var (
		total, offset, earlier int
		found                  bool
	)
	for _, sr := range surahs {
		switch {
		case sr.Number < chapter:
			offset += sr.NumberOfAyahs
			earlier++
		case sr.Number == chapter:
			total = sr.NumberOfAyahs
			found = true
		}
	}
	if !found {
		return entities.PlaybackPosition{}, ErrSurahNotFound
	}
	if earlier != chapter-1 {
		return entities.PlaybackPosition{}, fmt.Errorf("%w: incomplete surah catalogue", entities.ErrProviderFailure)
	}

	pos := entities.AyahPosition(chapter, verse, total, offset+verse)
	if err := pos.Validate(); err != nil {
		return entities.PlaybackPosition{}, err
	}
	return pos, nil
}

// Read opens a chapter: Arabic text and translation are fetched concurrently and
// paired by verse. For a user (userID != 0) the chapter becomes the last read one.
func (s *QuranService) Read(ctx context.Context, userID int64, chapter int, lang entities.Language) (*entities.SurahReading, error) {
	if chapter < entities.FirstSurah || chapter > entities.LastSurah {
		return nil, ErrSurahNotFound
	}

	surah, err := s.Surah(ctx, chapter)
	if err != nil {
		return nil, err
	}

	var arabic, translation []entities.Ayah
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		arabic, err = s.provider.Ayahs(gctx, chapter, entities.EditionUthmani)
		return err
	})
	g.Go(func() error {
		var err error
		translation, err = s.provider.Ayahs(gctx, chapter, entities.TranslationEdition(lang))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrProviderFailure, err)
	}

	reading := &entities.SurahReading{Surah: surah, Verses: make([]entities.ReadingVerse, len(arabic))}
	for i, a := range arabic {
		reading.Verses[i] = entities.ReadingVerse{Ayah: a}
		if i < len(translation) {
			reading.Verses[i].Translation = translation[i].Text
		}
	}

	if userID != 0 {
		last := entities.LastRead{Number: surah.Number, Name: surah.EnglishName}
		if err := s.reading.SaveLastRead(ctx, userID, last); err != nil {
			s.logger.Warn("save last read failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return reading, nil
}

// LastRead returns nil when the user has not opened any chapter yet.
func (s *QuranService) LastRead(ctx context.Context, userID int64) (*entities.LastRead, error) {
	last, err := s.reading.GetLastRead(ctx, userID)
	if errors.Is(err, repository.ErrLastReadNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last read: %w", err)
	}
	return last, nil
}
