package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

var testNow = time.Date(2026, 10, 18, 7, 0, 0, 0, time.UTC) // 13:00 in Dhaka

type fakePrayer struct {
	err       error
	lastCoord entities.GeoCoordinate
}

func (f *fakePrayer) Times(_ context.Context, coord entities.GeoCoordinate, method int, _ time.Time) (*service.PrayerTimes, error) {
	f.lastCoord = coord
	if f.err != nil {
		return nil, f.err
	}

	clocks := map[entities.PrayerLabel]entities.Clock{}
	for label, hhmm := range map[entities.PrayerLabel]string{
		entities.Fajr: "04:30", entities.Sunrise: "05:50", entities.Dhuhr: "12:00",
		entities.Asr: "15:30", entities.Maghrib: "18:00", entities.Isha: "19:30",
	} {
		c, err := entities.ParseClock(hhmm)
		if err != nil {
			return nil, err
		}
		clocks[label] = c
	}
	s, err := entities.NewDailySchedule("2026-10-18", clocks)
	if err != nil {
		return nil, err
	}
	s.Timezone = "Asia/Dhaka"

	return &service.PrayerTimes{Schedule: s, Coordinate: coord, City: coord.String(), Method: method}, nil
}

type fakeQuran struct{}

func (fakeQuran) Search(_ context.Context, query string) ([]entities.Surah, error) {
	if query == "none" {
		return nil, nil
	}
	return []entities.Surah{{Number: 1, EnglishName: "Al-Faatiha", NumberOfAyahs: 7}}, nil
}

func (fakeQuran) Read(_ context.Context, _ int64, chapter int, _ entities.Language) (*entities.SurahReading, error) {
	if chapter != 1 {
		return nil, service.ErrSurahNotFound
	}
	return &entities.SurahReading{Surah: entities.Surah{Number: 1, EnglishName: "Al-Faatiha"}}, nil
}

type fakeHadith struct{}

func (fakeHadith) SearchBooks(string) []entities.HadithBook { return entities.HadithBooks }

func (fakeHadith) Page(_ context.Context, slug, _ string, offset, _ int) (*service.HadithPage, error) {
	book, ok := entities.LookupHadithBook(slug)
	if !ok {
		return nil, service.ErrHadithBookNotFound
	}
	return &service.HadithPage{Book: book, Offset: offset}, nil
}

type testAPI struct {
	router *gin.Engine
	prayer *fakePrayer
}

func newTestAPI(t *testing.T, opts ...player.RegistryOption) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prayer := &fakePrayer{}
	h := &Handler{
		logger: zap.NewNop(),
		now:    func() time.Time { return testNow },
		newID:  newSessionID,
		services: Services{
			Prayer: prayer,
			Qibla:  service.NewQiblaService(nil),
			Quran:  fakeQuran{},
			Hadith: fakeHadith{},
			Dua:    service.NewDuaService(service.NewSearchMatcher()),
			Player: player.NewRegistry(player.DefaultLocator(), func(string) player.Media {
				return player.PassiveMedia{}
			}, opts...),
		},
	}

	return &testAPI{router: h.router(nil), prayer: prayer}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestPrayerTimes_DefaultLocation(t *testing.T) {
	api := newTestAPI(t)

	w, body := api.do(t, http.MethodGet, "/api/v1/prayer/times", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, entities.Dhaka, api.prayer.lastCoord)
	assert.Equal(t, entities.DefaultCity, body["city"])
	assert.Contains(t, body["notice"], noticeDefaultLocation)
	assert.Len(t, body["points"], 6)
}

func TestPrayerTimes_BadQuery(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name  string
		query string
	}{
		{"lat not a number", "?lat=x&lng=90"},
		{"lng missing", "?lat=23.8"},
		{"lat out of range", "?lat=91&lng=90"},
		{"unknown method", "?lat=23.8&lng=90.4&method=99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := api.do(t, http.MethodGet, "/api/v1/prayer/times"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestPrayerTimes_ProviderFailure(t *testing.T) {
	api := newTestAPI(t)
	api.prayer.err = fmt.Errorf("%w: timeout", entities.ErrProviderFailure)

	w, body := api.do(t, http.MethodGet, "/api/v1/prayer/times?lat=23.8&lng=90.4", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestPrayerWindow(t *testing.T) {
	api := newTestAPI(t)

	w, body := api.do(t, http.MethodGet, "/api/v1/prayer/window?lat=23.8103&lng=90.4125", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	prev := body["prev"].(map[string]any)
	next := body["next"].(map[string]any)
	assert.Equal(t, "Dhuhr", prev["label"])
	assert.Equal(t, "Asr", next["label"])
	assert.Equal(t, float64(210), body["span_minutes"])
	assert.Equal(t, float64(60), body["elapsed_minutes"])
	assert.Equal(t, float64(150), body["remaining_minutes"])
}

func TestQibla(t *testing.T) {
	api := newTestAPI(t)

	w, body := api.do(t, http.MethodGet, "/api/v1/qibla?lat=23.8103&lng=90.4125&heading=270", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.InDelta(t, 277.5, body["bearing"], 1)
	assert.InDelta(t, 7.5, body["relative"], 1)
	assert.Equal(t, false, body["approximate"])
	assert.Nil(t, body["notice"])

	w, body = api.do(t, http.MethodGet, "/api/v1/qibla", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 291.0, body["bearing"])
	assert.Equal(t, true, body["approximate"])
	assert.Contains(t, body["notice"], noticeApproxQibla)
	assert.Contains(t, body["notice"], noticeNoHeading)
}

func TestNonFiniteInputRejected(t *testing.T) {
	api := newTestAPI(t)

	paths := []string{
		"/api/v1/qibla?lat=NaN&lng=10",
		"/api/v1/qibla?lat=23&lng=90&heading=NaN",
		"/api/v1/qibla?lat=23&lng=90&heading=-Inf",
		"/api/v1/prayer/times?lat=NaN&lng=NaN",
		"/api/v1/prayer/window?lat=23&lng=Inf",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w, body := api.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
	assert.Equal(t, entities.GeoCoordinate{}, api.prayer.lastCoord)
}

func TestQuranRoutes(t *testing.T) {
	api := newTestAPI(t)

	w, _ := api.do(t, http.MethodGet, "/api/v1/quran/surahs/1?lang=en", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = api.do(t, http.MethodGet, "/api/v1/quran/surahs/115", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = api.do(t, http.MethodGet, "/api/v1/quran/surahs/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = api.do(t, http.MethodGet, "/api/v1/quran/surahs/1?lang=fr", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = api.do(t, http.MethodGet, "/api/v1/quran/surahs?q=none", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHadithRoutes(t *testing.T) {
	api := newTestAPI(t)

	w, _ := api.do(t, http.MethodGet, "/api/v1/hadith/books/bukhari?offset=10&limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = api.do(t, http.MethodGet, "/api/v1/hadith/books/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = api.do(t, http.MethodGet, "/api/v1/hadith/books/bukhari?offset=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuaRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/duas", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var duas []entities.Dua
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &duas))
	assert.Len(t, duas, len(entities.Duas))

	resp, body := api.do(t, http.MethodGet, "/api/v1/duas/random", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, body["arabic"])
}

func TestPlayerSession_Flow(t *testing.T) {
	api := newTestAPI(t)

	w, body := api.do(t, http.MethodPost, "/api/v1/player/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := body["id"].(string)
	assert.Equal(t, string(player.StatusStopped), body["status"])

	base := "/api/v1/player/sessions/" + id

	w, body = api.do(t, http.MethodPost, base+"/chapter", map[string]int{"chapter": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, string(player.StatusPlaying), body["status"])
	src := body["source"].(map[string]any)
	assert.Equal(t, float64(1), src["token"])
	assert.Equal(t, "https://cdn.islamic.network/quran/audio-surah/128/ar.alafasy/1.mp3", src["locator"])

	// The browser reports the end of surah 1; playback moves on to surah 2.
	w, body = api.do(t, http.MethodPost, base+"/events", map[string]any{"type": "ended", "token": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	pos := body["position"].(map[string]any)
	assert.Equal(t, float64(2), pos["chapter"])

	// A late event for the first source is stale.
	w, body = api.do(t, http.MethodPost, base+"/events", map[string]any{"type": "ended", "token": 1})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotEmpty(t, body["error"])

	w, body = api.do(t, http.MethodPost, base+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(player.StatusPaused), body["status"])

	w, body = api.do(t, http.MethodPost, base+"/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(player.StatusStopped), body["status"])
	assert.Nil(t, body["position"])
}

func TestPlayerSession_Failure(t *testing.T) {
	api := newTestAPI(t)

	_, body := api.do(t, http.MethodPost, "/api/v1/player/sessions", nil)
	base := "/api/v1/player/sessions/" + body["id"].(string)

	verse := map[string]int{"chapter": 36, "verse": 1, "total": 83, "global_verse": 3706}
	w, body := api.do(t, http.MethodPost, base+"/verse", verse)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "AYAH", body["position"].(map[string]any)["unit"])

	w, body = api.do(t, http.MethodPost, base+"/events", map[string]any{"type": "failed", "token": 1, "reason": "404"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(player.StatusStopped), body["status"])
	assert.NotEmpty(t, body["error"])
}

func TestPlayerSession_Errors(t *testing.T) {
	api := newTestAPI(t)

	w, _ := api.do(t, http.MethodGet, "/api/v1/player/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = api.do(t, http.MethodPost, "/api/v1/player/sessions/2b1f6f3e-8a5e-4c1e-9d3a-6f1c2e7b9a10/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, body := api.do(t, http.MethodPost, "/api/v1/player/sessions", nil)
	base := "/api/v1/player/sessions/" + body["id"].(string)

	w, _ = api.do(t, http.MethodPost, base+"/chapter", map[string]int{"chapter": 115})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = api.do(t, http.MethodPost, base+"/events", map[string]any{"type": "paused", "token": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = api.do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = api.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A deleted session stays deleted.
	w, _ = api.do(t, http.MethodPost, base+"/events", map[string]any{"type": "ended", "token": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = api.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlayerSession_Limit(t *testing.T) {
	api := newTestAPI(t, player.WithMaxSessions(2))

	for i := 0; i < 2; i++ {
		w, _ := api.do(t, http.MethodPost, "/api/v1/player/sessions", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, body := api.do(t, http.MethodPost, "/api/v1/player/sessions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestFromError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, fromError(errors.New("boom")).Code)
	assert.Equal(t, "internal error", fromError(errors.New("boom")).Message)
	assert.Equal(t, http.StatusConflict, fromError(player.ErrStaleEvent).Code)
}
