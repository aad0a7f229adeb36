package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aliskhannn/nurul-islam-bot/internal/player"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Prayer PrayerService
	Qibla  QiblaService
	Quran  QuranService
	Hadith HadithService
	Dua    DuaService
	Player Player
}

type Handler struct {
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
	services Services
}

// NewRouter builds the gin engine serving /api/v1.
func NewRouter(services Services, allowOrigins []string, logger *zap.Logger) *gin.Engine {
	h := &Handler{
		logger:   logger,
		now:      time.Now,
		newID:    newSessionID,
		services: services,
	}
	return h.router(allowOrigins)
}

func (h *Handler) router(allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	v1.GET("/prayer/times", resolve(h.prayerTimes))
	v1.GET("/prayer/window", resolve(h.prayerWindow))

	v1.GET("/qibla", resolve(h.qiblaDirection))

	v1.GET("/quran/surahs", resolve(h.listSurahs))
	v1.GET("/quran/surahs/:number", resolve(h.readSurah))

	v1.GET("/hadith/books", resolve(h.listHadithBooks))
	v1.GET("/hadith/books/:slug", resolve(h.hadithPage))

	v1.GET("/duas", resolve(h.listDuas))
	v1.GET("/duas/random", resolve(h.randomDua))

	v1.POST("/player/sessions", resolve(h.createSession))
	v1.GET("/player/sessions/:id", resolve(h.getSession))
	v1.DELETE("/player/sessions/:id", resolve(h.deleteSession))
	v1.POST("/player/sessions/:id/chapter", resolve(h.selectChapter))
	v1.POST("/player/sessions/:id/verse", resolve(h.selectVerse))
	v1.POST("/player/sessions/:id/toggle", resolve(h.control(player.Toggle{})))
	v1.POST("/player/sessions/:id/next", resolve(h.control(player.Advance{})))
	v1.POST("/player/sessions/:id/prev", resolve(h.control(player.Retreat{})))
	v1.POST("/player/sessions/:id/close", resolve(h.control(player.Close{})))
	v1.POST("/player/sessions/:id/events", resolve(h.mediaEvent))

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
