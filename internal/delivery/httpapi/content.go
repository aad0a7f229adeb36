package httpapi

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

func (h *Handler) listSurahs(c *gin.Context) (any, *apiError) {
	surahs, err := h.services.Quran.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		return nil, fromError(err)
	}
	if surahs == nil {
		surahs = []entities.Surah{}
	}
	return surahs, nil
}

func (h *Handler) readSurah(c *gin.Context) (any, *apiError) {
	chapter, err := strconv.Atoi(c.Param("number"))
	if err != nil || chapter < entities.FirstSurah || chapter > entities.LastSurah {
		return nil, badRequest("number must be between 1 and 114")
	}

	lang := entities.LanguageBengali
	if q := c.Query("lang"); q != "" {
		lang = entities.Language(q)
		if !lang.Valid() {
			return nil, badRequest(service.ErrInvalidLanguage.Error())
		}
	}

	reading, err := h.services.Quran.Read(c.Request.Context(), 0, chapter, lang)
	if err != nil {
		return nil, fromError(err)
	}
	return reading, nil
}

func (h *Handler) listHadithBooks(c *gin.Context) (any, *apiError) {
	books := h.services.Hadith.SearchBooks(c.Query("q"))
	if books == nil {
		books = []entities.HadithBook{}
	}
	return books, nil
}

func (h *Handler) hadithPage(c *gin.Context) (any, *apiError) {
	offset, apiErr := intQuery(c, "offset", 0)
	if apiErr != nil {
		return nil, apiErr
	}
	limit, apiErr := intQuery(c, "limit", 0)
	if apiErr != nil {
		return nil, apiErr
	}

	page, err := h.services.Hadith.Page(c.Request.Context(), c.Param("slug"), c.Query("q"), offset, limit)
	if err != nil {
		return nil, fromError(err)
	}
	if page.Hadiths == nil {
		page.Hadiths = []entities.Hadith{}
	}
	return page, nil
}

func (h *Handler) listDuas(c *gin.Context) (any, *apiError) {
	duas := h.services.Dua.List()
	if q := c.Query("q"); q != "" {
		duas = h.services.Dua.Search(q)
	}
	if duas == nil {
		duas = []entities.Dua{}
	}
	return duas, nil
}

func (h *Handler) randomDua(*gin.Context) (any, *apiError) {
	return h.services.Dua.Random(), nil
}

func intQuery(c *gin.Context, key string, def int) (int, *apiError) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, badRequest(key + " must be a non-negative integer")
	}
	return n, nil
}
