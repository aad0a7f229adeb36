package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
)

// Media event types reported by the browser's audio element.
const (
	eventEnded  = "ended"
	eventFailed = "failed"
)

type sessionResponse struct {
	ID string `json:"id"`
	player.State
}

type chapterRequest struct {
	Chapter int `json:"chapter" binding:"required"`
}

type verseRequest struct {
	Chapter     int `json:"chapter" binding:"required"`
	Verse       int `json:"verse" binding:"required"`
	Total       int `json:"total" binding:"required"`
	GlobalVerse int `json:"global_verse" binding:"required"`
}

type eventRequest struct {
	Type   string `json:"type" binding:"required"`
	Token  uint64 `json:"token" binding:"required"`
	Reason string `json:"reason"`
}

func newSessionID() string {
	return uuid.NewString()
}

func (h *Handler) createSession(*gin.Context) (any, *apiError) {
	id := h.newID()
	if err := h.services.Player.Open(id); err != nil {
		return nil, fromError(err)
	}

	state, _ := h.services.Player.State(id)
	return sessionResponse{ID: id, State: state}, nil
}

// session returns the id of an existing session named by the path.
func (h *Handler) session(c *gin.Context) (string, player.State, *apiError) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", player.State{}, notFound("session not found")
	}
	state, ok := h.services.Player.State(id)
	if !ok {
		return "", player.State{}, notFound("session not found")
	}
	return id, state, nil
}

func (h *Handler) getSession(c *gin.Context) (any, *apiError) {
	id, state, apiErr := h.session(c)
	if apiErr != nil {
		return nil, apiErr
	}
	return sessionResponse{ID: id, State: state}, nil
}

func (h *Handler) deleteSession(c *gin.Context) (any, *apiError) {
	id, _, apiErr := h.session(c)
	if apiErr != nil {
		return nil, apiErr
	}
	h.services.Player.Remove(c.Request.Context(), id)
	return gin.H{"id": id, "status": player.StatusStopped}, nil
}

func (h *Handler) selectChapter(c *gin.Context) (any, *apiError) {
	var req chapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, badRequest("invalid request body")
	}
	return h.dispatch(c, player.SelectChapter{Chapter: req.Chapter})
}

func (h *Handler) selectVerse(c *gin.Context) (any, *apiError) {
	var req verseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, badRequest("invalid request body")
	}
	return h.dispatch(c, player.SelectVerse{
		Chapter:     req.Chapter,
		Verse:       req.Verse,
		Total:       req.Total,
		GlobalVerse: req.GlobalVerse,
	})
}

func (h *Handler) control(msg player.Msg) handlerFunc {
	return func(c *gin.Context) (any, *apiError) {
		return h.dispatch(c, msg)
	}
}

func (h *Handler) mediaEvent(c *gin.Context) (any, *apiError) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, badRequest("invalid request body")
	}

	switch req.Type {
	case eventEnded:
		return h.dispatch(c, player.MediaEnded{Token: req.Token})
	case eventFailed:
		return h.dispatch(c, player.MediaFailed{Token: req.Token, Reason: req.Reason})
	default:
		return nil, badRequest("type must be ended or failed")
	}
}

// dispatch applies msg to the session. A playback failure is not an HTTP error:
// the returned state is stopped and carries the message for the user.
func (h *Handler) dispatch(c *gin.Context, msg player.Msg) (any, *apiError) {
	id, _, apiErr := h.session(c)
	if apiErr != nil {
		return nil, apiErr
	}

	state, err := h.services.Player.Dispatch(c.Request.Context(), id, msg)
	if err != nil && !errors.Is(err, entities.ErrPlaybackFailure) {
		return nil, fromError(err)
	}
	return sessionResponse{ID: id, State: state}, nil
}
