package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/fentrack-go/internal/engine"
	"github.com/lgbarn/fentrack-go/internal/errors"
	"github.com/lgbarn/fentrack-go/internal/output"
	"github.com/lgbarn/fentrack-go/internal/session"
)

type fenRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move   string `json:"move" binding:"required"`
	Strict bool   `json:"strict"`
}

type sessionResponse struct {
	ID       string              `json:"id"`
	Position output.PositionView `json:"position"`
	Moves    []string            `json:"moves"`
}

type destinationsResponse struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
}

type checkResponse struct {
	Move  string `json:"move"`
	Legal bool   `json:"legal"`
	Error string `json:"error,omitempty"`
}

func newSessionResponse(s *session.Session) sessionResponse {
	pos, moves := s.Snapshot()
	return sessionResponse{
		ID:       s.ID(),
		Position: output.NewPositionView(pos),
		Moves:    moves,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) createSession(c *gin.Context) {
	var req fenRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.badRequest(c, err)
			return
		}
	}
	s, err := h.store.Create(req.FEN)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.log.Debug().Str("session", s.ID()).Str("fen", s.FEN()).Msg("session created")
	c.JSON(http.StatusCreated, newSessionResponse(s))
}

func (h *Handler) getSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(s))
}

func (h *Handler) loadSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req fenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if err := s.Load(req.FEN); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(s))
}

func (h *Handler) deleteSession(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) applyMove(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if err := s.Apply(req.Move, req.Strict); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(s))
}

func (h *Handler) listMoves(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	square := c.Query("square")
	destinations, err := s.Destinations(square)
	if err != nil {
		h.fail(c, err)
		return
	}
	names := engine.SquareNames(destinations)
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, destinationsResponse{Square: square, Destinations: names})
}

func (h *Handler) checkMove(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	move := c.Query("move")
	resp := checkResponse{Move: move, Legal: true}
	if err := s.Check(move); err != nil {
		if statusFor(err) != http.StatusBadRequest {
			h.fail(c, err)
			return
		}
		resp.Legal = false
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) undoMove(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.Undo(); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(s))
}

// session looks up the :id parameter, writing the error response if absent.
func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return s, true
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrUnknownSession):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrSessionLimit), errors.Is(err, errors.ErrNoHistory):
		return http.StatusConflict
	case errors.Is(err, errors.ErrMalformedFEN),
		errors.Is(err, errors.ErrInvalidSquare),
		errors.Is(err, errors.ErrIllegalMoveShape),
		errors.Is(err, errors.ErrEmptyOrigin),
		errors.Is(err, errors.ErrIllegalMove):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
