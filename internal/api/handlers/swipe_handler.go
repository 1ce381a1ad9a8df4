package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collabster/backend/internal/services"
	"github.com/collabster/backend/internal/utils"
)

type SwipeHandler struct {
	svc services.SwipeService
}

func NewSwipeHandler(svc services.SwipeService) *SwipeHandler {
	return &SwipeHandler{svc: svc}
}

func (h *SwipeHandler) Deck(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "SwipeHandler.Deck", "limit must be a number", err))
			return
		}
		limit = n
	}

	deck, cursor, err := h.svc.Deck(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": deck, "cursor": cursor})
}

type skipRequest struct {
	DeckSize int `json:"deck_size"`
}

// Skip advances the cursor; after the last card it wraps to the first.
func (h *SwipeHandler) Skip(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req skipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SwipeHandler.Skip", "invalid request body", err))
		return
	}

	cursor, err := h.svc.Skip(c.Request.Context(), userID, req.DeckSize)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cursor": cursor})
}

type likeRequest struct {
	UserID string `json:"uid"`
}

// Like returns the confirmation affordances; nothing is persisted.
func (h *SwipeHandler) Like(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SwipeHandler.Like", "uid is required", err))
		return
	}

	res, err := h.svc.Like(c.Request.Context(), userID, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *SwipeHandler) Reset(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Reset(c.Request.Context(), userID); err != nil {
		writeError(c, utils.E(utils.CodeUnavailable, "SwipeHandler.Reset", "failed to reset cursor", err))
		return
	}

	c.Status(http.StatusNoContent)
}
