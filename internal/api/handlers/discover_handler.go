package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collabster/backend/internal/services"
	"github.com/collabster/backend/internal/utils"
)

type DiscoverHandler struct {
	svc services.DiscoverService
}

func NewDiscoverHandler(svc services.DiscoverService) *DiscoverHandler {
	return &DiscoverHandler{svc: svc}
}

// List returns a bounded page, never containing the requester, filtered by
// the optional q substring over name/role/tags.
func (h *DiscoverHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "DiscoverHandler.List", "limit must be a number", err))
			return
		}
		limit = n
	}

	profiles, err := h.svc.List(c.Request.Context(), userID, limit, c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "count": len(profiles)})
}

type handoffRequest struct {
	UserID string `json:"uid"`
}

// CreateHandoff snapshots a profile for the detail view so it can skip a
// second fetch after navigation.
func (h *DiscoverHandler) CreateHandoff(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req handoffRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "DiscoverHandler.CreateHandoff", "uid is required", err))
		return
	}

	handoff, err := h.svc.CreateHandoff(c.Request.Context(), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": handoff.Token, "expires_at": handoff.ExpiresAt})
}

// TakeHandoff consumes a snapshot; it works once, then the caller falls
// back to the by-id lookup.
func (h *DiscoverHandler) TakeHandoff(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	profile, err := h.svc.TakeHandoff(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
