package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/phone"
	"github.com/collabster/backend/internal/services"
	"github.com/collabster/backend/internal/utils"
)

type ProfileHandler struct {
	svc    services.ProfileService
	phones phone.Formatter
}

func NewProfileHandler(svc services.ProfileService, phones phone.Formatter) *ProfileHandler {
	return &ProfileHandler{svc: svc, phones: phones}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, email, ok := requireIdentity(c)
	if !ok {
		return
	}

	p, err := h.svc.GetOwn(c.Request.Context(), userID, email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), c.Param("uid"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Update applies a partial merge: fields absent from the body stay as they
// are, identity fields are never writable.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, email, ok := requireIdentity(c)
	if !ok {
		return
	}

	var upd models.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	p, err := h.svc.UpdateOwn(c.Request.Context(), userID, email, upd)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

type contactLinkResponse struct {
	Phone string `json:"phone"`
	Link  string `json:"link"`
}

// ContactLink builds the messaging deep link from the stored phone number.
func (h *ProfileHandler) ContactLink(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), c.Param("uid"))
	if err != nil {
		writeError(c, err)
		return
	}
	if p.Phone == "" {
		writeError(c, utils.E(utils.CodeNotFound, "ProfileHandler.ContactLink", "profile has no phone number", nil))
		return
	}

	normalized, err := h.phones.Format(p.Phone)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.ContactLink", "phone number cannot be formatted", err))
		return
	}

	c.JSON(http.StatusOK, contactLinkResponse{
		Phone: normalized,
		Link:  phone.WhatsAppLink(normalized),
	})
}
