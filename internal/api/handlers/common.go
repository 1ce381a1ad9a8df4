package handlers

import (
	"errors"
	"net/http"

	"github.com/collabster/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return "", false
}

// requireIdentity returns the caller's user id and email from the verified
// token.
func requireIdentity(c *gin.Context) (userID, email string, ok bool) {
	userID, ok = requireUserID(c)
	if !ok {
		return "", "", false
	}
	if v, found := c.Get("email"); found {
		email, _ = v.(string)
	}
	return userID, email, true
}
