package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/collabster/backend/internal/api/middleware"
	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/services"
	"github.com/collabster/backend/internal/utils"
)

type AuthHandler struct {
	svc       services.AuthService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(svc services.AuthService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type signUpRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	City     string   `json:"city"`
	Phone    string   `json:"phone"`
	About    string   `json:"about"`
	Tags     []string `json:"tags"`
	Photo    string   `json:"photo"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
	Profile *models.Profile `json:"profile,omitempty"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.SignUp", "invalid request body", err))
		return
	}

	acct, profile, err := h.svc.SignUp(c.Request.Context(), services.SignUpInput{
		Email:          req.Email,
		Password:       req.Password,
		ExistingUserID: middleware.OptionalUserID(c),
		Name:           req.Name,
		Role:           req.Role,
		City:           req.City,
		Phone:          req.Phone,
		About:          req.About,
		Tags:           req.Tags,
		Photo:          req.Photo,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.issueToken(acct)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "AuthHandler.SignUp", "failed to issue token", err))
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, Account: acct, Profile: profile})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.SignIn", "invalid request body", err))
		return
	}

	acct, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.issueToken(acct)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "AuthHandler.SignIn", "failed to issue token", err))
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, Account: acct})
}

// Session reports the identity behind the bearer token. A 401 here is the
// client's redirect-to-entry signal.
func (h *AuthHandler) Session(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	acct, err := h.svc.Account(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, acct)
}

type sessionTokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func (h *AuthHandler) issueToken(acct *models.Account) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
		},
		Email: acct.Email,
	})
	return tok.SignedString([]byte(h.jwtSecret))
}
