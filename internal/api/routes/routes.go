package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/collabster/backend/internal/api/handlers"
	"github.com/collabster/backend/internal/api/middleware"
)

type Deps struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Photo    *handlers.PhotoHandler
	Discover *handlers.DiscoverHandler
	Swipe    *handlers.SwipeHandler
	Config   *handlers.ConfigHandler

	// PublicDir holds the static pages; the sign-in page is the default
	// document.
	PublicDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// runtime config script + static pages
	r.GET("/config.js", d.Config.Script)
	if d.PublicDir != "" {
		r.Static("/public", d.PublicDir)
		r.StaticFile("/", d.PublicDir+"/index.html")
	}

	api := r.Group("/api")

	// entry points, no session required (sign-up still honors an optional
	// bearer token to stay idempotent)
	api.POST("/auth/signup", d.Auth.SignUp)
	api.POST("/auth/signin", d.Auth.SignIn)

	// Protected routes (JWT)
	auth := api.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/auth/session", d.Auth.Session)

	// own profile lives under /me so the :uid wildcard stays unambiguous
	auth.GET("/me/profile", d.Profile.Me)
	auth.PATCH("/me/profile", d.Profile.Update)
	auth.POST("/me/photo", d.Photo.UploadProfilePhoto)
	auth.POST("/me/portfolio", d.Photo.UploadPortfolio)
	auth.DELETE("/me/portfolio", d.Photo.RemovePortfolioPhoto)
	auth.GET("/profiles/:uid", d.Profile.Get)
	auth.GET("/profiles/:uid/contact-link", d.Profile.ContactLink)

	auth.GET("/discover", d.Discover.List)
	auth.POST("/discover/handoff", d.Discover.CreateHandoff)
	auth.GET("/discover/handoff/:token", d.Discover.TakeHandoff)

	auth.GET("/swipe/deck", d.Swipe.Deck)
	auth.POST("/swipe/skip", d.Swipe.Skip)
	auth.POST("/swipe/like", d.Swipe.Like)
	auth.POST("/swipe/reset", d.Swipe.Reset)
}
