package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/collabster/backend/config"
	"github.com/collabster/backend/internal/api/handlers"
	"github.com/collabster/backend/internal/api/middleware"
	"github.com/collabster/backend/internal/api/routes"
	"github.com/collabster/backend/internal/cache"
	applogger "github.com/collabster/backend/internal/logger"
	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/phone"
	mongorepo "github.com/collabster/backend/internal/repositories/mongo"
	pgrepo "github.com/collabster/backend/internal/repositories/postgres"
	"github.com/collabster/backend/internal/services"
	"github.com/collabster/backend/internal/storage"
)

const tokenTTL = 24 * time.Hour

func main() {
	_ = godotenv.Load()

	l := applogger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")
	if err := config.PostgresDB.AutoMigrate(&models.Account{}, &models.Profile{}); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	bucketName := os.Getenv("STORAGE_BUCKET")
	if bucketName == "" {
		log.Fatal("STORAGE_BUCKET environment variable is not set")
	}
	bucket, err := storage.NewGCSBucket(context.Background(), bucketName, os.Getenv("GCS_CREDENTIALS_FILE"))
	if err != nil {
		log.Fatalf("Storage init error: %v", err)
	}
	defer bucket.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	// repositories
	accounts := pgrepo.NewAccountRepo(config.PostgresDB)
	profiles := pgrepo.NewProfileRepo(config.PostgresDB)
	handoffs := mongorepo.NewHandoffRepo(config.MongoDatabase())
	redisCache := cache.NewRedisCache(config.RedisClient)

	// services
	phones := phone.ForLocale(os.Getenv("PHONE_LOCALE"))
	profileSvc := services.NewProfileService(profiles)
	authSvc := services.NewAuthService(accounts, profileSvc)
	discoverSvc := services.NewDiscoverService(profiles, handoffs, redisCache)
	swipeSvc := services.NewSwipeService(discoverSvc, profileSvc, redisCache, phones)
	photoSvc := services.NewPhotoService(bucket, bucket, profileSvc, l)

	// handlers
	deps := routes.Deps{
		Auth:      handlers.NewAuthHandler(authSvc, jwtSecret, tokenTTL),
		Profile:   handlers.NewProfileHandler(profileSvc, phones),
		Photo:     handlers.NewPhotoHandler(photoSvc),
		Discover:  handlers.NewDiscoverHandler(discoverSvc),
		Swipe:     handlers.NewSwipeHandler(swipeSvc),
		Config:    handlers.NewConfigHandler(),
		PublicDir: publicDir(),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	routes.RegisterRoutes(r, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func publicDir() string {
	if dir := os.Getenv("PUBLIC_DIR"); dir != "" {
		return dir
	}
	return "./public"
}
