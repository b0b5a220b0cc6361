package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vidvault/internal/config"
	"vidvault/internal/database"
	"vidvault/internal/domain/account"
	"vidvault/internal/domain/image"
	"vidvault/internal/domain/video"
	"vidvault/internal/media"
	"vidvault/internal/middleware"
	jwtsvc "vidvault/internal/pkg/jwt"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	if err := db.AutoMigrate(&account.User{}, &video.Video{}); err != nil {
		log.Fatal(err)
	}

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	// A missing media configuration keeps the rest of the service up; only
	// the upload endpoints refuse to run.
	var uploader media.Uploader
	if cfg.Media.Complete() {
		uploader = media.NewCloudinaryClient(cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret, cfg.UploadTimeout)
	} else {
		log.Println("media host credentials not configured; uploads disabled")
	}

	accountService := account.NewService(account.NewRepository(db), tokens)
	accountHandler := account.NewHandler(accountService, cfg.JWTTTL)

	videoService := video.NewService(video.NewRepository(db), uploader, cfg.Media.VideoFolder, cfg.UploadTimeout)
	videoHandler := video.NewHandler(videoService)

	imageHandler := image.NewHandler(uploader, cfg.Media.ImageFolder)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.Gate(tokens))

	account.RegisterRoutes(r, accountHandler)

	api := r.Group("/api")
	{
		video.RegisterRoutes(api, videoHandler)
		image.RegisterRoutes(api, imageHandler)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
