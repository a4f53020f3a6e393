package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"guitar-learning-system/handlers"
	"guitar-learning-system/models"
	"guitar-learning-system/services"
	"guitar-learning-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		AppName: "guitar-learning-system",
	})

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.User{},
		&models.Profile{},
		&models.Session{},
		&models.PointsActivity{},
		&models.ContentProgress{},
		&models.FriendRequest{},
		&models.Friend{},
		&models.Chat{},
		&models.ChatMessage{},
		&models.CommunityPost{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := services.SeedDemoUsers(db); err != nil {
		log.Fatal("failed to seed demo users:", err)
	}

	// Presence: in-memory always, mirrored to redis when configured.
	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL:", err)
		}
		rdb = redis.NewClient(opts)
	}
	presenceService := services.NewPresenceService(rdb)

	sessionService := services.NewSessionService(db, jwtSecret)
	progressionService := services.NewProgressionService(db)
	contentService := services.NewContentService(db)
	socialService := services.NewSocialService(db, presenceService)

	hub := services.NewRelayHub(presenceService)

	// Mutations are mirrored to local websocket clients, and to an upstream
	// relay when one is configured.
	broadcasters := services.MultiBroadcaster{hub}
	var syncChannel *services.SyncChannel
	if relayURL := os.Getenv("SYNC_RELAY_URL"); relayURL != "" {
		syncChannel = services.NewSyncChannel(relayURL, os.Getenv("SYNC_NODE_ID"), socialService)
		if syncChannel.Open() {
			log.Println("✅ Sync channel connected")
		} else {
			log.Println("⚠️  Sync channel unavailable, running local-only")
		}
		broadcasters = append(broadcasters, syncChannel)
	}
	socialService.SetBroadcaster(broadcasters)

	resetWorker := workers.NewWeeklyResetWorker(db)
	resetWorker.Start()

	handlers.SetupAuthRoutes(app, sessionService, jwtSecret)
	handlers.SetupUserRoutes(app, sessionService, progressionService, contentService, jwtSecret)
	handlers.SetupSocialRoutes(app, sessionService, socialService, jwtSecret)
	handlers.SetupRealtimeRoutes(app, hub, jwtSecret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Weekly reset worker running (hourly)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	resetWorker.Stop()
	if syncChannel != nil {
		syncChannel.Close()
	}
	_ = app.Shutdown()
}
