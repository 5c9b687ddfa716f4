package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"memory-match-system/handlers"
	"memory-match-system/models"
	"memory-match-system/services"
	"memory-match-system/utils"
	"memory-match-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	app := fiber.New()

	// The SPA sends the session cookie cross-origin, so credentials must be on.
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:5173")
		allowedOriginsEnv = "http://localhost:5173"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.GameMode{},
		&models.Card{},
		&models.GameRound{},
		&models.RoundPair{},
		&models.CollectionEntry{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := utils.SeedCatalog(db, utils.DefaultCatalog()); err != nil {
		log.Fatal("failed to seed card catalog:", err)
	}

	userService := services.NewUserService(db)
	gameService := services.NewGameService(db)
	collectionService := services.NewCollectionService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional: keep the catalog in sync with an R2-hosted object.
	if os.Getenv("CLOUDFLARE_ACCOUNT_ID") != "" {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		catalogKey := os.Getenv("R2_CATALOG_KEY")
		if catalogKey == "" {
			catalogKey = "catalog/cards.json"
		}
		go workers.PollCatalog(ctx, db, catalogKey, 10*time.Minute)
		log.Println("✅ Catalog polling running (every 10m)")
	}

	roundTTL := 24 * time.Hour
	if raw := os.Getenv("ROUND_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal("invalid ROUND_TTL duration:", err)
		}
		roundTTL = parsed
	}
	gameService.StartRoundExpiryScheduler(roundTTL)

	handlers.SetupUserRoutes(app, userService)
	handlers.SetupGameRoutes(app, gameService)
	handlers.SetupCollectionRoutes(app, collectionService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Round expiry scheduler running (every 1m)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
