package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/therafiali/woocommerce-storefront/cart"
	"github.com/therafiali/woocommerce-storefront/checkout"
	"github.com/therafiali/woocommerce-storefront/config"
	"github.com/therafiali/woocommerce-storefront/controllers/notify"
	"github.com/therafiali/woocommerce-storefront/middleware"
	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/remotecart"
	"github.com/therafiali/woocommerce-storefront/routes"
	"github.com/therafiali/woocommerce-storefront/session"
	"github.com/therafiali/woocommerce-storefront/wc"
)

func main() {
	log.Println("✅ Starting storefront gateway...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	// Cart storage: Postgres when configured, in-memory otherwise
	storage := initCartStorage()

	// Core services
	client := wc.NewClient(cfg)
	sessions := session.NewManager(storage, cfg.DefaultCountry)
	hub := notify.NewHub()

	deps := routes.Deps{
		Cfg:        cfg,
		Client:     client,
		Sessions:   sessions,
		Checkout:   checkout.NewService(client, cfg.DefaultCountry),
		RemoteCart: remotecart.NewService(client, cfg.ExtraCharge),
		Hub:        hub,
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Sweep idle sessions hourly; their carts expire with the guest token
	go startSessionSweep(sessions, time.Hour, middleware.SessionTTL)

	// Start server
	log.Printf("🚀 Storefront gateway running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initCartStorage connects Postgres when database settings are present and
// falls back to process memory otherwise, so the gateway still runs in dev.
func initCartStorage() cart.Storage {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			log.Println("⚠️ No database configured, carts will not survive restarts")
			return cart.NewMemoryStorage()
		}
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	if err := db.AutoMigrate(&models.CartRecord{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	return cart.NewGormStorage(db)
}

// startSessionSweep drops sessions idle past ttl and their persisted carts.
func startSessionSweep(sessions *session.Manager, every, ttl time.Duration) {
	for {
		time.Sleep(every)
		if n := sessions.Sweep(ttl); n > 0 {
			log.Printf("🗑️ Removed %d idle sessions", n)
		}
	}
}
