package main

import (
	"context"
	"flag"
	"log"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/catalog"
	"github.com/junaidrashid-git/kula-api/config"
	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/notify"
	"github.com/junaidrashid-git/kula-api/ordercart"
	"github.com/junaidrashid-git/kula-api/profile"
	"github.com/junaidrashid-git/kula-api/routes"
	"github.com/junaidrashid-git/kula-api/store"
	"github.com/junaidrashid-git/kula-api/store/fsstore"
	"github.com/junaidrashid-git/kula-api/store/memstore"
	"github.com/junaidrashid-git/kula-api/store/pgstore"
)

type seeder interface {
	SeedFoods(ctx context.Context, foods []models.Food) error
}

func main() {
	seed := flag.Bool("seed", false, "load the starter menu into an empty postgres store")
	flag.Parse()

	log.Println("✅ Starting application...")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	var app *firebase.App
	if cfg.NeedsFirebase() {
		app, err = auth.NewFirebaseApp(ctx, cfg.FirebaseCredentialsJSON, cfg.FirebaseProjectID)
		if err != nil {
			log.Fatalf("❌ Firebase init failed: %v", err)
		}
	}

	st := openStore(ctx, cfg, app)
	defer st.Close()

	if s, ok := st.(seeder); ok && (*seed || cfg.StoreDriver == config.StoreMemory) {
		if err := s.SeedFoods(ctx, catalog.StarterMenu); err != nil {
			log.Fatalf("❌ Seeding menu failed: %v", err)
		}
	}

	provider := openProvider(ctx, cfg, app)

	var publisher notify.Publisher = notify.Nop{}
	if cfg.RabbitMQURL != "" {
		rmq, err := notify.DialRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("❌ RabbitMQ connection failed: %v", err)
		}
		defer rmq.Close()
		publisher = rmq
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Gate:     auth.NewGate(provider, st),
		Tokens:   auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		Menu:     catalog.NewReader(st),
		Orders:   ordercart.NewService(st, publisher),
		Profiles: profile.NewReader(st, provider),
	})

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config, app *firebase.App) store.Store {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		st, err := pgstore.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		log.Println("🐘 Connected to PostgreSQL")
		return st
	case config.StoreMemory:
		log.Println("🧪 Using in-memory store; data is lost on restart")
		return memstore.New()
	default:
		client, err := app.Firestore(ctx)
		if err != nil {
			log.Fatalf("❌ Firestore connection failed: %v", err)
		}
		log.Println("🔥 Connected to Firestore")
		return fsstore.New(client)
	}
}

func openProvider(ctx context.Context, cfg config.Config, app *firebase.App) auth.Provider {
	if cfg.AuthProvider == config.AuthLocal {
		log.Println("🔑 Using local accounts; they are lost on restart")
		return auth.NewLocalProvider()
	}
	p, err := auth.NewFirebaseProvider(ctx, app, cfg.FirebaseAPIKey)
	if err != nil {
		log.Fatalf("❌ Firebase auth init failed: %v", err)
	}
	return p
}
