package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/jastipid/storefront/internal/config"
	"github.com/jastipid/storefront/internal/logger"
	"github.com/jastipid/storefront/internal/modules/cart"
	"github.com/jastipid/storefront/internal/modules/catalog"
	"github.com/jastipid/storefront/internal/modules/checkout"
	"github.com/jastipid/storefront/internal/modules/profile"
	"github.com/jastipid/storefront/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// ── State store & order sink ────────────────────────────
	var store storage.Store
	var sink checkout.Sink
	if cfg.DevMode {
		log.Info("DEV_MODE=true: in-memory store, orders are not persisted")
		store = storage.NewMemoryStore()
		sink = checkout.NewNoopSink(log)
	} else {
		var err error
		store, err = storage.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("failed to connect to mongo", zap.Error(err))
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			log.Fatal("failed to ping mongo", zap.Error(err))
		}
		sink = checkout.NewMongoSink(client, cfg.MongoDB)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logger.RequestLogger(log))

	// ── Profiles, catalog, cart, checkout ───────────────────
	profileRepo := profile.NewStoreRepository(store)
	profileService := profile.NewService(profileRepo)

	catalogService := catalog.NewService(profileService,
		&http.Client{Timeout: cfg.CatalogTimeout}, log)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	profile.NewHandler(profileService, catalogService, log).RegisterRoutes(router)

	cartRepo := cart.NewStoreRepository(store)
	cartService := cart.NewService(cartRepo)
	cart.NewHandler(cartService).RegisterRoutes(router)

	checkoutService := checkout.NewService(cartService, profileService, sink, log)
	checkout.NewHandler(checkoutService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	log.Info("jastip storefront API listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
