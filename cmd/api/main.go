package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myshop/internal/adapter/api"
	"myshop/internal/adapter/api/handler"
	apimiddleware "myshop/internal/adapter/api/middleware"
	"myshop/internal/adapter/repository"
	domainrepo "myshop/internal/domain/repository"
	"myshop/internal/infrastructure/firebase"
	"myshop/internal/infrastructure/memstore"
	"myshop/internal/infrastructure/mongodb"
	"myshop/internal/infrastructure/token"
	"myshop/internal/usecase"
	"myshop/pkg/config"
	"myshop/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}

	tokens := token.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	userRepo := repository.NewDocumentUserRepository(store)
	productRepo := repository.NewDocumentProductRepository(store)
	cartRepo := repository.NewDocumentCartRepository(store)
	wishlistRepo := repository.NewDocumentWishlistRepository(store)
	categoryRepo := repository.NewDocumentCategoryRepository(store)
	bannerRepo := repository.NewDocumentBannerRepository(store)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)

	handlers := handler.NewHandlers(handler.UseCases{
		Auth:     authUseCase,
		User:     usecase.NewUserUseCase(userRepo),
		Product:  usecase.NewProductUseCase(productRepo),
		Cart:     usecase.NewCartUseCase(cartRepo),
		Wishlist: usecase.NewWishlistUseCase(wishlistRepo),
		Category: usecase.NewCategoryUseCase(categoryRepo),
		Banner:   usecase.NewBannerUseCase(bannerRepo),
		Health:   usecase.NewHealthUseCase(store),
	}, cfg.StrictNotFound)

	e := api.NewServer(handlers, apimiddleware.NewAuthMiddleware(authUseCase), api.ServerOptions{
		CORSOrigins:  cfg.CORSOrigins,
		StoreTimeout: cfg.StoreTimeout,
		RequireAuth:  cfg.RequireAuth,
	})

	go func() {
		logger.Info("Starting server on port %s (store: %s)", cfg.ServerPort, cfg.StoreDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutdown signal received, shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close store: %v", err)
	}
	logger.Info("Server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (domainrepo.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		if cfg.EnforceUniqueIndexes {
			if err := store.EnsureUniqueIndexes(ctx); err != nil {
				store.Close(ctx)
				return nil, err
			}
		}
		return store, nil

	case config.StoreFirestore:
		store, err := firebase.Connect(ctx, cfg.FirebaseProject, firebase.Credentials{
			JSON: cfg.FirebaseCredentials,
			File: cfg.FirebaseCredFile,
		})
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StoreMemory:
		var opts []memstore.Option
		if cfg.EnforceUniqueIndexes {
			opts = append(opts,
				memstore.WithUniqueIndex(domainrepo.CollectionUsers, "email"),
				memstore.WithUniqueIndex(domainrepo.CollectionCarts, "productId", "email"),
				memstore.WithUniqueIndex(domainrepo.CollectionWishlists, "productId", "email"),
			)
		}
		logger.Warn("Using the in-memory store; data is lost on restart")
		return memstore.New(opts...), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
