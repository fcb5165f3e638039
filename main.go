package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	api "howler-relay/cmd/api"
	eventRepo "howler-relay/internal/event/repository"
	pushDelivery "howler-relay/internal/push/delivery"
	pushdomain "howler-relay/internal/push/domain"
	"howler-relay/internal/push/gateway"
	pushRepo "howler-relay/internal/push/repository"
	pushUsecase "howler-relay/internal/push/usecase"
	queryDelivery "howler-relay/internal/query/delivery"
	queryRepo "howler-relay/internal/query/repository"
	storageDelivery "howler-relay/internal/storage/delivery"
	"howler-relay/pkg/config"
	"howler-relay/pkg/database"
	"howler-relay/pkg/fcm"
	"howler-relay/pkg/gcs"
	"howler-relay/pkg/hashid"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewMySQLConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// NotificationRecord is the only table this service owns; the rest of
	// the schema belongs to the upstream app and is never migrated here.
	if err := db.AutoMigrate(&pushdomain.NotificationRecord{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize external clients
	fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to initialize FCM client: ", err)
	}

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCSCredentials, cfg.GCSBucket)
	if err != nil {
		log.Fatal("Failed to initialize storage client: ", err)
	}
	defer gcsClient.Close()

	codec, err := hashid.New(cfg.HashidSalt)
	if err != nil {
		log.Fatal("Failed to initialize hashid codec: ", err)
	}

	// Repositories and the delivery-pass service (dependency injection)
	events := eventRepo.NewEventRepository(db)
	tokens := pushRepo.NewTokenRepository(db)
	records := pushRepo.NewRecordRepository(db)
	sender := gateway.NewGateway(fcmClient)
	composer := pushUsecase.NewComposer(cfg.LinkBaseURL, codec)
	pushService := pushUsecase.NewService(events, tokens, records, sender, composer)

	// HTTP handlers
	handler := api.NewHandler(
		cfg,
		pushDelivery.NewPushHandler(pushService),
		queryDelivery.NewQueryHandler(queryRepo.NewQueryRepository(db), cfg.DebugExplainQueries),
		storageDelivery.NewStorageHandler(gcsClient),
	)

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: handler.Engine(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	// Drain in-flight passes before exiting
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown did not drain cleanly: %v", err)
	}
	log.Println("Server stopped")
}
