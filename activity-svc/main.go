package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "lunch-vote/activity-svc/internal/api/http"
	"lunch-vote/activity-svc/internal/service"
	"lunch-vote/activity-svc/internal/storage"
	"lunch-vote/config"
)

func main() {
	cfg := config.Load()
	config.InitLogging(cfg)

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, "activity-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc := cfg.Location()
	store := storage.NewStore(rdb, cfg.ActivityRetentionDays)
	consumer := service.NewConsumer(reader, store, loc)
	go consumer.Start(ctx)

	server := &http.Server{
		Addr:              config.GetEnv("ACTIVITY_SVC_ADDR", ":8083"),
		Handler:           httpapi.NewRouter(httpapi.NewHandler(service.NewActivityService(store, loc, time.Now))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	log.Printf("Activity Service starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Println("Activity Service stopped")
}
