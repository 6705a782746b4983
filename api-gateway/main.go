package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lunch-vote/api-gateway/internal/gateway"
	"lunch-vote/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()
	config.InitLogging(cfg)

	gw := gateway.NewGateway(gateway.Config{
		VoteSvcURL:     cfg.VoteSvcURL,
		ActivitySvcURL: cfg.ActivitySvcURL,
	}, &http.Client{Timeout: 15 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	server := &http.Server{
		Addr:              config.GetEnv("GATEWAY_ADDR", ":8080"),
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	log.Printf("API Gateway starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Println("API Gateway stopped")
}
