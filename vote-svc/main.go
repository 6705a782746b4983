package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunch-vote/config"
	httpapi "lunch-vote/vote-svc/internal/api/http"
	"lunch-vote/vote-svc/internal/service"
	"lunch-vote/vote-svc/internal/storage"
)

func main() {
	cfg := config.Load()
	config.InitLogging(cfg)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	qrCodes := storage.NewQRCodeCache(rdb, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, 24*time.Hour)

	kafkaWriter := config.NewKafkaWriter(cfg)
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	loc := cfg.Location()
	handler := &httpapi.Handler{
		Restaurants: service.NewRestaurantService(repo, qrCodes),
		Votes:       service.NewVoteService(repo, repo, repo, publisher, loc, time.Now),
		Standings:   service.NewStandingsService(repo, repo, loc, time.Now),
		Auth:        service.NewAuthService(repo, cfg.JWTSecret, time.Now),
		JWTSecret:   cfg.JWTSecret,
		PageSize:    cfg.PageSize,
		Location:    loc,
		VoteLimiter: httpapi.NewUserRateLimiter(cfg.VoteRateLimit, 5),
	}

	server := &http.Server{
		Addr:              config.GetEnv("VOTE_SVC_ADDR", ":8081"),
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	log.Printf("Vote Service starting on %s (time zone %s)", server.Addr, loc)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Println("Vote Service stopped")
}
