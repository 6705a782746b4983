package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lunch-vote/activity-svc/internal/domain"
)

const dayLayout = "2006-01-02"

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Loc    *time.Location
}

func NewConsumer(reader MessageReader, store StoreInterface, loc *time.Location) *Consumer {
	if loc == nil {
		loc = time.UTC
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Loc:    loc,
	}
}

// Start reads messages until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Activity Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Activity Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.VoteEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessVote(ctx, msg)
	}
}

func (c *Consumer) ProcessVote(ctx context.Context, msg domain.VoteEvent) {
	if msg.Type != domain.VoteCastEvent {
		return
	}
	if msg.RestaurantID <= 0 || msg.VoteWeight <= 0 {
		log.Printf("Skipping malformed vote event %q", msg.EventID)
		return
	}

	loc := c.Loc
	if loc == nil {
		loc = time.UTC
	}
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	day := ts.In(loc).Format(dayLayout)

	recorded, err := c.Store.RecordVote(ctx, day, msg)
	if err != nil {
		log.Printf("Error recording vote %d: %v", msg.VoteID, err)
		return
	}
	if !recorded {
		log.Printf("Vote event %q already processed, skipping", msg.EventID)
		return
	}

	log.Printf("Recorded vote %d for restaurant %d on %s", msg.VoteID, msg.RestaurantID, day)
}
