package service

import (
	"context"

	"lunch-vote/activity-svc/internal/domain"
	"lunch-vote/activity-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	// RecordVote returns false when the event was already counted.
	RecordVote(ctx context.Context, day string, event domain.VoteEvent) (bool, error)
	DailyActivity(ctx context.Context, day string) (*domain.DailyActivity, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessVote(ctx context.Context, msg domain.VoteEvent)
}

type ActivityInterface interface {
	Today(ctx context.Context) (*domain.DailyActivity, error)
	ForDate(ctx context.Context, date string) (*domain.DailyActivity, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ ActivityInterface = (*ActivityService)(nil)
)
