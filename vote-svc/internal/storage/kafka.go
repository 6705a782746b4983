package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"lunch-vote/vote-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishVote keys messages by restaurant so one restaurant's votes stay ordered.
func (p *KafkaPublisher) PublishVote(ctx context.Context, event domain.VoteEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.RestaurantID)),
		Value: payload,
	})
}
