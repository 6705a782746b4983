package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"lunch-vote/activity-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const seenTTL = 48 * time.Hour

type Store struct {
	rdb       *redis.Client
	retention time.Duration
}

func NewStore(rdb *redis.Client, retentionDays int) *Store {
	if retentionDays <= 0 {
		retentionDays = 7
	}
	return &Store{
		rdb:       rdb,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

func dailyKey(day string) string { return fmt.Sprintf("activity:daily:%s", day) }
func totalKey(day string) string { return fmt.Sprintf("activity:total:%s", day) }
func seenKey(eventID string) string {
	return fmt.Sprintf("activity:event:%s", eventID)
}

// RecordVote adds the vote weight to the restaurant's score for day. Events
// with an id that was already seen are ignored. A failed update releases the
// id again so a redelivered event is not dropped.
func (s *Store) RecordVote(ctx context.Context, day string, event domain.VoteEvent) (bool, error) {
	if event.EventID != "" {
		fresh, err := s.rdb.SetNX(ctx, seenKey(event.EventID), day, seenTTL).Result()
		if err != nil {
			return false, err
		}
		if !fresh {
			return false, nil
		}
	}

	daily, total := dailyKey(day), totalKey(day)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, daily, event.VoteWeight, strconv.Itoa(event.RestaurantID))
		pipe.Incr(ctx, total)
		pipe.Expire(ctx, daily, s.retention)
		pipe.Expire(ctx, total, s.retention)
		return nil
	})
	if err != nil {
		if event.EventID != "" {
			if delErr := s.rdb.Del(context.WithoutCancel(ctx), seenKey(event.EventID)).Err(); delErr != nil {
				return false, errors.Join(err, fmt.Errorf("failed to release event %s: %w", event.EventID, delErr))
			}
		}
		return false, err
	}
	return true, nil
}

func (s *Store) DailyActivity(ctx context.Context, day string) (*domain.DailyActivity, error) {
	activity := &domain.DailyActivity{Date: day, Restaurants: []domain.RestaurantActivity{}}

	total, err := s.rdb.Get(ctx, totalKey(day)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	activity.TotalVotes = total

	scores, err := s.rdb.ZRevRangeWithScores(ctx, dailyKey(day), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	for _, member := range scores {
		restaurantID, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		activity.Restaurants = append(activity.Restaurants, domain.RestaurantActivity{
			RestaurantID: restaurantID,
			Weight:       member.Score,
		})
	}
	return activity, nil
}
