package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lunch-vote/activity-svc/internal/domain"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type ActivityService struct {
	store StoreInterface
	loc   *time.Location
	now   func() time.Time
}

func NewActivityService(store StoreInterface, loc *time.Location, now func() time.Time) *ActivityService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ActivityService{store: store, loc: loc, now: now}
}

func (s *ActivityService) Today(ctx context.Context) (*domain.DailyActivity, error) {
	return s.load(ctx, s.now().In(s.loc).Format(dayLayout))
}

func (s *ActivityService) ForDate(ctx context.Context, date string) (*domain.DailyActivity, error) {
	if _, err := time.Parse(dayLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.load(ctx, date)
}

func (s *ActivityService) load(ctx context.Context, day string) (*domain.DailyActivity, error) {
	activity, err := s.store.DailyActivity(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity for %s: %w", day, err)
	}
	return activity, nil
}
