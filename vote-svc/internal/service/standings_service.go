package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lunch-vote/vote-svc/internal/domain"
)

// StandingsService recomputes rankings from raw votes on every call.
type StandingsService struct {
	repo  StandingsRepository
	users UserRepository
	loc   *time.Location
	now   Clock
}

func NewStandingsService(repo StandingsRepository, users UserRepository, loc *time.Location, now Clock) *StandingsService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &StandingsService{repo: repo, users: users, loc: loc, now: now}
}

// Current ranks restaurants by all-time rating and annotates each one with
// the caller's vote count for today.
func (s *StandingsService) Current(ctx context.Context, userID int, page domain.Page) (*domain.PagedResult[domain.Standing], error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	total, err := s.repo.CountRestaurants(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count restaurants: %w", err)
	}

	standings, err := s.repo.ListCurrentStandings(ctx, userID, DayWindow(s.now(), s.loc), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings: %w", err)
	}

	for i := range standings {
		count := 0
		if standings[i].UserVoteCountToday != nil {
			count = *standings[i].UserVoteCountToday
		} else {
			standings[i].UserVoteCountToday = &count
		}
		canVote := CanVoteToday(count, user.DailyVoteCount)
		standings[i].CanUserVoteToday = &canVote
		standings[i].VoteURL = VotePath(standings[i].ID)
	}

	return pagedResult(standings, total, page), nil
}

func (s *StandingsService) History(ctx context.Context, filter domain.VoteFilter, page domain.Page) (*domain.PagedResult[domain.Standing], error) {
	total, err := s.repo.CountRestaurants(ctx, filter.RestaurantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count restaurants: %w", err)
	}

	standings, err := s.repo.ListStandings(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return pagedResult(standings, total, page), nil
}

func (s *StandingsService) Winners(ctx context.Context, filter domain.VoteFilter, page domain.Page) (*domain.PagedResult[domain.DayStanding], error) {
	groups, err := s.repo.ListDayStandings(ctx, filter, s.loc.String())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily votes: %w", err)
	}

	winners := ExtractDailyWinners(groups)
	total := len(winners)

	start := page.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := total
	if page.Size > 0 && page.Size < total-start {
		end = start + page.Size
	}
	return pagedResult(winners[start:end], total, page), nil
}

func pagedResult[T any](items []T, total int, page domain.Page) *domain.PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return &domain.PagedResult[T]{
		Count:    total,
		Page:     page.Number,
		PageSize: page.Size,
		Results:  items,
	}
}
