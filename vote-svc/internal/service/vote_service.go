package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"lunch-vote/vote-svc/internal/domain"

	"github.com/google/uuid"
)

type VoteService struct {
	restaurants RestaurantRepository
	votes       VoteRepository
	users       UserRepository
	publisher   VotePublisher
	loc         *time.Location
	now         Clock
}

func NewVoteService(restaurants RestaurantRepository, votes VoteRepository, users UserRepository,
	publisher VotePublisher, loc *time.Location, now Clock) *VoteService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &VoteService{
		restaurants: restaurants,
		votes:       votes,
		users:       users,
		publisher:   publisher,
		loc:         loc,
		now:         now,
	}
}

// Cast records a vote of userID for restaurantID, weighted by how many votes
// the user already gave that restaurant today. The cap check and the insert
// are not serialized, so two concurrent casts may both pass the check.
func (s *VoteService) Cast(ctx context.Context, userID, restaurantID int) (*domain.Vote, error) {
	if _, err := s.restaurants.GetRestaurant(ctx, restaurantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	today := DayWindow(s.now(), s.loc)
	count, err := s.votes.CountUserVotes(ctx, userID, restaurantID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's votes: %w", err)
	}
	if !CanVoteToday(count, user.DailyVoteCount) {
		return nil, ErrVoteLimitReached
	}

	vote := &domain.Vote{
		UserID:       userID,
		RestaurantID: restaurantID,
		VoteWeight:   NextVoteWeight(count),
	}
	if err := s.votes.InsertVote(ctx, vote); err != nil {
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	if s.publisher != nil {
		event := domain.VoteEvent{
			EventID:      uuid.NewString(),
			Type:         domain.VoteCastEvent,
			VoteID:       vote.ID,
			UserID:       vote.UserID,
			RestaurantID: vote.RestaurantID,
			VoteWeight:   vote.VoteWeight,
			Timestamp:    vote.CreatedAt,
		}
		if err := s.publisher.PublishVote(ctx, event); err != nil {
			log.Printf("Warning: failed to publish vote %d: %v", vote.ID, err)
		}
	}

	log.Printf("User %d voted for restaurant %d with weight %.2f", userID, restaurantID, vote.VoteWeight)
	return vote, nil
}
