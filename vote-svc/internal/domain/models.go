package domain

import (
	"math"
	"time"
)

type Restaurant struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	DailyVoteCount int       `json:"daily_vote_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type Vote struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	VoteWeight   float64   `json:"vote_weight"`
	CreatedAt    time.Time `json:"created_at"`
}

// Standing is a restaurant annotated with its aggregate rating.
// The per-user fields are only filled for current standings.
type Standing struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Address            string  `json:"address"`
	DistinctVotedUsers int     `json:"distinct_voted_users"`
	Rating             float64 `json:"rating"`
	UserVoteCountToday *int    `json:"user_vote_count_today,omitempty"`
	CanUserVoteToday   *bool   `json:"can_user_vote_today,omitempty"`
	VoteURL            string  `json:"vote_url,omitempty"`
}

// DayStanding is one (day, restaurant) vote group.
type DayStanding struct {
	Date                    string  `json:"date"`
	RestaurantID            int     `json:"restaurant_id"`
	Title                   string  `json:"title"`
	Address                 string  `json:"address"`
	Rating                  float64 `json:"rating"`
	TotalDistinctUsersVoted int     `json:"total_distinct_users_voted"`
}

// VoteFilter restricts which votes are aggregated. Zero value means all time.
// After is exclusive, Before is inclusive.
type VoteFilter struct {
	After         *time.Time
	Before        *time.Time
	RestaurantIDs []int
}

type Page struct {
	Number int
	Size   int
}

// Offset saturates at math.MaxInt instead of wrapping negative.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

type PagedResult[T any] struct {
	Count    int `json:"count"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Results  []T `json:"results"`
}

type VoteEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	VoteID       int       `json:"vote_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	VoteWeight   float64   `json:"vote_weight"`
	Timestamp    time.Time `json:"timestamp"`
}

const VoteCastEvent = "vote_cast"

// Window is a half-open [Start, End) time range.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
