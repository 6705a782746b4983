package domain

import "time"

const VoteCastEvent = "vote_cast"

// VoteEvent mirrors the message vote-svc publishes after each stored vote.
type VoteEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	VoteID       int       `json:"vote_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	VoteWeight   float64   `json:"vote_weight"`
	Timestamp    time.Time `json:"timestamp"`
}

type RestaurantActivity struct {
	RestaurantID int     `json:"restaurant_id"`
	Weight       float64 `json:"weight"`
}

type DailyActivity struct {
	Date        string               `json:"date"`
	TotalVotes  int64                `json:"total_votes"`
	Restaurants []RestaurantActivity `json:"restaurants"`
}
