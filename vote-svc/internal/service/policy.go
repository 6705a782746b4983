package service

import (
	"time"

	"lunch-vote/vote-svc/internal/domain"
)

const (
	FirstVoteWeight   = 1.0
	SecondVoteWeight  = 0.5
	DefaultVoteWeight = 0.25

	DefaultDailyVoteCount = 4
)

// NextVoteWeight prices a vote from the number of votes the same user already
// cast for the same restaurant today.
func NextVoteWeight(todayCount int) float64 {
	switch {
	case todayCount <= 0:
		return FirstVoteWeight
	case todayCount == 1:
		return SecondVoteWeight
	default:
		return DefaultVoteWeight
	}
}

func CanVoteToday(todayCount, dailyVoteCount int) bool {
	return todayCount < dailyVoteCount
}

// DayWindow returns the calendar day containing now in loc.
func DayWindow(now time.Time, loc *time.Location) domain.Window {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return domain.Window{Start: start, End: start.AddDate(0, 0, 1)}
}
