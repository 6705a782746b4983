package service

import (
	"sort"

	"lunch-vote/vote-svc/internal/domain"
)

// ExtractDailyWinners picks the best restaurant of every day present in groups.
// Groups are ordered day-major first so that each day forms one contiguous run;
// the first row of a run is that day's winner. Rows tied on rating and distinct
// users keep their input order.
func ExtractDailyWinners(groups []domain.DayStanding) []domain.DayStanding {
	sorted := make([]domain.DayStanding, len(groups))
	copy(sorted, groups)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.TotalDistinctUsersVoted > b.TotalDistinctUsersVoted
	})

	winners := make([]domain.DayStanding, 0)
	lastDay := ""
	for i, group := range sorted {
		if i > 0 && group.Date == lastDay {
			continue
		}
		winners = append(winners, group)
		lastDay = group.Date
	}
	return winners
}
