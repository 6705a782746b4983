package httpapi

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lunch-vote/vote-svc/internal/domain"
)

var (
	errInvalidPage        = errors.New("page must be a positive integer")
	errInvalidDate        = errors.New("dates must be YYYY-MM-DD or RFC 3339")
	errInvalidRestaurants = errors.New("restaurants must be a list of integer ids")
)

func parsePage(r *http.Request, size int) (domain.Page, error) {
	page := domain.Page{Number: 1, Size: size}
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return page, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return page, errInvalidPage
	}
	// (n-1)*size must fit in an int offset.
	if size > 0 && n-1 > math.MaxInt/size {
		return page, errInvalidPage
	}
	page.Number = n
	return page, nil
}

// parseVoteFilter reads date_after (exclusive), date_before (inclusive) and
// the optional restaurants id list.
func parseVoteFilter(r *http.Request, loc *time.Location) (domain.VoteFilter, error) {
	var filter domain.VoteFilter
	query := r.URL.Query()

	if raw := query.Get("date_after"); raw != "" {
		t, err := parseTime(raw, loc)
		if err != nil {
			return filter, err
		}
		filter.After = &t
	}
	if raw := query.Get("date_before"); raw != "" {
		t, err := parseTime(raw, loc)
		if err != nil {
			return filter, err
		}
		filter.Before = &t
	}

	for _, value := range query["restaurants"] {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return filter, errInvalidRestaurants
			}
			filter.RestaurantIDs = append(filter.RestaurantIDs, id)
		}
	}
	return filter, nil
}

func parseTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidDate
}
