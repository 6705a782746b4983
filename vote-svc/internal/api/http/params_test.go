package httpapi

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime_DateUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	parsed, err := parseTime("2024-05-01", loc)

	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 4, 30, 22, 0, 0, 0, time.UTC)))
}

func TestParseTime_RFC3339KeepsOffset(t *testing.T) {
	parsed, err := parseTime("2024-05-01T10:00:00+03:00", time.UTC)

	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)))
}

func TestParseVoteFilter(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/restaurants/history?date_before=2024-05-03&restaurants=4,%205", nil)

	filter, err := parseVoteFilter(req, time.UTC)

	require.NoError(t, err)
	assert.Nil(t, filter.After)
	require.NotNil(t, filter.Before)
	assert.Equal(t, "2024-05-03", filter.Before.Format("2006-01-02"))
	assert.Equal(t, []int{4, 5}, filter.RestaurantIDs)
}

func TestParsePage(t *testing.T) {
	page, err := parsePage(httptest.NewRequest("GET", "/?page=3", nil), 10)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Offset())

	page, err = parsePage(httptest.NewRequest("GET", "/", nil), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)

	_, err = parsePage(httptest.NewRequest("GET", "/?page=0", nil), 10)
	assert.ErrorIs(t, err, errInvalidPage)

	_, err = parsePage(httptest.NewRequest("GET", "/?page=1000000000000000000", nil), 10)
	assert.ErrorIs(t, err, errInvalidPage)
}
