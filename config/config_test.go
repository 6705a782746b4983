package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("TIME_ZONE", "")
	t.Setenv("VOTES_TOPIC", "")

	cfg := Load()

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, "votes", cfg.VotesTopic)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("VOTE_RATE_LIMIT", "0.5")
	t.Setenv("DB_HOST", "db")

	cfg := Load()

	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 0.5, cfg.VoteRateLimit)
	assert.Equal(t, "db", cfg.DBHost)
}

func TestLoad_InvalidPageSizeFallsBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "-3")

	assert.Equal(t, 10, Load().PageSize)
}

func TestLocation_Unknown(t *testing.T) {
	cfg := &Config{TimeZone: "Mars/Olympus"}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLocation_LocalRefused(t *testing.T) {
	cfg := &Config{TimeZone: "Local"}

	loc := cfg.Location()

	assert.Equal(t, time.UTC, loc)
	assert.Equal(t, "UTC", loc.String())
}

func TestLocation_IANAName(t *testing.T) {
	cfg := &Config{TimeZone: "Europe/Kyiv"}
	assert.Equal(t, "Europe/Kyiv", cfg.Location().String())
}

func TestLoad_ServiceURLs(t *testing.T) {
	t.Setenv("VOTE_SVC_URL", "http://vote-svc:8081")
	t.Setenv("ACTIVITY_SVC_URL", "")
	t.Setenv("ACTIVITY_RETENTION_DAYS", "30")

	cfg := Load()

	assert.Equal(t, "http://vote-svc:8081", cfg.VoteSvcURL)
	assert.Equal(t, "http://localhost:8083", cfg.ActivitySvcURL)
	assert.Equal(t, 30, cfg.ActivityRetentionDays)
}
