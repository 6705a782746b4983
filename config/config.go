package config

import (
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker string
	VotesTopic  string

	JWTSecret     string
	TimeZone      string
	PageSize      int
	PublicBaseURL string
	VoteRateLimit float64

	ActivityRetentionDays int

	VoteSvcURL     string
	ActivitySvcURL string

	LogFile string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "lunchvote"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		KafkaBroker:   getEnv("KAFKA_BROKER", "localhost:9092"),
		VotesTopic:    getEnv("VOTES_TOPIC", "votes"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		TimeZone:      getEnv("TIME_ZONE", "UTC"),
		PageSize:      getEnvInt("PAGE_SIZE", 10),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		VoteRateLimit: getEnvFloat("VOTE_RATE_LIMIT", 1),

		ActivityRetentionDays: getEnvInt("ACTIVITY_RETENTION_DAYS", 7),

		VoteSvcURL:     getEnv("VOTE_SVC_URL", "http://localhost:8081"),
		ActivitySvcURL: getEnv("ACTIVITY_SVC_URL", "http://localhost:8083"),

		LogFile: os.Getenv("LOG_FILE"),
	}
}

// Location resolves TimeZone, falling back to UTC for unknown names. "Local"
// is refused because its name is not an IANA zone Postgres can resolve.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "Local" {
		log.Printf("Warning: TIME_ZONE must be an IANA zone name, got %q, using UTC", c.TimeZone)
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("Warning: unknown TIME_ZONE %q, using UTC: %v", c.TimeZone, err)
		return time.UTC
	}
	return loc
}

func InitLogging(cfg *Config) {
	if cfg.LogFile == "" {
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}))
}

func MustInitPostgres(cfg *Config) *sql.DB {
	connStr := "host=" + cfg.DBHost + " port=" + cfg.DBPort + " user=" + cfg.DBUser +
		" password=" + cfg.DBPassword + " dbname=" + cfg.DBName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg *Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.VotesTopic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.VotesTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

// GetEnv is exported for service main packages with their own settings.
func GetEnv(key, def string) string {
	return getEnv(key, def)
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
