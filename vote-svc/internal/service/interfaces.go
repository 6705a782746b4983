package service

import (
	"context"
	"time"

	"lunch-vote/vote-svc/internal/domain"
	"lunch-vote/vote-svc/internal/storage"
)

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	Update(ctx context.Context, rest *domain.Restaurant) error
	Delete(ctx context.Context, id int) error
	VoteQRCode(ctx context.Context, id int) ([]byte, error)
}

type VoteServiceInterface interface {
	Cast(ctx context.Context, userID, restaurantID int) (*domain.Vote, error)
}

type StandingsServiceInterface interface {
	Current(ctx context.Context, userID int, page domain.Page) (*domain.PagedResult[domain.Standing], error)
	History(ctx context.Context, filter domain.VoteFilter, page domain.Page) (*domain.PagedResult[domain.Standing], error)
	Winners(ctx context.Context, filter domain.VoteFilter, page domain.Page) (*domain.PagedResult[domain.DayStanding], error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, username, password string, dailyVoteCount int) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int) (int64, error)
}

type VoteRepository interface {
	CountUserVotes(ctx context.Context, userID, restaurantID int, window domain.Window) (int, error)
	InsertVote(ctx context.Context, vote *domain.Vote) error
}

type StandingsRepository interface {
	CountRestaurants(ctx context.Context, restaurantIDs []int) (int, error)
	ListCurrentStandings(ctx context.Context, userID int, today domain.Window, page domain.Page) ([]domain.Standing, error)
	ListStandings(ctx context.Context, filter domain.VoteFilter, page domain.Page) ([]domain.Standing, error)
	ListDayStandings(ctx context.Context, filter domain.VoteFilter, timeZone string) ([]domain.DayStanding, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type VotePublisher interface {
	PublishVote(ctx context.Context, event domain.VoteEvent) error
}

type QRGenerator interface {
	Generate(restaurantID int) ([]byte, error)
}

// Clock is swapped in tests to pin "today".
type Clock func() time.Time

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ VoteServiceInterface       = (*VoteService)(nil)
	_ StandingsServiceInterface  = (*StandingsService)(nil)
	_ AuthServiceInterface       = (*AuthService)(nil)

	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ VoteRepository       = (*storage.PostgresRepository)(nil)
	_ StandingsRepository  = (*storage.PostgresRepository)(nil)
	_ UserRepository       = (*storage.PostgresRepository)(nil)
	_ VotePublisher        = (*storage.KafkaPublisher)(nil)
	_ QRGenerator          = (*storage.QRCodeCache)(nil)
	_ QRGenerator          = DefaultQRGenerator{}
)
