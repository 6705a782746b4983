package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"lunch-vote/vote-svc/internal/domain"
)

const maxFieldLength = 255

type RestaurantService struct {
	repo RestaurantRepository
	qr   QRGenerator
}

func NewRestaurantService(repo RestaurantRepository, qr QRGenerator) *RestaurantService {
	return &RestaurantService{repo: repo, qr: qr}
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	if err := normalizeRestaurant(rest); err != nil {
		return err
	}
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		return translateRestaurantErr(err)
	}
	return nil
}

func (s *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, translateRestaurantErr(err)
	}
	return rest, nil
}

func (s *RestaurantService) Update(ctx context.Context, rest *domain.Restaurant) error {
	if err := normalizeRestaurant(rest); err != nil {
		return err
	}
	if err := s.repo.UpdateRestaurant(ctx, rest); err != nil {
		return translateRestaurantErr(err)
	}
	return nil
}

// Delete removes the restaurant together with its votes.
func (s *RestaurantService) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	if rows == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

func (s *RestaurantService) VoteQRCode(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.qr.Generate(id)
}

func normalizeRestaurant(rest *domain.Restaurant) error {
	rest.Title = strings.TrimSpace(rest.Title)
	rest.Address = strings.TrimSpace(rest.Address)
	if rest.Title == "" || rest.Address == "" {
		return ErrInvalidRestaurant
	}
	if utf8.RuneCountInString(rest.Title) > maxFieldLength || utf8.RuneCountInString(rest.Address) > maxFieldLength {
		return ErrInvalidRestaurant
	}
	return nil
}

func translateRestaurantErr(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrRestaurantNotFound
	case errors.Is(err, domain.ErrUniqueViolation):
		return ErrDuplicateRestaurant
	default:
		return fmt.Errorf("restaurant storage: %w", err)
	}
}
