package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"lunch-vote/vote-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const TokenTTL = 24 * time.Hour

// bcrypt only hashes the first 72 bytes of a password.
const maxPasswordBytes = 72

type AuthService struct {
	users  UserRepository
	secret []byte
	now    Clock
}

func NewAuthService(users UserRepository, secret string, now Clock) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{users: users, secret: []byte(secret), now: now}
}

func (s *AuthService) Register(ctx context.Context, username, password string, dailyVoteCount int) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || len(password) > maxPasswordBytes || dailyVoteCount < 0 {
		return nil, ErrInvalidUser
	}
	if dailyVoteCount == 0 {
		dailyVoteCount = DefaultDailyVoteCount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrInvalidUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:       username,
		PasswordHash:   string(hash),
		DailyVoteCount: dailyVoteCount,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and returns a signed HS256 token whose sub is the user id.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}
