package service

import "errors"

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrDuplicateRestaurant = errors.New("restaurant with this title and address already exists")
	ErrInvalidRestaurant   = errors.New("title and address are required and must be at most 255 characters")
	ErrVoteLimitReached    = errors.New("You already voted maximum times allowed for this restaurant today.")

	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username is already taken")
	ErrInvalidUser        = errors.New("username and a password of at most 72 bytes are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
