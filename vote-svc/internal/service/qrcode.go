package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// VotePath is the API path a client POSTs to in order to vote for a restaurant.
func VotePath(restaurantID int) string {
	return fmt.Sprintf("/api/restaurants/%d/vote", restaurantID)
}

type DefaultQRGenerator struct {
	BaseURL string
}

// Generate encodes the absolute vote URL of a restaurant as a PNG.
func (g DefaultQRGenerator) Generate(restaurantID int) ([]byte, error) {
	return qrcode.Encode(g.BaseURL+VotePath(restaurantID), qrcode.Medium, 256)
}
