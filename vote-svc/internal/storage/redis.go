package storage

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type pngSource interface {
	Generate(restaurantID int) ([]byte, error)
}

// QRCodeCache keeps rendered vote QR codes in Redis. Redis failures fall
// through to the wrapped generator.
type QRCodeCache struct {
	Client *redis.Client
	Next   pngSource
	TTL    time.Duration
}

func NewQRCodeCache(client *redis.Client, next pngSource, ttl time.Duration) *QRCodeCache {
	return &QRCodeCache{Client: client, Next: next, TTL: ttl}
}

func (c *QRCodeCache) QRCodeKey(restaurantID int) string {
	return "qrcode:restaurant:" + strconv.Itoa(restaurantID)
}

func (c *QRCodeCache) Generate(restaurantID int) ([]byte, error) {
	ctx := context.Background()
	key := c.QRCodeKey(restaurantID)

	cached, err := c.Client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		log.Printf("Warning: QR cache read failed for restaurant %d: %v", restaurantID, err)
	}

	png, err := c.Next.Generate(restaurantID)
	if err != nil {
		return nil, err
	}
	if err := c.Client.Set(ctx, key, png, c.TTL).Err(); err != nil {
		log.Printf("Warning: QR cache write failed for restaurant %d: %v", restaurantID, err)
	}
	return png, nil
}
