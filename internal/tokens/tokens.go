package tokens

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
)

const (
	verificationTTL = 15 * time.Minute
	resetTTL        = 30 * time.Minute
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Store keeps short-lived verification codes and password-reset tokens
// in Redis, keyed by purpose, expiring on their own.
type Store struct {
	rdb *redis.Client
}

func NewStore(cfg *config.Config) *Store {
	return &Store{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func generateOTP(length int) string {
	digits := "0123456789"
	var otp strings.Builder
	for i := 0; i < length; i++ {
		otp.WriteByte(digits[rand.Intn(len(digits))])
	}
	return otp.String()
}

// --------------------------------------------------
// Email verification
// --------------------------------------------------

func (s *Store) CreateVerification(ctx context.Context, email string) (string, error) {
	otp := generateOTP(6)
	if err := s.rdb.Set(ctx, "verify:"+email, otp, verificationTTL).Err(); err != nil {
		return "", err
	}
	return otp, nil
}

// ConsumeVerification checks the code and deletes it on success so a
// code can be used once.
func (s *Store) ConsumeVerification(ctx context.Context, email, otp string) error {
	stored, err := s.rdb.Get(ctx, "verify:"+email).Result()
	if err != nil || stored != otp {
		return ErrInvalidToken
	}

	s.rdb.Del(ctx, "verify:"+email)
	return nil
}

// --------------------------------------------------
// Password reset
// --------------------------------------------------

func (s *Store) CreateReset(ctx context.Context, email string) (string, error) {
	token := uuid.New().String()
	if err := s.rdb.Set(ctx, "reset:"+token, email, resetTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) ConsumeReset(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.Get(ctx, "reset:"+token).Result()
	if err != nil || email == "" {
		return "", ErrInvalidToken
	}

	s.rdb.Del(ctx, "reset:"+token)
	return email, nil
}
