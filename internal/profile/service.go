// Package profile resolves the signed-in restaurant and its tier.
package profile

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
	"menyqr-app/internal/metrics"
	"menyqr-app/internal/repository"
)

const DefaultTTL = 5 * time.Minute

type Profile struct {
	User users.User `json:"user"`
	Tier plans.Tier `json:"tier"`
}

// Service reads through an optional cache. Cache failures are logged and
// the store answers instead.
type Service struct {
	Store repository.Reader
	Cache Cache
	TTL   time.Duration
	Log   *zap.Logger
}

func NewService(store repository.Reader, cache Cache, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Store: store, Cache: cache, TTL: ttl, Log: log}
}

// Resolve returns repository.ErrNotFound for an unknown user.
func (s *Service) Resolve(ctx context.Context, userID string) (Profile, error) {
	if s.Cache != nil {
		p, err := s.Cache.Get(ctx, userID)
		switch {
		case err == nil:
			metrics.ProfileCache.WithLabelValues("hit").Inc()
			return p, nil
		case errors.Is(err, ErrCacheMiss):
			metrics.ProfileCache.WithLabelValues("miss").Inc()
		default:
			metrics.ProfileCache.WithLabelValues("error").Inc()
			s.Log.Warn("profile cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	u, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p := Profile{User: u, Tier: plans.ParseTier(u.Tier)}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, p, s.TTL); err != nil {
			s.Log.Warn("profile cache write failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return p, nil
}

// Invalidate drops the cached profile after a tier or profile change.
func (s *Service) Invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, userID); err != nil {
		s.Log.Warn("profile cache invalidate failed", zap.String("user_id", userID), zap.Error(err))
	}
}
