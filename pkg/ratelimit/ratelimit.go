package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/marcusvinicius1er/Reach-online/pkg/utils"
)

const keyPrefix = "rate_limit:"

// ErrRateLimited means the identity spent its submission budget for the
// current window.
var ErrRateLimited = errors.New("rate limit exceeded")

// Limiter caps accepted submissions per client identity using a Redis
// counter. The window is fixed but re-anchored: every accepted submission
// resets the key's expiry to a full window. This deliberately approximates
// a sliding window and must not be upgraded to a sliding log, since the
// reset-on-hit behavior is observable.
type Limiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
	log    *logrus.Logger
}

// NewLimiter builds a Limiter over the given Redis client. A nil client
// disables limiting entirely; origin restriction is the remaining abuse
// control in that case.
func NewLimiter(rdb *redis.Client, max int, log *logrus.Logger) *Limiter {
	return &Limiter{
		rdb:    rdb,
		max:    max,
		window: time.Hour,
		log:    log,
	}
}

// Allow checks and consumes one unit of the identity's budget. It returns
// ErrRateLimited at the cap, without incrementing. Store failures are
// logged and treated as allows (fail-open): losing Redis should not take
// the form down.
func (l *Limiter) Allow(ctx context.Context, identity string) error {
	if l == nil || l.rdb == nil {
		return nil
	}

	key := keyPrefix + identity
	count, err := l.rdb.Get(ctx, key).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		l.log.WithError(err).Warn("rate limit store unavailable, allowing request")
		return nil
	}

	if count >= l.max {
		l.log.WithField("identity", utils.HashString(identity)).Info("rate limit exceeded")
		return ErrRateLimited
	}

	if err := l.rdb.Incr(ctx, key).Err(); err != nil {
		l.log.WithError(err).Warn("rate limit increment failed, allowing request")
		return nil
	}
	// Re-anchor the expiry on every accepted hit, not only the first.
	if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
		l.log.WithError(err).Warn("rate limit expiry reset failed")
	}
	return nil
}

// ClientIdentity resolves the identity a request is counted under: the
// edge network's connecting-IP header. Requests without it all collapse
// onto "unknown", a known degradation for non-edge traffic.
func ClientIdentity(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	return "unknown"
}
