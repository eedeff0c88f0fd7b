package auth

import (
	"context"
	"errors"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	defaultCacheSizeBytes = 8 * 1024 * 1024
	defaultCacheTTL       = 30 * time.Second
)

// LoginChecker resolves session tokens to user ids. Lookups are cached
// in process for a short time in front of redis.
type LoginChecker struct {
	ttl         time.Duration
	cacheTTL    time.Duration
	redisClient *redis.Client
	cache       *freecache.Cache
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		cacheTTL:    defaultCacheTTL,
		redisClient: redisClient,
		cache:       freecache.NewCache(defaultCacheSizeBytes),
	}
}

// Check returns the user id owning token, and false if there is no valid session.
func (lc *LoginChecker) Check(ctx context.Context, token string) (uuid.UUID, bool, error) {
	if cached, err := lc.cache.Get([]byte(token)); err == nil {
		if userID, err := uuid.FromBytes(cached); err == nil {
			return userID, true, nil
		}
	}

	val, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	session, err := decodeSession(val)
	if err != nil {
		log.Warnf("login checker, stored session unreadable: %s", err)
		return uuid.Nil, false, nil
	}

	remaining := lc.ttl - time.Since(session.CreatedAt)
	if remaining <= 0 {
		return uuid.Nil, false, nil
	}

	// 0 means no expiry in freecache, so sub-second leftovers are not cached
	if cacheSeconds := int(min(lc.cacheTTL, remaining).Seconds()); cacheSeconds > 0 {
		if err := lc.cache.Set([]byte(token), session.UserID[:], cacheSeconds); err != nil {
			log.Warnf("login checker, cache session: %s", err)
		}
	}

	return session.UserID, true, nil
}

// Evict drops a cached token, called on logout.
func (lc *LoginChecker) Evict(token string) {
	lc.cache.Del([]byte(token))
}
