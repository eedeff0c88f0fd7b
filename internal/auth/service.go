package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/phuong-practice-projects/healthy-system/pkg"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "healthy-session||"
	tokensSetKey     = "healthy-sessions"
	tokenLength      = 40
)

var ErrInvalidSession = errors.New("invalid session")

type Session struct {
	UserID    uuid.UUID
	CreatedAt time.Time
}

func (s Session) encode() string {
	return fmt.Sprintf("%s|%d", s.UserID, s.CreatedAt.Unix())
}

func decodeSession(val string) (Session, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, "|")
	if !found {
		return Session{}, ErrInvalidSession
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return Session{
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

// Service keeps login sessions in redis, keyed by token.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	session := Session{UserID: userID, CreatedAt: createdAt}
	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, session.encode(), as.ttl).Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session. Returns false if the token had no session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}

	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			// expired in redis already, only the set entry is left
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token: %s", err)
			continue
		}

		session, err := decodeSession(val)
		if err != nil || time.Since(session.CreatedAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean session: %s", err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean session token: %s", err)
		}
	}
	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}

// RunCleanup calls ScanAndClean every interval until ctx is done.
func (as *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Warnf("auth service, sessions cleanup disabled, interval: %s", interval)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			as.ScanAndClean(ctx)
		}
	}
}
