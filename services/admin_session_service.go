package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/FrazKhan1/res-pos-admin/config"
)

// SessionTTL bounds how long a bearer token stays usable after login.
const SessionTTL = 24 * time.Hour

// AdminSession is the Redis-stored session record, keyed by token hash.
type AdminSession struct {
	AdminID        uuid.UUID `json:"admin_id"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// AdminSessionService tracks live sessions in Redis. A token is only accepted
// by the auth middleware while its session key exists, so logout in one tab
// kills the token for every tab on its next request.
type AdminSessionService struct{}

// NewAdminSessionService creates a new session service
func NewAdminSessionService() *AdminSessionService {
	return &AdminSessionService{}
}

func sessionKey(tokenHash string) string {
	return "session:" + tokenHash
}

func adminSessionsKey(adminID uuid.UUID) string {
	return "admin_sessions:" + adminID.String()
}

// CreateSession records a new session under the token's hash and indexes it
// per admin so logout can deactivate everything at once.
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	ipAddress string,
	userAgent string,
) (*AdminSession, error) {
	tokenHash := GetAdminAuthService().HashToken(token)
	now := time.Now()

	session := &AdminSession{
		AdminID:        adminID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      now,
		LastActivityAt: now,
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := config.RedisClient.TxPipeline()
	pipe.Set(ctx, sessionKey(tokenHash), payload, SessionTTL)
	pipe.SAdd(ctx, adminSessionsKey(adminID), tokenHash)
	pipe.Expire(ctx, adminSessionsKey(adminID), SessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session for admin %s", adminID)
	return session, nil
}

// SessionAlive reports whether a session still exists for the token hash.
func (s *AdminSessionService) SessionAlive(ctx context.Context, tokenHash string) (bool, error) {
	n, err := config.RedisClient.Exists(ctx, sessionKey(tokenHash)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateSessionActivity refreshes the last-activity timestamp. The TTL is not
// extended: sessions cap out at SessionTTL after login regardless of activity.
func (s *AdminSessionService) UpdateSessionActivity(ctx context.Context, tokenHash string) error {
	key := sessionKey(tokenHash)

	raw, err := config.RedisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil // session already gone, nothing to refresh
	}
	if err != nil {
		return err
	}

	var session AdminSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}
	session.LastActivityAt = time.Now()

	payload, err := json.Marshal(&session)
	if err != nil {
		return err
	}
	return config.RedisClient.Set(ctx, key, payload, redis.KeepTTL).Err()
}

// DeactivateSessions removes every live session for an admin (logout).
func (s *AdminSessionService) DeactivateSessions(ctx context.Context, adminID uuid.UUID) error {
	indexKey := adminSessionsKey(adminID)

	hashes, err := config.RedisClient.SMembers(ctx, indexKey).Result()
	if err != nil && err != redis.Nil {
		log.Printf("[session] failed to list sessions for admin %s: %v", adminID, err)
		return err
	}

	pipe := config.RedisClient.TxPipeline()
	for _, h := range hashes {
		pipe.Del(ctx, sessionKey(h))
	}
	pipe.Del(ctx, indexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[session] failed to deactivate sessions: %v", err)
		return err
	}

	log.Printf("[session] deactivated %d session(s) for admin %s", len(hashes), adminID)
	return nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminSessionService *AdminSessionService

// GetAdminSessionService returns the global session service instance
func GetAdminSessionService() *AdminSessionService {
	if adminSessionService == nil {
		adminSessionService = NewAdminSessionService()
	}
	return adminSessionService
}
