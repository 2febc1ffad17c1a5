// File: servizo/utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"servizo/config"
	"servizo/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const SessionPrefix = "session:"

// SessionCookieName is the fixed cookie that carries the session id.
const SessionCookieName = "servizo_session"

// Session is the explicit session object handed to every view: the bearer
// token for the marketplace backend plus the signed-in user.
type Session struct {
	ID            string      `json:"id"`
	Token         string      `json:"token"`
	User          models.User `json:"user"`
	CreatedAt     time.Time   `json:"createdAt"`
	LastUpdatedAt time.Time   `json:"lastUpdatedAt"`
}

// SessionClient is the dedicated Redis client for session records.
var SessionClient *redis.Client

// InitSessionClient initializes the Redis client for the session store.
func InitSessionClient() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for the session store.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionClient()
	}
	return SessionClient
}

// NewSession creates an unsaved session with a fresh random id.
func NewSession(token string, user models.User) Session {
	now := time.Now()
	return Session{
		ID:            uuid.NewString(),
		Token:         token,
		User:          user,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

// SaveSession writes the session to Redis with the configured TTL.
func SaveSession(client *redis.Client, session Session) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, SessionPrefix+session.ID, data, config.SessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a session from Redis.
func GetSession(client *redis.Client, sessionID string) (*Session, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, SessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session from Redis.
func DeleteSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, SessionPrefix+sessionID).Err()
}
