package utils

import (
	"testing"
	"time"

	"servizo/config"
	"servizo/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestSessionRoundTrip(t *testing.T) {
	config.AppConfig.SessionTTLHours = 1
	mr, client := testRedis(t)

	sess := NewSession("tok-123", models.User{ID: "u1", Name: "Ana", Email: "ana@example.com"})
	require.NotEmpty(t, sess.ID)
	require.NoError(t, SaveSession(client, sess))

	got, err := GetSession(client, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got.Token)
	assert.Equal(t, "Ana", got.User.Name)

	// Sessions expire with the configured TTL.
	mr.FastForward(2 * time.Hour)
	_, err = GetSession(client, sess.ID)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDeleteSession(t *testing.T) {
	config.AppConfig.SessionTTLHours = 1
	_, client := testRedis(t)

	sess := NewSession("tok", models.User{ID: "u1"})
	require.NoError(t, SaveSession(client, sess))
	require.NoError(t, DeleteSession(client, sess.ID))

	_, err := GetSession(client, sess.ID)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestNewSessionIDsAreUnique(t *testing.T) {
	a := NewSession("t", models.User{})
	b := NewSession("t", models.User{})
	assert.NotEqual(t, a.ID, b.ID)
}
