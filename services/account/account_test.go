package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servizo/api"
	"servizo/config"
	"servizo/models"
	"servizo/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, handler http.HandlerFunc) *DefaultAccountService {
	t.Helper()
	config.AppConfig.SessionTTLHours = 1

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &DefaultAccountService{
		API:      api.New(srv.URL, 5*time.Second),
		Sessions: client,
	}
}

func TestLoginOpensSession(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "tok-1",
			User:  models.User{ID: "u1", Name: "Ana", ProviderMode: false},
		})
	})

	sess, err := svc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", sess.Token)
	assert.False(t, sess.User.ProviderMode)

	stored, err := utils.GetSession(svc.Sessions, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.User.Name)
}

func TestLoginFailureSurfacesBackendText(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	})

	_, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLogoutDeletesSession(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.AuthResponse{Token: "tok", User: models.User{ID: "u1"}})
	})

	sess, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), sess.ID))

	_, err = utils.GetSession(svc.Sessions, sess.ID)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestSetProviderModeMirrorsRequestedValue(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		// The backend echo deliberately disagrees; the session still follows
		// the requested value, not the echo.
		json.NewEncoder(w).Encode(models.User{ID: "u1", ProviderMode: false})
	})

	sess := utils.NewSession("tok", models.User{ID: "u1", ProviderMode: false})
	require.NoError(t, utils.SaveSession(svc.Sessions, sess))

	require.NoError(t, svc.SetProviderMode(context.Background(), &sess, true))
	assert.True(t, sess.User.ProviderMode)

	stored, err := utils.GetSession(svc.Sessions, sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.User.ProviderMode)
}

func TestSetProviderModeFailureLeavesSessionUntouched(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	sess := utils.NewSession("tok", models.User{ID: "u1", ProviderMode: false})
	require.NoError(t, utils.SaveSession(svc.Sessions, sess))

	require.Error(t, svc.SetProviderMode(context.Background(), &sess, true))
	assert.False(t, sess.User.ProviderMode)
}

func TestRefreshUserUpdatesSessionCopy(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.User{ID: "u1", Name: "Ana Renamed", ProviderMode: true})
	})

	sess := utils.NewSession("tok", models.User{ID: "u1", Name: "Ana"})
	require.NoError(t, utils.SaveSession(svc.Sessions, sess))

	require.NoError(t, svc.RefreshUser(context.Background(), &sess))
	assert.Equal(t, "Ana Renamed", sess.User.Name)
	assert.True(t, sess.User.ProviderMode)
}
