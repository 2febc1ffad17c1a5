// Package account drives the auth flows and the session lifecycle.
package account

import (
	"context"
	"fmt"

	"servizo/api"
	"servizo/models"
	"servizo/utils"

	"github.com/go-redis/redis/v8"
)

// AccountService handles signup, login and session maintenance against the
// marketplace backend.
type AccountService interface {
	Login(ctx context.Context, email, password string) (*utils.Session, error)
	Signup(ctx context.Context, req models.SignupRequest) (*utils.Session, error)
	Logout(ctx context.Context, sessionID string) error
	SetProviderMode(ctx context.Context, sess *utils.Session, enabled bool) error
	RefreshUser(ctx context.Context, sess *utils.Session) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	API      *api.Client
	Sessions *redis.Client
}

// Login exchanges credentials for a token and opens a session.
func (s *DefaultAccountService) Login(ctx context.Context, email, password string) (*utils.Session, error) {
	res, err := s.API.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	sess := utils.NewSession(res.Token, res.User)
	if err := utils.SaveSession(s.Sessions, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &sess, nil
}

// Signup registers the account and opens a session right away.
func (s *DefaultAccountService) Signup(ctx context.Context, req models.SignupRequest) (*utils.Session, error) {
	res, err := s.API.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	sess := utils.NewSession(res.Token, res.User)
	if err := utils.SaveSession(s.Sessions, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &sess, nil
}

// Logout discards the session record. The bearer token itself is not revoked;
// the backend owns token lifecycle.
func (s *DefaultAccountService) Logout(ctx context.Context, sessionID string) error {
	return utils.DeleteSession(s.Sessions, sessionID)
}

// SetProviderMode flips provider mode on the backend, then mirrors the
// requested value into the session without waiting on the server echo. A
// failed call leaves the session untouched; there is no rollback beyond that.
func (s *DefaultAccountService) SetProviderMode(ctx context.Context, sess *utils.Session, enabled bool) error {
	if _, err := s.API.SetProviderMode(ctx, sess.Token, enabled); err != nil {
		return err
	}
	sess.User.ProviderMode = enabled
	return utils.SaveSession(s.Sessions, *sess)
}

// RefreshUser re-fetches the current user and updates the session copy.
func (s *DefaultAccountService) RefreshUser(ctx context.Context, sess *utils.Session) error {
	user, err := s.API.Me(ctx, sess.Token)
	if err != nil {
		return err
	}
	sess.User = *user
	return utils.SaveSession(s.Sessions, *sess)
}
