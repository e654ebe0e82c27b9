package service

import (
	"context"
	"fmt"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

// authService is the concrete implementation of AuthService. It owns
// no session state: the backend issues sessions as cookies, which the
// request-scoped jar carries both ways.
type authService struct {
	backend BackendAuth
	logger  *logger.Logger
}

// NewAuthService constructs an AuthService forwarding to the given
// backend gateway.
func NewAuthService(gateway BackendAuth, logger *logger.Logger) AuthService {
	return &authService{
		backend: gateway,
		logger:  logger,
	}
}

// Login validates the credentials, then performs the backend password
// grant. Empty e-mail or password short-circuits with
// ErrMissingCredentials before any network call.
func (a *authService) Login(ctx context.Context, jar *backend.CookieJar, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := a.backend.SignInWithPassword(ctx, jar, email, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("sign-in failed")
		return nil, err
	}

	// the backend may confirm the grant without echoing the user back
	event := log.Info()
	if user != nil {
		event = event.Str("user_id", user.ID)
	}
	event.Msg("user signed in")

	return user, nil
}

// Signup validates the fields and creates the account. The boolean
// reports whether the backend issued a session immediately; it is false
// when e-mail confirmation is pending.
func (a *authService) Signup(ctx context.Context, jar *backend.CookieJar, name, email, password string) (*models.User, bool, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return nil, false, ErrMissingCredentials
	}

	user, session, err := a.backend.SignUp(ctx, jar, name, email, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("sign-up failed")
		return nil, false, err
	}

	event := log.Info().Bool("has_session", session != nil)
	if user != nil {
		event = event.Str("user_id", user.ID)
	}
	event.Msg("user signed up")

	return user, session != nil, nil
}

// Logout invalidates the backend session. The cookie-clearing headers
// land in jar.
func (a *authService) Logout(ctx context.Context, jar *backend.CookieJar) error {
	if err := a.backend.SignOut(ctx, jar); err != nil {
		return fmt.Errorf("sign-out: %w", err)
	}
	return nil
}

// Session resolves the jar's cookies to the current user. Anonymous
// visitors yield (nil, nil).
func (a *authService) Session(ctx context.Context, jar *backend.CookieJar) (*models.User, error) {
	return a.backend.GetUser(ctx, jar)
}

// MagicLink always reports the feature as unavailable. Password login
// is the only supported flow.
func (a *authService) MagicLink(_ context.Context, _ string) error {
	return ErrMagicLinkDisabled
}
