package service

import (
	"context"
	"fmt"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/models"
)

type profileService struct {
	client *backend.Client
	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over the backend row
// API.
func NewProfileService(client *backend.Client, logger *logger.Logger) ProfileService {
	return &profileService{
		client: client,
		logger: logger,
	}
}

// EnsureProfile creates the user's profile row if it does not exist
// yet. The insert is duplicate-safe, so calling it after every login
// and signup is harmless.
func (p *profileService) EnsureProfile(ctx context.Context, jar *backend.CookieJar, user *models.User) error {
	log := logger.FromContext(ctx)

	row := map[string]any{
		"id":   user.ID,
		"name": user.DisplayName(),
		"role": models.RoleMember,
	}

	err := p.client.From(models.Profile{}.TableName()).
		WithJar(jar).
		InsertIgnoreDuplicates(ctx, row)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("profile creation failed")
		return fmt.Errorf("ensure profile for %s: %w", user.ID, err)
	}

	return nil
}

// FetchProfile loads the profile row for userID.
func (p *profileService) FetchProfile(ctx context.Context, jar *backend.CookieJar, userID string) (models.Profile, error) {
	var profile models.Profile

	err := p.client.From(profile.TableName()).
		WithJar(jar).
		Select("*").
		Eq("id", userID).
		Single(ctx, &profile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("fetch profile for %s: %w", userID, err)
	}

	return profile, nil
}
