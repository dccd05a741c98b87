package impl

import (
	"io"
	"log/slog"
	"testing"

	"linkup/internal/domain/entity"
	mocksrepository "linkup/internal/mocks/repository"
	mocksservice "linkup/internal/mocks/service"
	"linkup/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func anonymousIdentity(id string) *entity.Identity {
	return &entity.Identity{ID: id, IsAnonymous: true}
}

func federatedIdentity(id, email string) *entity.Identity {
	return &entity.Identity{
		ID:          id,
		IsAnonymous: false,
		Email:       email,
		DisplayName: "Fed User",
		AvatarURL:   "https://example.com/avatar.png",
	}
}

func anonymousProfile(id string) *entity.Profile {
	return &entity.Profile{
		ID:          id,
		Username:    "wanderer",
		Gender:      "female",
		Age:         24,
		Preferences: []string{"music"},
		IsAnonymous: true,
	}
}

type serviceFixture struct {
	store    *SessionStore
	repo     *mocksrepository.MockProfileRepository
	provider *mocksservice.MockIdentityProvider
	events   *mocksservice.MockSessionEventPublisher

	profiles usecase.ProfileUsecase
	sessions usecase.SessionUsecase
	upgrades usecase.UpgradeUsecase
	cleanup  usecase.CleanupUsecase
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	logger := newDiscardLogger()
	store := NewSessionStore()
	repo := mocksrepository.NewMockProfileRepository(t)
	provider := mocksservice.NewMockIdentityProvider(t)
	events := mocksservice.NewMockSessionEventPublisher(t)

	profiles := NewProfileService(store, repo, logger)

	return &serviceFixture{
		store:    store,
		repo:     repo,
		provider: provider,
		events:   events,
		profiles: profiles,
		sessions: NewSessionService(store, provider, profiles, events, logger),
		upgrades: NewUpgradeService(store, provider, repo, profiles, events, logger),
		cleanup:  NewCleanupService(store, provider, repo, events, logger),
	}
}

// signedInAnonymous puts the fixture into the canonical pre-upgrade state:
// an anonymous identity with its profile loaded.
func (fx *serviceFixture) signedInAnonymous(id string) *entity.Profile {
	identity := anonymousIdentity(id)
	profile := anonymousProfile(id)
	fx.store.ReplaceIdentity(identity)
	fx.store.ReplaceProfile(profile)
	fx.store.SetLoading(false)

	return profile
}
