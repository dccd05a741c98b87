package impl

import (
	"context"
	"log/slog"
	"time"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	store  *SessionStore
	repo   repository.ProfileRepository
	logger *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	store *SessionStore,
	repo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		store:  store,
		repo:   repo,
		logger: logger,
	}
}

// Load fetches the profile for identityID. Failures are logged and degrade
// to "no profile"; the result is installed only while identityID still
// matches the current identity, so stale loads lose to newer ones.
func (srv *profileService) Load(ctx context.Context, identityID string) *entity.Profile {
	profile, err := srv.repo.Get(ctx, identityID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.logger.Warn("profile load failed, treating as no profile",
				slog.String("uid", identityID),
				slog.Any("error", err),
			)
		}
		srv.store.ApplyProfileFor(identityID, nil)

		return nil
	}

	// Touch last-active. Best effort: the session must not care whether
	// this write lands.
	now := time.Now().UTC()
	if err := srv.repo.Merge(ctx, identityID, map[string]any{
		repository.FieldLastActive: now,
	}); err != nil {
		srv.logger.Warn("failed to touch last-active",
			slog.String("uid", identityID),
			slog.Any("error", err),
		)
	}
	profile.LastActive = now

	if !srv.store.ApplyProfileFor(identityID, profile) {
		srv.logger.Debug("discarding stale profile load",
			slog.String("uid", identityID),
		)

		return nil
	}

	return profile
}

// Create writes a full profile record for the current identity. The
// ephemeral flag is copied from the identity at the moment of write, and a
// pending upgrade token's account details are merged in. The token is only
// cleared once the write succeeds, so a failed creation stays retryable.
func (srv *profileService) Create(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	identity := srv.store.Identity()
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrProfileCreation)
	}

	if len(input.Preferences) > entity.MaxPreferences {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "too many preferences")
	}

	now := time.Now().UTC()
	profile := &entity.Profile{
		ID:            identity.ID,
		Username:      input.Username,
		Gender:        input.Gender,
		Age:           input.Age,
		Preferences:   input.Preferences,
		IsAnonymous:   identity.IsAnonymous,
		Email:         identity.Email,
		DisplayName:   identity.DisplayName,
		AvatarURL:     identity.AvatarURL,
		CreatedAt:     now,
		LastActive:    now,
		Location:      input.Location,
		Secret:        input.Secret,
		SecretVisible: input.SecretVisible,
		AvatarID:      input.AvatarID,
		BodyType:      input.BodyType,
		MediaRefs:     input.MediaRefs,
	}

	if token := srv.store.Pending(); token != nil {
		profile.Email = token.Email
		if token.DisplayName != "" {
			profile.DisplayName = token.DisplayName
		}
		if token.AvatarURL != "" {
			profile.AvatarURL = token.AvatarURL
		}
	}

	if err := srv.repo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.store.ClearPending()
	srv.store.ReplaceProfile(profile)

	srv.logger.Info("profile created",
		slog.String("uid", profile.ID),
		slog.Bool("anonymous", profile.IsAnonymous),
	)

	return profile, nil
}

// Update merge-writes only the supplied fields plus a refreshed last-active,
// and mirrors the merge into the in-memory slot.
func (srv *profileService) Update(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	current := srv.store.Profile()
	if current == nil {
		return nil, errors.WithStack(domainerrors.ErrProfileUpdate)
	}

	now := time.Now().UTC()
	fields := map[string]any{repository.FieldLastActive: now}
	merged := current.Clone()
	merged.LastActive = now

	if input.Username != nil {
		fields[repository.FieldUsername] = *input.Username
		merged.Username = *input.Username
	}
	if input.Gender != nil {
		fields[repository.FieldGender] = *input.Gender
		merged.Gender = *input.Gender
	}
	if input.Age != nil {
		fields[repository.FieldAge] = *input.Age
		merged.Age = *input.Age
	}
	if input.Preferences != nil {
		if len(*input.Preferences) > entity.MaxPreferences {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "too many preferences")
		}
		fields[repository.FieldPreferences] = *input.Preferences
		merged.Preferences = *input.Preferences
	}
	if input.Location != nil {
		fields[repository.FieldLocation] = *input.Location
		merged.Location = *input.Location
	}
	if input.Secret != nil {
		fields[repository.FieldSecret] = *input.Secret
		merged.Secret = *input.Secret
	}
	if input.SecretVisible != nil {
		fields[repository.FieldSecretVisible] = *input.SecretVisible
		merged.SecretVisible = *input.SecretVisible
	}
	if input.AvatarID != nil {
		fields[repository.FieldAvatarID] = *input.AvatarID
		merged.AvatarID = *input.AvatarID
	}
	if input.BodyType != nil {
		fields[repository.FieldBodyType] = *input.BodyType
		merged.BodyType = *input.BodyType
	}
	if input.MediaRefs != nil {
		fields[repository.FieldMediaRefs] = *input.MediaRefs
		merged.MediaRefs = *input.MediaRefs
	}

	if err := srv.repo.Merge(ctx, current.ID, fields); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.store.ReplaceProfile(merged)

	return merged, nil
}
