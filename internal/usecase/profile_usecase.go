package usecase

import (
	"context"

	"linkup/internal/domain/entity"
)

// ProfileUsecase binds profile records to the current identity: loading on
// auth-state changes, creating after onboarding, and merge-updating edits.
type ProfileUsecase interface {
	// Load fetches the profile for an identity id and, when it still
	// matches the current identity, installs it as the session profile.
	// A missing profile is not an error — it means onboarding is
	// incomplete — and store failures degrade to "no profile", so Load
	// never returns an error.
	Load(ctx context.Context, identityID string) *entity.Profile

	// Create writes a full profile record for the current identity.
	Create(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)

	// Update merge-writes only the supplied fields into the loaded profile.
	Update(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile after
// onboarding completes.
type CreateProfileInput struct {
	Username    string   `json:"username" validate:"required,min=2,max=32"`
	Gender      string   `json:"gender" validate:"required"`
	Age         int      `json:"age" validate:"required,gte=18,lte=120"`
	Preferences []string `json:"preferences" validate:"max=5"`

	// Optional extension fields.
	Location      string   `json:"location,omitempty"`
	Secret        string   `json:"secret,omitempty"`
	SecretVisible bool     `json:"secret_visible,omitempty"`
	AvatarID      string   `json:"avatar_id,omitempty"`
	BodyType      string   `json:"body_type,omitempty"`
	MediaRefs     []string `json:"media_refs,omitempty"`
}

// UpdateProfileInput defines a partial profile edit. Nil fields are left
// untouched; the write is a merge, never a full overwrite.
type UpdateProfileInput struct {
	Username      *string   `json:"username,omitempty" validate:"omitempty,min=2,max=32"`
	Gender        *string   `json:"gender,omitempty"`
	Age           *int      `json:"age,omitempty" validate:"omitempty,gte=18,lte=120"`
	Preferences   *[]string `json:"preferences,omitempty" validate:"omitempty,max=5"`
	Location      *string   `json:"location,omitempty"`
	Secret        *string   `json:"secret,omitempty"`
	SecretVisible *bool     `json:"secret_visible,omitempty"`
	AvatarID      *string   `json:"avatar_id,omitempty"`
	BodyType      *string   `json:"body_type,omitempty"`
	MediaRefs     *[]string `json:"media_refs,omitempty"`
}
