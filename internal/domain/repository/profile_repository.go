// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"linkup/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// record exists for the requested id.
var ErrProfileNotFound = errors.New("profile not found")

// Field names accepted by ProfileRepository.Merge. They match the stored
// document field names, so merge patches are built against these constants
// rather than struct tags.
const (
	FieldUsername      = "username"
	FieldGender        = "gender"
	FieldAge           = "age"
	FieldPreferences   = "preferences"
	FieldIsAnonymous   = "isAnonymous"
	FieldEmail         = "email"
	FieldDisplayName   = "displayName"
	FieldAvatarURL     = "avatarUrl"
	FieldLastActive    = "lastActive"
	FieldLocation      = "location"
	FieldSecret        = "secret"
	FieldSecretVisible = "secretVisible"
	FieldAvatarID      = "avatarId"
	FieldBodyType      = "bodyType"
	FieldMediaRefs     = "mediaRefs"
)

// ProfileRepository defines the standard operations for profile persistence.
// Create performs a full write; Merge writes only the supplied fields,
// matching the store's set-with-merge primitive.
type ProfileRepository interface {
	// Get retrieves the profile for an identity id, or ErrProfileNotFound.
	Get(ctx context.Context, id string) (*entity.Profile, error)

	// Create persists a complete profile record, overwriting any existing one.
	Create(ctx context.Context, profile *entity.Profile) error

	// Merge writes only the supplied fields into an existing record.
	Merge(ctx context.Context, id string, fields map[string]any) error

	// Delete removes the profile record. Deleting an absent record is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteBatch removes multiple profile records in one batched write.
	DeleteBatch(ctx context.Context, ids []string) error

	// QueryByEmail returns every profile whose linked email matches.
	QueryByEmail(ctx context.Context, email string) ([]*entity.Profile, error)

	// QueryAnonymousBefore returns ids of anonymous profiles whose last
	// activity predates the cutoff, for orphan reconciliation sweeps.
	QueryAnonymousBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}
