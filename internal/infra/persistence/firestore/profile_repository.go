// Package firestore contains the concrete implementation of the persistence
// layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"linkup/config"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/infra/persistence/model"
)

// profileRepository implements repository.ProfileRepository on Firestore.
// Documents are keyed by the owning identity's uid.
type profileRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewClient creates a Firestore client from application configuration.
func NewClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase project id must be provided")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	return client, nil
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (repo *profileRepository) profiles() *firestore.CollectionRef {
	return repo.client.Collection(model.CollectionProfiles)
}

// Get retrieves the profile document for an identity id.
func (repo *profileRepository) Get(ctx context.Context, id string) (*entity.Profile, error) {
	snap, err := repo.profiles().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, mapStoreError(err, "failed to get profile")
	}

	var m model.ProfileModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return m.ToDomain(snap.Ref.ID), nil
}

// Create persists a complete profile record, overwriting any existing one.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if _, err := repo.profiles().Doc(profile.ID).Set(ctx, model.FromProfileDomain(profile)); err != nil {
		return mapStoreError(err, "failed to create profile")
	}

	return nil
}

// Merge writes only the supplied fields into an existing record using the
// store's set-with-merge primitive.
func (repo *profileRepository) Merge(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	if _, err := repo.profiles().Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return mapStoreError(err, "failed to merge profile fields")
	}

	return nil
}

// Delete removes the profile document. Firestore treats deleting an absent
// document as a success, which matches the repository contract.
func (repo *profileRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.profiles().Doc(id).Delete(ctx); err != nil {
		return mapStoreError(err, "failed to delete profile")
	}

	return nil
}

// DeleteBatch removes multiple profile documents through a bulk writer.
func (repo *profileRepository) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	bw := repo.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(ids))
	for _, id := range ids {
		job, err := bw.Delete(repo.profiles().Doc(id))
		if err != nil {
			bw.End()

			return mapStoreError(err, "failed to enqueue profile delete")
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return mapStoreError(err, "failed to delete profile batch")
		}
	}

	return nil
}

// QueryByEmail returns every profile document whose linked email matches.
func (repo *profileRepository) QueryByEmail(ctx context.Context, email string) ([]*entity.Profile, error) {
	iter := repo.profiles().Where(repository.FieldEmail, "==", email).Documents(ctx)
	defer iter.Stop()

	var profiles []*entity.Profile
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, "failed to query profiles by email")
		}

		var m model.ProfileModel
		if err := snap.DataTo(&m); err != nil {
			repo.logger.Warn("skipping undecodable profile document",
				slog.String("doc", snap.Ref.ID),
				slog.Any("error", err))

			continue
		}

		profiles = append(profiles, m.ToDomain(snap.Ref.ID))
	}

	return profiles, nil
}

// QueryAnonymousBefore returns ids of anonymous profiles whose last activity
// predates the cutoff.
func (repo *profileRepository) QueryAnonymousBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	iter := repo.profiles().
		Where(repository.FieldIsAnonymous, "==", true).
		Where(repository.FieldLastActive, "<", cutoff).
		Documents(ctx)
	defer iter.Stop()

	var ids []string
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, "failed to query stale anonymous profiles")
		}

		ids = append(ids, snap.Ref.ID)
	}

	return ids, nil
}

// mapStoreError translates transport-level failures into the domain error
// taxonomy so callers never see raw gRPC codes.
func mapStoreError(err error, msg string) error {
	switch status.Code(err) {
	case codes.PermissionDenied:
		return errors.Wrap(domainerrors.ErrProfileStorePermission, err.Error())
	case codes.NotFound:
		return errors.Wrap(domainerrors.ErrProfileStoreNotFound, err.Error())
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Wrap(domainerrors.ErrProfileStoreUnavailable, err.Error())
	default:
		return errors.Wrap(err, msg)
	}
}
