package impl

import (
	"context"
	"testing"
	"time"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCleanupService_SignOut_DeletesEphemeralProfile(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()
	fx.signedInAnonymous("u1")

	fx.repo.EXPECT().
		Delete(ctx, "u1").
		Return(nil)
	fx.provider.EXPECT().
		SignOut(ctx).
		Return(nil)

	var published []*entity.SessionEvent
	fx.events.EXPECT().
		PublishSessionEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.SessionEvent) {
			published = append(published, event)
		}).
		Return(nil)

	fx.cleanup.SignOut(ctx)

	snap := fx.store.Snapshot()
	assert.Equal(t, entity.SessionUnauthenticated, snap.State)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)

	require.Len(t, published, 1)
	assert.Equal(t, entity.SessionEventSignedOut, published[0].Type)
}

func TestCleanupService_SignOut_PersistentProfileIsKept(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()
	fx.store.ReplaceIdentity(federatedIdentity("u2", "u2@example.com"))
	fx.store.ReplaceProfile(&entity.Profile{ID: "u2", Username: "old-timer"})

	fx.provider.EXPECT().
		SignOut(ctx).
		Return(nil)
	fx.events.EXPECT().
		PublishSessionEvent(ctx, mock.Anything).
		Return(nil)

	fx.cleanup.SignOut(ctx)

	fx.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	assert.Equal(t, entity.SessionUnauthenticated, fx.store.Snapshot().State)
}

func TestCleanupService_SignOut_AlwaysSucceedsLocally(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()
	fx.signedInAnonymous("u1")

	fx.repo.EXPECT().
		Delete(ctx, "u1").
		Return(errors.New("store offline"))
	fx.provider.EXPECT().
		SignOut(ctx).
		Return(errors.New("network down"))

	var types []entity.SessionEventType
	fx.events.EXPECT().
		PublishSessionEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.SessionEvent) {
			types = append(types, event.Type)
		}).
		Return(nil)

	// Scenario: every remote call fails, yet logout completes.
	fx.cleanup.SignOut(ctx)

	snap := fx.store.Snapshot()
	assert.Equal(t, entity.SessionUnauthenticated, snap.State)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)

	// The failed delete leaves an orphan behind; the sweep will find it.
	assert.Contains(t, types, entity.SessionEventOrphanSuspected)
	assert.Contains(t, types, entity.SessionEventSignedOut)
}

func TestCleanupService_SignOut_NoSessionIsANoop(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		SignOut(ctx).
		Return(nil)

	fx.cleanup.SignOut(ctx)

	assert.Equal(t, entity.SessionUnauthenticated, fx.store.Snapshot().State)
	fx.events.AssertNotCalled(t, "PublishSessionEvent", mock.Anything, mock.Anything)
}

func TestCleanupService_CleanupAnonymous_DeletesAnonymousProfile(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Get(ctx, "u1").
		Return(anonymousProfile("u1"), nil)
	fx.repo.EXPECT().
		Delete(ctx, "u1").
		Return(nil)

	result, err := fx.cleanup.CleanupAnonymous(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, "u1", result.UID)
}

func TestCleanupService_CleanupAnonymous_AbsentRecordIsSuccess(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Get(ctx, "u1").
		Return(nil, repository.ErrProfileNotFound)

	// Idempotency: a duplicate beacon after a successful delete.
	result, err := fx.cleanup.CleanupAnonymous(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, result.Deleted)
}

func TestCleanupService_CleanupAnonymous_RefusesPersistentProfile(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Get(ctx, "u2").
		Return(&entity.Profile{ID: "u2", IsAnonymous: false}, nil)

	_, err := fx.cleanup.CleanupAnonymous(ctx, "u2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileStorePermission)
	fx.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCleanupService_CleanupAnonymous_DeleteFailurePublishesOrphan(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Get(ctx, "u1").
		Return(anonymousProfile("u1"), nil)
	fx.repo.EXPECT().
		Delete(ctx, "u1").
		Return(errors.New("store offline"))

	var published *entity.SessionEvent
	fx.events.EXPECT().
		PublishSessionEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.SessionEvent) {
			published = event
		}).
		Return(nil)

	_, err := fx.cleanup.CleanupAnonymous(ctx, "u1")
	require.Error(t, err)
	require.NotNil(t, published)
	assert.Equal(t, entity.SessionEventOrphanSuspected, published.Type)
	assert.Equal(t, "u1", published.UID)
}

func TestCleanupService_PurgeOrphans_DeletesStaleAnonymousProfiles(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		QueryAnonymousBefore(ctx, mock.AnythingOfType("time.Time")).
		Return([]string{"a", "b", "c"}, nil)
	fx.repo.EXPECT().
		DeleteBatch(ctx, []string{"a", "b", "c"}).
		Return(nil)

	count, err := fx.cleanup.PurgeOrphans(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCleanupService_PurgeOrphans_NothingToDo(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		QueryAnonymousBefore(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	count, err := fx.cleanup.PurgeOrphans(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, count)
	fx.repo.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
}
