package impl

import (
	"context"
	"testing"
	"time"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runObserver wires a hand-fed auth-state channel into the observer loop and
// runs it until the test finishes.
func runObserver(t *testing.T, fx *serviceFixture) chan<- *entity.Identity {
	t.Helper()

	states := make(chan *entity.Identity, 8)
	fx.provider.EXPECT().
		Subscribe(mock.Anything).
		Return((<-chan *entity.Identity)(states), func() {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = fx.sessions.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return states
}

func waitForState(t *testing.T, fx *serviceFixture, want entity.SessionState) {
	t.Helper()

	require.Eventually(t, func() bool {
		return fx.store.Snapshot().State == want
	}, time.Second, 5*time.Millisecond, "expected session state %s", want)
}

func TestSessionService_Run_NilNotificationResolvesInitialState(t *testing.T) {
	fx := newServiceFixture(t)
	states := runObserver(t, fx)

	assert.Equal(t, entity.SessionInitializing, fx.sessions.Snapshot().State)

	states <- nil

	waitForState(t, fx, entity.SessionUnauthenticated)
	assert.False(t, fx.sessions.Snapshot().Loading)
}

func TestSessionService_Run_SignInLoadsProfile(t *testing.T) {
	fx := newServiceFixture(t)

	fx.repo.EXPECT().
		Get(mock.Anything, "u1").
		Return(anonymousProfile("u1"), nil)
	fx.repo.EXPECT().
		Merge(mock.Anything, "u1", mock.Anything).
		Return(nil)

	states := runObserver(t, fx)
	states <- anonymousIdentity("u1")

	waitForState(t, fx, entity.SessionAuthenticatedWithProfile)

	snap := fx.sessions.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "wanderer", snap.Profile.Username)
}

func TestSessionService_Run_SignInWithoutProfile(t *testing.T) {
	fx := newServiceFixture(t)

	fx.repo.EXPECT().
		Get(mock.Anything, "u1").
		Return(nil, repository.ErrProfileNotFound)

	states := runObserver(t, fx)
	states <- anonymousIdentity("u1")

	waitForState(t, fx, entity.SessionAuthenticatedNoProfile)
}

func TestSessionService_Run_SignOutClearsProfile(t *testing.T) {
	fx := newServiceFixture(t)

	fx.repo.EXPECT().
		Get(mock.Anything, "u1").
		Return(anonymousProfile("u1"), nil)
	fx.repo.EXPECT().
		Merge(mock.Anything, "u1", mock.Anything).
		Return(nil)

	states := runObserver(t, fx)
	states <- anonymousIdentity("u1")
	waitForState(t, fx, entity.SessionAuthenticatedWithProfile)

	states <- nil
	waitForState(t, fx, entity.SessionUnauthenticated)
	assert.Nil(t, fx.sessions.Snapshot().Profile)
}

func TestSessionService_Run_RapidSwitchEndsOnLatestIdentity(t *testing.T) {
	fx := newServiceFixture(t)

	fx.repo.EXPECT().
		Get(mock.Anything, "u1").
		Return(anonymousProfile("u1"), nil)
	fx.repo.EXPECT().
		Merge(mock.Anything, "u1", mock.Anything).
		Return(nil)
	fx.repo.EXPECT().
		Get(mock.Anything, "u2").
		Return(&entity.Profile{ID: "u2", Username: "second"}, nil)
	fx.repo.EXPECT().
		Merge(mock.Anything, "u2", mock.Anything).
		Return(nil)

	states := runObserver(t, fx)
	states <- anonymousIdentity("u1")
	states <- federatedIdentity("u2", "u2@example.com")

	require.Eventually(t, func() bool {
		snap := fx.store.Snapshot()

		return snap.Profile != nil && snap.Profile.ID == "u2"
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "second", fx.store.Profile().Username)
}

func TestSessionService_Run_StopsWhenStreamCloses(t *testing.T) {
	fx := newServiceFixture(t)

	states := make(chan *entity.Identity)
	fx.provider.EXPECT().
		Subscribe(mock.Anything).
		Return((<-chan *entity.Identity)(states), func() {})

	done := make(chan error, 1)
	go func() {
		done <- fx.sessions.Run(context.Background())
	}()

	close(states)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("observer did not stop after the stream closed")
	}
}

func TestSessionService_SignInAnonymous_PublishesEvent(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		SignInAnonymous(ctx).
		Return(anonymousIdentity("u1"), nil)

	var published *entity.SessionEvent
	fx.events.EXPECT().
		PublishSessionEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.SessionEvent) {
			published = event
		}).
		Return(nil)

	identity, err := fx.sessions.SignInAnonymous(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.ID)

	require.NotNil(t, published)
	assert.Equal(t, entity.SessionEventSignedIn, published.Type)
	assert.Equal(t, "u1", published.UID)
	assert.NotEmpty(t, published.EventID)
}

func TestSessionService_SignInAnonymous_ProviderFailure(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		SignInAnonymous(ctx).
		Return(nil, domainerrors.ErrAuthNetwork)

	_, err := fx.sessions.SignInAnonymous(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthNetwork)
	fx.events.AssertNotCalled(t, "PublishSessionEvent", mock.Anything, mock.Anything)
}
