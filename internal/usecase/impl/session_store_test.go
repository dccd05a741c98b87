package impl

import (
	"testing"

	"linkup/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_StartsInitializing(t *testing.T) {
	store := NewSessionStore()

	snap := store.Snapshot()
	assert.Equal(t, entity.SessionInitializing, snap.State)
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)
}

func TestSessionStore_FirstNilNotificationResolvesToUnauthenticated(t *testing.T) {
	store := NewSessionStore()

	store.ReplaceIdentity(nil)
	store.SetLoading(false)

	snap := store.Snapshot()
	assert.Equal(t, entity.SessionUnauthenticated, snap.State)
	assert.False(t, snap.Loading)
}

func TestSessionStore_StateDerivedFromSlots(t *testing.T) {
	store := NewSessionStore()

	store.ReplaceIdentity(anonymousIdentity("u1"))
	assert.Equal(t, entity.SessionAuthenticatedNoProfile, store.Snapshot().State)

	store.ReplaceProfile(anonymousProfile("u1"))
	assert.Equal(t, entity.SessionAuthenticatedWithProfile, store.Snapshot().State)
}

func TestSessionStore_NilIdentityClearsProfile(t *testing.T) {
	store := NewSessionStore()
	store.ReplaceIdentity(anonymousIdentity("u1"))
	store.ReplaceProfile(anonymousProfile("u1"))

	store.ReplaceIdentity(nil)

	snap := store.Snapshot()
	assert.Equal(t, entity.SessionUnauthenticated, snap.State)
	assert.Nil(t, snap.Profile, "a profile must never be visible without an identity")
}

func TestSessionStore_ApplyProfileForDiscardsStaleLoads(t *testing.T) {
	store := NewSessionStore()
	store.ReplaceIdentity(anonymousIdentity("u1"))

	// The identity changes while a load for u1 is still in flight.
	store.ReplaceIdentity(federatedIdentity("u2", "u2@example.com"))

	applied := store.ApplyProfileFor("u1", anonymousProfile("u1"))
	assert.False(t, applied)
	assert.Nil(t, store.Profile())

	applied = store.ApplyProfileFor("u2", &entity.Profile{ID: "u2", Username: "kept"})
	assert.True(t, applied)
	require.NotNil(t, store.Profile())
	assert.Equal(t, "kept", store.Profile().Username)
}

func TestSessionStore_SnapshotIsACopy(t *testing.T) {
	store := NewSessionStore()
	store.ReplaceIdentity(anonymousIdentity("u1"))
	store.ReplaceProfile(anonymousProfile("u1"))

	snap := store.Snapshot()
	snap.Profile.Username = "mutated"
	snap.Identity.ID = "mutated"

	assert.Equal(t, "wanderer", store.Profile().Username)
	assert.Equal(t, "u1", store.Identity().ID)
}

func TestSessionStore_ClearWipesEverything(t *testing.T) {
	store := NewSessionStore()
	store.ReplaceIdentity(anonymousIdentity("u1"))
	store.ReplaceProfile(anonymousProfile("u1"))
	store.SetPending(&entity.PendingUpgradeToken{CandidateID: "u2", Email: "u2@example.com"})

	store.Clear()

	snap := store.Snapshot()
	assert.Equal(t, entity.SessionUnauthenticated, snap.State)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)
	assert.False(t, snap.Loading)
	assert.Nil(t, store.Pending())
}

func TestSessionStore_PendingRoundTrip(t *testing.T) {
	store := NewSessionStore()

	assert.Nil(t, store.Pending())

	store.SetPending(&entity.PendingUpgradeToken{CandidateID: "u2", Email: "u2@example.com"})
	require.NotNil(t, store.Pending())
	assert.Equal(t, "u2@example.com", store.Pending().Email)

	store.ClearPending()
	assert.Nil(t, store.Pending())
}
