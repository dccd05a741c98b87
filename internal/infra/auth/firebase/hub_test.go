package firebase

import (
	"context"
	"testing"
	"time"

	"linkup/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthStateHub_DeliversInOrder(t *testing.T) {
	hub := newAuthStateHub()

	states, cancel := hub.Subscribe(context.Background())
	defer cancel()

	hub.Publish(&entity.Identity{ID: "u1", IsAnonymous: true})
	hub.Publish(nil)
	hub.Publish(&entity.Identity{ID: "u2"})

	first := <-states
	require.NotNil(t, first)
	assert.Equal(t, "u1", first.ID)

	second := <-states
	assert.Nil(t, second)

	third := <-states
	require.NotNil(t, third)
	assert.Equal(t, "u2", third.ID)
}

func TestAuthStateHub_CancelIsIdempotent(t *testing.T) {
	hub := newAuthStateHub()

	states, cancel := hub.Subscribe(context.Background())
	cancel()
	cancel()

	_, open := <-states
	assert.False(t, open)

	// Publishing after cancellation must not panic or block.
	hub.Publish(&entity.Identity{ID: "u1"})
}

func TestAuthStateHub_ContextCancellationTearsDown(t *testing.T) {
	hub := newAuthStateHub()

	ctx, cancelCtx := context.WithCancel(context.Background())
	states, cancel := hub.Subscribe(ctx)
	defer cancel()

	cancelCtx()

	select {
	case _, open := <-states:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed after context cancellation")
	}
}

func TestAuthStateHub_SlowSubscriberKeepsLatest(t *testing.T) {
	hub := newAuthStateHub()

	states, cancel := hub.Subscribe(context.Background())
	defer cancel()

	for i := 0; i < stateBuffer+5; i++ {
		hub.Publish(&entity.Identity{ID: "stale"})
	}
	hub.Publish(&entity.Identity{ID: "latest"})

	var last *entity.Identity
	for {
		select {
		case identity := <-states:
			last = identity

			continue
		default:
		}

		break
	}

	require.NotNil(t, last)
	assert.Equal(t, "latest", last.ID)
}
