package firebase

import (
	"context"
	"sync"

	"linkup/internal/domain/entity"
)

// stateBuffer bounds how many undelivered notifications a slow subscriber
// may accumulate before publishes start dropping the oldest.
const stateBuffer = 16

// authStateHub fans auth-state notifications out to subscribers. It stands
// in for the provider SDK's onAuthStateChanged callback: every successful
// sign-in republishes the identity, sign-out publishes nil.
type authStateHub struct {
	mu   sync.Mutex
	subs map[chan *entity.Identity]struct{}
}

func newAuthStateHub() *authStateHub {
	return &authStateHub{
		subs: make(map[chan *entity.Identity]struct{}),
	}
}

// Subscribe registers a subscriber. The returned cancel function is
// idempotent; cancelling ctx also tears the subscription down.
func (h *authStateHub) Subscribe(ctx context.Context) (<-chan *entity.Identity, func()) {
	ch := make(chan *entity.Identity, stateBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}

	stop := context.AfterFunc(ctx, cancel)
	wrapped := func() {
		stop()
		cancel()
	}

	return ch, wrapped
}

// Publish delivers the identity to every subscriber. When a subscriber's
// buffer is full the oldest pending notification is dropped; the latest
// state always wins.
func (h *authStateHub) Publish(identity *entity.Identity) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		for {
			select {
			case ch <- identity.Clone():
			default:
				select {
				case <-ch:
				default:
				}

				continue
			}

			break
		}
	}
}
