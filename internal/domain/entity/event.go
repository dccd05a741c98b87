package entity

import "time"

// SessionEventType classifies lifecycle events published for downstream
// consumers, most importantly the reconciliation job that sweeps orphaned
// anonymous profiles.
type SessionEventType string

const (
	SessionEventSignedIn        SessionEventType = "session.signed_in"
	SessionEventUpgraded        SessionEventType = "session.upgraded"
	SessionEventSignedOut       SessionEventType = "session.signed_out"
	SessionEventOrphanSuspected SessionEventType = "session.orphan_suspected"
)

// SessionEvent is the payload published on session lifecycle transitions.
type SessionEvent struct {
	EventID string           `json:"event_id"`
	Type    SessionEventType `json:"type"`
	UID     string           `json:"uid"`
	Email   string           `json:"email,omitempty"`
	At      time.Time        `json:"at"`
}
