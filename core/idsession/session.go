package idsession

import (
	"time"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

// Session represents one identity-verification attempt. The creation
// fields (ID through QRContent) are set once by the manager and never
// change; the result fields are written by Complete, the single terminal
// transition. Sessions cross package boundaries by value, so holding one
// never aliases store state.
type Session struct {
	// ID is the opaque unique identifier and the store key.
	ID string
	// Challenge is the random nonce bound to this session. It must stay
	// unpredictable to any party without access to the generator.
	Challenge string
	// CreatedAt is the sole input to expiry.
	CreatedAt time.Time
	// RelyingPartyID identifies the party requesting verification.
	RelyingPartyID string
	// QRContent is the fully-resolved deep link a wallet scans to join
	// the session. It embeds ID as a query parameter.
	QRContent string

	Status Status
	// ValidIdentity is nil until the session reaches a terminal state,
	// then mirrors the reported flag.
	ValidIdentity *bool
	// WalletPayload holds the opaque result data from the wallet, empty
	// until terminal.
	WalletPayload string
}

// Complete applies the terminal transition: SUCCESS when valid, FAILURE
// otherwise, recording the flag and the raw wallet payload. A repeated
// report overwrites the previous result; the last wallet callback wins.
func (s *Session) Complete(valid bool, payload string) {
	if valid {
		s.Status = StatusSuccess
	} else {
		s.Status = StatusFailure
	}
	s.ValidIdentity = &valid
	s.WalletPayload = payload
}

// IsTerminal reports whether the session reached SUCCESS or FAILURE.
func (s Session) IsTerminal() bool {
	return s.Status != StatusPending
}

// IsExpired reports whether the session lived past ttl at the given instant.
func (s Session) IsExpired(ttl time.Duration, now time.Time) bool {
	return s.CreatedAt.Add(ttl).Before(now)
}

// Snapshot returns an immutable view of the session's observable state.
// The challenge and the raw wallet payload are deliberately omitted: the
// snapshot is what status polling exposes to browsers.
func (s Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:      s.ID,
		Status:         s.Status,
		ValidIdentity:  s.ValidIdentity,
		CreatedAt:      s.CreatedAt,
		QRContent:      s.QRContent,
		RelyingPartyID: s.RelyingPartyID,
	}
}

// Snapshot is a value copy of a session's observable state, safe to share
// across goroutines and to serialize to callers.
type Snapshot struct {
	SessionID      string    `json:"sessionId"`
	Status         Status    `json:"status"`
	ValidIdentity  *bool     `json:"validIdentity"`
	CreatedAt      time.Time `json:"createdAt"`
	QRContent      string    `json:"qrContent"`
	RelyingPartyID string    `json:"relyingPartyId"`
}

// IsTerminal reports whether the snapshot captured a completed session.
func (s Snapshot) IsTerminal() bool {
	return s.Status != StatusPending
}
