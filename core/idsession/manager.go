package idsession

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/idbridge/core/challenge"
	"github.com/dmitrymomot/idbridge/core/credreq"
)

// Manager orchestrates the session lifecycle: challenge generation,
// storage, credential request construction and the terminal result
// transition. All operations are synchronous, bounded-time, in-memory
// computations; none blocks on I/O.
type Manager struct {
	store   Store
	ttl     time.Duration
	rpID    string
	builder credreq.Builder
}

// NewManager creates a session manager backed by the given store. The
// store is passed in rather than held globally so independent managers
// and stores can coexist in one process.
func NewManager(store Store, opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Manager{
		store: store,
		ttl:   cfg.TTL,
		rpID:  cfg.RelyingPartyID,
		builder: credreq.Builder{
			Protocol:       cfg.Protocol,
			RelyingPartyID: cfg.RelyingPartyID,
			MediatorURL:    cfg.MediatorURL,
		},
	}
}

// Response is returned by Create and Resume: the session id, the QR deep
// link for the wallet, and the protocol payload describing the requested
// credentials.
type Response struct {
	SessionID string `json:"sessionId"`
	QRContent string `json:"qrContent"`
	Payload   any    `json:"payload"`
}

// Create starts a new verification session. originURL is an absolute URL
// prefix without a session query; the QR content appends session=<id>
// with ? or & depending on whether originURL already carries a query.
// The returned error is only possible on entropy source failure.
func (m *Manager) Create(originURL string) (Response, error) {
	m.purge()

	chal, err := challenge.New()
	if err != nil {
		return Response{}, errors.Join(ErrChallengeGeneration, err)
	}

	id := uuid.NewString()
	sep := "?"
	if strings.Contains(originURL, "?") {
		sep = "&"
	}
	sess := Session{
		ID:             id,
		Challenge:      chal,
		CreatedAt:      time.Now(),
		RelyingPartyID: m.rpID,
		QRContent:      originURL + sep + "session=" + id,
		Status:         StatusPending,
	}
	m.store.Put(sess)

	return Response{
		SessionID: id,
		QRContent: sess.QRContent,
		Payload:   m.builder.Build(id, chal),
	}, nil
}

// Resume rebuilds the response for an existing session. Challenge and QR
// content are stable, so resuming is idempotent and has no side effect
// beyond the expiry purge. Returns ErrNotFound for unknown or expired ids.
func (m *Manager) Resume(id string) (Response, error) {
	m.purge()

	sess, ok := m.store.Get(id)
	if !ok {
		return Response{}, ErrNotFound
	}
	return Response{
		SessionID: sess.ID,
		QRContent: sess.QRContent,
		Payload:   m.builder.Build(sess.ID, sess.Challenge),
	}, nil
}

// GetStatus returns an immutable snapshot of the session's observable
// state. Returns ErrNotFound for unknown or expired ids.
func (m *Manager) GetStatus(id string) (Snapshot, error) {
	m.purge()

	sess, ok := m.store.Get(id)
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return sess.Snapshot(), nil
}

// ReportResult records the wallet's verdict and returns the resulting
// status. This path does not purge first: a report arriving just past the
// TTL still lands while the entry is physically present, because losing a
// wallet's final callback is worse than a few minutes of TTL slack.
func (m *Manager) ReportResult(id string, validIdentity bool, walletPayload string) (Status, error) {
	sess, ok := m.store.Update(id, func(s *Session) {
		s.Complete(validIdentity, walletPayload)
	})
	if !ok {
		return "", ErrNotFound
	}
	return sess.Status, nil
}

// TTL returns the session time-to-live.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) purge() {
	m.store.PurgeExpired(time.Now().Add(-m.ttl))
}
