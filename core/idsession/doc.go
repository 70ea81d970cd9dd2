// Package idsession manages the lifecycle of short-lived identity
// verification sessions bridging a web relying party and a mobile wallet.
//
// A session is created when a browser requests verification: the manager
// generates an opaque id and a cryptographic challenge, derives the QR
// deep link the wallet scans, stores the session and returns the
// credential request payload. The wallet later reports a terminal result
// (success or failure) which the browser observes by polling the session
// status.
//
// # Lifecycle
//
// Sessions start PENDING and transition exactly once to SUCCESS or
// FAILURE, driven only by a wallet result report. Creation fields (id,
// challenge, QR content) never change, so resuming a session is a pure,
// idempotent rebuild of its payload.
//
// Sessions expire 15 minutes after creation. Expiry is lazy: every
// create, resume and status read first purges expired entries; there is
// no background sweeper. A result report deliberately skips the purge so
// a wallet callback arriving just past the TTL still lands while the
// entry is physically present.
//
// # Concurrency
//
// The store exclusively owns all session state and hands out value
// copies, so callers never share mutable state. The terminal transition
// is applied under the store lock and is atomic with respect to
// concurrent snapshots: a reader observes either the pending or the
// completed session, never a partial write.
//
// Usage:
//
//	store := idsession.NewMemoryStore()
//	mgr := idsession.NewManager(store,
//		idsession.WithRelyingPartyID("verifier.example.com"),
//		idsession.WithProtocol(credreq.ProtocolOpenID4VP),
//	)
//
//	resp, err := mgr.Create("https://verifier.example.com/")
//	// resp.QRContent -> "https://verifier.example.com/?session=<id>"
//
//	status, err := mgr.ReportResult(resp.SessionID, true, walletJSON)
//	// status == idsession.StatusSuccess
package idsession
