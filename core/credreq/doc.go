// Package credreq constructs the credential request a mobile wallet
// consumes to learn which identity claims are being requested and under
// which protocol.
//
// Two request shapes are supported: the mdoc-native shape consumed by the
// Digital Credentials mediator, and an OpenID4VP authorization request
// carrying a presentation definition. A deployment uses exactly one shape,
// selected by configuration; mixing them would present an ambiguous
// protocol surface to the wallet.
//
// Build is a pure function of the session identity (id and challenge) and
// the builder's static relying-party configuration. The requested mDL data
// elements are fixed deployment policy: family_name, given_name,
// birth_date and document_number, each with intent_to_retain disabled.
//
// Usage:
//
//	b := credreq.Builder{
//		Protocol:       credreq.ProtocolOpenID4VP,
//		RelyingPartyID: "verifier.example.com",
//	}
//	payload := b.Build(sessionID, nonce)
//	// payload marshals to the exact wire shape the wallet expects
package credreq
