package credreq

// Protocol selects the credential-request shape a deployment produces.
type Protocol string

const (
	// ProtocolMdoc is the mdoc-native shape routed through a mediator.
	ProtocolMdoc Protocol = "mdoc"
	// ProtocolOpenID4VP is the OpenID for Verifiable Presentations shape.
	ProtocolOpenID4VP Protocol = "openid4vp"
)

// Valid reports whether p is a known protocol.
func (p Protocol) Valid() bool {
	return p == ProtocolMdoc || p == ProtocolOpenID4VP
}

// mDL document type and namespace from ISO/IEC 18013-5.
const (
	MdocDocType   = "org.iso.18013.5.1.mDL"
	MdocNamespace = "org.iso.18013.5.1"
)

// DefaultMediatorURL is the mediator endpoint used by the mdoc shape when
// no other is configured.
const DefaultMediatorURL = "https://identity.apple.com/digital-credentials"

// presentationDefinitionID identifies the presentation definition in the
// OpenID4VP shape. Wallets treat it as an opaque label.
const presentationDefinitionID = "mDL-request-demo"

// DataElements is the fixed set of mDL data elements requested from the
// wallet. Deployment policy, not caller input.
var DataElements = []string{"family_name", "given_name", "birth_date", "document_number"}

// signatureAlgorithms accepted for mso_mdoc presentations.
var signatureAlgorithms = []string{"ES256", "ES384", "ES512"}

// Builder produces the wallet-facing credential request for a session.
// The zero value builds the mdoc shape with the default mediator.
type Builder struct {
	Protocol       Protocol
	RelyingPartyID string
	// MediatorURL is used by the mdoc shape only.
	MediatorURL string
}

// Build returns the credential request payload for the given session id
// and challenge. The result is ready for JSON marshaling; it has no other
// inputs and no side effects, so rebuilding for the same session yields an
// identical payload.
func (b Builder) Build(sessionID, challenge string) any {
	if b.Protocol == ProtocolOpenID4VP {
		return b.buildOpenID4VP(sessionID, challenge)
	}
	return b.buildMdoc(sessionID, challenge)
}

func (b Builder) buildMdoc(sessionID, challenge string) MdocPayload {
	mediator := b.MediatorURL
	if mediator == "" {
		mediator = DefaultMediatorURL
	}
	return MdocPayload{
		Protocol: string(ProtocolMdoc),
		DocType:  MdocDocType,
		Mediator: mediator,
		Namespaces: []Namespace{{
			Namespace:    MdocNamespace,
			DataElements: DataElements,
		}},
		Challenge:      challenge,
		RelyingPartyID: b.RelyingPartyID,
		SessionToken:   sessionID,
	}
}

func (b Builder) buildOpenID4VP(_, challenge string) OpenID4VPPayload {
	fields := make([]Field, 0, len(DataElements))
	for _, elem := range DataElements {
		fields = append(fields, Field{
			Path:           []string{"$['" + MdocNamespace + "']['" + elem + "']"},
			IntentToRetain: false,
		})
	}
	return OpenID4VPPayload{
		Protocol: string(ProtocolOpenID4VP),
		Request: AuthorizationRequest{
			ClientID:       b.RelyingPartyID,
			ClientIDScheme: "web-origin",
			ResponseType:   "vp_token",
			ResponseMode:   "web_message",
			Nonce:          challenge,
			PresentationDefinition: PresentationDefinition{
				ID: presentationDefinitionID,
				InputDescriptors: []InputDescriptor{{
					ID: MdocDocType,
					Format: Format{
						MsoMdoc: MsoMdocFormat{Alg: signatureAlgorithms},
					},
					Constraints: Constraints{
						LimitDisclosure: "required",
						Fields:          fields,
					},
				}},
			},
		},
	}
}
