package credreq

// MdocPayload is the mdoc-native request shape. Field names follow the
// wire format consumed by the Digital Credentials mediator.
type MdocPayload struct {
	Protocol       string      `json:"protocol"`
	DocType        string      `json:"docType"`
	Mediator       string      `json:"mediator"`
	Namespaces     []Namespace `json:"namespaces"`
	Challenge      string      `json:"challenge"`
	RelyingPartyID string      `json:"relyingPartyId"`
	SessionToken   string      `json:"sessionToken"`
}

// Namespace groups the requested data elements under an ISO 18013-5
// namespace identifier.
type Namespace struct {
	Namespace    string   `json:"namespace"`
	DataElements []string `json:"dataElements"`
}

// OpenID4VPPayload wraps an OpenID4VP authorization request.
type OpenID4VPPayload struct {
	Protocol string               `json:"protocol"`
	Request  AuthorizationRequest `json:"request"`
}

// AuthorizationRequest is the OpenID4VP authorization request passed to
// the wallet over the web-message response mode. The session challenge is
// carried as the nonce.
type AuthorizationRequest struct {
	ClientID               string                 `json:"client_id"`
	ClientIDScheme         string                 `json:"client_id_scheme"`
	ResponseType           string                 `json:"response_type"`
	ResponseMode           string                 `json:"response_mode"`
	Nonce                  string                 `json:"nonce"`
	PresentationDefinition PresentationDefinition `json:"presentation_definition"`
}

// PresentationDefinition follows the DIF Presentation Exchange wire
// format, restricted to the subset this deployment emits.
type PresentationDefinition struct {
	ID               string            `json:"id"`
	InputDescriptors []InputDescriptor `json:"input_descriptors"`
}

type InputDescriptor struct {
	ID          string      `json:"id"`
	Format      Format      `json:"format"`
	Constraints Constraints `json:"constraints"`
}

type Format struct {
	MsoMdoc MsoMdocFormat `json:"mso_mdoc"`
}

type MsoMdocFormat struct {
	Alg []string `json:"alg"`
}

type Constraints struct {
	LimitDisclosure string  `json:"limit_disclosure"`
	Fields          []Field `json:"fields"`
}

// Field selects one data element by JSONPath. IntentToRetain is always
// false in this deployment: the verifier does not store presented claims.
type Field struct {
	Path           []string `json:"path"`
	IntentToRetain bool     `json:"intent_to_retain"`
}
