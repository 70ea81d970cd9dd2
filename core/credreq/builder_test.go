package credreq_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idbridge/core/credreq"
)

func TestBuild_MdocShape(t *testing.T) {
	b := credreq.Builder{
		Protocol:       credreq.ProtocolMdoc,
		RelyingPartyID: "verifier.example.com",
		MediatorURL:    "https://mediator.example.com/dc",
	}

	payload, ok := b.Build("sess-1", "nonce-1").(credreq.MdocPayload)
	require.True(t, ok, "mdoc builder must return MdocPayload")

	assert.Equal(t, "mdoc", payload.Protocol)
	assert.Equal(t, "org.iso.18013.5.1.mDL", payload.DocType)
	assert.Equal(t, "https://mediator.example.com/dc", payload.Mediator)
	assert.Equal(t, "nonce-1", payload.Challenge)
	assert.Equal(t, "verifier.example.com", payload.RelyingPartyID)
	assert.Equal(t, "sess-1", payload.SessionToken)

	require.Len(t, payload.Namespaces, 1)
	assert.Equal(t, "org.iso.18013.5.1", payload.Namespaces[0].Namespace)
	assert.Equal(t,
		[]string{"family_name", "given_name", "birth_date", "document_number"},
		payload.Namespaces[0].DataElements,
	)
}

func TestBuild_MdocDefaultMediator(t *testing.T) {
	b := credreq.Builder{RelyingPartyID: "localhost"}

	payload, ok := b.Build("sess-1", "nonce-1").(credreq.MdocPayload)
	require.True(t, ok)

	assert.Equal(t, credreq.DefaultMediatorURL, payload.Mediator)
}

func TestBuild_ZeroValueDefaultsToMdoc(t *testing.T) {
	var b credreq.Builder

	_, ok := b.Build("sess-1", "nonce-1").(credreq.MdocPayload)
	assert.True(t, ok)
}

func TestBuild_OpenID4VPShape(t *testing.T) {
	b := credreq.Builder{
		Protocol:       credreq.ProtocolOpenID4VP,
		RelyingPartyID: "verifier.example.com",
	}

	payload, ok := b.Build("sess-1", "nonce-1").(credreq.OpenID4VPPayload)
	require.True(t, ok, "openid4vp builder must return OpenID4VPPayload")

	assert.Equal(t, "openid4vp", payload.Protocol)

	req := payload.Request
	assert.Equal(t, "verifier.example.com", req.ClientID)
	assert.Equal(t, "web-origin", req.ClientIDScheme)
	assert.Equal(t, "vp_token", req.ResponseType)
	assert.Equal(t, "web_message", req.ResponseMode)
	assert.Equal(t, "nonce-1", req.Nonce, "nonce must carry the session challenge")

	pd := req.PresentationDefinition
	assert.Equal(t, "mDL-request-demo", pd.ID)
	require.Len(t, pd.InputDescriptors, 1)

	desc := pd.InputDescriptors[0]
	assert.Equal(t, "org.iso.18013.5.1.mDL", desc.ID)
	assert.Equal(t, []string{"ES256", "ES384", "ES512"}, desc.Format.MsoMdoc.Alg)
	assert.Equal(t, "required", desc.Constraints.LimitDisclosure)

	require.Len(t, desc.Constraints.Fields, 4)
	wantPaths := []string{
		"$['org.iso.18013.5.1']['family_name']",
		"$['org.iso.18013.5.1']['given_name']",
		"$['org.iso.18013.5.1']['birth_date']",
		"$['org.iso.18013.5.1']['document_number']",
	}
	for i, field := range desc.Constraints.Fields {
		assert.Equal(t, []string{wantPaths[i]}, field.Path)
		assert.False(t, field.IntentToRetain, "intent_to_retain must be false for every field")
	}
}

func TestBuild_OpenID4VPWireFormat(t *testing.T) {
	b := credreq.Builder{
		Protocol:       credreq.ProtocolOpenID4VP,
		RelyingPartyID: "localhost",
	}

	raw, err := json.Marshal(b.Build("sess-1", "nonce-1"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	request, ok := decoded["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "nonce-1", request["nonce"])
	assert.Equal(t, "localhost", request["client_id"])
	assert.Equal(t, "web-origin", request["client_id_scheme"])

	pd, ok := request["presentation_definition"].(map[string]any)
	require.True(t, ok)
	descriptors, ok := pd["input_descriptors"].([]any)
	require.True(t, ok)
	require.Len(t, descriptors, 1)

	constraints := descriptors[0].(map[string]any)["constraints"].(map[string]any)
	assert.Equal(t, "required", constraints["limit_disclosure"])

	fields, ok := constraints["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 4)
	for _, f := range fields {
		field := f.(map[string]any)
		assert.Equal(t, false, field["intent_to_retain"])
	}
}

func TestBuild_Pure(t *testing.T) {
	b := credreq.Builder{
		Protocol:       credreq.ProtocolOpenID4VP,
		RelyingPartyID: "verifier.example.com",
	}

	first := b.Build("sess-1", "nonce-1")
	second := b.Build("sess-1", "nonce-1")

	assert.Equal(t, first, second, "rebuilding the same session must yield an identical payload")
}

func TestProtocol_Valid(t *testing.T) {
	assert.True(t, credreq.ProtocolMdoc.Valid())
	assert.True(t, credreq.ProtocolOpenID4VP.Valid())
	assert.False(t, credreq.Protocol("").Valid())
	assert.False(t, credreq.Protocol("saml").Valid())
}
