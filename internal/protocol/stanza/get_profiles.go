package stanza

import (
	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/schema"
	"mellium.im/xmpp/jid"
)

const (
	getProfilesLabel = "get-profiles request stanza"
	tagJID           = "jid"
)

// GetProfilesRequest asks the server for the profiles of one user.
type GetProfilesRequest struct {
	rendered
	envelope Envelope
	jid      jid.JID
	hasJID   bool
}

func (r *GetProfilesRequest) Envelope() Envelope {
	return r.envelope
}

func (r *GetProfilesRequest) Description() string {
	return getProfilesLabel
}

// JID is the user whose profiles are requested.
func (r *GetProfilesRequest) JID() (jid.JID, bool) {
	return r.jid, r.hasJID
}

type GetProfilesRequestBuilder struct {
	req GetProfilesRequest
	// jidSeen marks a jid that was present on the wire but malformed.
	jidSeen bool
}

func NewGetProfilesRequestBuilder() *GetProfilesRequestBuilder {
	return &GetProfilesRequestBuilder{}
}

func (b *GetProfilesRequestBuilder) SetTo(to jid.JID) *GetProfilesRequestBuilder {
	b.req.envelope.setTo(to)
	return b
}

func (b *GetProfilesRequestBuilder) SetFrom(from jid.JID) *GetProfilesRequestBuilder {
	b.req.envelope.setFrom(from)
	return b
}

func (b *GetProfilesRequestBuilder) SetID(id string) *GetProfilesRequestBuilder {
	b.req.envelope.id = id
	return b
}

func (b *GetProfilesRequestBuilder) SetJID(user jid.JID) *GetProfilesRequestBuilder {
	b.req.jid = user
	b.req.hasJID = true
	return b
}

func (b *GetProfilesRequestBuilder) rules() []protocol.Requirement {
	return []protocol.Requirement{
		protocol.Require(tagJID, b.req.hasJID || b.jidSeen, "The get-profiles request 'jid' has not been set"),
	}
}

// Build validates the request and renders it. A missing id is generated.
func (b *GetProfilesRequestBuilder) Build() (*GetProfilesRequest, error) {
	req := b.req
	req.envelope.kind = KindSet
	if req.envelope.id == "" {
		req.envelope.id = NewID()
	}
	rules := append(iqRules(req.envelope.presence(), req.envelope.kind, KindSet), b.rules()...)
	if err := protocol.Enforce(rules); err != nil {
		buildFailed(getProfilesLabel, err)
		return nil, err
	}
	req.element = RenderGetProfilesRequest(schema.Openlink(), &req)
	return &req, nil
}

func (b *GetProfilesRequestBuilder) MustBuild() *GetProfilesRequest {
	req, err := b.Build()
	if err != nil {
		panic(err)
	}
	return req
}

// BuildDiagnostic reports the missing request fields to d and returns the
// partial request, rendered as far as it goes.
func (b *GetProfilesRequestBuilder) BuildDiagnostic(d *protocol.Diagnostics) *GetProfilesRequest {
	req := b.req
	protocol.Report(getProfilesLabel, b.rules(), d)
	req.element = RenderGetProfilesRequest(schema.Openlink(), &req)
	req.parseErrors = d.Items()
	return &req
}

// RenderGetProfilesRequest writes req as an iq element.
func RenderGetProfilesRequest(table schema.Table, req *GetProfilesRequest) *etree.Element {
	iq := renderEnvelope("iq", req.envelope)
	in := addCommand(table, iq, schema.GetProfiles, ioInput)
	if req.hasJID {
		in.CreateElement(tagJID).SetText(req.jid.String())
	}
	return iq
}

// ParseGetProfilesRequest reads a get-profiles iq. It never fails; problems
// are listed by ParseErrors.
func ParseGetProfilesRequest(el *etree.Element) *GetProfilesRequest {
	table := schema.Openlink()
	d := protocol.NewDiagnostics()
	env, presence := parseEnvelope(el, d)
	protocol.Report(envelopeLabel, iqRules(presence, env.kind, KindSet), d)

	b := NewGetProfilesRequestBuilder()
	b.req.envelope = env
	in := commandPayload(table, el, ioInput)
	user, ok, seen := parseJID(in, tagJID, false, getProfilesLabel, d)
	if ok {
		b.SetJID(user)
	}
	b.jidSeen = seen
	return b.BuildDiagnostic(d)
}
