package stanza

import (
	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/model"
	"github.com/danmuck/openlink/internal/protocol/schema"
	"github.com/danmuck/openlink/internal/protocol/tree"
	"mellium.im/xmpp/jid"
)

const makeCallLabel = "make-call result stanza"

// MakeCallResult answers a make-call request with the call(s) it started.
type MakeCallResult struct {
	rendered
	envelope Envelope
	calls    []model.Call
}

func (r *MakeCallResult) Envelope() Envelope {
	return r.envelope
}

func (r *MakeCallResult) Description() string {
	return makeCallLabel
}

func (r *MakeCallResult) Calls() []model.Call {
	return append([]model.Call(nil), r.calls...)
}

type MakeCallResultBuilder struct {
	res MakeCallResult
}

func NewMakeCallResultBuilder() *MakeCallResultBuilder {
	return &MakeCallResultBuilder{}
}

func (b *MakeCallResultBuilder) SetTo(to jid.JID) *MakeCallResultBuilder {
	b.res.envelope.setTo(to)
	return b
}

func (b *MakeCallResultBuilder) SetFrom(from jid.JID) *MakeCallResultBuilder {
	b.res.envelope.setFrom(from)
	return b
}

// SetID should carry the id of the request being answered.
func (b *MakeCallResultBuilder) SetID(id string) *MakeCallResultBuilder {
	b.res.envelope.id = id
	return b
}

func (b *MakeCallResultBuilder) AddCall(call model.Call) *MakeCallResultBuilder {
	b.res.calls = append(b.res.calls, call)
	return b
}

func (b *MakeCallResultBuilder) rules() []protocol.Requirement {
	return []protocol.Requirement{
		protocol.Require("calls", len(b.res.calls) > 0, "The make-call result has no calls").
			WithDiagnostic("Invalid make-call result stanza; missing or invalid calls"),
	}
}

func (b *MakeCallResultBuilder) snapshot() MakeCallResult {
	res := b.res
	res.calls = append([]model.Call(nil), b.res.calls...)
	return res
}

func (b *MakeCallResultBuilder) Build() (*MakeCallResult, error) {
	res := b.snapshot()
	res.envelope.kind = KindResult
	if res.envelope.id == "" {
		res.envelope.id = NewID()
	}
	rules := append(iqRules(res.envelope.presence(), res.envelope.kind, KindResult), b.rules()...)
	if err := protocol.Enforce(rules); err != nil {
		buildFailed(makeCallLabel, err)
		return nil, err
	}
	res.element = RenderMakeCallResult(schema.Openlink(), &res)
	return &res, nil
}

func (b *MakeCallResultBuilder) MustBuild() *MakeCallResult {
	res, err := b.Build()
	if err != nil {
		panic(err)
	}
	return res
}

func (b *MakeCallResultBuilder) BuildDiagnostic(d *protocol.Diagnostics) *MakeCallResult {
	res := b.snapshot()
	protocol.Report(makeCallLabel, b.rules(), d)
	res.element = RenderMakeCallResult(schema.Openlink(), &res)
	res.parseErrors = d.Items()
	return &res
}

func RenderMakeCallResult(table schema.Table, res *MakeCallResult) *etree.Element {
	iq := renderEnvelope("iq", res.envelope)
	out := addCommand(table, iq, schema.MakeCall, ioOutput)
	renderCallStatus(table, out, res.calls, false, false)
	return iq
}

// ParseMakeCallResult reads a make-call result iq. Every <call> found is kept,
// even one with missing fields.
func ParseMakeCallResult(el *etree.Element) *MakeCallResult {
	table := schema.Openlink()
	d := protocol.NewDiagnostics()
	env, presence := parseEnvelope(el, d)
	protocol.Report(envelopeLabel, iqRules(presence, env.kind, KindResult), d)

	b := NewMakeCallResultBuilder()
	b.res.envelope = env
	out := commandPayload(table, el, ioOutput)
	status := tree.ChildNS(out, schema.TagCallStatus, table.URI(schema.CallStatus))
	calls, _, _ := parseCallStatus(status, makeCallLabel, d)
	for _, call := range calls {
		b.AddCall(call)
	}
	return b.BuildDiagnostic(d)
}
