package stanza

import (
	"time"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/model"
	"github.com/danmuck/openlink/internal/protocol/schema"
	"github.com/danmuck/openlink/internal/protocol/tree"
	"mellium.im/xmpp/jid"
)

const (
	getCallHistoryLabel = "get-call-history request stanza"

	// HistoryDateLayout is the wire form of the from/up-to dates.
	HistoryDateLayout = "01/02/2006"
	historyDateShape  = "MM/dd/yyyy"

	tagCallType = "calltype"
	tagFromDate = "fromdate"
	tagUpToDate = "uptodate"
	tagStart    = "start"
	tagCount    = "count"
)

// GetCallHistoryRequest asks for one user's call log, optionally filtered.
type GetCallHistoryRequest struct {
	rendered
	envelope Envelope
	jid      jid.JID
	hasJID   bool
	caller   string
	called   string
	callType model.HistoricalCallType
	fromDate time.Time
	upToDate time.Time
	start    int
	hasStart bool
	count    int
	hasCount bool
}

func (r *GetCallHistoryRequest) Envelope() Envelope {
	return r.envelope
}

func (r *GetCallHistoryRequest) Description() string {
	return getCallHistoryLabel
}

func (r *GetCallHistoryRequest) JID() (jid.JID, bool) {
	return r.jid, r.hasJID
}

func (r *GetCallHistoryRequest) Caller() (string, bool) {
	return r.caller, r.caller != ""
}

func (r *GetCallHistoryRequest) Called() (string, bool) {
	return r.called, r.called != ""
}

func (r *GetCallHistoryRequest) CallType() (model.HistoricalCallType, bool) {
	return r.callType, r.callType.IsValid()
}

func (r *GetCallHistoryRequest) FromDate() (time.Time, bool) {
	return r.fromDate, !r.fromDate.IsZero()
}

func (r *GetCallHistoryRequest) UpToDate() (time.Time, bool) {
	return r.upToDate, !r.upToDate.IsZero()
}

// Start is the 1-based index of the first record to return.
func (r *GetCallHistoryRequest) Start() (int, bool) {
	return r.start, r.hasStart
}

// Count is the maximum number of records to return.
func (r *GetCallHistoryRequest) Count() (int, bool) {
	return r.count, r.hasCount
}

type GetCallHistoryRequestBuilder struct {
	req     GetCallHistoryRequest
	jidSeen bool
}

func NewGetCallHistoryRequestBuilder() *GetCallHistoryRequestBuilder {
	return &GetCallHistoryRequestBuilder{}
}

func (b *GetCallHistoryRequestBuilder) SetTo(to jid.JID) *GetCallHistoryRequestBuilder {
	b.req.envelope.setTo(to)
	return b
}

func (b *GetCallHistoryRequestBuilder) SetFrom(from jid.JID) *GetCallHistoryRequestBuilder {
	b.req.envelope.setFrom(from)
	return b
}

func (b *GetCallHistoryRequestBuilder) SetID(id string) *GetCallHistoryRequestBuilder {
	b.req.envelope.id = id
	return b
}

func (b *GetCallHistoryRequestBuilder) SetJID(user jid.JID) *GetCallHistoryRequestBuilder {
	b.req.jid = user
	b.req.hasJID = true
	return b
}

func (b *GetCallHistoryRequestBuilder) SetCaller(caller string) *GetCallHistoryRequestBuilder {
	b.req.caller = caller
	return b
}

func (b *GetCallHistoryRequestBuilder) SetCalled(called string) *GetCallHistoryRequestBuilder {
	b.req.called = called
	return b
}

func (b *GetCallHistoryRequestBuilder) SetCallType(callType model.HistoricalCallType) *GetCallHistoryRequestBuilder {
	b.req.callType = callType
	return b
}

// SetFromDate keeps only the calendar date of from.
func (b *GetCallHistoryRequestBuilder) SetFromDate(from time.Time) *GetCallHistoryRequestBuilder {
	b.req.fromDate = calendarDate(from)
	return b
}

func (b *GetCallHistoryRequestBuilder) SetUpToDate(upTo time.Time) *GetCallHistoryRequestBuilder {
	b.req.upToDate = calendarDate(upTo)
	return b
}

func (b *GetCallHistoryRequestBuilder) SetStart(start int) *GetCallHistoryRequestBuilder {
	b.req.start = start
	b.req.hasStart = true
	return b
}

func (b *GetCallHistoryRequestBuilder) SetCount(count int) *GetCallHistoryRequestBuilder {
	b.req.count = count
	b.req.hasCount = true
	return b
}

func calendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (b *GetCallHistoryRequestBuilder) rules() []protocol.Requirement {
	return []protocol.Requirement{
		protocol.Require(tagJID, b.req.hasJID || b.jidSeen, "The get-call-history request 'jid' has not been set"),
	}
}

// Build validates the request and renders it. A missing id is generated.
func (b *GetCallHistoryRequestBuilder) Build() (*GetCallHistoryRequest, error) {
	req := b.req
	req.envelope.kind = KindSet
	if req.envelope.id == "" {
		req.envelope.id = NewID()
	}
	rules := append(iqRules(req.envelope.presence(), req.envelope.kind, KindSet), b.rules()...)
	if err := protocol.Enforce(rules); err != nil {
		buildFailed(getCallHistoryLabel, err)
		return nil, err
	}
	req.element = RenderGetCallHistoryRequest(schema.Openlink(), &req)
	return &req, nil
}

func (b *GetCallHistoryRequestBuilder) MustBuild() *GetCallHistoryRequest {
	req, err := b.Build()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *GetCallHistoryRequestBuilder) BuildDiagnostic(d *protocol.Diagnostics) *GetCallHistoryRequest {
	req := b.req
	protocol.Report(getCallHistoryLabel, b.rules(), d)
	req.element = RenderGetCallHistoryRequest(schema.Openlink(), &req)
	req.parseErrors = d.Items()
	return &req
}

func RenderGetCallHistoryRequest(table schema.Table, req *GetCallHistoryRequest) *etree.Element {
	iq := renderEnvelope("iq", req.envelope)
	in := addCommand(table, iq, schema.GetCallHistory, ioInput)
	if req.hasJID {
		in.CreateElement(tagJID).SetText(req.jid.String())
	}
	tree.AddText(in, tagCaller, req.caller)
	tree.AddText(in, tagCalled, req.called)
	if req.callType.IsValid() {
		tree.AddText(in, tagCallType, req.callType.Label())
	}
	tree.AddDate(in, tagFromDate, req.fromDate, HistoryDateLayout)
	tree.AddDate(in, tagUpToDate, req.upToDate, HistoryDateLayout)
	tree.AddInt(in, tagStart, req.start, req.hasStart)
	tree.AddInt(in, tagCount, req.count, req.hasCount)
	return iq
}

// ParseGetCallHistoryRequest reads a get-call-history iq. An unrecognised call
// type is ignored; malformed dates and integers are reported.
func ParseGetCallHistoryRequest(el *etree.Element) *GetCallHistoryRequest {
	table := schema.Openlink()
	d := protocol.NewDiagnostics()
	env, presence := parseEnvelope(el, d)
	protocol.Report(envelopeLabel, iqRules(presence, env.kind, KindSet), d)

	b := NewGetCallHistoryRequestBuilder()
	b.req.envelope = env
	in := commandPayload(table, el, ioInput)
	user, ok, seen := parseJID(in, tagJID, false, getCallHistoryLabel, d)
	if ok {
		b.SetJID(user)
	}
	b.jidSeen = seen
	if caller, ok := tree.Text(in, tagCaller, false, getCallHistoryLabel, d); ok {
		b.SetCaller(caller)
	}
	if called, ok := tree.Text(in, tagCalled, false, getCallHistoryLabel, d); ok {
		b.SetCalled(called)
	}
	if raw, ok := tree.Text(in, tagCallType, false, getCallHistoryLabel, d); ok {
		if callType, ok := model.HistoricalCallTypeFrom(raw); ok {
			b.SetCallType(callType)
		}
	}
	if from, ok := tree.Date(in, tagFromDate, HistoryDateLayout, historyDateShape, false, getCallHistoryLabel, d); ok {
		b.SetFromDate(from)
	}
	if upTo, ok := tree.Date(in, tagUpToDate, HistoryDateLayout, historyDateShape, false, getCallHistoryLabel, d); ok {
		b.SetUpToDate(upTo)
	}
	if start, ok := tree.Int(in, tagStart, false, getCallHistoryLabel, d); ok {
		b.SetStart(start)
	}
	if count, ok := tree.Int(in, tagCount, false, getCallHistoryLabel, d); ok {
		b.SetCount(count)
	}
	return b.BuildDiagnostic(d)
}
