package stanza

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/model"
	"github.com/danmuck/openlink/internal/protocol/schema"
	"github.com/danmuck/openlink/internal/protocol/tree"
	"mellium.im/xmpp/jid"
)

const (
	callStatusLabel = "call status"
	attrNode        = "node"
	attrStamp       = "stamp"
)

// CallStatusMessage is the pubsub event published when calls on an interest
// change.
type CallStatusMessage struct {
	rendered
	envelope Envelope
	node     model.PubSubNodeID
	item     model.ItemID
	busy     bool
	hasBusy  bool
	delay    time.Time
	calls    []model.Call
}

func (m *CallStatusMessage) Envelope() Envelope {
	return m.envelope
}

func (m *CallStatusMessage) Description() string {
	return callStatusLabel
}

func (m *CallStatusMessage) PubSubNodeID() (model.PubSubNodeID, bool) {
	return m.node, !m.node.IsZero()
}

func (m *CallStatusMessage) ItemID() (model.ItemID, bool) {
	return m.item, !m.item.IsZero()
}

// Busy reports whether the user is busy on the interest.
func (m *CallStatusMessage) Busy() (bool, bool) {
	return m.busy, m.hasBusy
}

// Delay is the time the event was originally published, when delivered late.
func (m *CallStatusMessage) Delay() (time.Time, bool) {
	return m.delay, !m.delay.IsZero()
}

func (m *CallStatusMessage) Calls() []model.Call {
	return append([]model.Call(nil), m.calls...)
}

type CallStatusMessageBuilder struct {
	msg CallStatusMessage
}

func NewCallStatusMessageBuilder() *CallStatusMessageBuilder {
	return &CallStatusMessageBuilder{}
}

func (b *CallStatusMessageBuilder) SetTo(to jid.JID) *CallStatusMessageBuilder {
	b.msg.envelope.setTo(to)
	return b
}

func (b *CallStatusMessageBuilder) SetFrom(from jid.JID) *CallStatusMessageBuilder {
	b.msg.envelope.setFrom(from)
	return b
}

func (b *CallStatusMessageBuilder) SetID(id string) *CallStatusMessageBuilder {
	b.msg.envelope.id = id
	return b
}

func (b *CallStatusMessageBuilder) SetPubSubNodeID(node model.PubSubNodeID) *CallStatusMessageBuilder {
	b.msg.node = node
	return b
}

func (b *CallStatusMessageBuilder) SetItemID(item model.ItemID) *CallStatusMessageBuilder {
	b.msg.item = item
	return b
}

// SetBusy overrides the busy flag otherwise derived from the calls.
func (b *CallStatusMessageBuilder) SetBusy(busy bool) *CallStatusMessageBuilder {
	b.msg.busy = busy
	b.msg.hasBusy = true
	return b
}

func (b *CallStatusMessageBuilder) SetDelay(stamp time.Time) *CallStatusMessageBuilder {
	b.msg.delay = stamp
	return b
}

func (b *CallStatusMessageBuilder) AddCall(call model.Call) *CallStatusMessageBuilder {
	b.msg.calls = append(b.msg.calls, call)
	return b
}

func (b *CallStatusMessageBuilder) rules() []protocol.Requirement {
	return []protocol.Requirement{
		protocol.RequireAttribute(attrNode, !b.msg.node.IsZero(), "The stanza 'pubSubNodeId' has not been set"),
	}
}

// checkNode returns an invariant error for the first call whose interest is
// published on a different node.
func (b *CallStatusMessageBuilder) checkNode() error {
	for _, call := range b.msg.calls {
		interest, ok := call.InterestID()
		if !ok || interest.PubSubNodeID() == b.msg.node {
			continue
		}
		id, _ := call.ID()
		return protocol.InvariantError(fmt.Sprintf("The call with id '%s' is not on this pubsub node", id))
	}
	return nil
}

func (b *CallStatusMessageBuilder) snapshot() CallStatusMessage {
	msg := b.msg
	msg.calls = append([]model.Call(nil), b.msg.calls...)
	return msg
}

// Build validates the message and renders it. Unless SetBusy was called the
// busy flag is derived from the calls.
func (b *CallStatusMessageBuilder) Build() (*CallStatusMessage, error) {
	msg := b.snapshot()
	rules := append(messageRules(msg.envelope.presence()), b.rules()...)
	err := protocol.Enforce(rules)
	if err == nil {
		err = b.checkNode()
	}
	if err != nil {
		buildFailed(callStatusLabel, err)
		return nil, err
	}
	if !msg.hasBusy {
		msg.busy, msg.hasBusy = model.AnyBusy(msg.calls)
	}
	msg.element = RenderCallStatusMessage(schema.Openlink(), &msg)
	return &msg, nil
}

func (b *CallStatusMessageBuilder) MustBuild() *CallStatusMessage {
	msg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return msg
}

// BuildDiagnostic reports missing fields to d. The node invariant is only
// enforced by Build.
func (b *CallStatusMessageBuilder) BuildDiagnostic(d *protocol.Diagnostics) *CallStatusMessage {
	msg := b.snapshot()
	protocol.Report(callStatusLabel, b.rules(), d)
	msg.element = RenderCallStatusMessage(schema.Openlink(), &msg)
	msg.parseErrors = d.Items()
	return &msg
}

func RenderCallStatusMessage(table schema.Table, msg *CallStatusMessage) *etree.Element {
	el := renderEnvelope("message", msg.envelope)
	event := tree.AddNamespaced(el, schema.TagEvent, table.URI(schema.PubSubEvent))
	items := event.CreateElement(schema.TagItems)
	tree.AddAttr(items, attrNode, msg.node.String())
	item := items.CreateElement(schema.TagItem)
	tree.AddAttr(item, "id", msg.item.String())
	renderCallStatus(table, item, msg.calls, msg.busy, msg.hasBusy)
	if !msg.delay.IsZero() {
		delay := tree.AddNamespaced(el, schema.TagDelay, table.URI(schema.Delay))
		delay.CreateAttr(attrStamp, tree.FormatInstant(msg.delay))
	}
	return el
}

// ParseCallStatusMessage reads a call status event message.
func ParseCallStatusMessage(el *etree.Element) *CallStatusMessage {
	table := schema.Openlink()
	d := protocol.NewDiagnostics()
	env, presence := parseEnvelope(el, d)
	protocol.Report(envelopeLabel, messageRules(presence), d)

	b := NewCallStatusMessageBuilder()
	b.msg.envelope = env
	event := tree.ChildNS(el, schema.TagEvent, table.URI(schema.PubSubEvent))
	items := tree.Descend(event, schema.TagItems)
	if raw, ok := tree.Attr(items, attrNode, false, callStatusLabel, d); ok {
		node, _ := model.PubSubNodeIDFrom(raw)
		b.SetPubSubNodeID(node)
	}
	item := tree.Descend(items, schema.TagItem)
	if raw, ok := tree.Attr(item, "id", false, callStatusLabel, d); ok {
		id, _ := model.ItemIDFrom(raw)
		b.SetItemID(id)
	}
	status := tree.ChildNS(item, schema.TagCallStatus, table.URI(schema.CallStatus))
	calls, busy, hasBusy := parseCallStatus(status, callStatusLabel, d)
	for _, call := range calls {
		b.AddCall(call)
	}
	if hasBusy {
		b.SetBusy(busy)
	}
	delay := tree.ChildNS(el, schema.TagDelay, table.URI(schema.Delay))
	if stamp, ok := tree.AttrInstant(delay, attrStamp, false, callStatusLabel, d); ok {
		b.SetDelay(stamp)
	}
	return b.BuildDiagnostic(d)
}
