package stanza

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/tree"
	"github.com/google/uuid"
	"mellium.im/xmpp/jid"
)

// Kind is the stanza type attribute.
type Kind string

const (
	KindGet    Kind = "get"
	KindSet    Kind = "set"
	KindResult Kind = "result"
	KindError  Kind = "error"
)

const (
	envelopeLabel = "stanza"
	jidShape      = "please supply a valid JID"
)

// Envelope is the transport addressing carried by every stanza.
type Envelope struct {
	to      jid.JID
	hasTo   bool
	from    jid.JID
	hasFrom bool
	id      string
	kind    Kind
}

func (e Envelope) To() (jid.JID, bool) {
	return e.to, e.hasTo
}

func (e Envelope) From() (jid.JID, bool) {
	return e.from, e.hasFrom
}

func (e Envelope) ID() (string, bool) {
	return e.id, e.id != ""
}

func (e Envelope) Kind() Kind {
	return e.kind
}

func (e *Envelope) setTo(to jid.JID) {
	e.to = to
	e.hasTo = true
}

func (e *Envelope) setFrom(from jid.JID) {
	e.from = from
	e.hasFrom = true
}

// NewID returns a fresh correlation id for a stanza.
func NewID() string {
	return uuid.NewString()
}

// envelopePresence records which envelope attributes were found on the wire,
// including ones whose value could not be parsed.
type envelopePresence struct {
	to, from, id bool
}

func (e Envelope) presence() envelopePresence {
	return envelopePresence{to: e.hasTo, from: e.hasFrom, id: e.id != ""}
}

func iqRules(p envelopePresence, kind, expected Kind) []protocol.Requirement {
	return []protocol.Requirement{
		protocol.RequireAttribute("to", p.to, "The stanza 'to' has not been set"),
		protocol.RequireAttribute("from", p.from, "The stanza 'from' has not been set"),
		protocol.RequireAttribute("id", p.id, "The stanza 'id' has not been set"),
		protocol.RequireAttribute("type", kind == expected, fmt.Sprintf("The stanza 'type' must be '%s'", expected)).
			WithDiagnostic("Invalid stanza; missing or incorrect 'type' attribute"),
	}
}

func messageRules(p envelopePresence) []protocol.Requirement {
	return []protocol.Requirement{
		protocol.RequireAttribute("to", p.to, "The stanza 'to' has not been set"),
	}
}

// parseEnvelope reads the addressing attributes of el. Malformed addresses are
// reported here; absence is left to the stanza's envelope rules.
func parseEnvelope(el *etree.Element, d *protocol.Diagnostics) (Envelope, envelopePresence) {
	var env Envelope
	var p envelopePresence
	if raw, ok := tree.Attr(el, "to", false, envelopeLabel, d); ok {
		p.to = true
		if to, err := jid.Parse(raw); err == nil {
			env.setTo(to)
		} else {
			d.Invalid(envelopeLabel, "to", raw, jidShape)
		}
	}
	if raw, ok := tree.Attr(el, "from", false, envelopeLabel, d); ok {
		p.from = true
		if from, err := jid.Parse(raw); err == nil {
			env.setFrom(from)
		} else {
			d.Invalid(envelopeLabel, "from", raw, jidShape)
		}
	}
	if raw, ok := tree.Attr(el, "id", false, envelopeLabel, d); ok {
		p.id = true
		env.id = raw
	}
	if raw, ok := tree.Attr(el, "type", false, envelopeLabel, d); ok {
		env.kind = Kind(raw)
	}
	return env, p
}

func renderEnvelope(tag string, env Envelope) *etree.Element {
	el := etree.NewElement(tag)
	if to, ok := env.To(); ok {
		el.CreateAttr("to", to.String())
	}
	if from, ok := env.From(); ok {
		el.CreateAttr("from", from.String())
	}
	tree.AddAttr(el, "id", env.id)
	tree.AddAttr(el, "type", string(env.kind))
	return el
}

// parseJID reads a required or optional JID child of node.
func parseJID(node *etree.Element, child string, required bool, label string, d *protocol.Diagnostics) (jid.JID, bool, bool) {
	raw, ok := tree.Text(node, child, required, label, d)
	if !ok {
		return jid.JID{}, false, false
	}
	j, err := jid.Parse(raw)
	if err != nil {
		d.Invalid(label, child, raw, jidShape)
		return jid.JID{}, false, true
	}
	return j, true, true
}
