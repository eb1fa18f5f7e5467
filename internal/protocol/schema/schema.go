package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Concept names one namespaced part of the wire contract.
type Concept string

// Concepts from the Openlink and XMPP extension contracts.
const (
	Commands       Concept = "commands"
	IOData         Concept = "io-data"
	PubSubEvent    Concept = "pubsub-event"
	Delay          Concept = "delay"
	CallStatus     Concept = "call-status"
	GetProfiles    Concept = "get-profiles"
	GetCallHistory Concept = "get-call-history"
	MakeCall       Concept = "make-call"
)

// Element and attribute names shared across stanza kinds.
const (
	TagCommand    = "command"
	TagIOData     = "iodata"
	TagIn         = "in"
	TagOut        = "out"
	TagEvent      = "event"
	TagItems      = "items"
	TagItem       = "item"
	TagCallStatus = "callstatus"
	TagCall       = "call"
	TagDelay      = "delay"
)

const openlinkPrefix = "http://xmpp.org/protocol/openlink:01:00:00#"

var openlink = mustTable(map[Concept]string{
	Commands:       "http://jabber.org/protocol/commands",
	IOData:         "urn:xmpp:tmp:io-data",
	PubSubEvent:    "http://jabber.org/protocol/pubsub#event",
	Delay:          "urn:xmpp:delay",
	CallStatus:     openlinkPrefix + "call-status",
	GetProfiles:    openlinkPrefix + "get-profiles",
	GetCallHistory: openlinkPrefix + "get-call-history",
	MakeCall:       openlinkPrefix + "make-call",
})

// Table is an immutable concept to namespace URI lookup.
type Table struct {
	uris     map[Concept]string
	concepts map[string]Concept
}

// NewTable copies entries into a Table. URIs must be non-empty and unique.
func NewTable(entries map[Concept]string) (Table, error) {
	t := Table{
		uris:     make(map[Concept]string, len(entries)),
		concepts: make(map[string]Concept, len(entries)),
	}
	for concept, uri := range entries {
		uri = strings.TrimSpace(uri)
		if concept == "" || uri == "" {
			return Table{}, fmt.Errorf("schema: empty namespace entry %q=%q", concept, uri)
		}
		if prev, ok := t.concepts[uri]; ok {
			return Table{}, fmt.Errorf("schema: namespace %q bound to both %q and %q", uri, prev, concept)
		}
		t.uris[concept] = uri
		t.concepts[uri] = concept
	}
	return t, nil
}

func mustTable(entries map[Concept]string) Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Openlink returns the namespace table used by the stanza codec.
func Openlink() Table {
	return openlink
}

// URI returns the namespace for c, or "" when the table has no such concept.
func (t Table) URI(c Concept) string {
	return t.uris[c]
}

func (t Table) Lookup(c Concept) (string, bool) {
	uri, ok := t.uris[c]
	return uri, ok
}

// Concept is the reverse lookup from a namespace URI.
func (t Table) Concept(uri string) (Concept, bool) {
	c, ok := t.concepts[uri]
	return c, ok
}

func (t Table) Concepts() []Concept {
	out := make([]Concept, 0, len(t.uris))
	for c := range t.uris {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
