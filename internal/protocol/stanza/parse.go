package stanza

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/schema"
	"github.com/danmuck/openlink/internal/protocol/tree"
	"github.com/rs/zerolog/log"
)

var ErrUnknownStanza = errors.New("stanza: not an Openlink stanza")

// Parse routes el to the parser for its stanza kind. It only fails when el is
// not an Openlink stanza at all; everything else is reported by ParseErrors.
func Parse(el *etree.Element) (Stanza, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: empty document", ErrUnknownStanza)
	}
	s, err := route(schema.Openlink(), el)
	if err != nil {
		log.Debug().Str("element", el.Tag).Err(err).Msg("stanza.Parse")
		return nil, err
	}
	log.Debug().
		Str("stanza", s.Description()).
		Int("diagnostics", len(s.ParseErrors())).
		Msg("stanza.Parse")
	return s, nil
}

// ParseBytes decodes data and parses the resulting stanza.
func ParseBytes(data []byte) (Stanza, error) {
	el, err := protocol.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return Parse(el)
}

func route(table schema.Table, el *etree.Element) (Stanza, error) {
	switch el.Tag {
	case "iq":
		node, ok := commandNode(table, el)
		if !ok {
			return nil, fmt.Errorf("%w: iq without an Openlink command", ErrUnknownStanza)
		}
		kind := Kind(el.SelectAttrValue("type", ""))
		switch {
		case node == schema.GetProfiles && kind != KindResult:
			return ParseGetProfilesRequest(el), nil
		case node == schema.GetCallHistory && kind != KindResult:
			return ParseGetCallHistoryRequest(el), nil
		case node == schema.MakeCall && kind != KindSet:
			return ParseMakeCallResult(el), nil
		}
		return nil, fmt.Errorf("%w: unsupported %s %s", ErrUnknownStanza, node, kind)
	case "message":
		event := tree.ChildNS(el, schema.TagEvent, table.URI(schema.PubSubEvent))
		if event == nil {
			return nil, fmt.Errorf("%w: message without a pubsub event", ErrUnknownStanza)
		}
		return ParseCallStatusMessage(el), nil
	}
	return nil, fmt.Errorf("%w: <%s>", ErrUnknownStanza, el.Tag)
}
