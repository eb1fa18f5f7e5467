package stanza

import (
	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/rs/zerolog/log"
)

// Stanza is the read surface shared by every stanza kind.
type Stanza interface {
	Envelope() Envelope
	Description() string
	Element() *etree.Element
	XML() (string, error)
	ParseErrors() []string
}

// rendered holds the document form of a stanza and the problems found while
// parsing it. The element is never handed out directly.
type rendered struct {
	element     *etree.Element
	parseErrors []string
}

// Element returns a copy of the rendered document.
func (r rendered) Element() *etree.Element {
	return r.element.Copy()
}

func (r rendered) XML() (string, error) {
	return protocol.EncodeString(r.element)
}

// ParseErrors lists every problem found when the stanza was parsed, in the
// order encountered. Built stanzas have none.
func (r rendered) ParseErrors() []string {
	return append([]string{}, r.parseErrors...)
}

func buildFailed(description string, err error) {
	log.Debug().Str("stanza", description).Err(err).Msg("stanza build rejected")
}
