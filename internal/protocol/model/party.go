package model

import "github.com/danmuck/openlink/internal/protocol"

// Party is the caller or called side of a call.
type Party struct {
	number      string
	name        string
	destination string
	e164        []string
}

func (p Party) Number() (string, bool) {
	return p.number, p.number != ""
}

func (p Party) Name() (string, bool) {
	return p.name, p.name != ""
}

func (p Party) Destination() (string, bool) {
	return p.destination, p.destination != ""
}

// E164 returns the party's E.164 numbers in wire order.
func (p Party) E164() []string {
	out := make([]string, len(p.e164))
	copy(out, p.e164)
	return out
}

func (p Party) IsZero() bool {
	return p.number == "" && p.name == "" && p.destination == "" && len(p.e164) == 0
}

type PartyBuilder struct {
	party Party
}

func NewPartyBuilder() *PartyBuilder {
	return &PartyBuilder{}
}

func (b *PartyBuilder) SetNumber(number string) *PartyBuilder {
	b.party.number = number
	return b
}

func (b *PartyBuilder) SetName(name string) *PartyBuilder {
	b.party.name = name
	return b
}

func (b *PartyBuilder) SetDestination(destination string) *PartyBuilder {
	b.party.destination = destination
	return b
}

// AddE164 appends non-empty numbers, keeping their order.
func (b *PartyBuilder) AddE164(numbers ...string) *PartyBuilder {
	for _, n := range numbers {
		if n != "" {
			b.party.e164 = append(b.party.e164, n)
		}
	}
	return b
}

func (b *PartyBuilder) rules() []protocol.Requirement {
	return nil
}

func (b *PartyBuilder) build() Party {
	p := b.party
	p.e164 = append([]string(nil), b.party.e164...)
	return p
}

func (b *PartyBuilder) Build() (Party, error) {
	if err := protocol.Enforce(b.rules()); err != nil {
		return Party{}, err
	}
	return b.build(), nil
}

func (b *PartyBuilder) BuildDiagnostic(label string, d *protocol.Diagnostics) Party {
	protocol.Report(label, b.rules(), d)
	return b.build()
}
