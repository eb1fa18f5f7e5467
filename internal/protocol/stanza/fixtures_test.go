package stanza

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/model"
	"github.com/stretchr/testify/require"
	"mellium.im/xmpp/jid"
)

var (
	toJID     = jid.MustParse("test-user@test-domain/test-resource")
	fromJID   = jid.MustParse("pubsub.test-domain")
	userJID   = jid.MustParse("test-user@test-domain")
	stanzaID  = "test-stanza-id"
	startTime = time.Date(2017, time.October, 9, 8, 7, 0, 0, time.UTC)
)

func mustID[T any](v T, ok bool) T {
	if !ok {
		panic("fixture identifier rejected")
	}
	return v
}

func fixtureSite() model.Site {
	site, err := model.NewSiteBuilder().
		SetID(42).
		SetDefault(true).
		SetType(model.SiteTypeBTSM).
		SetName("test-site-name").
		Build()
	if err != nil {
		panic(err)
	}
	return site
}

func fixtureParty(number, name string, e164 ...string) model.Party {
	party, err := model.NewPartyBuilder().
		SetNumber(number).
		SetName(name).
		AddE164(e164...).
		Build()
	if err != nil {
		panic(err)
	}
	return party
}

// fixtureCall builds a complete call on interest.
func fixtureCall(id, interest string, state model.CallState, direction model.CallDirection) model.Call {
	called, err := model.NewPartyBuilder().
		SetNumber("6002").
		SetName("Called Party").
		SetDestination("6002@sip").
		AddE164("+441234566002").
		Build()
	if err != nil {
		panic(err)
	}
	return model.NewCallBuilder().
		SetID(mustID(model.CallIDFrom(id))).
		SetSite(fixtureSite()).
		SetProfileID(mustID(model.ProfileIDFrom("test-profile-id"))).
		SetInterestID(mustID(model.InterestIDFrom(interest))).
		SetChanged(model.ChangedState).
		SetState(state).
		SetDirection(direction).
		SetCaller(fixtureParty("6001", "Caller Party", "+441234566001")).
		SetCalled(called).
		SetStartTime(startTime).
		SetDuration(time.Minute).
		AddAction(model.ActionAnswerCall).
		AddAction(model.ActionClearCall).
		MustBuild()
}

func parseXML(t *testing.T, xml string) *etree.Element {
	t.Helper()
	el, err := protocol.DecodeBytes([]byte(xml))
	require.NoError(t, err)
	return el
}

// reparse serializes s and decodes it again, as a peer would see it.
func reparse(t *testing.T, s Stanza) *etree.Element {
	t.Helper()
	xml, err := s.XML()
	require.NoError(t, err)
	return parseXML(t, xml)
}
