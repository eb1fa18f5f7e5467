package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/model"
	"github.com/danmuck/openlink/internal/protocol/stanza"
	"github.com/danmuck/openlink/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mellium.im/xmpp/jid"
)

func builtCallStatus(t *testing.T) string {
	t.Helper()
	interest, _ := model.InterestIDFrom("interest-1")
	callID, _ := model.CallIDFrom("CALL-1")
	profile, _ := model.ProfileIDFrom("profile-1")
	call := model.NewCallBuilder().
		SetID(callID).
		SetProfileID(profile).
		SetInterestID(interest).
		SetState(model.CallStateEstablished).
		SetDirection(model.CallDirectionIncoming).
		MustBuild()
	msg := stanza.NewCallStatusMessageBuilder().
		SetTo(jid.MustParse("user@example.com")).
		SetFrom(jid.MustParse("pubsub.example.com")).
		SetPubSubNodeID(interest.PubSubNodeID()).
		AddCall(call).
		MustBuild()
	xml, err := msg.XML()
	require.NoError(t, err)
	return xml
}

func TestInspectRenderedStanzaIsConformant(t *testing.T) {
	testlog.Start(t)
	svc := NewService(DefaultServiceConfig())

	report, err := svc.InspectBytes([]byte(builtCallStatus(t)))
	require.NoError(t, err)
	assert.Equal(t, "call status", report.Kind)
	assert.True(t, report.Conformant)
	assert.Empty(t, report.Diagnostics)
	assert.Equal(t, "call status node=interest-1 calls=1 busy=true", report.Summary)
}

func TestInspectReportsDiagnostics(t *testing.T) {
	testlog.Start(t)
	svc := NewService(DefaultServiceConfig())

	report, err := svc.Inspect(strings.NewReader(`<iq type="set">
  <command xmlns="http://jabber.org/protocol/commands" node="http://xmpp.org/protocol/openlink:01:00:00#get-profiles"/>
</iq>`))
	require.NoError(t, err)
	assert.Equal(t, "get-profiles request stanza", report.Kind)
	assert.False(t, report.Conformant)
	assert.Equal(t, []string{
		"Invalid stanza; missing 'to' attribute is mandatory",
		"Invalid stanza; missing 'from' attribute is mandatory",
		"Invalid stanza; missing 'id' attribute is mandatory",
		"Invalid get-profiles request stanza; missing 'jid' field is mandatory",
	}, report.Diagnostics)
}

func TestInspectWireFailures(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultServiceConfig()
	cfg.Limits = protocol.Limits{MaxStanzaBytes: 64}
	svc := NewService(cfg)

	_, err := svc.InspectBytes([]byte(builtCallStatus(t)))
	assert.True(t, errors.Is(err, protocol.ErrStanzaTooLarge))

	_, err = svc.InspectBytes([]byte("<message"))
	assert.True(t, errors.Is(err, protocol.ErrMalformedXML))

	_, err = svc.InspectBytes([]byte("  "))
	assert.True(t, errors.Is(err, protocol.ErrEmptyStanza))

	_, err = svc.InspectBytes([]byte(`<presence/>`))
	assert.True(t, errors.Is(err, stanza.ErrUnknownStanza))
}

func TestNewServiceDefaultsLimits(t *testing.T) {
	testlog.Start(t)
	svc := NewService(ServiceConfig{Addr: ":0"})
	assert.Equal(t, protocol.DefaultLimits(), svc.Config().Limits)
}

func TestServiceConfigValidate(t *testing.T) {
	testlog.Start(t)
	assert.NoError(t, DefaultServiceConfig().Validate())

	cfg := DefaultServiceConfig()
	cfg.Addr = " "
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidAddr)

	cfg = DefaultServiceConfig()
	cfg.Limits.MaxStanzaBytes = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLimits)
}
