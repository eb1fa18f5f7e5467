package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danmuck/openlink/internal/inspect"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getProfilesXML = `<iq type="set" id="req-1" to="pubsub.example.com" from="user@example.com/desk">
  <command xmlns="http://jabber.org/protocol/commands" action="execute" node="http://xmpp.org/protocol/openlink:01:00:00#get-profiles">
    <iodata xmlns="urn:xmpp:tmp:io-data" type="input">
      <in><jid>user@example.com</jid></in>
    </iodata>
  </command>
</iq>`

func newTestServer(t *testing.T, cfg inspect.ServiceConfig) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(inspect.NewService(cfg))
}

func post(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/stanzas/inspect", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/xml")
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, inspect.DefaultServiceConfig())
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "inspectd.local", body["service"])
}

func TestInspectConformantStanza(t *testing.T) {
	testlog.Start(t)
	rr := post(newTestServer(t, inspect.DefaultServiceConfig()), getProfilesXML)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var report inspect.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.True(t, report.Conformant)
	assert.Equal(t, "get-profiles request stanza", report.Kind)
	assert.Empty(t, report.Diagnostics)
	assert.Equal(t, "get-profiles request stanza id=req-1 jid=user@example.com", report.Summary)
}

func TestInspectMalformedStanzaReturnsDiagnostics(t *testing.T) {
	testlog.Start(t)
	body := strings.Replace(getProfilesXML, `<in><jid>user@example.com</jid></in>`, `<in/>`, 1)
	rr := post(newTestServer(t, inspect.DefaultServiceConfig()), body)

	require.Equal(t, http.StatusOK, rr.Code)
	var report inspect.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.False(t, report.Conformant)
	assert.Equal(t, []string{"Invalid get-profiles request stanza; missing 'jid' field is mandatory"}, report.Diagnostics)
}

func TestInspectErrorStatuses(t *testing.T) {
	testlog.Start(t)
	cfg := inspect.DefaultServiceConfig()
	cfg.Limits = protocol.Limits{MaxStanzaBytes: 128}
	s := newTestServer(t, cfg)

	cases := []struct {
		name string
		body string
		want int
	}{
		{name: "oversize", body: getProfilesXML, want: http.StatusRequestEntityTooLarge},
		{name: "malformed", body: "<iq", want: http.StatusBadRequest},
		{name: "empty", body: "", want: http.StatusBadRequest},
		{name: "foreign", body: `<presence/>`, want: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := post(s, tc.body)
			assert.Equal(t, tc.want, rr.Code, rr.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, inspect.DefaultServiceConfig())
	post(s, getProfilesXML)

	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "openlink_stanza_inspected_total")
}

func TestInspectRequiresConfiguredToken(t *testing.T) {
	testlog.Start(t)
	cfg := inspect.DefaultServiceConfig()
	cfg.AuthToken = "secret"
	s := newTestServer(t, cfg)

	rr := post(s, getProfilesXML)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/stanzas/inspect", strings.NewReader(getProfilesXML))
	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	health := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestCorsPreflightAllowsAuthorization(t *testing.T) {
	testlog.Start(t)
	cfg := inspect.DefaultServiceConfig()
	cfg.AuthToken = "s3cret"
	s := newTestServer(t, cfg)
	req := httptest.NewRequest(http.MethodOptions, "/v1/stanzas/inspect", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Contains(t, strings.ToLower(rr.Header().Get("Access-Control-Allow-Headers")), "authorization")
}
