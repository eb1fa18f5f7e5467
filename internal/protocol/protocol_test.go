package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/openlink/internal/testutil/testlog"
)

func TestEnforceStopsAtFirstViolation(t *testing.T) {
	testlog.Start(t)
	reqs := []Requirement{
		Require("id", true, "The call 'id' has not been set"),
		Require("profile", false, "The call 'profile' has not been set"),
		Require("interest", false, "The call 'interest' has not been set"),
	}
	err := Enforce(reqs)
	if err == nil {
		t.Fatalf("expected error")
	}
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected BuildError, got %T", err)
	}
	if be.Field != "profile" || be.Error() != "The call 'profile' has not been set" {
		t.Fatalf("unexpected build error: %+v", be)
	}
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField in chain")
	}
}

func TestEnforceAllPresent(t *testing.T) {
	testlog.Start(t)
	if err := Enforce([]Requirement{Require("id", true, "unused")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Enforce(nil); err != nil {
		t.Fatalf("unexpected error on empty rules: %v", err)
	}
}

func TestReportCollectsEveryViolationInOrder(t *testing.T) {
	testlog.Start(t)
	d := NewDiagnostics()
	Report("make-call result stanza", []Requirement{
		Require("id", false, ""),
		RequireAttribute("node", false, ""),
		Require("state", true, ""),
		Require("calls", false, "").WithDiagnostic("Invalid make-call result stanza; missing or invalid calls"),
	}, d)

	want := []string{
		"Invalid make-call result stanza; missing 'id' field is mandatory",
		"Invalid make-call result stanza; missing 'node' attribute is mandatory",
		"Invalid make-call result stanza; missing or invalid calls",
	}
	got := d.Items()
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("diagnostic[%d] got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestDiagnosticsInvalidShape(t *testing.T) {
	testlog.Start(t)
	d := NewDiagnostics()
	d.Invalid("get-call-history request", "count", "ten", "please supply an integer")
	if d.Len() != 1 || d.Items()[0] != "Invalid get-call-history request; invalid 'count' 'ten'; please supply an integer" {
		t.Fatalf("unexpected diagnostics: %v", d.Items())
	}
}

func TestNilDiagnosticsDiscards(t *testing.T) {
	testlog.Start(t)
	var d *Diagnostics
	d.MissingField("stanza", "to")
	if !d.Empty() || len(d.Items()) != 0 {
		t.Fatalf("nil diagnostics should stay empty")
	}
}

func TestDiagnosticsItemsIsACopy(t *testing.T) {
	testlog.Start(t)
	d := NewDiagnostics()
	d.Addf("first")
	items := d.Items()
	items[0] = "changed"
	if d.Items()[0] != "first" {
		t.Fatalf("Items must not expose internal storage")
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	testlog.Start(t)
	raw := `<iq type="set" id="id-1"><command xmlns="http://jabber.org/protocol/commands" node="n"/></iq>`
	el, err := Decode(strings.NewReader(raw), DefaultLimits())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if el.Tag != "iq" || el.SelectAttrValue("id", "") != "id-1" {
		t.Fatalf("unexpected root: %s", el.Tag)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, el); err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if again.SelectElement("command") == nil {
		t.Fatalf("round-trip lost command child: %s", buf.String())
	}
}

func TestDecodeTooLarge(t *testing.T) {
	testlog.Start(t)
	raw := `<message to="a@b"><body>` + strings.Repeat("x", 64) + `</body></message>`
	_, err := Decode(strings.NewReader(raw), Limits{MaxStanzaBytes: 32})
	if !errors.Is(err, ErrStanzaTooLarge) {
		t.Fatalf("expected ErrStanzaTooLarge, got %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	testlog.Start(t)
	_, err := DecodeBytes([]byte(`<iq><command></iq>`))
	if !errors.Is(err, ErrMalformedXML) {
		t.Fatalf("expected ErrMalformedXML, got %v", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	testlog.Start(t)
	_, err := Decode(strings.NewReader("  \n"), DefaultLimits())
	if !errors.Is(err, ErrEmptyStanza) {
		t.Fatalf("expected ErrEmptyStanza, got %v", err)
	}
	if err := Encode(&bytes.Buffer{}, nil); !errors.Is(err, ErrEmptyStanza) {
		t.Fatalf("expected ErrEmptyStanza for nil element, got %v", err)
	}
}
