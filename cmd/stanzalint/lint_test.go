package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/openlink/internal/config"
	"github.com/danmuck/openlink/internal/testutil/testlog"
)

const goodStanza = `<iq type="set" id="req-1" to="pubsub.example.com" from="user@example.com">
  <command xmlns="http://jabber.org/protocol/commands" node="http://xmpp.org/protocol/openlink:01:00:00#get-profiles">
    <iodata xmlns="urn:xmpp:tmp:io-data" type="input"><in><jid>user@example.com</jid></in></iodata>
  </command>
</iq>`

const badStanza = `<message to="user@example.com">
  <event xmlns="http://jabber.org/protocol/pubsub#event"><items/></event>
  <delay xmlns="urn:xmpp:delay" stamp="soon"/>
</message>`

func writeFiles(t *testing.T, files map[string]string) map[string]string {
	t.Helper()
	dir := t.TempDir()
	paths := make(map[string]string, len(files))
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		paths[name] = path
	}
	return paths
}

func TestLintTextOutput(t *testing.T) {
	testlog.Start(t)
	paths := writeFiles(t, map[string]string{"good.xml": goodStanza, "bad.xml": badStanza})

	var out bytes.Buffer
	failed, err := newLinter(config.DefaultLintConfig()).run(&out, []string{paths["good.xml"], paths["bad.xml"]})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !failed {
		t.Fatalf("expected failure for non-conformant stanza")
	}
	text := out.String()
	if !strings.Contains(text, "good.xml: get-profiles request stanza id=req-1 jid=user@example.com: ok") {
		t.Fatalf("missing good result:\n%s", text)
	}
	if !strings.Contains(text, "bad.xml: call status calls=0: 2 problem(s)") {
		t.Fatalf("missing bad result:\n%s", text)
	}
	if !strings.Contains(text, "Invalid call status; missing 'node' attribute is mandatory") {
		t.Fatalf("missing diagnostic:\n%s", text)
	}
}

func TestLintIgnoreAndKinds(t *testing.T) {
	testlog.Start(t)
	paths := writeFiles(t, map[string]string{"bad.xml": badStanza})

	cfg := config.DefaultLintConfig()
	cfg.Ignore = []string{"'stamp'", "'node'"}
	var out bytes.Buffer
	failed, err := newLinter(cfg).run(&out, []string{paths["bad.xml"]})
	if err != nil || failed {
		t.Fatalf("expected ignored diagnostics to pass, failed=%v err=%v", failed, err)
	}

	cfg = config.DefaultLintConfig()
	cfg.Kinds = []string{"make-call result stanza"}
	out.Reset()
	failed, err = newLinter(cfg).run(&out, []string{paths["bad.xml"]})
	if err != nil || failed || out.Len() != 0 {
		t.Fatalf("expected unselected kind to be skipped, failed=%v err=%v out=%q", failed, err, out.String())
	}
}

func TestLintJSONOutputAndErrors(t *testing.T) {
	testlog.Start(t)
	paths := writeFiles(t, map[string]string{"broken.xml": "<iq", "good.xml": goodStanza})

	cfg := config.DefaultLintConfig()
	cfg.Format = config.FormatJSON
	var out bytes.Buffer
	failed, err := newLinter(cfg).run(&out, []string{paths["good.xml"], paths["broken.xml"], filepath.Join(t.TempDir(), "absent.xml")})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !failed {
		t.Fatalf("expected failure for unreadable files")
	}

	var results []fileResult
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out.String())
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Report == nil || !results[0].Report.Conformant {
		t.Fatalf("expected conformant first result: %+v", results[0])
	}
	if results[1].Error == "" || results[2].Error == "" {
		t.Fatalf("expected errors for broken and absent files: %+v", results[1:])
	}
}
