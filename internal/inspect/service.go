package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/openlink/internal/observability"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/danmuck/openlink/internal/protocol/stanza"
	"github.com/rs/zerolog/log"
)

// Report is the conformance verdict for one document.
type Report struct {
	Kind        string   `json:"kind"`
	Conformant  bool     `json:"conformant"`
	Diagnostics []string `json:"diagnostics"`
	Summary     string   `json:"summary"`
}

// Service inspects documents. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	cfg ServiceConfig
}

func NewService(cfg ServiceConfig) *Service {
	if cfg.Limits.MaxStanzaBytes <= 0 {
		cfg.Limits = protocol.DefaultLimits()
	}
	return &Service{cfg: cfg}
}

func (s *Service) Config() ServiceConfig {
	return s.cfg
}

// Inspect decodes one document from r and reports on it. Errors are wire-level
// failures (oversize, malformed XML) or stanza.ErrUnknownStanza; codec
// problems are returned as diagnostics on the report.
func (s *Service) Inspect(r io.Reader) (Report, error) {
	el, err := protocol.Decode(r, s.cfg.Limits)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		log.Debug().Str("service", s.cfg.ServiceID).Err(err).Msg("inspect rejected document")
		return Report{}, err
	}
	st, err := stanza.Parse(el)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return Report{}, err
	}
	report := NewReport(st)
	observability.RecordInspection(report.Kind, len(report.Diagnostics))
	log.Debug().
		Str("service", s.cfg.ServiceID).
		Str("kind", report.Kind).
		Bool("conformant", report.Conformant).
		Int("diagnostics", len(report.Diagnostics)).
		Msg("inspect")
	return report, nil
}

func (s *Service) InspectBytes(data []byte) (Report, error) {
	return s.Inspect(bytes.NewReader(data))
}

// NewReport describes an already-parsed stanza.
func NewReport(st stanza.Stanza) Report {
	diagnostics := st.ParseErrors()
	return Report{
		Kind:        st.Description(),
		Conformant:  len(diagnostics) == 0,
		Diagnostics: diagnostics,
		Summary:     Summarize(st),
	}
}

// Summarize renders a one-line human description of st.
func Summarize(st stanza.Stanza) string {
	var b strings.Builder
	b.WriteString(st.Description())
	if id, ok := st.Envelope().ID(); ok {
		fmt.Fprintf(&b, " id=%s", id)
	}
	switch v := st.(type) {
	case *stanza.GetProfilesRequest:
		if user, ok := v.JID(); ok {
			fmt.Fprintf(&b, " jid=%s", user)
		}
	case *stanza.GetCallHistoryRequest:
		if user, ok := v.JID(); ok {
			fmt.Fprintf(&b, " jid=%s", user)
		}
		if count, ok := v.Count(); ok {
			fmt.Fprintf(&b, " count=%d", count)
		}
	case *stanza.MakeCallResult:
		fmt.Fprintf(&b, " calls=%d", len(v.Calls()))
	case *stanza.CallStatusMessage:
		if node, ok := v.PubSubNodeID(); ok {
			fmt.Fprintf(&b, " node=%s", node)
		}
		fmt.Fprintf(&b, " calls=%d", len(v.Calls()))
		if busy, ok := v.Busy(); ok {
			fmt.Fprintf(&b, " busy=%t", busy)
		}
	}
	return b.String()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, protocol.ErrStanzaTooLarge):
		return "too_large"
	case errors.Is(err, protocol.ErrEmptyStanza):
		return "empty"
	case errors.Is(err, protocol.ErrMalformedXML):
		return "malformed"
	case errors.Is(err, stanza.ErrUnknownStanza):
		return "unknown"
	default:
		return "read"
	}
}
