package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/openlink/internal/config"
	"github.com/danmuck/openlink/internal/inspect"
	"github.com/danmuck/openlink/internal/protocol"
	"github.com/rs/zerolog/log"
)

// fileResult is one linted file; Error is set when the file never produced a
// report.
type fileResult struct {
	Path   string          `json:"path"`
	Report *inspect.Report `json:"report,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type linter struct {
	cfg config.LintConfig
	svc *inspect.Service
}

func newLinter(cfg config.LintConfig) *linter {
	svcCfg := inspect.DefaultServiceConfig()
	svcCfg.ServiceID = "stanzalint"
	svcCfg.Limits = protocol.Limits{MaxStanzaBytes: cfg.MaxStanzaBytes}
	return &linter{cfg: cfg, svc: inspect.NewService(svcCfg)}
}

func (l *linter) lintFile(path string) fileResult {
	f, err := os.Open(path)
	if err != nil {
		return fileResult{Path: path, Error: err.Error()}
	}
	defer f.Close()

	report, err := l.svc.Inspect(f)
	if err != nil {
		return fileResult{Path: path, Error: err.Error()}
	}
	report.Diagnostics = l.cfg.Filter(report.Diagnostics)
	report.Conformant = len(report.Diagnostics) == 0
	return fileResult{Path: path, Report: &report}
}

// run lints every path and writes results to w. It reports whether the run
// should fail under the config.
func (l *linter) run(w io.Writer, paths []string) (bool, error) {
	results := make([]fileResult, 0, len(paths))
	failed := false
	for _, path := range paths {
		res := l.lintFile(path)
		if res.Report != nil && !l.cfg.Selects(res.Report.Kind) {
			log.Debug().Str("path", path).Str("kind", res.Report.Kind).Msg("kind not selected")
			continue
		}
		if res.Error != "" {
			failed = true
		} else if !res.Report.Conformant && l.cfg.FailOnDiagnostics {
			failed = true
		}
		results = append(results, res)
	}

	if l.cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return failed, enc.Encode(results)
	}
	for _, res := range results {
		if err := writeText(w, res); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func writeText(w io.Writer, res fileResult) error {
	if res.Error != "" {
		_, err := fmt.Fprintf(w, "%s: error: %s\n", res.Path, res.Error)
		return err
	}
	status := "ok"
	if !res.Report.Conformant {
		status = fmt.Sprintf("%d problem(s)", len(res.Report.Diagnostics))
	}
	if _, err := fmt.Fprintf(w, "%s: %s: %s\n", res.Path, res.Report.Summary, status); err != nil {
		return err
	}
	for _, d := range res.Report.Diagnostics {
		if _, err := fmt.Fprintf(w, "  %s\n", d); err != nil {
			return err
		}
	}
	return nil
}
