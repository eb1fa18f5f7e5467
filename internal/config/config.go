package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LintConfig drives cmd/stanzalint.
type LintConfig struct {
	MaxStanzaBytes    int64    `toml:"max_stanza_bytes"`
	FailOnDiagnostics bool     `toml:"fail_on_diagnostics"`
	Kinds             []string `toml:"kinds"`
	Ignore            []string `toml:"ignore"`
	Format            string   `toml:"format"`
}

// InspectdConfig is the file form read by cmd/inspectd.
type InspectdConfig struct {
	ID             string   `toml:"id"`
	Addr           string   `toml:"addr"`
	CorsOrigins    []string `toml:"cors_origins"`
	MaxStanzaBytes int64    `toml:"max_stanza_bytes"`
	AuthToken      string   `toml:"auth_token"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

func DefaultLintConfig() LintConfig {
	return LintConfig{
		MaxStanzaBytes:    1024 * 1024,
		FailOnDiagnostics: true,
		Format:            FormatText,
	}
}

func LoadLintConfig(path string) (LintConfig, error) {
	cfg := DefaultLintConfig()
	if err := loadToml(path, &cfg); err != nil {
		return LintConfig{}, err
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if err := ValidateLintConfig(cfg); err != nil {
		return LintConfig{}, err
	}
	return cfg, nil
}

func LoadInspectdConfig(path string) (InspectdConfig, error) {
	var cfg InspectdConfig
	if err := loadToml(path, &cfg); err != nil {
		return InspectdConfig{}, err
	}
	if cfg.ID == "" {
		cfg.ID = "inspectd.local"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9400"
	}
	if err := ValidateInspectdConfig(cfg); err != nil {
		return InspectdConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// StanzaKinds are the stanza descriptions a lint config may select.
var StanzaKinds = []string{
	"get-profiles request stanza",
	"get-call-history request stanza",
	"make-call result stanza",
	"call status",
}

func ValidateLintConfig(cfg LintConfig) error {
	if cfg.MaxStanzaBytes <= 0 {
		return fmt.Errorf("lint config max_stanza_bytes must be positive")
	}
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("lint config format must be %q or %q, got %q", FormatText, FormatJSON, cfg.Format)
	}
	for i, kind := range cfg.Kinds {
		if !knownKind(kind) {
			return fmt.Errorf("kinds[%d] unknown stanza kind: %s", i, kind)
		}
	}
	return nil
}

func ValidateInspectdConfig(cfg InspectdConfig) error {
	if strings.TrimSpace(cfg.ID) == "" {
		return fmt.Errorf("inspectd config missing id")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("inspectd config missing addr")
	}
	if cfg.MaxStanzaBytes < 0 {
		return fmt.Errorf("inspectd config max_stanza_bytes must not be negative")
	}
	return nil
}

func knownKind(kind string) bool {
	for _, k := range StanzaKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Selects reports whether a stanza of kind should be linted under cfg.
func (cfg LintConfig) Selects(kind string) bool {
	if len(cfg.Kinds) == 0 {
		return true
	}
	for _, k := range cfg.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Filter drops diagnostics containing any of the ignore fragments.
func (cfg LintConfig) Filter(diagnostics []string) []string {
	out := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		if !cfg.ignored(d) {
			out = append(out, d)
		}
	}
	return out
}

func (cfg LintConfig) ignored(diagnostic string) bool {
	for _, fragment := range cfg.Ignore {
		if fragment != "" && strings.Contains(diagnostic, fragment) {
			return true
		}
	}
	return false
}
