package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "lint":
		return lintTemplate, nil
	case "inspectd":
		return inspectdTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

// DefaultPath is where each binary looks for its config when none is given.
func DefaultPath(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "lint":
		return "cmd/stanzalint/stanzalint.toml", nil
	case "inspectd":
		return "cmd/inspectd/config.toml", nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

// Validate loads the config at path as kind and reports any problem.
func Validate(path, kind string) error {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "lint":
		_, err := LoadLintConfig(path)
		return err
	case "inspectd":
		_, err := LoadInspectdConfig(path)
		return err
	default:
		return fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const lintTemplate = `max_stanza_bytes = 1048576
fail_on_diagnostics = true
format = "text"

# empty selects every stanza kind
kinds = ["make-call result stanza", "call status"]

# diagnostics containing any of these fragments are not reported
ignore = []
`

const inspectdTemplate = `id = "inspectd.local"
addr = ":9400"
cors_origins = ["http://localhost:3000"]
max_stanza_bytes = 1048576

# leave empty to serve the inspect API without a token
auth_token = ""
`
