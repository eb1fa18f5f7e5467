package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/openlink/internal/inspect"
)

type fileConfig struct {
	ID             string   `toml:"id"`
	Addr           string   `toml:"addr"`
	CorsOrigins    []string `toml:"cors_origins"`
	MaxStanzaBytes int64    `toml:"max_stanza_bytes"`
	AuthToken      string   `toml:"auth_token"`
}

// loadServiceConfig overlays the keys present in path on the service defaults.
func loadServiceConfig(path string) (inspect.ServiceConfig, error) {
	cfg := inspect.DefaultServiceConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return inspect.ServiceConfig{}, fmt.Errorf("load inspectd config: %w", err)
	}

	if meta.IsDefined("id") {
		if id := strings.TrimSpace(raw.ID); id != "" {
			cfg.ServiceID = id
		}
	}

	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}

	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}

	if meta.IsDefined("max_stanza_bytes") {
		cfg.Limits.MaxStanzaBytes = raw.MaxStanzaBytes
	}

	if meta.IsDefined("auth_token") {
		cfg.AuthToken = strings.TrimSpace(raw.AuthToken)
	}

	if err := cfg.Validate(); err != nil {
		return inspect.ServiceConfig{}, err
	}
	return cfg, nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
