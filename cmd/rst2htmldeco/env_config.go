package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-rst2htmldeco/internal/hints"
)

// Environment variable names.
const (
	envRenderer = hints.RendererEnvVar
	envConfig   = "RST2HTMLDECO_CONFIG"
	envTimeout  = "RST2HTMLDECO_TIMEOUT"
	envPrefix   = "RST2HTMLDECO_"
)

// envSettings holds configuration from environment variables.
type envSettings struct {
	Renderer   string        // RST2HTML: docutils command
	ConfigPath string        // RST2HTMLDECO_CONFIG: config used without --config
	Timeout    time.Duration // RST2HTMLDECO_TIMEOUT: rendering timeout
}

// knownEnvVars lists valid RST2HTMLDECO_* environment variables.
var knownEnvVars = map[string]bool{
	envConfig:  true,
	envTimeout: true,
}

// loadEnvSettings reads the recognized variables. Invalid or non-positive
// timeouts are logged and ignored.
func loadEnvSettings(env *Environment, logger *slog.Logger) envSettings {
	s := envSettings{
		Renderer:   strings.TrimSpace(env.Getenv(envRenderer)),
		ConfigPath: strings.TrimSpace(env.Getenv(envConfig)),
	}

	if raw := env.Getenv(envTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			logger.Warn("ignoring invalid timeout", "var", envTimeout, "value", raw)
		} else {
			s.Timeout = d
		}
	}

	return s
}

// warnUnknownEnvVars logs unrecognized RST2HTMLDECO_* variables, which are
// usually typos.
func warnUnknownEnvVars(env *Environment, logger *slog.Logger) {
	if env.Environ == nil {
		return
	}
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "var", name)
		}
	}
}
