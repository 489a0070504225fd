// ABOUTME: Environment variable expansion and SPLASHFETCH_* overrides
// ABOUTME: ${VAR} patterns expand in string fields; env overrides beat file config

package config

import (
	"os"
	"regexp"
	"strconv"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
// Unset variables become empty strings.
func ResolveEnvVars(s *Settings) {
	s.Art = expandEnv(s.Art)
	s.InfoCommand = expandEnv(s.InfoCommand)
	for i := range s.InfoArgs {
		s.InfoArgs[i] = expandEnv(s.InfoArgs[i])
	}
	s.Prompt = expandEnv(s.Prompt)
	for k, v := range s.Env {
		s.Env[k] = expandEnv(v)
	}
}

// ApplyEnvOverrides lets the environment beat file configuration:
// SPLASHFETCH_ART, SPLASHFETCH_FPS, SPLASHFETCH_SCROLL_SPEED,
// SPLASHFETCH_INFO_COMMAND, and the conventional NO_COLOR.
func ApplyEnvOverrides(s *Settings) {
	if v := os.Getenv("SPLASHFETCH_ART"); v != "" {
		s.Art = v
	}
	if v := os.Getenv("SPLASHFETCH_INFO_COMMAND"); v != "" {
		s.InfoCommand = v
	}
	if v := os.Getenv("SPLASHFETCH_FPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			s.FPS = f
			s.FPSExplicit = true
		}
	}
	if v := os.Getenv("SPLASHFETCH_SCROLL_SPEED"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			s.ScrollSpeed = f
			s.ScrollSpeedExplicit = true
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		s.NoColor = true
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR).
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
