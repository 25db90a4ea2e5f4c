package config

import _ "embed"

// DefaultConfigYAML is the built-in default configuration, compiled into the
// binary so the server runs with no external config file at all.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
