// Package configs holds embedded default configuration files.
package configs

import _ "embed"

// SampleHookSet is the starter .pre-commit-config.yaml written by hm init.
//
//go:embed sample-pre-commit-config.yaml
var SampleHookSet []byte
