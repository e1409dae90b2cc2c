// Package config loads ackrc's own settings from a global YAML file. The
// settings choose the rc base name, override variable and system path used
// by discovery, plus output defaults. CLI flags take precedence over them.
package config
