package entity

import "time"

// SuggestConfigKey is the configuration key holding SuggestConfig.
const SuggestConfigKey = "nimsuggest"

// Default values applied to missing SuggestConfig fields.
const (
	DefaultSuggestExecutable = "nimsuggest"
	DefaultNimExecutable     = "nim"
	DefaultMaxFailures       = 10
)

// DefaultSuggestArgs are the protocol mode flags passed ahead of the project file.
var DefaultSuggestArgs = []string{"stdin", "--interactive:false"}

// SuggestConfig holds the settings that govern analyzer processes.
// It is captured once when a client is constructed, changes only take effect for new clients.
type SuggestConfig struct {
	// Executable is the nimsuggest binary: a path, a directory containing it, or a command on PATH.
	Executable string `yaml:"executable"`
	// NimExecutable is the nim compiler. Its directory is prepended to PATH for nimsuggest.
	NimExecutable string `yaml:"nimExecutable"`
	// Args are passed to nimsuggest before the project file.
	Args []string `yaml:"args"`
	// MaxFailures is the number of failed spawns after which a client stops for good.
	MaxFailures int `yaml:"maxFailures"`
	// ResponseTimeout kills an analyzer that has not finished a response in time. Zero disables it.
	ResponseTimeout time.Duration `yaml:"responseTimeout"`
	// CheckConfiguration enables the one-time message shown when an executable cannot be found.
	CheckConfiguration bool `yaml:"checkConfiguration"`
	// ProjectFile overrides project discovery for all documents.
	ProjectFile string `yaml:"projectFile"`
	// WatchProjectConfig restarts a project's analyzer when its nim configuration files change.
	WatchProjectConfig bool `yaml:"watchProjectConfig"`
}

// NewSuggestConfig returns a SuggestConfig filled with defaults, suitable as a Populate target.
func NewSuggestConfig() SuggestConfig {
	return SuggestConfig{
		Executable:         DefaultSuggestExecutable,
		NimExecutable:      DefaultNimExecutable,
		Args:               append([]string(nil), DefaultSuggestArgs...),
		MaxFailures:        DefaultMaxFailures,
		CheckConfiguration: true,
		WatchProjectConfig: true,
	}
}

// WithDefaults replaces zero values that would leave a client unusable.
func (c SuggestConfig) WithDefaults() SuggestConfig {
	if c.Executable == "" {
		c.Executable = DefaultSuggestExecutable
	}
	if c.NimExecutable == "" {
		c.NimExecutable = DefaultNimExecutable
	}
	if c.Args == nil {
		c.Args = append([]string(nil), DefaultSuggestArgs...)
	}
	if c.MaxFailures <= 0 {
		c.MaxFailures = DefaultMaxFailures
	}
	if c.ResponseTimeout < 0 {
		c.ResponseTimeout = 0
	}
	return c
}
