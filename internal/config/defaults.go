package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Scan       ScanConfig       `json:"scan" mapstructure:"scan"`
	Generation GenerationConfig `json:"generation" mapstructure:"generation"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`

	// Profiles are named override sets applied on top of the scan and
	// generation sections when selected with --profile.
	Profiles map[string]map[string]any `json:"profiles" mapstructure:"-"`
}

// ScanConfig controls the extraction engine.
type ScanConfig struct {
	// Extensions is the file suffix allow-list (case-sensitive exact match).
	Extensions []string `json:"extensions" mapstructure:"extensions"`
	// BeforeLines is the number of lines captured before each marker.
	BeforeLines int `json:"before_lines" mapstructure:"before_lines"` // Default: 2
	// MaxLinesAfter bounds the look-ahead for an end marker.
	MaxLinesAfter int `json:"max_lines_after" mapstructure:"max_lines_after"` // Default: 10
	// LegacyMarkers switches to substring marker recognition for
	// compatibility with older annotation conventions.
	LegacyMarkers bool `json:"legacy_markers" mapstructure:"legacy_markers"`
	// RespectGitignore additionally filters candidates through .gitignore.
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore"`
}

// GenerationConfig controls the suggestion backend.
type GenerationConfig struct {
	Model string `json:"model" mapstructure:"model"` // Default: gemini-2.0-flash
	// Concurrency bounds the in-flight generation calls.
	Concurrency int `json:"concurrency" mapstructure:"concurrency"` // Default: 4
}

// LoggingConfig controls console log output.
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level"` // Default: info
}

// DefaultExtensions is the file suffix allow-list used when none is configured.
var DefaultExtensions = []string{".py", ".cpp", ".h", ".java", ".js", ".html", ".sh"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions:    append([]string(nil), DefaultExtensions...),
			BeforeLines:   2,
			MaxLinesAfter: 10,
		},
		Generation: GenerationConfig{
			Model:       "gemini-2.0-flash",
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
