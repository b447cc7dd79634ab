package lib

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LogEnabledEnv switches logging on when set to a value starting with '1'.
const LogEnabledEnv = "MCA_LOG_ENABLED"

type Config struct {
	Logging     LoggingConfig     `toml:"logging"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Journal     JournalConfig     `toml:"journal"`
	Output      OutputConfig      `toml:"output"`
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
}

type DiagnosticsConfig struct {
	Color string `toml:"color"`
}

// JournalConfig selects where evaluations are recorded. An empty driver
// disables the journal.
type JournalConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// OutputConfig is reserved for a code generator that does not exist yet.
type OutputConfig struct {
	File string `toml:"file"`
}

func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
		Diagnostics: DiagnosticsConfig{
			Color: ColorAuto,
		},
		Output: OutputConfig{
			File: "a.asm",
		},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("reading config %s: unknown key %s", path, undecoded[0])
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	switch c.Diagnostics.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("diagnostics.color: expected auto, always or never but got '%s'", c.Diagnostics.Color)
	}

	switch c.Journal.Driver {
	case "":
	case DriverPostgres, DriverSQLite:
		if c.Journal.DSN == "" {
			return fmt.Errorf("journal.dsn is required for driver '%s'", c.Journal.Driver)
		}
	default:
		return fmt.Errorf("journal.driver: unsupported driver '%s'", c.Journal.Driver)
	}

	return nil
}

// ApplyEnv applies environment overrides using getenv, normally os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if strings.HasPrefix(getenv(LogEnabledEnv), "1") {
		c.Logging.Enabled = true
	}
}
