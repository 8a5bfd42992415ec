package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Group is the configuration group identifier for this plugin. Change events
// carrying any other group are ignored.
const Group = "grounditemorganizer"

// Config captures runtime configuration for the simulator and the plugin.
type Config struct {
	UI        UI
	Logging   Logging
	Profile   string
	Organizer Organizer
	Flags     map[string]string
	Args      []string
}

type UI struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envProfile    = "GROUND_ITEM_ORGANIZER_PROFILE"
	envWidth      = "GROUND_ITEM_ORGANIZER_WIDTH"
	envHeight     = "GROUND_ITEM_ORGANIZER_HEIGHT"
	envShowFooter = "GROUND_ITEM_ORGANIZER_FOOTER"
	envVerbose    = "GROUND_ITEM_ORGANIZER_VERBOSE"
	envTrace      = "GROUND_ITEM_ORGANIZER_TRACE"
	envLogFile    = "GROUND_ITEM_ORGANIZER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("ground-item-organizer", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	profile := fs.String("profile", envOrDefault(env, envProfile, ""), "path to the organizer YAML profile (empty uses built-in defaults)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print info messages for organizer actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	organizer := Default()
	if *profile != "" {
		loaded, err := LoadProfile(*profile)
		if err != nil {
			return Config{}, err
		}
		organizer = loaded
	}

	cfg := Config{
		UI: UI{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Profile:   *profile,
		Organizer: organizer,
		Flags: map[string]string{
			"profile": *profile,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if n := len(cfg.Organizer.Sections); n > MaxSections {
		return fmt.Errorf("profile defines %d sections; at most %d are supported", n, MaxSections)
	}
	return nil
}
