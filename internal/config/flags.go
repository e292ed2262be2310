package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// LogLevelValue binds a zerolog level name to a string field.
// It implements the flag.Value interface.
type LogLevelValue struct {
	dst *string
}

// LogFormatValue binds a log format name to a string field.
// It implements the flag.Value interface.
type LogFormatValue struct {
	dst *string
}

// ParseFlags parses the bootstrap flags from args (without the program name).
//
// Flags:
//
//	-root install root directory
//	-server-config path of server-config.json
//	-permissions path of permissions.json
//	-log-level trace, debug or info
//	-log-format json or console
//
// Unset flags are left empty so that defaults and environment values survive
// the merge. A -h/-help request returns an error wrapping [flag.ErrHelp].
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := newFlagSet(cfg)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}

// Usage writes the flag defaults to w.
func Usage(w io.Writer) {
	fs := newFlagSet(&StructuredConfig{})
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func newFlagSet(cfg *StructuredConfig) *flag.FlagSet {
	fs := flag.NewFlagSet("bedrock-server", flag.ContinueOnError)
	fs.StringVar(&cfg.Files.RootDir, "root", "", "Install root directory")
	fs.StringVar(&cfg.Files.ServerConfigPath, "server-config", "", "Server config JSON path, relative to the root")
	fs.StringVar(&cfg.Files.PermissionsPath, "permissions", "", "Permissions JSON path, relative to the root")
	fs.Var(LogLevelValue{dst: &cfg.Logging.Level}, "log-level", "Log level (trace, debug, info)")
	fs.Var(LogFormatValue{dst: &cfg.Logging.Format}, "log-format", "Log format (json, console)")

	return fs
}

func (v LogLevelValue) String() string {
	if v.dst == nil {
		return ""
	}
	return *v.dst
}

// Set accepts trace, debug or info, case-insensitively.
func (v LogLevelValue) Set(s string) error {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return errors.New("log level must not be empty")
	}

	if !isAllowedLogLevel(name) {
		return fmt.Errorf("unsupported log level %q, need trace, debug or info", s)
	}

	*v.dst = name
	return nil
}

func (v LogFormatValue) String() string {
	if v.dst == nil {
		return ""
	}
	return *v.dst
}

// Set accepts "json" or "console".
func (v LogFormatValue) Set(s string) error {
	name := strings.ToLower(strings.TrimSpace(s))
	if !isKnownLogFormat(name) {
		return fmt.Errorf("unknown log format %q, need json or console", s)
	}

	*v.dst = name
	return nil
}

func isKnownLogFormat(name string) bool {
	return name == LogFormatJSON || name == LogFormatConsole
}
