package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var (
	intPattern       = regexp.MustCompile(`^-?\d+$`)
	trueBoolPattern  = regexp.MustCompile(`(?i)^(true|t|y|yes|1)$`)
	falseBoolPattern = regexp.MustCompile(`(?i)^(false|f|n|no|0)$`)
	logLevelPattern  = regexp.MustCompile(`(?i)^(DEBUG|INFO|WARNING|ERROR|CRITICAL|FATAL)$`)
)

// Config reads values from an ini-style configuration file.
type Config struct {
	path string
	v    *viper.Viper
}

// Load reads the ini file at path, expanding a leading ~ first. A
// missing file is not an error: the resulting Config simply has no
// values and every accessor returns its fallback.
func Load(path string) (*Config, error) {
	path = ExpandUser(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return &Config{path: path, v: v}, nil
}

// Path returns the (expanded) path the configuration was read from.
func (c *Config) Path() string {
	return c.path
}

// Get returns the value of section/option, with a leading ~ expanded,
// or fallback when the option is absent.
func (c *Config) Get(section, option, fallback string) string {
	value, ok := c.lookup(section, option)
	if !ok {
		return fallback
	}
	return ExpandUser(value)
}

// GetInt returns section/option parsed as a signed integer, or fallback
// when the option is absent or not an integer.
func (c *Config) GetInt(section, option string, fallback int) int {
	value, ok := c.lookup(section, option)
	if !ok || !intPattern.MatchString(value) {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetBool returns section/option parsed as a boolean. Truthy values are
// true, t, y, yes and 1; falsy values are false, f, n, no and 0, all
// case-insensitive. Anything else yields fallback.
func (c *Config) GetBool(section, option string, fallback bool) bool {
	value, ok := c.lookup(section, option)
	if !ok {
		return fallback
	}
	if trueBoolPattern.MatchString(value) {
		return true
	}
	if falseBoolPattern.MatchString(value) {
		return false
	}
	return fallback
}

// GetLogLevel returns section/option parsed as a logging level
// (DEBUG, INFO, WARNING, ERROR, CRITICAL or FATAL, case-insensitive),
// or fallback when absent or unrecognized.
func (c *Config) GetLogLevel(section, option string, fallback zapcore.Level) zapcore.Level {
	value, ok := c.lookup(section, option)
	if !ok || !logLevelPattern.MatchString(value) {
		return fallback
	}

	switch strings.ToUpper(value) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default: // CRITICAL, FATAL
		return zapcore.FatalLevel
	}
}

// Section returns all options of a section as a map, or nil when the
// section does not exist.
func (c *Config) Section(section string) map[string]string {
	if !c.v.IsSet(section) {
		return nil
	}

	values := c.v.GetStringMapString(section)
	if len(values) == 0 {
		return nil
	}
	return values
}

func (c *Config) lookup(section, option string) (string, bool) {
	key := section + "." + option
	if !c.v.IsSet(key) {
		return "", false
	}
	return c.v.GetString(key), true
}

// ExpandUser replaces a leading ~ in path with the current user's home
// directory, mirroring os.path.expanduser.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
