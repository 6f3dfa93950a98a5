// Package config is a thin reader for ini-style service configuration
// files.
//
// Values are addressed by section and option, every accessor takes a
// fallback returned when the option is absent or malformed, and string
// values have a leading ~ expanded to the user's home directory. The
// actual file parsing is delegated to viper.
package config
