package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the persistent command-line flags that override the
// environment. The zero value binds nothing; use [BindFlags].
type Flags struct {
	home       string
	logLevel   string
	configPath string
}

// BindFlags registers the vault flags on fs and returns the holder that
// receives their values once fs has been parsed.
//
// Flags:
//
//	--home       vault root directory
//	--config     profile file path
//	--log-level  diagnostic verbosity
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.home, "home", "", "vault root directory (env PASSOUT_HOME, default ~/.passout)")
	fs.StringVar(&f.configPath, "config", "", "profile file (env PASSOUT_CONFIG, default <home>/passoutrc)")
	fs.StringVar(&f.logLevel, "log-level", "", "diagnostic verbosity: debug, info, warn, error (env PASSOUT_LOG_LEVEL)")
	return f
}

// StructuredConfig converts the parsed flags into a config layer. Unset
// flags stay empty so they do not override lower layers.
func (f *Flags) StructuredConfig() *StructuredConfig {
	if f == nil {
		return nil
	}

	return &StructuredConfig{
		Home:           f.home,
		LogLevel:       f.logLevel,
		ConfigFilePath: f.configPath,
	}
}
