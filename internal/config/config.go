// Package config loads learnphoto's settings from a config file, the
// environment and built-in defaults, in that order of precedence (environment
// first).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable config reads, e.g.
// LEARNPHOTO_OUTPUTDIR.
const EnvPrefix = "LEARNPHOTO"

// Config is every setting the CLI understands.
type Config struct {
	SiteTitle   string `mapstructure:"siteTitle"`
	OutputDir   string `mapstructure:"outputDir"`
	ContentFile string `mapstructure:"contentFile"`
	ImagesDir   string `mapstructure:"imagesDir"`
	HostDir     string `mapstructure:"hostDir"`
	Notice      string `mapstructure:"notice"`
	Addr        string `mapstructure:"addr"`
	LogLevel    string `mapstructure:"logLevel"`

	// Source is the config file that was read, or empty if none was.
	Source string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "Learn Photography")
	v.SetDefault("outputDir", "public")
	v.SetDefault("contentFile", "")
	v.SetDefault("imagesDir", "images")
	v.SetDefault("hostDir", "")
	v.SetDefault("notice", "")
	v.SetDefault("addr", ":1313")
	v.SetDefault("logLevel", "info")
}

// Load reads the configuration. If cfgFile is empty, config.yaml is looked
// for in the working directory and is optional; if cfgFile is set, it must
// exist.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		cfg.Source = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Level returns LogLevel as a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
