// Package config layers natsort settings from flags, the environment, an
// optional config file and built-in defaults, in that order of precedence.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vipcxj/natsort/internal/ns"
)

// EnvPrefix is prepended to every environment variable, e.g. NATSORT_PATHS.
const EnvPrefix = "NATSORT"

// Settings is everything except the filters and the entries themselves.
type Settings struct {
	NumberType     string `mapstructure:"number-type"`
	Sign           bool   `mapstructure:"sign"`
	NoExp          bool   `mapstructure:"noexp"`
	Paths          bool   `mapstructure:"paths"`
	Locale         bool   `mapstructure:"locale"`
	Reverse        bool   `mapstructure:"reverse"`
	ZeroTerminated bool   `mapstructure:"zero-terminated"`
	LogLevel       string `mapstructure:"log-level"`
	LogFormat      string `mapstructure:"log-format"`
}

// Default returns the settings used when nothing else is given.
func Default() *Settings {
	return &Settings{
		NumberType: ns.NumberTypeInt.String(),
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyNumberType, d.NumberType)
	v.SetDefault(KeySign, d.Sign)
	v.SetDefault(KeyNoExp, d.NoExp)
	v.SetDefault(KeyPaths, d.Paths)
	v.SetDefault(KeyLocale, d.Locale)
	v.SetDefault(KeyReverse, d.Reverse)
	v.SetDefault(KeyZeroTerminated, d.ZeroTerminated)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyConfig, "")
}

var boundKeys = []string{
	KeyNumberType,
	KeySign,
	KeyNoExp,
	KeyPaths,
	KeyLocale,
	KeyReverse,
	KeyZeroTerminated,
	KeyLogLevel,
	KeyLogFormat,
	KeyConfig,
}

// Load resolves the settings for flags parsed from a FlagSet prepared with
// RegisterFlags. A config file is read only when --config or NATSORT_CONFIG
// names one, and failing to read it is an error.
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for _, key := range boundKeys {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	// --nosign only shows up through the shared value of --sign.
	if f := fs.Lookup(flagNoSign); f != nil && f.Changed {
		signed, err := strconv.ParseBool(fs.Lookup(KeySign).Value.String())
		if err != nil {
			return nil, fmt.Errorf("read --%s: %w", KeySign, err)
		}
		v.Set(KeySign, signed)
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	s := Default()
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// Options resolves the sort and filter options. It fails only for a number
// type that did not come through the flag, e.g. from the environment.
func (s *Settings) Options() (ns.Options, error) {
	t, err := ns.ParseNumberType(s.NumberType)
	if err != nil {
		return ns.Options{}, err
	}
	return ns.Resolve(ns.Flags{
		NumberType: t,
		Signed:     s.Sign,
		Exp:        !s.NoExp,
		Paths:      s.Paths,
		Locale:     s.Locale,
		Reverse:    s.Reverse,
	}), nil
}
