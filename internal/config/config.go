// Package config resolves fuzzy-clock settings from flags, environment
// variables, an optional .env file and an optional config file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	fuzzyclock "github.com/goliatone/go-fuzzyclock"
)

// EnvPrefix namespaces environment variables, e.g. FUZZY_CLOCK_LANGUAGE.
const EnvPrefix = "FUZZY_CLOCK"

// Setting keys. They double as flag names and config file keys.
const (
	KeyLanguage     = "language"
	KeyFuzziness    = "fuzziness"
	Key24Hour       = "24-hour"
	KeyIncludeUnits = "include-units"
	KeyDebug        = "debug"
	KeyConfig       = "config"
)

const (
	DefaultLanguage  = "english"
	DefaultFuzziness = "exact"
)

var ErrUnsupportedFormat = errors.New("config: unsupported config file format")

// Settings is the resolved CLI configuration.
type Settings struct {
	Language     string
	Fuzziness    string
	Use24Hour    bool
	IncludeUnits bool
	Debug        bool
	ConfigFile   string
}

// New returns a viper instance reading FUZZY_CLOCK_* variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyFuzziness, DefaultFuzziness)
	v.SetDefault(Key24Hour, false)
	v.SetDefault(KeyIncludeUnits, false)
	v.SetDefault(KeyDebug, false)

	return v
}

// BindFlags lets explicitly set flags take precedence over every other source.
func BindFlags(v *viper.Viper, flags ...*pflag.FlagSet) error {
	for _, set := range flags {
		if set == nil {
			continue
		}
		if err := v.BindPFlags(set); err != nil {
			return errors.Wrap(err, "config: bind flags")
		}
	}
	return nil
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are skipped; with no paths ".env" in the working directory is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "config: stat %s", path)
		}
		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "config: load %s", path)
		}
	}
	return nil
}

// Load merges the config file named by the "config" key, if any, and
// returns the resolved settings.
func Load(v *viper.Viper) (Settings, error) {
	path := strings.TrimSpace(v.GetString(KeyConfig))
	if path != "" {
		values, err := ReadFile(path)
		if err != nil {
			return Settings{}, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return Settings{}, errors.Wrapf(err, "config: merge %s", path)
		}
	}

	settings := Settings{
		Language:     v.GetString(KeyLanguage),
		Fuzziness:    v.GetString(KeyFuzziness),
		Use24Hour:    v.GetBool(Key24Hour),
		IncludeUnits: v.GetBool(KeyIncludeUnits),
		Debug:        v.GetBool(KeyDebug),
		ConfigFile:   path,
	}

	return settings, nil
}

// ReadFile decodes a YAML, TOML or JSON settings file by extension.
func ReadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	values := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	case ".toml":
		err = toml.Unmarshal(data, &values)
	case ".json":
		err = json.Unmarshal(data, &values)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s (%q)", path, ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}

	return values, nil
}

// ClockOptions converts settings into fuzzyclock options. Identifier
// errors surface from fuzzyclock.NewConfig, language first.
func (s Settings) ClockOptions() []fuzzyclock.Option {
	return []fuzzyclock.Option{
		fuzzyclock.WithLanguage(s.Language),
		fuzzyclock.WithFuzziness(s.Fuzziness),
		fuzzyclock.With24Hour(s.Use24Hour),
		fuzzyclock.WithUnits(s.IncludeUnits),
	}
}
