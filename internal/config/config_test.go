package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fuzzyclock "github.com/goliatone/go-fuzzyclock"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP(KeyLanguage, "l", DefaultLanguage, "")
	flags.StringP(KeyFuzziness, "f", DefaultFuzziness, "")
	flags.Bool(Key24Hour, false, "")
	flags.BoolP(KeyIncludeUnits, "u", false, "")
	flags.Bool(KeyDebug, false, "")
	flags.String(KeyConfig, "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	v := New()
	require.NoError(t, BindFlags(v, newFlagSet(t)))

	settings, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, Settings{Language: "english", Fuzziness: "exact"}, settings)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "clock.yaml", "language: spanish\nfuzziness: very-fuzzy\n24-hour: true\n")
	t.Setenv("FUZZY_CLOCK_FUZZINESS", "max-fuzzy")
	t.Setenv("FUZZY_CLOCK_INCLUDE_UNITS", "true")

	v := New()
	require.NoError(t, BindFlags(v, newFlagSet(t, "--config", path, "-l", "pt")))

	settings, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "pt", settings.Language, "flag beats file")
	assert.Equal(t, "max-fuzzy", settings.Fuzziness, "env beats file")
	assert.True(t, settings.Use24Hour, "file beats default")
	assert.True(t, settings.IncludeUnits, "env beats default")
	assert.Equal(t, path, settings.ConfigFile)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	path := writeFile(t, "clock.toml", "language = \"es\"\ninclude-units = true\n")
	t.Setenv("FUZZY_CLOCK_CONFIG", path)
	t.Setenv("FUZZY_CLOCK_24_HOUR", "1")

	v := New()
	require.NoError(t, BindFlags(v, newFlagSet(t)))

	settings, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "es", settings.Language)
	assert.True(t, settings.IncludeUnits)
	assert.True(t, settings.Use24Hour)
}

func TestReadFileFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "clock.yml", "language: portuguese\ndebug: true\n"},
		{"toml", "clock.toml", "language = \"portuguese\"\ndebug = true\n"},
		{"json", "clock.json", `{"language": "portuguese", "debug": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ReadFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "portuguese", values["language"])
			assert.Equal(t, true, values["debug"])
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	_, err := ReadFile(writeFile(t, "clock.ini", "language=en"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	_, err = ReadFile(writeFile(t, "broken.json", "{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: decode")
}

func TestLoadReportsBadConfigFile(t *testing.T) {
	v := New()
	require.NoError(t, BindFlags(v, newFlagSet(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))))

	_, err := Load(v)
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "FUZZY_CLOCK_LANGUAGE=spanish\n")
	t.Setenv("FUZZY_CLOCK_LANGUAGE", "")
	require.NoError(t, os.Unsetenv("FUZZY_CLOCK_LANGUAGE"))

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env"), path))

	v := New()
	require.NoError(t, BindFlags(v, newFlagSet(t)))
	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "spanish", settings.Language)
}

func TestClockOptions(t *testing.T) {
	settings := Settings{Language: "pt", Fuzziness: "fuzzy", Use24Hour: true}

	cfg, err := fuzzyclock.NewConfig(settings.ClockOptions()...)
	require.NoError(t, err)
	assert.Equal(t, fuzzyclock.Portuguese, cfg.Language)
	assert.Equal(t, fuzzyclock.Fuzzy, cfg.Level)
	assert.True(t, cfg.Options.Use24Hour)
	assert.False(t, cfg.Options.IncludeUnits)

	_, err = fuzzyclock.NewConfig(Settings{Language: "xx", Fuzziness: "nope"}.ClockOptions()...)
	require.ErrorIs(t, err, fuzzyclock.ErrUnknownLanguage)
}
