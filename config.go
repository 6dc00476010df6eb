package fuzzyclock

import (
	"fmt"
	"time"
)

// Config captures translator and clock setup
type Config struct {
	Language Language
	Level    FuzzinessLevel
	Options  TranslationOptions
	Source   TimeSource
	Hooks    []TranslationHook
	Registry *Registry
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Without options it renders
// English at the Exact level on a 12-hour clock read from the system.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Language: English,
		Level:    Exact,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Source == nil {
		cfg.Source = SystemClock{}
	}

	return cfg, nil
}

// WithLanguage selects the language by identifier ("en", "spanish", ...).
func WithLanguage(identifier string) Option {
	return func(c *Config) error {
		lang, err := ParseLanguage(identifier)
		if err != nil {
			return err
		}
		c.Language = lang
		return nil
	}
}

func WithFuzziness(identifier string) Option {
	return func(c *Config) error {
		level, err := ParseFuzziness(identifier)
		if err != nil {
			return err
		}
		c.Level = level
		return nil
	}
}

func WithLevel(level FuzzinessLevel) Option {
	return func(c *Config) error {
		if _, ok := fuzzinessIdentifiers[level]; !ok {
			return unknownFuzziness(fmt.Sprint(int(level)))
		}
		c.Level = level
		return nil
	}
}

func With24Hour(enabled bool) Option {
	return func(c *Config) error {
		c.Options.Use24Hour = enabled
		return nil
	}
}

func WithUnits(enabled bool) Option {
	return func(c *Config) error {
		c.Options.IncludeUnits = enabled
		return nil
	}
}

func WithTimeSource(source TimeSource) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

func WithTranslatorHooks(hooks ...TranslationHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithRegistry resolves the translator from registry instead of a new one.
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		c.Registry = registry
		return nil
	}
}

// BuildClock resolves the configured translator.
func (c *Config) BuildClock() (*FuzzyClock, error) {
	registry := c.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	translator, ok := registry.Translator(c.Language)
	if !ok {
		return nil, unknownLanguage(c.Language.String())
	}

	source := c.Source
	if source == nil {
		source = SystemClock{}
	}

	return &FuzzyClock{
		translator: WrapTranslatorWithHooks(translator, c.Hooks...),
		level:      c.Level,
		options:    c.Options,
		source:     source,
	}, nil
}

// FuzzyClock binds a translator, level and options to a time source.
type FuzzyClock struct {
	translator Translator
	level      FuzzinessLevel
	options    TranslationOptions
	source     TimeSource
}

// Tell renders the time source's current reading.
func (c *FuzzyClock) Tell() string {
	return c.At(c.source.Now())
}

// At renders t.
func (c *FuzzyClock) At(t time.Time) string {
	return c.Snapshot(SnapshotFromTime(t))
}

// Snapshot renders an already decomposed reading.
func (c *FuzzyClock) Snapshot(snapshot TimeSnapshot) string {
	return c.translator.Translate(snapshot, c.level, c.options)
}

func (c *FuzzyClock) Translator() Translator {
	return c.translator
}

func (c *FuzzyClock) Level() FuzzinessLevel {
	return c.level
}

func (c *FuzzyClock) Options() TranslationOptions {
	return c.options
}
