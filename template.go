package fuzzyclock

import "time"

// HelperConfig configures template helper exports
type HelperConfig struct {
	Registry *Registry
	Options  TranslationOptions
}

// TemplateHelpers exposes fuzzy time helpers for go-template:
//
//	{{ fuzzy_time "es" "fuzzy" .Now }}
//	{{ day_part "pt" .Now }}
func TemplateHelpers(cfg HelperConfig) map[string]any {
	registry := cfg.Registry
	if registry == nil {
		registry = defaultRegistry()
	}

	translate := func(language string, level FuzzinessLevel, t time.Time) (string, error) {
		translator, ok := registry.Resolve(language)
		if !ok {
			return "", unknownLanguage(language)
		}
		return translator.Translate(SnapshotFromTime(t), level, cfg.Options), nil
	}

	return map[string]any{
		"fuzzy_time": func(language, level string, t time.Time) (string, error) {
			parsed, err := ParseFuzziness(level)
			if err != nil {
				return "", err
			}
			return translate(language, parsed, t)
		},
		"day_part": func(language string, t time.Time) (string, error) {
			return translate(language, MaxFuzzy, t)
		},
	}
}
