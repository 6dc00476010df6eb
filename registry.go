package fuzzyclock

import "sync"

// Registry maps language identifiers to translators. The language set is
// fixed; a registry is read-only after NewRegistry returns.
type Registry struct {
	translators map[Language]Translator
	languages   []Language
}

type registryConfig struct {
	hooks     []TranslationHook
	languages []Language
}

// RegistryOption customizes registry construction.
type RegistryOption func(*registryConfig)

// WithRegistryHooks wraps every translator in the registry with hooks.
func WithRegistryHooks(hooks ...TranslationHook) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.hooks = append(cfg.hooks, hooks...)
	}
}

// WithRegistryLanguages restricts the registry to a subset of the
// compiled-in languages.
func WithRegistryLanguages(languages ...Language) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.languages = append(cfg.languages, languages...)
	}
}

var translatorFactories = map[Language]func() Translator{
	English:    func() Translator { return NewEnglishTranslator() },
	Spanish:    func() Translator { return NewSpanishTranslator() },
	Portuguese: func() Translator { return NewPortugueseTranslator() },
}

// NewRegistry builds a registry holding one translator per language.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := &registryConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	languages := cfg.languages
	if len(languages) == 0 {
		languages = Languages()
	}

	r := &Registry{translators: make(map[Language]Translator, len(languages))}
	for _, lang := range languages {
		factory, ok := translatorFactories[lang]
		if !ok {
			continue
		}
		if _, exists := r.translators[lang]; exists {
			continue
		}
		r.translators[lang] = WrapTranslatorWithHooks(factory(), cfg.hooks...)
		r.languages = append(r.languages, lang)
	}

	return r
}

// Resolve returns the translator for a case-insensitive language identifier.
func (r *Registry) Resolve(identifier string) (Translator, bool) {
	lang, err := ParseLanguage(identifier)
	if err != nil {
		return nil, false
	}
	return r.Translator(lang)
}

// Translator returns the translator registered for lang.
func (r *Registry) Translator(lang Language) (Translator, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.translators[lang]
	return t, ok
}

// Languages lists the registered languages in registration order.
func (r *Registry) Languages() []Language {
	if r == nil {
		return nil
	}
	return append([]Language(nil), r.languages...)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// Resolve looks up a translator in the default registry.
func Resolve(identifier string) (Translator, bool) {
	return defaultRegistry().Resolve(identifier)
}
