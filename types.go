package fuzzyclock

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// FuzzinessLevel selects how precisely a reading is rendered.
type FuzzinessLevel int

const (
	Exact FuzzinessLevel = iota
	Fuzzy
	VeryFuzzy
	MaxFuzzy
)

var fuzzinessIdentifiers = map[FuzzinessLevel]string{
	Exact:     "exact",
	Fuzzy:     "fuzzy",
	VeryFuzzy: "very-fuzzy",
	MaxFuzzy:  "max-fuzzy",
}

// FuzzinessLevels lists every level from most to least precise.
func FuzzinessLevels() []FuzzinessLevel {
	return []FuzzinessLevel{Exact, Fuzzy, VeryFuzzy, MaxFuzzy}
}

func (l FuzzinessLevel) String() string {
	if id, ok := fuzzinessIdentifiers[l]; ok {
		return id
	}
	return "unknown"
}

// ParseFuzziness maps "exact", "fuzzy", "very-fuzzy" and "max-fuzzy",
// case-insensitively, to a level.
func ParseFuzziness(identifier string) (FuzzinessLevel, error) {
	normalized := normalizeIdentifier(identifier)
	for level, id := range fuzzinessIdentifiers {
		if id == normalized {
			return level, nil
		}
	}
	return Exact, unknownFuzziness(identifier)
}

// Language is one of the compiled-in translation languages.
type Language int

const (
	English Language = iota
	Spanish
	Portuguese
)

type languageInfo struct {
	name    string
	tag     language.Tag
	aliases []string
}

var languageTable = map[Language]languageInfo{
	English:    {name: "english", tag: language.English, aliases: []string{"english", "en"}},
	Spanish:    {name: "spanish", tag: language.Spanish, aliases: []string{"spanish", "es", "español"}},
	Portuguese: {name: "portuguese", tag: language.Portuguese, aliases: []string{"portuguese", "pt", "português"}},
}

// Languages lists the supported languages in declaration order.
func Languages() []Language {
	return []Language{English, Spanish, Portuguese}
}

func (l Language) String() string {
	if info, ok := languageTable[l]; ok {
		return info.name
	}
	return "unknown"
}

// Tag returns the BCP 47 tag used to key the phrase catalog.
func (l Language) Tag() language.Tag {
	if info, ok := languageTable[l]; ok {
		return info.tag
	}
	return language.Und
}

// Code returns the two letter ISO 639-1 code.
func (l Language) Code() string {
	base, _ := l.Tag().Base()
	return base.String()
}

// NativeName returns the language's name written in that language.
func (l Language) NativeName() string {
	return display.Self.Name(l.Tag())
}

// Aliases lists the identifiers ParseLanguage accepts for l.
func (l Language) Aliases() []string {
	info, ok := languageTable[l]
	if !ok {
		return nil
	}
	return append([]string(nil), info.aliases...)
}

// ParseLanguage resolves a case-insensitive identifier such as "en",
// "spanish" or "português".
func ParseLanguage(identifier string) (Language, error) {
	normalized := normalizeIdentifier(identifier)
	for _, lang := range Languages() {
		for _, alias := range languageTable[lang].aliases {
			if alias == normalized {
				return lang, nil
			}
		}
	}
	return English, unknownLanguage(identifier)
}

// TranslationOptions toggles the clock format and unit words.
type TranslationOptions struct {
	Use24Hour    bool
	IncludeUnits bool
}
