package fuzzyclock

import (
	"errors"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"english", English},
		{"EN", English},
		{"Spanish", Spanish},
		{"es", Spanish},
		{"español", Spanish},
		{"ESPAÑOL", Spanish},
		{"espan\u0303ol", Spanish},
		{" en ", English},
		{"portuguese", Portuguese},
		{"pt", Portuguese},
		{"Português", Portuguese},
	}

	for _, tt := range tests {
		got, err := ParseLanguage(tt.input)
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLanguage(%q) = %v want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseLanguageUnknown(t *testing.T) {
	for _, input := range []string{"", "french", "fr", "eng", "pt-BR"} {
		_, err := ParseLanguage(input)
		if !errors.Is(err, ErrUnknownLanguage) {
			t.Fatalf("ParseLanguage(%q) error = %v want ErrUnknownLanguage", input, err)
		}

		var idErr *IdentifierError
		if !errors.As(err, &idErr) {
			t.Fatalf("ParseLanguage(%q) error %T is not *IdentifierError", input, err)
		}
		if idErr.Value != input || idErr.Option != "language" {
			t.Fatalf("IdentifierError = %+v", idErr)
		}
	}
}

func TestParseFuzziness(t *testing.T) {
	tests := []struct {
		input string
		want  FuzzinessLevel
	}{
		{"exact", Exact},
		{"Fuzzy", Fuzzy},
		{"very-fuzzy", VeryFuzzy},
		{"MAX-FUZZY", MaxFuzzy},
	}

	for _, tt := range tests {
		got, err := ParseFuzziness(tt.input)
		if err != nil {
			t.Fatalf("ParseFuzziness(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFuzziness(%q) = %v want %v", tt.input, got, tt.want)
		}
	}

	for _, input := range []string{"", "very fuzzy", "veryfuzzy", "max"} {
		if _, err := ParseFuzziness(input); !errors.Is(err, ErrUnknownFuzziness) {
			t.Fatalf("ParseFuzziness(%q) error = %v want ErrUnknownFuzziness", input, err)
		}
	}
}

func TestFuzzinessLevelStringRoundTrips(t *testing.T) {
	for _, level := range FuzzinessLevels() {
		got, err := ParseFuzziness(level.String())
		if err != nil || got != level {
			t.Fatalf("ParseFuzziness(%q) = %v, %v", level.String(), got, err)
		}
	}
	if got := FuzzinessLevel(42).String(); got != "unknown" {
		t.Fatalf("FuzzinessLevel(42).String() = %q", got)
	}
}

func TestLanguageMetadata(t *testing.T) {
	tests := []struct {
		lang   Language
		code   string
		native string
	}{
		{English, "en", "English"},
		{Spanish, "es", "español"},
		{Portuguese, "pt", "português"},
	}

	for _, tt := range tests {
		if got := tt.lang.Code(); got != tt.code {
			t.Fatalf("%v.Code() = %q want %q", tt.lang, got, tt.code)
		}
		if got := tt.lang.NativeName(); got != tt.native {
			t.Fatalf("%v.NativeName() = %q want %q", tt.lang, got, tt.native)
		}
		for _, alias := range tt.lang.Aliases() {
			if got, err := ParseLanguage(alias); err != nil || got != tt.lang {
				t.Fatalf("ParseLanguage(%q) = %v, %v", alias, got, err)
			}
		}
	}
}
