package fuzzyclock

import (
	"strings"

	"golang.org/x/text/message"
)

// Translator renders a clock reading as a phrase in one language.
// Implementations are stateless and safe for concurrent use.
type Translator interface {
	Language() Language
	Translate(snapshot TimeSnapshot, level FuzzinessLevel, opts TranslationOptions) string
}

// periodRule returns the period marker for a reading, or "" for none.
type periodRule func(snapshot TimeSnapshot) periodKey

func meridiemPeriod(snapshot TimeSnapshot) periodKey {
	if snapshot.IsAfternoon {
		return periodPM
	}
	return periodAM
}

// phraseTranslator is the engine shared by the language translators; each
// language only supplies data.
type phraseTranslator struct {
	lang        Language
	numerals    NumeralTable
	zeroLead    string
	exactPeriod periodRule
	fuzzyPeriod periodRule
	dayParts    dayParts
	printer     *message.Printer
}

func (t *phraseTranslator) Language() Language {
	return t.lang
}

// Numerals exposes the translator's numeral table.
func (t *phraseTranslator) Numerals() NumeralTable {
	return t.numerals
}

func (t *phraseTranslator) Translate(snapshot TimeSnapshot, level FuzzinessLevel, opts TranslationOptions) string {
	switch level {
	case Exact:
		return t.exact(snapshot, opts)
	case MaxFuzzy:
		return t.printer.Sprintf(string(t.dayParts.resolve(snapshot.Hour24)))
	}

	b, ok := resolveBucket(level, snapshot.Minute)
	if !ok {
		return t.exact(snapshot, opts)
	}
	return t.rounded(snapshot, b, opts)
}

func (t *phraseTranslator) exact(snapshot TimeSnapshot, opts TranslationOptions) string {
	hour := snapshot.Hour(opts.Use24Hour)

	parts := make([]string, 0, 5)
	parts = append(parts, t.numerals.WordFor(hour, Feminine))
	if opts.IncludeUnits {
		parts = append(parts, t.unit(unitHourKey, hour))
	}
	parts = append(parts, t.minutePhrase(snapshot.Minute))
	if opts.IncludeUnits {
		parts = append(parts, t.unit(unitMinuteKey, snapshot.Minute))
	}
	if !opts.Use24Hour && t.exactPeriod != nil {
		if key := t.exactPeriod(snapshot); key != "" {
			parts = append(parts, t.printer.Sprintf(string(key)))
		}
	}

	return strings.Join(parts, " ")
}

func (t *phraseTranslator) rounded(snapshot TimeSnapshot, b bucket, opts TranslationOptions) string {
	hour := snapshot.Hour(opts.Use24Hour)
	if b.nextHour {
		hour = snapshot.NextHour(opts.Use24Hour)
	}

	hourPhrase := t.numerals.WordFor(hour, Feminine)
	if b.units && opts.IncludeUnits {
		hourPhrase += " " + t.unit(unitHourKey, hour)
	}

	var minuteWord string
	if b.minuteArg {
		minuteWord = t.numerals.WordFor(snapshot.Minute, Masculine)
	}

	var period string
	if b.period && !opts.Use24Hour && t.fuzzyPeriod != nil {
		if key := t.fuzzyPeriod(snapshot); key != "" {
			period = " " + t.printer.Sprintf(string(key))
		}
	}

	return t.printer.Sprintf(string(b.phrase), hourPhrase, minuteWord, period)
}

// minutePhrase spells a minute for the Exact level, leading single digits
// with the language's zero word ("oh five", "cero cinco").
func (t *phraseTranslator) minutePhrase(minute int) string {
	word := t.numerals.WordFor(minute, Masculine)
	if minute >= 0 && minute < 10 {
		return t.zeroLead + " " + word
	}
	return word
}

func (t *phraseTranslator) unit(key string, quantity int) string {
	return t.printer.Sprintf(key, quantity)
}
