package fuzzyclock

import (
	"fmt"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type periodKey string

const (
	periodAM        periodKey = "period.am"
	periodPM        periodKey = "period.pm"
	periodMorning   periodKey = "period.morning"
	periodAfternoon periodKey = "period.afternoon"
)

const (
	unitHourKey   = "unit.hour"
	unitMinuteKey = "unit.minute"
)

type unitWords struct {
	singular string
	plural   string
}

// phrasebook holds every string a language contributes to the catalog.
// Phrase templates receive the hour phrase, the minute word and the period
// suffix as arguments 1, 2 and 3 and reference them by explicit index.
type phrasebook struct {
	language Language
	phrases  map[phraseKey]string
	periods  map[periodKey]string
	dayParts map[dayPartKey]string
	hour     unitWords
	minute   unitWords
}

var phraseCatalog = sync.OnceValue(func() *catalog.Builder {
	builder, err := buildCatalog(englishPhrasebook, spanishPhrasebook, portuguesePhrasebook)
	if err != nil {
		panic(err)
	}
	return builder
})

func buildCatalog(books ...phrasebook) (*catalog.Builder, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))

	for _, book := range books {
		tag := book.language.Tag()

		for key, msg := range book.phrases {
			if err := builder.SetString(tag, string(key), msg); err != nil {
				return nil, fmt.Errorf("fuzzyclock: phrase %s/%s: %w", book.language, key, err)
			}
		}

		for key, msg := range book.periods {
			if err := builder.SetString(tag, string(key), msg); err != nil {
				return nil, fmt.Errorf("fuzzyclock: period %s/%s: %w", book.language, key, err)
			}
		}

		for key, msg := range book.dayParts {
			if err := builder.SetString(tag, string(key), msg); err != nil {
				return nil, fmt.Errorf("fuzzyclock: day part %s/%s: %w", book.language, key, err)
			}
		}

		// "=1" rather than the CLDR "one" form: Portuguese treats 0 as "one".
		units := map[string]unitWords{unitHourKey: book.hour, unitMinuteKey: book.minute}
		for key, words := range units {
			msg := plural.Selectf(1, "%d", "=1", words.singular, "other", words.plural)
			if err := builder.Set(tag, key, msg); err != nil {
				return nil, fmt.Errorf("fuzzyclock: unit %s/%s: %w", book.language, key, err)
			}
		}
	}

	return builder, nil
}

func newPrinter(lang Language) *message.Printer {
	return message.NewPrinter(lang.Tag(), message.Catalog(phraseCatalog()))
}
