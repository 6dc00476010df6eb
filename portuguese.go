package fuzzyclock

var portugueseNumerals = newNumeralTable([60]string{
	"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	"dez", "onze", "doze", "treze", "catorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
	"vinte", "vinte e um", "vinte e dois", "vinte e três", "vinte e quatro", "vinte e cinco", "vinte e seis", "vinte e sete", "vinte e oito", "vinte e nove",
	"trinta", "trinta e um", "trinta e dois", "trinta e três", "trinta e quatro", "trinta e cinco", "trinta e seis", "trinta e sete", "trinta e oito", "trinta e nove",
	"quarenta", "quarenta e um", "quarenta e dois", "quarenta e três", "quarenta e quatro", "quarenta e cinco", "quarenta e seis", "quarenta e sete", "quarenta e oito", "quarenta e nove",
	"cinquenta", "cinquenta e um", "cinquenta e dois", "cinquenta e três", "cinquenta e quatro", "cinquenta e cinco", "cinquenta e seis", "cinquenta e sete", "cinquenta e oito", "cinquenta e nove",
}, map[int]string{
	1:  "uma",
	2:  "duas",
	21: "vinte e uma",
	22: "vinte e duas",
	31: "trinta e uma",
	32: "trinta e duas",
	41: "quarenta e uma",
	42: "quarenta e duas",
	51: "cinquenta e uma",
	52: "cinquenta e duas",
}, "desconhecido")

var portuguesePhrasebook = phrasebook{
	language: Portuguese,
	phrases: map[phraseKey]string{
		phraseOnTheHour:        "%[1]s em ponto",
		phraseMinutesPast:      "%[1]s e %[2]s%[3]s",
		phraseNearQuarterPast:  "quase %[1]s e quinze%[3]s",
		phraseQuarterPast:      "%[1]s e quinze%[3]s",
		phraseTwentyPast:       "%[1]s e vinte%[3]s",
		phraseNearHalfPast:     "quase %[1]s e meia%[3]s",
		phraseHalfPast:         "%[1]s e meia%[3]s",
		phraseAfterHalfPast:    "passando %[1]s e meia%[3]s",
		phraseNearQuarterTo:    "quase quinze para %[1]s%[3]s",
		phraseQuarterTo:        "quinze para %[1]s%[3]s",
		phraseAfterQuarterTo:   "quase %[1]s%[3]s",
		phraseAlmostHour:       "quase %[1]s em ponto",
		phraseAboutQuarterPast: "cerca de %[1]s e quinze",
		phraseAboutHalfPast:    "cerca de %[1]s e meia",
		phraseAboutQuarterTo:   "quase quinze para %[1]s",
	},
	periods: map[periodKey]string{
		periodMorning:   "da manhã",
		periodAfternoon: "da tarde",
	},
	dayParts: map[dayPartKey]string{
		dayPartSmallHours: "madrugada",
		dayPartMorning:    "manhã",
		dayPartAfternoon:  "tarde",
		dayPartNight:      "noite",
	},
	hour:   unitWords{singular: "hora", plural: "horas"},
	minute: unitWords{singular: "minuto", plural: "minutos"},
}

var portugueseDayParts = dayParts{
	ranges: []dayPartRange{
		{0, 5, dayPartSmallHours},
		{6, 11, dayPartMorning},
		{12, 18, dayPartAfternoon},
	},
	fallback: dayPartNight,
}

// portugueseDayPeriod names the part of the day for 12-hour fuzzy phrases.
// Noon and the evening hours carry no marker.
func portugueseDayPeriod(snapshot TimeSnapshot) periodKey {
	switch {
	case snapshot.Hour24 >= 6 && snapshot.Hour24 <= 11:
		return periodMorning
	case snapshot.Hour24 >= 13 && snapshot.Hour24 <= 17:
		return periodAfternoon
	default:
		return ""
	}
}

// PortugueseTranslator renders readings in Portuguese. Exact phrases never
// carry a period marker; fuzzy ones use "da manhã" and "da tarde".
type PortugueseTranslator struct {
	*phraseTranslator
}

// NewPortugueseTranslator returns the Portuguese translator.
func NewPortugueseTranslator() *PortugueseTranslator {
	return &PortugueseTranslator{&phraseTranslator{
		lang:        Portuguese,
		numerals:    portugueseNumerals,
		zeroLead:    "zero",
		fuzzyPeriod: portugueseDayPeriod,
		dayParts:    portugueseDayParts,
		printer:     newPrinter(Portuguese),
	}}
}
