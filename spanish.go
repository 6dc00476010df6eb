package fuzzyclock

var spanishNumerals = newNumeralTable([60]string{
	"cero", "un", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiún", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
	"treinta", "treinta y un", "treinta y dos", "treinta y tres", "treinta y cuatro", "treinta y cinco", "treinta y seis", "treinta y siete", "treinta y ocho", "treinta y nueve",
	"cuarenta", "cuarenta y un", "cuarenta y dos", "cuarenta y tres", "cuarenta y cuatro", "cuarenta y cinco", "cuarenta y seis", "cuarenta y siete", "cuarenta y ocho", "cuarenta y nueve",
	"cincuenta", "cincuenta y un", "cincuenta y dos", "cincuenta y tres", "cincuenta y cuatro", "cincuenta y cinco", "cincuenta y seis", "cincuenta y siete", "cincuenta y ocho", "cincuenta y nueve",
}, map[int]string{
	1:  "una",
	21: "veintiuna",
	31: "treinta y una",
	41: "cuarenta y una",
	51: "cincuenta y una",
}, "desconocido")

var spanishPhrasebook = phrasebook{
	language: Spanish,
	phrases: map[phraseKey]string{
		phraseOnTheHour:        "%[1]s en punto",
		phraseMinutesPast:      "%[1]s y %[2]s%[3]s",
		phraseNearQuarterPast:  "casi %[1]s y cuarto%[3]s",
		phraseQuarterPast:      "%[1]s y cuarto%[3]s",
		phraseTwentyPast:       "%[1]s y veinte%[3]s",
		phraseNearHalfPast:     "casi %[1]s y media%[3]s",
		phraseHalfPast:         "%[1]s y media%[3]s",
		phraseAfterHalfPast:    "pasando %[1]s y media%[3]s",
		phraseNearQuarterTo:    "casi cuarto para %[1]s%[3]s",
		phraseQuarterTo:        "cuarto para %[1]s%[3]s",
		phraseAfterQuarterTo:   "casi %[1]s%[3]s",
		phraseAlmostHour:       "casi %[1]s en punto",
		phraseAboutQuarterPast: "como %[1]s y cuarto",
		phraseAboutHalfPast:    "como %[1]s y media",
		phraseAboutQuarterTo:   "casi cuarto para %[1]s",
	},
	periods: map[periodKey]string{
		periodAM: "AM",
		periodPM: "PM",
	},
	dayParts: map[dayPartKey]string{
		dayPartMorning:   "mañana",
		dayPartAfternoon: "tarde",
		dayPartEvening:   "atardecer",
		dayPartNight:     "noche",
	},
	hour:   unitWords{singular: "hora", plural: "horas"},
	minute: unitWords{singular: "minuto", plural: "minutos"},
}

var spanishDayParts = dayParts{
	ranges: []dayPartRange{
		{5, 11, dayPartMorning},
		{12, 16, dayPartAfternoon},
		{17, 21, dayPartEvening},
	},
	fallback: dayPartNight,
}

// SpanishTranslator renders readings in Spanish with feminine hour numerals
// ("una", "veintiuna") and masculine minute numerals ("un", "veintiún").
type SpanishTranslator struct {
	*phraseTranslator
}

// NewSpanishTranslator returns the Spanish translator.
func NewSpanishTranslator() *SpanishTranslator {
	return &SpanishTranslator{&phraseTranslator{
		lang:        Spanish,
		numerals:    spanishNumerals,
		zeroLead:    "cero",
		exactPeriod: meridiemPeriod,
		fuzzyPeriod: meridiemPeriod,
		dayParts:    spanishDayParts,
		printer:     newPrinter(Spanish),
	}}
}
