package fuzzyclock

var englishNumerals = newNumeralTable([60]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	"twenty", "twenty-one", "twenty-two", "twenty-three", "twenty-four", "twenty-five", "twenty-six", "twenty-seven", "twenty-eight", "twenty-nine",
	"thirty", "thirty-one", "thirty-two", "thirty-three", "thirty-four", "thirty-five", "thirty-six", "thirty-seven", "thirty-eight", "thirty-nine",
	"forty", "forty-one", "forty-two", "forty-three", "forty-four", "forty-five", "forty-six", "forty-seven", "forty-eight", "forty-nine",
	"fifty", "fifty-one", "fifty-two", "fifty-three", "fifty-four", "fifty-five", "fifty-six", "fifty-seven", "fifty-eight", "fifty-nine",
}, nil, "unknown")

var englishPhrasebook = phrasebook{
	language: English,
	phrases: map[phraseKey]string{
		phraseOnTheHour:        "%[1]s o'clock",
		phraseMinutesPast:      "%[2]s past %[1]s%[3]s",
		phraseNearQuarterPast:  "about quarter past %[1]s%[3]s",
		phraseQuarterPast:      "quarter past %[1]s%[3]s",
		phraseTwentyPast:       "about twenty past %[1]s%[3]s",
		phraseNearHalfPast:     "almost half past %[1]s%[3]s",
		phraseHalfPast:         "half past %[1]s%[3]s",
		phraseAfterHalfPast:    "about half past %[1]s%[3]s",
		phraseNearQuarterTo:    "almost quarter to %[1]s%[3]s",
		phraseQuarterTo:        "quarter to %[1]s%[3]s",
		phraseAfterQuarterTo:   "about quarter to %[1]s%[3]s",
		phraseAlmostHour:       "almost %[1]s o'clock",
		phraseAboutQuarterPast: "about quarter past %[1]s",
		phraseAboutHalfPast:    "about half past %[1]s",
		phraseAboutQuarterTo:   "about quarter to %[1]s",
	},
	periods: map[periodKey]string{
		periodAM: "AM",
		periodPM: "PM",
	},
	dayParts: map[dayPartKey]string{
		dayPartMorning:   "morning",
		dayPartAfternoon: "afternoon",
		dayPartEvening:   "evening",
		dayPartNight:     "night",
	},
	hour:   unitWords{singular: "hour", plural: "hours"},
	minute: unitWords{singular: "minute", plural: "minutes"},
}

var englishDayParts = dayParts{
	ranges: []dayPartRange{
		{5, 11, dayPartMorning},
		{12, 16, dayPartAfternoon},
		{17, 21, dayPartEvening},
	},
	fallback: dayPartNight,
}

// EnglishTranslator renders readings in English. Exact and Fuzzy phrases
// carry an AM/PM suffix in 12-hour mode.
type EnglishTranslator struct {
	*phraseTranslator
}

// NewEnglishTranslator returns the English translator.
func NewEnglishTranslator() *EnglishTranslator {
	return &EnglishTranslator{&phraseTranslator{
		lang:        English,
		numerals:    englishNumerals,
		zeroLead:    "oh",
		exactPeriod: meridiemPeriod,
		fuzzyPeriod: meridiemPeriod,
		dayParts:    englishDayParts,
		printer:     newPrinter(English),
	}}
}
