package fuzzyclock

// phraseKey identifies a template in the phrase catalog.
type phraseKey string

const (
	phraseOnTheHour        phraseKey = "fuzzy.on_the_hour"
	phraseMinutesPast      phraseKey = "fuzzy.minutes_past"
	phraseNearQuarterPast  phraseKey = "fuzzy.near_quarter_past"
	phraseQuarterPast      phraseKey = "fuzzy.quarter_past"
	phraseTwentyPast       phraseKey = "fuzzy.twenty_past"
	phraseNearHalfPast     phraseKey = "fuzzy.near_half_past"
	phraseHalfPast         phraseKey = "fuzzy.half_past"
	phraseAfterHalfPast    phraseKey = "fuzzy.after_half_past"
	phraseNearQuarterTo    phraseKey = "fuzzy.near_quarter_to"
	phraseQuarterTo        phraseKey = "fuzzy.quarter_to"
	phraseAfterQuarterTo   phraseKey = "fuzzy.after_quarter_to"
	phraseAlmostHour       phraseKey = "fuzzy.almost_hour"
	phraseAboutQuarterPast phraseKey = "vague.quarter_past"
	phraseAboutHalfPast    phraseKey = "vague.half_past"
	phraseAboutQuarterTo   phraseKey = "vague.quarter_to"
)

// bucket describes how one minute range is phrased.
type bucket struct {
	phrase    phraseKey
	nextHour  bool
	units     bool
	period    bool
	minuteArg bool
}

type bucketRange struct {
	from, to int
	bucket   bucket
}

var fuzzyBuckets = []bucketRange{
	{0, 0, bucket{phrase: phraseOnTheHour}},
	{1, 7, bucket{phrase: phraseMinutesPast, units: true, period: true, minuteArg: true}},
	{8, 14, bucket{phrase: phraseNearQuarterPast, units: true, period: true}},
	{15, 15, bucket{phrase: phraseQuarterPast, units: true, period: true}},
	{16, 22, bucket{phrase: phraseTwentyPast, units: true, period: true}},
	{23, 29, bucket{phrase: phraseNearHalfPast, units: true, period: true}},
	{30, 30, bucket{phrase: phraseHalfPast, units: true, period: true}},
	{31, 37, bucket{phrase: phraseAfterHalfPast, units: true, period: true}},
	{38, 44, bucket{phrase: phraseNearQuarterTo, nextHour: true, units: true, period: true}},
	{45, 45, bucket{phrase: phraseQuarterTo, nextHour: true, units: true, period: true}},
	{46, 52, bucket{phrase: phraseAfterQuarterTo, nextHour: true, units: true, period: true}},
	{53, 59, bucket{phrase: phraseAlmostHour, nextHour: true}},
}

var veryFuzzyBuckets = []bucketRange{
	{0, 7, bucket{phrase: phraseOnTheHour, units: true}},
	{8, 22, bucket{phrase: phraseAboutQuarterPast, units: true}},
	{23, 37, bucket{phrase: phraseAboutHalfPast, units: true}},
	{38, 52, bucket{phrase: phraseAboutQuarterTo, nextHour: true, units: true}},
	{53, 59, bucket{phrase: phraseAlmostHour, nextHour: true}},
}

// resolveBucket picks the phrasing for minute at the Fuzzy or VeryFuzzy level.
func resolveBucket(level FuzzinessLevel, minute int) (bucket, bool) {
	var table []bucketRange
	switch level {
	case Fuzzy:
		table = fuzzyBuckets
	case VeryFuzzy:
		table = veryFuzzyBuckets
	default:
		return bucket{}, false
	}

	for _, r := range table {
		if minute >= r.from && minute <= r.to {
			return r.bucket, true
		}
	}
	return bucket{}, false
}

// dayPartKey identifies a MaxFuzzy label in the phrase catalog.
type dayPartKey string

const (
	dayPartSmallHours dayPartKey = "daypart.small_hours"
	dayPartMorning    dayPartKey = "daypart.morning"
	dayPartAfternoon  dayPartKey = "daypart.afternoon"
	dayPartEvening    dayPartKey = "daypart.evening"
	dayPartNight      dayPartKey = "daypart.night"
)

type dayPartRange struct {
	from, to int
	key      dayPartKey
}

// dayParts maps 24-hour ranges to labels; hours not covered use fallback.
type dayParts struct {
	ranges   []dayPartRange
	fallback dayPartKey
}

func (d dayParts) resolve(hour24 int) dayPartKey {
	for _, r := range d.ranges {
		if hour24 >= r.from && hour24 <= r.to {
			return r.key
		}
	}
	return d.fallback
}
