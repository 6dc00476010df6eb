package fuzzyclock

// Gender selects the grammatical form of a numeral. Hours are feminine in
// Spanish and Portuguese, minutes are masculine.
type Gender int

const (
	Masculine Gender = iota
	Feminine
)

// NumeralTable spells the numbers 0 through 59.
type NumeralTable struct {
	words    [60]string
	feminine map[int]string
	unknown  string
}

func newNumeralTable(words [60]string, feminine map[int]string, unknown string) NumeralTable {
	return NumeralTable{words: words, feminine: feminine, unknown: unknown}
}

// WordFor spells n in the requested gender. Numbers outside 0..59 yield
// the table's placeholder word.
func (t NumeralTable) WordFor(n int, gender Gender) string {
	if n < 0 || n >= len(t.words) {
		return t.unknown
	}
	if gender == Feminine {
		if word, ok := t.feminine[n]; ok {
			return word
		}
	}
	return t.words[n]
}

// Unknown returns the placeholder for out of range lookups.
func (t NumeralTable) Unknown() string {
	return t.unknown
}
