package fuzzyclock

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// normalizeIdentifier trims and case folds a user supplied identifier so
// "Español", "ESPAÑOL" and a decomposed "español" compare equal.
func normalizeIdentifier(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(value))
}
