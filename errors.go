package fuzzyclock

import (
	"errors"
	"fmt"
)

// ErrUnknownLanguage indicates that a language identifier matched no translator.
var ErrUnknownLanguage = errors.New("fuzzyclock: unknown language")

// ErrUnknownFuzziness indicates that a fuzziness identifier matched no level.
var ErrUnknownFuzziness = errors.New("fuzzyclock: unknown fuzziness level")

// ErrInvalidTime marks an hour or minute outside the 24-hour clock.
var ErrInvalidTime = errors.New("fuzzyclock: invalid time")

// IdentifierError reports the raw value a caller supplied for an option.
type IdentifierError struct {
	Option string
	Value  string
	Err    error
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("%v %q", e.Err, e.Value)
}

func (e *IdentifierError) Unwrap() error {
	return e.Err
}

func unknownLanguage(value string) error {
	return &IdentifierError{Option: "language", Value: value, Err: ErrUnknownLanguage}
}

func unknownFuzziness(value string) error {
	return &IdentifierError{Option: "fuzziness level", Value: value, Err: ErrUnknownFuzziness}
}
