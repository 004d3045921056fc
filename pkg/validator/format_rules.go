package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Latin letters including the Latin-1 supplement range (À-ÿ).
	latinLettersRegex = regexp.MustCompile(`^[A-Za-z\x{00C0}-\x{00FF}]+$`)

	// Something@something.something, unanchored.
	looseEmailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// LatinLetters validates that value is non-empty and consists only of ASCII
// letters and characters from the U+00C0-U+00FF block.
func LatinLetters(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return latinLettersRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters",
			Code:    "validation.letters",
		},
	}
}

// LooseEmail accepts anything shaped like local@domain.tld. It is deliberately
// permissive and does not follow RFC 5322.
func LooseEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return looseEmailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Code:    "validation.email",
		},
	}
}

// ExactDigits validates that value is exactly n ASCII digits.
func ExactDigits(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != n {
				return false
			}
			return strings.IndexFunc(value, func(r rune) bool {
				return r < '0' || r > '9'
			}) == -1
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain exactly %d digits", n),
			Code:    "validation.exact_digits",
		},
	}
}
