package parser

import "regexp"

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reParticle   = regexp.MustCompile(`[的]+`)

	// 星期天 and 星期日 normalize to 星期7 so the weekday rules only ever
	// see digits 1-7.
	reWeekdaySunday = regexp.MustCompile(`(周|週|星期|禮拜)[天日]`)
)

// Sanitize prepares raw text for span extraction: strips whitespace and
// language particles, converts Chinese numerals to Arabic digits and
// normalizes idiomatic weekday variants.
//
// A numeral run containing an unrecognized rune fails the whole input with
// ErrMalformedNumeral; that is a contract violation, not an ambiguity.
func Sanitize(text string) (string, error) {
	s := reWhitespace.ReplaceAllString(text, "")
	s = reParticle.ReplaceAllString(s, "")

	s, err := translateNumerals(s)
	if err != nil {
		return "", err
	}

	s = reWeekdaySunday.ReplaceAllString(s, "${1}7")

	return s, nil
}
