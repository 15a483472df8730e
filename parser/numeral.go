package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// digitMap maps Chinese digit runes to their values. 兩 is the colloquial
// form of 二 ("兩年前").
var digitMap = map[rune]int{
	'零': 0,
	'一': 1,
	'二': 2,
	'兩': 2,
	'三': 3,
	'四': 4,
	'五': 5,
	'六': 6,
	'七': 7,
	'八': 8,
	'九': 9,
}

// placeMap maps Chinese place-value runes to their multipliers.
var placeMap = map[rune]int{
	'十': 10,
	'百': 100,
	'千': 1000,
	'萬': 10000,
	'億': 100000000,
}

var reNumeral = regexp.MustCompile(`[零一二兩三四五六七八九十百千萬億]+`)

// protectedNumeralWords are expressions whose numeral runes are part of a
// name, not a quantity. 七夕 must not become 7夕.
var protectedNumeralWords = []string{"七夕", "臘八節", "萬聖節", "雙十節"}

// protectedRanges returns the byte ranges of every protected-word
// occurrence in text.
func protectedRanges(text string) [][2]int {
	var ranges [][2]int
	for _, word := range protectedNumeralWords {
		from := 0
		for {
			idx := strings.Index(text[from:], word)
			if idx < 0 {
				break
			}
			start := from + idx
			ranges = append(ranges, [2]int{start, start + len(word)})
			from = start + len(word)
		}
	}
	return ranges
}

func insideRange(ranges [][2]int, start, end int) bool {
	for _, r := range ranges {
		if start >= r[0] && end <= r[1] {
			return true
		}
	}
	return false
}

// chineseToArabic converts one run of Chinese numeral runes to an integer.
// "十五" -> 15, "兩" -> 2, "三十" -> 30.
func chineseToArabic(numeral string) (int, error) {
	result := 0
	temp := 0

	for _, r := range numeral {
		if d, ok := digitMap[r]; ok {
			temp = d
			continue
		}
		if p, ok := placeMap[r]; ok {
			// A bare place character counts as one unit: 十五 = 15.
			if temp == 0 {
				temp = 1
			}
			result += temp * p
			temp = 0
			continue
		}
		return 0, errors.Wrapf(ErrMalformedNumeral, "unexpected rune %q in %q", r, numeral)
	}

	return result + temp, nil
}

// translateNumerals rewrites every Chinese numeral run in text to Arabic
// digits, preserving the surrounding runes.
func translateNumerals(text string) (string, error) {
	spans := reNumeral.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text, nil
	}

	protected := protectedRanges(text)

	var b strings.Builder
	prev := 0
	for _, span := range spans {
		if insideRange(protected, span[0], span[1]) {
			continue
		}
		value, err := chineseToArabic(text[span[0]:span[1]])
		if err != nil {
			return "", err
		}
		b.WriteString(text[prev:span[0]])
		b.WriteString(strconv.Itoa(value))
		prev = span[1]
	}
	b.WriteString(text[prev:])

	return b.String(), nil
}
