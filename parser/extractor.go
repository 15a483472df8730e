package parser

import (
	"regexp"
	"strings"
)

// buildSpanPattern assembles the single alternation used to locate time
// expressions in sanitized text. Segment order matters: the regexp engine
// prefers earlier alternatives at the same position, so the delta segment
// must come before the bare month/day segments or "3個月前" would split
// into a bare "3個月" and dangling text.
func buildSpanPattern() string {
	segments := []string{
		// explicit 4-digit year
		`\d{4}年`,
		// duration with a 前/後 preposition, half forms included
		`(?:\d+)?(?:個?半)?(?:年|個?月|天|個?(?:周|週|星期|禮拜)|個?(?:小時|鐘頭)|分鐘|分|秒鐘)半?[以之]?[前後]`,
		// widened demonstratives: 前年, 大前年, 後天, 大大後天
		`大*[前後][年天日]`,
		// single-character demonstratives
		`[去昨今本明隔次][年天日]`,
		// relative months
		`(?:上+個|下+個|這個|本)月`,
		// weeks, optionally prefixed and optionally carrying a weekday digit
		`(?:上+個?|下+個?|這個?|本)?(?:周|週|星期|禮拜)[1-7]?`,
		// festivals and solar terms
		festivalAlternation(),
		// bare month and day
		`(?:10|11|12|[1-9])月`,
		`(?:[0-3][0-9]|[1-9])[日號]`,
		// clock time
		`[0-2]?[0-9][點時]半?(?:[0-5]?[0-9][分鐘]半?(?:[0-5]?[0-9]秒?)?)?`,
		// period-of-day words
		`凌晨|清晨|早上|早晨|早間|晨間|今早|上午|白天|(?i:a\.?m\.?)`,
		`下午|中午|午後|晚上|夜間|夜裡|今晚|(?i:p\.?m\.?)`,
	}
	return strings.Join(segments, "|")
}

var reSpan = regexp.MustCompile(buildSpanPattern())

// ExtractSpans finds the time-expression spans in sanitized text.
// Adjacent matches fuse into one span, so "2年前7月15號下午3點半" comes
// back whole while "周6 3點到5點" splits where the connective breaks
// adjacency.
func ExtractSpans(text string) []string {
	locs := reSpan.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var spans []string
	start, end := locs[0][0], locs[0][1]
	for _, loc := range locs[1:] {
		if loc[0] == end {
			end = loc[1]
			continue
		}
		spans = append(spans, text[start:end])
		start, end = loc[0], loc[1]
	}
	spans = append(spans, text[start:end])

	return spans
}
