package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// demonstrativeShifts maps single-character year/day demonstratives to
// their shift magnitude.
var demonstrativeShifts = map[rune]int{
	'前': -2,
	'去': -1,
	'昨': -1,
	'今': 0,
	'本': 0,
	'明': 1,
	'次': 1,
	'隔': 1,
	'後': 2,
}

var (
	reRelYear  = regexp.MustCompile(`(大*前|[去今本明隔次]|大*後)年`)
	reRelMonth = regexp.MustCompile(`(上+個|下+個|這個|本)月`)
	reRelDay   = regexp.MustCompile(`(大*前|[昨今本明隔次]|大*後)[天日]`)
	reRelWeek  = regexp.MustCompile(`(上+個?|下+個?|這個?|本)?(?:周|週|星期|禮拜)([1-7]?)`)
)

// demonstrativeShift resolves a year/day demonstrative, where a run of
// leading 大 characters widens the shift away from zero: 大前年 is -3,
// 大大後天 +4.
func demonstrativeShift(expr string) int {
	extra := strings.Count(expr, "大")
	runes := []rune(expr)
	base := demonstrativeShifts[runes[len(runes)-1]]
	if base < 0 {
		return base - extra
	}
	return base + extra
}

// runShift resolves a month/week demonstrative prefix, where the run count
// of 上 or 下 is the shift magnitude: 上上個月 is -2. 這個/本 shift
// nothing.
func runShift(expr string) int {
	if n := strings.Count(expr, "上"); n > 0 {
		return -n
	}
	return strings.Count(expr, "下")
}

// weekdayMonday0 returns t's weekday with Monday as 0, matching the 1-7
// digits of 星期1..星期7.
func weekdayMonday0(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// normRelative resolves demonstrative expressions by shifting the
// basetime. All four passes run unconditionally; the write-back cascade at
// the end makes the finest matched granularity decide which upper fields
// get stamped: any match overwrites the year, a month/day/week match also
// the month, a day/week match also the day.
func (r *spanResolver) normRelative() error {
	curr := r.basetime
	var modYear, modMonth, modDay bool

	if m := reRelYear.FindStringSubmatch(r.text); m != nil {
		modYear = true
		curr = curr.AddDate(demonstrativeShift(m[1]), 0, 0)
	}

	if m := reRelMonth.FindStringSubmatch(r.text); m != nil {
		modMonth = true
		curr = curr.AddDate(0, runShift(m[1]), 0)
	}

	if m := reRelDay.FindStringSubmatch(r.text); m != nil {
		modDay = true
		curr = curr.AddDate(0, 0, demonstrativeShift(m[1]))
	}

	if m := reRelWeek.FindStringSubmatch(r.text); m != nil && (m[1] != "" || m[2] != "") {
		modDay = true
		curr = curr.AddDate(0, 0, 7*runShift(m[1]))

		if m[2] != "" {
			target, _ := strconv.Atoi(m[2])
			curr = curr.AddDate(0, 0, (target-1)-weekdayMonday0(curr))

			// A bare weekday ("星期5") that already occurred this week
			// names the next one when the caller prefers the future.
			if m[1] == "" && r.settings.PreferFuture && target-1 < weekdayMonday0(r.basetime) {
				curr = curr.AddDate(0, 0, 7)
			}
		}
	}

	if modYear || modMonth || modDay {
		r.tp.Year = SetInt(curr.Year())
	}
	if modMonth || modDay {
		r.tp.Month = SetInt(int(curr.Month()))
	}
	if modDay {
		r.tp.Day = SetInt(curr.Day())
	}

	return nil
}
