package parser

import (
	"regexp"
	"strconv"
)

// Absolute-date patterns. Years are strictly 4-digit: 2- and 3-digit
// years would need century guessing, which is unambiguous to refuse.
var (
	reAbsYear  = regexp.MustCompile(`(\d{4})年`)
	reAbsMonth = regexp.MustCompile(`(10|11|12|[1-9])月`)
	reAbsDay   = regexp.MustCompile(`([0-3][0-9]|[1-9])[日號]`)

	// One combined clock pattern: minute and second are only meaningful
	// after an hour matched. A bare 半 after the hour means minute=30,
	// after the minute second=30.
	reAbsTime = regexp.MustCompile(`([0-2]?[0-9])[點時](半)?(?:([0-5]?[0-9])[分鐘](半)?(?:([0-5]?[0-9])秒?)?)?`)
)

// Period-of-day keyword sets. Matched after absolute time so an existing
// 12-hour-clock hour can be folded into 24-hour form.
var (
	reAM = regexp.MustCompile(`凌晨|清晨|早上|早晨|早間|晨間|今早|上午|白天|(?i:a\.?m\.?)`)
	rePM = regexp.MustCompile(`下午|中午|午後|晚上|夜間|夜裡|今晚|(?i:p\.?m\.?)`)
)

// normAbsoluteDate extracts explicit year, month and day values. The three
// passes are independent; a pass that finds nothing leaves its field
// unset.
func (r *spanResolver) normAbsoluteDate() error {
	if m := reAbsYear.FindStringSubmatch(r.text); m != nil {
		year, _ := strconv.Atoi(m[1])
		r.tp.Year = SetInt(year)
	}
	if m := reAbsMonth.FindStringSubmatch(r.text); m != nil {
		month, _ := strconv.Atoi(m[1])
		r.tp.Month = SetInt(month)
	}
	if m := reAbsDay.FindStringSubmatch(r.text); m != nil {
		day, _ := strconv.Atoi(m[1])
		r.tp.Day = SetInt(day)
	}
	return nil
}

// normAbsoluteTime extracts the clock fields with one combined pattern.
func (r *spanResolver) normAbsoluteTime() error {
	m := reAbsTime.FindStringSubmatch(r.text)
	if m == nil {
		return nil
	}

	hour, _ := strconv.Atoi(m[1])
	r.tp.Hour = SetInt(hour)
	if m[2] != "" {
		r.tp.Minute = SetInt(30)
	}

	if m[3] != "" {
		minute, _ := strconv.Atoi(m[3])
		r.tp.Minute = SetInt(minute)
		if m[4] != "" {
			r.tp.Second = SetInt(30)
		}
	}

	if m[5] != "" {
		second, _ := strconv.Atoi(m[5])
		r.tp.Second = SetInt(second)
	}

	return nil
}

// normPeriodOfDay records the period keyword and folds a previously
// extracted hour into 24-hour form. The fold is bounded: an AM match never
// drives the hour outside [0,11], a PM match never outside [12,23]. When
// no hour was extracted only the label is recorded.
func (r *spanResolver) normPeriodOfDay() error {
	if m := reAM.FindString(r.text); m != "" {
		r.tp.PeriodOfDay = m
		if r.tp.Hour.IsSet() && r.tp.Hour.Value() >= 12 && r.tp.Hour.Value() <= 23 {
			r.tp.Hour = SetInt(r.tp.Hour.Value() - 12)
		}
		return nil
	}

	if m := rePM.FindString(r.text); m != "" {
		r.tp.PeriodOfDay = m
		if r.tp.Hour.IsSet() && r.tp.Hour.Value() >= 0 && r.tp.Hour.Value() <= 11 {
			r.tp.Hour = SetInt(r.tp.Hour.Value() + 12)
		}
	}

	return nil
}
