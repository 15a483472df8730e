package parser

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/hrygo/zhtime/parser/lunar"
)

// monthDay is a fixed month/day pair in either calendar.
type monthDay struct {
	Month int
	Day   int
}

// solarFestivals maps festival names to fixed solar-calendar dates
// (Taiwan usage).
var solarFestivals = map[string]monthDay{
	"元旦":    {1, 1},
	"西洋情人節": {2, 14},
	"情人節":   {2, 14},
	"婦女節":   {3, 8},
	"植樹節":   {3, 12},
	"愚人節":   {4, 1},
	"兒童節":   {4, 4},
	"勞動節":   {5, 1},
	"教師節":   {9, 28},
	"雙十節":   {10, 10},
	"國慶日":   {10, 10},
	"萬聖節":   {10, 31},
	"平安夜":   {12, 24},
	"聖誕節":   {12, 25},
	"行憲紀念日": {12, 25},
	"跨年":    {12, 31},
}

// lunarFestivals maps festival names to lunar-calendar dates; each needs a
// lunar-to-solar conversion for the context year.
var lunarFestivals = map[string]monthDay{
	"春節":   {1, 1},
	"大年初一": {1, 1},
	"元宵節":  {1, 15},
	"端午節":  {5, 5},
	"七夕":   {7, 7},
	"中元節":  {7, 15},
	"中秋節":  {8, 15},
	"重陽節":  {9, 9},
	"臘八節":  {12, 8},
}

// festivalAlternation builds the regex alternation of every festival and
// solar-term name, longest first so 西洋情人節 wins over 情人節.
func festivalAlternation() string {
	names := make([]string, 0, len(solarFestivals)+len(lunarFestivals)+len(lunar.TermNames)+1)
	for name := range solarFestivals {
		names = append(names, name)
	}
	for name := range lunarFestivals {
		names = append(names, name)
	}
	names = append(names, lunar.TermNames...)
	names = append(names, "除夕")

	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return strings.Join(names, "|")
}

// normHoliday resolves festival and solar-term names to a solar month/day.
// The year comes from the span's own year field when set, otherwise from
// the basetime. 小寒 and 大寒 are reckoned against the following solar
// year in the source convention.
func (r *spanResolver) normHoliday() error {
	name, ok := matchFestival(r.text)
	if !ok {
		return nil
	}

	year := r.tp.Year.Or(r.basetime.Year())

	if md, ok := solarFestivals[name]; ok {
		r.tp.Year = SetInt(year)
		r.tp.Month = SetInt(md.Month)
		r.tp.Day = SetInt(md.Day)
		return nil
	}

	if md, ok := lunarFestivals[name]; ok {
		solar, err := lunar.ToSolar(year, md.Month, md.Day, false)
		if err != nil {
			return wrapTableRange(err, name, year)
		}
		r.tp.Year = SetInt(solar.Year())
		r.tp.Month = SetInt(int(solar.Month()))
		r.tp.Day = SetInt(solar.Day())
		return nil
	}

	if name == "除夕" {
		eve, err := lunar.NewYearEve(year + 1)
		if err != nil {
			return wrapTableRange(err, name, year+1)
		}
		r.tp.Year = SetInt(eve.Year())
		r.tp.Month = SetInt(int(eve.Month()))
		r.tp.Day = SetInt(eve.Day())
		return nil
	}

	if lunar.IsTermName(name) {
		lookupYear := year
		if name == "小寒" || name == "大寒" {
			lookupYear++
		}
		month, day, err := lunar.SolarTermDay(lookupYear, name)
		if err != nil {
			return wrapTableRange(err, name, lookupYear)
		}
		r.tp.Year = SetInt(lookupYear)
		r.tp.Month = SetInt(month)
		r.tp.Day = SetInt(day)
		return nil
	}

	return nil
}

// matchFestival finds the longest festival or solar-term name present in
// the span.
func matchFestival(text string) (string, bool) {
	best := ""
	check := func(name string) {
		if strings.Contains(text, name) && len(name) > len(best) {
			best = name
		}
	}
	for name := range solarFestivals {
		check(name)
	}
	for name := range lunarFestivals {
		check(name)
	}
	for _, name := range lunar.TermNames {
		check(name)
	}
	check("除夕")

	return best, best != ""
}

// wrapTableRange maps the lunar package's range error onto the parser's
// taxonomy so callers only match one sentinel.
func wrapTableRange(err error, name string, year int) error {
	if errors.Is(err, lunar.ErrOutOfRange) {
		return errors.Wrapf(ErrOutOfTableRange, "%s of %d", name, year)
	}
	return err
}
