package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// halfUnit describes how a fuzzy 半 quantity rewrites into an exact count
// of the next finer unit before the main delta match runs; the underlying
// date arithmetic only understands integers.
type halfUnit struct {
	value int
	unit  string
}

var halfUnits = map[string]halfUnit{
	"year":   {6, "個月"},
	"month":  {15, "天"},
	"day":    {12, "小時"},
	"hour":   {30, "分鐘"},
	"minute": {30, "秒鐘"},
}

// deltaRule matches "N unit 前/後". The value part also accepts 半 forms
// (半個月前, 3個半月前, 3年半前) which the half pass rewrites away before
// this rule is applied for real.
type deltaRule struct {
	key  string
	unit int
	re   *regexp.Regexp
}

const deltaRulePattern = `(?P<value>(?P<whole>\d+)?(?P<half>個?半)?)(?P<unit>%s)(?P<halfAfter>半)?[以之]?(?P<prep>[前後])`

func compileDeltaRule(key string, unit int, unitPattern string) deltaRule {
	return deltaRule{
		key:  key,
		unit: unit,
		re:   regexp.MustCompile(fmt.Sprintf(deltaRulePattern, unitPattern)),
	}
}

// deltaRules in match order. The minute rule's 分 keyword deliberately
// overlaps the second rule's: first match in table order wins, so a plain
// "N分後" always reads as minutes, never seconds.
var deltaRules = []deltaRule{
	compileDeltaRule("year", unitYear, `年`),
	compileDeltaRule("month", unitMonth, `個?月`),
	compileDeltaRule("day", unitDay, `天`),
	compileDeltaRule("week", unitWeek, `個?(?:周|週|星期|禮拜)`),
	compileDeltaRule("hour", unitHour, `個?(?:小時|鐘頭)`),
	compileDeltaRule("minute", unitMinute, `(?:分|分鐘)`),
	compileDeltaRule("second", unitSecond, `(?:分|秒鐘)`),
}

// unitWeek is not a TimePoint field; week deltas fold into days.
const unitWeek = -1

// matchGroups maps a submatch slice onto the pattern's group names.
func matchGroups(re *regexp.Regexp, m []string) map[string]string {
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			groups[name] = m[i]
		}
	}
	return groups
}

// normalizeHalfExpressions rewrites 半 phrasings into exact finer-unit
// counts: 半個月前 becomes 15天前, 3個半月前 becomes 105天前 (15 + 3*30),
// 3年半前 becomes 42個月前. Weeks have no half table entry and pass
// through untouched.
func (r *spanResolver) normalizeHalfExpressions() {
	for _, rule := range deltaRules {
		m := rule.re.FindStringSubmatch(r.text)
		if m == nil {
			continue
		}
		groups := matchGroups(rule.re, m)
		if groups["half"] == "" && groups["halfAfter"] == "" {
			continue
		}
		hu, ok := halfUnits[rule.key]
		if !ok {
			continue
		}

		value := hu.value
		if groups["whole"] != "" {
			whole, _ := strconv.Atoi(groups["whole"])
			value += whole * hu.value * 2
		}

		rewritten := fmt.Sprintf("%d%s%s", value, hu.unit, groups["prep"])
		r.text = strings.Replace(r.text, m[0], rewritten, 1)
		r.logger.Debug("normalized half expression", "rewritten", r.text)
	}
}

// normPrepDelta resolves "N unit 前/後" expressions. The matched unit
// shifts the basetime; every unit at or coarser than the finest matched
// one is then copied from the shifted instant, so "33天前" produces a
// full, consistent date, not just a day number. A span that resolved
// nothing before this stage is a pure duration and is reported as a
// Delta.
func (r *spanResolver) normPrepDelta() error {
	hadFields := r.tp.HasAnyField()

	r.normalizeHalfExpressions()

	curr := r.basetime
	var modified [unitCount]bool
	matched := false

	for _, rule := range deltaRules {
		m := rule.re.FindStringSubmatch(r.text)
		if m == nil {
			continue
		}
		groups := matchGroups(rule.re, m)
		if groups["whole"] == "" {
			continue
		}

		n, err := strconv.Atoi(groups["whole"])
		if err != nil {
			continue
		}
		direction := 1
		if groups["prep"] == "前" {
			direction = -1
		}

		if rule.unit == unitWeek {
			curr = curr.AddDate(0, 0, 7*direction*n)
			modified[unitDay] = true
			r.delta.add(unitDay, 7*n)
		} else {
			curr = shiftByUnit(curr, rule.unit, direction*n)
			modified[rule.unit] = true
			r.delta.add(rule.unit, n)
		}
		r.delta.Sign = direction
		matched = true

		// Consume the match so an overlapping later rule (second's 分)
		// cannot re-read it.
		r.text = strings.Replace(r.text, m[0], "", 1)

		r.logger.Debug("matched delta rule",
			"unit", rule.key, "value", n, "direction", direction)
	}

	if !matched {
		return nil
	}

	// A mentioned unit re-derives itself and every coarser unit from the
	// shifted instant.
	running := false
	for unit := unitSecond; unit >= unitYear; unit-- {
		if modified[unit] {
			running = true
		}
		if running {
			r.tp.setField(unit, fieldValueOf(curr, unit))
		}
	}

	if !hadFields {
		r.isDelta = true
	}

	return nil
}
