package parser

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func taipei(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)
	return loc
}

func newTestParser(t *testing.T, opts ...Option) *DateParser {
	t.Helper()
	p, err := New(opts...)
	require.NoError(t, err)
	return p
}

func TestParser_Timestamps(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	basetime := time.Date(2021, 7, 1, 0, 0, 0, 0, loc)

	tests := []struct {
		name     string
		input    string
		wantTime string // "2006-01-02 15:04:05"
	}{
		{"full datetime", "2013年二月二十八日下午四點三十分二十九秒", "2013-02-28 16:30:29"},
		{"bare clock", "7點4分", "2021-07-01 07:04:00"},
		{"this month with day", "本月三日", "2021-07-03 00:00:00"},
		{"compound relative and absolute", "兩年前的七月十五號下午三點半", "2019-07-15 15:30:00"},
		{"half past hour", "明天上午10點半", "2021-07-02 10:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAt(tt.input, basetime)
			require.NoError(t, err)
			require.Equal(t, ResultTimestamp, got.Type)
			require.Len(t, got.Times, 1)
			assert.Equal(t, tt.wantTime, got.Times[0].Format("2006-01-02 15:04:05"))
		})
	}
}

func TestParser_YearOnlyDefaults(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	got, err := p.ParseAt("2026年", basetime)
	require.NoError(t, err)
	require.Equal(t, ResultTimestamp, got.Type)

	tp := got.Points[0]
	assert.Equal(t, GranularityYear, tp.Granularity)
	assert.Equal(t, 2026, tp.Year.Value())
	assert.Equal(t, 1, tp.Month.Value())
	assert.Equal(t, 1, tp.Day.Value())
	assert.Equal(t, "2026-01-01 00:00:00", got.Times[0].Format("2006-01-02 15:04:05"))
}

func TestParser_Timedelta(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	basetime := time.Date(2024, 7, 15, 10, 0, 0, 0, loc)

	tests := []struct {
		name      string
		input     string
		wantDelta Delta
		wantTime  string // "2006-01-02"
	}{
		{"days after", "3天後", Delta{Days: 3, Sign: 1}, "2024-07-18"},
		{"days before", "33天前", Delta{Days: 33, Sign: -1}, "2024-06-12"},
		{"half month before", "半個月前", Delta{Days: 15, Sign: -1}, "2024-06-30"},
		{"fifteen days before", "15天前", Delta{Days: 15, Sign: -1}, "2024-06-30"},
		{"three and a half months before", "三個半月前", Delta{Days: 105, Sign: -1}, "2024-04-01"},
		{"weeks fold into days", "2個星期後", Delta{Days: 14, Sign: 1}, "2024-07-29"},
		// Month is the finest unit after the 半 rewrite, so the realized
		// instant keeps the default day.
		{"half year before", "半年前", Delta{Months: 6, Sign: -1}, "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAt(tt.input, basetime)
			require.NoError(t, err)
			require.Equal(t, ResultTimedelta, got.Type)
			require.NotNil(t, got.Delta)
			assert.Equal(t, tt.wantDelta, *got.Delta)
			require.Len(t, got.Times, 1)
			assert.Equal(t, tt.wantTime, got.Times[0].Format("2006-01-02"))
		})
	}
}

func TestParser_CompoundDeltaIsTimestamp(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	// A delta attached to explicit fields shifts the point instead of
	// producing a duration.
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)
	got, err := p.ParseAt("2年前7月15號", basetime)
	require.NoError(t, err)
	require.Equal(t, ResultTimestamp, got.Type)
	assert.Equal(t, "2022-07-15", got.Times[0].Format("2006-01-02"))
}

func TestParser_Timespan(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	// 2024-07-11 is a Thursday.
	basetime := time.Date(2024, 7, 11, 10, 0, 0, 0, loc)

	got, err := p.ParseAt("周六下午3點到5點", basetime)
	require.NoError(t, err)
	require.Equal(t, ResultTimespan, got.Type)
	require.Len(t, got.Times, 2)

	assert.Equal(t, "2024-07-13 15:00:00", got.Times[0].Format("2006-01-02 15:04:05"))
	// The second clause inherits the first clause's date and afternoon.
	assert.Equal(t, "2024-07-13 17:00:00", got.Times[1].Format("2006-01-02 15:04:05"))
}

func TestParser_TimespanInheritsDay(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	basetime := time.Date(2024, 7, 11, 10, 0, 0, 0, loc)

	got, err := p.ParseAt("周六3點到5點", basetime)
	require.NoError(t, err)
	require.Equal(t, ResultTimespan, got.Type)
	require.Len(t, got.Points, 2)
	assert.Equal(t, got.Points[0].Day.Value(), got.Points[1].Day.Value())
}

func TestParser_Invalid(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	basetime := time.Date(2024, 7, 15, 10, 0, 0, 0, loc)

	for _, input := range []string{"你好世界", "沒有時間資訊", ""} {
		got, err := p.ParseAt(input, basetime)
		require.NoError(t, err)
		assert.Equal(t, ResultInvalid, got.Type, "input %q", input)
	}
}

func TestParser_FestivalWithRelativeYear(t *testing.T) {
	loc := taipei(t)
	p := newTestParser(t)

	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	tests := []struct {
		name     string
		input    string
		wantDate string
	}{
		{"spring festival this year", "春節", "2024-02-10"},
		{"spring festival next year", "明年春節", "2025-01-29"},
		{"mid-autumn with explicit year", "2021年中秋節", "2021-09-21"},
		{"christmas", "聖誕節", "2024-12-25"},
		{"double tenth keeps its numeral runes", "雙十節", "2024-10-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAt(tt.input, basetime)
			require.NoError(t, err)
			require.Equal(t, ResultTimestamp, got.Type)
			assert.Equal(t, tt.wantDate, got.Times[0].Format("2006-01-02"))
		})
	}
}

func TestParser_WithNow(t *testing.T) {
	loc := taipei(t)
	fixedNow := time.Date(2021, 7, 1, 0, 0, 0, 0, loc)
	p := newTestParser(t, WithNow(func() time.Time { return fixedNow }))

	got, err := p.Parse("本月三日")
	require.NoError(t, err)
	require.Equal(t, ResultTimestamp, got.Type)
	assert.Equal(t, "2021-07-03", got.Times[0].Format("2006-01-02"))
}

func TestParser_MalformedBasetimeZoneConversion(t *testing.T) {
	// A UTC basetime is converted into the parser's zone before resolution.
	loc := taipei(t)
	p := newTestParser(t)

	// 2021-06-30 23:00 UTC is 2021-07-01 07:00 in Taipei.
	basetime := time.Date(2021, 6, 30, 23, 0, 0, 0, time.UTC)
	got, err := p.ParseAt("今天", basetime)
	require.NoError(t, err)
	require.Equal(t, ResultTimestamp, got.Type)
	assert.Equal(t, "2021-07-01", got.Times[0].Format("2006-01-02"))
	assert.Equal(t, loc.String(), got.Times[0].Location().String())
}
