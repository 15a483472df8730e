package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormHoliday_SolarFestivals(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	tests := []struct {
		span     string
		wantDate string
	}{
		{"元旦", "2024-01-01"},
		{"兒童節", "2024-04-04"},
		{"雙十節", "2024-10-10"},
		{"國慶日", "2024-10-10"},
		{"平安夜", "2024-12-24"},
		{"聖誕節", "2024-12-25"},
	}

	for _, tt := range tests {
		t.Run(tt.span, func(t *testing.T) {
			tp := mustResolve(t, tt.span, basetime, nil, Settings{})
			assert.Equal(t, tt.wantDate, tp.Time(loc).Format("2006-01-02"))
		})
	}
}

func TestNormHoliday_LunarFestivals(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2021, 3, 1, 10, 0, 0, 0, loc)

	tests := []struct {
		span     string
		wantDate string
	}{
		{"春節", "2021-02-12"},
		{"元宵節", "2021-02-26"},
		{"端午節", "2021-06-14"},
		{"中秋節", "2021-09-21"},
		{"重陽節", "2021-10-14"},
	}

	for _, tt := range tests {
		t.Run(tt.span, func(t *testing.T) {
			tp := mustResolve(t, tt.span, basetime, nil, Settings{})
			assert.Equal(t, tt.wantDate, tp.Time(loc).Format("2006-01-02"))
		})
	}
}

func TestNormHoliday_NewYearEve(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	// 除夕 names the eve of the coming lunar new year.
	tp := mustResolve(t, "除夕", basetime, nil, Settings{})
	assert.Equal(t, "2025-01-28", tp.Time(loc).Format("2006-01-02"))
}

func TestNormHoliday_SolarTerms(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	tests := []struct {
		span     string
		wantDate string
	}{
		// 小寒 rolls to the following solar year.
		{"小寒", "2025-01-05"},
		{"冬至", "2024-12-21"},
		{"清明", "2024-04-04"},
	}

	for _, tt := range tests {
		t.Run(tt.span, func(t *testing.T) {
			tp := mustResolve(t, tt.span, basetime, nil, Settings{})
			assert.Equal(t, tt.wantDate, tp.Time(loc).Format("2006-01-02"))
		})
	}
}

func TestNormHoliday_OutOfTableRange(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	_, _, err := ResolveSpan("2150年中秋節", basetime, nil, Settings{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfTableRange)
}

func TestMatchFestival_LongestWins(t *testing.T) {
	name, ok := matchFestival("西洋情人節快樂")
	require.True(t, ok)
	assert.Equal(t, "西洋情人節", name)
}

func TestFestivalAlternation_LongestFirst(t *testing.T) {
	alt := festivalAlternation()
	require.NotEmpty(t, alt)

	// Longer names must precede shorter ones so the regex engine prefers
	// them.
	assert.Less(t,
		strings.Index(alt, "西洋情人節"),
		strings.Index(alt, "情人節"))
}
