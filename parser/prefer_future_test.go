package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreferFuture_Month(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	tests := []struct {
		name     string
		span     string
		settings Settings
		wantDate string
	}{
		{
			"past month moves to next year",
			"7月15號",
			Settings{PreferFuture: true},
			"2025-07-15",
		},
		{
			"future month stays",
			"10月15號",
			Settings{PreferFuture: true},
			"2024-10-15",
		},
		{
			"current month ties to this year",
			"8月15號",
			Settings{PreferFuture: true},
			"2024-08-15",
		},
		{
			"no preference keeps this year",
			"7月15號",
			Settings{},
			"2024-07-15",
		},
		{
			"explicit year blocks the heuristic",
			"2023年7月15號",
			Settings{PreferFuture: true},
			"2023-07-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := mustResolve(t, tt.span, basetime, nil, tt.settings)
			assert.Equal(t, tt.wantDate, tp.Time(loc).Format("2006-01-02"))
		})
	}
}

func TestPreferFuture_Day(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	tests := []struct {
		name     string
		span     string
		wantDate string
	}{
		{"past day moves to next month", "15號", "2024-09-15"},
		{"future day stays", "30號", "2024-08-30"},
		{"same day ties to today", "29號", "2024-08-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := mustResolve(t, tt.span, basetime, nil, Settings{PreferFuture: true})
			assert.Equal(t, tt.wantDate, tp.Time(loc).Format("2006-01-02"))
		})
	}
}

func TestPreferFuture_Hour(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	tests := []struct {
		name     string
		span     string
		wantTime string
	}{
		{"past hour moves to tomorrow", "8點", "2024-08-30 08:00"},
		{"future hour stays today", "20點", "2024-08-29 20:00"},
		{"explicit demonstrative blocks the heuristic", "今天8點", "2024-08-29 08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := mustResolve(t, tt.span, basetime, nil, Settings{PreferFuture: true})
			assert.Equal(t, tt.wantTime, tp.Time(loc).Format("2006-01-02 15:04"))
		})
	}
}

func TestPreferFuture_SkipsDeltas(t *testing.T) {
	loc := taipei(t)
	basetime := time.Date(2024, 8, 29, 10, 0, 0, 0, loc)

	// A pure duration must not be bumped by the heuristic.
	tp, delta, err := ResolveSpan("3天前", basetime, nil, Settings{PreferFuture: true})
	assert.NoError(t, err)
	assert.NotNil(t, delta)
	assert.Equal(t, "2024-08-26", tp.Time(loc).Format("2006-01-02"))
}
