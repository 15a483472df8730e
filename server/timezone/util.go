// Package timezone provides timezone utilities shared by the parser
// service: parsing and validating IANA identifiers, day-boundary helpers
// and pre-loaded locations for common East-Asian zones.
package timezone

import (
	"fmt"
	"time"
)

// Default location constants
var (
	// UTC is the coordinated universal time timezone
	UTC = time.UTC

	// Local is the local timezone
	Local = time.Local
)

// ParseTimezone parses an IANA timezone identifier (e.g., "Asia/Taipei").
// If the timezone is invalid, returns UTC and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

// MustParseTimezone parses a timezone or panics if invalid.
// Use this for constants that are known to be valid at compile time.
func MustParseTimezone(tz string) *time.Location {
	loc, err := ParseTimezone(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "UTC" {
		return true
	}

	_, err := time.LoadLocation(tz)
	return err == nil
}

// StartOfDay returns the start of the day (00:00:00) in the given timezone.
func StartOfDay(t time.Time, tz *time.Location) time.Time {
	if tz == nil {
		tz = UTC
	}
	return time.Date(t.In(tz).Year(), t.In(tz).Month(), t.In(tz).Day(), 0, 0, 0, 0, tz)
}

// EndOfDay returns the end of the day (23:59:59.999999999) in the given timezone.
func EndOfDay(t time.Time, tz *time.Location) time.Time {
	if tz == nil {
		tz = UTC
	}
	return time.Date(t.In(tz).Year(), t.In(tz).Month(), t.In(tz).Day(), 23, 59, 59, 999999999, tz)
}

// NowInTimezone returns the current time in the given timezone.
func NowInTimezone(tz *time.Location) time.Time {
	if tz == nil {
		tz = UTC
	}
	return time.Now().In(tz)
}

// Common timezone constants
const (
	// TimezoneUTC is the UTC timezone identifier
	TimezoneUTC = "UTC"

	// TimezoneAsiaTaipei is the Taiwan Standard Time timezone
	TimezoneAsiaTaipei = "Asia/Taipei"

	// TimezoneAsiaShanghai is the China Standard Time timezone
	TimezoneAsiaShanghai = "Asia/Shanghai"

	// TimezoneAsiaHongKong is the Hong Kong Time timezone
	TimezoneAsiaHongKong = "Asia/Hong_Kong"

	// TimezoneAsiaTokyo is the Japan Standard Time timezone
	TimezoneAsiaTokyo = "Asia/Tokyo"
)

// Common timezone locations (pre-loaded for performance)
var (
	// LocationAsiaTaipei is the pre-loaded Asia/Taipei location
	LocationAsiaTaipei = MustParseTimezone(TimezoneAsiaTaipei)

	// LocationAsiaShanghai is the pre-loaded Asia/Shanghai location
	LocationAsiaShanghai = MustParseTimezone(TimezoneAsiaShanghai)

	// LocationAsiaHongKong is the pre-loaded Asia/Hong_Kong location
	LocationAsiaHongKong = MustParseTimezone(TimezoneAsiaHongKong)

	// LocationAsiaTokyo is the pre-loaded Asia/Tokyo location
	LocationAsiaTokyo = MustParseTimezone(TimezoneAsiaTokyo)
)
