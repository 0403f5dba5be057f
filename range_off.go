//go:build !chrono_large_dates

package chrono

/*
Supported calendar year range. The ±9999 default keeps every date
printable with a fixed four-digit year; build with the
chrono_large_dates tag for the extended ±999999 range.
*/
const (
	minYear = -9999
	maxYear = 9999
)
