//go:build chrono_large_dates

package chrono

/*
Extended calendar year range, enabled via the chrono_large_dates
build tag. Years beyond ±9999 render with a variable-width year
field.
*/
const (
	minYear = -999999
	maxYear = 999999
)
