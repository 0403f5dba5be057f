/*
Package chrono implements proleptic-Gregorian calendar arithmetic and
RFC 3339 timestamp codec operations by way of small, copyable value
types.

  - [Duration]: a signed, nanosecond-precision span of time
  - [Date]: a calendar date held as a linear day count
  - [Time]: a wall-clock time of day
  - [DateTime]: [Date] and [Time] combined, offset-naive
  - [UtcOffset]: a fixed east/west-of-UTC offset
  - [OffsetDateTime]: the complete timezone-aware instant
  - [Instant]: an opaque monotonic-clock handle
  - [Timestamp]: the RFC 3339 codec's epoch-based value

No type in this package contains shared mutable state; instances may
be freely copied and shared across goroutines.
*/
package chrono

/*
chrono.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"math"
	"math/big"
	"strconv"
)

/*
official import aliases.
*/
var (
	itoa      func(int) string        = strconv.Itoa
	fmtInt    func(int64, int) string = strconv.FormatInt
	newBigInt func(int64) *big.Int    = big.NewInt
)

const (
	nsPerSecond int64 = 1_000_000_000
	nsPerMilli  int64 = 1_000_000
	nsPerMicro  int64 = 1_000

	secsPerMinute int64 = 60
	secsPerHour   int64 = 3_600
	secsPerDay    int64 = 86_400
	secsPerWeek   int64 = 604_800
)

/*
Must returns v, or panics if err is non-nil. It pairs with any of the
error-returning constructors in this package at call sites where the
caller has already guaranteed validity and treats violation as a
logic bug rather than a data-quality issue.
*/
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// digit helpers shared by every fixed-position codec in this package.
func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func toInt2(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

// put2 writes v (0..99) at buf[i:i+2].
func put2(buf []byte, i, v int) {
	buf[i] = byte('0' + v/10)
	buf[i+1] = byte('0' + v%10)
}

// put4 writes v (0..9999) at buf[i:i+4].
func put4(buf []byte, i, v int) {
	buf[i] = byte('0' + (v/1000)%10)
	buf[i+1] = byte('0' + (v/100)%10)
	buf[i+2] = byte('0' + (v/10)%10)
	buf[i+3] = byte('0' + v%10)
}

// floorDiv rounds the quotient toward negative infinity, unlike Go's
// native truncating division.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 { return a - floorDiv(a, b)*b }

// addInt64 and mulInt64 report overflow instead of wrapping.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (s > a) == (b > 0) {
		return s, true
	}
	return 0, false
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	// p/b wraps silently for MinInt64/-1, masking the overflow.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) || p/b != a {
		return 0, false
	}
	return p, true
}
