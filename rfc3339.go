package chrono

/*
rfc3339.go implements the byte-level RFC 3339 timestamp codec. The
codec is a self-contained leaf: it operates on the epoch-based
Timestamp value and carries its own calendar tables, so it remains
reusable without the full Date/Time stack. Bridging methods to and
from OffsetDateTime live at the bottom of this file.
*/

/*
Timestamp implements the RFC 3339 codec's epoch-based value: a count
of whole seconds since 1970-01-01T00:00:00Z plus a non-negative
sub-second nanosecond component. The representable range is the
epoch through 9999-12-31T23:59:59.999999999Z, the widest span the
fixed four-digit year field can express.
*/
type Timestamp struct {
	sec  int64
	nsec int32
}

// latest second the fixed-width wire form can carry
// (9999-12-31T23:59:59Z).
const maxTimestampSec = 253_402_300_799

/*
TimestampFromUnix returns an instance of [Timestamp] alongside an
error following an attempt to compose sec whole seconds and nsec
nanoseconds since the Unix epoch. [ErrOutOfRange] is returned when
either component falls outside the representable range.
*/
func TimestampFromUnix(sec int64, nsec int32) (Timestamp, error) {
	if sec < 0 || maxTimestampSec < sec || nsec < 0 || 999_999_999 < nsec {
		return Timestamp{}, ErrOutOfRange
	}
	return Timestamp{sec: sec, nsec: nsec}, nil
}

/*
Unix returns the whole seconds since the Unix epoch of the receiver
instance.
*/
func (r Timestamp) Unix() int64 { return r.sec }

/*
Nanosecond returns the sub-second component of the receiver instance
in nanoseconds (0..999999999).
*/
func (r Timestamp) Nanosecond() int { return int(r.nsec) }

/*
CheckedAdd returns the receiver shifted by d. The Boolean value is
false when the result leaves the representable range.
*/
func (r Timestamp) CheckedAdd(d Duration) (Timestamp, bool) {
	sec, ok := addInt64(r.sec, d.sec)
	if !ok {
		return Timestamp{}, false
	}
	out, ok := durFromSecNsec(sec, int64(r.nsec)+int64(d.nsec))
	if !ok || out.IsNegative() || out.sec > maxTimestampSec {
		return Timestamp{}, false
	}
	return Timestamp{sec: out.sec, nsec: out.nsec}, true
}

/*
Cmp returns -1, 0 or 1 as the receiver is earlier than, equal to, or
later than t.
*/
func (r Timestamp) Cmp(t Timestamp) int {
	switch {
	case r.sec < t.sec:
		return -1
	case r.sec > t.sec:
		return 1
	case r.nsec < t.nsec:
		return -1
	case r.nsec > t.nsec:
		return 1
	}
	return 0
}

/*
String returns the string representation of the receiver instance,
identical to [FormatRFC3339].
*/
func (r Timestamp) String() string { return FormatRFC3339(r) }

// month lengths used by the parser's day-of-year computation;
// February is adjusted for leap years in place.
var rfcMonthDays = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// cumulative day-of-year preceding each month in a non-leap year.
var rfcDaysBefore = [12]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

/*
ParseRFC3339 returns an instance of [Timestamp] alongside an error
following an attempt to decode the strict RFC 3339 wire form
YYYY-MM-DDThh:mm:ss[.fraction]Z: the literal 'T' separator and
trailing 'Z' are mandatory. All remaining validation is shared with
[ParseRFC3339Weak].
*/
func ParseRFC3339(s string) (Timestamp, error) {
	if len(s) < 20 || s[10] != 'T' || s[len(s)-1] != 'Z' {
		return Timestamp{}, ErrInvalidFormat
	}
	return parseRFC3339(s[:len(s)-1])
}

/*
ParseRFC3339Weak behaves as [ParseRFC3339] but additionally permits a
space in place of the 'T' separator and tolerates a missing trailing
'Z'.

Error classification: [ErrInvalidFormat] for structural defects (bad
length, missing separator, empty or over-long fraction),
[ErrInvalidDigit] for a non-digit byte at a digit position, and
[ErrOutOfRange] for numerically valid fields outside their bounds. A
leap second (second 60) is accepted and folded into second 59.
*/
func ParseRFC3339Weak(s string) (Timestamp, error) {
	if len(s) > 0 && s[len(s)-1] == 'Z' {
		s = s[:len(s)-1]
	}
	return parseRFC3339(s)
}

// parseRFC3339 validates the zoneless body shared by both entry
// points. Exactly one 'Z' may precede this call; a second one left in
// s is rejected like any other stray byte.
func parseRFC3339(s string) (Timestamp, error) {
	if len(s) < 19 {
		return Timestamp{}, ErrInvalidFormat
	}
	if s[4] != '-' || s[7] != '-' || (s[10] != 'T' && s[10] != ' ') ||
		s[13] != ':' || s[16] != ':' {
		return Timestamp{}, ErrInvalidFormat
	}

	for _, i := range [...]int{0, 2, 5, 8, 11, 14, 17} {
		if !isDigit(s[i]) || !isDigit(s[i+1]) {
			return Timestamp{}, ErrInvalidDigit
		}
	}

	year := int64(toInt2(s[0], s[1]))*100 + int64(toInt2(s[2], s[3]))
	month := int64(toInt2(s[5], s[6]))
	day := int64(toInt2(s[8], s[9]))
	hour := int64(toInt2(s[11], s[12]))
	minute := int64(toInt2(s[14], s[15]))
	second := int64(toInt2(s[17], s[18]))

	if year < 1970 || month < 1 || 12 < month {
		return Timestamp{}, ErrOutOfRange
	}
	leap := IsLeapYear(int(year))
	mdays := rfcMonthDays[month-1]
	if leap && month == 2 {
		mdays++
	}
	if day < 1 || mdays < day {
		return Timestamp{}, ErrOutOfRange
	}
	if 23 < hour || 59 < minute || 60 < second {
		return Timestamp{}, ErrOutOfRange
	}
	if second == 60 {
		// leap second: collapse into the preceding second.
		second = 59
	}

	ydays := rfcDaysBefore[month-1] + day - 1
	if leap && month > 2 {
		ydays++
	}
	leapsElapsed := (year-1-1968)/4 - (year-1-1900)/100 + (year-1-1600)/400
	days := (year-1970)*365 + leapsElapsed + ydays

	total := days*secsPerDay + hour*secsPerHour + minute*secsPerMinute + second
	if total > maxTimestampSec {
		return Timestamp{}, ErrOutOfRange
	}

	var nsec int32
	if rest := s[19:]; len(rest) > 0 {
		if rest[0] != '.' || len(rest) == 1 {
			return Timestamp{}, ErrInvalidFormat
		}
		if len(rest) > 10 {
			// more than nine fractional digits
			return Timestamp{}, ErrInvalidFormat
		}
		mult := int32(100_000_000)
		for i := 1; i < len(rest); i++ {
			if !isDigit(rest[i]) {
				return Timestamp{}, ErrInvalidDigit
			}
			nsec += int32(rest[i]-'0') * mult
			mult /= 10
		}
	}

	return Timestamp{sec: total, nsec: nsec}, nil
}

// leapochDays is the day count from the Unix epoch to 2000-03-01,
// the pivot that places every leap day at the very end of the
// decomposition cycle.
const leapochDays = 10_957 + 31 + 29

// month lengths beginning in March, matching the leapoch pivot.
var leapochMonths = [12]int64{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 29}

// timestampDate decomposes the wire second count into calendar
// components via 400/100/4/1-year cycles anchored on the leapoch.
func timestampDate(sec int64) (year, month, day, hour, minute, second int64) {
	days := sec/secsPerDay - leapochDays
	remsecs := sec % secsPerDay

	qcCycles := days / daysPer400Years
	remdays := days % daysPer400Years
	if remdays < 0 {
		remdays += daysPer400Years
		qcCycles--
	}

	cCycles := remdays / daysPer100Years
	if cCycles == 4 {
		cCycles--
	}
	remdays -= cCycles * daysPer100Years

	qCycles := remdays / daysPer4Years
	if qCycles == 25 {
		qCycles--
	}
	remdays -= qCycles * daysPer4Years

	remyears := remdays / 365
	if remyears == 4 {
		remyears--
	}
	remdays -= remyears * 365

	year = 2000 + remyears + 4*qCycles + 100*cCycles + 400*qcCycles

	var m int64
	for leapochMonths[m] <= remdays {
		remdays -= leapochMonths[m]
		m++
	}
	// translate March-based month back to January-based.
	month = m + 3
	if month > 12 {
		year++
		month -= 12
	}

	day = remdays + 1
	hour = remsecs / secsPerHour
	minute = remsecs / secsPerMinute % 60
	second = remsecs % 60
	return
}

// fixed-precision selectors for formatRFC3339.
const (
	precSmart = iota
	precSeconds
	precMillis
	precMicros
	precNanos
)

func formatRFC3339(ts Timestamp, precision int) string {
	// template covers the widest form; unused tail is sliced away.
	buf := []byte("0000-00-00T00:00:00.000000000Z")

	year, month, day, hour, minute, second := timestampDate(ts.sec)
	put4(buf, 0, int(year))
	put2(buf, 5, int(month))
	put2(buf, 8, int(day))
	put2(buf, 11, int(hour))
	put2(buf, 14, int(minute))
	put2(buf, 17, int(second))

	digits := 0
	switch precision {
	case precSmart:
		if ts.nsec != 0 {
			digits = 9
		}
	case precMillis:
		digits = 3
	case precMicros:
		digits = 6
	case precNanos:
		digits = 9
	}

	if digits == 0 {
		buf[19] = 'Z'
		return string(buf[:20])
	}

	n := ts.nsec
	for i := 9; i >= 1; i-- {
		buf[19+i] = byte('0' + n%10)
		n /= 10
	}
	end := 20 + digits
	buf[end] = 'Z'
	return string(buf[:end+1])
}

/*
FormatRFC3339 returns the strict wire form of ts under the Smart
precision policy: the fractional part is omitted entirely when the
sub-second component is zero, and printed at full nanosecond width
otherwise.
*/
func FormatRFC3339(ts Timestamp) string { return formatRFC3339(ts, precSmart) }

/*
FormatRFC3339Seconds returns the wire form of ts with no fractional
part, truncating any sub-second component.
*/
func FormatRFC3339Seconds(ts Timestamp) string { return formatRFC3339(ts, precSeconds) }

/*
FormatRFC3339Millis returns the wire form of ts with exactly three
fractional digits.
*/
func FormatRFC3339Millis(ts Timestamp) string { return formatRFC3339(ts, precMillis) }

/*
FormatRFC3339Micros returns the wire form of ts with exactly six
fractional digits.
*/
func FormatRFC3339Micros(ts Timestamp) string { return formatRFC3339(ts, precMicros) }

/*
FormatRFC3339Nanos returns the wire form of ts with exactly nine
fractional digits.
*/
func FormatRFC3339Nanos(ts Timestamp) string { return formatRFC3339(ts, precNanos) }

/*
TimestampFromOffsetDateTime returns an instance of [Timestamp]
alongside an error following an attempt to project odt's absolute
instant onto the codec's epoch-based range. [ErrOutOfRange] is
returned for instants before the epoch or past year 9999.
*/
func TimestampFromOffsetDateTime(odt OffsetDateTime) (Timestamp, error) {
	return TimestampFromUnix(odt.UnixTimestamp(), int32(odt.Nanosecond()))
}

/*
OffsetDateTime returns the receiver lifted into the calendar stack
with a zero offset; it never fails, since every [Timestamp] lies
within the supported date range.
*/
func (r Timestamp) OffsetDateTime() OffsetDateTime {
	odt, _ := fromUnixPair(r.sec, int64(r.nsec))
	return odt
}
