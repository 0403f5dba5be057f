package chrono

/*
date.go implements the proleptic-Gregorian calendar date alongside
the Month and Weekday component types.
*/

/*
Month names a month of the Gregorian year, January (1) through
December (12).
*/
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	`January`, `February`, `March`, `April`, `May`, `June`,
	`July`, `August`, `September`, `October`, `November`, `December`,
}

/*
String returns the string representation of the receiver instance.
*/
func (r Month) String() string {
	if January <= r && r <= December {
		return monthNames[r-1]
	}
	return `%!Month(` + itoa(int(r)) + `)`
}

/*
Weekday names a day of the week under ISO 8601 numbering, Monday (1)
through Sunday (7).
*/
type Weekday uint8

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	`Monday`, `Tuesday`, `Wednesday`, `Thursday`, `Friday`, `Saturday`, `Sunday`,
}

/*
String returns the string representation of the receiver instance.
*/
func (r Weekday) String() string {
	if Monday <= r && r <= Sunday {
		return weekdayNames[r-1]
	}
	return `%!Weekday(` + itoa(int(r)) + `)`
}

/*
Date implements a proleptic-Gregorian calendar date held as a single
linear day count relative to the Unix epoch (1970-01-01 is day zero).
Because the representation is linear, no constructed Date can hold an
invalid calendar day; range validation happens at the constructors.

Dates compare and subtract through [Date.Cmp], [Date.JulianDay] and
the Checked/Saturating arithmetic family.
*/
type Date struct {
	days int32
}

const (
	// cycle lengths of the Gregorian leap rule.
	daysPer400Years = 146_097
	daysPer100Years = 36_524
	daysPer4Years   = 1_461

	// absoluteZeroYear anchors the internal cycle arithmetic. It must
	// be congruent to 1 modulo 400 and lie below the lowest supported
	// year so day counts relative to it stay non-negative.
	absoluteZeroYear = -1_000_399

	// Julian day number of the Unix epoch.
	unixEpochJulianDay = 2_440_588
)

// daysBefore[m] is the day-of-year count preceding month m+1 in a
// non-leap year.
var daysBefore = [13]int32{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

/*
IsLeapYear returns true when year contains a leap day under the
proleptic Gregorian rule: divisible by four, excluding century years
not divisible by four hundred.
*/
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

func daysInMonth(month Month, year int) int {
	if month == February && IsLeapYear(year) {
		return 29
	}
	return int(daysBefore[month] - daysBefore[month-1])
}

// yearToAbsDays counts days from absoluteZeroYear-01-01 to the start
// of year.
func yearToAbsDays(year int) int64 {
	n := int64(year - absoluteZeroYear)

	d := daysPer400Years * (n / 400)
	n %= 400
	d += daysPer100Years * (n / 100)
	n %= 100
	d += daysPer4Years * (n / 4)
	n %= 4
	d += 365 * n

	return d
}

var unixEpochAbsDays = yearToAbsDays(1970)

// absDaysToYear decomposes a non-negative absolute day count into a
// year and a zero-based day of year by peeling 400/100/4/1-year
// cycles. The final cycle of each tier carries the extra (or missing)
// leap day; the n>>2 adjustments cut the quotient back accordingly.
func absDaysToYear(d int64) (year int, yday0 int) {
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	return int(y) + absoluteZeroYear, int(d)
}

func (r Date) absDays() int64 { return int64(r.days) + unixEpochAbsDays }

// dateFromYearOrdinal builds the linear day count without validation.
// ordinal is 1-based and may lie outside the year (the linear formula
// extends exactly into adjacent years).
func dateFromYearOrdinal(year, ordinal int) Date {
	return Date{days: int32(yearToAbsDays(year) + int64(ordinal-1) - unixEpochAbsDays)}
}

/*
MinDate and MaxDate are the extreme representable dates under the
configured year range, used as the clamping targets of the
Saturating* arithmetic family.
*/
var (
	MinDate = dateFromYearOrdinal(minYear, 1)
	MaxDate = dateFromYearOrdinal(maxYear, daysInYear(maxYear))
)

/*
FromCalendarDate returns an instance of [Date] alongside an error
following an attempt to compose year, month and day. The day bound is
conditional upon the month and upon leap-year status.
*/
func FromCalendarDate(year int, month Month, day int, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	var err error

	if err = checkRange("year", year, minYear, maxYear, false); err != nil {
		return d, err
	}
	if err = checkRange("month", int(month), int(January), int(December), false); err != nil {
		return d, err
	}
	if err = checkRange("day", day, 1, daysInMonth(month, year), true); err != nil {
		return d, err
	}

	ordinal := int(daysBefore[month-1]) + day
	if month > February && IsLeapYear(year) {
		ordinal++
	}
	d = dateFromYearOrdinal(year, ordinal)

	if len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}

	return d, err
}

/*
FromOrdinalDate returns an instance of [Date] alongside an error
following an attempt to compose year and a 1-based ordinal day. The
ordinal bound (365 or 366) is conditional upon leap-year status.
*/
func FromOrdinalDate(year, ordinal int, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	var err error

	if err = checkRange("year", year, minYear, maxYear, false); err != nil {
		return d, err
	}
	if err = checkRange("ordinal", ordinal, 1, daysInYear(year), true); err != nil {
		return d, err
	}

	d = dateFromYearOrdinal(year, ordinal)

	if len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}

	return d, err
}

// weeksInYear reports 52 or 53 per ISO 8601: a year is long when its
// January 1st falls on a Thursday, or on a Wednesday in a leap year.
func weeksInYear(year int) int {
	switch wd := dateFromYearOrdinal(year, 1).Weekday(); {
	case wd == Thursday, wd == Wednesday && IsLeapYear(year):
		return 53
	}
	return 52
}

/*
FromISOWeekDate returns an instance of [Date] alongside an error
following an attempt to compose an ISO 8601 week date. The week bound
(52 or 53) is conditional upon the year. Weeks 1 and 52/53 may spill
into the neighboring Gregorian year; at the extremes of the supported
range the spilled day is rejected with a "year" [ComponentRange].
*/
func FromISOWeekDate(year, week int, weekday Weekday, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	var err error

	if err = checkRange("year", year, minYear, maxYear, false); err != nil {
		return d, err
	}
	if err = checkRange("week", week, 1, weeksInYear(year), true); err != nil {
		return d, err
	}
	if err = checkRange("weekday", int(weekday), int(Monday), int(Sunday), false); err != nil {
		return d, err
	}

	// Day-of-year of the requested day, anchored on January 4th
	// always falling in week 1. May extend past either end of the
	// year; the linear ordinal formula absorbs that exactly.
	jan4 := dateFromYearOrdinal(year, 4)
	ordinal := week*7 + int(weekday) - (int(jan4.Weekday()) + 3)

	d = dateFromYearOrdinal(year, ordinal)
	if d.days < MinDate.days || MaxDate.days < d.days {
		return Date{}, checkRange("year", d.absDaysYear(), minYear, maxYear, true)
	}

	if len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}

	return d, err
}

func (r Date) absDaysYear() int {
	y, _ := absDaysToYear(r.absDays())
	return y
}

/*
FromJulianDay returns an instance of [Date] alongside an error
following an attempt to interpret j as a Julian day number. The
accepted bounds are those of the configured year range.
*/
func FromJulianDay(j int32, constraints ...Constraint[Date]) (Date, error) {
	var err error

	d := fromJulianDayUnchecked(j)
	if d.days < MinDate.days || MaxDate.days < d.days {
		return Date{}, checkRange(
			"julian_day",
			int64(j),
			int64(MinDate.JulianDay()),
			int64(MaxDate.JulianDay()),
			false,
		)
	}

	if len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}

	return d, err
}

// fromJulianDayUnchecked performs zero-validation construction for
// performance-critical internal use.
func fromJulianDayUnchecked(j int32) Date {
	return Date{days: j - unixEpochJulianDay}
}

/*
JulianDay returns the Julian day number of the receiver instance.
*/
func (r Date) JulianDay() int32 { return r.days + unixEpochJulianDay }

/*
CalendarDate returns the year, [Month] and day of the receiver
instance. The conversion is the exact inverse of [FromCalendarDate].
*/
func (r Date) CalendarDate() (year int, month Month, day int) {
	var yday0 int
	year, yday0 = absDaysToYear(r.absDays())

	day = yday0
	if IsLeapYear(year) {
		switch {
		case day > 31+29-1:
			// past the leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			return year, February, 29
		}
	}

	// every month has at most 31 days, so this estimate is low by at
	// most one.
	month = Month(day / 31)
	end := int(daysBefore[month+1])
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = int(daysBefore[month])
	}

	return year, month + 1, day - begin + 1
}

/*
OrdinalDate returns the year and 1-based ordinal day of the receiver
instance. The conversion is the exact inverse of [FromOrdinalDate].
*/
func (r Date) OrdinalDate() (year, ordinal int) {
	y, yday0 := absDaysToYear(r.absDays())
	return y, yday0 + 1
}

/*
ISOWeekDate returns the ISO 8601 year, week and [Weekday] of the
receiver instance. The conversion is the exact inverse of
[FromISOWeekDate]. The ISO year differs from the Gregorian year for
up to three days at each end of the year.
*/
func (r Date) ISOWeekDate() (year, week int, weekday Weekday) {
	year, ordinal := r.OrdinalDate()
	weekday = r.Weekday()

	week = (ordinal - int(weekday) + 10) / 7
	if week < 1 {
		return year - 1, weeksInYear(year - 1), weekday
	}
	if week > weeksInYear(year) {
		return year + 1, 1, weekday
	}
	return year, week, weekday
}

/*
Weekday returns the [Weekday] of the receiver instance via modular
arithmetic on the linear day count; it never fails.
*/
func (r Date) Weekday() Weekday {
	// day zero (1970-01-01) was a Thursday.
	return Weekday((int64(r.days)%7+10)%7 + 1)
}

/*
Year returns the Gregorian year of the receiver instance.
*/
func (r Date) Year() int {
	y, _ := absDaysToYear(r.absDays())
	return y
}

/*
Month returns the [Month] of the receiver instance.
*/
func (r Date) Month() Month {
	_, m, _ := r.CalendarDate()
	return m
}

/*
Day returns the day of the month of the receiver instance.
*/
func (r Date) Day() int {
	_, _, d := r.CalendarDate()
	return d
}

/*
Ordinal returns the 1-based day of the year of the receiver instance.
*/
func (r Date) Ordinal() int {
	_, o := r.OrdinalDate()
	return o
}

// checkedAddDays shifts the linear day count, reporting range
// violation instead of silently leaving the supported years.
func (r Date) checkedAddDays(n int64) (Date, bool) {
	days := int64(r.days) + n
	if days < int64(MinDate.days) || int64(MaxDate.days) < days {
		return Date{}, false
	}
	return Date{days: int32(days)}, true
}

/*
CheckedAdd returns the receiver shifted forward by the WHOLE-DAY
component of d; any sub-day remainder is truncated toward zero, so a
span of -25 hours moves the date back a single day. Callers needing
sub-day precision must route arithmetic through [DateTime]. The
Boolean value is false when the result leaves the supported range.
*/
func (r Date) CheckedAdd(d Duration) (Date, bool) {
	return r.checkedAddDays(d.WholeDays())
}

/*
CheckedSub returns the receiver shifted backward by the whole-day
component of d, truncating sub-day precision as [Date.CheckedAdd]
does. The Boolean value is false when the result leaves the supported
range.
*/
func (r Date) CheckedSub(d Duration) (Date, bool) {
	return r.checkedAddDays(-d.WholeDays())
}

/*
SaturatingAdd behaves as [Date.CheckedAdd], clamping to [MinDate] or
[MaxDate] instead of failing.
*/
func (r Date) SaturatingAdd(d Duration) Date {
	out, ok := r.CheckedAdd(d)
	if !ok {
		out = MinDate
		if d.IsPositive() {
			out = MaxDate
		}
	}
	return out
}

/*
SaturatingSub behaves as [Date.CheckedSub], clamping to [MinDate] or
[MaxDate] instead of failing.
*/
func (r Date) SaturatingSub(d Duration) Date {
	out, ok := r.CheckedSub(d)
	if !ok {
		out = MinDate
		if d.IsNegative() {
			out = MaxDate
		}
	}
	return out
}

/*
NextDay returns the following calendar day. The Boolean value is
false only when the receiver is [MaxDate].
*/
func (r Date) NextDay() (Date, bool) { return r.checkedAddDays(1) }

/*
PreviousDay returns the preceding calendar day. The Boolean value is
false only when the receiver is [MinDate].
*/
func (r Date) PreviousDay() (Date, bool) { return r.checkedAddDays(-1) }

/*
Cmp returns -1, 0 or 1 as the receiver is earlier than, equal to, or
later than d.
*/
func (r Date) Cmp(d Date) int {
	switch {
	case r.days < d.days:
		return -1
	case r.days > d.days:
		return 1
	}
	return 0
}

/*
String returns the string representation of the receiver instance in
the form YYYY-MM-DD. Years outside 0..9999 carry a sign and as many
digits as required.
*/
func (r Date) String() string {
	year, month, day := r.CalendarDate()

	var b [16]byte
	i := 0
	switch {
	case 0 <= year && year <= 9999:
		put4(b[:], 0, year)
		i = 4
	case -9999 <= year && year < 0:
		b[0] = '-'
		put4(b[:], 1, -year)
		i = 5
	default:
		s := itoa(year)
		if year > 0 {
			s = "+" + s
		}
		i = copy(b[:], s)
	}
	b[i] = '-'
	put2(b[:], i+1, int(month))
	b[i+3] = '-'
	put2(b[:], i+4, day)

	return string(b[:i+6])
}
