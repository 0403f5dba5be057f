package chrono

/*
dt.go implements the offset-naive composition of Date and Time.
*/

/*
DateTime implements an offset-naive composition of a [Date] and a
[Time]. The combined value carries no timezone meaning until lifted
via [DateTime.AssumeUTC] or [DateTime.AssumeOffset].
*/
type DateTime struct {
	date Date
	time Time
}

/*
NewDateTime returns an instance of [DateTime] composed of d and t; it
always succeeds, since both inputs are valid by construction.
*/
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

/*
Date returns the calendar component of the receiver instance.
*/
func (r DateTime) Date() Date { return r.date }

/*
Time returns the clock component of the receiver instance.
*/
func (r DateTime) Time() Time { return r.time }

/*
Year returns the Gregorian year of the receiver instance.
*/
func (r DateTime) Year() int { return r.date.Year() }

/*
Month returns the [Month] of the receiver instance.
*/
func (r DateTime) Month() Month { return r.date.Month() }

/*
Day returns the day of the month of the receiver instance.
*/
func (r DateTime) Day() int { return r.date.Day() }

/*
Weekday returns the [Weekday] of the receiver instance.
*/
func (r DateTime) Weekday() Weekday { return r.date.Weekday() }

/*
Hour returns the hour of the receiver instance.
*/
func (r DateTime) Hour() int { return r.time.Hour() }

/*
Minute returns the minute of the receiver instance.
*/
func (r DateTime) Minute() int { return r.time.Minute() }

/*
Second returns the second of the receiver instance.
*/
func (r DateTime) Second() int { return r.time.Second() }

/*
Nanosecond returns the nanosecond of the receiver instance.
*/
func (r DateTime) Nanosecond() int { return r.time.Nanosecond() }

/*
CheckedAdd returns the receiver shifted by d: the sub-day component
adjusts the clock, and the resulting whole-day carry shifts the date
together with d's whole-day component. The Boolean value is false
only when the date step leaves the supported range.
*/
func (r DateTime) CheckedAdd(d Duration) (DateTime, bool) {
	t, carry, ok := r.time.adjustingAdd(d)
	if !ok {
		return DateTime{}, false
	}
	date, ok := r.date.checkedAddDays(carry)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{date: date, time: t}, true
}

/*
CheckedSub returns the receiver shifted backward by d, under the same
carry rules as [DateTime.CheckedAdd]. The Boolean value is false only
when the date step leaves the supported range.
*/
func (r DateTime) CheckedSub(d Duration) (DateTime, bool) {
	t, carry, ok := r.time.adjustingSub(d)
	if !ok {
		return DateTime{}, false
	}
	date, ok := r.date.checkedAddDays(carry)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{date: date, time: t}, true
}

// saturatedDateTime is the clamping target for Saturating* overflow.
func saturatedDateTime(negative bool) DateTime {
	if negative {
		return DateTime{date: MinDate, time: Midnight}
	}
	return DateTime{
		date: MaxDate,
		time: Time{hour: 23, minute: 59, second: 59, nanosecond: 999_999_999},
	}
}

/*
SaturatingAdd behaves as [DateTime.CheckedAdd], clamping to the
extremes of the supported range instead of failing.
*/
func (r DateTime) SaturatingAdd(d Duration) DateTime {
	out, ok := r.CheckedAdd(d)
	if !ok {
		out = saturatedDateTime(d.IsNegative())
	}
	return out
}

/*
SaturatingSub behaves as [DateTime.CheckedSub], clamping to the
extremes of the supported range instead of failing.
*/
func (r DateTime) SaturatingSub(d Duration) DateTime {
	out, ok := r.CheckedSub(d)
	if !ok {
		out = saturatedDateTime(d.IsPositive())
	}
	return out
}

/*
AssumeUTC lifts the receiver to an [OffsetDateTime] whose naive
components are declared to already be UTC. No arithmetic occurs.
*/
func (r DateTime) AssumeUTC() OffsetDateTime {
	return OffsetDateTime{utc: r, offset: UTC}
}

/*
AssumeOffset lifts the receiver to an [OffsetDateTime] whose naive
components are declared to represent local wall-clock values under o.
The stored datetime is normalized to UTC, saturating at the extremes
of the supported range.
*/
func (r DateTime) AssumeOffset(o UtcOffset) OffsetDateTime {
	return OffsetDateTime{
		utc:    r.SaturatingSub(Seconds(int64(o.WholeSeconds()))),
		offset: o,
	}
}

/*
ReplaceDate returns a copy of the receiver carrying d as its calendar
component; it never fails, since d is valid by construction.
*/
func (r DateTime) ReplaceDate(d Date) DateTime {
	r.date = d
	return r
}

/*
ReplaceTime returns a copy of the receiver carrying t as its clock
component; it never fails, since t is valid by construction.
*/
func (r DateTime) ReplaceTime(t Time) DateTime {
	r.time = t
	return r
}

/*
Cmp returns -1, 0 or 1 as the receiver is earlier than, equal to, or
later than d.
*/
func (r DateTime) Cmp(d DateTime) int {
	if c := r.date.Cmp(d.date); c != 0 {
		return c
	}
	return r.time.Cmp(d.time)
}

/*
String returns the string representation of the receiver instance in
the form YYYY-MM-DD hh:mm:ss[.fraction].
*/
func (r DateTime) String() string {
	return r.date.String() + " " + r.time.String()
}
