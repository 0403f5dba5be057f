package chrono

/*
odt.go implements the complete timezone-aware instant. The stored
datetime is ALWAYS normalized to UTC; the offset is carried beside it
and applied only when rendering local component views. Keeping UTC
canonical prevents offsets from being double-counted by arithmetic.
*/

import (
	"math"
	"math/big"
	"time"
)

/*
OffsetDateTime implements a [DateTime] paired with the [UtcOffset]
through which its components are viewed. The stored datetime is the
UTC instant; the offset never mutates the instant, only the view.
*/
type OffsetDateTime struct {
	utc    DateTime
	offset UtcOffset
}

/*
NowUTC returns the current system time as an [OffsetDateTime] with a
zero offset. This performs a single synchronous clock read.
*/
func NowUTC() OffsetDateTime {
	t := time.Now()
	odt, _ := fromUnixPair(t.Unix(), int64(t.Nanosecond()))
	return odt
}

// fromUnixPair builds the UTC-normalized value from whole seconds and
// a non-negative sub-second nanosecond count.
func fromUnixPair(sec, nsec int64) (OffsetDateTime, error) {
	days := floorDiv(sec, secsPerDay)
	date, ok := Date{}.checkedAddDays(days)
	if !ok {
		return OffsetDateTime{}, checkRange(
			"timestamp",
			sec,
			MinDate.unixDaySeconds(),
			MaxDate.unixDaySeconds()+secsPerDay-1,
			false,
		)
	}

	return OffsetDateTime{
		utc: DateTime{
			date: date,
			time: timeFromDaySecNano(floorMod(sec, secsPerDay), nsec),
		},
	}, nil
}

// unixDaySeconds is the Unix timestamp at midnight of the receiver.
func (r Date) unixDaySeconds() int64 { return int64(r.days) * secsPerDay }

/*
FromUnixTimestamp returns an instance of [OffsetDateTime] alongside
an error following an attempt to interpret sec as whole seconds since
1970-01-01T00:00:00Z. The result carries a zero offset and is the
exact inverse of [OffsetDateTime.UnixTimestamp].
*/
func FromUnixTimestamp(sec int64, constraints ...Constraint[OffsetDateTime]) (OffsetDateTime, error) {
	odt, err := fromUnixPair(sec, 0)

	if err == nil && len(constraints) > 0 {
		var group ConstraintGroup[OffsetDateTime] = constraints
		err = group.Constrain(odt)
	}

	return odt, err
}

/*
FromUnixTimestampMillis returns an instance of [OffsetDateTime]
alongside an error following an attempt to interpret ms as
milliseconds since the Unix epoch. Negative inputs resolve exactly:
-1 ms is 1969-12-31T23:59:59.999Z.
*/
func FromUnixTimestampMillis(ms int64, constraints ...Constraint[OffsetDateTime]) (OffsetDateTime, error) {
	odt, err := fromUnixPair(floorDiv(ms, 1_000), floorMod(ms, 1_000)*nsPerMilli)

	if err == nil && len(constraints) > 0 {
		var group ConstraintGroup[OffsetDateTime] = constraints
		err = group.Constrain(odt)
	}

	return odt, err
}

/*
FromUnixTimestampNanos returns an instance of [OffsetDateTime]
alongside an error following an attempt to interpret n as nanoseconds
since the Unix epoch. n may exceed the range of int64; it is the
exact inverse of [OffsetDateTime.UnixTimestampNanos].
*/
func FromUnixTimestampNanos(n *big.Int, constraints ...Constraint[OffsetDateTime]) (OffsetDateTime, error) {
	if n == nil {
		return OffsetDateTime{}, errorBigNanosNil
	}

	// Euclidean split so the nanosecond remainder is non-negative.
	sec, rem := new(big.Int).DivMod(n, newBigInt(nsPerSecond), new(big.Int))
	if !sec.IsInt64() {
		return OffsetDateTime{}, ComponentRange{
			Name:    "timestamp",
			Minimum: MinDate.unixDaySeconds(),
			Maximum: MaxDate.unixDaySeconds() + secsPerDay - 1,
			Value:   int64(sec.Sign()) * math.MaxInt64,
		}
	}

	odt, err := fromUnixPair(sec.Int64(), rem.Int64())

	if err == nil && len(constraints) > 0 {
		var group ConstraintGroup[OffsetDateTime] = constraints
		err = group.Constrain(odt)
	}

	return odt, err
}

/*
UnixTimestamp returns the receiver as whole seconds since
1970-01-01T00:00:00Z. The offset view never influences the result.
*/
func (r OffsetDateTime) UnixTimestamp() int64 {
	return r.utc.date.unixDaySeconds() + r.utc.time.secondOfDay()
}

/*
UnixTimestampNanos returns the receiver as nanoseconds since the Unix
epoch. The value may exceed the range of int64 under the extended
year range, hence the big representation.
*/
func (r OffsetDateTime) UnixTimestampNanos() *big.Int {
	n := new(big.Int).Mul(newBigInt(r.UnixTimestamp()), newBigInt(nsPerSecond))
	return n.Add(n, newBigInt(int64(r.utc.time.nanosecond)))
}

/*
Offset returns the [UtcOffset] through which the receiver's component
accessors are viewed.
*/
func (r OffsetDateTime) Offset() UtcOffset { return r.offset }

/*
ToOffset re-expresses the SAME instant under o. Only the view
changes: [OffsetDateTime.UnixTimestamp] is invariant under ToOffset.
*/
func (r OffsetDateTime) ToOffset(o UtcOffset) OffsetDateTime {
	r.offset = o
	return r
}

// localDateTime materializes the offset-local view of the stored UTC
// instant. Saturation is unreachable except within one offset-width
// of the supported range's extremes.
func (r OffsetDateTime) localDateTime() DateTime {
	if r.offset.IsUTC() {
		return r.utc
	}
	return r.utc.SaturatingAdd(Seconds(int64(r.offset.WholeSeconds())))
}

/*
DateTime returns the offset-local [DateTime] view of the receiver
instance.
*/
func (r OffsetDateTime) DateTime() DateTime { return r.localDateTime() }

/*
Date returns the calendar component of the receiver AS SEEN THROUGH
its offset.
*/
func (r OffsetDateTime) Date() Date { return r.localDateTime().Date() }

/*
Time returns the clock component of the receiver as seen through its
offset.
*/
func (r OffsetDateTime) Time() Time { return r.localDateTime().Time() }

/*
Year returns the Gregorian year of the receiver as seen through its
offset.
*/
func (r OffsetDateTime) Year() int { return r.localDateTime().Year() }

/*
Month returns the [Month] of the receiver as seen through its offset.
*/
func (r OffsetDateTime) Month() Month { return r.localDateTime().Month() }

/*
Day returns the day of the month of the receiver as seen through its
offset.
*/
func (r OffsetDateTime) Day() int { return r.localDateTime().Day() }

/*
Weekday returns the [Weekday] of the receiver as seen through its
offset.
*/
func (r OffsetDateTime) Weekday() Weekday { return r.localDateTime().Weekday() }

/*
Hour returns the hour of the receiver as seen through its offset.
*/
func (r OffsetDateTime) Hour() int { return r.localDateTime().Hour() }

/*
Minute returns the minute of the receiver as seen through its offset.
*/
func (r OffsetDateTime) Minute() int { return r.localDateTime().Minute() }

/*
Second returns the second of the receiver as seen through its offset.
*/
func (r OffsetDateTime) Second() int { return r.localDateTime().Second() }

/*
Nanosecond returns the nanosecond of the receiver; sub-second
precision is unaffected by the offset view.
*/
func (r OffsetDateTime) Nanosecond() int { return r.utc.Nanosecond() }

/*
CheckedAdd returns the receiver shifted by d. Arithmetic acts on the
UTC-normalized value; the offset is carried through unchanged. The
Boolean value is false when the result leaves the supported range.
*/
func (r OffsetDateTime) CheckedAdd(d Duration) (OffsetDateTime, bool) {
	utc, ok := r.utc.CheckedAdd(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	return OffsetDateTime{utc: utc, offset: r.offset}, true
}

/*
CheckedSub returns the receiver shifted backward by d, acting on the
UTC-normalized value with the offset carried through unchanged. The
Boolean value is false when the result leaves the supported range.
*/
func (r OffsetDateTime) CheckedSub(d Duration) (OffsetDateTime, bool) {
	utc, ok := r.utc.CheckedSub(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	return OffsetDateTime{utc: utc, offset: r.offset}, true
}

/*
SaturatingAdd behaves as [OffsetDateTime.CheckedAdd], clamping to the
extremes of the supported range instead of failing.
*/
func (r OffsetDateTime) SaturatingAdd(d Duration) OffsetDateTime {
	return OffsetDateTime{utc: r.utc.SaturatingAdd(d), offset: r.offset}
}

/*
SaturatingSub behaves as [OffsetDateTime.CheckedSub], clamping to the
extremes of the supported range instead of failing.
*/
func (r OffsetDateTime) SaturatingSub(d Duration) OffsetDateTime {
	return OffsetDateTime{utc: r.utc.SaturatingSub(d), offset: r.offset}
}

/*
Sub returns the span of time separating the receiver from o, positive
when the receiver is the later instant. The result is exact to the
nanosecond.
*/
func (r OffsetDateTime) Sub(o OffsetDateTime) Duration {
	sec := r.UnixTimestamp() - o.UnixTimestamp()
	nsec := int64(r.utc.time.nanosecond) - int64(o.utc.time.nanosecond)
	out, _ := durFromSecNsec(sec, nsec)
	return out
}

/*
ReplaceDate returns a copy of the receiver whose OFFSET-LOCAL
calendar component is replaced by d; the stored value is re-normalized
to UTC.
*/
func (r OffsetDateTime) ReplaceDate(d Date) OffsetDateTime {
	return r.localDateTime().ReplaceDate(d).AssumeOffset(r.offset)
}

/*
ReplaceTime returns a copy of the receiver whose offset-local clock
component is replaced by t; the stored value is re-normalized to UTC.
*/
func (r OffsetDateTime) ReplaceTime(t Time) OffsetDateTime {
	return r.localDateTime().ReplaceTime(t).AssumeOffset(r.offset)
}

/*
ReplaceDateTime returns a copy of the receiver whose offset-local
date and clock components are replaced by dt; the stored value is
re-normalized to UTC.
*/
func (r OffsetDateTime) ReplaceDateTime(dt DateTime) OffsetDateTime {
	return dt.AssumeOffset(r.offset)
}

/*
ReplaceOffset returns a copy of the receiver carrying o while
PRESERVING THE LOCAL WALL-CLOCK COMPONENTS. Unlike
[OffsetDateTime.ToOffset], this SHIFTS the absolute instant: the same
local reading under a different offset names a different moment.
ReplaceOffset is the most error-prone operation on this type; reach
for ToOffset when the instant must remain fixed.
*/
func (r OffsetDateTime) ReplaceOffset(o UtcOffset) OffsetDateTime {
	return r.localDateTime().AssumeOffset(o)
}

/*
Equal returns true when the receiver and o name the same absolute
instant, regardless of their offset views.
*/
func (r OffsetDateTime) Equal(o OffsetDateTime) bool { return r.Cmp(o) == 0 }

/*
Before returns true when the receiver names an earlier absolute
instant than o.
*/
func (r OffsetDateTime) Before(o OffsetDateTime) bool { return r.Cmp(o) < 0 }

/*
After returns true when the receiver names a later absolute instant
than o.
*/
func (r OffsetDateTime) After(o OffsetDateTime) bool { return r.Cmp(o) > 0 }

/*
Cmp returns -1, 0 or 1 as the receiver's absolute instant is earlier
than, equal to, or later than o's.
*/
func (r OffsetDateTime) Cmp(o OffsetDateTime) int { return r.utc.Cmp(o.utc) }

/*
String returns the string representation of the receiver instance in
the form "YYYY-MM-DD hh:mm:ss[.fraction] ±hh:mm:ss", with the offset
rendered as "UTC" when zero. Components reflect the offset-local
view.
*/
func (r OffsetDateTime) String() string {
	suffix := r.offset.String()
	if r.offset.IsUTC() {
		suffix = "UTC"
	}
	return r.localDateTime().String() + " " + suffix
}
