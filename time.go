package chrono

/*
time.go implements the wall-clock time-of-day value whose arithmetic
wraps modulo 24 hours while reporting whole-day carries.
*/

import "math"

/*
Time implements a wall-clock time of day. Every constructed instance
is a valid clock reading; arithmetic with [Duration] wraps modulo 24
hours and surfaces the whole days carried so that [DateTime] and
[Date] can apply them.

The zero value is [Midnight].
*/
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

/*
Midnight is the zero [Time], 00:00:00.0.
*/
var Midnight = Time{}

func timeFromHMSNano(hour, minute, second, nanosecond int, constraints []Constraint[Time]) (Time, error) {
	var t Time
	var err error

	if err = checkRange("hour", hour, 0, 23, false); err != nil {
		return t, err
	}
	if err = checkRange("minute", minute, 0, 59, false); err != nil {
		return t, err
	}
	if err = checkRange("second", second, 0, 59, false); err != nil {
		return t, err
	}
	if err = checkRange("nanosecond", nanosecond, 0, 999_999_999, false); err != nil {
		return t, err
	}

	t = Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}

	if len(constraints) > 0 {
		var group ConstraintGroup[Time] = constraints
		err = group.Constrain(t)
	}

	return t, err
}

/*
TimeFromHMS returns an instance of [Time] alongside an error
following an attempt to compose hour, minute and second.
*/
func TimeFromHMS(hour, minute, second int, constraints ...Constraint[Time]) (Time, error) {
	return timeFromHMSNano(hour, minute, second, 0, constraints)
}

/*
TimeFromHMSMilli returns an instance of [Time] alongside an error
following an attempt to compose hour, minute, second and millisecond.
*/
func TimeFromHMSMilli(hour, minute, second, millisecond int, constraints ...Constraint[Time]) (Time, error) {
	if err := checkRange("millisecond", millisecond, 0, 999, false); err != nil {
		return Time{}, err
	}
	return timeFromHMSNano(hour, minute, second, millisecond*int(nsPerMilli), constraints)
}

/*
TimeFromHMSMicro returns an instance of [Time] alongside an error
following an attempt to compose hour, minute, second and microsecond.
*/
func TimeFromHMSMicro(hour, minute, second, microsecond int, constraints ...Constraint[Time]) (Time, error) {
	if err := checkRange("microsecond", microsecond, 0, 999_999, false); err != nil {
		return Time{}, err
	}
	return timeFromHMSNano(hour, minute, second, microsecond*int(nsPerMicro), constraints)
}

/*
TimeFromHMSNano returns an instance of [Time] alongside an error
following an attempt to compose hour, minute, second and nanosecond.
*/
func TimeFromHMSNano(hour, minute, second, nanosecond int, constraints ...Constraint[Time]) (Time, error) {
	return timeFromHMSNano(hour, minute, second, nanosecond, constraints)
}

/*
Hour returns the hour of the receiver instance (0..23).
*/
func (r Time) Hour() int { return int(r.hour) }

/*
Minute returns the minute of the receiver instance (0..59).
*/
func (r Time) Minute() int { return int(r.minute) }

/*
Second returns the second of the receiver instance (0..59).
*/
func (r Time) Second() int { return int(r.second) }

/*
Millisecond returns the millisecond of the receiver instance (0..999).
*/
func (r Time) Millisecond() int { return int(r.nanosecond) / int(nsPerMilli) }

/*
Microsecond returns the microsecond of the receiver instance
(0..999999).
*/
func (r Time) Microsecond() int { return int(r.nanosecond) / int(nsPerMicro) }

/*
Nanosecond returns the nanosecond of the receiver instance
(0..999999999).
*/
func (r Time) Nanosecond() int { return int(r.nanosecond) }

// secondOfDay flattens the clock reading into seconds past midnight.
func (r Time) secondOfDay() int64 {
	return int64(r.hour)*secsPerHour + int64(r.minute)*secsPerMinute + int64(r.second)
}

func timeFromDaySecNano(sec, nsec int64) Time {
	return Time{
		hour:       uint8(sec / secsPerHour),
		minute:     uint8((sec / secsPerMinute) % 60),
		second:     uint8(sec % 60),
		nanosecond: uint32(nsec),
	}
}

// adjustingAdd applies d modulo 24 hours and reports the signed count
// of whole days carried. The pairing is exact: adding 25 hours
// yields a one-day carry and a one-hour clock advance. ok is false
// only when the intermediate second count overflows int64, which the
// callers translate into a range failure.
func (r Time) adjustingAdd(d Duration) (t Time, days int64, ok bool) {
	nsec := int64(r.nanosecond) + int64(d.nsec)
	carry := floorDiv(nsec, nsPerSecond)
	nsec = floorMod(nsec, nsPerSecond)

	sec, ok := addInt64(r.secondOfDay(), d.sec)
	if ok {
		if sec, ok = addInt64(sec, carry); ok {
			days = floorDiv(sec, secsPerDay)
			t = timeFromDaySecNano(floorMod(sec, secsPerDay), nsec)
		}
	}

	return
}

// adjustingSub mirrors adjustingAdd for subtraction. Negating the
// extreme second count is unrepresentable and always lands outside
// the supported date range anyway, so it is rejected outright.
func (r Time) adjustingSub(d Duration) (t Time, days int64, ok bool) {
	if d.sec == math.MinInt64 {
		return
	}

	nsec := int64(r.nanosecond) - int64(d.nsec)
	carry := floorDiv(nsec, nsPerSecond)
	nsec = floorMod(nsec, nsPerSecond)

	sec, ok := addInt64(r.secondOfDay(), -d.sec)
	if ok {
		if sec, ok = addInt64(sec, carry); ok {
			days = floorDiv(sec, secsPerDay)
			t = timeFromDaySecNano(floorMod(sec, secsPerDay), nsec)
		}
	}

	return
}

/*
Cmp returns -1, 0 or 1 as the receiver is earlier than, equal to, or
later than t within a single day.
*/
func (r Time) Cmp(t Time) int {
	a := r.secondOfDay()
	b := t.secondOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case r.nanosecond < t.nanosecond:
		return -1
	case r.nanosecond > t.nanosecond:
		return 1
	}
	return 0
}

// appendFraction writes the sub-second component in groups of three
// digits, trimming trailing zero groups entirely.
func appendFraction(buf []byte, nsec uint32) []byte {
	if nsec == 0 {
		return buf
	}
	digits := 9
	for nsec%1_000 == 0 {
		nsec /= 1_000
		digits -= 3
	}
	buf = append(buf, '.')
	p := uint32(1)
	for i := 1; i < digits; i++ {
		p *= 10
	}
	for ; p >= 1; p /= 10 {
		buf = append(buf, byte('0'+(nsec/p)%10))
	}
	return buf
}

/*
String returns the string representation of the receiver instance in
the form hh:mm:ss[.fff[fff[fff]]], with the fraction omitted when
zero and otherwise trimmed in three-digit groups.
*/
func (r Time) String() string {
	var b [8]byte
	put2(b[:], 0, int(r.hour))
	b[2] = ':'
	put2(b[:], 3, int(r.minute))
	b[5] = ':'
	put2(b[:], 6, int(r.second))

	if r.nanosecond == 0 {
		return string(b[:])
	}
	return string(appendFraction(b[:], r.nanosecond))
}
