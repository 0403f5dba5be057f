package chrono

/*
offset.go implements the fixed east/west-of-UTC offset consumed by
OffsetDateTime.
*/

/*
UtcOffset implements a fixed offset from UTC, held as hour, minute
and second components which always share a single sign (or are all
zero). The total magnitude is strictly less than 24 hours.
*/
type UtcOffset struct {
	hours   int8
	minutes int8
	seconds int8
}

/*
UTC is the zero [UtcOffset].
*/
var UTC = UtcOffset{}

// signRange returns the conditional bounds a trailing component must
// satisfy given the sign already established by the leading ones.
func signRange(name string, value, sign int) (err error) {
	switch {
	case sign > 0:
		err = checkRange(name, value, 0, 59, true)
	case sign < 0:
		err = checkRange(name, value, -59, 0, true)
	}
	return
}

/*
OffsetFromHMS returns an instance of [UtcOffset] alongside an error
following an attempt to compose hour, minute and second components.
All non-zero components must share the same sign; a trailing
component violating the sign established by a leading one is rejected
with a conditional-range error.
*/
func OffsetFromHMS(hours, minutes, seconds int, constraints ...Constraint[UtcOffset]) (UtcOffset, error) {
	var o UtcOffset
	var err error

	if err = checkRange("hours", hours, -23, 23, false); err != nil {
		return o, err
	}
	if err = checkRange("minutes", minutes, -59, 59, false); err != nil {
		return o, err
	}
	if err = checkRange("seconds", seconds, -59, 59, false); err != nil {
		return o, err
	}

	if err = signRange("minutes", minutes, hours); err != nil {
		return o, err
	}
	sign := hours
	if sign == 0 {
		sign = minutes
	}
	if err = signRange("seconds", seconds, sign); err != nil {
		return o, err
	}

	o = UtcOffset{hours: int8(hours), minutes: int8(minutes), seconds: int8(seconds)}

	if len(constraints) > 0 {
		var group ConstraintGroup[UtcOffset] = constraints
		err = group.Constrain(o)
	}

	return o, err
}

/*
OffsetFromWholeSeconds returns an instance of [UtcOffset] alongside
an error following an attempt to decompose a whole-second offset.
The magnitude must be less than 24 hours.
*/
func OffsetFromWholeSeconds(seconds int, constraints ...Constraint[UtcOffset]) (UtcOffset, error) {
	var o UtcOffset
	var err error

	if err = checkRange("seconds", seconds, -86_399, 86_399, false); err != nil {
		return o, err
	}

	o = UtcOffset{
		hours:   int8(seconds / 3_600),
		minutes: int8((seconds / 60) % 60),
		seconds: int8(seconds % 60),
	}

	if len(constraints) > 0 {
		var group ConstraintGroup[UtcOffset] = constraints
		err = group.Constrain(o)
	}

	return o, err
}

/*
WholeSeconds returns the signed total of the receiver instance in
seconds.
*/
func (r UtcOffset) WholeSeconds() int {
	return int(r.hours)*3_600 + int(r.minutes)*60 + int(r.seconds)
}

/*
WholeMinutes returns the signed total of the receiver instance in
whole minutes, truncated toward zero.
*/
func (r UtcOffset) WholeMinutes() int { return r.WholeSeconds() / 60 }

/*
WholeHours returns the signed hour component of the receiver
instance.
*/
func (r UtcOffset) WholeHours() int { return int(r.hours) }

/*
IsUTC returns true when all components of the receiver are zero.
*/
func (r UtcOffset) IsUTC() bool {
	return r.hours == 0 && r.minutes == 0 && r.seconds == 0
}

/*
IsPositive returns true when the receiver lies east of UTC.
*/
func (r UtcOffset) IsPositive() bool { return r.WholeSeconds() > 0 }

/*
IsNegative returns true when the receiver lies west of UTC.
*/
func (r UtcOffset) IsNegative() bool { return r.WholeSeconds() < 0 }

/*
String returns the string representation of the receiver instance in
the form ±hh:mm:ss. The zero offset renders as +00:00:00.
*/
func (r UtcOffset) String() string {
	var b [9]byte
	h, m, s := int(r.hours), int(r.minutes), int(r.seconds)

	b[0] = '+'
	if r.IsNegative() {
		b[0] = '-'
		h, m, s = -h, -m, -s
	}
	put2(b[:], 1, h)
	b[3] = ':'
	put2(b[:], 4, m)
	b[6] = ':'
	put2(b[:], 7, s)

	return string(b[:])
}
