package chrono

/*
duration.go implements the signed, nanosecond-precision span of time
consumed by every other arithmetic component in this package.
*/

import (
	"math"
	"math/big"
	"time"
)

/*
Duration implements a signed span of time with nanosecond resolution.

The representation is sign-normalized: the stored nanosecond field
always shares the sign of the stored second field, or is zero, and its
magnitude is strictly less than one second. [NewDuration] re-normalizes
any mismatched input, so the invariant cannot be violated through the
public surface.

The zero value is the additive identity.
*/
type Duration struct {
	sec  int64
	nsec int32
}

/*
MinDuration and MaxDuration are the extreme representable spans, used
as the clamping targets of the Saturating* arithmetic family.
*/
var (
	MinDuration = Duration{sec: math.MinInt64, nsec: -999_999_999}
	MaxDuration = Duration{sec: math.MaxInt64, nsec: 999_999_999}
)

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to normalize sec and nsec into a single span.

nsec may be supplied with either sign and with any magnitude; whole
seconds are carried into sec and the remainder is re-signed so that
the two fields never disagree. An error is returned only when the
carried value overflows the representable range, or when a supplied
[Constraint] is violated.
*/
func NewDuration(sec int64, nsec int64, constraints ...Constraint[Duration]) (Duration, error) {
	var d Duration
	var err error

	s, ok := addInt64(sec, nsec/nsPerSecond)
	if !ok {
		return d, errorDurationOverflow
	}
	n := int32(nsec % nsPerSecond)

	if s > 0 && n < 0 {
		s--
		n += int32(nsPerSecond)
	} else if s < 0 && n > 0 {
		s++
		n -= int32(nsPerSecond)
	}

	d = Duration{sec: s, nsec: n}

	if len(constraints) > 0 {
		var group ConstraintGroup[Duration] = constraints
		err = group.Constrain(d)
	}

	return d, err
}

// durFromSecNsec normalizes a (seconds, nanoseconds) pair in which
// |n| may reach two seconds worth of nanoseconds, reporting overflow
// instead of wrapping.
func durFromSecNsec(sec int64, n int64) (Duration, bool) {
	var ok bool
	if sec, ok = addInt64(sec, n/nsPerSecond); !ok {
		return Duration{}, false
	}
	n %= nsPerSecond

	if sec > 0 && n < 0 {
		sec--
		n += nsPerSecond
	} else if sec < 0 && n > 0 {
		sec++
		n -= nsPerSecond
	}

	return Duration{sec: sec, nsec: int32(n)}, true
}

/*
Seconds returns a [Duration] spanning s whole seconds.
*/
func Seconds(s int64) Duration { return Duration{sec: s} }

/*
Milliseconds returns a [Duration] spanning ms milliseconds.
*/
func Milliseconds(ms int64) Duration {
	return Duration{sec: ms / 1_000, nsec: int32((ms % 1_000) * nsPerMilli)}
}

/*
Microseconds returns a [Duration] spanning us microseconds.
*/
func Microseconds(us int64) Duration {
	return Duration{sec: us / 1_000_000, nsec: int32((us % 1_000_000) * nsPerMicro)}
}

/*
Nanoseconds returns a [Duration] spanning ns nanoseconds.
*/
func Nanoseconds(ns int64) Duration {
	return Duration{sec: ns / nsPerSecond, nsec: int32(ns % nsPerSecond)}
}

/*
NanosecondsBig returns a [Duration] spanning the number of nanoseconds
held by n, which may exceed the range of int64. The Boolean value is
false when the whole-second component of n overflows int64, or when n
is nil.
*/
func NanosecondsBig(n *big.Int) (Duration, bool) {
	if n == nil {
		return Duration{}, false
	}
	quo, rem := new(big.Int).QuoRem(n, newBigInt(nsPerSecond), new(big.Int))
	if !quo.IsInt64() {
		return Duration{}, false
	}
	return Duration{sec: quo.Int64(), nsec: int32(rem.Int64())}, true
}

func mustUnits(v, per int64) Duration {
	s, ok := mulInt64(v, per)
	if !ok {
		panic(errorDurationOverflow)
	}
	return Duration{sec: s}
}

/*
Minutes returns a [Duration] spanning m whole minutes. Minutes panics
when the equivalent second count overflows; use [Seconds] with a
pre-checked multiplication where that is a data-quality concern.
*/
func Minutes(m int64) Duration { return mustUnits(m, secsPerMinute) }

/*
Hours returns a [Duration] spanning h whole hours, panicking on
overflow as [Minutes] does.
*/
func Hours(h int64) Duration { return mustUnits(h, secsPerHour) }

/*
Days returns a [Duration] spanning d whole days, panicking on overflow
as [Minutes] does.
*/
func Days(d int64) Duration { return mustUnits(d, secsPerDay) }

/*
Weeks returns a [Duration] spanning w whole weeks, panicking on
overflow as [Minutes] does.
*/
func Weeks(w int64) Duration { return mustUnits(w, secsPerWeek) }

/*
IsZero returns true when the receiver spans no time at all.
*/
func (r Duration) IsZero() bool { return r.sec == 0 && r.nsec == 0 }

/*
IsPositive returns true when the receiver spans a strictly positive
amount of time.
*/
func (r Duration) IsPositive() bool { return r.sec > 0 || (r.sec == 0 && r.nsec > 0) }

/*
IsNegative returns true when the receiver spans a strictly negative
amount of time.
*/
func (r Duration) IsNegative() bool { return r.sec < 0 || (r.sec == 0 && r.nsec < 0) }

/*
WholeSeconds returns the whole-second component of the receiver,
truncated toward zero.
*/
func (r Duration) WholeSeconds() int64 { return r.sec }

/*
SubsecNanoseconds returns the sub-second component of the receiver in
nanoseconds. The value shares the sign of [Duration.WholeSeconds], or
carries the span's entire sign when no whole second is present.
*/
func (r Duration) SubsecNanoseconds() int32 { return r.nsec }

/*
SubsecMilliseconds returns the sub-second component of the receiver
in milliseconds, truncated toward zero.
*/
func (r Duration) SubsecMilliseconds() int32 { return r.nsec / int32(nsPerMilli) }

/*
SubsecMicroseconds returns the sub-second component of the receiver
in microseconds, truncated toward zero.
*/
func (r Duration) SubsecMicroseconds() int32 { return r.nsec / int32(nsPerMicro) }

/*
WholeMinutes returns the number of whole minutes spanned, truncated
toward zero.
*/
func (r Duration) WholeMinutes() int64 { return r.sec / secsPerMinute }

/*
WholeHours returns the number of whole hours spanned, truncated toward
zero.
*/
func (r Duration) WholeHours() int64 { return r.sec / secsPerHour }

/*
WholeDays returns the number of whole days spanned, truncated toward
zero.
*/
func (r Duration) WholeDays() int64 { return r.sec / secsPerDay }

/*
WholeWeeks returns the number of whole weeks spanned, truncated toward
zero.
*/
func (r Duration) WholeWeeks() int64 { return r.sec / secsPerWeek }

/*
WholeNanosecondsBig returns the exact span of the receiver expressed
in nanoseconds, which may exceed the range of int64.
*/
func (r Duration) WholeNanosecondsBig() *big.Int {
	n := new(big.Int).Mul(newBigInt(r.sec), newBigInt(nsPerSecond))
	return n.Add(n, newBigInt(int64(r.nsec)))
}

/*
CheckedAdd returns the sum of the receiver and d. The Boolean value is
false when the sum overflows the representable range.
*/
func (r Duration) CheckedAdd(d Duration) (Duration, bool) {
	sec, ok := addInt64(r.sec, d.sec)
	if !ok {
		return Duration{}, false
	}
	return durFromSecNsec(sec, int64(r.nsec)+int64(d.nsec))
}

/*
CheckedSub returns the difference of the receiver and d. The Boolean
value is false when the difference overflows the representable range.
*/
func (r Duration) CheckedSub(d Duration) (Duration, bool) {
	var (
		sec int64
		ok  bool
	)
	if d.sec == math.MinInt64 {
		// -MinInt64 is unrepresentable; fold the sign flip into the
		// addition instead.
		if sec, ok = addInt64(r.sec, math.MaxInt64); ok {
			sec, ok = addInt64(sec, 1)
		}
	} else {
		sec, ok = addInt64(r.sec, -d.sec)
	}
	if !ok {
		return Duration{}, false
	}
	return durFromSecNsec(sec, int64(r.nsec)-int64(d.nsec))
}

/*
Add returns the sum of the receiver and d, panicking on overflow. Use
[Duration.CheckedAdd] or [Duration.SaturatingAdd] for fallible input.
*/
func (r Duration) Add(d Duration) Duration {
	out, ok := r.CheckedAdd(d)
	if !ok {
		panic(errorDurationOverflow)
	}
	return out
}

/*
Sub returns the difference of the receiver and d, panicking on
overflow. Use [Duration.CheckedSub] or [Duration.SaturatingSub] for
fallible input.
*/
func (r Duration) Sub(d Duration) Duration {
	out, ok := r.CheckedSub(d)
	if !ok {
		panic(errorDurationOverflow)
	}
	return out
}

// saturation target when an operation overflows in the direction of
// sign.
func saturated(negative bool) Duration {
	if negative {
		return MinDuration
	}
	return MaxDuration
}

/*
SaturatingAdd returns the sum of the receiver and d, clamping to
[MinDuration] or [MaxDuration] instead of overflowing.
*/
func (r Duration) SaturatingAdd(d Duration) Duration {
	out, ok := r.CheckedAdd(d)
	if !ok {
		// overflow requires both operands to share a sign.
		out = saturated(r.IsNegative())
	}
	return out
}

/*
SaturatingSub returns the difference of the receiver and d, clamping
to [MinDuration] or [MaxDuration] instead of overflowing.
*/
func (r Duration) SaturatingSub(d Duration) Duration {
	out, ok := r.CheckedSub(d)
	if !ok {
		out = saturated(r.IsNegative() || (r.IsZero() && d.IsPositive()))
	}
	return out
}

/*
CheckedMul returns the receiver scaled by i. The Boolean value is
false when the product overflows the representable range.
*/
func (r Duration) CheckedMul(i int32) (Duration, bool) {
	sec, ok := mulInt64(r.sec, int64(i))
	if !ok {
		return Duration{}, false
	}
	// |nsec| < 1e9 and |i| <= 2^31, so the sub-second product fits
	// comfortably within int64.
	n := int64(r.nsec) * int64(i)
	if sec, ok = addInt64(sec, n/nsPerSecond); !ok {
		return Duration{}, false
	}
	return durFromSecNsec(sec, n%nsPerSecond)
}

/*
SaturatingMul returns the receiver scaled by i, clamping to
[MinDuration] or [MaxDuration] instead of overflowing.
*/
func (r Duration) SaturatingMul(i int32) Duration {
	out, ok := r.CheckedMul(i)
	if !ok {
		out = saturated(r.IsNegative() != (i < 0))
	}
	return out
}

/*
Mul returns the receiver scaled by i, panicking on overflow.
*/
func (r Duration) Mul(i int32) Duration {
	out, ok := r.CheckedMul(i)
	if !ok {
		panic(errorDurationOverflow)
	}
	return out
}

/*
CheckedDiv returns the receiver divided by i with the remainder folded
into the nanosecond field. The Boolean value is false when i is zero,
or when the quotient overflows (the receiver at its negative extreme
divided by -1).
*/
func (r Duration) CheckedDiv(i int32) (Duration, bool) {
	if i == 0 || (r.sec == math.MinInt64 && i == -1) {
		return Duration{}, false
	}
	sec := r.sec / int64(i)
	rem := (r.sec%int64(i))*nsPerSecond + int64(r.nsec)
	return durFromSecNsec(sec, rem/int64(i))
}

/*
Div returns the receiver divided by i, panicking when i is zero or on
quotient overflow.
*/
func (r Duration) Div(i int32) Duration {
	out, ok := r.CheckedDiv(i)
	if !ok {
		panic(errorDurationOverflow)
	}
	return out
}

// asSecondsF64 flattens the receiver into floating-point seconds.
func (r Duration) asSecondsF64() float64 {
	return float64(r.sec) + float64(r.nsec)/float64(nsPerSecond)
}

func durFromSecondsF64(s float64) (Duration, bool) {
	if math.IsNaN(s) || math.IsInf(s, 0) ||
		s >= float64(math.MaxInt64) || s <= float64(math.MinInt64) {
		return Duration{}, false
	}
	whole, frac := math.Modf(s)
	// rounding may push the fractional part to a full second; let the
	// normalizer carry it.
	return durFromSecNsec(int64(whole), int64(math.Round(frac*float64(nsPerSecond))))
}

/*
CheckedMulFloat returns the receiver scaled by f through
floating-point seconds. The Boolean value is false when f is NaN or
infinite, or when the product overflows. Precision is limited to that
of float64.
*/
func (r Duration) CheckedMulFloat(f float64) (Duration, bool) {
	return durFromSecondsF64(r.asSecondsF64() * f)
}

/*
MulFloat returns the receiver scaled by f, panicking when the product
is unrepresentable.
*/
func (r Duration) MulFloat(f float64) Duration {
	out, ok := r.CheckedMulFloat(f)
	if !ok {
		panic(errorDurationNotFinite)
	}
	return out
}

/*
CheckedDivFloat returns the receiver divided by f through
floating-point seconds. The Boolean value is false when the quotient
is unrepresentable (including division by zero).
*/
func (r Duration) CheckedDivFloat(f float64) (Duration, bool) {
	return durFromSecondsF64(r.asSecondsF64() / f)
}

/*
DivFloat returns the receiver divided by f, panicking when the
quotient is unrepresentable.
*/
func (r Duration) DivFloat(f float64) Duration {
	out, ok := r.CheckedDivFloat(f)
	if !ok {
		panic(errorDurationNotFinite)
	}
	return out
}

/*
CheckedAbs returns the absolute value of the receiver. The Boolean
value is false only when the receiver is [MinDuration], whose
magnitude is unrepresentable.
*/
func (r Duration) CheckedAbs() (Duration, bool) {
	if !r.IsNegative() {
		return r, true
	}
	if r.sec == math.MinInt64 {
		return Duration{}, false
	}
	return Duration{sec: -r.sec, nsec: -r.nsec}, true
}

/*
Abs returns the absolute value of the receiver, panicking only when
the receiver is [MinDuration]. Use [Duration.CheckedAbs] for fallible
input.
*/
func (r Duration) Abs() Duration {
	out, ok := r.CheckedAbs()
	if !ok {
		panic(errorDurationOverflow)
	}
	return out
}

// stdNanos flattens the receiver into int64 nanoseconds, reporting
// overflow for spans beyond roughly ±292 years.
func (r Duration) stdNanos() (int64, bool) {
	n, ok := mulInt64(r.sec, nsPerSecond)
	if !ok {
		return 0, false
	}
	return addInt64(n, int64(r.nsec))
}

/*
AbsStd returns the magnitude of the receiver as a non-negative
[time.Duration] for interfacing with platform clock APIs.

The conversion DISCARDS SIGN: callers must track direction separately
via [Duration.IsPositive] and [Duration.IsNegative]. The Boolean value
is false when the magnitude exceeds the range of [time.Duration].
*/
func (r Duration) AbsStd() (time.Duration, bool) {
	n, ok := r.stdNanos()
	if !ok || n == math.MinInt64 {
		return 0, false
	}
	if n < 0 {
		n = -n
	}
	return time.Duration(n), true
}

// durationFromStd lifts a platform duration; always exact, since
// time.Duration is a subset of the representable range.
func durationFromStd(d time.Duration) Duration {
	return Nanoseconds(int64(d))
}

/*
Cmp returns -1, 0 or 1 as the receiver is less than, equal to, or
greater than d.
*/
func (r Duration) Cmp(d Duration) int {
	switch {
	case r.sec < d.sec:
		return -1
	case r.sec > d.sec:
		return 1
	case r.nsec < d.nsec:
		return -1
	case r.nsec > d.nsec:
		return 1
	}
	return 0
}

/*
String returns the string representation of the receiver instance,
rendered in the platform [time.Duration] notation where the span
permits, else as decimal seconds.
*/
func (r Duration) String() string {
	if n, ok := r.stdNanos(); ok {
		return time.Duration(n).String()
	}

	n := r.nsec
	if n < 0 {
		n = -n
	}
	buf := make([]byte, 0, 32)
	buf = append(buf, fmtInt(r.sec, 10)...)
	buf = append(buf, '.')
	for p := int32(100_000_000); p >= 1; p /= 10 {
		buf = append(buf, byte('0'+(n/p)%10))
	}
	buf = append(buf, 's')
	return string(buf)
}
