package chrono

/*
instant.go implements the opaque monotonic-clock handle used for
elapsed-time measurement. Instants never mix with the calendar types.
*/

import "time"

/*
Instant implements an opaque reading of the platform's monotonic
clock. Only the difference between two instants (an elapsed
[Duration]) and their ordering carry meaning; there is deliberately
no absolute-value accessor, since a monotonic reading has no calendar
interpretation.
*/
type Instant struct {
	t time.Time
}

/*
Now returns an [Instant] holding a fresh monotonic-clock sample. This
performs a single synchronous clock read.
*/
func Now() Instant { return Instant{t: time.Now()} }

/*
Sub returns the span of time separating the receiver from i, positive
when the receiver was sampled later. This is the only way to extract
information from an [Instant].
*/
func (r Instant) Sub(i Instant) Duration {
	return durationFromStd(r.t.Sub(i.t))
}

/*
Elapsed returns the span of time since the receiver was sampled. The
result can be negative only for synthetically advanced instants built
via [Instant.CheckedAdd], never for raw [Now] readings.
*/
func (r Instant) Elapsed() Duration { return Now().Sub(r) }

/*
CheckedAdd returns the receiver advanced by d. The Boolean value is
false when d exceeds the platform clock's representable span (roughly
±292 years) or the shifted reading leaves it.
*/
func (r Instant) CheckedAdd(d Duration) (Instant, bool) {
	n, ok := d.stdNanos()
	if !ok {
		return Instant{}, false
	}
	std := time.Duration(n)
	out := Instant{t: r.t.Add(std)}

	// time.Time.Add wraps silently at the extremes; a shift in the
	// wrong direction betrays it.
	if (std > 0 && out.t.Before(r.t)) || (std < 0 && out.t.After(r.t)) {
		return Instant{}, false
	}
	return out, true
}

/*
CheckedSub returns the receiver moved backward by d, under the same
range rules as [Instant.CheckedAdd].
*/
func (r Instant) CheckedSub(d Duration) (Instant, bool) {
	n, ok := d.stdNanos()
	if !ok || -n == n && n != 0 {
		return Instant{}, false
	}
	return r.CheckedAdd(durationFromStd(time.Duration(-n)))
}

/*
Equal returns true when the receiver and i hold the same clock
reading.
*/
func (r Instant) Equal(i Instant) bool { return r.t.Equal(i.t) }

/*
Before returns true when the receiver was sampled earlier than i.
*/
func (r Instant) Before(i Instant) bool { return r.t.Before(i.t) }

/*
After returns true when the receiver was sampled later than i.
*/
func (r Instant) After(i Instant) bool { return r.t.After(i.t) }
