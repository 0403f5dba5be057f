package chrono

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var mkerr func(string) error = errors.New

/*
codec errors, surfaced by the RFC 3339 parser. Callers may compare
against these literals directly, or via [errors.Is].
*/
var (
	// ErrInvalidFormat indicates a structural defect, such as a bad
	// length or a missing separator.
	ErrInvalidFormat error = codecErr{mkerr("timestamp is structurally malformed")}

	// ErrInvalidDigit indicates a non ASCII-digit byte at a position
	// where a digit is required.
	ErrInvalidDigit error = codecErr{mkerr("non-digit byte where a digit is required")}

	// ErrOutOfRange indicates a numerically valid field whose value
	// falls outside its permitted bounds.
	ErrOutOfRange error = codecErr{mkerr("value exceeds permitted bounds")}
)

/*
general errors.
*/
var (
	errorDurationOverflow  error = generalErr{mkerr("Duration arithmetic overflow")}
	errorDurationNotFinite error = generalErr{mkerr("Duration scalar is NaN or infinite")}
	errorLocalOffsetOff    error = generalErr{mkerr("local offset queries require the chrono_local_offset build tag")}
	errorBigNanosNil       error = generalErr{mkerr("nil *big.Int input instance")}
)

/*
types which implement the error interface.
*/
type (
	codecErr   struct{ e error }
	generalErr struct{ e error }
)

func (r codecErr) Error() string   { return `RFC 3339 ERROR: ` + r.e.Error() }
func (r generalErr) Error() string { return `GENERAL ERROR: ` + r.e.Error() }

/*
ComponentRange is the structured error returned whenever a calendar,
time-of-day or offset component falls outside its valid range. When
ConditionalRange is true, the reported bound itself depends upon the
value of another component (e.g. the day bound depends on the month
and on leap-year status).

ComponentRange is always recoverable; callers are expected to handle
it via their own validation logic.
*/
type ComponentRange struct {
	Name             string
	Minimum          int64
	Maximum          int64
	Value            int64
	ConditionalRange bool
}

/*
Error returns the string representation of the receiver instance.
*/
func (r ComponentRange) Error() string {
	s := `COMPONENT RANGE: ` + r.Name + ` must be in range ` +
		fmtInt(r.Minimum, 10) + `..` + fmtInt(r.Maximum, 10) +
		`, got ` + fmtInt(r.Value, 10)
	if r.ConditionalRange {
		s += ` (bound is conditional upon other components)`
	}
	return s
}

/*
checkRange returns a [ComponentRange] error when value lies outside
[min, max], else nil.
*/
func checkRange[T constraints.Integer](name string, value, min, max T, conditional bool) (err error) {
	if value < min || max < value {
		err = ComponentRange{
			Name:             name,
			Minimum:          int64(min),
			Maximum:          int64(max),
			Value:            int64(value),
			ConditionalRange: conditional,
		}
	}

	return
}
