package chrono

/*
constr.go contains the generic constraint components accepted by the
fallible constructors throughout this package.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to
enforce the constraining of values beyond the structural validation
already performed by the constructors.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are added (and, thus, evaluated) in the order in which they
are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to
type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns a [Constraint] which rejects any value falling
outside [min, max] under Go's native ordering.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(x T) (err error) {
		if x < min || max < x {
			err = generalErr{mkerr("value falls outside the constrained range")}
		}
		return
	}
}
