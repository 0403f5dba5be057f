package chrono

import (
	"fmt"
	"testing"
)

func TestRangeConstraint(t *testing.T) {
	businessHours := RangeConstraint(
		Must(TimeFromHMS(9, 0, 0)).secondOfDay(),
		Must(TimeFromHMS(17, 0, 0)).secondOfDay(),
	)
	inHours := LiftConstraint(func(tm Time) int64 { return tm.secondOfDay() }, businessHours)

	if _, err := TimeFromHMS(12, 30, 0, inHours); err != nil {
		t.Fatalf("%s failed [in range]: %v", t.Name(), err)
	}
	if _, err := TimeFromHMS(3, 0, 0, inHours); err == nil {
		t.Fatalf("%s failed [out of range]: expected violation", t.Name())
	}
}

func TestConstraintGroup(t *testing.T) {
	var calls []string

	first := func(Date) error { calls = append(calls, "first"); return nil }
	second := func(Date) error { calls = append(calls, "second"); return mkerr("halt") }
	third := func(Date) error { calls = append(calls, "third"); return nil }

	group := ConstraintGroup[Date]{first, nil, second, third}
	if err := group.Constrain(Date{}); err == nil {
		t.Fatalf("%s failed: expected violation", t.Name())
	}

	// evaluation proceeds in order and stops at the first violation.
	if fmt.Sprint(calls) != "[first second]" {
		t.Fatalf("%s failed [evaluation order]: got %v", t.Name(), calls)
	}
}

func ExampleRangeConstraint() {
	modern := LiftConstraint(Date.Year, RangeConstraint(1900, 2099))
	_, err := FromCalendarDate(1895, June, 1, modern)
	fmt.Println(err)
	// Output: GENERAL ERROR: value falls outside the constrained range
}
