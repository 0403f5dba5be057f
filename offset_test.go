package chrono

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOffsetFromHMS(t *testing.T) {
	o := Must(OffsetFromHMS(-5, -30, 0))
	if o.WholeSeconds() != -19_800 || o.WholeMinutes() != -330 || o.WholeHours() != -5 {
		t.Fatalf("%s failed [totals]: %d %d %d",
			t.Name(), o.WholeSeconds(), o.WholeMinutes(), o.WholeHours())
	}
	if !o.IsNegative() || o.IsPositive() || o.IsUTC() {
		t.Fatalf("%s failed [sign queries]", t.Name())
	}

	for _, tc := range []struct{ h, m, s int }{
		{24, 0, 0},
		{-24, 0, 0},
		{0, 60, 0},
		{0, 0, -60},
	} {
		if _, err := OffsetFromHMS(tc.h, tc.m, tc.s); err == nil {
			t.Fatalf("%s failed [%d/%d/%d]: expected rejection", t.Name(), tc.h, tc.m, tc.s)
		}
	}
}

func TestOffsetFromHMS_signConsistency(t *testing.T) {
	_, err := OffsetFromHMS(1, -30, 0)
	if err == nil {
		t.Fatalf("%s failed [mixed signs]: expected rejection", t.Name())
	}
	want := ComponentRange{
		Name:             "minutes",
		Minimum:          0,
		Maximum:          59,
		Value:            -30,
		ConditionalRange: true,
	}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Fatalf("%s failed [error shape] (-want +got):\n%s", t.Name(), diff)
	}

	// the sign may be established by the minute component alone.
	if _, err = OffsetFromHMS(0, -30, 15); err == nil {
		t.Fatalf("%s failed [second against minute sign]: expected rejection", t.Name())
	}
	if _, err = OffsetFromHMS(0, -30, -15); err != nil {
		t.Fatalf("%s failed [-00:30:15]: %v", t.Name(), err)
	}
	if _, err = OffsetFromHMS(0, 0, -5); err != nil {
		t.Fatalf("%s failed [-00:00:05]: %v", t.Name(), err)
	}
}

func TestOffsetFromWholeSeconds(t *testing.T) {
	o := Must(OffsetFromWholeSeconds(-19_800))
	if o.String() != "-05:30:00" {
		t.Fatalf("%s failed [decompose]: got %s", t.Name(), o)
	}
	if back := o.WholeSeconds(); back != -19_800 {
		t.Fatalf("%s failed [inverse]: got %d", t.Name(), back)
	}

	if _, err := OffsetFromWholeSeconds(86_400); err == nil {
		t.Fatalf("%s failed [24h]: expected rejection", t.Name())
	}
	if _, err := OffsetFromWholeSeconds(-86_400); err == nil {
		t.Fatalf("%s failed [-24h]: expected rejection", t.Name())
	}
	if _, err := OffsetFromWholeSeconds(86_399); err != nil {
		t.Fatalf("%s failed [23:59:59]: %v", t.Name(), err)
	}
}

func TestUtcOffset_string(t *testing.T) {
	for _, tc := range []struct {
		o    UtcOffset
		want string
	}{
		{UTC, "+00:00:00"},
		{Must(OffsetFromHMS(2, 0, 0)), "+02:00:00"},
		{Must(OffsetFromHMS(-5, -30, 0)), "-05:30:00"},
		{Must(OffsetFromHMS(0, 0, -5)), "-00:00:05"},
		{Must(OffsetFromHMS(23, 59, 59)), "+23:59:59"},
	} {
		if got := tc.o.String(); got != tc.want {
			t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), tc.want, got)
		}
	}
}

func ExampleOffsetFromHMS() {
	fmt.Println(Must(OffsetFromHMS(-5, -30, 0)))
	// Output: -05:30:00
}
