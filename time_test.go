package chrono

import (
	"fmt"
	"testing"
)

func TestTimeFromHMS_rejects(t *testing.T) {
	for _, tc := range []struct {
		hour, minute, second int
	}{
		{24, 0, 0},
		{-1, 0, 0},
		{0, 60, 0},
		{0, 0, 60},
	} {
		if _, err := TimeFromHMS(tc.hour, tc.minute, tc.second); err == nil {
			t.Fatalf("%s failed [%02d:%02d:%02d]: expected rejection",
				t.Name(), tc.hour, tc.minute, tc.second)
		}
	}

	if _, err := TimeFromHMS(23, 59, 59); err != nil {
		t.Fatalf("%s failed [23:59:59]: %v", t.Name(), err)
	}
	if _, err := TimeFromHMSMilli(0, 0, 0, 1_000); err == nil {
		t.Fatalf("%s failed [ms 1000]: expected rejection", t.Name())
	}
	if _, err := TimeFromHMSMicro(0, 0, 0, 1_000_000); err == nil {
		t.Fatalf("%s failed [us 1000000]: expected rejection", t.Name())
	}
	if _, err := TimeFromHMSNano(0, 0, 0, 1_000_000_000); err == nil {
		t.Fatalf("%s failed [ns 1000000000]: expected rejection", t.Name())
	}
}

func TestTime_accessors(t *testing.T) {
	tm := Must(TimeFromHMSMilli(12, 34, 56, 789))

	if tm.Hour() != 12 || tm.Minute() != 34 || tm.Second() != 56 {
		t.Fatalf("%s failed [hms]: got %02d:%02d:%02d",
			t.Name(), tm.Hour(), tm.Minute(), tm.Second())
	}
	if tm.Millisecond() != 789 || tm.Microsecond() != 789_000 || tm.Nanosecond() != 789_000_000 {
		t.Fatalf("%s failed [subsecond]: got %d/%d/%d",
			t.Name(), tm.Millisecond(), tm.Microsecond(), tm.Nanosecond())
	}
}

func TestTime_cmp(t *testing.T) {
	a := Must(TimeFromHMS(8, 30, 0))
	b := Must(TimeFromHMSNano(8, 30, 0, 1))
	c := Must(TimeFromHMS(9, 0, 0))

	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 || b.Cmp(c) != -1 {
		t.Fatalf("%s failed [ordering]: %d %d %d %d",
			t.Name(), a.Cmp(b), b.Cmp(a), a.Cmp(a), b.Cmp(c))
	}
}

func TestTime_string(t *testing.T) {
	for _, tc := range []struct {
		tm   Time
		want string
	}{
		{Midnight, "00:00:00"},
		{Must(TimeFromHMS(23, 59, 59)), "23:59:59"},
		{Must(TimeFromHMSMilli(12, 34, 56, 789)), "12:34:56.789"},
		{Must(TimeFromHMSMilli(12, 34, 56, 120)), "12:34:56.120"},
		{Must(TimeFromHMSMicro(1, 2, 3, 500_250)), "01:02:03.500250"},
		{Must(TimeFromHMSNano(1, 2, 3, 450)), "01:02:03.000000450"},
	} {
		if got := tc.tm.String(); got != tc.want {
			t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), tc.want, got)
		}
	}
}

func ExampleTimeFromHMSMilli() {
	fmt.Println(Must(TimeFromHMSMilli(16, 4, 59, 500)))
	// Output: 16:04:59.500
}
