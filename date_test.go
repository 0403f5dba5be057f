package chrono

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsLeapYear(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2000, true},
		{1900, false},
		{2004, true},
		{2023, false},
		{2024, true},
		{0, true},
		{-44, true},
	} {
		if got := IsLeapYear(tc.year); got != tc.leap {
			t.Fatalf("%s failed [year %d]:\n\twant: %t\n\tgot:  %t",
				t.Name(), tc.year, tc.leap, got)
		}
	}
}

func TestFromCalendarDate_rejects(t *testing.T) {
	if _, err := FromCalendarDate(2023, February, 29); err == nil {
		t.Fatalf("%s failed [2023-02-29]: expected rejection", t.Name())
	} else {
		want := ComponentRange{
			Name:             "day",
			Minimum:          1,
			Maximum:          28,
			Value:            29,
			ConditionalRange: true,
		}
		if diff := cmp.Diff(want, err); diff != "" {
			t.Fatalf("%s failed [error shape] (-want +got):\n%s", t.Name(), diff)
		}
	}

	for _, tc := range []struct {
		year  int
		month Month
		day   int
	}{
		{2024, Month(0), 1},
		{2024, Month(13), 1},
		{2024, April, 31},
		{2024, January, 0},
		{minYear - 1, January, 1},
		{maxYear + 1, January, 1},
	} {
		if _, err := FromCalendarDate(tc.year, tc.month, tc.day); err == nil {
			t.Fatalf("%s failed [%d-%d-%d]: expected rejection",
				t.Name(), tc.year, tc.month, tc.day)
		}
	}

	if _, err := FromCalendarDate(2024, February, 29); err != nil {
		t.Fatalf("%s failed [2024-02-29]: %v", t.Name(), err)
	}
}

func TestFromOrdinalDate(t *testing.T) {
	leap := Must(FromOrdinalDate(2024, 60))
	if y, m, d := leap.CalendarDate(); y != 2024 || m != February || d != 29 {
		t.Fatalf("%s failed [2024 day 60]: got %d-%s-%d", t.Name(), y, m, d)
	}

	common := Must(FromOrdinalDate(2023, 60))
	if y, m, d := common.CalendarDate(); y != 2023 || m != March || d != 1 {
		t.Fatalf("%s failed [2023 day 60]: got %d-%s-%d", t.Name(), y, m, d)
	}

	if _, err := FromOrdinalDate(2023, 366); err == nil {
		t.Fatalf("%s failed [2023 day 366]: expected rejection", t.Name())
	}
	if _, err := FromOrdinalDate(2024, 366); err != nil {
		t.Fatalf("%s failed [2024 day 366]: %v", t.Name(), err)
	}
}

func TestDate_weekday(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month Month
		day   int
		want  Weekday
	}{
		{1970, January, 1, Thursday},
		{1969, December, 31, Wednesday},
		{2000, January, 1, Saturday},
		{2024, January, 1, Monday},
		{2024, June, 15, Saturday},
	} {
		d := Must(FromCalendarDate(tc.year, tc.month, tc.day))
		if got := d.Weekday(); got != tc.want {
			t.Fatalf("%s failed [%s]:\n\twant: %s\n\tgot:  %s",
				t.Name(), d, tc.want, got)
		}
	}
}

func TestDate_isoWeekDate(t *testing.T) {
	for _, tc := range []struct {
		year    int
		month   Month
		day     int
		isoYear int
		isoWeek int
		isoDay  Weekday
	}{
		{2024, January, 1, 2024, 1, Monday},
		{2021, January, 1, 2020, 53, Friday},
		{2019, December, 30, 2020, 1, Monday},
		{2016, January, 3, 2015, 53, Sunday},
		{2020, December, 31, 2020, 53, Thursday},
	} {
		d := Must(FromCalendarDate(tc.year, tc.month, tc.day))
		y, w, wd := d.ISOWeekDate()
		if y != tc.isoYear || w != tc.isoWeek || wd != tc.isoDay {
			t.Fatalf("%s failed [%s]:\n\twant: %d-W%d-%s\n\tgot:  %d-W%d-%s",
				t.Name(), d, tc.isoYear, tc.isoWeek, tc.isoDay, y, w, wd)
		}

		back, err := FromISOWeekDate(y, w, wd)
		if err != nil {
			t.Fatalf("%s failed [inverse of %s]: %v", t.Name(), d, err)
		}
		if back.Cmp(d) != 0 {
			t.Fatalf("%s failed [inverse of %s]: got %s", t.Name(), d, back)
		}
	}

	// 2019 is a short ISO year.
	if _, err := FromISOWeekDate(2019, 53, Monday); err == nil {
		t.Fatalf("%s failed [2019-W53]: expected rejection", t.Name())
	}
	if _, err := FromISOWeekDate(2020, 53, Friday); err != nil {
		t.Fatalf("%s failed [2020-W53]: %v", t.Name(), err)
	}
}

func TestDate_julianDay(t *testing.T) {
	epoch := Must(FromCalendarDate(1970, January, 1))
	if j := epoch.JulianDay(); j != 2_440_588 {
		t.Fatalf("%s failed [epoch]: got %d", t.Name(), j)
	}

	y2k := Must(FromCalendarDate(2000, January, 1))
	if j := y2k.JulianDay(); j != 2_451_545 {
		t.Fatalf("%s failed [2000-01-01]: got %d", t.Name(), j)
	}

	back, err := FromJulianDay(y2k.JulianDay())
	if err != nil {
		t.Fatalf("%s failed [inverse]: %v", t.Name(), err)
	}
	if back.Cmp(y2k) != 0 {
		t.Fatalf("%s failed [inverse]: got %s", t.Name(), back)
	}

	if _, err = FromJulianDay(MaxDate.JulianDay() + 1); err == nil {
		t.Fatalf("%s failed [beyond MaxDate]: expected rejection", t.Name())
	}
	if _, err = FromJulianDay(MinDate.JulianDay() - 1); err == nil {
		t.Fatalf("%s failed [before MinDate]: expected rejection", t.Name())
	}
}

// Walk day-by-day across a century boundary and assert every
// representation round-trips through its constructor.
func TestDate_roundTripSweep(t *testing.T) {
	d := Must(FromCalendarDate(1999, December, 1))
	end := Must(FromCalendarDate(2001, March, 1))

	for d.Cmp(end) <= 0 {
		y, m, dd := d.CalendarDate()
		if back := Must(FromCalendarDate(y, m, dd)); back.Cmp(d) != 0 {
			t.Fatalf("%s failed [calendar %s]: got %s", t.Name(), d, back)
		}

		oy, ord := d.OrdinalDate()
		if back := Must(FromOrdinalDate(oy, ord)); back.Cmp(d) != 0 {
			t.Fatalf("%s failed [ordinal %s]: got %s", t.Name(), d, back)
		}

		iy, iw, iwd := d.ISOWeekDate()
		if back := Must(FromISOWeekDate(iy, iw, iwd)); back.Cmp(d) != 0 {
			t.Fatalf("%s failed [iso week %s]: got %s", t.Name(), d, back)
		}

		if back := Must(FromJulianDay(d.JulianDay())); back.Cmp(d) != 0 {
			t.Fatalf("%s failed [julian %s]: got %s", t.Name(), d, back)
		}

		next, ok := d.NextDay()
		if !ok {
			t.Fatalf("%s failed [NextDay %s]: unexpected range failure", t.Name(), d)
		}
		d = next
	}
}

func TestDate_arithmetic(t *testing.T) {
	d := Must(FromCalendarDate(2024, January, 10))

	// sub-day components truncate toward zero.
	if got, ok := d.CheckedAdd(Hours(-25)); !ok || got.Day() != 9 {
		t.Fatalf("%s failed [-25h]: got %s ok=%t", t.Name(), got, ok)
	}
	if got, ok := d.CheckedAdd(Hours(23)); !ok || got.Cmp(d) != 0 {
		t.Fatalf("%s failed [+23h]: got %s ok=%t", t.Name(), got, ok)
	}
	if got, ok := d.CheckedSub(Days(10)); !ok || got.String() != "2023-12-31" {
		t.Fatalf("%s failed [-10d]: got %s ok=%t", t.Name(), got, ok)
	}

	if _, ok := MaxDate.CheckedAdd(Days(1)); ok {
		t.Fatalf("%s failed [past MaxDate]: expected failure", t.Name())
	}
	if got := MaxDate.SaturatingAdd(Days(1)); got.Cmp(MaxDate) != 0 {
		t.Fatalf("%s failed [saturate high]: got %s", t.Name(), got)
	}
	if got := MinDate.SaturatingSub(Days(1)); got.Cmp(MinDate) != 0 {
		t.Fatalf("%s failed [saturate low]: got %s", t.Name(), got)
	}

	if _, ok := MaxDate.NextDay(); ok {
		t.Fatalf("%s failed [NextDay at MaxDate]: expected failure", t.Name())
	}
	if _, ok := MinDate.PreviousDay(); ok {
		t.Fatalf("%s failed [PreviousDay at MinDate]: expected failure", t.Name())
	}
}

func TestDate_string(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month Month
		day   int
		want  string
	}{
		{2024, February, 29, "2024-02-29"},
		{1970, January, 1, "1970-01-01"},
		{0, March, 1, "0000-03-01"},
		{-44, March, 15, "-0044-03-15"},
		{-9999, January, 1, "-9999-01-01"},
		{9999, December, 31, "9999-12-31"},
	} {
		d := Must(FromCalendarDate(tc.year, tc.month, tc.day))
		if got := d.String(); got != tc.want {
			t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), tc.want, got)
		}
	}
}

func TestMonthWeekday_string(t *testing.T) {
	if got := September.String(); got != "September" {
		t.Fatalf("%s failed [month]: got %s", t.Name(), got)
	}
	if got := Month(13).String(); got != "%!Month(13)" {
		t.Fatalf("%s failed [month overflow]: got %s", t.Name(), got)
	}
	if got := Sunday.String(); got != "Sunday" {
		t.Fatalf("%s failed [weekday]: got %s", t.Name(), got)
	}
	if got := Weekday(0).String(); got != "%!Weekday(0)" {
		t.Fatalf("%s failed [weekday underflow]: got %s", t.Name(), got)
	}
}

func ExampleDate_ISOWeekDate() {
	d := Must(FromCalendarDate(2021, January, 1))
	year, week, weekday := d.ISOWeekDate()
	fmt.Println(year, week, weekday)
	// Output: 2020 53 Friday
}

func ExampleFromOrdinalDate() {
	fmt.Println(Must(FromOrdinalDate(2024, 60)))
	fmt.Println(Must(FromOrdinalDate(2023, 60)))
	// Output:
	// 2024-02-29
	// 2023-03-01
}
