package chrono

import (
	"math"
	"testing"
)

func TestFloorDivMod(t *testing.T) {
	for _, tc := range []struct {
		a, b, q, m int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{-1, 86_400, -1, 86_399},
		{0, 5, 0, 0},
	} {
		if q := floorDiv(tc.a, tc.b); q != tc.q {
			t.Fatalf("%s failed [floorDiv(%d,%d)]:\n\twant: %d\n\tgot:  %d",
				t.Name(), tc.a, tc.b, tc.q, q)
		}
		if m := floorMod(tc.a, tc.b); m != tc.m {
			t.Fatalf("%s failed [floorMod(%d,%d)]:\n\twant: %d\n\tgot:  %d",
				t.Name(), tc.a, tc.b, tc.m, m)
		}
	}
}

func TestOverflowHelpers(t *testing.T) {
	if _, ok := addInt64(math.MaxInt64, 1); ok {
		t.Fatalf("%s failed [add high]: expected overflow", t.Name())
	}
	if _, ok := addInt64(math.MinInt64, -1); ok {
		t.Fatalf("%s failed [add low]: expected overflow", t.Name())
	}
	if s, ok := addInt64(math.MaxInt64, -1); !ok || s != math.MaxInt64-1 {
		t.Fatalf("%s failed [add plain]: got %d ok=%t", t.Name(), s, ok)
	}

	if _, ok := mulInt64(math.MinInt64, -1); ok {
		t.Fatalf("%s failed [negate MinInt64]: expected overflow", t.Name())
	}
	if _, ok := mulInt64(math.MaxInt64, 2); ok {
		t.Fatalf("%s failed [mul high]: expected overflow", t.Name())
	}
	if p, ok := mulInt64(-3, 7); !ok || p != -21 {
		t.Fatalf("%s failed [mul plain]: got %d ok=%t", t.Name(), p, ok)
	}
	if p, ok := mulInt64(0, math.MinInt64); !ok || p != 0 {
		t.Fatalf("%s failed [mul zero]: got %d ok=%t", t.Name(), p, ok)
	}
}

func TestMust_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("%s failed: expected panic", t.Name())
		}
	}()
	Must(FromCalendarDate(2023, February, 29))
}
