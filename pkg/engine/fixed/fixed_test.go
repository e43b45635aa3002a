package fixed

import "testing"

func TestFromIntRoundTrip(t *testing.T) {
	for _, i := range []int32{0, 1, -1, 42, -1000, 32767} {
		f := FromInt(i)
		if got := f.IntegerPart(); got != i {
			t.Errorf("FromInt(%d).IntegerPart() = %d, want %d", i, got, i)
		}
		if got := f.FractionalValue(); got != 0 {
			t.Errorf("FromInt(%d).FractionalValue() = %d, want 0", i, got)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := FromInt(3)
	b := FromInt(2)

	if got := a.Add(b).IntegerPart(); got != 5 {
		t.Errorf("3+2 = %d, want 5", got)
	}
	if got := a.Sub(b).IntegerPart(); got != 1 {
		t.Errorf("3-2 = %d, want 1", got)
	}
	if got := a.Mul(b).IntegerPart(); got != 6 {
		t.Errorf("3*2 = %d, want 6", got)
	}
	if got := a.Div(b); got != FromInt(1).Add(FromRaw(1 << 15)) {
		t.Errorf("3/2 = %v, want 1.5", got)
	}
}

func TestMulOverflowSafety(t *testing.T) {
	a := FromInt(1000)
	b := FromInt(1000)
	got := a.Mul(b)
	if want := FromInt(1000000); got != want {
		t.Errorf("1000*1000 = %v, want %v", got, want)
	}
}

func TestOrdering(t *testing.T) {
	a := FromInt(1)
	b := FromInt(2)
	if !a.Less(b) {
		t.Error("1 should be less than 2")
	}
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("Cmp contract violated")
	}
}

func TestLCGSequenceIsDeterministic(t *testing.T) {
	l1 := NewLCG(1743160839)
	l2 := NewLCG(1743160839)

	for i := 0; i < 100; i++ {
		v1 := l1.Next()
		v2 := l2.Next()
		if v1 != v2 {
			t.Fatalf("LCG sequences diverged at step %d: %d != %d", i, v1, v2)
		}
		if v1 < 0 {
			t.Fatalf("LCG.Next() returned negative value %d at step %d", v1, i)
		}
	}
}

func TestLCGFirstValues(t *testing.T) {
	l := NewLCG(0)
	// state = 0*1664525 + 1013904223 = 1013904223
	want := int32(uint32(1013904223) >> 1)
	if got := l.Next(); got != want {
		t.Errorf("first LCG value from seed 0 = %d, want %d", got, want)
	}
}

func TestIntNBounded(t *testing.T) {
	l := NewLCG(99)
	for i := 0; i < 1000; i++ {
		v := l.IntN(7)
		if v < 0 || v >= 7 {
			t.Fatalf("IntN(7) returned out-of-range value %d", v)
		}
	}
}
