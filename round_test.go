package md4coll

import "testing"

func randomLane(src Source, cv ChainingValue) *lane {
	l := &lane{}
	l.seed(cv)
	for i := 1; i <= 16; i++ {
		l.q[i+off] = src.Uint32()
	}
	return l
}

func TestRoundFunctions(t *testing.T) {
	for _, tc := range []struct {
		b, c, d, f, g, h uint32
	}{
		{0xffffffff, 0x00000000, 0xffffffff, 0x00000000, 0xffffffff, 0x00000000},
		{0x00000000, 0x12345678, 0x9abcdef0, 0x9abcdef0, 0x12345670, 0x88888888},
		{0xf0f0f0f0, 0xff00ff00, 0x0ff00ff0, 0xff00ff00, 0xfff0fff0, 0x00000000},
	} {
		if got := f(tc.b, tc.c, tc.d); got != tc.f {
			t.Errorf("f(%08x, %08x, %08x) = %08x, want %08x", tc.b, tc.c, tc.d, got, tc.f)
		}
		if got := g(tc.b, tc.c, tc.d); got != tc.g {
			t.Errorf("g(%08x, %08x, %08x) = %08x, want %08x", tc.b, tc.c, tc.d, got, tc.g)
		}
		if got := h(tc.b, tc.c, tc.d); got != tc.h {
			t.Errorf("h(%08x, %08x, %08x) = %08x, want %08x", tc.b, tc.c, tc.d, got, tc.h)
		}
	}
	if rl(0x80000001, 3) != 0x0000000c || rr(0x0000000c, 3) != 0x80000001 {
		t.Error("rotation mismatch")
	}
}

func TestInvertThenStep(t *testing.T) {
	src := NewChaCha(1)
	for n := 0; n < 64; n++ {
		l := randomLane(src, ChainingValue{src.Uint32(), src.Uint32(), src.Uint32(), src.Uint32()})
		want := l.q
		for j := 0; j < 16; j++ {
			l.invert(j)
		}
		for i := 1; i <= 16; i++ {
			if got := l.step(i); got != want[i+off] {
				t.Fatalf("step(%d) = %08x, want %08x", i, got, want[i+off])
			}
		}
	}
}

func TestStepsMatchCompress(t *testing.T) {
	src := NewLCG(42)
	for n := 0; n < 64; n++ {
		cv := ChainingValue{src.Uint32(), src.Uint32(), src.Uint32(), src.Uint32()}
		var l lane
		l.seed(cv)
		for i := range l.x {
			l.x[i] = src.Uint32()
		}
		for i := 1; i <= 48; i++ {
			l.step(i)
		}
		/* The last four steps write a, d, c, b in that order. */
		q := l.q[45+off:]
		want := ChainingValue{cv[0] + q[0], cv[1] + q[3], cv[2] + q[2], cv[3] + q[1]}
		b := Block(l.x)
		if got := Compress(cv, &b); got != want {
			t.Fatalf("Compress = %08x, want %08x", got, want)
		}
	}
}
