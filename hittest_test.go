package rotary

import "testing"

func sixLetterLayout(t *testing.T) Layout {
	t.Helper()
	l, ok := ComputeLayout(causedLetters, Size{1000, 1000}, 0.8)
	if !ok {
		t.Fatal("expected layout")
	}
	return l
}

func TestHitTest_NoLayout(t *testing.T) {
	got := HitTest(Pt(500, 100), Layout{}, false, 150)
	if got.Status != HitNoLayout || got.Index != -1 {
		t.Errorf("HitTest without layout = %+v, want HitNoLayout", got)
	}
	if got.Hit() {
		t.Error("Hit() should be false without layout")
	}
}

func TestHitTest_Basic(t *testing.T) {
	l := sixLetterLayout(t)

	tests := []struct {
		name   string
		p      Point
		status HitStatus
		index  int
	}{
		{"on index 0", Pt(500, 100), HitLetter, 0},
		{"near index 0", Pt(560, 150), HitLetter, 0},
		{"on index 3", l.Positions[3], HitLetter, 3},
		{"centre misses", Pt(500, 500), HitMiss, -1},
		{"far outside", Pt(-1000, -1000), HitMiss, -1},
		{"exactly at radius misses", Pt(500, 250), HitMiss, -1},
		{"just inside radius", Pt(500, 249.999), HitLetter, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitTest(tt.p, l, true, 150)
			if got.Status != tt.status || got.Index != tt.index {
				t.Errorf("HitTest(%v) = %+v, want status %v index %d", tt.p, got, tt.status, tt.index)
			}
		})
	}
}

func TestHitTest_LowestIndexWins(t *testing.T) {
	l := sixLetterLayout(t)

	// Adjacent letters are 400 apart; their midpoint is 200 from both.
	mid := func(a, b int) Point {
		return l.Positions[a].Add(l.Positions[b]).Mul(0.5)
	}

	tests := []struct {
		name string
		p    Point
		want int
	}{
		{"between 0 and 1", mid(0, 1), 0},
		{"between 1 and 2", mid(1, 2), 1},
		{"between 5 and 0", mid(5, 0), 0},
		// Closer to 2 than to 1, but 1 is scanned first.
		{"nearer the higher index", l.Positions[1].Mul(0.45).Add(l.Positions[2].Mul(0.55)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitTest(tt.p, l, true, 250)
			if got.Status != HitLetter || got.Index != tt.want {
				t.Errorf("HitTest = %+v, want index %d", got, tt.want)
			}
		})
	}
}

func TestHitStatusString(t *testing.T) {
	for s, want := range map[HitStatus]string{
		HitNoLayout:  "no-layout",
		HitMiss:      "miss",
		HitLetter:    "letter",
		HitStatus(9): "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("HitStatus(%d).String() = %q, want %q", s, got, want)
		}
	}
}
