package rotary

// HitStatus distinguishes the outcomes of a hit test.
type HitStatus uint8

const (
	HitNoLayout HitStatus = iota // no layout has been computed yet
	HitMiss                      // layout present, no letter within the hit radius
	HitLetter                    // Index holds the hit letter
)

// String returns a short name for the status.
func (s HitStatus) String() string {
	switch s {
	case HitNoLayout:
		return "no-layout"
	case HitMiss:
		return "miss"
	case HitLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// HitResult is the outcome of HitTest. Index is -1 unless Status is HitLetter.
type HitResult struct {
	Status HitStatus
	Index  int
}

// Hit reports whether a letter was hit.
func (r HitResult) Hit() bool {
	return r.Status == HitLetter
}

var (
	noLayoutResult = HitResult{Status: HitNoLayout, Index: -1}
	missResult     = HitResult{Status: HitMiss, Index: -1}
)

// HitTest returns the first letter, in index order, whose position is
// strictly closer than hitRadius to p. Letters are not ranked by distance:
// when several qualify the lowest index wins. ok reports whether layout is
// valid; an invalid layout yields HitNoLayout.
func HitTest(p Point, layout Layout, ok bool, hitRadius float64) HitResult {
	if !ok || len(layout.Positions) == 0 {
		return noLayoutResult
	}
	for i, pos := range layout.Positions {
		if Distance(pos, p) < hitRadius {
			return HitResult{Status: HitLetter, Index: i}
		}
	}
	return missResult
}
