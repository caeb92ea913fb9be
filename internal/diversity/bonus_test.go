package diversity

import (
	"testing"

	"github.com/abelbrown/foryou/internal/feed"
)

func TestVideoBonusPeakInsideWindow(t *testing.T) {
	b := DefaultVideoBonus()

	for _, d := range []float64{15, 30, 45, 60} {
		if got := b.At(d); got != b.Peak {
			t.Errorf("At(%gs) = %g, want peak %g", d, got, b.Peak)
		}
	}
}

func TestVideoBonusSweetSpotBeatsExtremes(t *testing.T) {
	b := DefaultVideoBonus()

	mid := b.At(30)
	short := b.At(5)
	long := b.At(300)

	if mid < short {
		t.Errorf("30s bonus %g should be >= 5s bonus %g", mid, short)
	}
	if mid < long {
		t.Errorf("30s bonus %g should be >= 300s bonus %g", mid, long)
	}
}

func TestVideoBonusMonotoneDecay(t *testing.T) {
	b := DefaultVideoBonus()

	// Moving away from the window on either side only lowers the bonus.
	if b.At(10) <= b.At(5) {
		t.Errorf("bonus should decrease with distance below window: At(10)=%g At(5)=%g", b.At(10), b.At(5))
	}
	if b.At(90) <= b.At(180) {
		t.Errorf("bonus should decrease with distance above window: At(90)=%g At(180)=%g", b.At(90), b.At(180))
	}
	if b.At(600) <= 0 {
		t.Errorf("bonus should stay positive while decaying, got %g", b.At(600))
	}
	if b.At(600) >= b.At(300) {
		t.Errorf("far durations should earn less: At(600)=%g At(300)=%g", b.At(600), b.At(300))
	}
}

func TestVideoBonusNoVideo(t *testing.T) {
	b := DefaultVideoBonus()

	noVideo := feed.Candidate{ID: "n"}
	if got := b.For(&noVideo); got != 0 {
		t.Errorf("For(no video) = %g, want 0", got)
	}

	withVideo := feed.Candidate{ID: "v", HasVideo: true, VideoSeconds: 30}
	if got := b.For(&withVideo); got != b.Peak {
		t.Errorf("For(30s video) = %g, want %g", got, b.Peak)
	}
}
