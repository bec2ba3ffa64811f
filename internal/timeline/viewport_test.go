package timeline

import (
	"math"
	"testing"
)

func newTestViewport() *Viewport {
	// 600 second video on a 1000px track with 20px pads.
	return NewViewport(600, 1000, 20, 20)
}

func TestViewportDefaults(t *testing.T) {
	v := newTestViewport()
	if v.Zoom() != 1 {
		t.Errorf("zoom = %v, want 1", v.Zoom())
	}
	if v.VisibleDuration() != 600 {
		t.Errorf("visible duration = %v, want 600", v.VisibleDuration())
	}
	if v.VisibleStart() != 0 {
		t.Errorf("visible start = %v, want 0", v.VisibleStart())
	}
}

func TestZoomSteps(t *testing.T) {
	v := newTestViewport()
	v.ZoomIn(300)
	if v.Zoom() != 1.5 {
		t.Errorf("zoom = %v, want 1.5", v.Zoom())
	}
	for i := 0; i < 50; i++ {
		v.ZoomIn(300)
	}
	if v.Zoom() != 10 {
		t.Errorf("zoom must cap at 10, got %v", v.Zoom())
	}
	for i := 0; i < 50; i++ {
		v.ZoomOut()
	}
	if v.Zoom() != 1 {
		t.Errorf("zoom must floor at 1, got %v", v.Zoom())
	}
}

func TestZoomInRecenters(t *testing.T) {
	v := newTestViewport()
	// Zoom to 4x around t=300: window is 150s, centered on 300.
	for v.Zoom() < 4 {
		v.ZoomIn(300)
	}
	if v.VisibleDuration() != 150 {
		t.Errorf("visible duration = %v, want 150", v.VisibleDuration())
	}
	if got := v.VisibleStart(); math.Abs(got-225) > 1e-9 {
		t.Errorf("visible start = %v, want 225", got)
	}
}

func TestZoomOutDoesNotRecenter(t *testing.T) {
	v := newTestViewport()
	for v.Zoom() < 4 {
		v.ZoomIn(300)
	}
	start := v.VisibleStart()
	v.ZoomOut()
	// Widening keeps the left edge in place until clamping forces it.
	if v.VisibleStart() != start {
		t.Errorf("zoom out moved start from %v to %v", start, v.VisibleStart())
	}
}

func TestPanClamps(t *testing.T) {
	v := newTestViewport()
	for v.Zoom() < 4 {
		v.ZoomIn(300)
	}

	v.Pan(-10000)
	if v.VisibleStart() != 0 {
		t.Errorf("pan left must clamp to 0, got %v", v.VisibleStart())
	}
	v.Pan(10000)
	if got := v.VisibleStart(); math.Abs(got-450) > 1e-9 {
		t.Errorf("pan right must clamp so the window ends at 600, start = %v", got)
	}
	if v.VisibleEnd() != 600 {
		t.Errorf("visible end = %v, want 600", v.VisibleEnd())
	}
}

func TestEnsureVisible(t *testing.T) {
	v := newTestViewport()
	for v.Zoom() < 4 {
		v.ZoomIn(300)
	}
	// Window is [225, 375], buffer is 15s.

	v.EnsureVisible(300) // comfortably inside
	if v.VisibleStart() != 225 {
		t.Errorf("in-window time must not scroll, start = %v", v.VisibleStart())
	}

	v.EnsureVisible(230) // inside the left buffer
	if got := v.VisibleStart(); math.Abs(got-215) > 1e-9 {
		t.Errorf("left buffer should scroll start to 215, got %v", got)
	}

	v.EnsureVisible(500) // right of the window entirely
	if got := v.VisibleEnd(); math.Abs(got-515) > 1e-9 {
		t.Errorf("right scroll should put 500 a buffer from the edge, end = %v", got)
	}
}

func TestTimeToPixel(t *testing.T) {
	v := newTestViewport()
	tests := []struct {
		time float64
		want int
	}{
		{0, 20},     // left edge after padding
		{300, 500},  // halfway across the 960px usable track
		{600, 980},  // right edge before padding
	}
	for _, tt := range tests {
		if got := v.TimeToPixel(tt.time); got != tt.want {
			t.Errorf("TimeToPixel(%v) = %d, want %d", tt.time, got, tt.want)
		}
	}
}

func TestPixelToTime(t *testing.T) {
	v := newTestViewport()
	tests := []struct {
		x    int
		want float64
	}{
		{20, 0},
		{500, 300},
		{980, 600},
		{5, 0},     // inside left padding clamps to window start
		{995, 600}, // inside right padding clamps to window end
		{-50, 0},
		{2000, 600},
	}
	for _, tt := range tests {
		if got := v.PixelToTime(tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PixelToTime(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPixelRoundTripWhileZoomed(t *testing.T) {
	v := newTestViewport()
	for v.Zoom() < 4 {
		v.ZoomIn(300)
	}
	for _, x := range []int{20, 100, 500, 900, 980} {
		tm := v.PixelToTime(x)
		if back := v.TimeToPixel(tm); back < x-1 || back > x+1 {
			t.Errorf("round trip x=%d -> t=%v -> x=%d", x, tm, back)
		}
	}
}

func TestDragStateDelta(t *testing.T) {
	d := DragState{StepNumber: 2, Edge: EdgeEnd, InitialTime: 40, CurrentTime: 55.5}
	if d.Delta() != 15.5 {
		t.Errorf("Delta() = %v, want 15.5", d.Delta())
	}
}
