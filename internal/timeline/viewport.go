// Package timeline maps video time onto a fixed-width track for the
// editor, with zooming, panning, and drag state.
package timeline

const (
	minZoom  = 1.0
	maxZoom  = 10.0
	zoomStep = 0.5

	// Fraction of the visible window treated as an edge buffer:
	// bringing a time inside the buffer scrolls the view.
	edgeBuffer = 0.10
)

// Viewport is the visible slice of the video timeline.
type Viewport struct {
	TotalDuration float64
	TrackWidth    int
	LeftPad       int
	RightPad      int

	zoom         float64
	visibleStart float64
}

// NewViewport shows the whole video at zoom 1.
func NewViewport(totalDuration float64, trackWidth, leftPad, rightPad int) *Viewport {
	return &Viewport{
		TotalDuration: totalDuration,
		TrackWidth:    trackWidth,
		LeftPad:       leftPad,
		RightPad:      rightPad,
		zoom:          minZoom,
	}
}

func (v *Viewport) Zoom() float64 { return v.zoom }

// VisibleDuration is how many seconds the track currently spans.
func (v *Viewport) VisibleDuration() float64 {
	return v.TotalDuration / v.zoom
}

// VisibleStart is the time at the left edge of the track.
func (v *Viewport) VisibleStart() float64 { return v.visibleStart }

// VisibleEnd is the time at the right edge of the track.
func (v *Viewport) VisibleEnd() float64 {
	return v.visibleStart + v.VisibleDuration()
}

// ZoomIn narrows the window by one step and recenters it on the given
// time so the point of interest stays under the cursor.
func (v *Viewport) ZoomIn(center float64) {
	if v.zoom >= maxZoom {
		return
	}
	v.zoom += zoomStep
	v.visibleStart = center - v.VisibleDuration()/2
	v.clamp()
}

// ZoomOut widens the window by one step. The window is not recentered:
// zooming out should reveal more of what surrounds the current view.
func (v *Viewport) ZoomOut() {
	if v.zoom <= minZoom {
		return
	}
	v.zoom -= zoomStep
	v.clamp()
}

// Pan shifts the window by delta seconds.
func (v *Viewport) Pan(delta float64) {
	v.visibleStart += delta
	v.clamp()
}

// EnsureVisible scrolls just enough to keep t out of the window's edge
// buffers. Times already comfortably inside the window do nothing.
func (v *Viewport) EnsureVisible(t float64) {
	buffer := v.VisibleDuration() * edgeBuffer
	if t < v.visibleStart+buffer {
		v.visibleStart = t - buffer
	} else if t > v.VisibleEnd()-buffer {
		v.visibleStart = t + buffer - v.VisibleDuration()
	}
	v.clamp()
}

// usableWidth is the track width minus padding.
func (v *Viewport) usableWidth() float64 {
	return float64(v.TrackWidth - v.LeftPad - v.RightPad)
}

// TimeToPixel maps a time to its x position on the track.
func (v *Viewport) TimeToPixel(t float64) int {
	frac := (t - v.visibleStart) / v.VisibleDuration()
	return v.LeftPad + int(frac*v.usableWidth())
}

// PixelToTime maps a track x position back to a time. Positions inside
// the padding clamp to the window's edges, and the result never leaves
// the video.
func (v *Viewport) PixelToTime(x int) float64 {
	if x <= v.LeftPad {
		return v.visibleStart
	}
	if x >= v.TrackWidth-v.RightPad {
		return v.VisibleEnd()
	}
	frac := float64(x-v.LeftPad) / v.usableWidth()
	t := v.visibleStart + frac*v.VisibleDuration()
	if t < 0 {
		t = 0
	}
	if t > v.TotalDuration {
		t = v.TotalDuration
	}
	return t
}

func (v *Viewport) clamp() {
	maxStart := v.TotalDuration - v.VisibleDuration()
	if v.visibleStart > maxStart {
		v.visibleStart = maxStart
	}
	if v.visibleStart < 0 {
		v.visibleStart = 0
	}
}

// Edge names the side of a step window being dragged.
type Edge string

const (
	EdgeStart Edge = "start"
	EdgeEnd   Edge = "end"
)

// DragState tracks an in-progress boundary drag.
type DragState struct {
	StepNumber  int
	Edge        Edge
	InitialTime float64
	CurrentTime float64
}

// Delta is how far the drag has moved so far, in seconds.
func (d DragState) Delta() float64 {
	return d.CurrentTime - d.InitialTime
}
