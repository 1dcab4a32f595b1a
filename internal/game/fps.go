package game

// FrameCounter averages the frame rate over a fixed number of frames.
type FrameCounter struct {
	Interval int // frames per sample

	frames  int
	elapsed float64
}

// NewFrameCounter returns a counter sampling every interval frames.
func NewFrameCounter(interval int) *FrameCounter {
	return &FrameCounter{Interval: max(interval, 1)}
}

// Tick records one frame that took dt seconds. Every Interval frames it
// returns the average rate over them and true.
func (f *FrameCounter) Tick(dt float64) (fps float64, ok bool) {
	f.frames++
	f.elapsed += dt
	if f.frames < f.Interval {
		return 0, false
	}

	if f.elapsed > 0 {
		fps = float64(f.frames) / f.elapsed
	}
	f.frames = 0
	f.elapsed = 0
	return fps, true
}
