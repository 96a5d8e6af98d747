package audio

import "time"

// Fade is a linear volume ramp driven by frame time.
type Fade struct {
	From     float64
	To       float64
	Duration time.Duration
	elapsed  time.Duration
}

// Advance moves the fade forward by dt and returns the new level.
func (f *Fade) Advance(dt time.Duration) float64 {
	if dt > 0 {
		f.elapsed = min(f.elapsed+dt, f.Duration)
	}
	return f.Level()
}

// Level returns the current volume.
func (f *Fade) Level() float64 {
	if f.Done() {
		return f.To
	}
	t := float64(f.elapsed) / float64(f.Duration)
	return f.From + (f.To-f.From)*t
}

// Done reports whether the ramp has reached its target.
func (f *Fade) Done() bool {
	return f.Duration <= 0 || f.elapsed >= f.Duration
}
