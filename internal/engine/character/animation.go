package character

import (
	"fmt"
	"strings"
)

// clipPlayer is the playback cursor of one clip.
type clipPlayer struct {
	clip    Clip
	frame   int
	playing bool
}

func (p *clipPlayer) start() {
	p.frame = p.clip.From
	p.playing = true
}

func (p *clipPlayer) stop() {
	p.playing = false
}

// advance steps one frame and wraps to the start of the range.
func (p *clipPlayer) advance() {
	if !p.playing {
		return
	}
	p.frame++
	if p.frame > p.clip.To {
		p.frame = p.clip.From
	}
}

// Driver plays looping clips in response to animation intents.
// Re-issuing the intent of the clip already playing does not restart it.
// Not safe for concurrent use; call it from the frame loop.
type Driver struct {
	clips   map[string]*clipPlayer
	set     ClipSet
	current string
	starts  int
}

// NewDriver checks that every clip in set exists in lib.
// All missing names are reported together, wrapped in ErrMissingClip.
func NewDriver(lib Library, set ClipSet) (*Driver, error) {
	var missing []string
	for _, name := range append(set.required(), set.Extra...) {
		if name == "" {
			missing = append(missing, `""`)
			continue
		}
		if _, ok := lib[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingClip, strings.Join(missing, ", "))
	}

	d := &Driver{
		clips: make(map[string]*clipPlayer, len(lib)),
		set:   set,
	}
	for name, c := range lib {
		d.clips[name] = &clipPlayer{clip: c}
	}
	return d, nil
}

// ClimbUp plays the climb-up loop.
func (d *Driver) ClimbUp() { d.play(d.set.ClimbUp) }

// ClimbDown plays the climb-down loop.
func (d *Driver) ClimbDown() { d.play(d.set.ClimbDown) }

// MoveLeft plays the left shimmy, or the left hop when fast.
func (d *Driver) MoveLeft(fast bool) {
	if fast {
		d.play(d.set.HopLeft)
		return
	}
	d.play(d.set.ShimmyLeft)
}

// MoveRight plays the right shimmy, or the right hop when fast.
func (d *Driver) MoveRight(fast bool) {
	if fast {
		d.play(d.set.HopRight)
		return
	}
	d.play(d.set.ShimmyRight)
}

// Hang stops every other clip and loops the hang clip.
func (d *Driver) Hang() {
	for name, p := range d.clips {
		if name != d.set.Hang {
			p.stop()
		}
	}
	d.play(d.set.Hang)
}

func (d *Driver) play(name string) {
	p := d.clips[name]
	if d.current == name && p.playing {
		return
	}
	if cur, ok := d.clips[d.current]; ok && d.current != name {
		cur.stop()
	}
	p.start()
	d.current = name
	d.starts++
}

// Advance steps the playing clip by one frame.
func (d *Driver) Advance() {
	if p, ok := d.clips[d.current]; ok {
		p.advance()
	}
}

// Current returns the playing clip and its frame. name is empty before the
// first intent.
func (d *Driver) Current() (name string, frame int) {
	p, ok := d.clips[d.current]
	if !ok || !p.playing {
		return "", 0
	}
	return d.current, p.frame
}

// Playing reports whether the named clip is playing.
func (d *Driver) Playing(name string) bool {
	p, ok := d.clips[name]
	return ok && p.playing
}

// Starts counts clip (re)starts, for diagnostics.
func (d *Driver) Starts() int { return d.starts }
