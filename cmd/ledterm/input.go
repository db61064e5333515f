package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"fluid16/control"
)

// holdWindow is how long a left/right key counts as held after its last
// event. Terminals report holds only through key repeat, so the window has to
// bridge the gap between the first press and the first repeat.
const holdWindow = 550 * time.Millisecond

// repeatWindow replaces holdWindow once repeats are flowing.
const repeatWindow = 120 * time.Millisecond

// keyState turns the terminal's discrete key events into per-frame held and
// pressed flags.
type keyState struct {
	rightUntil time.Time
	leftUntil  time.Time
	lastRight  time.Time
	lastLeft   time.Time

	up, down, remove bool
	velocity         bool
}

// handle records one key event. It reports false when the event asks to quit.
func (k *keyState) handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		k.rightUntil = extendHold(k.lastRight, now)
		k.lastRight = now
		k.leftUntil = time.Time{}
	case tcell.KeyLeft:
		k.leftUntil = extendHold(k.lastLeft, now)
		k.lastLeft = now
		k.rightUntil = time.Time{}
	case tcell.KeyUp:
		k.up = true
	case tcell.KeyDown:
		k.down = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'd':
			k.remove = true
		case 'v':
			k.velocity = !k.velocity
		}
	}
	return true
}

// extendHold picks the hold deadline for a key event: a long window for a
// fresh press, a short one while repeats arrive.
func extendHold(last, now time.Time) time.Time {
	if !last.IsZero() && now.Sub(last) < holdWindow {
		return now.Add(repeatWindow)
	}
	return now.Add(holdWindow)
}

// frame returns the input for the frame at now and clears one-shot presses.
func (k *keyState) frame(now time.Time) control.Input {
	in := control.Input{
		TiltRight: now.Before(k.rightUntil),
		TiltLeft:  now.Before(k.leftUntil),
		ResetUp:   k.up,
		ResetDown: k.down,
		Remove:    k.remove,
	}
	k.up, k.down, k.remove = false, false, false
	return in
}
