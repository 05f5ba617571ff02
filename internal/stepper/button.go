package stepper

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/stepper/internal/binding"
	"github.com/muurk/stepper/internal/config"
	"github.com/muurk/stepper/internal/logging"
)

// Gesture timing. These are fixed by convention, not configurable.
const (
	LongPressThreshold = 250 * time.Millisecond
	RepeatInterval     = 50 * time.Millisecond
)

// Direction is the way a button moves the value.
type Direction int

const (
	Decrement Direction = iota
	Increment
)

func (d Direction) String() string {
	if d == Increment {
		return "increment"
	}
	return "decrement"
}

// ActionCheck is the host's gate consulted before a tap adjusts the value.
type ActionCheck func() bool

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// longPressMsg fires when a press has been held for LongPressThreshold.
type longPressMsg struct {
	id  int
	tag int
}

// repeatTickMsg is one tick of an active repeat.
type repeatTickMsg struct {
	id  int
	tag int
}

// repeatHandle owns the periodic repeat. Ticks carry the tag they were
// scheduled with; cancel bumps the tag, so any tick already in flight is
// dropped when it arrives. Cancelling twice is harmless.
type repeatHandle struct {
	tag    int
	active bool
}

func (h *repeatHandle) start() int {
	h.tag++
	h.active = true
	return h.tag
}

func (h *repeatHandle) cancel() {
	h.tag++
	h.active = false
}

func (h repeatHandle) owns(tag int) bool {
	return h.active && h.tag == tag
}

// Button is a stepper button bound to the shared value. A tap moves the
// value by one step; holding it starts a repeat that keeps stepping every
// RepeatInterval until the press ends or the value reaches a bound.
type Button struct {
	id    int
	dir   Direction
	icon  config.IconSpec
	cfg   config.Config
	value *binding.Int
	check ActionCheck

	pressing bool
	held     bool // current press was recognized as a long press
	pressTag int
	repeat   repeatHandle
}

// NewButton creates a button that moves value in direction dir.
func NewButton(value *binding.Int, cfg config.Config, icon config.IconSpec, dir Direction, check ActionCheck) Button {
	return Button{
		id:    nextID(),
		dir:   dir,
		icon:  icon,
		cfg:   cfg,
		value: value,
		check: check,
	}
}

// ID returns the button's unique identifier.
func (b Button) ID() int { return b.id }

// Direction returns which way the button moves the value.
func (b Button) Direction() Direction { return b.dir }

// Icon returns the glyph and color the button is drawn with when enabled.
func (b Button) Icon() config.IconSpec { return b.icon }

// LongPressing reports whether a repeat is running.
func (b Button) LongPressing() bool { return b.repeat.active }

// Enabled reports whether the value can still move in this direction.
func (b Button) Enabled() bool {
	return !b.atBound()
}

func (b Button) atBound() bool {
	v := b.value.Get()
	if b.dir == Increment {
		return v >= b.cfg.Maximum
	}
	return v <= b.cfg.Minimum
}

// ShouldPerform reports whether a tap may adjust the value. Moving 0 up
// to 1 or 1 down to 0 is always allowed; everything else is up to the
// host's ActionCheck.
func (b Button) ShouldPerform() bool {
	v := b.value.Get()
	if (v == 0 && b.dir == Increment) || (v == 1 && b.dir == Decrement) {
		return true
	}
	if b.check == nil {
		return true
	}
	return b.check()
}

// adjust moves the value one step if the result stays within bounds.
// Leaving the value alone at a bound is not an error.
func (b *Button) adjust(source string) bool {
	old := b.value.Get()
	if !b.cfg.Contains(old) || b.headroom(old) < uint(b.cfg.Step) {
		return false
	}
	candidate := old + b.cfg.Step
	if b.dir == Decrement {
		candidate = old - b.cfg.Step
	}
	b.value.Set(candidate)
	logging.LogCommit(source, old, candidate)
	return true
}

// headroom is the distance from an in-range v to the bound ahead. The
// subtraction may wrap when the range spans more than math.MaxInt; read
// as unsigned it is still exact.
func (b Button) headroom(v int) uint {
	if b.dir == Increment {
		return uint(b.cfg.Maximum - v)
	}
	return uint(v - b.cfg.Minimum)
}

// Tap handles a short press. While a repeat is running a tap only stops
// it. Returns whether the value changed.
func (b *Button) Tap() bool {
	if b.repeat.active {
		b.stopRepeat("tap")
		return false
	}
	if !b.Enabled() || !b.ShouldPerform() {
		return false
	}
	return b.adjust("tap")
}

// Press starts a press. Holding it for LongPressThreshold starts the
// repeat; Release before that counts as a tap.
func (b *Button) Press() tea.Cmd {
	if !b.Enabled() {
		return nil
	}
	b.pressing = true
	b.held = false
	b.pressTag++

	id, tag := b.id, b.pressTag
	return tea.Tick(LongPressThreshold, func(time.Time) tea.Msg {
		return longPressMsg{id: id, tag: tag}
	})
}

// Release ends a press: it stops a running repeat, or taps if the press
// was short.
func (b *Button) Release() {
	if !b.pressing {
		return
	}
	b.pressing = false
	b.pressTag++

	if b.held {
		b.held = false
		if b.repeat.active {
			b.stopRepeat("release")
		}
		return
	}
	b.Tap()
}

// Stop cancels any press and repeat. Call it when the button goes away.
func (b *Button) Stop() {
	b.pressing = false
	b.held = false
	b.pressTag++
	if b.repeat.active {
		b.stopRepeat("teardown")
	}
}

// startRepeat is not gated by ShouldPerform: holding the button is
// enough.
func (b *Button) startRepeat() tea.Cmd {
	b.repeat.cancel()
	tag := b.repeat.start()
	logging.LogRepeat(b.dir.String(), "start", b.value.Get())
	return b.tick(tag)
}

func (b *Button) stopRepeat(reason string) {
	b.repeat.cancel()
	logging.LogRepeat(b.dir.String(), "stop: "+reason, b.value.Get())
}

func (b Button) tick(tag int) tea.Cmd {
	id := b.id
	return tea.Tick(RepeatInterval, func(time.Time) tea.Msg {
		return repeatTickMsg{id: id, tag: tag}
	})
}

// Update handles the button's timer messages.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	switch msg := msg.(type) {
	case longPressMsg:
		if msg.id != b.id || msg.tag != b.pressTag || !b.pressing {
			return b, nil
		}
		b.held = true
		return b, b.startRepeat()

	case repeatTickMsg:
		if msg.id != b.id || !b.repeat.owns(msg.tag) {
			return b, nil
		}
		// Ticks are not gated by ShouldPerform.
		if !b.adjust("repeat") || b.atBound() {
			b.stopRepeat("bound")
			return b, nil
		}
		return b, b.tick(msg.tag)
	}

	return b, nil
}
