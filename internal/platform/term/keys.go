// Package term runs the game in a terminal with tcell.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fabiojmendes/super-jeff/internal/application/system"
)

// Action is what a key does in the terminal frontend
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionDown
	ActionJump
	ActionReset
	ActionQuit
)

// ActionFor maps a key event to an action
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyUp:
		return ActionJump
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return ActionLeft
		case 'd', 'D', 'l':
			return ActionRight
		case 's', 'S', 'j':
			return ActionDown
		case 'w', 'W', 'k', ' ':
			return ActionJump
		case 'r', 'R':
			return ActionReset
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// HeldKeys emulates key releases. Terminals only report presses and
// auto-repeats, so a key counts as held until no repeat arrives in time.
type HeldKeys struct {
	initial time.Duration
	repeat  time.Duration
	until   map[Action]time.Time
}

// NewHeldKeys creates the emulation. initial covers the delay before the
// terminal starts repeating, repeat the gap between repeats.
func NewHeldKeys(initial, repeat time.Duration) *HeldKeys {
	return &HeldKeys{
		initial: initial,
		repeat:  repeat,
		until:   make(map[Action]time.Time, 4),
	}
}

// Press records a press or repeat of a
func (h *HeldKeys) Press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		delete(h.until, ActionRight)
	case ActionRight:
		delete(h.until, ActionLeft)
	}
	hold := h.initial
	if h.Held(a, now) {
		hold = h.repeat
	}
	h.until[a] = now.Add(hold)
}

// Held reports whether a still counts as held at now
func (h *HeldKeys) Held(a Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Input returns the held controls at now
func (h *HeldKeys) Input(now time.Time) system.InputState {
	return system.InputState{
		Left:  h.Held(ActionLeft, now),
		Right: h.Held(ActionRight, now),
		Down:  h.Held(ActionDown, now),
		Jump:  h.Held(ActionJump, now),
	}
}

// Clear releases every key
func (h *HeldKeys) Clear() {
	clear(h.until)
}
