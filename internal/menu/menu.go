// Package menu implements the two-outcome menu helper: left and right
// cycle the selectable item, a both-button release may yield a result.
package menu

import "promptpager/internal/device"

// Menu is a capability set over the three button gestures. HandleBoth
// reports ok=false when the interaction should continue (for example a
// submenu toggle) and ok=true when its result ends the interaction.
type Menu[R any] interface {
	MoveLeft()
	MoveRight()
	HandleBoth() (R, bool)
	Label() string
}

// Show draws the menu's single label.
func Show[R any](d device.Display, m Menu[R]) {
	d.Clear()
	d.DrawLabel(m.Label(), device.LocationMiddle)
}

// HandleEvent applies one button event to the menu and reports a result
// when a both-button release produced one. The caller redraws via Show
// after every handled event.
func HandleEvent[R any](m Menu[R], ev device.ButtonEvent) (R, bool) {
	switch ev {
	case device.EventLeftRelease:
		m.MoveLeft()
	case device.EventRightRelease:
		m.MoveRight()
	case device.EventBothRelease:
		return m.HandleBoth()
	}
	var zero R
	return zero, false
}

// Item pairs a menu label with the result selecting it yields.
type Item[R any] struct {
	Label  string
	Result R
}

// Ring is a Menu over a fixed list of items, wrapping at both ends.
type Ring[R any] struct {
	items []Item[R]
	index int
}

// NewRing builds a ring over the given items. At least one item is
// required; navigation has nothing to land on otherwise.
func NewRing[R any](items ...Item[R]) *Ring[R] {
	if len(items) == 0 {
		panic("menu: ring needs at least one item")
	}
	return &Ring[R]{items: items}
}

func (r *Ring[R]) MoveLeft() {
	r.index = (r.index + len(r.items) - 1) % len(r.items)
}

func (r *Ring[R]) MoveRight() {
	r.index = (r.index + 1) % len(r.items)
}

func (r *Ring[R]) HandleBoth() (R, bool) {
	return r.items[r.index].Result, true
}

func (r *Ring[R]) Label() string {
	return r.items[r.index].Label
}
