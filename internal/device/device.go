// Package device defines the boundary between the prompt engine and the
// platform it runs on: the display primitives, the button event source,
// and the tokens (icons, row locations) the engine draws with. The engine
// never assumes anything about pixel layout beyond these tokens.
package device

// ButtonEvent is one debounced two-button input event. The raw button
// hardware (or its simulator) is responsible for turning presses and
// releases into this vocabulary; anything it cannot classify is EventNone
// and is ignored by every state machine in this module.
type ButtonEvent int

const (
	EventNone ButtonEvent = iota
	EventLeftPress
	EventRightPress
	EventLeftRelease
	EventRightRelease
	EventBothRelease
)

func (e ButtonEvent) String() string {
	switch e {
	case EventLeftPress:
		return "left-press"
	case EventRightPress:
		return "right-press"
	case EventLeftRelease:
		return "left-release"
	case EventRightRelease:
		return "right-release"
	case EventBothRelease:
		return "both-release"
	default:
		return "none"
	}
}

// Location is an opaque row placement token. The values the engine uses
// are the canonical secure-display rows: the title row at the top and up
// to three content rows below it.
type Location int

const (
	LocationTop    Location = 0
	LocationMiddle Location = 24

	// Content rows for the single-row layout and the three-row layout.
	LocationSingleRow Location = 15
	LocationRow1      Location = 16
	LocationRow2      Location = 31
	LocationRow3      Location = 46
)

// Icon identifies a glyph from the platform's bitmap set.
type Icon int

const (
	IconLeftArrow Icon = iota
	IconRightArrow
	IconLeftArrowPressed
	IconRightArrowPressed
	IconCheck
	IconCross
)

// Display is the drawing surface the engine renders to. Implementations
// own all pixel-level concerns; the engine only clears, places labels at
// row locations, and places icons.
type Display interface {
	// Clear erases the whole screen.
	Clear()
	// DrawLabel draws a single line of text at the given row.
	DrawLabel(text string, loc Location)
	// DrawIcon draws an icon at the given row.
	DrawIcon(icon Icon, loc Location)
	// DrawIconInstant draws an icon at its default position on top of
	// whatever is currently on screen, without clearing first. Used for
	// navigation affordances and transient press indicators.
	DrawIconInstant(icon Icon)
}

// Input yields the next button event. Next may block until one arrives.
type Input interface {
	Next() ButtonEvent
}
