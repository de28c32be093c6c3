package sim

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"promptpager/internal/device"
)

// Display is an in-memory implementation of device.Display backed by a
// frame buffer: a title row, up to three content rows, an optional middle
// label and the icon set drawn since the last clear. The bubbletea view
// renders it into the on-terminal device mock every frame.
type Display struct {
	title  string
	middle string
	rows   [3]string
	icons  map[device.Icon]bool
}

func NewDisplay() *Display {
	return &Display{icons: map[device.Icon]bool{}}
}

func (d *Display) Clear() {
	d.title = ""
	d.middle = ""
	d.rows = [3]string{}
	d.icons = map[device.Icon]bool{}
}

func (d *Display) DrawLabel(text string, loc device.Location) {
	switch loc {
	case device.LocationTop:
		d.title = text
	case device.LocationMiddle:
		d.middle = text
	case device.LocationSingleRow, device.LocationRow1:
		d.rows[0] = text
	case device.LocationRow2:
		d.rows[1] = text
	case device.LocationRow3:
		d.rows[2] = text
	}
}

func (d *Display) DrawIcon(icon device.Icon, _ device.Location) {
	d.icons[icon] = true
}

func (d *Display) DrawIconInstant(icon device.Icon) {
	d.icons[icon] = true
}

// Lines renders the frame as fixed-width text rows: title, then the three
// content rows with the navigation glyphs in the side gutters. The middle
// label (menus, confirmation screens) occupies the center row.
func (d *Display) Lines(rowWidth int) []string {
	center := d.rows
	if d.middle != "" {
		center[1] = d.middle
	}

	lines := make([]string, 0, 4)
	lines = append(lines, "  "+centerCell(d.title, rowWidth)+"  ")
	for i, row := range center {
		left, right := "  ", "  "
		if i == 1 {
			left = d.leftGutter() + " "
			right = " " + d.rightGutter()
		}
		lines = append(lines, left+centerCell(row, rowWidth)+right)
	}
	return lines
}

func (d *Display) leftGutter() string {
	switch {
	case d.icons[device.IconLeftArrowPressed]:
		return "◁"
	case d.icons[device.IconLeftArrow]:
		return "◀"
	default:
		return " "
	}
}

func (d *Display) rightGutter() string {
	switch {
	case d.icons[device.IconRightArrowPressed]:
		return "▷"
	case d.icons[device.IconRightArrow]:
		return "▶"
	case d.icons[device.IconCheck]:
		return "✓"
	case d.icons[device.IconCross]:
		return "✗"
	default:
		return " "
	}
}

func centerCell(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return runewidth.Truncate(text, width, "")
	}
	pad := width - w
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
