package sim

import (
	"strings"
	"testing"

	"promptpager/internal/device"
)

func TestDisplayLinesLayout(t *testing.T) {
	d := NewDisplay()
	d.DrawLabel("TX (1/2)", device.LocationTop)
	d.DrawLabel("0123456789abcdef", device.LocationSingleRow)
	d.DrawIconInstant(device.IconLeftArrow)
	d.DrawIconInstant(device.IconRightArrow)

	lines := d.Lines(16)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "TX (1/2)") {
		t.Fatalf("title row = %q", lines[0])
	}
	if !strings.Contains(lines[1], "0123456789abcdef") {
		t.Fatalf("content row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "◀") || !strings.HasSuffix(lines[2], "▶") {
		t.Fatalf("gutters missing from middle row %q", lines[2])
	}
}

func TestDisplayPressedIndicatorsWinOverArrows(t *testing.T) {
	d := NewDisplay()
	d.DrawIconInstant(device.IconRightArrow)
	d.DrawIconInstant(device.IconRightArrowPressed)

	lines := d.Lines(16)
	if !strings.HasSuffix(lines[2], "▷") {
		t.Fatalf("middle row = %q, want pressed glyph in right gutter", lines[2])
	}
}

func TestDisplayMiddleLabelOverridesRow(t *testing.T) {
	d := NewDisplay()
	d.DrawLabel("hidden", device.LocationRow2)
	d.DrawLabel("Confirm", device.LocationMiddle)

	lines := d.Lines(16)
	if !strings.Contains(lines[2], "Confirm") || strings.Contains(lines[2], "hidden") {
		t.Fatalf("middle row = %q", lines[2])
	}
}

func TestDisplayClearResetsEverything(t *testing.T) {
	d := NewDisplay()
	d.DrawLabel("TX", device.LocationTop)
	d.DrawIconInstant(device.IconCheck)
	d.Clear()

	for _, line := range d.Lines(16) {
		if strings.TrimSpace(line) != "" {
			t.Fatalf("frame not blank after clear: %q", line)
		}
	}
}

func TestCenterCellTruncatesWideContent(t *testing.T) {
	got := centerCell("0123456789abcdefOVERFLOW", 16)
	if got != "0123456789abcdef" {
		t.Fatalf("centerCell = %q", got)
	}
}
