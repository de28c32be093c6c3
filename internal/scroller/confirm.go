package scroller

import "promptpager/internal/device"

// ConfirmSession is the final accept/reject prompt: the summary lines are
// shown three to a screen, followed by an accept screen and a reject
// screen. Left/right navigate between screens; a both-button release on
// the accept screen accepts, on the reject screen rejects, and is ignored
// anywhere else so a slip of both thumbs mid-summary cannot consent.
type ConfirmSession struct {
	display     device.Display
	screens     [][]string
	acceptLabel string
	rejectLabel string
	index       int
}

// BeginConfirm draws the first screen and returns the session for
// event-driven hosts.
func BeginConfirm(d device.Display, lines []string, acceptLabel, rejectLabel string) *ConfirmSession {
	c := &ConfirmSession{
		display:     d,
		screens:     chunkLines(lines, 3),
		acceptLabel: acceptLabel,
		rejectLabel: rejectLabel,
	}
	c.draw()
	return c
}

// Confirm runs the final confirmation prompt to its outcome, blocking on
// the input source.
func Confirm(d device.Display, in device.Input, lines []string, acceptLabel, rejectLabel string) Outcome {
	c := BeginConfirm(d, lines, acceptLabel, rejectLabel)
	for {
		if outcome, done := c.Handle(in.Next()); done {
			return outcome
		}
	}
}

// Handle applies one button event and reports the outcome once terminal.
func (c *ConfirmSession) Handle(ev device.ButtonEvent) (Outcome, bool) {
	switch ev {
	case device.EventLeftPress:
		c.display.DrawIconInstant(device.IconLeftArrowPressed)
	case device.EventRightPress:
		c.display.DrawIconInstant(device.IconRightArrowPressed)
	case device.EventLeftRelease:
		if c.index > 0 {
			c.index--
		}
		c.draw()
	case device.EventRightRelease:
		if c.index+1 < c.screenCount() {
			c.index++
		}
		c.draw()
	case device.EventBothRelease:
		switch c.index {
		case c.acceptIndex():
			return Accepted, true
		case c.rejectIndex():
			return Rejected, true
		}
	}
	return Rejected, false
}

func (c *ConfirmSession) screenCount() int { return len(c.screens) + 2 }
func (c *ConfirmSession) acceptIndex() int { return len(c.screens) }
func (c *ConfirmSession) rejectIndex() int { return len(c.screens) + 1 }

func (c *ConfirmSession) draw() {
	c.display.Clear()
	switch c.index {
	case c.acceptIndex():
		c.display.DrawIcon(device.IconCheck, device.LocationTop)
		c.display.DrawLabel(c.acceptLabel, device.LocationMiddle)
	case c.rejectIndex():
		c.display.DrawIcon(device.IconCross, device.LocationTop)
		c.display.DrawLabel(c.rejectLabel, device.LocationMiddle)
	default:
		rows := [...]device.Location{device.LocationRow1, device.LocationRow2, device.LocationRow3}
		for i, line := range c.screens[c.index] {
			c.display.DrawLabel(line, rows[i])
		}
	}
	if c.index > 0 {
		c.display.DrawIconInstant(device.IconLeftArrow)
	}
	if c.index+1 < c.screenCount() {
		c.display.DrawIconInstant(device.IconRightArrow)
	}
}

func chunkLines(lines []string, size int) [][]string {
	if len(lines) == 0 {
		return [][]string{{}}
	}
	var chunks [][]string
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}
