// Package scroller turns a content producer and a two-button input source
// into a paginated consent prompt: pages are drawn one screen at a time,
// the right button advances, the left button goes back, paging past the
// last screen accepts and a both-button release rejects.
package scroller

import (
	"fmt"
	"io"
	"log/slog"

	"promptpager/internal/device"
	"promptpager/internal/prompt"
)

// Outcome is the terminal result of an interactive prompt.
type Outcome int

const (
	Rejected Outcome = iota
	Accepted
)

func (o Outcome) String() string {
	if o == Accepted {
		return "accepted"
	}
	return "rejected"
}

// DefaultRowCapacity is the character budget of one content row.
const DefaultRowCapacity = 16

// Config wires a scroller's collaborators and content.
type Config struct {
	Display  device.Display
	Input    device.Input
	Title    string
	Contents prompt.Producer

	// RowCapacity overrides DefaultRowCapacity when > 0.
	RowCapacity int
	// Logger receives page-draw traces; nil discards them.
	Logger *slog.Logger
}

// Scroller presents one prompt. It holds no page state itself; each Ask
// or Begin starts from page zero.
type Scroller struct {
	display     device.Display
	input       device.Input
	title       string
	contents    prompt.Producer
	rowCapacity int
	logger      *slog.Logger
}

func New(cfg Config) *Scroller {
	rowCapacity := cfg.RowCapacity
	if rowCapacity <= 0 {
		rowCapacity = DefaultRowCapacity
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scroller{
		display:     cfg.Display,
		input:       cfg.Input,
		title:       cfg.Title,
		contents:    cfg.Contents,
		rowCapacity: rowCapacity,
		logger:      logger,
	}
}

// Ask runs the single-row prompt to its terminal outcome, blocking on the
// input source between redraws. Any measurement or render failure
// collapses to Rejected.
func (s *Scroller) Ask(showIndex bool) Outcome {
	return s.run(1, showIndex)
}

// AskThreeRows is Ask with three content rows per page.
func (s *Scroller) AskThreeRows(showIndex bool) Outcome {
	return s.run(3, showIndex)
}

func (s *Scroller) run(rowsPerPage int, showIndex bool) Outcome {
	sess, err := s.Begin(rowsPerPage, showIndex)
	if err != nil {
		s.logger.Debug("prompt rejected on render failure", "title", s.title, "err", err)
		return Rejected
	}
	for {
		outcome, done, err := sess.Handle(s.input.Next())
		if err != nil {
			s.logger.Debug("prompt rejected on render failure", "title", s.title, "err", err)
			return Rejected
		}
		if done {
			return outcome
		}
	}
}

// Session is a running prompt whose state machine is stepped one button
// event at a time. Begin measures the content, draws page zero, and hands
// the session to the caller; hosts with their own event loop (such as the
// simulator) drive Handle directly instead of blocking in Ask.
type Session struct {
	s           *Scroller
	rowsPerPage int
	showIndex   bool
	total       int
	pageCount   int
	page        int
}

// Begin measures the producer, computes the page count for the given
// layout and draws the first page. It panics when the page count exceeds
// prompt.MaxPages: that signals an unbounded producer, not a runtime
// condition to recover from.
func (s *Scroller) Begin(rowsPerPage int, showIndex bool) (*Session, error) {
	total, err := prompt.Measure(s.contents)
	if err != nil {
		return nil, err
	}
	pageCount := prompt.PageCount(total, s.rowCapacity, rowsPerPage)
	if pageCount > prompt.MaxPages {
		panic(fmt.Sprintf("scroller: page count %d exceeds the %d page limit", pageCount, prompt.MaxPages))
	}
	s.logger.Debug("prompt measured", "title", s.title, "length", total, "pages", pageCount)

	sess := &Session{
		s:           s,
		rowsPerPage: rowsPerPage,
		showIndex:   showIndex,
		total:       total,
		pageCount:   pageCount,
	}
	if err := sess.draw(); err != nil {
		return nil, err
	}
	return sess, nil
}

// Page returns the current zero-based page index.
func (sess *Session) Page() int { return sess.page }

// PageCount returns the number of pages in the prompt.
func (sess *Session) PageCount() int { return sess.pageCount }

// Handle applies one button event. It reports the terminal outcome and
// done=true once the user accepts or rejects; a render failure also ends
// the session, with the error surfaced to the host.
func (sess *Session) Handle(ev device.ButtonEvent) (Outcome, bool, error) {
	switch ev {
	case device.EventLeftPress:
		sess.s.display.DrawIconInstant(device.IconLeftArrowPressed)
	case device.EventRightPress:
		sess.s.display.DrawIconInstant(device.IconRightArrowPressed)
	case device.EventLeftRelease:
		if sess.page > 0 {
			sess.page--
		}
		// Redraw even at page zero to clear the press indicator.
		if err := sess.draw(); err != nil {
			return Rejected, true, err
		}
	case device.EventRightRelease:
		// The page index may reach the sentinel value pageCount, one
		// past the last screen: that is the accept terminal.
		if sess.page < sess.pageCount {
			sess.page++
		}
		if sess.page == sess.pageCount {
			return Accepted, true, nil
		}
		if err := sess.draw(); err != nil {
			return Rejected, true, err
		}
	case device.EventBothRelease:
		return Rejected, true, nil
	}
	return Rejected, false, nil
}

func (sess *Session) draw() error {
	s := sess.s
	s.display.Clear()

	title := s.title
	if sess.showIndex {
		title = prompt.FormatTitle(s.title, sess.page, sess.pageCount)
	}
	s.display.DrawLabel(title, device.LocationTop)

	for row := 0; row < sess.rowsPerPage; row++ {
		offset := prompt.RowOffset(sess.page, row, s.rowCapacity, sess.rowsPerPage)
		if row > 0 && sess.total <= offset {
			// Trailing unused rows on the last page are omitted.
			continue
		}
		sink := prompt.NewSink(s.rowCapacity, offset)
		if err := s.contents(sink); err != nil {
			return fmt.Errorf("render page %d row %d: %w", sess.page, row, err)
		}
		s.display.DrawLabel(sink.String(), sess.rowLocation(row))
		s.logger.Debug("prompt page",
			"title", s.title, "page", sess.page, "pages", sess.pageCount,
			"row", row, "text", sink.String())
	}

	if sess.page > 0 {
		s.display.DrawIconInstant(device.IconLeftArrow)
	}
	if sess.page+1 < sess.pageCount {
		s.display.DrawIconInstant(device.IconRightArrow)
	} else {
		s.display.DrawIconInstant(device.IconCheck)
	}
	return nil
}

func (sess *Session) rowLocation(row int) device.Location {
	if sess.rowsPerPage == 1 {
		return device.LocationSingleRow
	}
	switch row {
	case 0:
		return device.LocationRow1
	case 1:
		return device.LocationRow2
	default:
		return device.LocationRow3
	}
}
