// Package prompt implements the content protocol behind paginated
// prompts: a fixed-capacity text sink that measures total content length
// without storing it, the page arithmetic derived from that length, and
// the title-row formatter with its hard character budget.
package prompt

// Sink is a bounded write target. A content producer writes its full
// logical output into the sink on every call; the sink counts every byte
// it is offered, discards the first skip bytes, keeps at most capacity
// bytes after that, and silently drops the rest. One producer therefore
// serves both measurement (capacity 0, read Total) and page rendering
// (skip set to the page's starting offset).
//
// A Sink is created fresh for each measurement or draw pass and never
// reused; its buffer is allocated once up front.
type Sink struct {
	skip  int
	buf   []byte
	total int
}

// Producer writes prompt content into a sink. It must be deterministic:
// repeated calls must emit byte-identical output, since every page draw
// replays it with a different skip offset.
type Producer func(*Sink) error

// NewSink returns a sink that discards the first skip bytes and keeps at
// most capacity bytes after that.
func NewSink(capacity, skip int) *Sink {
	return &Sink{skip: skip, buf: make([]byte, 0, capacity)}
}

// WriteString offers text to the sink. It never fails and always reports
// the full length as written, so formatted writes through the sink only
// fail when the producer itself fails.
func (s *Sink) WriteString(text string) (int, error) {
	s.total += len(text)
	consumed := min(s.skip, len(text))
	s.skip -= consumed
	if s.skip > 0 {
		return len(text), nil
	}
	room := cap(s.buf) - len(s.buf)
	kept := text[consumed:]
	if len(kept) > room {
		kept = kept[:room]
	}
	s.buf = append(s.buf, kept...)
	return len(text), nil
}

// Write implements io.Writer so producers can use fmt.Fprintf.
func (s *Sink) Write(p []byte) (int, error) {
	return s.WriteString(string(p))
}

// String returns the bytes the sink kept: the slice of the logical stream
// starting at the original skip offset, at most capacity bytes long.
func (s *Sink) String() string {
	return string(s.buf)
}

// Len returns how many bytes the sink kept.
func (s *Sink) Len() int {
	return len(s.buf)
}

// Total returns the length of everything offered to the sink, including
// skipped and dropped bytes.
func (s *Sink) Total() int {
	return s.total
}
