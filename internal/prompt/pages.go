package prompt

import "fmt"

// MaxPages is a defensive limit on how many pages a single prompt may
// span. Exceeding it means the producer is unbounded or misbehaving, which
// is a programming error in the caller, so the engine panics instead of
// returning an outcome the user could act on.
const MaxPages = 1000

// Measure runs the producer once against a zero-capacity sink and returns
// the total logical content length. Measurement is independent of display
// width: only the running total is read.
func Measure(contents Producer) (int, error) {
	sink := NewSink(0, 0)
	if err := contents(sink); err != nil {
		return 0, fmt.Errorf("measure prompt: %w", err)
	}
	return sink.Total(), nil
}

// PageCount returns how many pages content of the given total length
// occupies: ceil(max(1,total) / (rowCapacity*rowsPerPage)). Empty content
// still counts as one (empty) page.
func PageCount(total, rowCapacity, rowsPerPage int) int {
	per := rowCapacity * rowsPerPage
	if total < 1 {
		total = 1
	}
	return (total + per - 1) / per
}

// RowOffset returns the byte offset at which the given row of the given
// page begins within the logical content stream.
func RowOffset(page, row, rowCapacity, rowsPerPage int) int {
	return (page*rowsPerPage + row) * rowCapacity
}

// Paginate measures the producer and returns its page count for the given
// layout. It panics when the count exceeds MaxPages.
func Paginate(contents Producer, rowCapacity, rowsPerPage int) (int, error) {
	total, err := Measure(contents)
	if err != nil {
		return 0, err
	}
	count := PageCount(total, rowCapacity, rowsPerPage)
	if count > MaxPages {
		panic(fmt.Sprintf("prompt: page count %d exceeds the %d page limit", count, MaxPages))
	}
	return count, nil
}
