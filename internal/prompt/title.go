package prompt

import "fmt"

// TitleCapacity is the character budget of the title row.
const TitleCapacity = 16

// FormatTitle renders the title row label. When the prompt spans more
// than one page and the title leaves room, a " (p/c)" suffix with the
// 1-based page index is appended; otherwise the bare title is shown and
// the page indicator is silently dropped. Titles longer than the budget
// fill it with no ellipsis.
//
// The room check sizes the suffix from the page count's digit tier:
// 4 fixed chars plus 2 per tier, which over-reserves when the current
// page has fewer digits than the count.
func FormatTitle(title string, page, pageCount int) string {
	needed := 4
	switch {
	case pageCount < 10:
		needed += 2
	case pageCount < 100:
		needed += 4
	default:
		needed += 6
	}

	sink := NewSink(TitleCapacity, 0)
	sink.WriteString(title)
	if pageCount > 1 && len(title) <= TitleCapacity-needed {
		// The room check above guarantees the suffix fits.
		fmt.Fprintf(sink, " (%d/%d)", page+1, pageCount)
	}
	return sink.String()
}
