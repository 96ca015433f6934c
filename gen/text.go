package gen

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ruleWidth matches the width of the heavy section separators
const ruleWidth = 79

// sectionRule separates top-level document sections
func sectionRule() string {
	return strings.Repeat("═", ruleWidth)
}

// boxTable renders headers and rows as a box-drawing table. Column
// widths fit the widest cell plus one space of padding each side.
func boxTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	var b strings.Builder
	border := func(left, mid, right string) {
		b.WriteString(left)
		for i, w := range widths {
			if i > 0 {
				b.WriteString(mid)
			}
			b.WriteString(strings.Repeat("─", w+2))
		}
		b.WriteString(right)
		b.WriteByte('\n')
	}
	line := func(cells []string) {
		b.WriteString("│")
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := w - utf8.RuneCountInString(cell)
			b.WriteString(" " + cell + strings.Repeat(" ", pad) + " │")
		}
		b.WriteByte('\n')
	}

	border("┌", "┬", "┐")
	line(headers)
	border("├", "┼", "┤")
	for _, row := range rows {
		line(row)
	}
	border("└", "┴", "┘")
	return b.String()
}

// bulletList renders items as "• item" lines
func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}

// markedList renders items with the given marker, e.g. "✓" or "✗"
func markedList(marker string, items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(marker)
		b.WriteByte(' ')
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}

// numberedList renders items as "1. item" lines
func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(strconv.Itoa(i+1) + ". " + item + "\n")
	}
	return b.String()
}

// truncateExcerpt cuts text to at most n bytes on a rune boundary
func truncateExcerpt(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
