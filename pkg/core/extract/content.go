package extract

import (
	"regexp"
	"strings"
)

// decodeContentText recovers readable text from a decompressed PDF page
// content stream. It collects the string literals fed to the text-showing
// operators (Tj, TJ, ', ") and emits a newline for each text-positioning
// operator (Td, TD, T*). This handles standard-encoded fonts; custom CMap
// encodings come out garbled and are left to the regex layer to ignore.
func decodeContentText(content []byte) string {
	var out strings.Builder
	var literal strings.Builder
	var token strings.Builder

	depth := 0
	escaped := false

	flushToken := func() {
		switch token.String() {
		case "Td", "TD", "T*", "ET":
			out.WriteByte('\n')
		case "Tj", "TJ", "'", "\"":
			// literals were already appended when their parens closed
		}
		token.Reset()
	}

	for i := 0; i < len(content); i++ {
		c := content[i]

		if depth > 0 {
			if escaped {
				switch c {
				case 'n':
					literal.WriteByte('\n')
				case 't':
					literal.WriteByte('\t')
				case 'r', 'b', 'f':
					// positioning escapes carry no text
				default:
					literal.WriteByte(c)
				}
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '(':
				depth++
				literal.WriteByte(c)
			case ')':
				depth--
				if depth == 0 {
					out.WriteString(literal.String())
					literal.Reset()
				} else {
					literal.WriteByte(c)
				}
			default:
				literal.WriteByte(c)
			}
			continue
		}

		switch {
		case c == '(':
			flushToken()
			depth = 1
		case c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '[' || c == ']' || c == '<' || c == '>' || c == '/':
			flushToken()
			if c == '[' {
				// TJ arrays separate literals with kerning numbers; a
				// space keeps the words apart after decoding
				out.WriteByte(' ')
			}
		default:
			token.WriteByte(c)
		}
	}
	flushToken()

	return out.String()
}

var cellSeparator = regexp.MustCompile(`\t+| {2,}`)

// tablesFromText recovers whitespace-aligned tables from decoded page text.
// A table is two or more consecutive lines that split into the same number
// of columns (at least two) on tabs or runs of spaces. This approximates
// what a layout-aware extractor would return for simple financial tables.
func tablesFromText(text string) [][][]string {
	var tables [][][]string
	var current [][]string

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		cells := splitCells(line)
		if len(cells) < 2 {
			flush()
			continue
		}
		if len(current) > 0 && len(current[len(current)-1]) != len(cells) {
			flush()
		}
		current = append(current, cells)
	}
	flush()

	return tables
}

func splitCells(line string) []string {
	var cells []string
	for _, cell := range cellSeparator.Split(strings.TrimSpace(line), -1) {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
