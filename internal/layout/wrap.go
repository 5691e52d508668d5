package layout

import "strings"

// Measure returns the rendered width in points of a string in the style
// currently being laid out. The page writer supplies an implementation backed
// by the encoder's font metrics; tests use a fixed-advance fake.
type Measure func(s string) float64

// Paragraphs splits body text into independent flow units on runs of one or
// more blank lines. Single newlines inside a paragraph are soft breaks and
// re-flow during wrapping. Leading and trailing blank lines produce no
// paragraphs.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}

// Wrap word-wraps a single paragraph to availWidth using greedy line filling.
// A single word wider than availWidth is placed on its own line unbroken;
// there is no hyphenation. An empty paragraph yields no lines.
func Wrap(paragraph string, availWidth float64, measure Measure) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measure(candidate) <= availWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

// WrapText splits text into paragraphs and wraps each one independently.
// Paragraph boundaries are preserved in the result so the caller can insert
// vertical gaps between the wrapped groups.
func WrapText(text string, availWidth float64, measure Measure) [][]string {
	paragraphs := Paragraphs(text)
	wrapped := make([][]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		wrapped = append(wrapped, Wrap(p, availWidth, measure))
	}
	return wrapped
}
