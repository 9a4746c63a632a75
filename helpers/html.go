package helpers

import "strings"

// Paragraph wraps text as an HTML paragraph fragment. Empty text yields an
// empty paragraph rather than nothing, so that assembled descriptions keep a
// stable paragraph count and order regardless of which source fields were
// present.
func Paragraph(text string) string {
	return "<p>" + text + "</p>"
}

// LabelledParagraph wraps a "Label: value" pair as a paragraph. The value may
// be empty; the paragraph is still emitted.
func LabelledParagraph(label, value string) string {
	return Paragraph(label + ": " + value)
}

// JoinParagraphs joins paragraph fragments with blank lines.
func JoinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}
