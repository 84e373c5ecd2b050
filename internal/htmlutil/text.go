package htmlutil

import (
	"regexp"
	"strings"

	"github.com/k3a/html2text"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// ToText converts rendered HTML to plain text for terminal output.
// Entities are decoded, tags stripped, and runs of blank lines collapsed.
func ToText(s string) string {
	text := html2text.HTML2TextWithOptions(s, html2text.WithUnixLineBreaks())
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text) + "\n"
}
