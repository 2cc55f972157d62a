package content

import (
	"regexp"
	"strings"
)

// itemRegex matches "- **Title** | rest" lines used for experience entries
// and social links.
var itemRegex = regexp.MustCompile(`- \*\*(.+?)\*\* \| (.+)`)

// splitLines splits a document into lines, dropping the \r of CRLF endings.
func splitLines(doc string) []string {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// nonBlankLines is splitLines without whitespace-only lines.
func nonBlankLines(doc string) []string {
	var lines []string
	for _, line := range splitLines(doc) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// field reports whether line starts with any of the given "key:" markers and
// returns the trimmed value after the marker.
func field(line string, markers ...string) (string, bool) {
	for _, marker := range markers {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

// hasAnyPrefix reports whether line starts with one of prefixes.
func hasAnyPrefix(line string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// joinSpace appends text to acc with a single separating space.
func joinSpace(acc, text string) string {
	if acc == "" {
		return text
	}
	return acc + " " + text
}
