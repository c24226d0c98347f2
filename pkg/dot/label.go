package dot

import (
	"html"
	"regexp"
	"strings"
)

var (
	lineBreakRe  = regexp.MustCompile(`(?i)<br\b[^>]*>`)
	tagRe        = regexp.MustCompile(`<.*?>`)
	returnTypeRe = regexp.MustCompile(`:\s*'([^']*)'`)
)

// Label is the content of an HTML-like record label.
type Label struct {
	Name       string
	Attributes []string
	Methods    []string
}

// ParseLabel parses the body of a record label, the text between "<{" and
// "}>". Line-break tags become newlines, all other tags are dropped and
// character entities are decoded. The first "|" segment is the name; every
// following segment contributes one member per non-blank line.
//
// A line is an attribute when it contains ":" and no "("; anything else is a
// method. Method return types written as ": 'T'" lose their quotes.
func ParseLabel(body string) Label {
	parts := strings.Split(cleanLabel(body), "|")

	l := Label{Name: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		for _, line := range strings.Split(part, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if isAttribute(line) {
				l.Attributes = append(l.Attributes, line)
			} else {
				l.Methods = append(l.Methods, returnTypeRe.ReplaceAllString(line, ": $1"))
			}
		}
	}
	return l
}

func cleanLabel(body string) string {
	body = lineBreakRe.ReplaceAllString(body, "\n")
	body = tagRe.ReplaceAllString(body, "")
	return html.UnescapeString(body)
}

func isAttribute(line string) bool {
	return strings.Contains(line, ":") && !strings.Contains(line, "(")
}
