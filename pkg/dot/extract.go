package dot

import "regexp"

var (
	lineCommentRe  = regexp.MustCompile(`//.*`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// The attribute text ahead of label= may not cross "]" so that an edge's
	// attribute list is never joined to the label of a later node.
	nodeRe = regexp.MustCompile(`(?s)"([^"]+)"\s*\[[^\]]*?label=<\{(.*?)\}>.*?\];`)
	edgeRe = regexp.MustCompile(`"([^"]+)"\s*->\s*"([^"]+)"\s*\[.*?label="([^"]*)".*?\];`)
)

// Extract finds every class node and labeled edge in src.
//
// Comments are removed first. Statements that match neither shape are
// ignored, so Extract never fails; an input without matches yields an empty
// Document.
func Extract(src string) *Document {
	src = StripComments(src)

	doc := &Document{}
	index := make(map[string]int)
	for _, m := range nodeRe.FindAllStringSubmatch(src, -1) {
		l := ParseLabel(m[2])
		c := Class{ID: m[1], Name: l.Name, Attributes: l.Attributes, Methods: l.Methods}
		if i, ok := index[c.ID]; ok {
			doc.Classes[i] = c
			continue
		}
		index[c.ID] = len(doc.Classes)
		doc.Classes = append(doc.Classes, c)
	}

	for _, m := range edgeRe.FindAllStringSubmatch(src, -1) {
		doc.Edges = append(doc.Edges, Edge{From: m[1], To: m[2], Label: m[3]})
	}
	return doc
}

// StripComments removes // line comments and /* */ block comments.
func StripComments(src string) string {
	src = lineCommentRe.ReplaceAllString(src, "")
	return blockCommentRe.ReplaceAllString(src, "")
}
