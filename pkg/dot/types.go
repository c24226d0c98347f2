package dot

// Class is a class node extracted from a record label.
type Class struct {
	// ID is the quoted node identifier, usually a dotted qualified name.
	ID string
	// Name is the display name from the first label segment.
	Name string
	// Attributes holds attribute lines in label order.
	Attributes []string
	// Methods holds method lines in label order with return-type quotes removed.
	Methods []string
}

// Edge is a directed, labeled relationship between two node identifiers.
// Endpoints are not required to name a class in the same document.
type Edge struct {
	From  string
	To    string
	Label string
}

// Document is the result of extracting one DOT text.
type Document struct {
	// Classes in order of first appearance. A repeated node ID keeps its
	// first position and takes its last definition.
	Classes []Class
	// Edges in input order.
	Edges []Edge
}

// Class returns the class with the given ID.
func (d *Document) Class(id string) (Class, bool) {
	for _, c := range d.Classes {
		if c.ID == id {
			return c, true
		}
	}
	return Class{}, false
}
