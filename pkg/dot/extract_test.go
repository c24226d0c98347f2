package dot

import (
	"slices"
	"testing"
)

const sample = `digraph "classes" {
rankdir=BT
charset="utf-8"
// generated by pyreverse
"shop.models.Order" [color="black", fontcolor="black", label=<{Order|id : int<br ALIGN="LEFT"/>|total(): 'Decimal'<br ALIGN="LEFT"/>}>, shape="record", style="solid"];
/* "shop.Hidden" [label=<{Hidden|}>]; */
"shop.models.Customer" [label=<{Customer|
name : str<br ALIGN="LEFT"/>
|}>, shape="record"];
"Helper" [label=<{Helper||run()}>];
"shop.models.Order" -> "shop.models.Customer" [arrowhead="diamond", label="customer", style="solid"];
"shop.models.Customer" -> "Helper" [label="uses"];
}
`

func TestExtract(t *testing.T) {
	doc := Extract(sample)

	ids := make([]string, len(doc.Classes))
	for i, c := range doc.Classes {
		ids[i] = c.ID
	}
	wantIDs := []string{"shop.models.Order", "shop.models.Customer", "Helper"}
	if !slices.Equal(ids, wantIDs) {
		t.Fatalf("class IDs = %q, want %q", ids, wantIDs)
	}

	order, _ := doc.Class("shop.models.Order")
	if order.Name != "Order" {
		t.Errorf("Order.Name = %q", order.Name)
	}
	if !slices.Equal(order.Attributes, []string{"id : int"}) {
		t.Errorf("Order.Attributes = %q", order.Attributes)
	}
	if !slices.Equal(order.Methods, []string{"total(): Decimal"}) {
		t.Errorf("Order.Methods = %q", order.Methods)
	}

	customer, _ := doc.Class("shop.models.Customer")
	if !slices.Equal(customer.Attributes, []string{"name : str"}) {
		t.Errorf("Customer.Attributes = %q (multi-line label)", customer.Attributes)
	}

	wantEdges := []Edge{
		{From: "shop.models.Order", To: "shop.models.Customer", Label: "customer"},
		{From: "shop.models.Customer", To: "Helper", Label: "uses"},
	}
	if !slices.Equal(doc.Edges, wantEdges) {
		t.Errorf("Edges = %+v, want %+v", doc.Edges, wantEdges)
	}
}

func TestExtract_CommentedOutNode(t *testing.T) {
	doc := Extract(sample)
	if _, ok := doc.Class("shop.Hidden"); ok {
		t.Error("node inside block comment was extracted")
	}
}

func TestExtract_EdgeOrder(t *testing.T) {
	src := `"b" -> "c" [label="2"];
"a.X" [label=<{X}>];
"a" -> "b" [label="1"];
"c" -> "a" [label="3"];`

	doc := Extract(src)
	var labels []string
	for _, e := range doc.Edges {
		labels = append(labels, e.Label)
	}
	if !slices.Equal(labels, []string{"2", "1", "3"}) {
		t.Errorf("edge labels = %q, want input order", labels)
	}
}

func TestExtract_EdgeNotJoinedToNextNode(t *testing.T) {
	src := `"a" -> "b" [label="uses"];
"c.C" [label=<{C|x: int}>];`

	doc := Extract(src)
	if len(doc.Classes) != 1 || doc.Classes[0].ID != "c.C" {
		t.Fatalf("Classes = %+v, want only c.C", doc.Classes)
	}
}

func TestExtract_DuplicateNode(t *testing.T) {
	src := `"a.A" [label=<{First}>];
"b.B" [label=<{B}>];
"a.A" [label=<{Second}>];`

	doc := Extract(src)
	if len(doc.Classes) != 2 {
		t.Fatalf("len(Classes) = %d, want 2", len(doc.Classes))
	}
	if doc.Classes[0].ID != "a.A" || doc.Classes[0].Name != "Second" {
		t.Errorf("Classes[0] = %+v, want a.A with last definition", doc.Classes[0])
	}
}

func TestExtract_SkipsUnrecognized(t *testing.T) {
	src := `"plain" [label="not a record"];
"a" -> "b";
node [shape=record];`

	doc := Extract(src)
	if len(doc.Classes) != 0 || len(doc.Edges) != 0 {
		t.Errorf("Extract() = %+v, want empty document", doc)
	}
}

func TestStripComments(t *testing.T) {
	src := "a // line\nb /* block\nspans */ c"
	if got, want := StripComments(src), "a \nb  c"; got != want {
		t.Errorf("StripComments() = %q, want %q", got, want)
	}
}
