package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/dotuml/pkg/dot"
	"github.com/matzehuels/dotuml/pkg/pkgtree"
	"github.com/matzehuels/dotuml/pkg/puml"
)

func sampleTree() (*pkgtree.Package, []dot.Edge) {
	classes := []dot.Class{
		{ID: "shop.models.Order", Name: "Order", Attributes: []string{"id: int"}, Methods: []string{"total(): Decimal"}},
		{ID: "shop.Cart", Name: "Cart", Attributes: []string{"items: List<Item>"}},
		{ID: "Helper", Name: "Helper"},
	}
	edges := []dot.Edge{{From: "shop.Cart", To: "shop.models.Order", Label: "checkout"}}
	return pkgtree.Build(classes, ""), edges
}

func TestToDOT_Clusters(t *testing.T) {
	root, edges := sampleTree()
	out := ToDOT(root, edges, puml.Options{})

	for _, want := range []string{
		`digraph "classes" {`,
		`subgraph "cluster_shop" {`,
		`subgraph "cluster_shop.models" {`,
		`subgraph "cluster_Global" {`,
		`fillcolor="#406ABF";`,
		`fillcolor="#8CA6D9";`,
		`"shop.Cart" -> "shop.models.Order" [label="checkout"];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "cluster_Root") {
		t.Error("ToDOT() drew the synthetic root")
	}
}

func TestToDOT_FontColorFollowsLightness(t *testing.T) {
	root, _ := sampleTree()
	palette := puml.DefaultPalette()
	palette.Base = 10 // depth 1 at 30%, depth 2 at 50%
	out := ToDOT(root, nil, puml.Options{Palette: palette})

	shop := out[strings.Index(out, `subgraph "cluster_shop" {`):]
	if !strings.Contains(shop[:200], `fontcolor="white";`) {
		t.Error("top-level cluster should use white titles on the dark fill")
	}
	models := out[strings.Index(out, `subgraph "cluster_shop.models" {`):]
	if !strings.Contains(models[:200], `fontcolor="black";`) {
		t.Error("nested cluster should use black titles")
	}
}

func TestToDOT_StyleColorsLowercased(t *testing.T) {
	root, _ := sampleTree()
	out := ToDOT(root, nil, puml.Options{})

	if !strings.Contains(out, `fillcolor="lightyellow"`) {
		t.Error("class background not translated to a Graphviz color name")
	}
	if !strings.Contains(out, `edge [color="darkblue"`) {
		t.Error("arrow color not translated to a Graphviz color name")
	}
}

func TestRecordLabel(t *testing.T) {
	tests := []struct {
		name  string
		class dot.Class
		want  string
	}{
		{
			name:  "name only",
			class: dot.Class{Name: "A"},
			want:  `{A||}`,
		},
		{
			name:  "members left-justified",
			class: dot.Class{Name: "Order", Attributes: []string{"id: int"}, Methods: []string{"total()", "close()"}},
			want:  `{Order|id: int\l|total()\lclose()\l}`,
		},
		{
			name:  "record specials escaped",
			class: dot.Class{Name: "Box", Attributes: []string{"items: Map<str, {a|b}>"}},
			want:  `{Box|items: Map\<str, \{a\|b\}\>\l|}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recordLabel(tt.class); got != tt.want {
				t.Errorf("recordLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	if got, want := quote(`say "hi"\l`), `"say \"hi\"\l"`; got != want {
		t.Errorf("quote() = %q, want %q", got, want)
	}
}

func TestRenderSVG(t *testing.T) {
	root, edges := sampleTree()
	svg, err := RenderSVG(ToDOT(root, edges, puml.Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(`not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}
