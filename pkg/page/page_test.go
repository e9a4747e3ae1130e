package page

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/mensa/pkg/menu"
)

const weekHTML = `<!DOCTYPE html>
<html>
<head><title>Speiseplan</title></head>
<body>
<div class="essenAll">
  <div class="speiseplanTag"><span>Montag 12.05.</span></div>
  <div class="essen"><span class="nr">001</span><span class="de">Gulasch mit Reis</span><span class="en">
Beef stew with rice</span></div>
  <div class="essen"><span class="nr">002</span><span class="de">Gemüse, gebraten</span><span class="en">Fried vegetables</span></div>
  <div class="essen mensaSpezial"><span>Aktionstag</span></div>
  <div class="essen"><span class="nr">003</span><span class="de">Tomatensuppe</span><span class="en">Tomato soup</span></div>
</div>
<div class="essenAll">
  <div class="speiseplanTag"><span>Dienstag 13.05.</span></div>
</div>
</body>
</html>`

func TestNode_BuildsPlan(t *testing.T) {
	root, err := ParseString(weekHTML)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	plan, stats := menu.NewBuilder().BuildWithStats(root)

	if plan.Len() != 2 {
		t.Fatalf("plan has %d days, want 2 (%v)", plan.Len(), plan.Labels())
	}

	monday, ok := plan.Day("Montag 12.05.")
	if !ok {
		t.Fatalf("no Montag in %v", plan.Labels())
	}
	if monday.Len() != 3 {
		t.Fatalf("Montag has %d dishes, want 3: %+v", monday.Len(), monday.Dishes)
	}

	want := []menu.Dish{
		{ID: "001", German: "Gulasch mit Reis", English: "Beef stew with rice"},
		{ID: "002", German: "Gemüse | gebraten", English: "Fried vegetables"},
		{ID: "003", German: "Tomatensuppe", English: "Tomato soup"},
	}
	for i, d := range monday.Dishes {
		if d != want[i] {
			t.Errorf("dish %d = %+v, want %+v", i, d, want[i])
		}
	}

	tuesday, _ := plan.Day("Dienstag 13.05.")
	if tuesday.Len() != 0 {
		t.Errorf("Dienstag has %d dishes, want 0", tuesday.Len())
	}

	if stats.SkippedDishes != 1 {
		t.Errorf("SkippedDishes = %d, want 1", stats.SkippedDishes)
	}
}

func TestNode_BuildIsIdempotent(t *testing.T) {
	b := menu.NewBuilder()

	first, err := ParseString(weekHTML)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseString(weekHTML)
	if err != nil {
		t.Fatal(err)
	}

	if !b.Build(first).Equal(b.Build(second)) {
		t.Error("building the same page twice gave different plans")
	}
}

func TestNode_FindAllAndFind(t *testing.T) {
	root, err := ParseString(weekHTML)
	if err != nil {
		t.Fatal(err)
	}

	sections := root.FindAll("essenAll")
	if len(sections) != 2 {
		t.Fatalf("FindAll(essenAll) = %d nodes, want 2", len(sections))
	}

	dishes := sections[0].FindAll("essen")
	if len(dishes) != 4 {
		t.Errorf("FindAll(essen) = %d nodes, want 4", len(dishes))
	}

	header, ok := sections[1].Find("speiseplanTag")
	if !ok {
		t.Fatal("Find(speiseplanTag) found nothing")
	}
	if got := header.HTML(); got != `<div class="speiseplanTag"><span>Dienstag 13.05.</span></div>` {
		t.Errorf("HTML() = %q", got)
	}

	if _, ok := sections[1].Find("essen"); ok {
		t.Error("Find(essen) in empty section should find nothing")
	}
}

func TestNode_Text(t *testing.T) {
	root, err := ParseString(`<div class="speiseplanTag">  <span>Montag</span>
	<span>12.05.</span></div>`)
	if err != nil {
		t.Fatal(err)
	}
	header, ok := root.Find("speiseplanTag")
	if !ok {
		t.Fatal("header not found")
	}
	if got := header.(Node).Text(); got != "Montag 12.05." {
		t.Errorf("Text() = %q", got)
	}
}

func TestNode_ZeroValue(t *testing.T) {
	var n Node
	if n.FindAll("essen") != nil {
		t.Error("zero Node FindAll should be nil")
	}
	if _, ok := n.Find("essen"); ok {
		t.Error("zero Node Find should find nothing")
	}
	if n.HTML() != "" || n.Text() != "" {
		t.Error("zero Node should render empty")
	}
}

func TestFromSelection(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(weekHTML))
	if err != nil {
		t.Fatal(err)
	}
	n := FromSelection(doc.Find("body"))
	if got := len(n.FindAll("speiseplanTag")); got != 2 {
		t.Errorf("FindAll(speiseplanTag) = %d, want 2", got)
	}
}

func TestClassSelector(t *testing.T) {
	tests := []struct {
		class string
		want  string
	}{
		{"essen", ".essen"},
		{" essenAll ", ".essenAll"},
		{"a:b", `[class~="a:b"]`},
	}
	for _, tt := range tests {
		if got := classSelector(tt.class); got != tt.want {
			t.Errorf("classSelector(%q) = %q, want %q", tt.class, got, tt.want)
		}
	}
}
