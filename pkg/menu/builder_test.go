package menu

import (
	"testing"
)

// fakeNode is an in-memory Node keyed by class name.
type fakeNode struct {
	html     string
	children map[string][]Node
}

func (n fakeNode) FindAll(class string) []Node {
	return n.children[class]
}

func (n fakeNode) Find(class string) (Node, bool) {
	if c := n.children[class]; len(c) > 0 {
		return c[0], true
	}
	return nil, false
}

func (n fakeNode) HTML() string {
	return n.html
}

func leaf(html string) Node {
	return fakeNode{html: html}
}

func section(header string, dishes ...string) Node {
	children := map[string][]Node{}
	if header != "" {
		children["speiseplanTag"] = []Node{leaf(header)}
	}
	for _, d := range dishes {
		children["essen"] = append(children["essen"], leaf(d))
	}
	return fakeNode{children: children}
}

func pageOf(sections ...Node) Node {
	return fakeNode{children: map[string][]Node{"essenAll": sections}}
}

func dishHTML(id, de, en string) string {
	return `<div class="essen"><span>` + id + `</span><span>` + de + `</span><span>` + en + `</span></div>`
}

func header(label string) string {
	return `<div class="speiseplanTag"><span>` + label + `</span></div>`
}

func TestBuilder_Build_TwoDays(t *testing.T) {
	root := pageOf(
		section(header("Montag 12.05."),
			dishHTML("001", "Gulasch", "Beef stew"),
			dishHTML("002", "Reis, gebraten", "Fried rice"),
			`<div class="essen"><span>Hinweis</span></div>`,
			dishHTML("003", "Suppe", "Soup"),
		),
		section(header("Dienstag 13.05.")),
	)

	plan, stats := NewBuilder().BuildWithStats(root)

	if plan.Len() != 2 {
		t.Fatalf("plan has %d days, want 2", plan.Len())
	}

	days := plan.Days()
	if days[0].Label != "Montag 12.05." || days[1].Label != "Dienstag 13.05." {
		t.Errorf("labels = %v", plan.Labels())
	}
	if days[0].Len() != 3 {
		t.Errorf("first day has %d dishes, want 3", days[0].Len())
	}
	if days[1].Len() != 0 {
		t.Errorf("second day has %d dishes, want 0", days[1].Len())
	}

	wantIDs := []string{"001", "002", "003"}
	for i, d := range days[0].Dishes {
		if d.ID != wantIDs[i] {
			t.Errorf("dish %d id = %q, want %q", i, d.ID, wantIDs[i])
		}
	}
	if d, _ := days[0].Dish("002"); d.German != "Reis | gebraten" {
		t.Errorf("dish 002 German = %q", d.German)
	}

	want := BuildStats{Sections: 2, Days: 2, Dishes: 3, SkippedDishes: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestBuilder_Build_SkipsBadSections(t *testing.T) {
	root := pageOf(
		section("", dishHTML("001", "Gulasch", "Beef stew")),
		section(`<div>Montag</div>`, dishHTML("002", "Suppe", "Soup")),
		section(header("Mittwoch 14.05."), dishHTML("003", "Salat", "Salad")),
	)

	plan, stats := NewBuilder().BuildWithStats(root)

	if plan.Len() != 1 {
		t.Fatalf("plan has %d days, want 1", plan.Len())
	}
	if _, ok := plan.Day("Mittwoch 14.05."); !ok {
		t.Errorf("expected Mittwoch, got %v", plan.Labels())
	}
	if stats.SkippedSections != 2 {
		t.Errorf("SkippedSections = %d, want 2", stats.SkippedSections)
	}
}

func TestBuilder_Build_DuplicateLabelLastWins(t *testing.T) {
	root := pageOf(
		section(header("Montag 12.05."), dishHTML("001", "Gulasch", "Beef stew")),
		section(header("Dienstag 13.05."), dishHTML("002", "Suppe", "Soup")),
		section(header("Montag 12.05."), dishHTML("009", "Pizza", "Pizza"), dishHTML("010", "Salat", "Salad")),
	)

	plan, stats := NewBuilder().BuildWithStats(root)

	if got := plan.Labels(); len(got) != 2 || got[0] != "Montag 12.05." || got[1] != "Dienstag 13.05." {
		t.Fatalf("labels = %v", got)
	}
	monday, _ := plan.Day("Montag 12.05.")
	if monday.Len() != 2 || monday.Dishes[0].ID != "009" {
		t.Errorf("Montag = %+v, want the later section", monday)
	}
	if stats.Dishes != 3 {
		t.Errorf("Dishes = %d, want 3", stats.Dishes)
	}
}

func TestBuilder_Build_DuplicateDishIDLastWins(t *testing.T) {
	root := pageOf(
		section(header("Montag 12.05."),
			dishHTML("001", "Gulasch", "Beef stew"),
			dishHTML("002", "Suppe", "Soup"),
			dishHTML("001", "Rindergulasch", "Beef goulash"),
		),
	)

	day, _ := NewBuilder().Build(root).Day("Montag 12.05.")
	if day.Len() != 2 {
		t.Fatalf("day has %d dishes, want 2", day.Len())
	}
	if day.Dishes[0].German != "Rindergulasch" || day.Dishes[1].ID != "002" {
		t.Errorf("dishes = %+v", day.Dishes)
	}
}

func TestBuilder_Build_Idempotent(t *testing.T) {
	root := pageOf(
		section(header("Montag 12.05."), dishHTML("001", "Gulasch", "Beef stew"), dishHTML("002", "Suppe", "Soup")),
		section(header("Dienstag 13.05."), dishHTML("003", "Salat", "Salad")),
	)

	b := NewBuilder()
	first := b.Build(root)
	second := b.Build(root)

	if !first.Equal(second) {
		t.Errorf("builds differ:\n%+v\n%+v", first.Days(), second.Days())
	}
}

func TestBuilder_Build_NilRoot(t *testing.T) {
	plan := NewBuilder().Build(nil)
	if plan == nil || plan.Len() != 0 {
		t.Errorf("Build(nil) = %+v, want empty plan", plan)
	}
}

func TestBuilder_CustomClasses(t *testing.T) {
	root := fakeNode{children: map[string][]Node{
		"day": {fakeNode{children: map[string][]Node{
			"head": {leaf(header("Freitag 16.05."))},
			"meal": {leaf(dishHTML("005", "Fisch", "Fish"))},
		}}},
	}}

	b := &Builder{Classes: Classes{Day: "day", Header: "head", Dish: "meal"}}
	plan := b.Build(root)

	day, ok := plan.Day("Freitag 16.05.")
	if !ok || day.Len() != 1 {
		t.Errorf("plan = %+v", plan.Days())
	}
}
