package menu

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"", German, false},
		{"de", German, false},
		{"Deutsch", German, false},
		{"en", English, false},
		{" English ", English, false},
		{"fr", German, true},
	}

	for _, tt := range tests {
		got, err := ParseLanguage(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDish_Name(t *testing.T) {
	d := Dish{ID: "001", German: "Gulasch", English: "Beef stew"}
	if d.Name(German) != "Gulasch" || d.Name(English) != "Beef stew" {
		t.Errorf("Name() = %q / %q", d.Name(German), d.Name(English))
	}
}

func TestDayMenu_Put(t *testing.T) {
	var m DayMenu
	m.Put(Dish{ID: "001", German: "Gulasch"})
	m.Put(Dish{ID: "002", German: "Suppe"})
	m.Put(Dish{ID: "001", German: "Rindergulasch"})

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if m.Dishes[0].German != "Rindergulasch" || m.Dishes[1].ID != "002" {
		t.Errorf("Dishes = %+v", m.Dishes)
	}
	if _, ok := m.Dish("003"); ok {
		t.Error("Dish(003) should not exist")
	}
}

func TestPlan_ZeroValueAndNil(t *testing.T) {
	var nilPlan *Plan
	if nilPlan.Len() != 0 || len(nilPlan.Days()) != 0 || nilPlan.Labels() != nil {
		t.Error("nil plan should behave as empty")
	}
	if _, ok := nilPlan.Day("x"); ok {
		t.Error("nil plan should find nothing")
	}

	var p Plan
	p.Put(DayMenu{Label: "Montag 12.05."})
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPlan_DaysReturnsCopy(t *testing.T) {
	p := NewPlan()
	p.Put(DayMenu{Label: "Montag 12.05."})

	days := p.Days()
	days[0].Label = "changed"

	if _, ok := p.Day("Montag 12.05."); !ok {
		t.Error("modifying Days() result changed the plan")
	}
}

func TestPlan_Equal(t *testing.T) {
	a, b := NewPlan(), NewPlan()
	a.Put(DayMenu{Label: "Montag", Dishes: []Dish{{ID: "001", German: "Gulasch"}}})
	b.Put(DayMenu{Label: "Montag", Dishes: []Dish{{ID: "001", German: "Gulasch"}}})
	if !a.Equal(b) {
		t.Error("identical plans should be equal")
	}

	b.Put(DayMenu{Label: "Montag", Dishes: []Dish{{ID: "001", German: "Suppe"}}})
	if a.Equal(b) {
		t.Error("plans with different dishes should differ")
	}

	if !NewPlan().Equal(nil) {
		t.Error("empty plan should equal nil plan")
	}
}
