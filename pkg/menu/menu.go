// Package menu turns the markup of a cafeteria weekly menu page into an
// ordered plan of days and dishes.
//
// The page itself is reached through the Node interface, so the package has
// no opinion on how HTML is fetched or parsed. See package page for the
// goquery-backed implementation.
package menu

import (
	"fmt"
	"strings"
)

// Language selects which dish name is rendered.
type Language int

const (
	German Language = iota
	English
)

// ParseLanguage maps "de"/"en" (and a few spellings of them) to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "de", "deu", "german", "deutsch":
		return German, nil
	case "en", "eng", "english", "englisch":
		return English, nil
	default:
		return German, fmt.Errorf("unknown language: %s (use de or en)", s)
	}
}

// String returns the short language code.
func (l Language) String() string {
	if l == English {
		return "en"
	}
	return "de"
}

// Dish is one entry of a day's menu.
type Dish struct {
	ID      string `json:"id" yaml:"id"`
	German  string `json:"de" yaml:"de"`
	English string `json:"en" yaml:"en"`
}

// Name returns the dish name in the given language.
func (d Dish) Name(lang Language) string {
	if lang == English {
		return d.English
	}
	return d.German
}

// DayMenu holds the dishes published for a single day, in the order they
// were encountered on the page.
type DayMenu struct {
	Label  string `json:"day" yaml:"day"`
	Dishes []Dish `json:"dishes" yaml:"dishes"`
}

// Put adds a dish. A dish with an ID already present replaces the earlier
// one at its original position.
func (m *DayMenu) Put(d Dish) {
	for i := range m.Dishes {
		if m.Dishes[i].ID == d.ID {
			m.Dishes[i] = d
			return
		}
	}
	m.Dishes = append(m.Dishes, d)
}

// Dish looks up a dish by ID.
func (m DayMenu) Dish(id string) (Dish, bool) {
	for _, d := range m.Dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}

// Len returns the number of dishes.
func (m DayMenu) Len() int {
	return len(m.Dishes)
}

// IsEmpty reports whether the day has no label and no dishes, which is what
// lookups return when nothing matched.
func (m DayMenu) IsEmpty() bool {
	return m.Label == "" && len(m.Dishes) == 0
}

// Plan maps day labels to their menus, preserving page order.
// The zero value is an empty plan ready to use.
type Plan struct {
	days []DayMenu
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// Put stores a day. A day whose label is already present replaces the
// earlier one at its original position.
func (p *Plan) Put(day DayMenu) {
	for i := range p.days {
		if p.days[i].Label == day.Label {
			p.days[i] = day
			return
		}
	}
	p.days = append(p.days, day)
}

// Day looks up a day by its exact label.
func (p *Plan) Day(label string) (DayMenu, bool) {
	if p == nil {
		return DayMenu{}, false
	}
	for _, d := range p.days {
		if d.Label == label {
			return d, true
		}
	}
	return DayMenu{}, false
}

// Days returns a copy of all days in page order.
func (p *Plan) Days() []DayMenu {
	if p == nil {
		return []DayMenu{}
	}
	out := make([]DayMenu, len(p.days))
	copy(out, p.days)
	return out
}

// Labels returns the day labels in page order.
func (p *Plan) Labels() []string {
	if p == nil {
		return nil
	}
	labels := make([]string, len(p.days))
	for i, d := range p.days {
		labels[i] = d.Label
	}
	return labels
}

// Len returns the number of days.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.days)
}

// Equal reports whether two plans hold the same days and dishes in the same order.
func (p *Plan) Equal(other *Plan) bool {
	if p.Len() != other.Len() {
		return false
	}
	a, b := p.Days(), other.Days()
	for i := range a {
		if a[i].Label != b[i].Label || len(a[i].Dishes) != len(b[i].Dishes) {
			return false
		}
		for j := range a[i].Dishes {
			if a[i].Dishes[j] != b[i].Dishes[j] {
				return false
			}
		}
	}
	return true
}
