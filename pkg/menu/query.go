package menu

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is how day labels on the page end, e.g. "Montag 12.05".
const dateLayout = "02.01"

// Today returns the day whose label ends with now's date. Trailing dots
// and spaces of the label are ignored, so "Montag 12.05." matches too.
// An empty or nil plan, or no match, yields ok=false.
func Today(p *Plan, now time.Time) (DayMenu, bool) {
	if p.Len() == 0 {
		return DayMenu{}, false
	}

	date := now.Format(dateLayout)
	for _, d := range p.days {
		if strings.HasSuffix(strings.TrimRight(d.Label, ". \t"), date) {
			return d, true
		}
	}
	return DayMenu{}, false
}

var headerTemplates = map[Language]string{
	German:  "Am %s gibt es folgendes zur Auswahl:",
	English: "On %s the following is available:",
}

var nothingToday = map[Language]string{
	German:  "Heute gibt es leider nichts zu essen.",
	English: "There is no food on offer today.",
}

// Header returns the heading line for a day.
func Header(label string, lang Language) string {
	tmpl, ok := headerTemplates[lang]
	if !ok {
		tmpl = headerTemplates[German]
	}
	return fmt.Sprintf(tmpl, label)
}

// NothingToday returns the message shown when today has no menu.
func NothingToday(lang Language) string {
	if msg, ok := nothingToday[lang]; ok {
		return msg
	}
	return nothingToday[German]
}

// Render produces the console lines for the given days: a header per day,
// one "<id>: <name>" line per dish and a blank separator line.
func Render(days []DayMenu, lang Language) []string {
	var lines []string
	for _, day := range days {
		lines = append(lines, Header(day.Label, lang))
		for _, d := range day.Dishes {
			lines = append(lines, d.ID+": "+d.Name(lang))
		}
		lines = append(lines, "")
	}
	return lines
}
