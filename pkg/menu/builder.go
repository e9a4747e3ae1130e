package menu

import (
	"github.com/jmylchreest/mensa/internal/logger"
)

// Node is the part of a parsed HTML tree the builder needs.
type Node interface {
	// FindAll returns all descendants carrying the class, in document order.
	FindAll(class string) []Node

	// Find returns the first descendant carrying the class.
	Find(class string) (Node, bool)

	// HTML returns the outer markup of the node.
	HTML() string
}

// Classes names the CSS classes marking the parts of the page.
type Classes struct {
	Day    string `mapstructure:"day" validate:"required"`
	Header string `mapstructure:"header" validate:"required"`
	Dish   string `mapstructure:"dish" validate:"required"`
}

// DefaultClasses returns the classes used by the Studentenwerk menu pages.
func DefaultClasses() Classes {
	return Classes{
		Day:    "essenAll",
		Header: "speiseplanTag",
		Dish:   "essen",
	}
}

// BuildStats counts what a build kept and dropped.
type BuildStats struct {
	Sections        int
	Days            int
	Dishes          int
	SkippedSections int
	SkippedDishes   int
}

// Builder assembles a Plan from a parsed page.
type Builder struct {
	Classes Classes
	Parser  Parser
}

// NewBuilder returns a builder with the default classes and shapes.
func NewBuilder() *Builder {
	return &Builder{Classes: DefaultClasses()}
}

// Build walks all day sections of the page. Malformed headers drop their
// section and malformed dishes are dropped individually; Build never fails.
func (b *Builder) Build(root Node) *Plan {
	plan, _ := b.BuildWithStats(root)
	return plan
}

// BuildWithStats is Build plus a summary of what was skipped.
func (b *Builder) BuildWithStats(root Node) (*Plan, BuildStats) {
	plan := NewPlan()
	var stats BuildStats

	if root == nil {
		return plan, stats
	}

	classes := b.classes()
	sections := root.FindAll(classes.Day)
	stats.Sections = len(sections)
	logger.Debug("menu build starting", "sections", len(sections), "day_class", classes.Day)

	for i, section := range sections {
		header, ok := section.Find(classes.Header)
		if !ok {
			logger.Debug("day section has no header, skipping", "section", i)
			stats.SkippedSections++
			continue
		}

		label, err := ExtractLabel(header.HTML())
		if err != nil {
			logger.Debug("day label unreadable, skipping", "section", i, "error", err)
			stats.SkippedSections++
			continue
		}

		dayLog := logger.With("day", label)
		day := DayMenu{Label: label, Dishes: []Dish{}}
		nodes := section.FindAll(classes.Dish)
		fragments := make([]string, len(nodes))
		for j, n := range nodes {
			fragments[j] = n.HTML()
		}

		for _, candidate := range SplitRecords(fragments) {
			dish, ok := b.Parser.Parse(candidate)
			if !ok {
				dayLog.Debug("dish record unreadable, skipping", "record", candidate)
				stats.SkippedDishes++
				continue
			}
			day.Put(dish)
		}

		if _, exists := plan.Day(label); exists {
			dayLog.Debug("duplicate day label, replacing earlier entry")
		}
		plan.Put(day)
		dayLog.Debug("day parsed", "dishes", day.Len())
	}

	stats.Days = plan.Len()
	for _, d := range plan.days {
		stats.Dishes += d.Len()
	}
	logger.Debug("menu build complete",
		"days", stats.Days,
		"dishes", stats.Dishes,
		"skipped_sections", stats.SkippedSections,
		"skipped_dishes", stats.SkippedDishes)

	return plan, stats
}

func (b *Builder) classes() Classes {
	def := DefaultClasses()
	c := b.Classes
	if c.Day == "" {
		c.Day = def.Day
	}
	if c.Header == "" {
		c.Header = def.Header
	}
	if c.Dish == "" {
		c.Dish = def.Dish
	}
	return c
}
