package menu

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shape identifies a known field layout of a dish record.
type Shape string

const (
	// ShapeSimple reads the first three meaningful fields as id, German
	// name and English name.
	ShapeSimple Shape = "simple"

	// ShapePositional reads fields at fixed offsets of the unfiltered
	// record. It matches an older page layout and is kept as a fallback.
	ShapePositional Shape = "positional"
)

// ParseShape maps a layout name to the shapes a Parser should try.
// "auto" (or empty) tries every shape, simple first.
func ParseShape(s string) ([]Shape, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DefaultShapes(), true
	case string(ShapeSimple):
		return []Shape{ShapeSimple}, true
	case string(ShapePositional):
		return []Shape{ShapePositional}, true
	default:
		return nil, false
	}
}

// DefaultShapes returns the shapes tried by a zero Parser.
func DefaultShapes() []Shape {
	return []Shape{ShapeSimple, ShapePositional}
}

const (
	simpleMinFields     = 3
	positionalMinFields = 6

	// A field at offset 5 this short means an extra tag pushed the English
	// name back to offset 4.
	positionalShortField = 2
)

// Parser turns sentinel-delimited candidates into dishes.
type Parser struct {
	// Shapes are tried in order; the first one that yields a dish wins.
	// Nil means DefaultShapes.
	Shapes []Shape
}

// Parse reads one candidate produced by SplitRecords. Candidates that fit
// no shape are reported with ok=false.
func (p Parser) Parse(candidate string) (Dish, bool) {
	shapes := p.Shapes
	if shapes == nil {
		shapes = DefaultShapes()
	}

	fields := strings.Split(candidate, Sentinel)
	for _, shape := range shapes {
		var (
			d  Dish
			ok bool
		)
		switch shape {
		case ShapeSimple:
			d, ok = parseSimple(fields)
		case ShapePositional:
			d, ok = parsePositional(fields)
		}
		if ok {
			return d, true
		}
	}
	return Dish{}, false
}

func parseSimple(fields []string) (Dish, bool) {
	meaningful := make([]string, 0, len(fields))
	for _, f := range fields {
		if isMeaningful(f) {
			meaningful = append(meaningful, f)
		}
	}
	if len(meaningful) < simpleMinFields {
		return Dish{}, false
	}

	return Dish{
		ID:      strings.TrimSpace(meaningful[0]),
		German:  strings.TrimSpace(meaningful[1]),
		English: strings.TrimSpace(dropStrayPrefix(meaningful[2])),
	}, true
}

func parsePositional(fields []string) (Dish, bool) {
	if len(fields) < positionalMinFields {
		return Dish{}, false
	}

	var english string
	if utf8.RuneCountInString(strings.TrimSpace(fields[5])) <= positionalShortField {
		english = skipRunes(fields[4], 1)
	} else {
		english = skipRunes(fields[5], 2)
	}

	d := Dish{
		ID:      strings.TrimSpace(fields[1]),
		German:  strings.TrimSpace(fields[3]),
		English: strings.TrimSpace(english),
	}
	if d.ID == "" || d.German == "" {
		return Dish{}, false
	}
	return d, true
}

// isMeaningful reports whether a field carries text rather than whitespace
// or punctuation left between adjacent tags.
func isMeaningful(field string) bool {
	for _, r := range field {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// dropStrayPrefix removes a single leading character that is neither a
// letter nor a digit, typically a carriage return.
func dropStrayPrefix(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return s
	}
	return s[size:]
}

func skipRunes(s string, n int) string {
	for ; n > 0 && s != ""; n-- {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}
