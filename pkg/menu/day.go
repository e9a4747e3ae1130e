package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat indicates markup that does not have the expected structure.
// Check with errors.Is(err, menu.ErrFormat).
var ErrFormat = errors.New("unexpected menu format")

// ExtractLabel reads the day label ("Montag 12.05." and the like) from a
// day-header fragment. The label is the text after the second tag, so
// `<div class="speiseplanTag"><span>Montag 12.05.</span></div>` yields
// "Montag 12.05.".
func ExtractLabel(fragment string) (string, error) {
	segments := strings.Split(fragment, "<")
	if len(segments) < 3 {
		return "", fmt.Errorf("%w: day header has %d tag segments, need 3", ErrFormat, len(segments))
	}

	parts := strings.Split(segments[2], ">")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: day header tag is not closed", ErrFormat)
	}

	label := strings.TrimSpace(parts[1])
	if label == "" {
		return "", fmt.Errorf("%w: day header has no text", ErrFormat)
	}
	return label, nil
}
