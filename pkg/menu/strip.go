package menu

import "strings"

// Sentinel replaces every markup tag removed by StripTags. Downstream
// parsing uses it as the field delimiter inside a dish record.
const Sentinel = "+++"

// StripTags replaces each well-formed <...> span with Sentinel.
// An opening bracket without a closing one is kept as-is.
func StripTags(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '<' {
			sb.WriteByte(text[i])
			i++
			continue
		}

		end := strings.IndexByte(text[i+1:], '>')
		if end < 0 {
			sb.WriteByte(text[i])
			i++
			continue
		}

		sb.WriteString(Sentinel)
		i += end + 2
	}

	return sb.String()
}
