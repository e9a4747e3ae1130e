package menu

import (
	"regexp"
	"strings"
)

const (
	recordDelimiter  = ","
	commaReplacement = " | "
)

// innerComma matches a comma together with the spaces around it, so
// "Reis, gebraten" becomes "Reis | gebraten".
var innerComma = regexp.MustCompile(`\s*,\s*`)

// JoinFragments flattens dish fragments into one delimited string.
//
// Commas inside a fragment, with their surrounding whitespace, are replaced
// first, since the comma is the record delimiter. Each fragment is followed
// by a delimiter, and tags in the joined string are turned into sentinels.
func JoinFragments(fragments []string) string {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(innerComma.ReplaceAllString(f, commaReplacement))
		sb.WriteString(recordDelimiter)
	}
	return StripTags(sb.String())
}

// SplitRecords returns one sentinel-delimited candidate per fragment,
// in input order. Fragments must be serialized markup with text "<" escaped,
// otherwise a tag could span two fragments and swallow the delimiter.
func SplitRecords(fragments []string) []string {
	if len(fragments) == 0 {
		return nil
	}

	records := strings.Split(JoinFragments(fragments), recordDelimiter)
	// The trailing delimiter leaves an empty tail.
	if n := len(records); n > 0 && records[n-1] == "" {
		records = records[:n-1]
	}
	return records
}
