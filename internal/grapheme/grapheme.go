// Package grapheme wraps uniseg so the rest of the module can treat a
// grapheme cluster as one character.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsDigit reports whether cluster is a single decimal digit rune (any
// script). A digit followed by a combining mark is not a digit.
func IsDigit(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	return size > 0 && size == len(cluster) && unicode.IsDigit(r)
}

// Width returns the terminal cell width of cluster.
func Width(cluster string) int {
	return uniseg.StringWidth(cluster)
}
