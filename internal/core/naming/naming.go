// Package naming contains the pure identifier transforms used to derive file, class and
// selector names from a user-supplied class name.
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parts is an identifier split into lowercase words, e.g. "FooBar" -> ["foo", "bar"].
type Parts []string

// lowerToUpper marks the boundary between a lowercase letter and the uppercase letter after it.
var lowerToUpper = regexp.MustCompile(`([a-z])([A-Z])`)

// SplitIntoParts splits camelCase text into its lowercase words.
// Only lowercase->uppercase transitions start a new word, so "HTMLView" is one part.
func SplitIntoParts(name string) Parts {
	split := lowerToUpper.ReplaceAllString(strings.TrimSpace(name), "$1\n$2")

	var parts Parts
	for _, part := range strings.Split(split, "\n") {
		part = strings.ToLower(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// JoinCamel concatenates parts, upper-casing the first letter of every part except
// optionally the first one, which is lower-cased instead.
func JoinCamel(parts []string, capitalizeFirst bool) string {
	var b strings.Builder
	for i, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		if capitalizeFirst || i != 0 {
			r = unicode.ToUpper(r)
		} else {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		b.WriteString(part[size:])
	}
	return b.String()
}

// TagSelector dash-joins prefix and name, e.g. (["app"], ["test","foo"]) -> "app-test-foo".
func TagSelector(prefix, name []string) string {
	all := make([]string, 0, len(prefix)+len(name))
	all = append(all, prefix...)
	all = append(all, name...)
	return strings.Join(all, "-")
}

// TrimSuffixAndPrefix drops a trailing suffixWord and then a leading prefix.
// The suffix is always stripped first.
func TrimSuffixAndPrefix(parts []string, suffixWord string, prefix []string) Parts {
	result := append(Parts(nil), parts...)
	if n := len(result); n > 0 && result[n-1] == suffixWord {
		result = result[:n-1]
	}
	if len(prefix) > 0 && hasPrefix(result, prefix) {
		result = result[len(prefix):]
	}
	return result
}

func hasPrefix(parts, prefix []string) bool {
	if len(prefix) > len(parts) {
		return false
	}
	for i, p := range prefix {
		if parts[i] != p {
			return false
		}
	}
	return true
}

// LowerCamel returns the variable-name form of a class name: "FooBarService" -> "fooBarService".
func LowerCamel(className string) string {
	return JoinCamel(SplitIntoParts(className), false)
}
