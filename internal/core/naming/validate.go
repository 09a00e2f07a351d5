package naming

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

var invalidCharacter = regexp.MustCompile(`[^\w\d_]|^\d`)

// ValidateClassName checks a user-supplied class name and returns a message describing
// the first problem, or "" when the name is acceptable.
func ValidateClassName(name, example string) string {
	if name == "" {
		return "Name is required"
	}
	if invalidCharacter.MatchString(name) {
		return "Name should be valid javascript token with letter numbers and underscores and no spaces"
	}
	first, _ := utf8.DecodeRuneInString(name)
	if unicode.ToUpper(first) != first {
		return fmt.Sprintf("Name should be upper camel case eg %s", example)
	}
	return ""
}
