// Package tstext scans TypeScript source text without parsing it. Brackets are matched
// outside of string literals, template literals and comments.
package tstext

import "strings"

// VisitFunc receives the index of a byte, the bracket depth outside of it and whether it
// is code (not inside a string literal or comment). Returning false stops the scan.
type VisitFunc func(i, depth int, code bool) bool

// Scan walks text[from:to] tracking (), [] and {} depth. Brackets inside quotes, template
// literals and comments are ignored. Opening and closing brackets are reported at the
// depth of the region that contains them.
func Scan(text string, from, to int, visit VisitFunc) {
	depth := 0
	for i := from; i < to; i++ {
		c := text[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			end := skipString(text, i, to)
			for j := i; j < end; j++ {
				if !visit(j, depth, false) {
					return
				}
			}
			i = end - 1
			continue
		case c == '/' && i+1 < to && text[i+1] == '/':
			end := strings.IndexByte(text[i:to], '\n')
			if end < 0 {
				end = to
			} else {
				end += i
			}
			for j := i; j < end; j++ {
				if !visit(j, depth, false) {
					return
				}
			}
			i = end - 1
			continue
		case c == '/' && i+1 < to && text[i+1] == '*':
			end := strings.Index(text[i+2:to], "*/")
			if end < 0 {
				end = to
			} else {
				end += i + 4
			}
			for j := i; j < end; j++ {
				if !visit(j, depth, false) {
					return
				}
			}
			i = end - 1
			continue
		case isOpenBracket(c):
			if !visit(i, depth, true) {
				return
			}
			depth++
			continue
		case isCloseBracket(c):
			if depth > 0 {
				depth--
			}
		}
		if !visit(i, depth, true) {
			return
		}
	}
}

// skipString returns the index just past the string literal starting at text[start].
func skipString(text string, start, to int) int {
	quote := text[start]
	for i := start + 1; i < to; i++ {
		switch text[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		case '\n':
			if quote != '`' {
				return i
			}
		}
	}
	return to
}

func isOpenBracket(c byte) bool {
	return c == '{' || c == '(' || c == '['
}

func isCloseBracket(c byte) bool {
	return c == '}' || c == ')' || c == ']'
}

// StepOverBrackets returns the index just after the bracket matching the one at
// text[open], or -1 when text[open] is not an opening bracket or it is never closed.
func StepOverBrackets(text string, open int) int {
	if open < 0 || open >= len(text) || !isOpenBracket(text[open]) {
		return -1
	}
	result := -1
	Scan(text, open, len(text), func(i, depth int, code bool) bool {
		if code && i > open && depth == 0 && isCloseBracket(text[i]) {
			result = i + 1
			return false
		}
		return true
	})
	return result
}

// DepthAt reports the bracket depth at text[pos] and whether pos is code.
func DepthAt(text string, pos int) (int, bool) {
	d, isCode := 0, true
	Scan(text, 0, pos+1, func(i, depth int, code bool) bool {
		if i == pos {
			d, isCode = depth, code
			return false
		}
		return true
	})
	return d, isCode
}

// LeadingWhitespace returns the spaces and tabs that start the line containing text[at].
func LeadingWhitespace(text string, at int) string {
	start := StartOfLine(text, at)
	end := start
	for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
		end++
	}
	return text[start:end]
}

func StartOfLine(text string, at int) int {
	if at > len(text) {
		at = len(text)
	}
	return strings.LastIndexByte(text[:at], '\n') + 1
}

// NextLine returns the index of the line after the one containing text[at].
func NextLine(text string, at int) int {
	i := strings.IndexByte(text[at:], '\n')
	if i < 0 {
		return len(text)
	}
	return at + i + 1
}

// OnlyWhitespaceBefore reports whether text[at] is the first non-blank byte on its line.
func OnlyWhitespaceBefore(text string, at int) bool {
	return strings.TrimLeft(text[StartOfLine(text, at):at], " \t") == ""
}
