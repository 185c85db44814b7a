package naming

import (
	"strings"
	"unicode"
)

// Deconstruct splits an identifier into lowercase words.
// Examples:
//   - "WidgetClient" -> ["widget", "client"]
//   - "storage_account-name" -> ["storage", "account", "name"]
//   - "getHTTPResponse" -> ["get", "http", "response"]
func Deconstruct(s string) []string {
	words := tokenize(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}

// PascalCase joins words capitalising the first letter of each one.
func PascalCase(words []string) string {
	var b strings.Builder

	for _, w := range words {
		if w == "" {
			continue
		}

		runes := []rune(w)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}

	return b.String()
}

// FixPropertyName reduces a property expression to a bare identifier.
// A leading "this." is dropped and any character that cannot appear in an
// identifier is removed, so "this.Tags" becomes "Tags".
func FixPropertyName(name string) string {
	name = strings.TrimPrefix(name, "this.")

	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// tokenize splits a CamelCase or separated identifier into words,
// preserving the original case.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsWord(runes, i) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord determines if a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "XMLParser": split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
