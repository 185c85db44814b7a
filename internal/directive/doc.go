// Package directive rewrites the command model according to user-authored
// directives.
//
// Directives are read from the "directive" configuration value:
//
//	directive:
//	  - remove-command: "^Get-"        # regular expression, partial match
//	  - hide-command: Set-AzWidget     # literal Verb-Noun, case-insensitive
//
// A pattern shaped like word-word (ASCII letters around a single hyphen) is
// compared literally against a command's full display name, ignoring case.
// Anything else is a regular expression (RE2 syntax) that only needs to
// match part of the display name.
//
// Directives are applied in order, one pass each: a command removed by an
// earlier directive is invisible to later ones, and a later remove-command
// wins over an earlier hide-command. Patterns that match nothing are not an
// error. Entries without a recognized key are ignored.
package directive
