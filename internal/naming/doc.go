// Package naming turns model identifiers into the spellings used by the
// generated module: deconstructed word lists, PascalCase names and
// property names that are safe to pass to nameof().
//
// Tokenisation rules:
//   - Separators (_, -, space, .) always end a word
//   - A lower-to-upper transition starts a new word ("widgetName" -> widget, name)
//   - An acronym ends before its last capital when a lowercase letter follows
//     ("XMLParser" -> xml, parser)
package naming
