// Package extract turns raw scripture text lines into normalized rows.
//
// Matching is delegated to a Rule, so the line accounting (blank and comment
// skipping, 1-based numbering, unparsed-line collection) is shared by every
// strategy:
//   - RegexRule: a regular expression with book, chapter, verse and text groups
//   - DelimitedRule: four fields split on a separator such as "|"
package extract
