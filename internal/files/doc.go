// Package files groups file access for bibleload.
//
// The filesystem sub-package abstracts reading sources and book maps and
// writing parsed rows, with OS and in-memory implementations so commands can
// be tested without touching disk.
package files
