package store

import (
	_ "embed"
)

// Schema is the DDL for bible_books and bible_verses.
//
//go:embed schema.sql
var Schema string

const (
	setApplicationNameSQL = `SELECT set_config('application_name', $1, true)`

	upsertBookSQL = `
INSERT INTO bible_books (testament, name, display_name, sort_order)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE SET
    testament    = EXCLUDED.testament,
    display_name = EXCLUDED.display_name,
    sort_order   = EXCLUDED.sort_order`

	selectBookIDsSQL = `SELECT id, name FROM bible_books WHERE name = ANY($1)`

	upsertVerseSQL = `
INSERT INTO bible_verses (book_id, chapter, verse, text)
VALUES ($1, $2, $3, $4)
ON CONFLICT (book_id, chapter, verse) DO UPDATE SET
    text = EXCLUDED.text`

	selectBooksSQL = `
SELECT id, testament, name, display_name, sort_order
FROM bible_books
ORDER BY CASE testament WHEN 'old' THEN 0 ELSE 1 END, sort_order, name`

	selectBookByNameSQL = `
SELECT id, testament, name, display_name, sort_order
FROM bible_books
WHERE name = $1`

	selectChapterSQL = `
SELECT book_id, chapter, verse, text
FROM bible_verses
WHERE book_id = $1 AND chapter = $2
ORDER BY verse`

	selectVerseSQL = `
SELECT book_id, chapter, verse, text
FROM bible_verses
WHERE book_id = $1 AND chapter = $2 AND verse = $3`
)
