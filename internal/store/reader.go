package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// Reader serves stored books and verses in canonical order.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

func scanBook(row pgx.CollectableRow) (bibleload.BookRecord, error) {
	var b bibleload.BookRecord
	var testament string
	if err := row.Scan(&b.ID, &testament, &b.Name, &b.DisplayName, &b.SortOrder); err != nil {
		return b, err
	}
	t, err := bibleload.ParseTestament(testament)
	if err != nil {
		return b, fmt.Errorf("book %s: %w", b.Name, err)
	}
	b.Testament = t
	return b, nil
}

func scanVerse(row pgx.CollectableRow) (bibleload.VerseRecord, error) {
	var v bibleload.VerseRecord
	err := row.Scan(&v.BookID, &v.Chapter, &v.Verse, &v.Text)
	return v, err
}

// Books lists every book, old testament first, then by sort order.
func (r *Reader) Books(ctx context.Context, q Querier) ([]bibleload.BookRecord, error) {
	rows, err := q.Query(ctx, selectBooksSQL)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	books, err := pgx.CollectRows(rows, scanBook)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Book looks a book up by its stored name.
func (r *Reader) Book(ctx context.Context, q Querier, name string) (bibleload.BookRecord, error) {
	rows, err := q.Query(ctx, selectBookByNameSQL, name)
	if err != nil {
		return bibleload.BookRecord{}, fmt.Errorf("find book %q: %w", name, err)
	}
	book, err := pgx.CollectExactlyOneRow(rows, scanBook)
	if errors.Is(err, pgx.ErrNoRows) {
		return bibleload.BookRecord{}, fmt.Errorf("%w: %s", bibleload.ErrBookNotFound, name)
	}
	if err != nil {
		return bibleload.BookRecord{}, fmt.Errorf("find book %q: %w", name, err)
	}
	return book, nil
}

// Chapter returns the verses of one chapter ordered by verse number.
// A known book with no such chapter yields an empty slice.
func (r *Reader) Chapter(ctx context.Context, q Querier, book string, chapter int) ([]bibleload.VerseRecord, error) {
	b, err := r.Book(ctx, q, book)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, selectChapterSQL, b.ID, chapter)
	if err != nil {
		return nil, fmt.Errorf("read %s %d: %w", book, chapter, err)
	}
	verses, err := pgx.CollectRows(rows, scanVerse)
	if err != nil {
		return nil, fmt.Errorf("read %s %d: %w", book, chapter, err)
	}
	return verses, nil
}

// Verse returns a single verse.
func (r *Reader) Verse(ctx context.Context, q Querier, book string, chapter, verse int) (bibleload.VerseRecord, error) {
	b, err := r.Book(ctx, q, book)
	if err != nil {
		return bibleload.VerseRecord{}, err
	}

	rows, err := q.Query(ctx, selectVerseSQL, b.ID, chapter, verse)
	if err != nil {
		return bibleload.VerseRecord{}, fmt.Errorf("read %s %d:%d: %w", book, chapter, verse, err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanVerse)
	if errors.Is(err, pgx.ErrNoRows) {
		return bibleload.VerseRecord{}, fmt.Errorf("%w: %s %d:%d", bibleload.ErrVerseNotFound, book, chapter, verse)
	}
	if err != nil {
		return bibleload.VerseRecord{}, fmt.Errorf("read %s %d:%d: %w", book, chapter, verse, err)
	}
	return v, nil
}
