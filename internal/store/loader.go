// Package store persists normalized rows into bible_books and bible_verses and
// reads them back.
//
// A load is a two-phase upsert inside one transaction: every referenced book is
// upserted and its id re-read before any verse is written, so each verse's
// book_id resolves within the same transaction.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vvka-141/bibleload/internal/bookmap"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

// Loader upserts rows in fixed-size verse batches.
type Loader struct {
	batchSize int
	logger    bibleload.Logger
}

// NewLoader creates a Loader. batchSize must be positive.
func NewLoader(logger bibleload.Logger, batchSize int) (*Loader, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d: %w", batchSize, bibleload.ErrInvalidConfig)
	}
	return &Loader{batchSize: batchSize, logger: logger}, nil
}

// BatchSize returns the configured verse batch size.
func (l *Loader) BatchSize() int {
	return l.batchSize
}

// Load writes rows and their books in one transaction and commits once.
//
// Empty input, malformed rows and unmapped books are rejected before the
// transaction is opened. Any failure after Begin rolls everything back; the
// returned error wraps the original failure, joined with the rollback error
// if rollback also failed.
func (l *Loader) Load(ctx context.Context, db TxBeginner, rows []bibleload.Row, mapping bibleload.BookMapping) (result bibleload.LoadResult, err error) {
	if len(rows) == 0 {
		return result, bibleload.ErrEmptyInput
	}
	for i, row := range rows {
		if strings.TrimSpace(row.Book) == "" || row.Chapter < 1 || row.Verse < 1 {
			return result, fmt.Errorf("row %d (%s): book must be set and chapter/verse must be >= 1: %w", i+1, row.Ref(), bibleload.ErrInvalidRow)
		}
	}

	books := DistinctBooks(rows)
	if err := CheckMapped(mapping, books); err != nil {
		return result, err
	}

	result.RunID = uuid.New()
	start := time.Now()
	l.logger.Verbose("Load %s: %d verse row(s) across %d book(s), batch size %d", result.RunID, len(rows), len(books), l.batchSize)

	tx, err := db.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: begin transaction: %w", bibleload.ErrLoadFailed, err)
	}
	defer func() {
		if err == nil {
			return
		}
		// Rollback must run even when ctx was cancelled mid-load.
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		l.logger.Verbose("Load %s rolled back", result.RunID)
	}()

	appName := fmt.Sprintf("%s/%s", bibleload.ApplicationName, result.RunID)
	if _, err = tx.Exec(ctx, setApplicationNameSQL, appName); err != nil {
		return result, fmt.Errorf("%w: set application_name: %w", bibleload.ErrLoadFailed, err)
	}

	if err = upsertBooks(ctx, tx, books, mapping); err != nil {
		return result, err
	}

	ids, err := resolveBookIDs(ctx, tx, books)
	if err != nil {
		return result, err
	}
	l.logger.Verbose("Resolved %d book id(s)", len(ids))

	if err = l.upsertVerses(ctx, tx, rows, ids); err != nil {
		return result, err
	}

	if err = tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("%w: commit: %w", bibleload.ErrLoadFailed, err)
	}

	result.Verses = len(rows)
	result.Books = len(ids)
	result.Duration = time.Since(start)
	return result, nil
}

// DistinctBooks returns the book names in rows, sorted lexicographically.
func DistinctBooks(rows []bibleload.Row) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[r.Book] = struct{}{}
	}
	books := make([]string, 0, len(seen))
	for name := range seen {
		books = append(books, name)
	}
	sort.Strings(books)
	return books
}

// CheckMapped fails with ErrUnmappedBook naming every book that has no
// mapping entry.
func CheckMapped(mapping bibleload.BookMapping, books []string) error {
	missing := bookmap.Missing(mapping, books)
	for i, name := range missing {
		missing[i] = "'" + name + "'"
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%w: book %s missing in book map. Add mapping before loading", bibleload.ErrUnmappedBook, missing[0])
	default:
		return fmt.Errorf("%w: books %s missing in book map. Add mappings before loading", bibleload.ErrUnmappedBook, strings.Join(missing, ", "))
	}
}

func upsertBooks(ctx context.Context, tx batchSender, books []string, mapping bibleload.BookMapping) error {
	batch := &pgx.Batch{}
	for _, name := range books {
		meta := mapping[name]
		batch.Queue(upsertBookSQL, meta.Testament.StorageValue(), name, mapping.DisplayNameFor(name), meta.SortOrder)
	}

	results := tx.SendBatch(ctx, batch)
	for _, name := range books {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("%w: upsert book '%s': %w", bibleload.ErrLoadFailed, name, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%w: complete book upsert batch: %w", bibleload.ErrLoadFailed, err)
	}
	return nil
}

type bookID struct {
	ID   int64
	Name string
}

func resolveBookIDs(ctx context.Context, q Querier, books []string) (map[string]int64, error) {
	rows, err := q.Query(ctx, selectBookIDsSQL, books)
	if err != nil {
		return nil, fmt.Errorf("%w: select book ids: %w", bibleload.ErrLoadFailed, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByPos[bookID])
	if err != nil {
		return nil, fmt.Errorf("%w: select book ids: %w", bibleload.ErrLoadFailed, err)
	}

	ids := make(map[string]int64, len(found))
	for _, b := range found {
		ids[b.Name] = b.ID
	}

	var missing []string
	for _, name := range books {
		if _, ok := ids[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w for: %s", bibleload.ErrBookResolution, strings.Join(missing, ", "))
	}
	return ids, nil
}

// upsertVerses sends one pgx.Batch per chunk. Statements in a batch run in
// queue order, so a repeated (book, chapter, verse) keeps the later text.
func (l *Loader) upsertVerses(ctx context.Context, tx batchSender, rows []bibleload.Row, ids map[string]int64) error {
	total := (len(rows) + l.batchSize - 1) / l.batchSize

	for n, start := 1, 0; start < len(rows); n, start = n+1, start+l.batchSize {
		chunk := rows[start:min(start+l.batchSize, len(rows))]

		batch := &pgx.Batch{}
		for _, r := range chunk {
			batch.Queue(upsertVerseSQL, ids[r.Book], r.Chapter, r.Verse, r.Text)
		}

		results := tx.SendBatch(ctx, batch)
		for _, r := range chunk {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("%w: verse batch %d/%d at %s: %w", bibleload.ErrLoadFailed, n, total, r.Ref(), err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("%w: complete verse batch %d/%d: %w", bibleload.ErrLoadFailed, n, total, err)
		}

		l.logger.Verbose("Upserted verse batch %d/%d (%d row(s))", n, total, len(chunk))
	}
	return nil
}
