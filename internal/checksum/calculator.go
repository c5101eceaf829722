package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/vvka-141/bibleload/pkg/bibleload"
	"github.com/zeebo/blake3"
)

// Calculator computes content fingerprints.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateRows computes a checksum of rows independent of their file format.
	CalculateRows(rows []bibleload.Row) string
}

// Hasher hashes raw sources with SHA-256 and row sets with BLAKE3.
//
// Hasher is a zero-size type and is safe for concurrent use by multiple goroutines.
type Hasher struct{}

// New creates a calculator.
func New() Hasher {
	return Hasher{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c Hasher) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateRows computes BLAKE3 over rows in order. Fields are
// length-prefixed so no text can shift a field boundary unnoticed.
func (c Hasher) CalculateRows(rows []bibleload.Row) string {
	h := blake3.New()
	var buf []byte
	for _, r := range rows {
		buf = buf[:0]
		buf = appendField(buf, r.Book)
		buf = appendField(buf, strconv.Itoa(r.Chapter))
		buf = appendField(buf, strconv.Itoa(r.Verse))
		buf = appendField(buf, r.Text)
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func appendField(buf []byte, s string) []byte {
	buf = strconv.AppendInt(buf, int64(len(s)), 10)
	buf = append(buf, ':')
	return append(buf, s...)
}

var _ Calculator = Hasher{}
