// Package checksum fingerprints raw sources (SHA-256) and row sets (BLAKE3).
//
// A row checksum covers the normalized tuples only, so the same rows written
// as JSON Lines or CSV share one checksum. Parse and load both log it, which
// ties a load back to the parse run that produced its input.
package checksum
