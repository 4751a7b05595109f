// Package mem provides alignment arithmetic and word-aligned heap buffers.
//
// # Alignment
//
// All helpers assume power-of-two alignments. Callers validate with
// IsPowerOfTwo before rounding.
package mem
