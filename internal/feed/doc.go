// Package feed implements the lossless codec between wire records and
// typed occurrences.
//
// Parse reads one record: the per-kind grammar consumes the description
// text left to right while a cursor draws reference ids, metadata keys and
// child records in grammar order. Parsing fails unless every byte of
// description, every tag, every child and every metadata key is consumed.
// Build is the inverse: it re-renders the description and reassembles the
// tag lists, metadata and children so that a parsed record rebuilds
// bit-identically (after children are put in canonical sub-play order).
package feed
