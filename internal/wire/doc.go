// Package wire models the upstream feed's loosely-typed record format.
//
// A Record is one entry of the play-by-play log: a free-text description,
// ordered reference-id lists, an open metadata bag, and recursively nested
// child records. The package owns JSON decoding/encoding (preserving
// metadata keys it does not recognize), the integer discriminant and
// category tables, and the canonical ordering of children by sub-play
// index that the round-trip comparison relies on.
package wire
