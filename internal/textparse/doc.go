// Package textparse implements the small combinator layer the description
// grammars are written in.
//
// A Scanner walks a description string left to right without backtracking;
// Alt, Opt and the list combinators snapshot and restore the position for
// their own alternatives only. Grammars fail fast with positioned errors
// and the caller decides whether leftover input is acceptable (it almost
// never is).
package textparse
