// Package board holds the square tower-defense grid that every other
// package consumes.
//
// What:
//
//   - Board wraps an n×n grid of single-rune cells. 'T' marks a tower;
//     any other rune is open terrain.
//   - Coordinate addresses a cell by (Row, Col). Start is (0,0), Goal is
//     (n-1,n-1).
//   - Read parses the textual form: a line holding n, then n rows.
//
// Why:
//
//   - The damage field and the route search both need a validated,
//     immutable grid; malformed input is rejected here, before any search
//     runs, and never truncated or padded.
//
// Complexity:
//
//   - New / FromRows: O(n²) time and memory (deep copy of the rows).
//   - Read:           O(bytes) plus New.
//   - Towers:         O(n²).
//
// Errors:
//
//   - ErrDegenerate:     n ≤ 0.
//   - ErrMalformedBoard: wrong row count or a row whose length is not n.
//   - ErrBadHeader:      the size line of a textual board is not an integer.
package board
