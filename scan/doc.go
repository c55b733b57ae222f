// Package scan lexes detector counts out of the data block of a scan file.
//
// The data block is a stream of non-negative integers. A comma separates the
// pixels of a row, a semicolon ends a row, and a line that ends directly after
// a number (no trailing punctuation) ends the row and the frame. A row may be
// wrapped over several physical lines as long as each line ends with a
// separator. Any character that cannot start or continue a number ends the
// block; the line holding it is left pending for the caller, since it is the
// metadata line of the next point.
//
// The Tokenizer is an explicit finite-state machine: every (State, character
// class) pair maps to one transition in a fixed table, which keeps the
// boundary rules in one place and testable on their own.
package scan
