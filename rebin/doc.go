// Package rebin down-samples raw detector rows into frames of bins.
//
// A RowBinner clips each raw row to the pixel window and sums every Width
// consecutive pixels into one bin. An Accumulator sums every Height
// consecutive in-window rows into one output row of the frame and reconciles
// each finished frame to the shape established by the first frame of the
// file. A Ledger accounts for every count the tokenizer emitted: each one is
// either recorded in a retained bin or ignored, and the two must add up to
// the total.
//
// All state in this package is scoped to one input file. Create fresh values
// for each file.
package rebin
