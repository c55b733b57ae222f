// Package errs defines the sentinel errors shared by the reflbin packages.
//
// Errors returned by the library wrap one of these sentinels with context, so
// callers should match them with errors.Is rather than comparing strings.
package errs

import "errors"

// Configuration errors. They are detected before any input file is opened.
var (
	// ErrInvalidConfig is returned when an option value is out of range or inconsistent.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidRange is returned when a pixel range is malformed or empty.
	ErrInvalidRange = errors.New("invalid pixel range")
	// ErrInvalidBinning is returned when a binning factor is not a positive integer.
	ErrInvalidBinning = errors.New("invalid binning factor")
	// ErrUnsupportedCompression is returned for an unknown compression codec.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrUnknownFormat is returned for an unknown output format name.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Data bound errors. They abort the current file only.
var (
	// ErrNumberOverflow is returned when a pixel token does not fit the pixel value range.
	ErrNumberOverflow = errors.New("pixel value overflow")
	// ErrRowTooLong is returned when a raw row holds more values than the configured bound.
	ErrRowTooLong = errors.New("row exceeds maximum length")
	// ErrFrameTooLarge is returned when a frame holds more bins than the configured bound.
	ErrFrameTooLarge = errors.New("frame exceeds maximum size")
	// ErrShapeMismatch is returned when a frame does not match the encoder's dimensions.
	ErrShapeMismatch = errors.New("frame shape mismatch")
)

// Encoder errors.
var (
	// ErrPlaceholderOverflow is returned when a deferred header value is wider than its reserved span.
	ErrPlaceholderOverflow = errors.New("header value exceeds placeholder width")
	// ErrEncoderClosed is returned when writing to an encoder after Finish.
	ErrEncoderClosed = errors.New("encoder already finished")
)
