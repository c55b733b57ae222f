package rebin

import "fmt"

// WarningKind classifies data-integrity warnings.
type WarningKind uint8

const (
	// WarnColumns reports rows whose bin count differs from the file's columns.
	WarnColumns WarningKind = iota
	// WarnRows reports frames whose height differs from the file's rows.
	WarnRows
	// WarnAccounting reports recorded+ignored != total at the end of a file.
	WarnAccounting

	numWarningKinds
)

func (k WarningKind) String() string {
	switch k {
	case WarnColumns:
		return "columns"
	case WarnRows:
		return "rows"
	case WarnAccounting:
		return "accounting"
	default:
		return "unknown"
	}
}

// Warning is a recoverable data-integrity problem. Processing continues
// with best-effort recovery.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Warnings collects at most one warning of each kind per file.
type Warnings struct {
	seen   [numWarningKinds]bool
	list   []Warning
	notify func(Warning)
}

// NewWarnings creates a collector. notify, if non-nil, is called for each
// warning the first time its kind is reported.
func NewWarnings(notify func(Warning)) *Warnings {
	return &Warnings{notify: notify}
}

// Report records a warning of the given kind unless one was already
// recorded. It returns true if the warning was recorded.
func (w *Warnings) Report(kind WarningKind, format string, args ...any) bool {
	if w == nil || kind >= numWarningKinds || w.seen[kind] {
		return false
	}
	w.seen[kind] = true

	warning := Warning{Kind: kind, Message: fmt.Sprintf(format, args...)}
	w.list = append(w.list, warning)
	if w.notify != nil {
		w.notify(warning)
	}

	return true
}

// List returns the recorded warnings in report order.
func (w *Warnings) List() []Warning {
	if w == nil {
		return nil
	}

	return w.list
}
