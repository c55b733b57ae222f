package rebin

// Ledger tracks where every emitted count ended up.
//
// It implements scan.Observer so the tokenizer can feed Total directly.
type Ledger struct {
	Total    uint64 // every value the tokenizer emitted
	Recorded uint64 // values in retained bins
	Ignored  uint64 // values outside the window or in discarded bins
	NonZero  int    // nonzero bins across all finished frames
}

// Observe adds an emitted value to the total.
func (l *Ledger) Observe(v uint64) {
	l.Total += v
}

// Abandon accounts the values of an unfinished row as dropped.
func (l *Ledger) Abandon(vs []uint64) {
	l.IgnoreAll(vs)
}

// Record accounts v as kept in a bin.
func (l *Ledger) Record(v uint64) {
	l.Recorded += v
}

// Ignore accounts v as dropped.
func (l *Ledger) Ignore(v uint64) {
	l.Ignored += v
}

// IgnoreAll accounts every value in vs as dropped.
func (l *Ledger) IgnoreAll(vs []uint64) {
	for _, v := range vs {
		l.Ignored += v
	}
}

// Reclassify moves v from recorded to ignored, for bins discarded after
// their pixels were already recorded.
func (l *Ledger) Reclassify(v uint64) {
	l.Recorded -= v
	l.Ignored += v
}

// Balanced reports whether recorded and ignored counts add up to the total.
func (l *Ledger) Balanced() bool {
	return l.Recorded+l.Ignored == l.Total
}

// Reset clears all counters.
func (l *Ledger) Reset() {
	*l = Ledger{}
}
