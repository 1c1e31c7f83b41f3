// Package bloom provides probabilistic deduplication of audit targets.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers which URLs a batch has already claimed. False
// positives are possible at the configured rate, false negatives are
// not: a URL reported unseen has definitely not been recorded.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter sizes a filter for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seen records the URL and reports whether it had been recorded
// before.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}
