package stats

// CounterMap counts occurrences of comparable keys. Counts never decrease.
type CounterMap[K comparable] struct {
	counts map[K]int
}

// NewCounterMap creates an empty counter map
func NewCounterMap[K comparable]() *CounterMap[K] {
	return &CounterMap[K]{counts: make(map[K]int)}
}

// Increment adds one to key
func (m *CounterMap[K]) Increment(key K) {
	m.counts[key]++
}

// IncrementBy adds n to key; non-positive amounts are ignored
func (m *CounterMap[K]) IncrementBy(key K, n int) {
	if n <= 0 {
		return
	}
	m.counts[key] += n
}

// Get returns the count of key
func (m *CounterMap[K]) Get(key K) int {
	return m.counts[key]
}

// Len returns the number of distinct keys
func (m *CounterMap[K]) Len() int {
	return len(m.counts)
}

// Total returns the sum of all counts
func (m *CounterMap[K]) Total() int {
	total := 0
	for _, n := range m.counts {
		total += n
	}
	return total
}

// Range calls fn for every key until fn returns false. Order is unspecified.
func (m *CounterMap[K]) Range(fn func(key K, count int) bool) {
	for k, n := range m.counts {
		if !fn(k, n) {
			return
		}
	}
}
