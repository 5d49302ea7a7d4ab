package model

// StatKey identifies a per-actor usage counter.
type StatKey string

// Stats is a per-actor counter table (used items, kills, ...).
type Stats struct {
	counters map[StatKey]int64
}

// NewStats creates an empty counter table.
func NewStats() *Stats {
	return &Stats{counters: make(map[StatKey]int64)}
}

// Increment adds one to the counter.
func (s *Stats) Increment(key StatKey) {
	s.counters[key]++
}

// Get returns the counter value (0 if never incremented).
func (s *Stats) Get(key StatKey) int64 {
	return s.counters[key]
}

// UsedStat returns the "used item" counter key for an item template.
func UsedStat(itemID int32) StatKey {
	return StatKey("used:" + itemKey(itemID))
}
