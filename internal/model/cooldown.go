package model

import "strconv"

// Cooldowns tracks per-item reuse cooldowns for one actor, in simulation ticks.
// Cooldown is keyed by item template, so every copy of the same weapon shares it.
type Cooldowns struct {
	until map[int32]int64 // itemID → tick when the cooldown ends
}

// NewCooldowns creates an empty cooldown table.
func NewCooldowns() *Cooldowns {
	return &Cooldowns{until: make(map[int32]int64)}
}

// Set starts a cooldown of duration ticks for itemID, beginning at now.
func (c *Cooldowns) Set(itemID int32, now, duration int64) {
	c.until[itemID] = now + duration
}

// IsCoolingDown reports whether itemID is still on cooldown at tick now.
// Expired entries are dropped lazily.
func (c *Cooldowns) IsCoolingDown(itemID int32, now int64) bool {
	end, ok := c.until[itemID]
	if !ok {
		return false
	}
	if now >= end {
		delete(c.until, itemID)
		return false
	}
	return true
}

// Remaining returns ticks left on the cooldown (0 if none).
func (c *Cooldowns) Remaining(itemID int32, now int64) int64 {
	end, ok := c.until[itemID]
	if !ok || now >= end {
		return 0
	}
	return end - now
}

func itemKey(itemID int32) string {
	return strconv.FormatInt(int64(itemID), 10)
}
