package model

import (
	"errors"
	"fmt"
)

// ErrIncompatibleEnchantment is returned when an enchantment cannot join a set.
var ErrIncompatibleEnchantment = errors.New("incompatible enchantment")

// Enchantment — зачарование, прикреплённое к предмету.
// CanAccept решает, может ли other сосуществовать с этим зачарованием на одном предмете.
type Enchantment interface {
	Name() string
	CanAccept(other Enchantment) bool
}

// BasicEnchantment is a passive enchantment that only rejects copies of itself.
type BasicEnchantment struct {
	name string
}

// NewBasicEnchantment creates a named passive enchantment.
func NewBasicEnchantment(name string) *BasicEnchantment {
	return &BasicEnchantment{name: name}
}

func (e *BasicEnchantment) Name() string { return e.name }

func (e *BasicEnchantment) CanAccept(other Enchantment) bool {
	return other.Name() != e.name
}

// Стандартные пассивные зачарования.
var (
	Sharpness  = NewBasicEnchantment("sharpness")
	Unbreaking = NewBasicEnchantment("unbreaking")
)

// EnchantmentEntry is one enchantment with its level.
type EnchantmentEntry struct {
	Enchantment Enchantment
	Level       int32
}

// EnchantmentSet — набор зачарований предмета (порядок добавления сохраняется).
type EnchantmentSet struct {
	entries []EnchantmentEntry
}

// Add attaches e at the given level.
// Compatibility is checked both ways against every existing entry.
func (s *EnchantmentSet) Add(e Enchantment, level int32) error {
	if e == nil {
		return fmt.Errorf("nil enchantment: %w", ErrIncompatibleEnchantment)
	}
	if level < 1 {
		return fmt.Errorf("enchantment %s level %d must be >= 1", e.Name(), level)
	}
	for _, existing := range s.entries {
		if existing.Enchantment.Name() == e.Name() ||
			!existing.Enchantment.CanAccept(e) || !e.CanAccept(existing.Enchantment) {
			return fmt.Errorf("%s conflicts with %s: %w", e.Name(), existing.Enchantment.Name(), ErrIncompatibleEnchantment)
		}
	}
	s.entries = append(s.entries, EnchantmentEntry{Enchantment: e, Level: level})
	return nil
}

// Level returns the level of the named enchantment (0 if absent).
func (s *EnchantmentSet) Level(name string) int32 {
	for _, entry := range s.entries {
		if entry.Enchantment.Name() == name {
			return entry.Level
		}
	}
	return 0
}

// Entries returns a copy of all entries in attachment order.
func (s *EnchantmentSet) Entries() []EnchantmentEntry {
	result := make([]EnchantmentEntry, len(s.entries))
	copy(result, s.entries)
	return result
}

// Len returns the number of attached enchantments.
func (s *EnchantmentSet) Len() int {
	return len(s.entries)
}
