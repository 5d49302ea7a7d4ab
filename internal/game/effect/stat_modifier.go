package effect

// StatDamageTaken scales the damage a mob takes from strikes.
const StatDamageTaken = "damageTaken"

// StatModifier represents a single multiplicative stat change from an effect.
// Multiple modifiers on the same stat multiply together.
type StatModifier struct {
	Stat   string
	Factor float64
}

// StatModifierProvider is optionally implemented by Effect types that modify stats.
type StatModifierProvider interface {
	StatModifiers() []StatModifier
}
