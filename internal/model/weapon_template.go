package model

// WeaponTemplate — шаблон оружия (статы, общие для всех экземпляров).
type WeaponTemplate struct {
	ItemID       int32   // Template ID (unique)
	Name         string  // e.g. "Iron Katana"
	AttackDamage float64 // effective attack damage of a normal strike
	MaxDamage    int32   // durability ceiling; 0 = unbreakable
}
