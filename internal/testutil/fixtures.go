package testutil

import (
	"github.com/udisondev/katana/internal/model"
)

// Fixtures содержит тестовые шаблоны, общие для тестов разных пакетов.
var Fixtures = struct {
	// Катана: attackDamage 8 → удар слэша 4
	Katana *model.WeaponTemplate

	// Катана без износа (MaxDamage 0)
	UnbreakableKatana *model.WeaponTemplate

	// Габариты обычного моба
	MobWidth  float64
	MobHeight float64
	MobHP     float64
}{
	Katana: &model.WeaponTemplate{
		ItemID:       9001,
		Name:         "Iron Katana",
		AttackDamage: 8,
		MaxDamage:    250,
	},
	UnbreakableKatana: &model.WeaponTemplate{
		ItemID:       9002,
		Name:         "Ceremonial Katana",
		AttackDamage: 8,
	},
	MobWidth:  0.6,
	MobHeight: 1.95,
	MobHP:     20,
}
