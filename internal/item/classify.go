package item

import "github.com/osse101/ItemRegistry_Go/internal/domain"

// Classify returns the class an undefined item id falls back to.
// Ranges are checked in order and the first match wins; ids outside every
// range get the zero class.
func Classify(id int) domain.ItemClass {
	switch {
	case id > 500 && id < 600:
		return domain.ClassUse
	case id > 600 && id < 700:
		return domain.Class2
	case (id > 700 && id < 1100) || (id > 7000 && id < 8000):
		return domain.ClassJunk
	case id >= 1750 && id < 1771:
		return domain.ClassArrow
	case id > 1100 && id < 2000:
		return domain.ClassWeapon
	case (id > 2100 && id < 3000) || (id > 5000 && id < 6000):
		return domain.ClassArmor
	case id > 4000 && id < 5000:
		return domain.Class6
	default:
		return domain.ItemClass(0)
	}
}

// IsEquipmentClass reports whether items of class c can be equipped
func IsEquipmentClass(c domain.ItemClass) bool {
	switch c {
	case domain.ClassUse, domain.Class2, domain.ClassJunk, domain.Class6, domain.ClassArrow:
		return false
	default:
		return true
	}
}

// IsWearableClass reports whether items of class c are worn on the body
func IsWearableClass(c domain.ItemClass) bool {
	switch c {
	case domain.ClassWeapon, domain.ClassArmor, domain.Class8:
		return true
	default:
		return false
	}
}

// IsEquipmentRecord reports whether it is an equippable item. nil is not.
func IsEquipmentRecord(it *domain.Item) bool {
	if it == nil {
		return false
	}
	return IsEquipmentClass(it.Class)
}
