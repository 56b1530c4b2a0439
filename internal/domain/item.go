package domain

import "fmt"

// ItemNameMaxLen is the longest alias or display name an item line may carry
const ItemNameMaxLen = 23

// ItemClass is the numeric item type code used by the item database
type ItemClass int

// Item class codes as they appear in the database file.
// Codes 1, 2, 6, 7, 8 and 9 have no confirmed label in the item catalog and
// are kept by number.
const (
	ClassUse    ItemClass = 0
	Class1      ItemClass = 1
	Class2      ItemClass = 2
	ClassJunk   ItemClass = 3
	ClassWeapon ItemClass = 4
	ClassArmor  ItemClass = 5
	Class6      ItemClass = 6
	Class7      ItemClass = 7
	Class8      ItemClass = 8
	Class9      ItemClass = 9
	ClassArrow  ItemClass = 10
)

// ClassMax is the highest valid class code
const ClassMax = ClassArrow

// Valid reports whether c is a known class code
func (c ItemClass) Valid() bool {
	return c >= ClassUse && c <= ClassMax
}

func (c ItemClass) String() string {
	switch c {
	case ClassUse:
		return "USE"
	case ClassJunk:
		return "JUNK"
	case ClassWeapon:
		return "WEAPON"
	case ClassArmor:
		return "ARMOR"
	case ClassArrow:
		return "ARROW"
	default:
		return fmt.Sprintf("CLASS_%d", int(c))
	}
}

// Sex restricts who may wear an item
type Sex int

const (
	SexFemale  Sex = 0
	SexMale    Sex = 1
	SexNeutral Sex = 2
)

// Valid reports whether s is a known sex code
func (s Sex) Valid() bool {
	return s >= SexFemale && s <= SexNeutral
}

func (s Sex) String() string {
	switch s {
	case SexFemale:
		return "FEMALE"
	case SexMale:
		return "MALE"
	case SexNeutral:
		return "NEUTRAL"
	default:
		return fmt.Sprintf("SEX_%d", int(s))
	}
}

// Script is a compiled script owned by exactly one item.
// Release frees it; calling Release more than once is a no-op.
type Script interface {
	Source() string
	Line() int
	Release()
}

// Item is one entry of the item database, keyed by ID.
// Alias is the short lookup name, DisplayName the full name shown to players.
type Item struct {
	ID          int       `json:"id"`
	Alias       string    `json:"alias"`
	DisplayName string    `json:"display_name"`
	Class       ItemClass `json:"class"`
	BuyPrice    int       `json:"buy_price"`
	SellPrice   int       `json:"sell_price"`
	Weight      int       `json:"weight"`
	Attack      int       `json:"attack"`
	Defense     int       `json:"defense"`
	Range       int       `json:"range"`
	MagicBonus  int       `json:"magic_bonus"`
	Sex         Sex       `json:"sex"`
	EquipSlots  int       `json:"equip_slots"`
	WeaponLevel int       `json:"weapon_level"`
	EquipLevel  int       `json:"equip_level"`
	Look        int       `json:"look"`

	UseScript   Script `json:"-"`
	EquipScript Script `json:"-"`
}

// DerivePrices fills a missing buy or sell price from the other one.
// Zero means absent; when both are absent nothing changes.
func (i *Item) DerivePrices() {
	switch {
	case i.BuyPrice == 0 && i.SellPrice == 0:
	case i.BuyPrice == 0:
		i.BuyPrice = i.SellPrice * 2
	case i.SellPrice == 0:
		i.SellPrice = i.BuyPrice / 2
	}
}

// SetUseScript attaches s as the on-use script, releasing the previous one
func (i *Item) SetUseScript(s Script) {
	if i.UseScript != nil && i.UseScript != s {
		i.UseScript.Release()
	}
	i.UseScript = s
}

// SetEquipScript attaches s as the on-equip script, releasing the previous one
func (i *Item) SetEquipScript(s Script) {
	if i.EquipScript != nil && i.EquipScript != s {
		i.EquipScript.Release()
	}
	i.EquipScript = s
}

// ReleaseScripts drops both scripts
func (i *Item) ReleaseScripts() {
	i.SetUseScript(nil)
	i.SetEquipScript(nil)
}
