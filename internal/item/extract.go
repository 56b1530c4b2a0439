package item

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/ItemRegistry_Go/internal/domain"
)

// Sentinel errors for field extraction
var (
	ErrFieldCount = errors.New("wrong field count")
	ErrFieldValue = errors.New("bad field value")
)

// FieldError reports the first field of a line that failed to convert
type FieldError struct {
	Index int
	Name  string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %d (%s) %q: %v", e.Index+1, e.Name, e.Value, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrFieldValue, e.Err}
}

type fieldParser func(it *domain.Item, raw string) error

type fieldSlot struct {
	name  string
	parse fieldParser
}

// itemFields lists the fixed fields of an item line in file order
var itemFields = [FieldCount]fieldSlot{
	{"id", intField(func(it *domain.Item) *int { return &it.ID })},
	{"alias", nameField(func(it *domain.Item) *string { return &it.Alias })},
	{"display_name", nameField(func(it *domain.Item) *string { return &it.DisplayName })},
	{"class", classField},
	{"buy_price", priceField(func(it *domain.Item) *int { return &it.BuyPrice })},
	{"sell_price", priceField(func(it *domain.Item) *int { return &it.SellPrice })},
	{"weight", intField(func(it *domain.Item) *int { return &it.Weight })},
	{"attack", intField(func(it *domain.Item) *int { return &it.Attack })},
	{"defense", intField(func(it *domain.Item) *int { return &it.Defense })},
	{"range", intField(func(it *domain.Item) *int { return &it.Range })},
	{"magic_bonus", intField(func(it *domain.Item) *int { return &it.MagicBonus })},
	// Slot count is still part of the file format but nothing reads it.
	{"slot_count", intField(func(*domain.Item) *int { return new(int) })},
	{"sex", sexField},
	{"equip_slots", intField(func(it *domain.Item) *int { return &it.EquipSlots })},
	{"weapon_level", intField(func(it *domain.Item) *int { return &it.WeaponLevel })},
	{"equip_level", intField(func(it *domain.Item) *int { return &it.EquipLevel })},
	{"look", intField(func(it *domain.Item) *int { return &it.Look })},
}

// ExtractFields converts the fixed part of an item line into an Item.
// Leading whitespace of every field is ignored and one trailing separator is
// tolerated. On error the returned Item is the zero value.
func ExtractFields(fixed string) (domain.Item, error) {
	fields := strings.Split(fixed, FieldSeparator)
	if len(fields) == FieldCount+1 && strings.TrimSpace(fields[FieldCount]) == "" {
		fields = fields[:FieldCount]
	}
	if len(fields) != FieldCount {
		return domain.Item{}, fmt.Errorf("%w: "+ErrMsgFieldCount, ErrFieldCount, FieldCount, len(fields))
	}

	var it domain.Item
	for i, slot := range itemFields {
		raw := strings.TrimLeft(fields[i], " \t")
		if err := slot.parse(&it, raw); err != nil {
			return domain.Item{}, &FieldError{Index: i, Name: slot.name, Value: raw, Err: err}
		}
	}
	return it, nil
}

func intField(target func(*domain.Item) *int) fieldParser {
	return func(it *domain.Item, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*target(it) = v
		return nil
	}
}

func priceField(target func(*domain.Item) *int) fieldParser {
	return func(it *domain.Item, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		if v < 0 {
			return errors.New(ErrMsgNegativePrice)
		}
		*target(it) = v
		return nil
	}
}

func nameField(target func(*domain.Item) *string) fieldParser {
	return func(it *domain.Item, raw string) error {
		if err := validateItemName(raw); err != nil {
			return err
		}
		*target(it) = raw
		return nil
	}
}

func classField(it *domain.Item, raw string) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	class := domain.ItemClass(v)
	if !class.Valid() {
		return fmt.Errorf(ErrMsgUnknownClass, v)
	}
	it.Class = class
	return nil
}

func sexField(it *domain.Item, raw string) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	sex := domain.Sex(v)
	if !sex.Valid() {
		return fmt.Errorf(ErrMsgUnknownSex, v)
	}
	it.Sex = sex
	return nil
}

func validateItemName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidItemName, ErrMsgEmptyName)
	}
	if len(name) > domain.ItemNameMaxLen {
		return fmt.Errorf("%w: "+ErrMsgNameTooLong, domain.ErrInvalidItemName, domain.ItemNameMaxLen)
	}
	return nil
}
