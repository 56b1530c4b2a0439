package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingScript struct {
	released int
}

func (s *countingScript) Source() string { return "" }
func (s *countingScript) Line() int      { return 0 }
func (s *countingScript) Release()       { s.released++ }

func TestItem_DerivePrices(t *testing.T) {
	tests := []struct {
		name              string
		buy, sell         int
		wantBuy, wantSell int
	}{
		{"both zero", 0, 0, 0, 0},
		{"sell only", 0, 25, 50, 25},
		{"buy only", 50, 0, 50, 25},
		{"odd buy rounds down", 11, 0, 11, 5},
		{"both set", 40, 3, 40, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{BuyPrice: tt.buy, SellPrice: tt.sell}
			it.DerivePrices()
			assert.Equal(t, tt.wantBuy, it.BuyPrice)
			assert.Equal(t, tt.wantSell, it.SellPrice)
		})
	}
}

func TestItem_SetScriptsReleasePrevious(t *testing.T) {
	var it Item
	first := &countingScript{}
	second := &countingScript{}

	it.SetUseScript(first)
	it.SetUseScript(first)
	assert.Equal(t, 0, first.released, "same handle is not released")

	it.SetUseScript(second)
	assert.Equal(t, 1, first.released)
	assert.Same(t, second, it.UseScript)

	equip := &countingScript{}
	it.SetEquipScript(equip)
	it.ReleaseScripts()
	assert.Equal(t, 1, second.released)
	assert.Equal(t, 1, equip.released)
	assert.Nil(t, it.UseScript)
	assert.Nil(t, it.EquipScript)
}

func TestItemClass(t *testing.T) {
	assert.Equal(t, "USE", ClassUse.String())
	assert.Equal(t, "ARROW", ClassArrow.String())
	assert.Equal(t, "CLASS_6", Class6.String())
	assert.True(t, ClassArrow.Valid())
	assert.False(t, ItemClass(11).Valid())
	assert.False(t, ItemClass(-1).Valid())
}

func TestSex(t *testing.T) {
	assert.Equal(t, "NEUTRAL", SexNeutral.String())
	assert.True(t, SexFemale.Valid())
	assert.False(t, Sex(3).Valid())
}
