package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		want      LineParts
		wantUse   bool
		wantEquip bool
	}{
		{
			name: "no scripts",
			line: "501,Red_Potion,Red Potion  \t",
			want: LineParts{Fixed: "501,Red_Potion,Red Potion"},
		},
		{
			name:    "use script only",
			line:    "501,Red_Potion, {itemheal 45;}",
			want:    LineParts{Fixed: "501,Red_Potion,", UseTail: "{itemheal 45;}"},
			wantUse: true,
		},
		{
			name:      "use and equip scripts",
			line:      "1201,Knife,{},{bonus bStr,1;}",
			want:      LineParts{Fixed: "1201,Knife,", UseTail: "{},{bonus bStr,1;}", EquipTail: "{bonus bStr,1;}"},
			wantUse:   true,
			wantEquip: true,
		},
		{
			name:      "adjacent blocks",
			line:      "1201,Knife,{use;}{equip;}",
			want:      LineParts{Fixed: "1201,Knife,", UseTail: "{use;}{equip;}", EquipTail: "{equip;}"},
			wantUse:   true,
			wantEquip: true,
		},
		{
			name:      "nested brace is taken as equip start",
			line:      "501,x,{if (a) {b;}}",
			want:      LineParts{Fixed: "501,x,", UseTail: "{if (a) {b;}}", EquipTail: "{b;}}"},
			wantUse:   true,
			wantEquip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLine(tt.line)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUse, got.HasUseScript())
			assert.Equal(t, tt.wantEquip, got.HasEquipScript())
		})
	}
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment(""))
	assert.True(t, IsComment("   \t"))
	assert.True(t, IsComment("// header"))
	assert.True(t, IsComment("   //indented"))
	assert.False(t, IsComment("501,Red_Potion"))
	assert.False(t, IsComment("/ 501"))
}
