package item

import "strings"

// LineParts is an item line cut into its fixed fields and script tails.
// UseTail runs from the first '{' to the end of the line. EquipTail runs from
// the next '{' after that one, so it is empty when the line has one block.
type LineParts struct {
	Fixed     string
	UseTail   string
	EquipTail string
}

// HasUseScript reports whether the line carries a use-script block
func (p LineParts) HasUseScript() bool {
	return p.UseTail != ""
}

// HasEquipScript reports whether the line carries an equip-script block
func (p LineParts) HasEquipScript() bool {
	return strings.TrimSpace(p.EquipTail) != ""
}

// SplitLine separates the fixed fields of line from its script tail
func SplitLine(line string) LineParts {
	open := strings.IndexByte(line, ScriptOpen)
	if open < 0 {
		return LineParts{Fixed: trimRight(line)}
	}

	parts := LineParts{
		Fixed:   trimRight(line[:open]),
		UseTail: line[open:],
	}
	// The search starts one past the first '{'; a nested brace in the use
	// script is taken as the start of the equip script.
	if next := strings.IndexByte(line[open+1:], ScriptOpen); next >= 0 {
		parts.EquipTail = line[open+1+next:]
	}
	return parts
}

// IsComment reports whether the loader should skip line
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix)
}

func trimRight(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}
