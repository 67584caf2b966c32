package qrgen

// Mode represents a QR data encoding mode.
type Mode int

const (
	ModeAuto         Mode = 0x00
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
	ModeECI          Mode = 0x07
	ModeKanji        Mode = 0x08
	ModeHanzi        Mode = 0x0D
)

// characterCountBits contains [v1-9, v10-26, v27-40] bit counts per mode.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
	ModeKanji:        {8, 10, 12},
	ModeHanzi:        {8, 10, 12},
}

// microCharacterCountBits contains [M1, M2, M3, M4] bit counts per mode.
// A zero entry means the mode is not available in that Micro version.
var microCharacterCountBits = map[Mode][4]int{
	ModeNumeric:      {3, 4, 5, 6},
	ModeAlphanumeric: {0, 3, 4, 5},
	ModeByte:         {0, 0, 4, 5},
	ModeKanji:        {0, 0, 3, 4},
}

// microModeNumbers maps modes to their Micro QR mode indicator values.
var microModeNumbers = map[Mode]int{
	ModeNumeric:      0,
	ModeAlphanumeric: 1,
	ModeByte:         2,
	ModeKanji:        3,
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeByte:
		return "byte"
	case ModeECI:
		return "ECI"
	case ModeKanji:
		return "kanji"
	case ModeHanzi:
		return "hanzi"
	}
	return "?"
}

// CharacterCountBits returns the width of the character count indicator for
// this mode in the given version.
func (m Mode) CharacterCountBits(version int) int {
	if isMicro(version) {
		return microCharacterCountBits[m][microIndex(version)]
	}
	var offset int
	switch {
	case version <= 9:
		offset = 0
	case version <= 26:
		offset = 1
	default:
		offset = 2
	}
	return characterCountBits[m][offset]
}

// IndicatorBits returns the mode indicator value and its width for the given
// version. Regular versions use a fixed 4-bit indicator; Micro versions use
// 0 to 3 bits with their own mode numbering.
func (m Mode) IndicatorBits(version int) (value, numBits int) {
	if !isMicro(version) {
		return int(m), 4
	}
	return microModeNumbers[m], microIndex(version)
}

// ValidFor reports whether this mode may appear in the given version.
func (m Mode) ValidFor(version int) bool {
	if !isMicro(version) {
		switch m {
		case ModeNumeric, ModeAlphanumeric, ModeByte, ModeKanji, ModeHanzi:
			return true
		}
		return false
	}
	if m == ModeHanzi {
		return false
	}
	return m.CharacterCountBits(version) > 0
}
