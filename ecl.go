package qrgen

// ErrorCorrectionLevel represents the four QR error correction levels.
type ErrorCorrectionLevel int

const (
	ECLevelL ErrorCorrectionLevel = iota // ~7% correction
	ECLevelM                             // ~15% correction
	ECLevelQ                             // ~25% correction
	ECLevelH                             // ~30% correction
)

// Bits returns the 2-bit format information encoding of this level.
func (ecl ErrorCorrectionLevel) Bits() int {
	switch ecl {
	case ECLevelL:
		return 0x01
	case ECLevelM:
		return 0x00
	case ECLevelQ:
		return 0x03
	case ECLevelH:
		return 0x02
	}
	return 0
}

// Ordinal returns the ordinal position (L=0, M=1, Q=2, H=3).
func (ecl ErrorCorrectionLevel) Ordinal() int {
	return int(ecl)
}

// String returns the level name.
func (ecl ErrorCorrectionLevel) String() string {
	switch ecl {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	}
	return "?"
}

// ValidFor reports whether this level is available for the given version.
// M1 offers error detection only and is keyed under L internally; H is never
// available in Micro symbols.
func (ecl ErrorCorrectionLevel) ValidFor(version int) bool {
	if ecl < ECLevelL || ecl > ECLevelH {
		return false
	}
	if !isMicro(version) {
		return true
	}
	switch version {
	case VersionM1:
		return ecl == ECLevelL
	case VersionM2, VersionM3:
		return ecl == ECLevelL || ecl == ECLevelM
	case VersionM4:
		return ecl != ECLevelH
	}
	return false
}

// microSymbolNumbers maps (micro index, level ordinal) to the symbol number
// carried in Micro format information.
var microSymbolNumbers = [4][3]int{
	{0, -1, -1}, // M1
	{1, 2, -1},  // M2
	{3, 4, -1},  // M3
	{5, 6, 7},   // M4
}

// microSymbolNumber returns the Micro format information symbol number for
// the given version and level, or -1 for an illegal combination.
func microSymbolNumber(version int, ecl ErrorCorrectionLevel) int {
	if !isMicro(version) || ecl < ECLevelL || ecl > ECLevelQ {
		return -1
	}
	return microSymbolNumbers[microIndex(version)][ecl.Ordinal()]
}
