package qrgen

import "strings"

// Symbol is the encoded QR symbol: the module matrix plus the parameters
// that produced it. A returned Symbol is never modified by this package.
type Symbol struct {
	Matrix   *ByteMatrix // module values, 1 = dark; row-major, top-left origin
	Version  int         // 1..40, or VersionM1..VersionM4
	Level    ErrorCorrectionLevel
	Mask     int
	Segments Segments
}

// Size returns the number of modules per side.
func (s *Symbol) Size() int {
	return sideLength(s.Version)
}

// IsMicro reports whether this is a Micro QR symbol.
func (s *Symbol) IsMicro() bool {
	return isMicro(s.Version)
}

// VersionName returns "1".."40" or "M1".."M4".
func (s *Symbol) VersionName() string {
	return versionName(s.Version)
}

// Dark reports whether the module at (x, y) is dark.
func (s *Symbol) Dark(x, y int) bool {
	return s.Matrix.Get(x, y) == 1
}

// String returns a visual representation of the symbol.
func (s *Symbol) String() string {
	var sb strings.Builder
	for y := 0; y < s.Matrix.Height; y++ {
		for x := 0; x < s.Matrix.Width; x++ {
			if s.Matrix.Get(x, y) == 1 {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
