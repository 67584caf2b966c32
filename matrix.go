package qrgen

import "github.com/ericlevine/qrgen/bitutil"

// emptyCell marks modules not yet painted. It never survives into a Symbol.
const emptyCell = 0xFF

// ByteMatrix is a simple 2D byte matrix holding module values.
type ByteMatrix struct {
	Data          [][]byte
	Width, Height int
}

// NewByteMatrix creates a new ByteMatrix.
func NewByteMatrix(width, height int) *ByteMatrix {
	data := make([][]byte, height)
	for i := range data {
		data[i] = make([]byte, width)
	}
	return &ByteMatrix{Data: data, Width: width, Height: height}
}

// Get returns the value at (x, y).
func (bm *ByteMatrix) Get(x, y int) byte { return bm.Data[y][x] }

// Set sets the value at (x, y).
func (bm *ByteMatrix) Set(x, y int, value byte) { bm.Data[y][x] = value }

// SetBool sets the value at (x, y) as 1 (true) or 0 (false).
func (bm *ByteMatrix) SetBool(x, y int, value bool) {
	if value {
		bm.Data[y][x] = 1
	} else {
		bm.Data[y][x] = 0
	}
}

// Clear fills the matrix with the given value.
func (bm *ByteMatrix) Clear(value byte) {
	for y := range bm.Data {
		for x := range bm.Data[y] {
			bm.Data[y][x] = value
		}
	}
}

// Clone returns a deep copy.
func (bm *ByteMatrix) Clone() *ByteMatrix {
	out := NewByteMatrix(bm.Width, bm.Height)
	for y := range bm.Data {
		copy(out.Data[y], bm.Data[y])
	}
	return out
}

// buildMatrix paints the full symbol: function patterns, format and version
// information, then the masked data bits.
func buildMatrix(dataBits *bitutil.BitBuffer, ecLevel ErrorCorrectionLevel,
	version int, maskPattern int, matrix *ByteMatrix) {

	matrix.Clear(emptyCell)

	embedFunctionPatterns(version, matrix)
	embedFormatInfo(version, ecLevel, maskPattern, matrix)
	maybeEmbedVersionInfo(version, matrix)
	embedDataBits(dataBits, version, maskPattern, matrix)
}

// finderPattern is the 7x7 position detection pattern.
var finderPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// alignmentPattern is the 5x5 position adjustment pattern.
var alignmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

func embedFunctionPatterns(version int, matrix *ByteMatrix) {
	if isMicro(version) {
		embedFinderPattern(0, 0, matrix)
		embedHorizontalSeparator(0, 7, matrix)
		embedVerticalSeparator(7, 0, matrix)
		embedMicroTimingPatterns(matrix)
		return
	}

	embedFinderPattern(0, 0, matrix)
	embedFinderPattern(matrix.Width-7, 0, matrix)
	embedFinderPattern(0, matrix.Height-7, matrix)

	embedHorizontalSeparator(0, 7, matrix)
	embedHorizontalSeparator(matrix.Width-8, 7, matrix)
	embedHorizontalSeparator(0, matrix.Height-8, matrix)

	embedVerticalSeparator(7, 0, matrix)
	embedVerticalSeparator(matrix.Width-8, 0, matrix)
	embedVerticalSeparator(7, matrix.Height-7, matrix)

	if version >= 2 {
		embedAlignmentPatterns(version, matrix)
	}

	embedTimingPatterns(matrix)

	// Dark module
	matrix.Set(8, matrix.Height-8, 1)
}

func embedFinderPattern(xStart, yStart int, matrix *ByteMatrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			matrix.Set(xStart+x, yStart+y, finderPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, matrix *ByteMatrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < matrix.Width {
			matrix.Set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, matrix *ByteMatrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < matrix.Height {
			matrix.Set(xStart, yStart+y, 0)
		}
	}
}

func embedAlignmentPatterns(version int, matrix *ByteMatrix) {
	v, err := versionForNumber(version)
	if err != nil {
		return
	}
	centers := v.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			// Skip positions already occupied by a finder pattern.
			if matrix.Get(cx, cy) != emptyCell {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					matrix.Set(cx-2+x, cy-2+y, alignmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(matrix *ByteMatrix) {
	for i := 8; i < matrix.Width-8; i++ {
		bit := byte((i + 1) % 2)
		if matrix.Get(i, 6) == emptyCell {
			matrix.Set(i, 6, bit)
		}
		if matrix.Get(6, i) == emptyCell {
			matrix.Set(6, i, bit)
		}
	}
}

// embedMicroTimingPatterns draws the timing patterns along row 0 and
// column 0, starting after the finder region.
func embedMicroTimingPatterns(matrix *ByteMatrix) {
	for i := 8; i < matrix.Width; i++ {
		bit := byte((i + 1) % 2)
		matrix.Set(i, 0, bit)
		matrix.Set(0, i, bit)
	}
}

// embedDataBits walks the placement order and writes every unreserved module
// from the codeword stream, applying the mask predicate as it goes. Modules
// past the end of the stream are written as masked zero bits.
func embedDataBits(dataBits *bitutil.BitBuffer, version int, maskPattern int, matrix *ByteMatrix) {
	mask := maskFunc(version, maskPattern)
	bitIndex := 0
	dimension := matrix.Height

	for j := dimension - 1; j > 0; j -= 2 {
		if !isMicro(version) && j == 6 {
			j-- // skip the vertical timing column
		}
		for count := 0; count < dimension; count++ {
			upward := (((dimension - 1 - j) / 2) & 1) == 0
			i := count
			if upward {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if matrix.Get(x, i) != emptyCell {
					continue
				}
				var bit bool
				if bitIndex < dataBits.Len() {
					bit = dataBits.Get(bitIndex)
					bitIndex++
				}
				if mask(i, x) {
					bit = !bit
				}
				matrix.SetBool(x, i, bit)
			}
		}
	}
}
