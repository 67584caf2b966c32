// Package reedsolomon generates Reed-Solomon error-correction codewords
// over GF(2^8) as used by QR symbols.
package reedsolomon

// Field is a GF(2^n) Galois field backed by log/exp tables.
type Field struct {
	expTable  []int
	logTable  []int
	size      int
	primitive int
}

// QRCodeField256 is GF(256) with primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1, the field of the QR error-correction code.
var QRCodeField256 = NewField(0x011D, 256)

// NewField creates a GF(size) using the given primitive polynomial.
func NewField(primitive, size int) *Field {
	f := &Field{
		primitive: primitive,
		size:      size,
		expTable:  make([]int, size),
		logTable:  make([]int, size),
	}
	x := 1
	for i := 0; i < size; i++ {
		f.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		f.logTable[f.expTable[i]] = i
	}
	return f
}

// Exp returns 2^a in this field.
func (f *Field) Exp(a int) int {
	return f.expTable[a%(f.size-1)]
}

// Log returns log2(a) in this field.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return f.logTable[a]
}

// Multiply returns a * b in this field.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTable[(f.logTable[a]+f.logTable[b])%(f.size-1)]
}

// Size returns the size of the field.
func (f *Field) Size() int { return f.size }
