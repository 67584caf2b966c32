package reedsolomon

// Encoder computes error-correction codewords by polynomial division.
// Generator polynomials are built once per degree and cached; an Encoder is
// not safe for concurrent use.
type Encoder struct {
	field *Field
	// generators[d] holds the value-domain coefficients of the degree-d
	// generator (x-a^0)(x-a^1)...(x-a^(d-1)), highest degree first, monic
	// leading 1 included.
	generators [][]int
	// generatorLogs[d] holds the log-domain coefficients after the monic
	// term, the form the division loop consumes.
	generatorLogs [][]int
}

// NewEncoder creates an Encoder for the given field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{
		field:         field,
		generators:    [][]int{{1}},
		generatorLogs: [][]int{{}},
	}
}

func (e *Encoder) generator(degree int) []int {
	for d := len(e.generators); d <= degree; d++ {
		prev := e.generators[d-1]
		root := e.field.Exp(d - 1)
		next := make([]int, d+1)
		for i := 0; i <= d; i++ {
			var v int
			if i < d {
				v = prev[i]
			}
			if i > 0 {
				v ^= e.field.Multiply(prev[i-1], root)
			}
			next[i] = v
		}
		logs := make([]int, d)
		for i := 1; i <= d; i++ {
			logs[i-1] = e.field.Log(next[i])
		}
		e.generators = append(e.generators, next)
		e.generatorLogs = append(e.generatorLogs, logs)
	}
	return e.generatorLogs[degree]
}

// Generator returns the value-domain coefficients of the degree-d generator
// polynomial, highest degree first.
func (e *Encoder) Generator(degree int) []int {
	e.generator(degree)
	out := make([]int, degree+1)
	copy(out, e.generators[degree])
	return out
}

// ECBytes returns numEC error-correction codewords for the given data
// codewords: the remainder of data(x)*x^numEC divided by the degree-numEC
// generator polynomial.
func (e *Encoder) ECBytes(data []byte, numEC int) []byte {
	if numEC <= 0 {
		panic("reedsolomon: no error correction bytes")
	}
	genLog := e.generator(numEC)
	rem := make([]byte, numEC)
	for _, c := range data {
		factor := int(c) ^ int(rem[0])
		copy(rem, rem[1:])
		rem[numEC-1] = 0
		if factor != 0 {
			lf := e.field.Log(factor)
			for j := 0; j < numEC; j++ {
				rem[j] ^= byte(e.field.Exp(lf + genLog[j]))
			}
		}
	}
	return rem
}
