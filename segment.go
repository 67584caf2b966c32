package qrgen

import (
	"fmt"

	"github.com/ericlevine/qrgen/bitutil"
	"github.com/ericlevine/qrgen/charset"
)

// Segment is one run of content encoded in a single mode. Bits holds the
// payload only; mode and character count headers are added during codeword
// assembly.
type Segment struct {
	Mode      Mode
	CharCount int
	Bits      *bitutil.BitBuffer
	Encoding  string // canonical name, byte and hanzi segments only
}

// eciHeaderNeeded reports whether this segment carries a byte encoding a
// reader would not assume by default.
func (s *Segment) eciHeaderNeeded() bool {
	if s.Mode != ModeByte || s.Encoding == "" || s.Encoding == charset.DefaultByteEncoding {
		return false
	}
	_, ok := charset.ECIValue(s.Encoding)
	return ok
}

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// alphanumericCode returns the alphanumeric code for a character, or -1.
func alphanumericCode(code int) int {
	if code >= 0 && code < 128 {
		return alphanumericTable[code]
	}
	return -1
}

// MakeSegment encodes content in the given mode. The encoding argument is
// honoured for byte segments and ignored otherwise; pass ModeAuto to let the
// best mode be chosen.
func MakeSegment(content string, mode Mode, encoding string) (*Segment, error) {
	if mode == ModeAuto {
		mode = ChooseMode(content)
	}
	switch mode {
	case ModeNumeric:
		return makeNumericSegment(content)
	case ModeAlphanumeric:
		return makeAlphanumericSegment(content)
	case ModeByte:
		return makeByteSegment(content, encoding)
	case ModeKanji:
		return makeKanjiSegment(content)
	case ModeHanzi:
		return makeHanziSegment(content)
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
}

// ChooseMode determines the most compact encoding mode for the content:
// numeric, then alphanumeric, then kanji, falling back to byte.
func ChooseMode(content string) Mode {
	hasNonDigit := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c < '0' || c > '9' {
			hasNonDigit = true
		}
		if alphanumericCode(int(c)) == -1 {
			if isKanji(content) {
				return ModeKanji
			}
			return ModeByte
		}
	}
	if content != "" && !hasNonDigit {
		return ModeNumeric
	}
	return ModeAlphanumeric
}

// isKanji reports whether content is entirely Shift JIS double-byte
// characters in the kanji mode ranges.
func isKanji(content string) bool {
	if content == "" {
		return false
	}
	raw, err := charset.EncodeBytes(content, charset.ShiftJIS)
	if err != nil || len(raw)%2 != 0 {
		return false
	}
	for i := 0; i < len(raw); i += 2 {
		c := int(raw[i])<<8 | int(raw[i+1])
		if !(c >= 0x8140 && c <= 0x9FFC) && !(c >= 0xE040 && c <= 0xEBBF) {
			return false
		}
	}
	return true
}

func makeNumericSegment(content string) (*Segment, error) {
	bits := bitutil.New()
	for i := 0; i < len(content); i++ {
		if content[i] < '0' || content[i] > '9' {
			return nil, fmt.Errorf("%w: %q is not numeric", ErrInvalidMode, content[i])
		}
	}
	// Groups of three digits in 10 bits; a 2-digit tail in 7, 1-digit in 4.
	for i := 0; i < len(content); i += 3 {
		end := i + 3
		if end > len(content) {
			end = len(content)
		}
		group := 0
		for _, c := range []byte(content[i:end]) {
			group = group*10 + int(c-'0')
		}
		bits.AppendUint(uint32(group), 1+3*(end-i))
	}
	return &Segment{Mode: ModeNumeric, CharCount: len(content), Bits: bits}, nil
}

func makeAlphanumericSegment(content string) (*Segment, error) {
	bits := bitutil.New()
	for i := 0; i < len(content); i += 2 {
		code1 := alphanumericCode(int(content[i]))
		if code1 == -1 {
			return nil, fmt.Errorf("%w: %q is not alphanumeric", ErrInvalidMode, content[i])
		}
		if i+1 < len(content) {
			code2 := alphanumericCode(int(content[i+1]))
			if code2 == -1 {
				return nil, fmt.Errorf("%w: %q is not alphanumeric", ErrInvalidMode, content[i+1])
			}
			bits.AppendUint(uint32(code1*45+code2), 11)
		} else {
			bits.AppendUint(uint32(code1), 6)
		}
	}
	return &Segment{Mode: ModeAlphanumeric, CharCount: len(content), Bits: bits}, nil
}

func makeByteSegment(content, encoding string) (*Segment, error) {
	preferred := ""
	if encoding != "" {
		preferred = charset.Normalize(encoding)
		if preferred == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, encoding)
		}
	}
	raw, name, err := charset.SelectByteEncoding(content, preferred)
	if err != nil {
		return nil, fmt.Errorf("%w: content not representable in any supported byte encoding", ErrInvalidContent)
	}
	bits := bitutil.New()
	for _, c := range raw {
		bits.AppendUint(uint32(c), 8)
	}
	return &Segment{Mode: ModeByte, CharCount: len(raw), Bits: bits, Encoding: name}, nil
}

func makeKanjiSegment(content string) (*Segment, error) {
	raw, err := charset.EncodeBytes(content, charset.ShiftJIS)
	if err != nil || len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: content is not two-byte Shift JIS", ErrInvalidMode)
	}
	bits := bitutil.New()
	for i := 0; i < len(raw); i += 2 {
		c := int(raw[i])<<8 | int(raw[i+1])
		var d int
		switch {
		case c >= 0x8140 && c <= 0x9FFC:
			d = c - 0x8140
		case c >= 0xE040 && c <= 0xEBBF:
			d = c - 0xC140
		default:
			return nil, fmt.Errorf("%w: 0x%04X outside the kanji ranges", ErrInvalidMode, c)
		}
		bits.AppendUint(uint32((d>>8)*0xC0+(d&0xFF)), 13)
	}
	return &Segment{Mode: ModeKanji, CharCount: len(raw) / 2, Bits: bits}, nil
}

func makeHanziSegment(content string) (*Segment, error) {
	raw, err := charset.EncodeBytes(content, charset.GB2312)
	if err != nil || len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: content is not two-byte GB2312", ErrInvalidMode)
	}
	bits := bitutil.New()
	for i := 0; i < len(raw); i += 2 {
		c := int(raw[i])<<8 | int(raw[i+1])
		var d int
		switch {
		case c >= 0xA1A1 && c <= 0xAAFE:
			d = c - 0xA1A1
		case c >= 0xB0A1 && c <= 0xFAFE:
			d = c - 0xA6A1
		default:
			return nil, fmt.Errorf("%w: 0x%04X outside the hanzi ranges", ErrInvalidMode, c)
		}
		bits.AppendUint(uint32((d>>8)*0x60+(d&0xFF)), 13)
	}
	return &Segment{Mode: ModeHanzi, CharCount: len(raw) / 2, Bits: bits, Encoding: charset.GB2312}, nil
}

// Segments is an ordered segment list.
type Segments []*Segment

// Add appends a segment, merging it into the previous one when mode and
// encoding match.
func (s Segments) Add(seg *Segment) Segments {
	if n := len(s); n > 0 {
		prev := s[n-1]
		if prev.Mode == seg.Mode && prev.Encoding == seg.Encoding {
			merged := &Segment{
				Mode:      prev.Mode,
				CharCount: prev.CharCount + seg.CharCount,
				Bits:      prev.Bits.Clone(),
				Encoding:  prev.Encoding,
			}
			merged.Bits.AppendBuffer(seg.Bits)
			return append(s[:n-1], merged)
		}
	}
	return append(s, seg)
}
