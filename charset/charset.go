// Package charset provides the text encodings and ECI assignment numbers
// used when serialising QR byte and hanzi segments.
package charset

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding indicates an encoding name this package cannot map.
var ErrUnknownEncoding = errors.New("charset: unknown encoding")

// Canonical encoding names. Callers may pass any common alias; Normalize
// folds them onto these.
const (
	Latin1   = "iso-8859-1"
	ShiftJIS = "shift-jis"
	UTF8     = "utf-8"
	GB2312   = "gb2312"
)

// DefaultByteEncoding is the interpretation a reader assumes for byte
// segments when no ECI header is present.
const DefaultByteEncoding = Latin1

var aliases = map[string]string{
	"iso88591": Latin1,
	"latin1":   Latin1,
	"latin":    Latin1,
	"shiftjis": ShiftJIS,
	"sjis":     ShiftJIS,
	"utf8":     UTF8,
	"gb2312":   GB2312,
	"gbk":      GB2312,
	"gb18030":  GB2312,
	"euccn":    GB2312,
	"usascii":  Latin1,
	"ascii":    Latin1,
}

// eciValues maps canonical names to ECI assignment numbers.
var eciValues = map[string]int{
	Latin1:   3,
	ShiftJIS: 20,
	UTF8:     26,
	GB2312:   29,
}

// x/text has no standalone GB2312 codec; GB18030 is byte-identical on the
// GB2312 range.
var encoders = map[string]encoding.Encoding{
	Latin1:   charmap.ISO8859_1,
	ShiftJIS: japanese.ShiftJIS,
	GB2312:   simplifiedchinese.GB18030,
}

// Normalize folds an encoding name onto its canonical form, or returns an
// empty string if the name is unknown.
func Normalize(name string) string {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
	return aliases[key]
}

// ECIValue returns the ECI assignment number for a canonical encoding name.
func ECIValue(name string) (int, bool) {
	v, ok := eciValues[name]
	return v, ok
}

// EncodeBytes converts UTF-8 text to the given canonical encoding.
func EncodeBytes(s, name string) ([]byte, error) {
	if name == UTF8 {
		if !utf8.ValidString(s) {
			return nil, ErrUnknownEncoding
		}
		return []byte(s), nil
	}
	enc, ok := encoders[name]
	if !ok {
		return nil, ErrUnknownEncoding
	}
	// x/text encoders fail on unsupported runes rather than substituting.
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SelectByteEncoding converts s to bytes using the first encoding that can
// represent it: the preferred one (if any), then ISO-8859-1, Shift JIS and
// UTF-8. It returns the bytes and the canonical name of the winner.
func SelectByteEncoding(s, preferred string) ([]byte, string, error) {
	candidates := []string{Latin1, ShiftJIS, UTF8}
	if preferred != "" {
		candidates = append([]string{preferred}, candidates...)
	}
	for _, name := range candidates {
		if out, err := EncodeBytes(s, name); err == nil {
			return out, name, nil
		}
	}
	return nil, "", ErrUnknownEncoding
}
