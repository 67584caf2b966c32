package qrgen

import "errors"

var (
	// ErrDataOverflow is returned when no permitted version can hold the content.
	ErrDataOverflow = errors.New("qrgen: data overflow")

	// ErrInvalidVersion is returned for an unknown or unusable version.
	ErrInvalidVersion = errors.New("qrgen: invalid version")

	// ErrInvalidMode is returned when content cannot be encoded in the requested mode.
	ErrInvalidMode = errors.New("qrgen: invalid mode")

	// ErrInvalidErrorLevel is returned for an error level the symbol kind does not permit.
	ErrInvalidErrorLevel = errors.New("qrgen: invalid error correction level")

	// ErrInvalidMask is returned for a mask index out of range for the symbol kind.
	ErrInvalidMask = errors.New("qrgen: invalid mask")

	// ErrInvalidInput is returned for unusable input, such as empty content.
	ErrInvalidInput = errors.New("qrgen: invalid input")

	// ErrInvalidContent is returned when content cannot be represented at all.
	ErrInvalidContent = errors.New("qrgen: invalid content")

	// ErrInvalidEncoding is returned for an unsupported encoding name.
	ErrInvalidEncoding = errors.New("qrgen: invalid encoding")
)
