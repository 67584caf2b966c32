// Package qrgen encodes text into QR and Micro QR symbol matrices.
package qrgen

import "fmt"

// Options configures encoding behavior. The zero value selects the smallest
// fitting symbol with auto-detected mode and mask. Optional fields whose
// zero value is meaningful are pointers.
type Options struct {
	// Level pins the error correction level. When nil the level is chosen
	// automatically: L for regular symbols, per-version for Micro.
	Level *ErrorCorrectionLevel

	// Version pins the symbol version: 1..40 or VersionM1..VersionM4.
	// Zero selects the smallest fitting version.
	Version int

	// Mode forces a single mode for all content. ModeAuto detects it.
	Mode Mode

	// Mask pins the data mask index (0..7 regular, 0..3 Micro). When nil
	// the best-scoring mask is chosen.
	Mask *int

	// Encoding names the preferred byte-mode text encoding.
	Encoding string

	// ECI emits an ECI header for non-default byte encodings.
	ECI bool

	// Micro is the three-valued Micro QR preference.
	Micro MicroMode

	// DisableBoost keeps the automatically chosen error level instead of
	// raising it to the maximum that still fits the chosen version.
	DisableBoost bool
}

// Encode encodes content into a Symbol.
func Encode(content string, opts *Options) (*Symbol, error) {
	if opts == nil {
		opts = &Options{}
	}
	if content == "" {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidInput)
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	seg, err := MakeSegment(content, opts.Mode, opts.Encoding)
	if err != nil {
		return nil, err
	}
	segments := Segments{}.Add(seg)

	version, level, err := selectVersion(segments, opts)
	if err != nil {
		return nil, err
	}

	codewords, err := assembleCodewords(segments, version, level, opts.ECI)
	if err != nil {
		return nil, err
	}

	dimension := sideLength(version)
	matrix := NewByteMatrix(dimension, dimension)

	var mask int
	if opts.Mask != nil {
		mask = *opts.Mask
		if mask >= numMaskPatterns(version) {
			return nil, fmt.Errorf("%w: %d is out of range for version %s", ErrInvalidMask, mask, versionName(version))
		}
	} else {
		mask = chooseMaskPattern(codewords, level, version, matrix)
	}
	buildMatrix(codewords, level, version, mask, matrix)

	return &Symbol{
		Matrix:   matrix,
		Version:  version,
		Level:    level,
		Mask:     mask,
		Segments: segments,
	}, nil
}

func validateOptions(opts *Options) error {
	if opts.Version != 0 {
		if !isValidVersion(opts.Version) {
			return fmt.Errorf("%w: %d", ErrInvalidVersion, opts.Version)
		}
		if isMicro(opts.Version) && opts.Micro == MicroForbidden {
			return fmt.Errorf("%w: %s requested with Micro forbidden", ErrInvalidVersion, versionName(opts.Version))
		}
		if !isMicro(opts.Version) && opts.Micro == MicroRequired {
			return fmt.Errorf("%w: %s requested with Micro required", ErrInvalidVersion, versionName(opts.Version))
		}
	}
	if opts.Level != nil {
		l := *opts.Level
		if l < ECLevelL || l > ECLevelH {
			return fmt.Errorf("%w: %d", ErrInvalidErrorLevel, int(l))
		}
		if l == ECLevelH && (opts.Micro == MicroRequired || isMicro(opts.Version)) {
			return fmt.Errorf("%w: H is not available for Micro QR", ErrInvalidErrorLevel)
		}
		if opts.Version != 0 && !l.ValidFor(opts.Version) {
			return fmt.Errorf("%w: %s is not available for version %s", ErrInvalidErrorLevel, l, versionName(opts.Version))
		}
	}
	switch opts.Mode {
	case ModeAuto, ModeNumeric, ModeAlphanumeric, ModeByte, ModeKanji, ModeHanzi:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(opts.Mode))
	}
	if opts.Mode == ModeHanzi && opts.Micro == MicroRequired {
		return fmt.Errorf("%w: hanzi is not available for Micro QR", ErrInvalidMode)
	}
	if opts.Mode != ModeAuto && opts.Version != 0 && !opts.Mode.ValidFor(opts.Version) {
		return fmt.Errorf("%w: %s is not available for version %s", ErrInvalidMode, opts.Mode, versionName(opts.Version))
	}
	if opts.ECI && opts.Micro == MicroRequired {
		return fmt.Errorf("%w: ECI is not available for Micro QR", ErrInvalidMode)
	}
	if opts.Mask != nil {
		maxMask := 7
		if opts.Micro == MicroRequired || isMicro(opts.Version) {
			maxMask = 3
		}
		if *opts.Mask < 0 || *opts.Mask > maxMask {
			return fmt.Errorf("%w: %d", ErrInvalidMask, *opts.Mask)
		}
	}
	return nil
}

// selectVersion resolves the symbol version and error level from the options
// and the segment list, applying error boosting when the level was not
// pinned by the caller.
func selectVersion(segments []*Segment, opts *Options) (int, ErrorCorrectionLevel, error) {
	var version int
	var level ErrorCorrectionLevel
	if opts.Version != 0 {
		version = opts.Version
		level = ECLevelL
		if opts.Level != nil {
			level = *opts.Level
		}
		for _, seg := range segments {
			if !seg.Mode.ValidFor(version) {
				return 0, 0, fmt.Errorf("%w: %s is not available for version %s", ErrInvalidMode, seg.Mode, versionName(version))
			}
		}
		if !level.ValidFor(version) {
			return 0, 0, fmt.Errorf("%w: %s is not available for version %s", ErrInvalidErrorLevel, level, versionName(version))
		}
		if !fits(segments, version, level, opts.ECI) {
			return 0, 0, fmt.Errorf("%w: content does not fit version %s-%s", ErrDataOverflow, versionName(version), level)
		}
	} else {
		var err error
		version, level, err = chooseVersion(segments, opts.Level, opts.Micro, opts.ECI)
		if err != nil {
			return 0, 0, err
		}
	}
	if opts.Level == nil && !opts.DisableBoost {
		level = boostLevel(segments, version, level, opts.ECI)
	}
	return version, level, nil
}
