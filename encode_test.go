package qrgen

import (
	"errors"
	"strings"
	"testing"
)

func levelPtr(l ErrorCorrectionLevel) *ErrorCorrectionLevel { return &l }

func TestEncodeHelloWorld(t *testing.T) {
	sym, err := Encode("HELLO WORLD", &Options{Level: levelPtr(ECLevelQ), Version: 1})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Version != 1 || sym.Level != ECLevelQ {
		t.Errorf("got %s-%s, want 1-Q", sym.VersionName(), sym.Level)
	}
	if sym.Size() != 21 {
		t.Errorf("Size() = %d, want 21", sym.Size())
	}
	if len(sym.Segments) != 1 || sym.Segments[0].Mode != ModeAlphanumeric {
		t.Errorf("unexpected segments: %+v", sym.Segments)
	}
	if sym.Mask < 0 || sym.Mask > 7 {
		t.Errorf("Mask = %d, out of range", sym.Mask)
	}
}

func TestEncodeNumericV1M(t *testing.T) {
	sym, err := Encode("01234567", &Options{Level: levelPtr(ECLevelM), Version: 1})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Version != 1 || sym.Level != ECLevelM {
		t.Errorf("got %s-%s, want 1-M", sym.VersionName(), sym.Level)
	}
	if sym.Segments[0].Mode != ModeNumeric {
		t.Errorf("mode = %s, want numeric", sym.Segments[0].Mode)
	}
}

func TestEncodeEmptyContent(t *testing.T) {
	_, err := Encode("", nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestEncodeDigitCapacityBoundary(t *testing.T) {
	if _, err := Encode(strings.Repeat("9", 7089), &Options{Micro: MicroForbidden}); err != nil {
		t.Errorf("7089 digits must fit v40-L: %v", err)
	}
	_, err := Encode(strings.Repeat("9", 7090), &Options{Micro: MicroForbidden})
	if !errors.Is(err, ErrDataOverflow) {
		t.Errorf("err = %v, want ErrDataOverflow", err)
	}
}

func TestEncodeForcedNumericRejectsLetters(t *testing.T) {
	_, err := Encode("1234a", &Options{Mode: ModeNumeric})
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}

	// Auto detection falls back instead of failing.
	sym, err := Encode("1234a", &Options{Micro: MicroForbidden})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Segments[0].Mode != ModeByte {
		t.Errorf("mode = %s, want byte ('a' is not alphanumeric)", sym.Segments[0].Mode)
	}
	sym, err = Encode("1234A", &Options{Micro: MicroForbidden})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Segments[0].Mode != ModeAlphanumeric {
		t.Errorf("mode = %s, want alphanumeric", sym.Segments[0].Mode)
	}
}

func TestEncodeMicroRejectsH(t *testing.T) {
	_, err := Encode("123", &Options{Micro: MicroRequired, Level: levelPtr(ECLevelH)})
	if !errors.Is(err, ErrInvalidErrorLevel) {
		t.Errorf("err = %v, want ErrInvalidErrorLevel", err)
	}
}

func TestEncodeMicroRejectsHanzi(t *testing.T) {
	_, err := Encode("啊", &Options{Micro: MicroRequired, Mode: ModeHanzi})
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
}

func TestEncodeMicroKanji(t *testing.T) {
	sym, err := Encode("点", &Options{Micro: MicroRequired, Mode: ModeKanji})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	// Kanji needs M3 or larger.
	if sym.Version != VersionM3 {
		t.Errorf("version = %s, want M3", sym.VersionName())
	}
}

func TestEncodeMicroAuto(t *testing.T) {
	sym, err := Encode("01234567", nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !sym.IsMicro() {
		t.Fatalf("expected a Micro symbol, got %s", sym.VersionName())
	}
	if sym.Version != VersionM2 {
		t.Errorf("version = %s, want M2", sym.VersionName())
	}
	if sym.Mask < 0 || sym.Mask > 3 {
		t.Errorf("Mask = %d, out of Micro range", sym.Mask)
	}
}

func TestEncodeMicroForbidden(t *testing.T) {
	sym, err := Encode("1", &Options{Micro: MicroForbidden})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.IsMicro() {
		t.Errorf("got Micro symbol %s despite MicroForbidden", sym.VersionName())
	}
	if sym.Version != 1 {
		t.Errorf("version = %s, want 1", sym.VersionName())
	}
}

func TestEncodeBoostKeepsVersion(t *testing.T) {
	lorem := strings.Repeat("Lorem ipsum dolor sit amet ", 5) // 135 bytes
	content := lorem + strings.Repeat("x", 155-len(lorem))

	boosted, err := Encode(content, &Options{Micro: MicroForbidden})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	plain, err := Encode(content, &Options{Micro: MicroForbidden, DisableBoost: true})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if plain.Level != ECLevelL {
		t.Errorf("unboosted level = %s, want L", plain.Level)
	}
	if boosted.Version != plain.Version {
		t.Errorf("boosting changed the version: %s vs %s", boosted.VersionName(), plain.VersionName())
	}
	if boosted.Level < plain.Level {
		t.Errorf("boosted level %s below %s", boosted.Level, plain.Level)
	}
	// The boosted level is maximal for the version.
	if next := boosted.Level + 1; next <= ECLevelH {
		if fits(boosted.Segments, boosted.Version, next, false) {
			t.Errorf("level %s still fits: boost stopped early", next)
		}
	}
}

func TestEncodePinnedLevelIsKept(t *testing.T) {
	sym, err := Encode("01234567", &Options{Level: levelPtr(ECLevelM), Version: 1})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Level != ECLevelM {
		t.Errorf("level = %s, want M (pinned levels never boost)", sym.Level)
	}
}

func TestEncodeInvalidVersion(t *testing.T) {
	for _, version := range []int{41, -5, 100} {
		_, err := Encode("1", &Options{Version: version})
		if !errors.Is(err, ErrInvalidVersion) {
			t.Errorf("version %d: err = %v, want ErrInvalidVersion", version, err)
		}
	}
}

func TestEncodeMicroVersionConflicts(t *testing.T) {
	_, err := Encode("1", &Options{Version: VersionM2, Micro: MicroForbidden})
	if !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("err = %v, want ErrInvalidVersion", err)
	}
	_, err = Encode("1", &Options{Version: 1, Micro: MicroRequired})
	if !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("err = %v, want ErrInvalidVersion", err)
	}
}

func TestEncodeInvalidMask(t *testing.T) {
	mask := 8
	_, err := Encode("1", &Options{Mask: &mask})
	if !errors.Is(err, ErrInvalidMask) {
		t.Errorf("err = %v, want ErrInvalidMask", err)
	}
	mask = 4
	_, err = Encode("1", &Options{Version: VersionM1, Mask: &mask})
	if !errors.Is(err, ErrInvalidMask) {
		t.Errorf("micro err = %v, want ErrInvalidMask", err)
	}
}

func TestEncodeECIRequiresRegular(t *testing.T) {
	_, err := Encode("hello", &Options{Micro: MicroRequired, ECI: true})
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
}

func TestEncodeWithECI(t *testing.T) {
	sym, err := Encode("héllo", &Options{Encoding: "utf-8", ECI: true, Micro: MicroForbidden})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.Segments[0].Encoding != "utf-8" {
		t.Errorf("Encoding = %q, want utf-8", sym.Segments[0].Encoding)
	}
}

func TestEncodeUnknownEncoding(t *testing.T) {
	_, err := Encode("hello", &Options{Mode: ModeByte, Encoding: "ebcdic"})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("err = %v, want ErrInvalidEncoding", err)
	}
}

func TestEncodeDataOverflowForcedVersion(t *testing.T) {
	_, err := Encode(strings.Repeat("A", 30), &Options{Version: 1, Level: levelPtr(ECLevelH)})
	if !errors.Is(err, ErrDataOverflow) {
		t.Errorf("err = %v, want ErrDataOverflow", err)
	}
}

func TestSymbolSurface(t *testing.T) {
	sym, err := Encode("SURFACE", &Options{Micro: MicroForbidden})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if sym.VersionName() != "1" {
		t.Errorf("VersionName() = %q, want \"1\"", sym.VersionName())
	}
	if sym.IsMicro() {
		t.Error("IsMicro() = true for a regular symbol")
	}
	if !sym.Dark(0, 0) {
		t.Error("Dark(0,0) = false; the finder corner is dark")
	}
	out := sym.String()
	if lines := strings.Count(out, "\n"); lines != sym.Size() {
		t.Errorf("String() has %d lines, want %d", lines, sym.Size())
	}
}
