package qrgen

import (
	"fmt"

	"github.com/ericlevine/qrgen/bitutil"
	"github.com/ericlevine/qrgen/charset"
	"github.com/ericlevine/qrgen/reedsolomon"
)

// padCodewords alternate until the data capacity is reached.
const (
	padCodeword1 = 0xEC
	padCodeword2 = 0x11
)

// hasNibbleCodeword reports whether the version's final data codeword is
// 4 bits rather than a full byte.
func hasNibbleCodeword(version int) bool {
	return version == VersionM1 || version == VersionM3
}

// serialiseSegments writes ECI headers, mode indicators, character counts
// and payload bits for every segment.
func serialiseSegments(segments []*Segment, version int, eci bool) *bitutil.BitBuffer {
	bits := bitutil.New()
	for _, seg := range segments {
		if eci && !isMicro(version) && seg.eciHeaderNeeded() {
			value, _ := charset.ECIValue(seg.Encoding)
			bits.AppendUint(uint32(ModeECI), 4)
			bits.AppendUint(uint32(value), 8)
		}
		indicator, indicatorBits := seg.Mode.IndicatorBits(version)
		bits.AppendUint(uint32(indicator), indicatorBits)
		bits.AppendUint(uint32(seg.CharCount), seg.Mode.CharacterCountBits(version))
		bits.AppendBuffer(seg.Bits)
	}
	return bits
}

// terminateAndPad appends the terminator, zero-pads to the next codeword
// boundary and fills the remaining capacity with pad codewords. M1 and M3
// end on a 4-bit codeword whose pad value is zero.
func terminateAndPad(bits *bitutil.BitBuffer, version int, capacityBits int) error {
	if bits.Len() > capacityBits {
		return fmt.Errorf("%w: %d data bits exceed capacity %d", ErrDataOverflow, bits.Len(), capacityBits)
	}
	for i := 0; i < terminatorBits(version) && bits.Len() < capacityBits; i++ {
		bits.AppendBit(false)
	}

	// Zero-pad the partial codeword. The final boundary is the capacity
	// itself when the stream has reached the 4-bit tail codeword.
	boundary := (bits.Len() + 7) / 8 * 8
	if boundary > capacityBits {
		boundary = capacityBits
	}
	for bits.Len() < boundary {
		bits.AppendBit(false)
	}

	// Alternating pad codewords; a trailing 4-bit codeword pads as zero.
	for i := 0; bits.Len() < capacityBits; i++ {
		if capacityBits-bits.Len() == 4 && hasNibbleCodeword(version) {
			bits.AppendUint(0, 4)
			break
		}
		if i%2 == 0 {
			bits.AppendUint(padCodeword1, 8)
		} else {
			bits.AppendUint(padCodeword2, 8)
		}
	}
	return nil
}

// dataCodewords splits the padded bit stream into codeword values. For M1
// and M3 the last value is the 4-bit tail.
func dataCodewords(bits *bitutil.BitBuffer, version int, numData int) []byte {
	out := make([]byte, numData)
	if hasNibbleCodeword(version) {
		bits.ToBytes(0, out, 0, numData-1)
		out[numData-1] = byte(bits.Uint((numData-1)*8, 4))
		return out
	}
	bits.ToBytes(0, out, 0, numData)
	return out
}

type blockPair struct {
	data []byte
	ec   []byte
}

// splitAndEncodeBlocks slices the data codewords per the version's ECB table
// and computes each block's error codewords.
func splitAndEncodeBlocks(data []byte, ecb *ECBlocks) []blockPair {
	enc := reedsolomon.NewEncoder(reedsolomon.QRCodeField256)
	var blocks []blockPair
	offset := 0
	for _, group := range ecb.Blocks {
		for i := 0; i < group.Count; i++ {
			blockData := data[offset : offset+group.DataCodewords]
			offset += group.DataCodewords
			blocks = append(blocks, blockPair{
				data: blockData,
				ec:   enc.ECBytes(blockData, ecb.ECCodewordsPerBlock),
			})
		}
	}
	return blocks
}

// interleaveBlocks emits the i-th data codeword of every block in turn, then
// the i-th error codeword of every block. For M1 and M3 the final data
// codeword of the (single) block is written in 4 bits.
func interleaveBlocks(blocks []blockPair, version int) *bitutil.BitBuffer {
	out := bitutil.New()
	maxData, maxEC := 0, 0
	for _, blk := range blocks {
		if len(blk.data) > maxData {
			maxData = len(blk.data)
		}
		if len(blk.ec) > maxEC {
			maxEC = len(blk.ec)
		}
	}
	nibbleTail := hasNibbleCodeword(version)
	for i := 0; i < maxData; i++ {
		for _, blk := range blocks {
			if i >= len(blk.data) {
				continue
			}
			if nibbleTail && i == len(blk.data)-1 {
				out.AppendUint(uint32(blk.data[i]), 4)
			} else {
				out.AppendUint(uint32(blk.data[i]), 8)
			}
		}
	}
	for i := 0; i < maxEC; i++ {
		for _, blk := range blocks {
			if i < len(blk.ec) {
				out.AppendUint(uint32(blk.ec[i]), 8)
			}
		}
	}
	return out
}

// assembleCodewords turns a segment list into the final interleaved codeword
// stream, remainder bits included.
func assembleCodewords(segments []*Segment, version int, ecLevel ErrorCorrectionLevel, eci bool) (*bitutil.BitBuffer, error) {
	v, err := versionForNumber(version)
	if err != nil {
		return nil, err
	}
	ecb := v.ECBlocksForLevel(ecLevel)
	if ecb == nil {
		return nil, fmt.Errorf("%w: level %s not available for version %s", ErrInvalidErrorLevel, ecLevel, versionName(version))
	}

	bits := serialiseSegments(segments, version, eci)
	capacityBits := dataBitCapacity(version, ecLevel)
	if err := terminateAndPad(bits, version, capacityBits); err != nil {
		return nil, err
	}

	data := dataCodewords(bits, version, ecb.TotalDataCodewords())
	blocks := splitAndEncodeBlocks(data, ecb)
	out := interleaveBlocks(blocks, version)
	out.AppendUint(0, remainderBits(version))
	return out, nil
}
