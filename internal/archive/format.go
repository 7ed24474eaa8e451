package archive

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

type SegmentKind string

const (
	KindHeaders      SegmentKind = "headers"
	KindTransactions SegmentKind = "transactions"
	KindReceipts     SegmentKind = "receipts"
)

func (k SegmentKind) Valid() bool {
	switch k {
	case KindHeaders, KindTransactions, KindReceipts:
		return true
	}
	return false
}

// Segment file layout:
//
//	magic "CSEG" | u16 version | u16 flags | u32 header length | header RLP |
//	RecordCount+1 u64 offsets relative to the data region | data region
//
// All integers are big-endian. Record i spans [offsets[i], offsets[i+1]); an empty span is an absent record.
const (
	Magic          = "CSEG"
	FormatVersion  = uint16(1)
	FlagCompressed = uint16(1 << 0)

	FileExtension = ".seg"

	preambleSize = 12
	offsetSize   = 8
)

var byteOrder = binary.BigEndian

// SegmentHeader is the metadata each segment declares about itself. Header segments use
// block numbers as record numbers.
type SegmentHeader struct {
	Kind        string
	BlockStart  uint64
	BlockEnd    uint64
	RecordStart uint64
	RecordCount uint64
}

func (h SegmentHeader) SegmentKind() SegmentKind {
	return SegmentKind(h.Kind)
}

// RecordEnd is the first record number past the segment.
func (h SegmentHeader) RecordEnd() uint64 {
	return h.RecordStart + h.RecordCount
}

func (h SegmentHeader) ContainsBlock(n uint64) bool {
	return n >= h.BlockStart && n <= h.BlockEnd
}

func (h SegmentHeader) ContainsRecord(n uint64) bool {
	return n >= h.RecordStart && n < h.RecordEnd()
}

func SegmentFileName(kind SegmentKind, blockStart, blockEnd uint64) string {
	return fmt.Sprintf("%s_%d_%d%s", kind, blockStart, blockEnd, FileExtension)
}

// ParseSegmentFileName is the inverse of SegmentFileName.
func ParseSegmentFileName(name string) (kind SegmentKind, blockStart, blockEnd uint64, ok bool) {
	base, found := strings.CutSuffix(name, FileExtension)
	if !found {
		return "", 0, 0, false
	}
	parts := strings.Split(base, "_")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	kind = SegmentKind(parts[0])
	if !kind.Valid() {
		return "", 0, 0, false
	}
	start, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return "", 0, 0, false
	}
	end, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil || end < start {
		return "", 0, 0, false
	}
	return kind, start, end, true
}
