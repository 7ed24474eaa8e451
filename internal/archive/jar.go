package archive

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/klauspost/compress/zstd"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

var (
	decoderOnce sync.Once
	decoder     *zstd.Decoder
	decoderErr  error
)

func recordDecoder() (*zstd.Decoder, error) {
	decoderOnce.Do(func() {
		decoder, decoderErr = zstd.NewReader(nil)
	})
	return decoder, decoderErr
}

// Jar is an open segment file. Records are read with positional reads, so a Jar is safe
// for concurrent readers.
type Jar struct {
	path       string
	file       *os.File
	header     SegmentHeader
	compressed bool
	offsets    []uint64
	dataStart  int64
}

// OpenJar opens a segment file and loads its header and offset table. compressed is the
// caller's expectation and must agree with the flag the segment was written with.
func OpenJar(path string, compressed bool) (*Jar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewStoreAccessError("open segment", err)
	}
	jar, err := readJar(f, path, compressed)
	if err != nil {
		f.Close()
		return nil, common.NewStoreAccessError("open segment", fmt.Errorf("%s: %w", path, err))
	}
	return jar, nil
}

func readJar(f *os.File, path string, compressed bool) (*Jar, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()

	var preamble [preambleSize]byte
	if _, err := f.ReadAt(preamble[:], 0); err != nil {
		return nil, fmt.Errorf("failed to read preamble: %w", err)
	}
	if string(preamble[:4]) != Magic {
		return nil, fmt.Errorf("not a segment file")
	}
	if v := byteOrder.Uint16(preamble[4:6]); v != FormatVersion {
		return nil, fmt.Errorf("unsupported segment version %d", v)
	}
	flags := byteOrder.Uint16(preamble[6:8])
	if segCompressed := flags&FlagCompressed != 0; segCompressed != compressed {
		return nil, fmt.Errorf("segment compressed=%t, archive opened with compressed=%t", segCompressed, compressed)
	}
	headerLen := int64(byteOrder.Uint32(preamble[8:12]))
	if preambleSize+headerLen > size {
		return nil, fmt.Errorf("truncated segment header")
	}

	rawHeader := make([]byte, headerLen)
	if _, err := f.ReadAt(rawHeader, preambleSize); err != nil {
		return nil, fmt.Errorf("failed to read segment header: %w", err)
	}
	var header SegmentHeader
	if err := rlp.DecodeBytes(rawHeader, &header); err != nil {
		return nil, fmt.Errorf("failed to decode segment header: %w", err)
	}
	if !header.SegmentKind().Valid() {
		return nil, fmt.Errorf("unknown segment kind %q", header.Kind)
	}

	if header.RecordCount > math.MaxUint64-header.RecordStart {
		return nil, fmt.Errorf("record range %d+%d overflows", header.RecordStart, header.RecordCount)
	}
	offsetsStart := preambleSize + headerLen
	// the offset table alone needs RecordCount+1 entries, so the file size bounds the count
	if fit := uint64(size-offsetsStart) / offsetSize; fit == 0 || header.RecordCount > fit-1 {
		return nil, fmt.Errorf("truncated offset table: %d records declared", header.RecordCount)
	}
	offsetsLen := int64(header.RecordCount+1) * offsetSize
	rawOffsets := make([]byte, offsetsLen)
	if _, err := f.ReadAt(rawOffsets, offsetsStart); err != nil {
		return nil, fmt.Errorf("failed to read offset table: %w", err)
	}
	dataStart := offsetsStart + offsetsLen
	offsets := make([]uint64, header.RecordCount+1)
	for i := range offsets {
		offsets[i] = byteOrder.Uint64(rawOffsets[i*offsetSize:])
		if i > 0 && offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("offset table not ascending at entry %d", i)
		}
	}
	if offsets[len(offsets)-1] > uint64(size-dataStart) {
		return nil, fmt.Errorf("offset table points past end of file")
	}

	return &Jar{
		path:       path,
		file:       f,
		header:     header,
		compressed: compressed,
		offsets:    offsets,
		dataStart:  dataStart,
	}, nil
}

// Header returns the segment's declared metadata, including its starting record number.
func (j *Jar) Header() SegmentHeader {
	return j.header
}

func (j *Jar) Path() string {
	return j.path
}

// Cursor returns a cursor positioned at the segment's first record.
func (j *Jar) Cursor() *Cursor {
	return &Cursor{jar: j, position: j.header.RecordStart}
}

func (j *Jar) Close() error {
	return j.file.Close()
}

// record returns the payload stored for an absolute record number.
func (j *Jar) record(n uint64) ([]byte, bool, error) {
	if !j.header.ContainsRecord(n) {
		return nil, false, nil
	}
	i := n - j.header.RecordStart
	start, end := j.offsets[i], j.offsets[i+1]
	if start == end {
		return nil, false, nil
	}

	buf := make([]byte, end-start)
	if _, err := j.file.ReadAt(buf, j.dataStart+int64(start)); err != nil {
		return nil, false, common.NewStoreAccessError("read segment record", err).AtRecord(n)
	}
	if !j.compressed {
		return buf, true, nil
	}
	dec, err := recordDecoder()
	if err != nil {
		return nil, false, common.NewStoreAccessError("read segment record", err).AtRecord(n)
	}
	out, err := dec.DecodeAll(buf, nil)
	if err != nil {
		return nil, false, common.NewStoreAccessError("decompress segment record", err).AtRecord(n)
	}
	return out, true, nil
}
