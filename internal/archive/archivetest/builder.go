// Package archivetest writes segment files for tests.
package archivetest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/chainscan/internal/archive"
)

// Segment describes a segment file. A nil entry in Records is written as an absent record.
type Segment struct {
	Kind        archive.SegmentKind
	BlockStart  uint64
	BlockEnd    uint64
	RecordStart uint64
	Records     [][]byte
	Compressed  bool
}

func (s Segment) Header() archive.SegmentHeader {
	return archive.SegmentHeader{
		Kind:        string(s.Kind),
		BlockStart:  s.BlockStart,
		BlockEnd:    s.BlockEnd,
		RecordStart: s.RecordStart,
		RecordCount: uint64(len(s.Records)),
	}
}

// Encode renders the segment in the on-disk layout.
func (s Segment) Encode() ([]byte, error) {
	header, err := rlp.EncodeToBytes(s.Header())
	if err != nil {
		return nil, err
	}

	var enc *zstd.Encoder
	if s.Compressed {
		enc, err = zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
	}

	var data bytes.Buffer
	offsets := make([]uint64, 0, len(s.Records)+1)
	for _, rec := range s.Records {
		offsets = append(offsets, uint64(data.Len()))
		if rec == nil {
			continue
		}
		if enc != nil {
			rec = enc.EncodeAll(rec, nil)
		}
		data.Write(rec)
	}
	offsets = append(offsets, uint64(data.Len()))

	var flags uint16
	if s.Compressed {
		flags |= archive.FlagCompressed
	}

	var out bytes.Buffer
	out.WriteString(archive.Magic)
	binary.Write(&out, binary.BigEndian, archive.FormatVersion)
	binary.Write(&out, binary.BigEndian, flags)
	binary.Write(&out, binary.BigEndian, uint32(len(header)))
	out.Write(header)
	for _, off := range offsets {
		binary.Write(&out, binary.BigEndian, off)
	}
	out.Write(data.Bytes())
	return out.Bytes(), nil
}

// WriteSegment writes the segment into dir under its canonical file name and returns the path.
func WriteSegment(dir string, s Segment) (string, error) {
	raw, err := s.Encode()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, archive.SegmentFileName(s.Kind, s.BlockStart, s.BlockEnd))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func MustWriteSegment(t testing.TB, dir string, s Segment) string {
	t.Helper()
	path, err := WriteSegment(dir, s)
	require.NoError(t, err)
	return path
}
