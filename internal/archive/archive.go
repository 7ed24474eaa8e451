package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

type segmentEntry struct {
	kind       SegmentKind
	name       string
	blockStart uint64
	blockEnd   uint64
	jar        *Jar
}

// Archive is the write-once segment tier rooted at one directory. Segments are indexed by
// file name at open and their jars are opened on first use.
type Archive struct {
	dir        string
	compressed bool

	mu       sync.Mutex
	segments map[SegmentKind][]*segmentEntry
}

func Open(dir string, compressed bool) (*Archive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, common.NewStoreAccessError("open archive", err)
	}

	a := &Archive{
		dir:        dir,
		compressed: compressed,
		segments:   make(map[SegmentKind][]*segmentEntry),
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind, start, end, ok := ParseSegmentFileName(entry.Name())
		if !ok {
			log.Debug().Str("file", entry.Name()).Msg("Ignoring non-segment file in archive dir")
			continue
		}
		a.segments[kind] = append(a.segments[kind], &segmentEntry{kind: kind, name: entry.Name(), blockStart: start, blockEnd: end})
	}
	for kind, segs := range a.segments {
		sort.Slice(segs, func(i, j int) bool { return segs[i].blockStart < segs[j].blockStart })
		log.Debug().Str("kind", string(kind)).Int("segments", len(segs)).Msg("Indexed archive segments")
	}
	return a, nil
}

func (a *Archive) Dir() string {
	return a.dir
}

func (a *Archive) Compressed() bool {
	return a.compressed
}

// SegmentForBlock resolves the segment of the given kind whose block range contains n.
// It returns a not-found error when no segment covers n.
func (a *Archive) SegmentForBlock(kind SegmentKind, n uint64) (*Jar, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	segs := a.segments[kind]
	i := sort.Search(len(segs), func(i int) bool { return segs[i].blockEnd >= n })
	if i == len(segs) || segs[i].blockStart > n {
		return nil, common.NewNotFoundError("segment for block", "no %s segment covers block %d", kind, n).AtBlock(n)
	}
	return a.openLocked(segs[i])
}

// SegmentForRecord resolves the segment whose declared record range contains record n.
// Record ranges ascend with block ranges, so the search opens O(log segments) jars.
func (a *Archive) SegmentForRecord(kind SegmentKind, n uint64) (*Jar, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	segs := a.segments[kind]
	var searchErr error
	i := sort.Search(len(segs), func(i int) bool {
		if searchErr != nil {
			return true
		}
		jar, err := a.openLocked(segs[i])
		if err != nil {
			searchErr = err
			return true
		}
		return jar.Header().RecordEnd() > n
	})
	if searchErr != nil {
		return nil, searchErr
	}
	if i == len(segs) {
		return nil, common.NewNotFoundError("segment for record", "no %s segment covers record %d", kind, n).AtRecord(n)
	}
	jar, err := a.openLocked(segs[i])
	if err != nil {
		return nil, err
	}
	if !jar.Header().ContainsRecord(n) {
		return nil, common.NewNotFoundError("segment for record", "no %s segment covers record %d", kind, n).AtRecord(n)
	}
	return jar, nil
}

// HighestBlock returns the last block covered by any segment of the given kind.
func (a *Archive) HighestBlock(kind SegmentKind) (uint64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var (
		highest uint64
		found   bool
	)
	for _, seg := range a.segments[kind] {
		if !found || seg.blockEnd > highest {
			highest, found = seg.blockEnd, true
		}
	}
	return highest, found
}

// SegmentNames lists the indexed file names of a kind in block order.
func (a *Archive) SegmentNames(kind SegmentKind) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, 0, len(a.segments[kind]))
	for _, seg := range a.segments[kind] {
		names = append(names, seg.name)
	}
	return names
}

func (a *Archive) openLocked(seg *segmentEntry) (*Jar, error) {
	if seg.jar != nil {
		return seg.jar, nil
	}
	jar, err := OpenJar(filepath.Join(a.dir, seg.name), a.compressed)
	if err != nil {
		return nil, err
	}
	h := jar.Header()
	if h.SegmentKind() != seg.kind || h.BlockStart != seg.blockStart || h.BlockEnd != seg.blockEnd {
		jar.Close()
		return nil, common.NewStoreAccessError("open segment",
			fmt.Errorf("%s declares %s blocks [%d, %d]", seg.name, h.Kind, h.BlockStart, h.BlockEnd))
	}
	seg.jar = jar
	return jar, nil
}

func (a *Archive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	for _, segs := range a.segments {
		for _, seg := range segs {
			if seg.jar == nil {
				continue
			}
			if err := seg.jar.Close(); err != nil {
				errs = append(errs, err)
			}
			seg.jar = nil
		}
	}
	return errors.Join(errs...)
}
