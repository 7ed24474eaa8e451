package archive

import (
	"github.com/thirdweb-dev/chainscan/internal/metrics"
)

// Cursor reads records of one segment by absolute record number.
type Cursor struct {
	jar      *Jar
	position uint64
}

func (c *Cursor) Position() uint64 {
	return c.position
}

func (c *Cursor) Seek(n uint64) {
	c.position = n
}

// RecordAt reads record n and leaves the cursor just past it. found is false when the
// segment has no record n.
func (c *Cursor) RecordAt(n uint64) (data []byte, found bool, err error) {
	data, found, err = c.jar.record(n)
	if err != nil {
		return nil, false, err
	}
	c.position = n + 1
	return data, found, nil
}

// Item is one step of a record scan: either a record's payload or a miss at Number.
type Item struct {
	Number  uint64
	Data    []byte
	Missing bool
}

// RecordIterator walks a cursor forward up to an exclusive end record. Misses are yielded,
// not skipped; an I/O failure stops the iteration and is reported by Err.
type RecordIterator struct {
	cursor *Cursor
	end    uint64
	item   Item
	err    error
}

// Records iterates from the cursor's position up to end.
func (c *Cursor) Records(end uint64) *RecordIterator {
	return &RecordIterator{cursor: c, end: end}
}

func (it *RecordIterator) Next() bool {
	if it.err != nil || it.cursor.position >= it.end {
		return false
	}
	n := it.cursor.position
	data, found, err := it.cursor.RecordAt(n)
	if err != nil {
		it.err = err
		return false
	}

	kind := it.cursor.jar.header.Kind
	if found {
		metrics.ArchiveRecordsRead.WithLabelValues(kind).Inc()
	} else {
		metrics.ArchiveRecordsMissing.WithLabelValues(kind).Inc()
	}
	it.item = Item{Number: n, Data: data, Missing: !found}
	return true
}

func (it *RecordIterator) Item() Item {
	return it.item
}

func (it *RecordIterator) Err() error {
	return it.err
}
