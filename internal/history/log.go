// Package history keeps the linear undo/redo log of whole-canvas snapshots.
package history

import "github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"

// DefaultLimit caps the number of kept checkpoints.
const DefaultLimit = 100

// Entry is an encoded snapshot of the composited canvas.
type Entry struct {
	data          []byte
	width, height int
}

// NewEntry wraps encoded snapshot bytes. The entry takes ownership of data.
func NewEntry(data []byte, width, height int) Entry {
	return Entry{data: data, width: width, height: height}
}

// Bytes returns the encoded snapshot. Callers must not modify it.
func (e Entry) Bytes() []byte { return e.data }

func (e Entry) Width() int  { return e.width }
func (e Entry) Height() int { return e.height }

// Log is a branch-discarding undo/redo log with a cursor at the entry
// currently shown. Cursor is -1 while the log is empty.
type Log struct {
	entries []Entry
	cursor  int
	limit   int
}

// NewLog creates an empty log keeping at most limit entries; limit <= 0
// means unbounded.
func NewLog(limit int) *Log {
	return &Log{cursor: -1, limit: limit}
}

// Checkpoint appends e after the cursor. Redo entries past the cursor are
// discarded first. When the limit is exceeded the oldest entries are dropped.
func (l *Log) Checkpoint(e Entry) {
	if l.cursor < len(l.entries)-1 {
		l.entries = l.entries[:l.cursor+1]
	}
	l.entries = append(l.entries, e)
	if l.limit > 0 && len(l.entries) > l.limit {
		drop := len(l.entries) - l.limit
		l.entries = append(l.entries[:0], l.entries[drop:]...)
	}
	l.cursor = len(l.entries) - 1
	logger.Debugf("History: checkpoint %d of %d (%d bytes)", l.cursor, len(l.entries), len(e.data))
}

// Undo moves the cursor back and returns the entry now current. At the first
// entry it does nothing and returns false.
func (l *Log) Undo() (Entry, bool) {
	if l.cursor <= 0 {
		return Entry{}, false
	}
	l.cursor--
	return l.entries[l.cursor], true
}

// Redo moves the cursor forward and returns the entry now current. At the tip
// it does nothing and returns false.
func (l *Log) Redo() (Entry, bool) {
	if l.cursor >= len(l.entries)-1 {
		return Entry{}, false
	}
	l.cursor++
	return l.entries[l.cursor], true
}

// Current returns the entry at the cursor.
func (l *Log) Current() (Entry, bool) {
	if l.cursor < 0 {
		return Entry{}, false
	}
	return l.entries[l.cursor], true
}

func (l *Log) CanUndo() bool { return l.cursor > 0 }
func (l *Log) CanRedo() bool { return l.cursor < len(l.entries)-1 }
func (l *Log) Cursor() int   { return l.cursor }
func (l *Log) Len() int      { return len(l.entries) }

// Reset empties the log.
func (l *Log) Reset() {
	l.entries = nil
	l.cursor = -1
}
