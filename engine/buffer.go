package engine

import "sync"

// Buffer is a block of text bytes handed from an Engine to its caller. The
// bytes are not guaranteed to be valid UTF-8.
type Buffer struct {
	data     []byte
	released bool
}

// Bytes returns the buffer's contents. The slice must not be used after the
// buffer is released.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of bytes in the buffer
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Ledger issues buffers and tracks how many are still outstanding.
// The zero value is ready to use.
type Ledger struct {
	mu             sync.Mutex
	outstanding    int
	issued         int
	doubleReleases int
}

// Issue returns a new buffer holding a copy of data
func (l *Ledger) Issue(data []byte) *Buffer {
	b := &Buffer{data: append([]byte(nil), data...)}

	l.mu.Lock()
	l.outstanding++
	l.issued++
	l.mu.Unlock()

	return b
}

// IssueString returns a new buffer holding s
func (l *Ledger) IssueString(s string) *Buffer {
	return l.Issue([]byte(s))
}

// Release marks b as released. It reports false, and changes nothing, when b
// was already released.
func (l *Ledger) Release(b *Buffer) bool {
	if b == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b.released {
		l.doubleReleases++
		return false
	}
	b.released = true
	b.data = nil
	l.outstanding--
	return true
}

// Outstanding returns the number of issued buffers not yet released
func (l *Ledger) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outstanding
}

// Issued returns the total number of buffers issued
func (l *Ledger) Issued() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.issued
}

// DoubleReleases returns how many times an already released buffer was
// released again
func (l *Ledger) DoubleReleases() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.doubleReleases
}
