package buffer

import (
	"io"

	"github.com/gogpu/pixbase"
)

// IOBuffer is a linear buffer over caller-owned bytes, plus a write index, a
// read index and a closed flag. Bytes in [0, ri) have been consumed, bytes in
// [ri, wi) are written but unread and bytes in [wi, len) are free.
//
// The invariant ri <= wi <= len holds before and after every method. Closed
// is monotonic: once set, readers treat running out of bytes as the end of
// the stream rather than a transient "need more data" suspension.
//
// The zero value is a valid, empty, open buffer.
type IOBuffer struct {
	data   []byte
	wi     int
	ri     int
	closed bool
}

// NewIOBuffer returns an empty, open IOBuffer over data.
func NewIOBuffer(data []byte) *IOBuffer {
	return &IOBuffer{data: data}
}

// NewIOBufferFilled returns an IOBuffer whose every byte of data is written
// and unread. Pass closed=true when no further bytes will arrive.
func NewIOBufferFilled(data []byte, closed bool) *IOBuffer {
	return &IOBuffer{data: data, wi: len(data), closed: closed}
}

// Len returns the capacity of the buffer in bytes.
func (b *IOBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// WriteIndex returns wi.
func (b *IOBuffer) WriteIndex() int {
	if b == nil {
		return 0
	}
	return b.wi
}

// ReadIndex returns ri.
func (b *IOBuffer) ReadIndex() int {
	if b == nil {
		return 0
	}
	return b.ri
}

// IsClosed reports whether no further writes will arrive. A nil buffer is
// closed.
func (b *IOBuffer) IsClosed() bool { return b == nil || b.closed }

// Close marks the buffer as closed. It cannot be reopened.
func (b *IOBuffer) Close() {
	if b != nil {
		b.closed = true
	}
}

// Unread returns the written but unread bytes, [ri, wi). The slice aliases
// the buffer and is only valid until the next mutation.
func (b *IOBuffer) Unread() []byte {
	if b == nil {
		return nil
	}
	return b.data[b.ri:b.wi:b.wi]
}

// Writable returns the free bytes, [wi, len). The slice aliases the buffer
// and is only valid until the next mutation.
func (b *IOBuffer) Writable() []byte {
	if b == nil {
		return nil
	}
	return b.data[b.wi:]
}

// Compact moves the unread bytes [ri, wi) to the start of the buffer, so
// that afterwards ri == 0 and wi is the number of unread bytes. It is a
// no-op when ri is already zero.
func (b *IOBuffer) Compact() {
	if b == nil || b.ri == 0 {
		return
	}
	n := copy(b.data, b.data[b.ri:b.wi])
	b.wi = n
	b.ri = 0
}

// Reader returns a Reader over the unread bytes with the implicit bounds
// [0, wi).
func (b *IOBuffer) Reader() Reader {
	return Reader{buf: b}
}

// Writer returns a Writer over the free bytes with the implicit bounds
// [wi, len).
func (b *IOBuffer) Writer() Writer {
	return Writer{buf: b}
}

// BoundedReader returns a Reader restricted to the byte positions [lo, hi)
// of the buffer. It fails with ErrorBadArgument unless 0 <= lo <= hi <= len.
func (b *IOBuffer) BoundedReader(lo, hi int) (Reader, pixbase.Status) {
	if b == nil {
		return Reader{}, pixbase.ErrorBadReceiver
	}
	if lo < 0 || lo > hi || hi > len(b.data) {
		return Reader{}, pixbase.ErrorBadArgument
	}
	return Reader{buf: b, lo: lo, hi: hi, bounded: true}, pixbase.StatusOK
}

// BoundedWriter returns a Writer restricted to the byte positions [lo, hi)
// of the buffer. It fails with ErrorBadArgument unless 0 <= lo <= hi <= len.
func (b *IOBuffer) BoundedWriter(lo, hi int) (Writer, pixbase.Status) {
	if b == nil {
		return Writer{}, pixbase.ErrorBadReceiver
	}
	if lo < 0 || lo > hi || hi > len(b.data) {
		return Writer{}, pixbase.ErrorBadArgument
	}
	return Writer{buf: b, lo: lo, hi: hi, bounded: true}, pixbase.StatusOK
}

// Reader consumes bytes from an IOBuffer, advancing its read index. It
// implements io.Reader and io.ByteReader. A bounded Reader never reads
// outside its bounds, which lets a caller hand a nested decoder only the
// bytes a container declared.
type Reader struct {
	buf     *IOBuffer
	lo, hi  int
	bounded bool
}

// window returns the readable positions [start, end).
func (r Reader) window() (start, end int) {
	if r.buf == nil {
		return 0, 0
	}
	start, end = r.buf.ri, r.buf.wi
	if r.bounded {
		if start < r.lo {
			return 0, 0
		}
		end = min(end, r.hi)
	}
	if end < start {
		return start, start
	}
	return start, end
}

// Available returns the number of bytes that can be read without
// suspending.
func (r Reader) Available() int {
	start, end := r.window()
	return end - start
}

// Peek returns up to n readable bytes without consuming them. The slice
// aliases the buffer.
func (r Reader) Peek(n int) []byte {
	start, end := r.window()
	if n < 0 {
		n = 0
	}
	end = start + min(n, end-start)
	return r.buf.dataOrNil()[start:end:end]
}

// Skip consumes up to n bytes and returns how many were consumed.
func (r Reader) Skip(n int) int {
	start, end := r.window()
	n = max(0, min(n, end-start))
	if n > 0 {
		r.buf.ri += n
	}
	return n
}

// Limit returns a Reader that reads at most n more bytes.
func (r Reader) Limit(n int) Reader {
	if r.buf == nil {
		return r
	}
	start, end := r.window()
	n = max(0, min(n, end-start))
	lo := start
	if r.bounded {
		lo = max(r.lo, 0)
	}
	return Reader{buf: r.buf, lo: min(lo, start), hi: start + n, bounded: true}
}

// atEnd reports whether an empty window is permanent.
func (r Reader) atEnd() bool {
	if r.buf == nil {
		return true
	}
	if r.bounded && r.hi <= r.buf.wi {
		return true
	}
	return r.buf.closed
}

// Read implements io.Reader. When no bytes are available it returns io.EOF
// if the end is permanent and SuspensionShortRead otherwise. A bounded
// Reader whose lower bound lies ahead of the read index returns
// ErrorBadCallSequence: the bytes before lo must be consumed first.
func (r Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	start, end := r.window()
	n := copy(p, r.buf.dataOrNil()[start:end])
	if n > 0 {
		r.buf.ri += n
		return n, nil
	}
	if r.bounded && r.buf != nil && r.buf.ri < r.lo {
		return 0, pixbase.ErrorBadCallSequence
	}
	if r.atEnd() {
		return 0, io.EOF
	}
	return 0, pixbase.SuspensionShortRead
}

// ReadByte implements io.ByteReader.
func (r Reader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := r.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Writer appends bytes to an IOBuffer, advancing its write index. It
// implements io.Writer and io.ByteWriter.
type Writer struct {
	buf     *IOBuffer
	lo, hi  int
	bounded bool
}

// window returns the writable positions [start, end).
func (w Writer) window() (start, end int) {
	if w.buf == nil {
		return 0, 0
	}
	start, end = w.buf.wi, len(w.buf.data)
	if w.bounded {
		if start < w.lo {
			return 0, 0
		}
		end = min(end, w.hi)
	}
	if end < start {
		return start, start
	}
	return start, end
}

// Available returns the number of bytes that can be written.
func (w Writer) Available() int {
	if w.buf == nil || w.buf.closed {
		return 0
	}
	start, end := w.window()
	return end - start
}

// Limit returns a Writer that writes at most n more bytes.
func (w Writer) Limit(n int) Writer {
	if w.buf == nil {
		return w
	}
	start, end := w.window()
	n = max(0, min(n, end-start))
	lo := start
	if w.bounded {
		lo = max(w.lo, 0)
	}
	return Writer{buf: w.buf, lo: min(lo, start), hi: start + n, bounded: true}
}

// Write implements io.Writer. It copies as many bytes as fit and returns
// SuspensionShortWrite if some did not. Writing to a closed buffer fails
// with ErrorClosedForWrites.
func (w Writer) Write(p []byte) (int, error) {
	if w.buf == nil {
		return 0, pixbase.ErrorBadReceiver
	}
	if w.buf.closed {
		return 0, pixbase.ErrorClosedForWrites
	}
	start, end := w.window()
	n := copy(w.buf.data[start:end], p)
	w.buf.wi += n
	if n < len(p) {
		return n, pixbase.SuspensionShortWrite
	}
	return n, nil
}

// WriteByte implements io.ByteWriter.
func (w Writer) WriteByte(c byte) error {
	_, err := w.Write([]byte{c})
	return err
}

// CopyFrom fills the free space of w from src. It returns the number of
// bytes copied and the first error from src other than io.EOF. When src
// reports io.EOF the underlying buffer is closed.
func (w Writer) CopyFrom(src io.Reader) (int, error) {
	if w.buf == nil {
		return 0, pixbase.ErrorBadReceiver
	}
	total := 0
	for w.Available() > 0 {
		start, end := w.window()
		n, err := src.Read(w.buf.data[start:end])
		n = max(0, min(n, end-start))
		w.buf.wi += n
		total += n
		if err == io.EOF {
			w.buf.closed = true
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

func (b *IOBuffer) dataOrNil() []byte {
	if b == nil {
		return nil
	}
	return b.data
}
